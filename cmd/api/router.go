package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/shared/middleware"
	"catalog-backend/pkg/container"
	"catalog-backend/web"
)

func SetupRouter(c *container.Container) (*gin.Engine, error) {
	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	router.SetHTMLTemplate(templates)

	// Recovery đứng ngoài cùng: panic ở bất kỳ stage nào cũng render trang lỗi
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(c.Config.App.IsDevelopment()),
	)

	router.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, "/catalog")
	})

	catalog := router.Group("/catalog")
	{
		catalog.GET("", c.CatalogHandler.Index)
		c.BookHandler.RegisterRoutes(catalog)
		c.GenreHandler.RegisterRoutes(catalog)
		c.AuthorHandler.RegisterRoutes(catalog)
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", c.CatalogHandler.Health)
		c.GenreHandler.RegisterAPIRoutes(v1)
		c.AuthorHandler.RegisterAPIRoutes(v1)
	}

	router.NoRoute(func(ctx *gin.Context) {
		middleware.Fail(ctx, http.StatusNotFound, errors.New("Page not found"))
	})

	return router, nil
}
