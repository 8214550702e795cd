package container

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"catalog-backend/internal/config"
	infraCache "catalog-backend/internal/infrastructure/cache"
	"catalog-backend/internal/infrastructure/database"
	"catalog-backend/pkg/cache"
	"catalog-backend/pkg/logger"

	authorHandler "catalog-backend/internal/domains/author/handler"
	authorRepo "catalog-backend/internal/domains/author/repository"
	authorService "catalog-backend/internal/domains/author/service"
	bookHandler "catalog-backend/internal/domains/book/handler"
	bookRepo "catalog-backend/internal/domains/book/repository"
	catalogHandler "catalog-backend/internal/domains/catalog/handler"
	catalogService "catalog-backend/internal/domains/catalog/service"
	genreHandler "catalog-backend/internal/domains/genre/handler"
	genreRepo "catalog-backend/internal/domains/genre/repository"
	genreService "catalog-backend/internal/domains/genre/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container là root của dependency graph
// Thứ tự khởi tạo: Config → Infrastructure → Repositories → Services → Handlers
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache
	redis  *infraCache.RedisCache

	// Repositories
	GenreRepo  genreRepo.RepositoryInterface
	AuthorRepo authorRepo.RepositoryInterface
	BookRepo   bookRepo.RepositoryInterface

	// Services
	GenreService   genreService.ServiceInterface
	AuthorService  authorService.ServiceInterface
	CatalogService *catalogService.CatalogService

	// Handlers
	GenreHandler   *genreHandler.GenreHandler
	AuthorHandler  *authorHandler.AuthorHandler
	BookHandler    *bookHandler.BookHandler
	CatalogHandler *catalogHandler.CatalogHandler
}

// NewContainer builds the whole graph. Any failure aborts start-up.
func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	// ========================================
	// STEP 1: CONFIGURATION + LOGGER
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)
	log.Info().Str("env", cfg.App.Environment).Msg("[CONTAINER] Config loaded")

	// ========================================
	// STEP 2: DATABASE
	// ========================================
	if err := c.initDatabase(ctx); err != nil {
		return nil, err
	}

	// ========================================
	// STEP 3: CACHE
	// ========================================
	if err := c.initCache(ctx); err != nil {
		c.Cleanup()
		return nil, err
	}

	// ========================================
	// STEP 4: DOMAINS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("[CONTAINER] Initialized", map[string]interface{}{
		"env":   cfg.App.Environment,
		"redis": cfg.Redis.Enabled,
	})
	return c, nil
}

func (c *Container) initDatabase(ctx context.Context) error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}
	c.DB = db

	if err := database.Migrate(ctx, db.Pool); err != nil {
		db.Close()
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// initCache dùng Redis khi REDIS_ENABLED, ngược lại Noop
func (c *Container) initCache(ctx context.Context) error {
	if !c.Config.Redis.Enabled {
		log.Info().Msg("[CONTAINER] Redis disabled, caching off")
		c.Cache = cache.NewNoop()
		return nil
	}

	rc := infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := rc.Connect(ctx); err != nil {
		_ = rc.Close()
		return fmt.Errorf("failed to connect redis: %w", err)
	}
	c.redis = rc
	c.Cache = rc
	return nil
}

func (c *Container) initRepositories() {
	ttl := c.Config.Redis.CacheTTL
	c.GenreRepo = genreRepo.NewPostgresRepository(c.DB.Pool, c.Cache, ttl)
	c.AuthorRepo = authorRepo.NewPostgresRepository(c.DB.Pool, c.Cache, ttl)
	c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool)
}

func (c *Container) initServices() {
	c.GenreService = genreService.NewGenreService(c.GenreRepo, c.BookRepo)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.BookRepo)
	c.CatalogService = catalogService.NewCatalogService(c.BookRepo, c.AuthorRepo, c.GenreRepo)
}

func (c *Container) initHandlers() {
	c.GenreHandler = genreHandler.NewGenreHandler(c.GenreService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookRepo)
	c.CatalogHandler = catalogHandler.NewCatalogHandler(c.CatalogService, c.DB, c.Cache, c.Config.App.Version)
}

// Cleanup releases infrastructure in reverse order of creation.
func (c *Container) Cleanup() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			logger.Error("[CONTAINER] Redis close failed", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	log.Info().Msg("[CONTAINER] Cleaned up")
}
