package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"catalog-backend/internal/shared/response"
)

const internalMessage = "Internal server error"

// Fail hands err to the ErrorHandler boundary with the HTTP status it should
// be reported as, and stops the handler chain. Nothing is written yet.
func Fail(c *gin.Context, status int, err error) {
	_ = c.Error(err).SetType(gin.ErrorTypePrivate).SetMeta(status)
	c.Abort()
}

// ErrorHandler is the generic fault boundary. It renders the last error
// recorded through Fail as the "error" view (or a JSON envelope under /api).
// When exposeInternal is false, messages of 5xx faults are replaced.
func ErrorHandler(exposeInternal bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		last := c.Errors.Last()
		status := http.StatusInternalServerError
		if s, ok := last.Meta.(int); ok && s >= 400 {
			status = s
		}

		message := last.Err.Error()
		if status >= 500 {
			log.Error().
				Err(last.Err).
				Str("request_id", c.GetString("request_id")).
				Str("path", c.Request.URL.Path).
				Msg("Request failed")
			if !exposeInternal {
				message = internalMessage
			}
		}

		renderFault(c, status, message)
	}
}

func renderFault(c *gin.Context, status int, message string) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		response.ErrorResponse(c, status, response.CodeForStatus(status), message)
		return
	}
	c.HTML(status, "error", gin.H{
		"title":   http.StatusText(status),
		"message": message,
		"status":  status,
	})
}
