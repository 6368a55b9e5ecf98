package middleware

import (
	"errors"
	"net/http"

	"go-studio-backend/internal/delivery/http/response"
	"go-studio-backend/pkg/apperror"
	"go-studio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors appended to the gin context into the
// standard failure envelope. AppErrors keep their code and message;
// anything else becomes a generic 500 so internals never leak.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Code >= http.StatusInternalServerError {
					logger.Log.Error("request failed",
						"path", c.FullPath(),
						"code", appErr.Code,
						"error", appErr.Error(),
					)
				}
				response.Error(c, appErr.Code, appErr.Message)
			} else {
				logger.Log.Error("unhandled error", "path", c.FullPath(), "error", err.Error())
				response.Error(c, http.StatusInternalServerError, "Internal server error")
			}
		}
	}
}
