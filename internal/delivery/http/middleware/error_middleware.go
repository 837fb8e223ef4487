package middleware

import (
	"errors"
	"net/http"

	"go-profilepage-backend/internal/delivery/http/response"
	"go-profilepage-backend/pkg/apperror"
	"go-profilepage-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if len(appErr.Fields) > 0 {
					response.ValidationError(c, appErr.Code, appErr.Message, appErr.Fields)
					return
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
				return
			}
			// Never expose internal error details to clients. Log the
			// actual error server-side, send a generic failure notice.
			logger.Log.Error("Internal server error", "path", c.FullPath(), "error", err)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
	}
}
