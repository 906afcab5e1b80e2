// respond.go - Error responses emitted from middleware

package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-pollution-backend/apperrors"
)

// abortWithError converts a taxonomy error into a status code and JSON body
// and stops the handler chain. Unexpected errors are logged with their cause
// and answered with a generic message only.
func abortWithError(c *gin.Context, err error) {
	status := apperrors.StatusCode(err)

	var appErr *apperrors.Error
	if !errors.As(err, &appErr) || status == http.StatusInternalServerError {
		slog.Error("request failed", "path", c.Request.URL.Path, "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.AbortWithStatusJSON(status, gin.H{"message": appErr.Message})
}
