// errors.go - Converts taxonomy errors to HTTP responses
//
// This is the only place (besides the middleware abort path) where an error
// kind becomes a status code and JSON body. Validation errors include the
// per-field messages; unexpected errors never leak internals.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-pollution-backend/apperrors"
)

func respondError(c *gin.Context, err error) {
	status := apperrors.StatusCode(err)

	var appErr *apperrors.Error
	if !errors.As(err, &appErr) || status == http.StatusInternalServerError {
		message := "Server error"
		if appErr != nil && appErr.Message != "" {
			message = appErr.Message
		}
		slog.Error("request failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": message})
		return
	}

	body := gin.H{"message": appErr.Message}
	if len(appErr.Fields) > 0 {
		body["errors"] = appErr.Fields
	}
	c.JSON(status, body)
}
