package middlewares

import (
	"errors"
	"log"
	"net/http"

	"MigrantHealth/apperrors"

	"github.com/gin-gonic/gin"
)

// RespondJSON writes a JSON response to the client.
func RespondJSON(c *gin.Context, data interface{}, status int) {
	c.JSON(status, data)
}

// HttpError logs an error and writes an HTTP error response to the client.
func HttpError(c *gin.Context, message string, status int, err error) {
	log.Printf("HTTP %d - %s: %v", status, message, err)
	c.JSON(status, gin.H{"error": message})
}

// RespondError maps an operation failure onto an HTTP response. Store
// failures are logged server-side and surface as a generic message; all
// other classes carry their user-facing text.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrAuthFailure):
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrAuthFailure.Error()})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{
			"error":    "You don't have permission to access this page.",
			"redirect": DashboardPath,
		})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		HttpError(c, "A database error occurred.", http.StatusInternalServerError, err)
	}
}
