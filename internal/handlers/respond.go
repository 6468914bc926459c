package handlers

import (
	"errors"
	"net/http"

	"learnhub-service/internal/models"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the HTTP taxonomy: validation
// failures are 400, missing documents 404, everything else 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
