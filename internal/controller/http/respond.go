package http

import (
	"errors"
	"net/http"

	"recruitme/internal/entity"

	"github.com/gin-gonic/gin"
)

// respondError maps the error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is answered with a generic 500; details stay in
// the server logs.
func respondError(c *gin.Context, err error) {
	var validationErr *entity.ValidationError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.Is(err, entity.ErrNoDraft):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No draft profile found. Please create a profile first."})
	case errors.Is(err, entity.ErrNotPublished):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Profile is not published"})
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, entity.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, entity.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
