package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	listing "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/listing/application/domain"
)

const userIDHeader = "User-Id"

func callerID(c *gin.Context) (string, bool) {
	id := c.GetHeader(userIDHeader)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User-Id header is required"})
		return "", false
	}
	return id, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, listing.ErrPostNotFound):
		return http.StatusNotFound
	case errors.Is(err, listing.ErrNotPostOwner):
		return http.StatusForbidden
	case errors.Is(err, listing.ErrInvalidPost):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}
