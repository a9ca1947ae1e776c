package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	chat "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/chat/application/domain"
)

// userIDHeader carries the caller's identity, injected upstream by the
// authentication gateway.
const userIDHeader = "User-Id"

// callerID extracts the User-Id header; a missing header is a client error.
func callerID(c *gin.Context) (string, bool) {
	id := c.GetHeader(userIDHeader)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User-Id header is required"})
		return "", false
	}
	return id, true
}

// statusFor maps chat domain errors to the four externally observable
// status families. Collapsing them would lose the information the caller
// needs to decide whether to retry, re-authenticate or give up.
func statusFor(err error) int {
	switch {
	case errors.Is(err, chat.ErrChatNotFound):
		return http.StatusNotFound
	case errors.Is(err, chat.ErrNotSender),
		errors.Is(err, chat.ErrNotAdopter),
		errors.Is(err, chat.ErrNotOwner),
		errors.Is(err, chat.ErrNotMember):
		return http.StatusForbidden
	case errors.Is(err, chat.ErrRequestNotSent),
		errors.Is(err, chat.ErrRequestPending),
		errors.Is(err, chat.ErrAlreadyAccepted),
		errors.Is(err, chat.ErrStateConflict):
		return http.StatusConflict
	case errors.Is(err, chat.ErrMissingPost),
		errors.Is(err, chat.ErrMissingParticipants),
		errors.Is(err, chat.ErrEmptyMessage):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}
