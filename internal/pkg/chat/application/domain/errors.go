package chat

import "errors"

// Domain-level errors for the chat context. Controllers map these to the
// four externally visible status families, so they must stay distinct:
// not-found, authorization, precondition, validation.
var (
	// Not found
	ErrChatNotFound = errors.New("chat: conversation not found")

	// Authorization (caller is not the actor the guard requires)
	ErrNotSender  = errors.New("chat: caller is not the message sender")
	ErrNotAdopter = errors.New("chat: only the adopter may act on the request")
	ErrNotOwner   = errors.New("chat: only the owner may act on the request")
	ErrNotMember  = errors.New("chat: caller is not a participant in the conversation")

	// Precondition (state-machine guard failed)
	ErrRequestNotSent  = errors.New("chat: request not yet sent")
	ErrRequestPending  = errors.New("chat: request already pending")
	ErrAlreadyAccepted = errors.New("chat: request already accepted")
	ErrStateConflict   = errors.New("chat: conversation state changed concurrently")

	// Validation
	ErrMissingPost         = errors.New("chat: adoption post id is required to open a conversation")
	ErrMissingParticipants = errors.New("chat: sender id and receiver id are required")
	ErrEmptyMessage        = errors.New("chat: empty message body")
)
