package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversation_RequestTransitions(t *testing.T) {
	const (
		owner   = "owner-1"
		adopter = "adopter-1"
	)

	tests := []struct {
		name      string
		state     RequestState
		caller    string
		op        func(*Conversation, string) error
		wantErr   error
		wantState RequestState
	}{
		{"send from new", StateNew, adopter, (*Conversation).SendRequest, nil, StateRequested},
		{"send while pending", StateRequested, adopter, (*Conversation).SendRequest, ErrRequestPending, StateRequested},
		{"send after accept", StateAccepted, adopter, (*Conversation).SendRequest, ErrAlreadyAccepted, StateAccepted},
		{"send by owner", StateNew, owner, (*Conversation).SendRequest, ErrNotAdopter, StateNew},

		{"cancel pending", StateRequested, adopter, (*Conversation).CancelRequest, nil, StateNew},
		{"cancel without request", StateNew, adopter, (*Conversation).CancelRequest, ErrRequestNotSent, StateNew},
		{"cancel after accept", StateAccepted, adopter, (*Conversation).CancelRequest, ErrAlreadyAccepted, StateAccepted},
		{"cancel by owner", StateRequested, owner, (*Conversation).CancelRequest, ErrNotAdopter, StateRequested},

		{"accept pending", StateRequested, owner, (*Conversation).AcceptRequest, nil, StateAccepted},
		{"accept without request", StateNew, owner, (*Conversation).AcceptRequest, ErrRequestNotSent, StateNew},
		{"accept twice", StateAccepted, owner, (*Conversation).AcceptRequest, ErrAlreadyAccepted, StateAccepted},
		{"accept by adopter", StateRequested, adopter, (*Conversation).AcceptRequest, ErrNotOwner, StateRequested},

		{"reject pending", StateRequested, owner, (*Conversation).RejectRequest, nil, StateNew},
		{"reject without request", StateNew, owner, (*Conversation).RejectRequest, ErrRequestNotSent, StateNew},
		{"reject after accept", StateAccepted, owner, (*Conversation).RejectRequest, ErrAlreadyAccepted, StateAccepted},
		{"reject by adopter", StateRequested, adopter, (*Conversation).RejectRequest, ErrNotOwner, StateRequested},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := NewConversation(owner, adopter, "post-1")
			conv.State = tt.state

			err := tt.op(&conv, tt.caller)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantState, conv.State)
		})
	}
}

func TestConversation_RerequestAfterRejection(t *testing.T) {
	conv := NewConversation("owner-1", "adopter-1", "post-1")

	require.NoError(t, conv.SendRequest("adopter-1"))
	require.NoError(t, conv.RejectRequest("owner-1"))
	assert.Equal(t, StateNew, conv.State)

	// a rejection is not final
	require.NoError(t, conv.SendRequest("adopter-1"))
	require.NoError(t, conv.AcceptRequest("owner-1"))
	assert.Equal(t, StateAccepted, conv.State)
}

func TestConversation_IsParticipant(t *testing.T) {
	conv := NewConversation("owner-1", "adopter-1", "post-1")

	assert.True(t, conv.IsParticipant("owner-1"))
	assert.True(t, conv.IsParticipant("adopter-1"))
	assert.False(t, conv.IsParticipant("stranger"))
}

func TestNewMessage(t *testing.T) {
	msg, err := NewMessage("chat-1", "s", "r", "  hello  ")
	require.NoError(t, err)
	assert.Equal(t, "hello", msg.Body)
	assert.False(t, msg.Seen)
	assert.False(t, msg.Timestamp.IsZero())

	_, err = NewMessage("chat-1", "s", "r", "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}
