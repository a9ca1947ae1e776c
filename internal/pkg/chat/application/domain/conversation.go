package chat

import "time"

// RequestState is the adoption-request state of a conversation.
// NEW -> REQUESTED via SendRequest; REQUESTED -> NEW via Cancel/Reject;
// REQUESTED -> ACCEPTED via Accept. ACCEPTED is terminal: no further
// request transition is allowed. Cancel and reject return the conversation
// to NEW, so a later re-request succeeds again.
type RequestState string

const (
	StateNew       RequestState = "NEW"
	StateRequested RequestState = "REQUESTED"
	StateAccepted  RequestState = "ACCEPTED"
)

// Conversation binds one owner, one adopter and one adoption post, plus the
// request-flow state. Exactly one conversation exists per
// (owner, adopter, post) triple.
type Conversation struct {
	ID             string       `db:"id" json:"id"`
	OwnerID        string       `db:"owner_id" json:"ownerId"`
	AdopterID      string       `db:"adopter_id" json:"adopterId"`
	AdoptionPostID string       `db:"adoption_post_id" json:"adoptionPostId"`
	State          RequestState `db:"state" json:"state"`
	CreatedAt      time.Time    `db:"created_at" json:"createdAt"`
}

// NewConversation builds a conversation in its initial state.
func NewConversation(ownerID, adopterID, adoptionPostID string) Conversation {
	return Conversation{
		OwnerID:        ownerID,
		AdopterID:      adopterID,
		AdoptionPostID: adoptionPostID,
		State:          StateNew,
		CreatedAt:      time.Now().UTC(),
	}
}

// IsParticipant tells whether userID is the owner or the adopter.
func (c *Conversation) IsParticipant(userID string) bool {
	return userID == c.OwnerID || userID == c.AdopterID
}

// SendRequest moves NEW -> REQUESTED. Only the adopter may send a request.
func (c *Conversation) SendRequest(callerID string) error {
	if callerID != c.AdopterID {
		return ErrNotAdopter
	}
	switch c.State {
	case StateAccepted:
		return ErrAlreadyAccepted
	case StateRequested:
		return ErrRequestPending
	}
	c.State = StateRequested
	return nil
}

// CancelRequest moves REQUESTED -> NEW. Only the adopter may cancel.
func (c *Conversation) CancelRequest(callerID string) error {
	if callerID != c.AdopterID {
		return ErrNotAdopter
	}
	switch c.State {
	case StateAccepted:
		return ErrAlreadyAccepted
	case StateNew:
		return ErrRequestNotSent
	}
	c.State = StateNew
	return nil
}

// AcceptRequest moves REQUESTED -> ACCEPTED. Only the owner may accept.
func (c *Conversation) AcceptRequest(callerID string) error {
	if callerID != c.OwnerID {
		return ErrNotOwner
	}
	switch c.State {
	case StateAccepted:
		return ErrAlreadyAccepted
	case StateNew:
		return ErrRequestNotSent
	}
	c.State = StateAccepted
	return nil
}

// RejectRequest moves REQUESTED -> NEW. Only the owner may reject.
func (c *Conversation) RejectRequest(callerID string) error {
	if callerID != c.OwnerID {
		return ErrNotOwner
	}
	switch c.State {
	case StateAccepted:
		return ErrAlreadyAccepted
	case StateNew:
		return ErrRequestNotSent
	}
	c.State = StateNew
	return nil
}
