// Package event holds the payloads and routing keys shared by every service
// on the event channel. Payloads are flat, versionless JSON records: new
// fields must be additive and optional so older consumers keep working.
package event

// Routing keys published on the exchange. Each consumer binds its queue to
// the keys it needs (see DefaultBindings).
const (
	KeyChatNotification = "chat.notification"
	KeyRequestAccepted  = "chat.request.accepted"
	KeyNewPost          = "post.new"
	KeySavedSearchMatch = "savedsearch.match"
)

// Consumer queue names.
const (
	QueueEmail       = "email"
	QueueListing     = "listing"
	QueueSavedSearch = "savedsearch"
)

// DefaultBindings maps each routing key to the durable queues bound to it.
func DefaultBindings() map[string][]string {
	return map[string][]string{
		KeyChatNotification: {QueueEmail},
		KeySavedSearchMatch: {QueueEmail},
		KeyRequestAccepted:  {QueueListing},
		KeyNewPost:          {QueueSavedSearch},
	}
}

// EmailMessage notification kinds.
const (
	TypeNewMessage      = "new-message"
	TypeAdoptionRequest = "adoption-request"
	TypeAdoptionAccept  = "adoption-accept"
)

// Request lifecycle sub-types carried in EmailMessage.Message for
// adoption-request / adoption-accept notifications.
const (
	RequestActionSend   = "send"
	RequestActionCancel = "cancel"
	RequestActionAccept = "accept"
	RequestActionReject = "reject"
)

// EmailMessage is published on chat.notification for chat and request
// lifecycle notifications. For Type new-message, Message is the chat body;
// for request lifecycle types it is the action sub-type.
type EmailMessage struct {
	ReceiverID string `json:"receiverId"`
	SenderID   string `json:"senderId"`
	Message    string `json:"message"`
	Type       string `json:"type"`
}

// RequestAccepted is published on chat.request.accepted when an owner
// accepts an adoption request.
type RequestAccepted struct {
	AdoptionPostID string `json:"adoptionPostId"`
	AdopterID      string `json:"adopterId"`
}

// AdoptionPostSummary is published on post.new when a listing is created.
// It carries the attributes the matching engine evaluates plus enough
// identity to render a notification later.
type AdoptionPostSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Species  string `json:"species"`
	Breed    string `json:"breed"`
	Age      int    `json:"age"` // months
	Gender   string `json:"gender"`
	Color    string `json:"color"`
	Location string `json:"location"`
	OwnerID  string `json:"ownerId"`
}

// SearchMatch is published on savedsearch.match, one event per matching
// user, so a single delivery failure affects one notification only.
type SearchMatch struct {
	AdoptionPostSummary
	UserID string `json:"userId"`
}
