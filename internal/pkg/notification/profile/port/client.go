package port

import "context"

// Profile is the display data the user service returns for a user.
type Profile struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
}

// DisplayName joins name and surname, skipping whichever is empty.
func (p *Profile) DisplayName() string {
	switch {
	case p.Name == "":
		return p.Surname
	case p.Surname == "":
		return p.Name
	}
	return p.Name + " " + p.Surname
}

// Client resolves user display data through the profile collaborator.
// Implementations must bound the lookup with a timeout; callers treat a
// failed lookup as a degraded notification, never as a retried command.
type Client interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
}

// Fallback is the identity used when a lookup fails, so message
// composition never crashes on a missing profile. Its empty email makes
// the send step drop the notification instead.
func Fallback() *Profile {
	return &Profile{Name: "adottaTO user"}
}
