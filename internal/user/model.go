package user

import "time"

// User represents a user in the system. Accounts are provisioned by the
// OAuth gateway on first login; this service only stores the profile.
type User struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	AvatarURL  *string   `json:"avatar_url,omitempty"`
	Provider   string    `json:"provider"` // e.g. "google", "github"
	ProviderID string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}
