package sessiondto

import "time"

type AuthOutput struct {
	Token         string    `json:"token"`
	UserID        string    `json:"user_id"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"email_verified"`
	ExpiresAt     time.Time `json:"expires_at"`
}
