package core

import "time"

// User is the identity record: login email plus the credential used to
// prove it. The profile row (see Profile) carries everything else the
// application knows about an account.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"emailVerified"`
	PasswordHash  string    `json:"-"` // Never expose in JSON
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
