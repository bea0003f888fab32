package core

import "time"

// Profile is the application's own record about an account, separate from
// the identity record. Its primary key is the identity subject id; the
// human-readable AccountID ("UID_<digits>") is a secondary unique column
// and is never used as a foreign key.
type Profile struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Username  string    `json:"username"`
	AccountID string    `json:"accountId"`
	CreatedAt time.Time `json:"createdAt"`
}
