package user

import "time"

// User is one registered account. The username is unique and never changes;
// the password hash never leaves the storage layer.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
