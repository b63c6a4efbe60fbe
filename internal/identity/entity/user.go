package entity

import "time"

// User is a registered account able to authenticate against the API.
type User struct {
	ID        int64
	Email     string
	Password  string
	CreatedAt time.Time
}

// NewUser carries the fields persisted when an account is created after a
// successful email verification.
type NewUser struct {
	ID    int64
	Email string
}
