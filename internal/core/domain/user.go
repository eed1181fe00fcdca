package domain

import "time"

// User is an API account. PasswordHash is a bcrypt hash and never leaves the
// repository layer.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
}
