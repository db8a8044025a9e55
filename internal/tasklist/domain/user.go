package domain

import "time"

type User struct {
	ID           int64
	Username     string
	PasswordHash string // hex-encoded SHA-256 digest
	CreatedAt    time.Time
}
