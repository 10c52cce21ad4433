package domain

import "time"

type ID string

type User struct {
	ID           ID
	Email        string
	PasswordHash string
	IsActive     bool
	IsSuperuser  bool
	CreatedAt    time.Time
}
