package entity

import "time"

// UserState instantánea del almacén de usuarios.
type UserState struct {
	Users       []User
	Loading     bool
	Error       string // "" = sin error
	LastUpdated *time.Time
	TotalCount  int
}
