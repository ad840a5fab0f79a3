package domain

import (
	"errors"
	"strings"
)

const (
	maxNameLength  = 120
	maxEmailLength = 200
)

var (
	ErrInvalidName  = errors.New("user name must be non-empty and at most 120 characters")
	ErrInvalidEmail = errors.New("user email must be non-empty and at most 200 characters")
)

// User is an ordering identity. Registration happens elsewhere in the
// platform; this service only validates and reads users.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewUser validates the write-time invariants on name and email.
func NewUser(name, email string) (User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || len(name) > maxNameLength {
		return User{}, ErrInvalidName
	}
	if email == "" || len(email) > maxEmailLength {
		return User{}, ErrInvalidEmail
	}
	return User{Name: name, Email: email}, nil
}
