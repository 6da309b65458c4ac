package domain

import "errors"

// Role is the closed set of roles an account may hold. Raw role strings are
// decoded at the trust boundaries (registration input and token
// verification); unrecognised values are rejected there instead of silently
// behaving like a non-admin.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrInvalidToken = errors.New("invalid token")
var ErrUnknownRole = errors.New("unknown role")

// ParseRole validates a raw role string against the closed enumeration.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleUser:
		return Role(s), nil
	}
	return "", ErrUnknownRole
}

// User models a registered account. PasswordHash never leaves the process:
// it is excluded from JSON and cleared by the service layer before a user is
// handed back to a handler.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Contact      string `json:"contact"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"-"`
}
