package domain

import "errors"

var ErrUserNotFound = errors.New("usuario no encontrado")
var ErrDuplicateEmail = errors.New("correo duplicado")

// User is the identity returned by the access-validation procedure. No session
// is persisted; the backend only reports whether the credentials matched.
type User struct {
	ID       int64
	Email    string
	FullName string
}

// UserAccount is an administrable login account. PasswordHash never leaves the
// backend.
type UserAccount struct {
	ID           int64
	Email        string
	FullName     string
	PasswordHash string
	Active       bool
}

// AccessDeniedError carries the human-readable reason reported by the store's
// access-validation procedure when a login does not match.
type AccessDeniedError struct {
	Message string
}

func (e *AccessDeniedError) Error() string { return e.Message }
