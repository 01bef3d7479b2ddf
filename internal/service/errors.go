package service

import "errors"

// Sentinel errors the controllers translate into HTTP statuses. Database
// driver errors are never among these; they pass through wrapped and map to
// a generic 500.
var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenNotRegistered = errors.New("refresh token not registered")
	ErrNotFound           = errors.New("not found")
)
