package service

import "errors"

// Failure taxonomy surfaced to the HTTP layer. Handlers map these to status
// codes with errors.Is; anything unrecognized becomes a 500.
var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTokenMissing       = errors.New("no token provided")
	ErrTokenExpired       = errors.New("token has expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidPrice       = errors.New("price must be a non-negative number")
	ErrMenuItemNotFound   = errors.New("menu item not found")
)
