// Package common defines shared constants and sentinel errors used across
// the layers of peopled. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Auth errors. Login failures always surface ErrInvalidCredentials,
	// regardless of whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token errors (invalid, malformed or expired bearer token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
