package services

import "errors"

var (
	ErrEmailTaken    = errors.New("email already in use")
	ErrEmailNotFound = errors.New("email not found")
	ErrWrongPassword = errors.New("wrong password")
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidToken  = errors.New("invalid token")
	// ErrNotFoundOrForbidden covers both a missing row and a row owned by someone else.
	ErrNotFoundOrForbidden = errors.New("not found or access denied")
)
