package services

import "errors"

var (
	// ErrMissingFields means the request omitted a required identifier.
	ErrMissingFields = errors.New("missing fields")
	// ErrUserNotFound means the userId does not resolve to an existing user.
	ErrUserNotFound = errors.New("user not found")
)
