package services

import "errors"

var (
	// ErrInvalidInput rejects a request before any storage access.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials covers both unknown username and wrong password;
	// login never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserExists is a uniqueness violation on username or email.
	ErrUserExists = errors.New("user already exists")

	// ErrNotFound means the referenced user or review does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the review exists but the caller is not its author.
	ErrForbidden = errors.New("forbidden")
)
