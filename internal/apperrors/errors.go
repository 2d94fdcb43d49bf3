package apperrors

import (
	"errors"
)

var (
	ErrMissingConfig = errors.New("missing required configuration")

	ErrMissingFields = errors.New("missing fields")
	ErrMissingReply  = errors.New("missing reply")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")

	ErrMessageNotFound = errors.New("message does not exist")
)
