package domain

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrUnknownUser = errors.New("unknown user")
)
