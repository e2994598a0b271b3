package repository

import "errors"

// Sentinel kinds for registry errors.
var (
	ErrNotFound     = errors.New("participant not found")
	ErrRoleMismatch = errors.New("participant role class mismatch")
	ErrInvalidLimit = errors.New("invalid ranking limit")
)
