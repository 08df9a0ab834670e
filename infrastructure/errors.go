package infrastructure

import "errors"

var (
	ErrUnknownUser        = errors.New("unknown user")
	ErrUnknownGroup       = errors.New("unknown group")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrDuplicateGroupName = errors.New("group name already taken")
	ErrAlreadyMember      = errors.New("user is already a group member")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrEmptyContent       = errors.New("empty message content")
	ErrNotMember          = errors.New("sender is not a member of the group")
	ErrWeakPassword       = errors.New("password is too weak")

	// ErrStorage wraps any store error not classified above.
	ErrStorage = errors.New("storage failure")
)
