package services

import "errors"

var (
	// ErrInvalidPayload wraps validation failures on request payloads.
	ErrInvalidPayload = errors.New("invalid payload")

	ErrInvalidID      = errors.New("invalid id format")
	ErrInvalidSortKey = errors.New(`invalid sorting, allowed values are "date", "comments" or "likes"`)
	ErrInvalidOwnerID = errors.New("invalid postOwner format")
	ErrOwnerNotFound  = errors.New("invalid postOwner")
	ErrSelfLike       = errors.New("user cannot like own post")
	ErrEmptyComment   = errors.New("comment text is required")
	ErrEmailTaken     = errors.New("email already registered")
	ErrBadCredentials = errors.New("email or password is wrong")
)
