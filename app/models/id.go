package models

import "github.com/google/uuid"

// NewID generates a fresh document identifier.
func NewID() string {
	return uuid.NewString()
}

// IsValidID reports whether s is a syntactically valid document identifier.
func IsValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
