package domain

import "github.com/google/uuid"

// NewID generates an opaque unique identifier for bookmarks and folders.
func NewID() string {
	return uuid.NewString()
}
