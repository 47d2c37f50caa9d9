// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an entity ID is missing or not positive.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyEmail is returned when a user email is empty.
	ErrEmptyEmail = errors.New("email cannot be empty")

	// ErrEmptyHashedPassword is returned when a stored user has no password hash.
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")

	// ErrEmptyName is returned when a category or item name is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrNameTooLong is returned when a category or item name exceeds 50 characters.
	ErrNameTooLong = errors.New("name must be at most 50 characters")

	// ErrEmptyDescription is returned when a description is empty.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrDescriptionTooLong is returned when a description exceeds 5000 characters.
	ErrDescriptionTooLong = errors.New("description must be at most 5000 characters")

	// ErrForbidden is returned when a caller attempts to mutate a resource
	// owned by a different user.
	ErrForbidden = errors.New("caller does not own resource")
)
