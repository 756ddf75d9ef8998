package service

import "errors"

// Error taxonomy surfaced by the service layer. Handlers translate these into
// transport responses; anything not matching a sentinel is a dependency
// failure (underlying store unreachable or failed) and is retryable by the
// client, unlike the permanent rejections below.
var (
	// ErrValidation marks a missing or empty required field.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized marks an admin credential mismatch.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidMode marks an unrecognized edit workflow phase.
	ErrInvalidMode = errors.New("invalid mode")
	// ErrStorageWrite marks a media persistence failure; the media reference
	// was not linked into the data model.
	ErrStorageWrite = errors.New("storage write failed")
)
