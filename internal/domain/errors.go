package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Cache errors
	ErrMsgNotFound         = "not found"
	ErrMsgSerialization    = "serialization error"
	ErrMsgDeserialization  = "deserialization error"
	ErrMsgStoreUnavailable = "store unavailable"

	// Leaderboard errors
	ErrMsgNoParticipants = "no participants in competition"

	// Input errors
	ErrMsgInvalidInput      = "invalid input"
	ErrMsgIdentifierEmpty   = "identifier is empty"
	ErrMsgIdentifierTooLong = "identifier is too long"
	ErrMsgIdentifierUnsafe  = "identifier contains invalid characters"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrNotFound is a cache miss: the key is absent or expired, or the member
	// is not in the ranking set.
	ErrNotFound = errors.New(ErrMsgNotFound)

	// ErrSerialization means a value could not be encoded for storage.
	ErrSerialization = errors.New(ErrMsgSerialization)

	// ErrDeserialization means stored bytes did not match the expected shape.
	ErrDeserialization = errors.New(ErrMsgDeserialization)

	// ErrStoreUnavailable covers transport and connection failures talking to the store.
	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)

	// ErrNoParticipants is returned by prize calculation on an empty leaderboard.
	ErrNoParticipants = errors.New(ErrMsgNoParticipants)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
