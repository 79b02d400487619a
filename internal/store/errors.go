package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Entity-specific variants below wrap it so callers can match
	// either the generic or the specific error.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate of
	// a unique entity (e.g., the same word twice for one user).
	ErrDuplicate = errors.New("entity already exists")

	// ErrVocabularyItemNotFound indicates that the requested vocabulary item
	// does not exist in the store.
	ErrVocabularyItemNotFound = fmt.Errorf("%w: vocabulary item", ErrNotFound)

	// ErrStudySessionNotFound indicates that the requested study session does
	// not exist in the store.
	ErrStudySessionNotFound = fmt.Errorf("%w: study session", ErrNotFound)

	// ErrWordExists indicates that the user already studies the given word.
	ErrWordExists = fmt.Errorf("%w: word", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
