package storage

import "errors"

// Common client storage errors
var (
	// ErrSeedNotFound indicates that no seed phrase is remembered locally
	ErrSeedNotFound = errors.New("seed phrase not found")

	// ErrHabitNotFound indicates that habit was not found in the collection
	ErrHabitNotFound = errors.New("habit not found")

	// ErrAmbiguousHabitRef indicates that a habit reference matches more than one habit
	ErrAmbiguousHabitRef = errors.New("habit reference is ambiguous")
)
