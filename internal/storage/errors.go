// Package storage persists continuation walk state in a single JSON file so
// that an interrupted listing can be resumed by a later process.
package storage

import (
	"errors"
	"fmt"
)

// Sentinel errors for storage operations.
var (
	// ErrNotFound indicates no walk is stored under the name.
	ErrNotFound = errors.New("storage: not found")
	// ErrInvalidInput indicates a walk without name or state.
	ErrInvalidInput = errors.New("storage: invalid input")
	// ErrStorageCorrupt indicates the file could not be decoded.
	ErrStorageCorrupt = errors.New("storage: data corruption detected")
	// ErrLockTimeout indicates another process holds the store.
	ErrLockTimeout = errors.New("storage: lock acquisition timeout")
)

// StorageError wraps storage errors with operation context.
type StorageError struct {
	// Op is the operation that failed ("open", "read", "write", "delete").
	Op string
	// Name is the walk name, if the operation concerned one.
	Name string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("storage: %s walk %s: %v", e.Op, e.Name, e.Err)
	}
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
