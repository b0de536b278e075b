package metadata

import (
	"context"
)

// Repository is a small key/value table for facade state that does not
// deserve its own table: the admin flag and the user settings blob.
type Repository interface {
	// Get returns the value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set inserts or replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
}
