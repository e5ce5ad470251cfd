package kvstore

import "context"

// Store is a durable key-value byte store. The domain store keeps one key
// per entity collection, each holding a JSON-serialized array.
type Store interface {
	// Get returns the value for key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set writes a single value.
	Set(ctx context.Context, key string, value []byte) error
	// SetAll writes every entry atomically from the caller's point of view.
	SetAll(ctx context.Context, values map[string][]byte) error
}
