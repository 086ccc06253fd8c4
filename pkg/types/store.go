package types

import "context"

// StateKey is the single key under which the serialized AppState lives.
// The whole domain state is one document; there are no per-entity records.
const StateKey = "STATE"

// Store is a durable key-value store holding the serialized snapshot.
// Callers attach with a Config, read/write the snapshot, and detach when
// done. Implementations report failures as *StorageError so callers can
// tell a non-durable save apart from a validation reject.
type Store interface {
	// Attach connects the store to the backend described by config.
	// Creates the data directory if needed. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrStoreDetached.
	Detach() error

	// Get returns the value stored under key. The second result is false
	// if no value is present; an absent value is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Clear removes every stored value.
	Clear(ctx context.Context) error
}
