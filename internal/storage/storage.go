package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("storage: key not found")

// KV is the durable medium behind the record store.
//
// Values are opaque JSON blobs; keys are flat strings namespaced by a
// per-collection prefix (e.g. "service_<id>"). Implementations must be
// safe for concurrent use.
type KV interface {
	// Put stores value under key, overwriting any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// DeleteMany removes all given keys in one round trip where possible.
	DeleteMany(ctx context.Context, keys []string) error

	// List returns every key/value pair whose key starts with prefix.
	// An empty prefix lists the whole namespace.
	List(ctx context.Context, prefix string) (map[string][]byte, error)

	// Ping reports whether the medium is reachable.
	Ping(ctx context.Context) error
}
