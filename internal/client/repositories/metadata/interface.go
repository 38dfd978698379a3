// Package metadata is the local key/value store. Keys are chosen by callers;
// values are opaque bytes.
package metadata

import "context"

// Repository stores small values by key.
//
// Get returns (nil, nil) for a key that was never set.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
