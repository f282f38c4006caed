// Package store provides the durable key-value boundary: one JSON-serialized
// array of entity records per collection key. Backends share the same
// contract so repositories never see which driver is underneath.
package store

import "context"

// Collection keys, one per entity type.
const (
	KeyArticles   = "articles"
	KeyNotes      = "notes"
	KeyPages      = "pages"
	KeyCategories = "categories"
	KeyRoles      = "roles"
	KeyUsers      = "users"
	KeySessions   = "sessions"
)

// KV is the durable blob store. Get returns (nil, nil) for an absent key.
// Put overwrites the whole value for a key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}
