// Package store provides durable key-value persistence behind a small
// adapter interface, with sqlite and compressed-file backends.
package store

import (
	"context"
)

// Namespaces used by the service.
const (
	// NamespaceImageCache maps lookup titles to resolved image URLs.
	NamespaceImageCache = "imagecache"
	// NamespaceLeaderboard holds the single top-scores slot.
	NamespaceLeaderboard = "leaderboard"
)

// KV is the durable key-value contract. Corrupt or missing values read as
// absent, never as an error; persistence failures must not take the game
// down.
type KV interface {
	// Get returns the value for key, and whether it was present.
	Get(ctx context.Context, namespace, key string) ([]byte, bool, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, namespace, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, namespace, key string) error

	// Close releases backend resources.
	Close() error
}
