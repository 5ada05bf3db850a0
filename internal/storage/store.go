// Package storage holds the key-value stores that play the browser's
// local storage for the toolbar.
package storage

import "context"

// TokenKey is the only key the toolbar reads or removes.
const TokenKey = "token"

// KeyValueStore is persistent client storage addressed by string key.
// Removing an absent key is not an error.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
