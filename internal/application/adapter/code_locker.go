// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// CodeLocker serializes product code allocation for one operator and prefix.
type CodeLocker interface {
	// Lock blocks until the key is held or ctx is done.
	// The returned function releases the lock.
	Lock(ctx context.Context, key string) (func(), error)
}
