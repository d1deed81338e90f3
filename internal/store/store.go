// Package store defines the realtime document store collaborator. All
// persistence in the system goes through this interface; the hosted adapter
// lives in store/firebasedb and an in-memory implementation for tests in
// store/memory.
package store

import (
	"context"
	"encoding/json"
	"sync"
)

// Store is the external record store. Paths are slash-separated, e.g.
// "requests/<id>"; a bare collection name addresses the whole collection.
// The store serializes writes per path (last write wins); no multi-record
// transaction is offered or assumed.
type Store interface {
	// GenerateKey reserves a new unique child key under collection.
	GenerateKey(ctx context.Context, collection string) (string, error)
	// Set replaces the record at path atomically.
	Set(ctx context.Context, path string, record any) error
	// Get reads the record at path once, decoding into into. A missing
	// record decodes as the zero value.
	Get(ctx context.Context, path string, into any) error
	// Delete removes the record at path.
	Delete(ctx context.Context, path string) error
	// QueryByField reads the children of collection whose field equals
	// value, decoding the keyed result set into into.
	QueryByField(ctx context.Context, collection, field string, value, into any) error
	// Subscribe opens a long-lived watch on path. onChange receives the raw
	// snapshot on every change (including the initial state); onError
	// receives delivery failures. The returned subscription MUST be
	// cancelled when the consumer goes away.
	Subscribe(path string, onChange func(snapshot json.RawMessage), onError func(error)) *Subscription
}

// Subscription is a handle on a live watch. Cancel is idempotent and
// releases the watch deterministically; after Cancel returns no further
// callbacks are started.
type Subscription struct {
	once sync.Once
	stop func()
}

// NewSubscription wraps a stop function. Used by Store implementations.
func NewSubscription(stop func()) *Subscription {
	return &Subscription{stop: stop}
}

// Cancel tears the subscription down. Safe to call more than once.
func (s *Subscription) Cancel() {
	s.once.Do(s.stop)
}
