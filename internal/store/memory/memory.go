// Package memory is an in-process Store used by tests and local development.
// Writes fan out to subscribers synchronously, so tests observe updates
// without sleeping. Error fields allow injecting collaborator failures.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/google/uuid"

	"naturexpress-cargo-backend/internal/store"
)

type subscriber struct {
	path     string
	onChange func(json.RawMessage)
	onError  func(error)

	mu        sync.Mutex
	cancelled bool
}

// deliver invokes onChange unless the subscription has been cancelled.
// Holding mu across the callback makes Cancel wait for an in-flight
// delivery, so no callback starts after Cancel returns. Callbacks must not
// cancel their own subscription.
func (sub *subscriber) deliver(snapshot json.RawMessage) {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	if sub.cancelled {
		return
	}
	sub.onChange(snapshot)
}

// Store keeps records keyed by full path ("collection/key"). The zero value
// is not usable; call New.
type Store struct {
	mu      sync.Mutex
	data    map[string]json.RawMessage
	subs    map[int]*subscriber
	nextSub int

	// Injectable failures for exercising error paths.
	KeyErr    error
	SetErr    error
	GetErr    error
	DeleteErr error
	QueryErr  error

	// Writes counts successful Set calls, for asserting write volume.
	Writes int
}

func New() *Store {
	return &Store{
		data: make(map[string]json.RawMessage),
		subs: make(map[int]*subscriber),
	}
}

func (s *Store) GenerateKey(_ context.Context, _ string) (string, error) {
	if s.KeyErr != nil {
		return "", s.KeyErr
	}
	return uuid.NewString(), nil
}

func (s *Store) Set(_ context.Context, path string, record any) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode record for %s: %w", path, err)
	}

	s.mu.Lock()
	s.data[path] = raw
	s.Writes++
	notify := s.pendingNotifications(path)
	s.mu.Unlock()

	deliver(notify)
	return nil
}

func (s *Store) Get(_ context.Context, path string, into any) error {
	if s.GetErr != nil {
		return s.GetErr
	}
	s.mu.Lock()
	raw := s.snapshotLocked(path)
	s.mu.Unlock()
	return json.Unmarshal(raw, into)
}

func (s *Store) Delete(_ context.Context, path string) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.mu.Lock()
	delete(s.data, path)
	for p := range s.data {
		if strings.HasPrefix(p, path+"/") {
			delete(s.data, p)
		}
	}
	notify := s.pendingNotifications(path)
	s.mu.Unlock()

	deliver(notify)
	return nil
}

func (s *Store) QueryByField(_ context.Context, collection, field string, value, into any) error {
	if s.QueryErr != nil {
		return s.QueryErr
	}
	want, err := normalize(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	matches := make(map[string]json.RawMessage)
	prefix := collection + "/"
	for p, raw := range s.data {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal(raw, &rec); err != nil {
			continue
		}
		if reflect.DeepEqual(rec[field], want) {
			matches[strings.TrimPrefix(p, prefix)] = raw
		}
	}
	s.mu.Unlock()

	raw, err := json.Marshal(matches)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, into)
}

func (s *Store) Subscribe(path string, onChange func(json.RawMessage), onError func(error)) *store.Subscription {
	sub := &subscriber{path: path, onChange: onChange, onError: onError}

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = sub
	initial := s.snapshotLocked(path)
	s.mu.Unlock()

	// Initial snapshot, like a value listener attach.
	sub.deliver(initial)

	return store.NewSubscription(func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()

		// A writer may have collected this subscriber before we left the
		// map; flag it so the pending delivery is dropped.
		sub.mu.Lock()
		sub.cancelled = true
		sub.mu.Unlock()
	})
}

// SubscriberCount reports open subscriptions, for teardown assertions.
func (s *Store) SubscriberCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

type notification struct {
	sub      *subscriber
	snapshot json.RawMessage
}

// pendingNotifications collects subscribers affected by a change at path.
// Callers deliver them after releasing the store lock; deliver re-checks
// cancellation so a subscriber cancelled in that window stays silent.
func (s *Store) pendingNotifications(path string) []notification {
	var out []notification
	for _, sub := range s.subs {
		if sub.path == path ||
			strings.HasPrefix(path, sub.path+"/") ||
			strings.HasPrefix(sub.path, path+"/") {
			out = append(out, notification{sub: sub, snapshot: s.snapshotLocked(sub.path)})
		}
	}
	return out
}

func deliver(notes []notification) {
	for _, n := range notes {
		n.sub.deliver(n.snapshot)
	}
}

// snapshotLocked renders the JSON value at path: the exact record, a keyed
// object of children for a collection path, or null.
func (s *Store) snapshotLocked(path string) json.RawMessage {
	if raw, ok := s.data[path]; ok {
		return raw
	}
	children := make(map[string]json.RawMessage)
	prefix := path + "/"
	for p, raw := range s.data {
		if strings.HasPrefix(p, prefix) {
			children[strings.TrimPrefix(p, prefix)] = raw
		}
	}
	if len(children) == 0 {
		return json.RawMessage("null")
	}
	raw, err := json.Marshal(children)
	if err != nil {
		return json.RawMessage("null")
	}
	return raw
}

// normalize round-trips v through JSON so queries compare like the wire
// representation (numbers become float64, etc.).
func normalize(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
