// Package firebasedb adapts the Firebase Realtime Database to the store
// interface. The admin SDK offers no streaming listener, so Subscribe polls
// the watched path and reports snapshots when they change.
package firebasedb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"firebase.google.com/go/v4/db"

	"naturexpress-cargo-backend/internal/logger"
	"naturexpress-cargo-backend/internal/store"
)

// DefaultPollInterval paces subscription polling when no interval is
// configured.
const DefaultPollInterval = 3 * time.Second

type Client struct {
	db   *db.Client
	poll time.Duration
}

var _ store.Store = (*Client)(nil)

// New wraps a Realtime Database client. pollInterval <= 0 selects
// DefaultPollInterval.
func New(dbc *db.Client, pollInterval time.Duration) *Client {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &Client{db: dbc, poll: pollInterval}
}

func (c *Client) GenerateKey(ctx context.Context, collection string) (string, error) {
	child, err := c.db.NewRef(collection).Push(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("generate key under %s: %w", collection, err)
	}
	return child.Key, nil
}

func (c *Client) Set(ctx context.Context, path string, record any) error {
	logger.StoreCall("set", path)
	err := c.db.NewRef(path).Set(ctx, record)
	logger.StoreResult("set", path, err)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (c *Client) Get(ctx context.Context, path string, into any) error {
	logger.StoreCall("get", path)
	err := c.db.NewRef(path).Get(ctx, into)
	logger.StoreResult("get", path, err)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

func (c *Client) Delete(ctx context.Context, path string) error {
	logger.StoreCall("delete", path)
	err := c.db.NewRef(path).Delete(ctx)
	logger.StoreResult("delete", path, err)
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}

func (c *Client) QueryByField(ctx context.Context, collection, field string, value, into any) error {
	q := c.db.NewRef(collection).OrderByChild(field).EqualTo(value)
	if err := q.Get(ctx, into); err != nil {
		return fmt.Errorf("query %s by %s: %w", collection, field, err)
	}
	return nil
}

// Subscribe polls path every poll interval. onChange fires with the initial
// snapshot and again whenever the raw value differs from the last delivered
// one. Cancel stops the poller and waits for it to exit, so no callback
// starts after it returns; callbacks must not cancel their own subscription.
func (c *Client) Subscribe(path string, onChange func(json.RawMessage), onError func(error)) *store.Subscription {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(c.poll)
		defer ticker.Stop()

		var last []byte
		first := true
		for {
			var raw json.RawMessage
			err := c.db.NewRef(path).Get(ctx, &raw)
			// A read racing Cancel may still complete; never deliver
			// after cancellation.
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				onError(err)
			} else if first || !bytes.Equal(raw, last) {
				first = false
				last = raw
				onChange(raw)
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return store.NewSubscription(func() {
		cancel()
		<-done
	})
}
