// Package events publishes request lifecycle events for downstream
// consumers (tracking, analytics). Publishing is best effort: a failed
// publish never blocks or rolls back the write that triggered it.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	skafka "github.com/segmentio/kafka-go"

	"naturexpress-cargo-backend/internal/domain"
)

const (
	TypeRequestCreated       = "request.created"
	TypeRequestStatusChanged = "request.status_changed"
)

// RequestEvent is the wire shape of a lifecycle event.
type RequestEvent struct {
	Type       string               `json:"type"`
	RequestID  string               `json:"requestId"`
	ServiceID  string               `json:"serviceId"`
	UserID     string               `json:"userId"`
	FromStatus domain.RequestStatus `json:"fromStatus,omitempty"`
	ToStatus   domain.RequestStatus `json:"toStatus"`
	OccurredAt int64                `json:"occurredAt"` // ms since epoch
}

// Publisher is the interface services publish through.
type Publisher interface {
	Publish(ctx context.Context, key string, event RequestEvent) error
	Close() error
}

// Writer is the subset of the kafka writer we need, for injectable tests.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// KafkaPublisher writes JSON events to a kafka topic.
type KafkaPublisher struct {
	writer Writer
}

var _ Publisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(brokerURL, topic string) *KafkaPublisher {
	w := &skafka.Writer{
		Addr:     skafka.TCP(brokerURL),
		Topic:    topic,
		Balancer: &skafka.LeastBytes{},
	}
	return &KafkaPublisher{writer: w}
}

// NewKafkaPublisherWithWriter allows injecting a test writer.
func NewKafkaPublisherWithWriter(w Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) Publish(ctx context.Context, key string, event RequestEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	msg := skafka.Message{Key: []byte(key), Value: value}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher discards events; used when no broker is configured.
type NopPublisher struct{}

var _ Publisher = NopPublisher{}

func (NopPublisher) Publish(context.Context, string, RequestEvent) error { return nil }
func (NopPublisher) Close() error                                       { return nil }
