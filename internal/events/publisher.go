package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"schoolhub/internal/model"
	"schoolhub/pkg/utils"
)

// NotificationEvent is the message published for every stored notification.
type NotificationEvent struct {
	Id            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Message       string     `json:"message"`
	RecipientRole model.Role `json:"recipientRole"`
	RecipientId   *uuid.UUID `json:"recipientId,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func NewNotificationEvent(n *model.Notification) NotificationEvent {
	return NotificationEvent{
		Id:            n.Id,
		Title:         n.Title,
		Message:       n.Message,
		RecipientRole: n.RecipientRole,
		RecipientId:   n.RecipientId,
		CreatedAt:     n.CreatedAt,
	}
}

func DecodeNotificationEvent(value []byte) (*NotificationEvent, error) {
	var event NotificationEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notification event: %w", err)
	}
	if event.Id == uuid.Nil {
		return nil, fmt.Errorf("notification event without id")
	}
	return &event, nil
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Config struct {
	Brokers []string
	Topic   string
}

// Publisher writes notification events to Kafka, retrying transient failures behind a circuit breaker.
type Publisher struct {
	writer  MessageWriter
	breaker *utils.CircuitBreaker
	backoff utils.Backoff
}

func NewPublisher(cfg Config) *Publisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return NewPublisherWithWriter(writer)
}

func NewPublisherWithWriter(writer MessageWriter) *Publisher {
	return &Publisher{
		writer:  writer,
		breaker: utils.NewCircuitBreaker(5, 30*time.Second),
		backoff: utils.Backoff{MaxRetries: 3, BaseDelay: 100 * time.Millisecond, MaxDelay: 2 * time.Second},
	}
}

func (p *Publisher) PublishNotification(ctx context.Context, n *model.Notification) error {
	msg, err := encodeEvent(NewNotificationEvent(n))
	if err != nil {
		return err
	}

	_, err = utils.RetryWithCircuitBreaker(ctx, p.breaker, p.backoff, func() (struct{}, error) {
		return struct{}{}, p.writer.WriteMessages(ctx, msg)
	})
	if err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

// encodeEvent keys messages by recipient role.
func encodeEvent(event NotificationEvent) (kafka.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal notification event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(event.RecipientRole.String()),
		Value: value,
	}, nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
