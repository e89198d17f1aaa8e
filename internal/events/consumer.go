package events

import (
	"context"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"schoolhub/pkg/logging"
)

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// DeliveryFunc hands a decoded event to its delivery channel.
type DeliveryFunc func(ctx context.Context, event *NotificationEvent) error

func NewReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   topic,
	})
}

// Consume fetches notification events until ctx is cancelled. Undecodable messages are
// logged and committed; failed deliveries are left uncommitted for redelivery.
func Consume(ctx context.Context, reader MessageReader, deliver DeliveryFunc) error {
	logger, _ := logging.GetFromContext(ctx)

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				if logger != nil {
					logger.Info(ctx, "Consumer shutting down")
				}
				return nil
			}
			if logger != nil {
				logger.Error(ctx, "Failed to fetch message", zap.Error(err))
			}
			continue
		}

		event, err := DecodeNotificationEvent(msg.Value)
		if err != nil {
			if logger != nil {
				logger.Warn(ctx, "Failed to decode notification event",
					zap.String("topic", msg.Topic),
					zap.ByteString("value", msg.Value),
					zap.Error(err),
				)
			}
		} else if err := deliver(ctx, event); err != nil {
			if logger != nil {
				logger.Error(ctx, "Failed to deliver notification",
					zap.String("notification_id", event.Id.String()),
					zap.Error(err),
				)
			}
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil && logger != nil {
			logger.Error(ctx, "Failed to commit message",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}
	}
}
