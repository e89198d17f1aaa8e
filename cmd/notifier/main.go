package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"schoolhub/internal/config"
	"schoolhub/internal/events"
	"schoolhub/pkg/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.NewNotifier()
	if err != nil {
		panic(fmt.Sprintf("cannot create config: %v", err))
	}

	zapLogger, err := logging.NewZap(cfg.Env)
	if err != nil {
		panic(fmt.Sprintf("cannot create logger: %v", err))
	}
	logger := logging.New(zapLogger)
	defer func() { _ = logger.Sync() }()
	ctx = logging.ContextWithLogger(ctx, logger)

	logger.Info(ctx, "Starting notification consumer",
		zap.String("topic", cfg.KafkaNotificationTopic),
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("group_id", cfg.KafkaGroupID),
	)

	reader := events.NewReader(cfg.KafkaBrokers, cfg.KafkaNotificationTopic, cfg.KafkaGroupID)
	defer func() { _ = reader.Close() }()

	if err := events.Consume(ctx, reader, deliver); err != nil {
		logger.Error(ctx, "consumer stopped", zap.Error(err))
		os.Exit(1)
	}
}

// deliver logs the notification; mail or push delivery would plug in here.
func deliver(ctx context.Context, event *events.NotificationEvent) error {
	fields := []zap.Field{
		zap.String("notification_id", event.Id.String()),
		zap.String("recipient_role", event.RecipientRole.String()),
		zap.String("title", event.Title),
	}
	if event.RecipientId != nil {
		fields = append(fields, zap.String("recipient_id", event.RecipientId.String()))
	}
	if logger, ok := logging.GetFromContext(ctx); ok {
		logger.Info(ctx, "Delivering notification", fields...)
	}
	return nil
}
