package logging

import (
	"context"

	"go.uber.org/zap"

	"schoolhub/pkg/ctxdata"
)

type loggerKey struct{}

const (
	requestID = "request_id"
	actorID   = "actor_id"
)

var (
	loggerKeyInstance = loggerKey{}
)

type Logger struct {
	l *zap.Logger
}

func New(zapLogger *zap.Logger) *Logger {
	return &Logger{zapLogger}
}

// NewZap builds the process logger. Production encoding is used for env "production".
func NewZap(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func ContextWithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerKeyInstance, logger)
}

func GetFromContext(ctx context.Context) (*Logger, bool) {
	logger, ok := ctx.Value(loggerKeyInstance).(*Logger)
	return logger, ok
}

func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{l.l.With(fields...)}
}

func (l *Logger) Sync() error {
	return l.l.Sync()
}

func (l *Logger) Debug(ctx context.Context, msg string, fields ...zap.Field) {
	l.l.Debug(msg, contextFields(ctx, fields)...)
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...zap.Field) {
	l.l.Info(msg, contextFields(ctx, fields)...)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields ...zap.Field) {
	l.l.Warn(msg, contextFields(ctx, fields)...)
}

func (l *Logger) Error(ctx context.Context, msg string, fields ...zap.Field) {
	l.l.Error(msg, contextFields(ctx, fields)...)
}

func (l *Logger) Fatal(ctx context.Context, msg string, fields ...zap.Field) {
	l.l.Fatal(msg, contextFields(ctx, fields)...)
}

func contextFields(ctx context.Context, fields []zap.Field) []zap.Field {
	if traceID, ok := ctxdata.GetTraceID(ctx); ok {
		fields = append(fields, zap.String(requestID, traceID))
	}
	if actor, ok := ctxdata.GetActor(ctx); ok {
		fields = append(fields, zap.Stringer(actorID, actor.UserID))
	}
	return fields
}
