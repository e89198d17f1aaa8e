package ctxdata

import (
	"context"

	"github.com/google/uuid"
)

type traceIDKey struct{}
type actorKey struct{}

var (
	traceIDKeyInstance = traceIDKey{}
	actorKeyInstance   = actorKey{}
)

// Actor is the authenticated caller of a request.
type Actor struct {
	UserID uuid.UUID
	Role   string
}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKeyInstance, traceID)
}

func GetTraceID(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(traceIDKeyInstance).(string)
	return traceID, ok
}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKeyInstance, actor)
}

func GetActor(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKeyInstance).(Actor)
	return actor, ok
}
