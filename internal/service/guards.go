package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"schoolhub/internal/errdefs"
	"schoolhub/internal/model"
)

// notFoundAs rewrites a repository ErrNotFound into a message naming the missing entity.
func notFoundAs(err error, kind string, id uuid.UUID) error {
	if errors.Is(err, errdefs.ErrNotFound) {
		return errdefs.Newf(errdefs.ErrNotFound, "%s with Id: %s can't be found.", kind, id)
	}
	return err
}

// ensureRole fails with ErrNotFound when the user is absent and ErrWrongRole when it holds another role.
func ensureRole(ctx context.Context, users IdentityProvider, userId uuid.UUID, role model.Role) (*model.User, error) {
	user, err := users.GetUser(ctx, userId)
	if err != nil {
		return nil, notFoundAs(err, "User", userId)
	}
	if !user.IsInRole(role) {
		return nil, errdefs.Newf(errdefs.ErrWrongRole, "User with id: %s isn't in the correct Role.", userId)
	}
	return user, nil
}

// ensureUnique checks candidate against existing keys. A blank candidate, or one equal to
// currentKey ignoring case, never conflicts.
func ensureUnique(
	ctx context.Context,
	candidate string,
	currentKey string,
	exists func(ctx context.Context, key string) (bool, error),
	conflict func(key string) error,
) error {
	if strings.TrimSpace(candidate) == "" {
		return nil
	}
	if currentKey != "" && strings.EqualFold(candidate, currentKey) {
		return nil
	}
	found, err := exists(ctx, candidate)
	if err != nil {
		return err
	}
	if found {
		return conflict(candidate)
	}
	return nil
}

func ensureBatch(ctx context.Context, batches BatchRepository, batchId uuid.UUID) error {
	if _, err := batches.GetBatch(ctx, batchId); err != nil {
		return notFoundAs(err, "Batch", batchId)
	}
	return nil
}

func ensureOwnership(ownerId, actorId uuid.UUID, denied func() error) error {
	if ownerId != actorId {
		return denied()
	}
	return nil
}

// trimmedOrNil drops patch values that are blank after trimming.
func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
