package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"schoolhub/internal/model"
)

const notificationColumns = `
	id, title, message, recipient_role, recipient_id, is_read, created_at`

var notificationList = listQuery{
	columns: notificationColumns,
	from:    "FROM notifications",
	sortable: map[string]string{
		"createddate": "created_at",
		"title":       "title",
		"isread":      "is_read",
	},
	defaultSort: `"created_at" DESC`,
	search:      []string{"title", "message"},
}

type NotificationRepository struct {
	db DB
}

func NewNotificationRepository(db DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateNotification(ctx context.Context, input *model.RepositoryCreateNotificationInput) (*model.Notification, error) {
	query := `
INSERT INTO notifications (id, title, message, recipient_role, recipient_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING` + notificationColumns

	var notification model.Notification
	err := pgxscan.Get(ctx, r.db, &notification, query,
		input.Id,
		input.Title,
		input.Message,
		input.RecipientRole,
		input.RecipientId,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &notification, nil
}

func (r *NotificationRepository) GetNotification(ctx context.Context, id uuid.UUID) (*model.Notification, error) {
	query := `SELECT` + notificationColumns + `
FROM notifications
WHERE id = $1
`
	var notification model.Notification
	if err := pgxscan.Get(ctx, r.db, &notification, query, id); err != nil {
		return nil, handleError(err)
	}
	return &notification, nil
}

func (r *NotificationRepository) UpdateNotification(ctx context.Context, id uuid.UUID, input *model.RepositoryUpdateNotificationInput) (*model.Notification, error) {
	query, args, err := buildNotificationUpdateQuery(input)
	if err != nil {
		return nil, err
	}
	args = append(args, id)
	var notification model.Notification
	if err := pgxscan.Get(ctx, r.db, &notification, query, args...); err != nil {
		return nil, handleError(err)
	}
	return &notification, nil
}

func (r *NotificationRepository) DeleteNotification(ctx context.Context, id uuid.UUID) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM notifications WHERE id = $1`, id)
}

func (r *NotificationRepository) ListNotifications(ctx context.Context, params model.PageParams) (*model.Page[*model.Notification], error) {
	return selectPage[*model.Notification](ctx, r.db, notificationList, nil, nil, params)
}

// ListNotificationsForRecipient returns broadcasts to role and rows addressed to userId.
func (r *NotificationRepository) ListNotificationsForRecipient(ctx context.Context, role model.Role, userId uuid.UUID, params model.PageParams) (*model.Page[*model.Notification], error) {
	where := []string{"recipient_role = $1", "(recipient_id IS NULL OR recipient_id = $2)"}
	return selectPage[*model.Notification](ctx, r.db, notificationList, where, []any{role, userId}, params)
}
