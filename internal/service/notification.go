package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"schoolhub/internal/errdefs"
	"schoolhub/internal/model"
)

// NotificationService serves notifications to their recipients. A notification the caller
// may not see is reported as missing.
type NotificationService struct {
	notifications NotificationRepository
}

func NewNotificationService(notifications NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (s *NotificationService) GetForUser(ctx context.Context, role model.Role, userId uuid.UUID, params model.PageParams) (*model.Page[*model.Notification], error) {
	if role == model.RoleAdmin {
		return s.notifications.ListNotifications(ctx, params)
	}
	return s.notifications.ListNotificationsForRecipient(ctx, role, userId, params)
}

func (s *NotificationService) GetById(ctx context.Context, role model.Role, userId, id uuid.UUID) (*model.Notification, error) {
	return s.visible(ctx, role, userId, id)
}

// MarkRead flips the read flag on the stored row, which for a broadcast is shared by every recipient.
func (s *NotificationService) MarkRead(ctx context.Context, role model.Role, userId, id uuid.UUID) (*model.Notification, error) {
	notification, err := s.visible(ctx, role, userId, id)
	if err != nil {
		return nil, err
	}
	if notification.IsRead {
		return notification, nil
	}
	read := true
	return s.notifications.UpdateNotification(ctx, id, &model.RepositoryUpdateNotificationInput{IsRead: &read})
}

func (s *NotificationService) Create(ctx context.Context, input *model.CreateNotificationInput) (*model.Notification, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	return s.notifications.CreateNotification(ctx, &model.RepositoryCreateNotificationInput{
		Id:            id,
		Title:         strings.TrimSpace(input.Title),
		Message:       strings.TrimSpace(input.Message),
		RecipientRole: input.RecipientRole,
		RecipientId:   input.RecipientId,
	})
}

func (s *NotificationService) Update(ctx context.Context, id uuid.UUID, input *model.UpdateNotificationInput) (*model.Notification, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if _, err := s.notification(ctx, id); err != nil {
		return nil, err
	}
	return s.notifications.UpdateNotification(ctx, id, &model.RepositoryUpdateNotificationInput{
		Title:   trimmedOrNil(input.Title),
		Message: trimmedOrNil(input.Message),
	})
}

func (s *NotificationService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.notification(ctx, id); err != nil {
		return err
	}
	if err := s.notifications.DeleteNotification(ctx, id); err != nil {
		return notFoundAs(err, "Notification", id)
	}
	return nil
}

func (s *NotificationService) notification(ctx context.Context, id uuid.UUID) (*model.Notification, error) {
	notification, err := s.notifications.GetNotification(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Notification", id)
	}
	return notification, nil
}

func (s *NotificationService) visible(ctx context.Context, role model.Role, userId, id uuid.UUID) (*model.Notification, error) {
	notification, err := s.notification(ctx, id)
	if err != nil {
		return nil, err
	}
	if !notification.VisibleTo(role, userId) {
		return nil, errdefs.Newf(errdefs.ErrNotFound, "Notification with Id: %s can't be found.", id)
	}
	return notification, nil
}
