package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"schoolhub/internal/handler/middleware"
	"schoolhub/internal/model"
)

type NotificationService interface {
	GetForUser(ctx context.Context, role model.Role, userId uuid.UUID, params model.PageParams) (*model.Page[*model.Notification], error)
	GetById(ctx context.Context, role model.Role, userId, id uuid.UUID) (*model.Notification, error)
	MarkRead(ctx context.Context, role model.Role, userId, id uuid.UUID) (*model.Notification, error)
	Create(ctx context.Context, input *model.CreateNotificationInput) (*model.Notification, error)
	Update(ctx context.Context, id uuid.UUID, input *model.UpdateNotificationInput) (*model.Notification, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type NotificationHandler struct {
	s NotificationService
}

func NewNotificationHandler(s NotificationService) *NotificationHandler {
	return &NotificationHandler{s: s}
}

func (h *NotificationHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Route("/notifications", func(r chi.Router) {
		r.Get("/", Handle(h.getAll, false, http.StatusOK))
		r.Get("/{id}", Handle(h.getById, false, http.StatusOK))
		r.Patch("/{id}/mark-read", Handle(h.markRead, false, http.StatusNoContent))

		r.With(middleware.RequireRoles(model.RoleAdmin)).Group(func(r chi.Router) {
			r.Post("/", Handle(h.create, true, http.StatusCreated))
			r.Put("/{id}", Handle(h.update, true, http.StatusNoContent))
			r.Delete("/{id}", Handle(h.delete, false, http.StatusNoContent))
		})
	})
}

func (h *NotificationHandler) getAll(r *http.Request, _ *struct{}) (*model.Page[*model.Notification], error) {
	userId, role, err := actorFrom(r)
	if err != nil {
		return nil, err
	}
	params, err := parsePageParams(r)
	if err != nil {
		return nil, err
	}
	return h.s.GetForUser(r.Context(), role, userId, params)
}

func (h *NotificationHandler) getById(r *http.Request, _ *struct{}) (*model.Notification, error) {
	userId, role, err := actorFrom(r)
	if err != nil {
		return nil, err
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	return h.s.GetById(r.Context(), role, userId, id)
}

func (h *NotificationHandler) markRead(r *http.Request, _ *struct{}) (*model.Notification, error) {
	userId, role, err := actorFrom(r)
	if err != nil {
		return nil, err
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	return h.s.MarkRead(r.Context(), role, userId, id)
}

func (h *NotificationHandler) create(r *http.Request, req *model.CreateNotificationInput) (*model.Notification, error) {
	return h.s.Create(r.Context(), req)
}

func (h *NotificationHandler) update(r *http.Request, req *model.UpdateNotificationInput) (*model.Notification, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	return h.s.Update(r.Context(), id, req)
}

func (h *NotificationHandler) delete(r *http.Request, _ *struct{}) (struct{}, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return struct{}{}, err
	}
	return struct{}{}, h.s.Delete(r.Context(), id)
}
