package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"schoolhub/internal/handler/middleware"
	"schoolhub/internal/model"
)

type BatchService interface {
	Create(ctx context.Context, courseId, teacherId uuid.UUID, input *model.CreateBatchInput) (*model.Batch, error)
	Update(ctx context.Context, courseId, teacherId, id uuid.UUID, input *model.UpdateBatchInput) (*model.Batch, error)
	Delete(ctx context.Context, courseId, teacherId, id uuid.UUID) error
	Activate(ctx context.Context, courseId, teacherId, id uuid.UUID) (*model.Batch, error)
	Deactivate(ctx context.Context, courseId, teacherId, id uuid.UUID) (*model.Batch, error)
	GetAllForCourse(ctx context.Context, courseId uuid.UUID, params model.PageParams) (*model.Page[*model.Batch], error)
	GetByIdForCourse(ctx context.Context, courseId, id uuid.UUID) (*model.Batch, error)
}

type BatchHandler struct {
	s BatchService
}

func NewBatchHandler(s BatchService) *BatchHandler {
	return &BatchHandler{s: s}
}

func (h *BatchHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Route("/courses/{courseId}/batches", func(r chi.Router) {
		r.With(middleware.RequireRoles(model.RoleAdmin)).Get("/", Handle(h.getAll, false, http.StatusOK))
		r.Get("/{id}", Handle(h.getById, false, http.StatusOK))

		r.With(middleware.RequireRoles(model.RoleTeacher)).Group(func(r chi.Router) {
			r.Post("/", Handle(h.create, true, http.StatusCreated))
			r.Put("/{id}", Handle(h.update, true, http.StatusNoContent))
			r.Delete("/{id}", Handle(h.delete, false, http.StatusNoContent))
			r.Patch("/{id}/activate", Handle(h.activate, false, http.StatusOK))
			r.Patch("/{id}/deactivate", Handle(h.deactivate, false, http.StatusOK))
		})
	})
}

func (h *BatchHandler) getAll(r *http.Request, _ *struct{}) (*model.Page[*model.Batch], error) {
	courseId, err := pathUUID(r, "courseId")
	if err != nil {
		return nil, err
	}
	params, err := parsePageParams(r)
	if err != nil {
		return nil, err
	}
	return h.s.GetAllForCourse(r.Context(), courseId, params)
}

func (h *BatchHandler) getById(r *http.Request, _ *struct{}) (*model.Batch, error) {
	ids, err := pathUUIDs(r, "courseId", "id")
	if err != nil {
		return nil, err
	}
	return h.s.GetByIdForCourse(r.Context(), ids[0], ids[1])
}

func (h *BatchHandler) create(r *http.Request, req *model.CreateBatchInput) (*model.Batch, error) {
	teacherId, _, err := actorFrom(r)
	if err != nil {
		return nil, err
	}
	courseId, err := pathUUID(r, "courseId")
	if err != nil {
		return nil, err
	}
	return h.s.Create(r.Context(), courseId, teacherId, req)
}

func (h *BatchHandler) update(r *http.Request, req *model.UpdateBatchInput) (*model.Batch, error) {
	teacherId, ids, err := h.target(r)
	if err != nil {
		return nil, err
	}
	return h.s.Update(r.Context(), ids[0], teacherId, ids[1], req)
}

func (h *BatchHandler) delete(r *http.Request, _ *struct{}) (struct{}, error) {
	teacherId, ids, err := h.target(r)
	if err != nil {
		return struct{}{}, err
	}
	return struct{}{}, h.s.Delete(r.Context(), ids[0], teacherId, ids[1])
}

func (h *BatchHandler) activate(r *http.Request, _ *struct{}) (*model.Batch, error) {
	teacherId, ids, err := h.target(r)
	if err != nil {
		return nil, err
	}
	return h.s.Activate(r.Context(), ids[0], teacherId, ids[1])
}

func (h *BatchHandler) deactivate(r *http.Request, _ *struct{}) (*model.Batch, error) {
	teacherId, ids, err := h.target(r)
	if err != nil {
		return nil, err
	}
	return h.s.Deactivate(r.Context(), ids[0], teacherId, ids[1])
}

// target returns the calling teacher and the course and batch ids.
func (h *BatchHandler) target(r *http.Request) (uuid.UUID, []uuid.UUID, error) {
	teacherId, _, err := actorFrom(r)
	if err != nil {
		return uuid.Nil, nil, err
	}
	ids, err := pathUUIDs(r, "courseId", "id")
	if err != nil {
		return uuid.Nil, nil, err
	}
	return teacherId, ids, nil
}
