package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"schoolhub/internal/handler/middleware"
	"schoolhub/internal/model"
)

type AssignmentService interface {
	Create(ctx context.Context, batchId, teacherId uuid.UUID, input *model.CreateAssignmentInput) (*model.Assignment, error)
	Update(ctx context.Context, batchId, teacherId, id uuid.UUID, input *model.UpdateAssignmentInput) (*model.Assignment, error)
	Delete(ctx context.Context, batchId, teacherId, id uuid.UUID) error
	GetAllForBatch(ctx context.Context, batchId uuid.UUID, params model.PageParams) (*model.Page[*model.Assignment], error)
	GetForBatchById(ctx context.Context, batchId, id uuid.UUID) (*model.Assignment, error)
}

type AssignmentHandler struct {
	s AssignmentService
}

func NewAssignmentHandler(s AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{s: s}
}

func (h *AssignmentHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Route("/batches/{batchId}/assignments", func(r chi.Router) {
		r.With(middleware.RequireRoles(model.RoleTeacher, model.RoleStudent)).Group(func(r chi.Router) {
			r.Get("/", Handle(h.getAll, false, http.StatusOK))
			r.Get("/{id}", Handle(h.getById, false, http.StatusOK))
		})

		r.With(middleware.RequireRoles(model.RoleTeacher)).Group(func(r chi.Router) {
			r.Post("/", Handle(h.create, true, http.StatusCreated))
			r.Put("/{id}", Handle(h.update, true, http.StatusNoContent))
			r.Delete("/{id}", Handle(h.delete, false, http.StatusNoContent))
		})
	})
}

func (h *AssignmentHandler) getAll(r *http.Request, _ *struct{}) (*model.Page[*model.Assignment], error) {
	batchId, err := pathUUID(r, "batchId")
	if err != nil {
		return nil, err
	}
	params, err := parsePageParams(r)
	if err != nil {
		return nil, err
	}
	return h.s.GetAllForBatch(r.Context(), batchId, params)
}

func (h *AssignmentHandler) getById(r *http.Request, _ *struct{}) (*model.Assignment, error) {
	ids, err := pathUUIDs(r, "batchId", "id")
	if err != nil {
		return nil, err
	}
	return h.s.GetForBatchById(r.Context(), ids[0], ids[1])
}

func (h *AssignmentHandler) create(r *http.Request, req *model.CreateAssignmentInput) (*model.Assignment, error) {
	teacherId, _, err := actorFrom(r)
	if err != nil {
		return nil, err
	}
	batchId, err := pathUUID(r, "batchId")
	if err != nil {
		return nil, err
	}
	return h.s.Create(r.Context(), batchId, teacherId, req)
}

func (h *AssignmentHandler) update(r *http.Request, req *model.UpdateAssignmentInput) (*model.Assignment, error) {
	teacherId, _, err := actorFrom(r)
	if err != nil {
		return nil, err
	}
	ids, err := pathUUIDs(r, "batchId", "id")
	if err != nil {
		return nil, err
	}
	return h.s.Update(r.Context(), ids[0], teacherId, ids[1], req)
}

func (h *AssignmentHandler) delete(r *http.Request, _ *struct{}) (struct{}, error) {
	teacherId, _, err := actorFrom(r)
	if err != nil {
		return struct{}{}, err
	}
	ids, err := pathUUIDs(r, "batchId", "id")
	if err != nil {
		return struct{}{}, err
	}
	return struct{}{}, h.s.Delete(r.Context(), ids[0], teacherId, ids[1])
}
