package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"schoolhub/internal/handler/middleware"
	"schoolhub/internal/model"
)

type EnrollmentService interface {
	Enroll(ctx context.Context, batchId, studentId uuid.UUID) (*model.StudentBatch, error)
	Remove(ctx context.Context, batchId, studentId uuid.UUID) error
	GetAllForBatch(ctx context.Context, batchId uuid.UUID, params model.PageParams) (*model.Page[*model.StudentBatch], error)
	GetByIdForBatch(ctx context.Context, batchId, id uuid.UUID) (*model.StudentBatch, error)
}

type EnrollmentHandler struct {
	s EnrollmentService
}

func NewEnrollmentHandler(s EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{s: s}
}

func (h *EnrollmentHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware, middleware.RequireRoles(model.RoleTeacher)).Route("/batches/{batchId}/students", func(r chi.Router) {
		r.Get("/", Handle(h.getAll, false, http.StatusOK))
		r.Get("/enrollments/{id}", Handle(h.getById, false, http.StatusOK))
		r.Post("/{studentId}", Handle(h.enroll, false, http.StatusCreated))
		r.Delete("/{studentId}", Handle(h.remove, false, http.StatusNoContent))
	})
}

func (h *EnrollmentHandler) getAll(r *http.Request, _ *struct{}) (*model.Page[*model.StudentBatch], error) {
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

func (h *EnrollmentHandler) getById(r *http.Request, _ *struct{}) (*model.StudentBatch, error) {
	ids, err := pathUUIDs(r, "batchId", "id")
	if err != nil {
		return nil, err
	}
	return h.s.GetByIdForBatch(r.Context(), ids[0], ids[1])
}

func (h *EnrollmentHandler) enroll(r *http.Request, _ *struct{}) (*model.StudentBatch, error) {
	ids, err := pathUUIDs(r, "batchId", "studentId")
	if err != nil {
		return nil, err
	}
	return h.s.Enroll(r.Context(), ids[0], ids[1])
}

func (h *EnrollmentHandler) remove(r *http.Request, _ *struct{}) (struct{}, error) {
	ids, err := pathUUIDs(r, "batchId", "studentId")
	if err != nil {
		return struct{}{}, err
	}
	return struct{}{}, h.s.Remove(r.Context(), ids[0], ids[1])
}
