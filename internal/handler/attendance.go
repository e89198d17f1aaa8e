package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"schoolhub/internal/handler/middleware"
	"schoolhub/internal/model"
)

type AttendanceService interface {
	Create(ctx context.Context, batchId, teacherId uuid.UUID, input *model.CreateAttendanceInput) (*model.Attendance, error)
	Update(ctx context.Context, batchId, teacherId, id uuid.UUID, input *model.UpdateAttendanceInput) (*model.Attendance, error)
	Delete(ctx context.Context, batchId, teacherId, id uuid.UUID) error
	GetForBatch(ctx context.Context, batchId uuid.UUID, params model.PageParams) (*model.Page[*model.Attendance], error)
	GetById(ctx context.Context, batchId, id uuid.UUID) (*model.Attendance, error)
}

type AttendanceHandler struct {
	s AttendanceService
}

func NewAttendanceHandler(s AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{s: s}
}

func (h *AttendanceHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Route("/batches/{batchId}/attendances", func(r chi.Router) {
		r.With(middleware.RequireRoles(model.RoleTeacher, model.RoleStudent)).
			Get("/{id}", Handle(h.getById, false, http.StatusOK))

		r.With(middleware.RequireRoles(model.RoleTeacher)).Group(func(r chi.Router) {
			r.Get("/", Handle(h.getAll, false, http.StatusOK))
			r.Post("/", Handle(h.create, true, http.StatusCreated))
			r.Put("/{id}", Handle(h.update, true, http.StatusNoContent))
			r.Delete("/{id}", Handle(h.delete, false, http.StatusNoContent))
		})
	})
}

func (h *AttendanceHandler) getAll(r *http.Request, _ *struct{}) (*model.Page[*model.Attendance], error) {
	batchId, err := pathUUID(r, "batchId")
	if err != nil {
		return nil, err
	}
	params, err := parsePageParams(r)
	if err != nil {
		return nil, err
	}
	return h.s.GetForBatch(r.Context(), batchId, params)
}

func (h *AttendanceHandler) getById(r *http.Request, _ *struct{}) (*model.Attendance, error) {
	ids, err := pathUUIDs(r, "batchId", "id")
	if err != nil {
		return nil, err
	}
	return h.s.GetById(r.Context(), ids[0], ids[1])
}

func (h *AttendanceHandler) create(r *http.Request, req *model.CreateAttendanceInput) (*model.Attendance, error) {
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

func (h *AttendanceHandler) update(r *http.Request, req *model.UpdateAttendanceInput) (*model.Attendance, error) {
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

func (h *AttendanceHandler) delete(r *http.Request, _ *struct{}) (struct{}, error) {
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
