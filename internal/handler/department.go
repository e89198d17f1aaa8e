package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"schoolhub/internal/handler/middleware"
	"schoolhub/internal/model"
)

const departmentCachePrefix = "departments:"

type DepartmentService interface {
	Create(ctx context.Context, input *model.CreateDepartmentInput) (*model.Department, error)
	Update(ctx context.Context, id uuid.UUID, input *model.UpdateDepartmentInput) (*model.Department, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetById(ctx context.Context, id uuid.UUID) (*model.Department, error)
	GetAll(ctx context.Context, params model.PageParams) (*model.Page[*model.Department], error)
	IsTeacherHeadOfDepartment(ctx context.Context, teacherId uuid.UUID) (bool, error)
}

type headOfDepartmentStatus struct {
	IsHeadOfDepartment bool `json:"isHeadOfDepartment"`
}

type DepartmentHandler struct {
	s     DepartmentService
	cache Cache
	ttl   time.Duration
}

// NewDepartmentHandler accepts a nil cache.
func NewDepartmentHandler(s DepartmentService, cache Cache, ttl time.Duration) *DepartmentHandler {
	return &DepartmentHandler{s: s, cache: cache, ttl: ttl}
}

func (h *DepartmentHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Route("/departments", func(r chi.Router) {
		r.Get("/", HandleWithCache(h.getAll, h.cache, cacheKey(departmentCachePrefix), h.ttl))
		r.Get("/{id}", HandleWithCache(h.getById, h.cache, cacheKey(departmentCachePrefix), h.ttl))

		r.With(middleware.RequireRoles(model.RoleAdmin)).Group(func(r chi.Router) {
			r.Get("/heads/{teacherId}", Handle(h.isHead, false, http.StatusOK))
			r.Post("/", Handle(h.create, true, http.StatusCreated))
			r.Put("/{id}", Handle(h.update, true, http.StatusNoContent))
			r.Delete("/{id}", Handle(h.delete, false, http.StatusNoContent))
		})
	})
}

func (h *DepartmentHandler) getAll(r *http.Request, _ *struct{}) (*model.Page[*model.Department], error) {
	params, err := parsePageParams(r)
	if err != nil {
		return nil, err
	}
	return h.s.GetAll(r.Context(), params)
}

func (h *DepartmentHandler) getById(r *http.Request, _ *struct{}) (*model.Department, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	return h.s.GetById(r.Context(), id)
}

func (h *DepartmentHandler) isHead(r *http.Request, _ *struct{}) (*headOfDepartmentStatus, error) {
	teacherId, err := pathUUID(r, "teacherId")
	if err != nil {
		return nil, err
	}
	isHead, err := h.s.IsTeacherHeadOfDepartment(r.Context(), teacherId)
	if err != nil {
		return nil, err
	}
	return &headOfDepartmentStatus{IsHeadOfDepartment: isHead}, nil
}

func (h *DepartmentHandler) create(r *http.Request, req *model.CreateDepartmentInput) (*model.Department, error) {
	department, err := h.s.Create(r.Context(), req)
	if err != nil {
		return nil, err
	}
	invalidate(r.Context(), h.cache, departmentCachePrefix)
	return department, nil
}

func (h *DepartmentHandler) update(r *http.Request, req *model.UpdateDepartmentInput) (*model.Department, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	department, err := h.s.Update(r.Context(), id, req)
	if err != nil {
		return nil, err
	}
	invalidate(r.Context(), h.cache, departmentCachePrefix)
	return department, nil
}

func (h *DepartmentHandler) delete(r *http.Request, _ *struct{}) (struct{}, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return struct{}{}, err
	}
	if err := h.s.Delete(r.Context(), id); err != nil {
		return struct{}{}, err
	}
	invalidate(r.Context(), h.cache, departmentCachePrefix, courseCachePrefix)
	return struct{}{}, nil
}
