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

const courseCachePrefix = "courses:"

type CourseService interface {
	Create(ctx context.Context, departmentId uuid.UUID, input *model.CreateCourseInput) (*model.Course, error)
	Update(ctx context.Context, departmentId, id uuid.UUID, input *model.UpdateCourseInput) (*model.Course, error)
	Delete(ctx context.Context, departmentId, id uuid.UUID) error
	GetAll(ctx context.Context, departmentId uuid.UUID, params model.PageParams) (*model.Page[*model.Course], error)
	GetById(ctx context.Context, departmentId, id uuid.UUID) (*model.Course, error)
}

type CourseHandler struct {
	s     CourseService
	cache Cache
	ttl   time.Duration
}

func NewCourseHandler(s CourseService, cache Cache, ttl time.Duration) *CourseHandler {
	return &CourseHandler{s: s, cache: cache, ttl: ttl}
}

func (h *CourseHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Route("/departments/{departmentId}/courses", func(r chi.Router) {
		r.Get("/", HandleWithCache(h.getAll, h.cache, cacheKey(courseCachePrefix), h.ttl))
		r.Get("/{id}", HandleWithCache(h.getById, h.cache, cacheKey(courseCachePrefix), h.ttl))

		r.With(middleware.RequireRoles(model.RoleAdmin)).Group(func(r chi.Router) {
			r.Post("/", Handle(h.create, true, http.StatusCreated))
			r.Put("/{id}", Handle(h.update, true, http.StatusNoContent))
			r.Delete("/{id}", Handle(h.delete, false, http.StatusNoContent))
		})
	})
}

func (h *CourseHandler) getAll(r *http.Request, _ *struct{}) (*model.Page[*model.Course], error) {
	departmentId, err := pathUUID(r, "departmentId")
	if err != nil {
		return nil, err
	}
	params, err := parsePageParams(r)
	if err != nil {
		return nil, err
	}
	return h.s.GetAll(r.Context(), departmentId, params)
}

func (h *CourseHandler) getById(r *http.Request, _ *struct{}) (*model.Course, error) {
	ids, err := pathUUIDs(r, "departmentId", "id")
	if err != nil {
		return nil, err
	}
	return h.s.GetById(r.Context(), ids[0], ids[1])
}

func (h *CourseHandler) create(r *http.Request, req *model.CreateCourseInput) (*model.Course, error) {
	departmentId, err := pathUUID(r, "departmentId")
	if err != nil {
		return nil, err
	}
	course, err := h.s.Create(r.Context(), departmentId, req)
	if err != nil {
		return nil, err
	}
	invalidate(r.Context(), h.cache, courseCachePrefix)
	return course, nil
}

func (h *CourseHandler) update(r *http.Request, req *model.UpdateCourseInput) (*model.Course, error) {
	ids, err := pathUUIDs(r, "departmentId", "id")
	if err != nil {
		return nil, err
	}
	course, err := h.s.Update(r.Context(), ids[0], ids[1], req)
	if err != nil {
		return nil, err
	}
	invalidate(r.Context(), h.cache, courseCachePrefix)
	return course, nil
}

// delete soft-deletes the course; it stays readable as inactive.
func (h *CourseHandler) delete(r *http.Request, _ *struct{}) (struct{}, error) {
	ids, err := pathUUIDs(r, "departmentId", "id")
	if err != nil {
		return struct{}{}, err
	}
	if err := h.s.Delete(r.Context(), ids[0], ids[1]); err != nil {
		return struct{}{}, err
	}
	invalidate(r.Context(), h.cache, courseCachePrefix)
	return struct{}{}, nil
}
