package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"schoolhub/internal/handler/middleware"
	"schoolhub/internal/model"
)

type ProfileService interface {
	List(ctx context.Context, role model.Role, params model.PageParams) (*model.Page[*model.Profile], error)
	Get(ctx context.Context, role model.Role, userId uuid.UUID) (*model.Profile, error)
}

type StudentBatchLister interface {
	GetAllForStudent(ctx context.Context, studentId uuid.UUID, params model.PageParams) (*model.Page[*model.EnrolledBatch], error)
}

type StudentAttendanceReader interface {
	GetForStudent(ctx context.Context, batchId, studentId uuid.UUID) (*model.Attendance, error)
}

type TeacherBatchLister interface {
	GetAllForTeacher(ctx context.Context, teacherId uuid.UUID, params model.PageParams) (*model.Page[*model.Batch], error)
}

// ProfileHandler serves /admins, /teachers and /students together with the
// "my batches" views of the calling teacher or student.
type ProfileHandler struct {
	profiles   ProfileService
	enrolled   StudentBatchLister
	attendance StudentAttendanceReader
	taught     TeacherBatchLister
}

func NewProfileHandler(
	profiles ProfileService,
	enrolled StudentBatchLister,
	attendance StudentAttendanceReader,
	taught TeacherBatchLister,
) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, enrolled: enrolled, attendance: attendance, taught: taught}
}

func (h *ProfileHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	admin := middleware.RequireRoles(model.RoleAdmin)

	r.With(authMiddleware).Group(func(r chi.Router) {
		r.With(admin).Route("/admins", func(r chi.Router) {
			r.Get("/", Handle(h.list(model.RoleAdmin), false, http.StatusOK))
			r.Get("/{id}", Handle(h.get(model.RoleAdmin), false, http.StatusOK))
		})

		r.Route("/teachers", func(r chi.Router) {
			r.With(admin).Get("/", Handle(h.list(model.RoleTeacher), false, http.StatusOK))
			r.With(middleware.RequireRoles(model.RoleTeacher)).
				Get("/batches", Handle(h.teacherBatches, false, http.StatusOK))
			r.With(middleware.RequireRoles(model.RoleTeacher, model.RoleAdmin)).
				Get("/{id}", Handle(h.get(model.RoleTeacher), false, http.StatusOK))
		})

		r.Route("/students", func(r chi.Router) {
			r.With(admin).Get("/", Handle(h.list(model.RoleStudent), false, http.StatusOK))
			r.With(middleware.RequireRoles(model.RoleStudent, model.RoleTeacher)).Group(func(r chi.Router) {
				r.Get("/batches", Handle(h.studentBatches, false, http.StatusOK))
				r.Get("/batches/{batchId}/attendances", Handle(h.studentAttendance, false, http.StatusOK))
			})
			r.With(middleware.RequireRoles(model.RoleAdmin, model.RoleTeacher, model.RoleStudent)).
				Get("/{id}", Handle(h.get(model.RoleStudent), false, http.StatusOK))
		})
	})
}

func (h *ProfileHandler) list(role model.Role) func(*http.Request, *struct{}) (*model.Page[*model.Profile], error) {
	return func(r *http.Request, _ *struct{}) (*model.Page[*model.Profile], error) {
		params, err := parsePageParams(r)
		if err != nil {
			return nil, err
		}
		return h.profiles.List(r.Context(), role, params)
	}
}

func (h *ProfileHandler) get(role model.Role) func(*http.Request, *struct{}) (*model.Profile, error) {
	return func(r *http.Request, _ *struct{}) (*model.Profile, error) {
		id, err := pathUUID(r, "id")
		if err != nil {
			return nil, err
		}
		return h.profiles.Get(r.Context(), role, id)
	}
}

func (h *ProfileHandler) teacherBatches(r *http.Request, _ *struct{}) (*model.Page[*model.Batch], error) {
	actorId, _, err := actorFrom(r)
	if err != nil {
		return nil, err
	}
	params, err := parsePageParams(r)
	if err != nil {
		return nil, err
	}
	return h.taught.GetAllForTeacher(r.Context(), actorId, params)
}

func (h *ProfileHandler) studentBatches(r *http.Request, _ *struct{}) (*model.Page[*model.EnrolledBatch], error) {
	actorId, _, err := actorFrom(r)
	if err != nil {
		return nil, err
	}
	params, err := parsePageParams(r)
	if err != nil {
		return nil, err
	}
	return h.enrolled.GetAllForStudent(r.Context(), actorId, params)
}

func (h *ProfileHandler) studentAttendance(r *http.Request, _ *struct{}) (*model.Attendance, error) {
	actorId, _, err := actorFrom(r)
	if err != nil {
		return nil, err
	}
	batchId, err := pathUUID(r, "batchId")
	if err != nil {
		return nil, err
	}
	return h.attendance.GetForStudent(r.Context(), batchId, actorId)
}
