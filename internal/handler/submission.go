package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"schoolhub/internal/handler/middleware"
	"schoolhub/internal/model"
)

const submissionFileField = "file"

type SubmissionService interface {
	CheckForSubmission(ctx context.Context, assignmentId, studentId uuid.UUID) (bool, error)
	Submit(ctx context.Context, assignmentId, studentId uuid.UUID, file *model.File) (*model.Submission, error)
	Update(ctx context.Context, assignmentId, studentId, id uuid.UUID, file *model.File) (*model.Submission, error)
	Delete(ctx context.Context, assignmentId, studentId, id uuid.UUID) error
	Grade(ctx context.Context, assignmentId, teacherId, id uuid.UUID, input *model.GradeSubmissionInput) (*model.Submission, error)
	GetAllForAssignment(ctx context.Context, assignmentId uuid.UUID, params model.PageParams) (*model.Page[*model.Submission], error)
	GetById(ctx context.Context, assignmentId, id uuid.UUID) (*model.Submission, error)
}

type SubmissionHandler struct {
	s              SubmissionService
	maxUploadBytes int64
}

func NewSubmissionHandler(s SubmissionService, maxUploadBytes int64) *SubmissionHandler {
	return &SubmissionHandler{s: s, maxUploadBytes: maxUploadBytes}
}

type submissionStatus struct {
	Submitted bool `json:"submitted"`
}

func (h *SubmissionHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Route("/assignments/{assignmentId}/submissions", func(r chi.Router) {
		r.With(middleware.RequireRoles(model.RoleTeacher)).Group(func(r chi.Router) {
			r.Get("/", Handle(h.getAll, false, http.StatusOK))
			r.Put("/{id}/grade", Handle(h.grade, true, http.StatusNoContent))
		})

		r.With(middleware.RequireRoles(model.RoleTeacher, model.RoleStudent)).
			Get("/{id}", Handle(h.getById, false, http.StatusOK))

		r.With(middleware.RequireRoles(model.RoleStudent)).Group(func(r chi.Router) {
			r.Get("/check", Handle(h.check, false, http.StatusOK))
			r.Post("/", Handle(h.submit, false, http.StatusCreated))
			r.Put("/{id}", Handle(h.update, false, http.StatusNoContent))
			r.Delete("/{id}", Handle(h.delete, false, http.StatusNoContent))
		})
	})
}

func (h *SubmissionHandler) getAll(r *http.Request, _ *struct{}) (*model.Page[*model.Submission], error) {
	assignmentId, err := pathUUID(r, "assignmentId")
	if err != nil {
		return nil, err
	}
	params, err := parsePageParams(r)
	if err != nil {
		return nil, err
	}
	return h.s.GetAllForAssignment(r.Context(), assignmentId, params)
}

func (h *SubmissionHandler) getById(r *http.Request, _ *struct{}) (*model.Submission, error) {
	ids, err := pathUUIDs(r, "assignmentId", "id")
	if err != nil {
		return nil, err
	}
	return h.s.GetById(r.Context(), ids[0], ids[1])
}

func (h *SubmissionHandler) check(r *http.Request, _ *struct{}) (*submissionStatus, error) {
	studentId, _, err := actorFrom(r)
	if err != nil {
		return nil, err
	}
	assignmentId, err := pathUUID(r, "assignmentId")
	if err != nil {
		return nil, err
	}
	submitted, err := h.s.CheckForSubmission(r.Context(), assignmentId, studentId)
	if err != nil {
		return nil, err
	}
	return &submissionStatus{Submitted: submitted}, nil
}

func (h *SubmissionHandler) submit(r *http.Request, _ *struct{}) (*model.Submission, error) {
	studentId, _, err := actorFrom(r)
	if err != nil {
		return nil, err
	}
	assignmentId, err := pathUUID(r, "assignmentId")
	if err != nil {
		return nil, err
	}
	file, err := h.readFile(r)
	if err != nil {
		return nil, err
	}
	return h.s.Submit(r.Context(), assignmentId, studentId, file)
}

func (h *SubmissionHandler) update(r *http.Request, _ *struct{}) (*model.Submission, error) {
	studentId, _, err := actorFrom(r)
	if err != nil {
		return nil, err
	}
	ids, err := pathUUIDs(r, "assignmentId", "id")
	if err != nil {
		return nil, err
	}
	file, err := h.readFile(r)
	if err != nil {
		return nil, err
	}
	return h.s.Update(r.Context(), ids[0], studentId, ids[1], file)
}

func (h *SubmissionHandler) delete(r *http.Request, _ *struct{}) (struct{}, error) {
	studentId, _, err := actorFrom(r)
	if err != nil {
		return struct{}{}, err
	}
	ids, err := pathUUIDs(r, "assignmentId", "id")
	if err != nil {
		return struct{}{}, err
	}
	return struct{}{}, h.s.Delete(r.Context(), ids[0], studentId, ids[1])
}

func (h *SubmissionHandler) grade(r *http.Request, req *model.GradeSubmissionInput) (*model.Submission, error) {
	teacherId, _, err := actorFrom(r)
	if err != nil {
		return nil, err
	}
	ids, err := pathUUIDs(r, "assignmentId", "id")
	if err != nil {
		return nil, err
	}
	return h.s.Grade(r.Context(), ids[0], teacherId, ids[1], req)
}

// readFile reads the multipart "file" field. Size and extension rules are enforced by the service;
// reading stops one byte past the limit so oversized uploads still reach that check.
func (h *SubmissionHandler) readFile(r *http.Request) (*model.File, error) {
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("%w: file exceeds %d bytes", ErrBadRequest, h.maxUploadBytes)
		}
		return nil, fmt.Errorf("%w: invalid multipart form: %v", ErrBadRequest, err)
	}
	part, header, err := r.FormFile(submissionFileField)
	if err != nil {
		return nil, fmt.Errorf("%w: missing %q form file", ErrBadRequest, submissionFileField)
	}
	defer part.Close()

	content, err := io.ReadAll(io.LimitReader(part, h.maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read file: %v", ErrBadRequest, err)
	}

	contentType := header.Header.Get("Content-Type")
	return &model.File{
		Name:        header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Content:     content,
	}, nil
}
