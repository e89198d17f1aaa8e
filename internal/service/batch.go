package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"schoolhub/internal/errdefs"
	"schoolhub/internal/model"
	"schoolhub/pkg/logging"
)

// BatchService manages the batches a teacher runs for a course.
// Mutations are restricted to the teacher that owns the batch.
type BatchService struct {
	courses CourseRepository
	batches BatchRepository
	fanout  *FanOut
}

func NewBatchService(courses CourseRepository, batches BatchRepository, fanout *FanOut) *BatchService {
	return &BatchService{courses: courses, batches: batches, fanout: fanout}
}

func batchNameTaken(name string) error {
	return errdefs.Newf(errdefs.ErrAlreadyExists, "Batch with name: %s already exists for this course and teacher.", name)
}

func (s *BatchService) Create(ctx context.Context, courseId, teacherId uuid.UUID, input *model.CreateBatchInput) (*model.Batch, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := validateDateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	if err := s.ensureCourse(ctx, courseId); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if err := ensureUnique(ctx, name, "", s.nameExists(courseId, teacherId), batchNameTaken); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	batch, err := s.batches.CreateBatch(ctx, &model.RepositoryCreateBatchInput{
		Id:        id,
		CourseId:  courseId,
		TeacherId: teacherId,
		Name:      name,
		Semester:  strings.TrimSpace(input.Semester),
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		IsActive:  input.IsActive,
	})
	if err != nil {
		if errors.Is(err, errdefs.ErrAlreadyExists) {
			return nil, batchNameTaken(name)
		}
		return nil, err
	}

	s.fanout.Emit(ctx, batchNotices(ActionCreated, batch)...)
	return batch, nil
}

func (s *BatchService) Update(ctx context.Context, courseId, teacherId, id uuid.UUID, input *model.UpdateBatchInput) (*model.Batch, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	current, err := s.ownedBatch(ctx, courseId, teacherId, id)
	if err != nil {
		return nil, err
	}

	name := trimmedOrNil(input.Name)
	if name != nil {
		if err := ensureUnique(ctx, *name, current.Name, s.nameExists(courseId, teacherId), batchNameTaken); err != nil {
			return nil, err
		}
	}

	start, end := current.StartDate, current.EndDate
	if input.StartDate != nil {
		start = *input.StartDate
	}
	if input.EndDate != nil {
		end = *input.EndDate
	}
	if err := validateDateRange(start, end); err != nil {
		return nil, err
	}

	batch, err := s.batches.UpdateBatch(ctx, id, &model.RepositoryUpdateBatchInput{
		Name:      name,
		Semester:  trimmedOrNil(input.Semester),
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		if errors.Is(err, errdefs.ErrAlreadyExists) && name != nil {
			return nil, batchNameTaken(*name)
		}
		return nil, err
	}

	s.fanout.Emit(ctx, batchNotices(ActionUpdated, batch)...)
	return batch, nil
}

func (s *BatchService) Delete(ctx context.Context, courseId, teacherId, id uuid.UUID) error {
	batch, err := s.ownedBatch(ctx, courseId, teacherId, id)
	if err != nil {
		return err
	}
	if err := s.batches.DeleteBatch(ctx, id); err != nil {
		return notFoundAs(err, "Batch", id)
	}

	s.fanout.Emit(ctx, batchNotices(ActionDeleted, batch)...)
	return nil
}

func (s *BatchService) Activate(ctx context.Context, courseId, teacherId, id uuid.UUID) (*model.Batch, error) {
	return s.setActive(ctx, courseId, teacherId, id, true)
}

func (s *BatchService) Deactivate(ctx context.Context, courseId, teacherId, id uuid.UUID) (*model.Batch, error) {
	return s.setActive(ctx, courseId, teacherId, id, false)
}

func (s *BatchService) setActive(ctx context.Context, courseId, teacherId, id uuid.UUID, active bool) (*model.Batch, error) {
	current, err := s.ownedBatch(ctx, courseId, teacherId, id)
	if err != nil {
		return nil, err
	}

	action, verb := ActionActivated, "activated"
	if !active {
		action, verb = ActionDeactivated, "deactivated"
	}
	if current.IsActive == active {
		return nil, errdefs.Newf(errdefs.ErrInvalidState,
			"The batch cannot be %s because it is already in that state.", verb)
	}

	batch, err := s.batches.UpdateBatch(ctx, id, &model.RepositoryUpdateBatchInput{IsActive: &active})
	if err != nil {
		return nil, err
	}

	if logger, ok := logging.GetFromContext(ctx); ok {
		logger.Info(ctx, "Batch state changed", zap.Stringer("batch_id", id), zap.Bool("active", active))
	}
	s.fanout.Emit(ctx, batchNotices(action, batch)...)
	return batch, nil
}

func (s *BatchService) GetAllForCourse(ctx context.Context, courseId uuid.UUID, params model.PageParams) (*model.Page[*model.Batch], error) {
	if err := s.ensureCourse(ctx, courseId); err != nil {
		return nil, err
	}
	return s.batches.ListBatchesForCourse(ctx, courseId, params)
}

func (s *BatchService) GetAllForTeacher(ctx context.Context, teacherId uuid.UUID, params model.PageParams) (*model.Page[*model.Batch], error) {
	return s.batches.ListBatchesForTeacher(ctx, teacherId, params)
}

func (s *BatchService) GetByIdForCourse(ctx context.Context, courseId, id uuid.UUID) (*model.Batch, error) {
	if err := s.ensureCourse(ctx, courseId); err != nil {
		return nil, err
	}
	return s.batch(ctx, courseId, id)
}

func (s *BatchService) ensureCourse(ctx context.Context, courseId uuid.UUID) error {
	if _, err := s.courses.GetCourse(ctx, courseId); err != nil {
		return notFoundAs(err, "Course", courseId)
	}
	return nil
}

func (s *BatchService) batch(ctx context.Context, courseId, id uuid.UUID) (*model.Batch, error) {
	batch, err := s.batches.GetBatchForCourse(ctx, courseId, id)
	if err != nil {
		return nil, notFoundAs(err, "Batch", id)
	}
	return batch, nil
}

// ownedBatch runs the guards shared by every batch mutation: course, batch under course, owner.
func (s *BatchService) ownedBatch(ctx context.Context, courseId, teacherId, id uuid.UUID) (*model.Batch, error) {
	if err := s.ensureCourse(ctx, courseId); err != nil {
		return nil, err
	}
	batch, err := s.batch(ctx, courseId, id)
	if err != nil {
		return nil, err
	}
	err = ensureOwnership(batch.TeacherId, teacherId, func() error {
		return errdefs.Newf(errdefs.ErrPermissionDenied,
			"Teacher with id: %s is not the owner of batch with id: %s.", teacherId, id)
	})
	if err != nil {
		return nil, err
	}
	return batch, nil
}

func (s *BatchService) nameExists(courseId, teacherId uuid.UUID) func(context.Context, string) (bool, error) {
	return func(ctx context.Context, name string) (bool, error) {
		return s.batches.BatchNameExists(ctx, courseId, teacherId, name)
	}
}
