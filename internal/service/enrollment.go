package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"schoolhub/internal/errdefs"
	"schoolhub/internal/model"
)

type EnrollmentService struct {
	batches     BatchRepository
	enrollments EnrollmentRepository
	users       IdentityProvider
}

func NewEnrollmentService(batches BatchRepository, enrollments EnrollmentRepository, users IdentityProvider) *EnrollmentService {
	return &EnrollmentService{batches: batches, enrollments: enrollments, users: users}
}

func alreadyEnrolled(batchId, studentId uuid.UUID) error {
	return errdefs.Newf(errdefs.ErrAlreadyExists, "Student with id: %s is already enrolled in batch: %s.", studentId, batchId)
}

func (s *EnrollmentService) Enroll(ctx context.Context, batchId, studentId uuid.UUID) (*model.StudentBatch, error) {
	if err := ensureBatch(ctx, s.batches, batchId); err != nil {
		return nil, err
	}
	if _, err := ensureRole(ctx, s.users, studentId, model.RoleStudent); err != nil {
		return nil, err
	}

	_, err := s.enrollments.GetEnrollment(ctx, batchId, studentId)
	switch {
	case err == nil:
		return nil, alreadyEnrolled(batchId, studentId)
	case !errors.Is(err, errdefs.ErrNotFound):
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	enrollment, err := s.enrollments.CreateEnrollment(ctx, &model.RepositoryCreateEnrollmentInput{
		Id:             id,
		BatchId:        batchId,
		StudentId:      studentId,
		EnrollmentDate: time.Now().UTC(),
	})
	if errors.Is(err, errdefs.ErrAlreadyExists) {
		return nil, alreadyEnrolled(batchId, studentId)
	}
	return enrollment, err
}

func (s *EnrollmentService) Remove(ctx context.Context, batchId, studentId uuid.UUID) error {
	if err := ensureBatch(ctx, s.batches, batchId); err != nil {
		return err
	}

	enrollment, err := s.enrollments.GetEnrollment(ctx, batchId, studentId)
	if err != nil {
		if errors.Is(err, errdefs.ErrNotFound) {
			return errdefs.Newf(errdefs.ErrNotInBatch, "Student with id: %s not enrolled with batch : %s.", studentId, batchId)
		}
		return err
	}
	return s.enrollments.DeleteEnrollment(ctx, enrollment.Id)
}

func (s *EnrollmentService) GetAllForBatch(ctx context.Context, batchId uuid.UUID, params model.PageParams) (*model.Page[*model.StudentBatch], error) {
	if err := ensureBatch(ctx, s.batches, batchId); err != nil {
		return nil, err
	}
	return s.enrollments.ListEnrollmentsForBatch(ctx, batchId, params)
}

// GetAllForStudent lists the batches a student is enrolled in. It is not scoped to a batch.
func (s *EnrollmentService) GetAllForStudent(ctx context.Context, studentId uuid.UUID, params model.PageParams) (*model.Page[*model.EnrolledBatch], error) {
	return s.enrollments.ListBatchesForStudent(ctx, studentId, params)
}

func (s *EnrollmentService) GetByIdForBatch(ctx context.Context, batchId, id uuid.UUID) (*model.StudentBatch, error) {
	if err := ensureBatch(ctx, s.batches, batchId); err != nil {
		return nil, err
	}
	enrollment, err := s.enrollments.GetEnrollmentForBatch(ctx, batchId, id)
	if err != nil {
		return nil, notFoundAs(err, "Enrollment", id)
	}
	return enrollment, nil
}
