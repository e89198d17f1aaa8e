package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolhub/internal/model"
)

// AssignmentService manages batch assignments. Update and delete require the Teacher role
// but not authorship of the assignment.
type AssignmentService struct {
	batches     BatchRepository
	assignments AssignmentRepository
	users       IdentityProvider
	now         func() time.Time
}

func NewAssignmentService(batches BatchRepository, assignments AssignmentRepository, users IdentityProvider) *AssignmentService {
	return &AssignmentService{batches: batches, assignments: assignments, users: users, now: time.Now}
}

func (s *AssignmentService) Create(ctx context.Context, batchId, teacherId uuid.UUID, input *model.CreateAssignmentInput) (*model.Assignment, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := inFuture("dueDate", input.DueDate, s.now()); err != nil {
		return nil, err
	}

	if err := ensureBatch(ctx, s.batches, batchId); err != nil {
		return nil, err
	}
	if _, err := ensureRole(ctx, s.users, teacherId, model.RoleTeacher); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	return s.assignments.CreateAssignment(ctx, &model.RepositoryCreateAssignmentInput{
		Id:                 id,
		BatchId:            batchId,
		CreatedByTeacherId: teacherId,
		Title:              strings.TrimSpace(input.Title),
		Description:        input.Description,
		DueDate:            input.DueDate,
	})
}

func (s *AssignmentService) Update(ctx context.Context, batchId, teacherId, id uuid.UUID, input *model.UpdateAssignmentInput) (*model.Assignment, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := inFuture("dueDate", input.DueDate, s.now()); err != nil {
		return nil, err
	}

	if _, err := s.guard(ctx, batchId, teacherId, id); err != nil {
		return nil, err
	}

	return s.assignments.UpdateAssignment(ctx, id, &model.RepositoryUpdateAssignmentInput{
		Title:       trimmedOrNil(input.Title),
		Description: input.Description,
		DueDate:     input.DueDate,
	})
}

func (s *AssignmentService) Delete(ctx context.Context, batchId, teacherId, id uuid.UUID) error {
	if _, err := s.guard(ctx, batchId, teacherId, id); err != nil {
		return err
	}
	if err := s.assignments.DeleteAssignment(ctx, id); err != nil {
		return notFoundAs(err, "Assignment", id)
	}
	return nil
}

func (s *AssignmentService) GetAllForBatch(ctx context.Context, batchId uuid.UUID, params model.PageParams) (*model.Page[*model.Assignment], error) {
	if err := ensureBatch(ctx, s.batches, batchId); err != nil {
		return nil, err
	}
	return s.assignments.ListAssignmentsForBatch(ctx, batchId, params)
}

func (s *AssignmentService) GetById(ctx context.Context, id uuid.UUID) (*model.Assignment, error) {
	assignment, err := s.assignments.GetAssignment(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Assignment", id)
	}
	return assignment, nil
}

func (s *AssignmentService) GetForBatchById(ctx context.Context, batchId, id uuid.UUID) (*model.Assignment, error) {
	if err := ensureBatch(ctx, s.batches, batchId); err != nil {
		return nil, err
	}
	return s.assignment(ctx, batchId, id)
}

func (s *AssignmentService) assignment(ctx context.Context, batchId, id uuid.UUID) (*model.Assignment, error) {
	assignment, err := s.assignments.GetAssignmentForBatch(ctx, batchId, id)
	if err != nil {
		return nil, notFoundAs(err, "Assignment", id)
	}
	return assignment, nil
}

func (s *AssignmentService) guard(ctx context.Context, batchId, teacherId, id uuid.UUID) (*model.Assignment, error) {
	if err := ensureBatch(ctx, s.batches, batchId); err != nil {
		return nil, err
	}
	if _, err := ensureRole(ctx, s.users, teacherId, model.RoleTeacher); err != nil {
		return nil, err
	}
	return s.assignment(ctx, batchId, id)
}
