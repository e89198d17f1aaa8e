package service

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"schoolhub/internal/errdefs"
	"schoolhub/internal/model"
	"schoolhub/pkg/logging"
)

const DefaultMaxSubmissionSize int64 = 10 << 20

var allowedSubmissionExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

// SubmissionService manages student submissions and their stored files.
// A file saved ahead of a failed write is removed again.
type SubmissionService struct {
	assignments AssignmentRepository
	submissions SubmissionRepository
	users       IdentityProvider
	storage     FileStorage
	fanout      *FanOut
	maxFileSize int64
}

func NewSubmissionService(
	assignments AssignmentRepository,
	submissions SubmissionRepository,
	users IdentityProvider,
	storage FileStorage,
	fanout *FanOut,
	maxFileSize int64,
) *SubmissionService {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxSubmissionSize
	}
	return &SubmissionService{
		assignments: assignments,
		submissions: submissions,
		users:       users,
		storage:     storage,
		fanout:      fanout,
		maxFileSize: maxFileSize,
	}
}

func alreadySubmitted(assignmentId, studentId uuid.UUID) error {
	return errdefs.Newf(errdefs.ErrAlreadySubmitted,
		"Student with id: %s has already submitted assignment: %s.", studentId, assignmentId)
}

func (s *SubmissionService) validateFile(file *model.File) error {
	if file == nil || len(file.Content) == 0 {
		return validationError("file is required")
	}
	ext := strings.ToLower(filepath.Ext(file.Name))
	if _, ok := allowedSubmissionExtensions[ext]; !ok {
		return validationError("file must be a .pdf, .doc or .docx document")
	}
	size := file.Size
	if size <= 0 {
		size = int64(len(file.Content))
	}
	if size > s.maxFileSize {
		return validationError("file must not exceed %d bytes", s.maxFileSize)
	}
	return nil
}

func (s *SubmissionService) CheckForSubmission(ctx context.Context, assignmentId, studentId uuid.UUID) (bool, error) {
	if _, err := s.assignment(ctx, assignmentId); err != nil {
		return false, err
	}
	return s.submissions.SubmissionExists(ctx, assignmentId, studentId)
}

func (s *SubmissionService) Submit(ctx context.Context, assignmentId, studentId uuid.UUID, file *model.File) (*model.Submission, error) {
	if err := s.validateFile(file); err != nil {
		return nil, err
	}

	assignment, err := s.assignment(ctx, assignmentId)
	if err != nil {
		return nil, err
	}
	if _, err := ensureRole(ctx, s.users, studentId, model.RoleStudent); err != nil {
		return nil, err
	}
	exists, err := s.submissions.SubmissionExists(ctx, assignmentId, studentId)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, alreadySubmitted(assignmentId, studentId)
	}

	path, err := s.storage.Save(ctx, file)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		s.discard(ctx, path)
		return nil, err
	}
	submission, err := s.submissions.CreateSubmission(ctx, &model.RepositoryCreateSubmissionInput{
		Id:           id,
		AssignmentId: assignmentId,
		StudentId:    studentId,
		FileUrl:      path,
	})
	if err != nil {
		s.discard(ctx, path)
		if errors.Is(err, errdefs.ErrAlreadyExists) {
			return nil, alreadySubmitted(assignmentId, studentId)
		}
		return nil, err
	}

	s.fanout.Emit(ctx, submissionNotices(ActionCreated, submission, assignment)...)
	return submission, nil
}

func (s *SubmissionService) Update(ctx context.Context, assignmentId, studentId, id uuid.UUID, file *model.File) (*model.Submission, error) {
	if err := s.validateFile(file); err != nil {
		return nil, err
	}

	assignment, current, err := s.ownedSubmission(ctx, assignmentId, studentId, id)
	if err != nil {
		return nil, err
	}

	path, err := s.storage.Save(ctx, file)
	if err != nil {
		return nil, err
	}
	submission, err := s.submissions.UpdateSubmission(ctx, id, &model.RepositoryUpdateSubmissionInput{FileUrl: &path})
	if err != nil {
		s.discard(ctx, path)
		return nil, err
	}
	s.discard(ctx, current.FileUrl)

	s.fanout.Emit(ctx, submissionNotices(ActionUpdated, submission, assignment)...)
	return submission, nil
}

func (s *SubmissionService) Delete(ctx context.Context, assignmentId, studentId, id uuid.UUID) error {
	assignment, submission, err := s.ownedSubmission(ctx, assignmentId, studentId, id)
	if err != nil {
		return err
	}
	if err := s.submissions.DeleteSubmission(ctx, id); err != nil {
		return notFoundAs(err, "Submission", id)
	}
	s.discard(ctx, submission.FileUrl)

	s.fanout.Emit(ctx, submissionNotices(ActionDeleted, submission, assignment)...)
	return nil
}

// Grade stamps the grading teacher on the submission. A later grade replaces grade and remarks of an earlier one.
func (s *SubmissionService) Grade(ctx context.Context, assignmentId, teacherId, id uuid.UUID, input *model.GradeSubmissionInput) (*model.Submission, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	remarks := trimmedOrNil(input.Remarks)
	if input.Grade < 50 && remarks == nil {
		return nil, validationError("remarks are required when grade is below 50")
	}

	if _, err := s.assignment(ctx, assignmentId); err != nil {
		return nil, err
	}
	if _, err := ensureRole(ctx, s.users, teacherId, model.RoleTeacher); err != nil {
		return nil, err
	}
	if _, err := s.submission(ctx, assignmentId, id); err != nil {
		return nil, err
	}

	grade := input.Grade
	submission, err := s.submissions.UpdateSubmission(ctx, id, &model.RepositoryUpdateSubmissionInput{
		Grade:             &grade,
		Remarks:           remarks,
		GradedByTeacherId: &teacherId,
		ClearRemarks:      remarks == nil,
	})
	if err != nil {
		return nil, err
	}

	s.fanout.Emit(ctx, gradedNotices(submission, teacherId)...)
	return submission, nil
}

func (s *SubmissionService) GetAllForAssignment(ctx context.Context, assignmentId uuid.UUID, params model.PageParams) (*model.Page[*model.Submission], error) {
	if _, err := s.assignment(ctx, assignmentId); err != nil {
		return nil, err
	}
	return s.submissions.ListSubmissionsForAssignment(ctx, assignmentId, params)
}

func (s *SubmissionService) GetById(ctx context.Context, assignmentId, id uuid.UUID) (*model.Submission, error) {
	if _, err := s.assignment(ctx, assignmentId); err != nil {
		return nil, err
	}
	return s.submission(ctx, assignmentId, id)
}

func (s *SubmissionService) assignment(ctx context.Context, id uuid.UUID) (*model.Assignment, error) {
	assignment, err := s.assignments.GetAssignment(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Assignment", id)
	}
	return assignment, nil
}

func (s *SubmissionService) submission(ctx context.Context, assignmentId, id uuid.UUID) (*model.Submission, error) {
	submission, err := s.submissions.GetSubmissionForAssignment(ctx, assignmentId, id)
	if err != nil {
		return nil, notFoundAs(err, "Submission", id)
	}
	return submission, nil
}

func (s *SubmissionService) ownedSubmission(ctx context.Context, assignmentId, studentId, id uuid.UUID) (*model.Assignment, *model.Submission, error) {
	assignment, err := s.assignment(ctx, assignmentId)
	if err != nil {
		return nil, nil, err
	}
	if _, err := ensureRole(ctx, s.users, studentId, model.RoleStudent); err != nil {
		return nil, nil, err
	}
	submission, err := s.submission(ctx, assignmentId, id)
	if err != nil {
		return nil, nil, err
	}
	err = ensureOwnership(submission.StudentId, studentId, func() error {
		return errdefs.Newf(errdefs.ErrNotOwnedByStudent,
			"Submission with id: %s is not owned by student with id: %s.", id, studentId)
	})
	if err != nil {
		return nil, nil, err
	}
	return assignment, submission, nil
}

// discard removes a stored file and only logs a failure.
func (s *SubmissionService) discard(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := s.storage.Delete(ctx, path); err != nil {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Warn(ctx, "Failed to delete submission file", zap.String("path", path), zap.Error(err))
		}
	}
}
