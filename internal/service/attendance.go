package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"schoolhub/internal/errdefs"
	"schoolhub/internal/model"
)

// AttendanceService records one attendance entry per student and batch.
// Only the teacher that marked an entry may change or remove it.
type AttendanceService struct {
	batches    BatchRepository
	attendance AttendanceRepository
	users      IdentityProvider
	fanout     *FanOut
	now        func() time.Time
}

func NewAttendanceService(batches BatchRepository, attendance AttendanceRepository, users IdentityProvider, fanout *FanOut) *AttendanceService {
	return &AttendanceService{
		batches:    batches,
		attendance: attendance,
		users:      users,
		fanout:     fanout,
		now:        time.Now,
	}
}

func attendanceAlreadyMarked(batchId, studentId uuid.UUID) error {
	return errdefs.Newf(errdefs.ErrAlreadyExists,
		"Attendance for student with id: %s is already marked in batch: %s.", studentId, batchId)
}

func (s *AttendanceService) Create(ctx context.Context, batchId, teacherId uuid.UUID, input *model.CreateAttendanceInput) (*model.Attendance, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := notInFuture("date", input.Date, s.now()); err != nil {
		return nil, err
	}

	if err := ensureBatch(ctx, s.batches, batchId); err != nil {
		return nil, err
	}
	if _, err := ensureRole(ctx, s.users, input.StudentId, model.RoleStudent); err != nil {
		return nil, err
	}

	exists, err := s.attendance.AttendanceExists(ctx, batchId, input.StudentId)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, attendanceAlreadyMarked(batchId, input.StudentId)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	attendance, err := s.attendance.CreateAttendance(ctx, &model.RepositoryCreateAttendanceInput{
		Id:                id,
		BatchId:           batchId,
		StudentId:         input.StudentId,
		MarkedByTeacherId: teacherId,
		Date:              input.Date,
		Status:            input.Status,
	})
	if err != nil {
		if errors.Is(err, errdefs.ErrAlreadyExists) {
			return nil, attendanceAlreadyMarked(batchId, input.StudentId)
		}
		return nil, err
	}

	s.fanout.Emit(ctx, attendanceNotices(ActionCreated, attendance)...)
	return attendance, nil
}

func (s *AttendanceService) Update(ctx context.Context, batchId, teacherId, id uuid.UUID, input *model.UpdateAttendanceInput) (*model.Attendance, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if input.Date != nil {
		if err := notInFuture("date", *input.Date, s.now()); err != nil {
			return nil, err
		}
	}

	if _, err := s.markedBy(ctx, batchId, teacherId, id); err != nil {
		return nil, err
	}

	attendance, err := s.attendance.UpdateAttendance(ctx, id, &model.RepositoryUpdateAttendanceInput{
		Date:   input.Date,
		Status: input.Status,
	})
	if err != nil {
		return nil, err
	}

	s.fanout.Emit(ctx, attendanceNotices(ActionUpdated, attendance)...)
	return attendance, nil
}

func (s *AttendanceService) Delete(ctx context.Context, batchId, teacherId, id uuid.UUID) error {
	attendance, err := s.markedBy(ctx, batchId, teacherId, id)
	if err != nil {
		return err
	}
	if err := s.attendance.DeleteAttendance(ctx, id); err != nil {
		return notFoundAs(err, "Attendance", id)
	}

	s.fanout.Emit(ctx, attendanceNotices(ActionDeleted, attendance)...)
	return nil
}

func (s *AttendanceService) GetForBatch(ctx context.Context, batchId uuid.UUID, params model.PageParams) (*model.Page[*model.Attendance], error) {
	if err := ensureBatch(ctx, s.batches, batchId); err != nil {
		return nil, err
	}
	return s.attendance.ListAttendanceForBatch(ctx, batchId, params)
}

func (s *AttendanceService) GetForStudent(ctx context.Context, batchId, studentId uuid.UUID) (*model.Attendance, error) {
	if err := ensureBatch(ctx, s.batches, batchId); err != nil {
		return nil, err
	}
	attendance, err := s.attendance.GetAttendanceForStudent(ctx, batchId, studentId)
	if err != nil {
		if errors.Is(err, errdefs.ErrNotFound) {
			return nil, errdefs.Newf(errdefs.ErrNotFound,
				"Attendance for student with id: %s can't be found in batch: %s.", studentId, batchId)
		}
		return nil, err
	}
	return attendance, nil
}

func (s *AttendanceService) GetById(ctx context.Context, batchId, id uuid.UUID) (*model.Attendance, error) {
	if err := ensureBatch(ctx, s.batches, batchId); err != nil {
		return nil, err
	}
	return s.record(ctx, batchId, id)
}

func (s *AttendanceService) record(ctx context.Context, batchId, id uuid.UUID) (*model.Attendance, error) {
	attendance, err := s.attendance.GetAttendanceForBatch(ctx, batchId, id)
	if err != nil {
		return nil, notFoundAs(err, "Attendance", id)
	}
	return attendance, nil
}

func (s *AttendanceService) markedBy(ctx context.Context, batchId, teacherId, id uuid.UUID) (*model.Attendance, error) {
	if err := ensureBatch(ctx, s.batches, batchId); err != nil {
		return nil, err
	}
	attendance, err := s.record(ctx, batchId, id)
	if err != nil {
		return nil, err
	}
	err = ensureOwnership(attendance.MarkedByTeacherId, teacherId, func() error {
		return errdefs.Newf(errdefs.ErrPermissionDenied, "The attendance is not marked by teacher with id: %s.", teacherId)
	})
	if err != nil {
		return nil, err
	}
	return attendance, nil
}
