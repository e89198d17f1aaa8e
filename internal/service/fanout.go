package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"schoolhub/internal/model"
	"schoolhub/pkg/logging"
)

type Action string

const (
	ActionCreated     Action = "Created"
	ActionUpdated     Action = "Updated"
	ActionDeleted     Action = "Deleted"
	ActionActivated   Action = "Activated"
	ActionDeactivated Action = "Deactivated"
)

// Notice is a notification waiting to be stored. A nil RecipientId broadcasts to RecipientRole.
type Notice struct {
	Title         string
	Message       string
	RecipientRole model.Role
	RecipientId   *uuid.UUID
}

// FanOut turns workflow events into stored notifications and forwards them to the publisher.
// Failures are logged and never returned to the workflow.
type FanOut struct {
	notifications NotificationRepository
	publisher     NotificationPublisher
}

// NewFanOut accepts a nil publisher when no event stream is configured.
func NewFanOut(notifications NotificationRepository, publisher NotificationPublisher) *FanOut {
	return &FanOut{notifications: notifications, publisher: publisher}
}

func (f *FanOut) Emit(ctx context.Context, notices ...Notice) {
	for _, notice := range notices {
		f.emit(ctx, notice)
	}
}

func (f *FanOut) emit(ctx context.Context, notice Notice) {
	logger, hasLogger := logging.GetFromContext(ctx)

	id, err := uuid.NewV7()
	if err != nil {
		if hasLogger {
			logger.Error(ctx, "Failed to generate notification id", zap.Error(err))
		}
		return
	}

	notification, err := f.notifications.CreateNotification(ctx, &model.RepositoryCreateNotificationInput{
		Id:            id,
		Title:         notice.Title,
		Message:       notice.Message,
		RecipientRole: notice.RecipientRole,
		RecipientId:   notice.RecipientId,
	})
	if err != nil {
		if hasLogger {
			logger.Error(ctx, "Failed to store notification",
				zap.String("title", notice.Title),
				zap.String("recipient_role", notice.RecipientRole.String()),
				zap.Error(err),
			)
		}
		return
	}

	if f.publisher == nil {
		return
	}
	if err := f.publisher.PublishNotification(ctx, notification); err != nil && hasLogger {
		logger.Warn(ctx, "Failed to publish notification",
			zap.Stringer("notification_id", notification.Id),
			zap.Error(err),
		)
	}
}

func courseNotices(action Action, course *model.Course, department *model.Department) []Notice {
	title := "Course " + string(action)
	var adminMsg, headMsg string
	switch action {
	case ActionCreated:
		adminMsg = fmt.Sprintf("New course '%s' created in department '%s'.", course.Name, course.DepartmentId)
		headMsg = fmt.Sprintf("New course '%s' created in your department '%s'.", course.Name, department.Name)
	case ActionDeleted:
		adminMsg = fmt.Sprintf("Course '%s' was deleted from department '%s'.", course.Name, course.DepartmentId)
		headMsg = fmt.Sprintf("Course '%s' deleted from your department '%s'.", course.Name, department.Name)
	default:
		adminMsg = fmt.Sprintf("Course '%s' updated in department '%s'.", course.Name, course.DepartmentId)
		headMsg = fmt.Sprintf("Course '%s' updated in your department '%s'.", course.Name, department.Name)
	}

	notices := []Notice{{Title: title, Message: adminMsg, RecipientRole: model.RoleAdmin}}
	if department.HeadOfDepartmentId != nil {
		head := *department.HeadOfDepartmentId
		notices = append(notices, Notice{Title: title, Message: headMsg, RecipientRole: model.RoleTeacher, RecipientId: &head})
	}
	return notices
}

func batchNotices(action Action, batch *model.Batch) []Notice {
	var msg string
	switch action {
	case ActionCreated:
		msg = fmt.Sprintf("New batch '%s' created in course '%s'.", batch.Name, batch.CourseId)
	case ActionDeleted:
		msg = fmt.Sprintf("Batch '%s' deleted from course '%s'.", batch.Name, batch.CourseId)
	case ActionActivated:
		msg = fmt.Sprintf("Batch '%s' activated in course '%s'.", batch.Name, batch.CourseId)
	case ActionDeactivated:
		msg = fmt.Sprintf("Batch '%s' deactivated in course '%s'.", batch.Name, batch.CourseId)
	default:
		msg = fmt.Sprintf("Batch '%s' updated in course '%s'.", batch.Name, batch.CourseId)
	}
	return []Notice{{Title: "Batch " + string(action), Message: msg, RecipientRole: model.RoleAdmin}}
}

func attendanceNotices(action Action, attendance *model.Attendance) []Notice {
	date := attendance.Date.Format("2006-01-02")
	var title, msg string
	switch action {
	case ActionCreated:
		title = "Attendance Marked"
		msg = fmt.Sprintf("Your attendance for batch '%s' on %s was marked as %s.", attendance.BatchId, date, attendance.Status)
	case ActionDeleted:
		title = "Attendance Deleted"
		msg = fmt.Sprintf("Your attendance record for batch '%s' on %s was removed.", attendance.BatchId, date)
	default:
		title = "Attendance Updated"
		msg = fmt.Sprintf("Your attendance for batch '%s' on %s was updated to %s.", attendance.BatchId, date, attendance.Status)
	}
	student := attendance.StudentId
	return []Notice{{Title: title, Message: msg, RecipientRole: model.RoleStudent, RecipientId: &student}}
}

func submissionNotices(action Action, submission *model.Submission, assignment *model.Assignment) []Notice {
	var title, msg string
	switch action {
	case ActionCreated:
		title = "New Submission"
		msg = fmt.Sprintf("Student '%s' submitted assignment '%s'.", submission.StudentId, assignment.Id)
	case ActionDeleted:
		title = "Submission Deleted"
		msg = fmt.Sprintf("Student '%s' deleted submission '%s' for assignment '%s'.", submission.StudentId, submission.Id, assignment.Id)
	default:
		title = "Submission Updated"
		msg = fmt.Sprintf("Student '%s' updated submission '%s' for assignment '%s'.", submission.StudentId, submission.Id, assignment.Id)
	}
	author := assignment.CreatedByTeacherId
	return []Notice{{Title: title, Message: msg, RecipientRole: model.RoleTeacher, RecipientId: &author}}
}

func gradedNotices(submission *model.Submission, teacherId uuid.UUID) []Notice {
	student := submission.StudentId
	return []Notice{{
		Title:         "Assignment Graded",
		Message:       fmt.Sprintf("Your submission '%s' for assignment '%s' has been graded by teacher '%s'.", submission.Id, submission.AssignmentId, teacherId),
		RecipientRole: model.RoleStudent,
		RecipientId:   &student,
	}}
}
