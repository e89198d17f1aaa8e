package service

//go:generate mockgen -source=service.go -destination=mocks/service_mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"schoolhub/internal/model"
)

type UserRepository interface {
	NewUserCreationRepositoryTx(ctx context.Context) (UserCreationRepositoryTx, error)

	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input *model.RepositoryUpdateUserInput) (*model.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error

	GetProfile(ctx context.Context, role model.Role, userId uuid.UUID) (*model.Profile, error)
	ListProfiles(ctx context.Context, role model.Role, params model.PageParams) (*model.Page[*model.Profile], error)
}

type UserCreationRepositoryTx interface {
	CreateUser(ctx context.Context, input *model.RepositoryCreateUserInput) (*model.User, error)
	CreateProfile(ctx context.Context, role model.Role, userId uuid.UUID) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// IdentityProvider resolves users for role guards.
type IdentityProvider interface {
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type DepartmentRepository interface {
	CreateDepartment(ctx context.Context, input *model.RepositoryCreateDepartmentInput) (*model.Department, error)
	GetDepartment(ctx context.Context, id uuid.UUID) (*model.Department, error)
	UpdateDepartment(ctx context.Context, id uuid.UUID, input *model.RepositoryUpdateDepartmentInput) (*model.Department, error)
	DeleteDepartment(ctx context.Context, id uuid.UUID) error
	DepartmentNameExists(ctx context.Context, name string) (bool, error)
	IsHeadOfDepartment(ctx context.Context, teacherId uuid.UUID) (bool, error)
	ListDepartments(ctx context.Context, params model.PageParams) (*model.Page[*model.Department], error)
}

type CourseRepository interface {
	CreateCourse(ctx context.Context, input *model.RepositoryCreateCourseInput) (*model.Course, error)
	GetCourse(ctx context.Context, id uuid.UUID) (*model.Course, error)
	GetCourseForDepartment(ctx context.Context, departmentId, id uuid.UUID) (*model.Course, error)
	UpdateCourse(ctx context.Context, id uuid.UUID, input *model.RepositoryUpdateCourseInput) (*model.Course, error)
	CourseCodeExists(ctx context.Context, departmentId uuid.UUID, code string) (bool, error)
	ListCoursesForDepartment(ctx context.Context, departmentId uuid.UUID, params model.PageParams) (*model.Page[*model.Course], error)
}

type BatchRepository interface {
	CreateBatch(ctx context.Context, input *model.RepositoryCreateBatchInput) (*model.Batch, error)
	GetBatch(ctx context.Context, id uuid.UUID) (*model.Batch, error)
	GetBatchForCourse(ctx context.Context, courseId, id uuid.UUID) (*model.Batch, error)
	UpdateBatch(ctx context.Context, id uuid.UUID, input *model.RepositoryUpdateBatchInput) (*model.Batch, error)
	DeleteBatch(ctx context.Context, id uuid.UUID) error
	BatchNameExists(ctx context.Context, courseId, teacherId uuid.UUID, name string) (bool, error)
	ListBatchesForCourse(ctx context.Context, courseId uuid.UUID, params model.PageParams) (*model.Page[*model.Batch], error)
	ListBatchesForTeacher(ctx context.Context, teacherId uuid.UUID, params model.PageParams) (*model.Page[*model.Batch], error)
}

type EnrollmentRepository interface {
	CreateEnrollment(ctx context.Context, input *model.RepositoryCreateEnrollmentInput) (*model.StudentBatch, error)
	GetEnrollment(ctx context.Context, batchId, studentId uuid.UUID) (*model.StudentBatch, error)
	GetEnrollmentForBatch(ctx context.Context, batchId, id uuid.UUID) (*model.StudentBatch, error)
	DeleteEnrollment(ctx context.Context, id uuid.UUID) error
	ListEnrollmentsForBatch(ctx context.Context, batchId uuid.UUID, params model.PageParams) (*model.Page[*model.StudentBatch], error)
	ListBatchesForStudent(ctx context.Context, studentId uuid.UUID, params model.PageParams) (*model.Page[*model.EnrolledBatch], error)
}

type AttendanceRepository interface {
	CreateAttendance(ctx context.Context, input *model.RepositoryCreateAttendanceInput) (*model.Attendance, error)
	GetAttendanceForBatch(ctx context.Context, batchId, id uuid.UUID) (*model.Attendance, error)
	GetAttendanceForStudent(ctx context.Context, batchId, studentId uuid.UUID) (*model.Attendance, error)
	AttendanceExists(ctx context.Context, batchId, studentId uuid.UUID) (bool, error)
	UpdateAttendance(ctx context.Context, id uuid.UUID, input *model.RepositoryUpdateAttendanceInput) (*model.Attendance, error)
	DeleteAttendance(ctx context.Context, id uuid.UUID) error
	ListAttendanceForBatch(ctx context.Context, batchId uuid.UUID, params model.PageParams) (*model.Page[*model.Attendance], error)
}

type AssignmentRepository interface {
	CreateAssignment(ctx context.Context, input *model.RepositoryCreateAssignmentInput) (*model.Assignment, error)
	GetAssignment(ctx context.Context, id uuid.UUID) (*model.Assignment, error)
	GetAssignmentForBatch(ctx context.Context, batchId, id uuid.UUID) (*model.Assignment, error)
	UpdateAssignment(ctx context.Context, id uuid.UUID, input *model.RepositoryUpdateAssignmentInput) (*model.Assignment, error)
	DeleteAssignment(ctx context.Context, id uuid.UUID) error
	ListAssignmentsForBatch(ctx context.Context, batchId uuid.UUID, params model.PageParams) (*model.Page[*model.Assignment], error)
}

type SubmissionRepository interface {
	CreateSubmission(ctx context.Context, input *model.RepositoryCreateSubmissionInput) (*model.Submission, error)
	GetSubmissionForAssignment(ctx context.Context, assignmentId, id uuid.UUID) (*model.Submission, error)
	SubmissionExists(ctx context.Context, assignmentId, studentId uuid.UUID) (bool, error)
	UpdateSubmission(ctx context.Context, id uuid.UUID, input *model.RepositoryUpdateSubmissionInput) (*model.Submission, error)
	DeleteSubmission(ctx context.Context, id uuid.UUID) error
	ListSubmissionsForAssignment(ctx context.Context, assignmentId uuid.UUID, params model.PageParams) (*model.Page[*model.Submission], error)
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, input *model.RepositoryCreateNotificationInput) (*model.Notification, error)
	GetNotification(ctx context.Context, id uuid.UUID) (*model.Notification, error)
	UpdateNotification(ctx context.Context, id uuid.UUID, input *model.RepositoryUpdateNotificationInput) (*model.Notification, error)
	DeleteNotification(ctx context.Context, id uuid.UUID) error
	ListNotifications(ctx context.Context, params model.PageParams) (*model.Page[*model.Notification], error)
	ListNotificationsForRecipient(ctx context.Context, role model.Role, userId uuid.UUID, params model.PageParams) (*model.Page[*model.Notification], error)
}

type FileStorage interface {
	Save(ctx context.Context, file *model.File) (string, error)
	Delete(ctx context.Context, path string) error
}

type NotificationPublisher interface {
	PublishNotification(ctx context.Context, notification *model.Notification) error
}

type TokenManager interface {
	GenerateAccessToken(user *model.User) (string, time.Time, error)
	GenerateRefreshToken() (string, error)
	// ParseAccessToken returns the subject and role of a signed token. Expiry is ignored when allowExpired is set.
	ParseAccessToken(token string, allowExpired bool) (uuid.UUID, model.Role, error)
}
