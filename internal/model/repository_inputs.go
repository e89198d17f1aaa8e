package model

import (
	"time"

	"github.com/google/uuid"
)

type RepositoryCreateUserInput struct {
	Id           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PhoneNumber  *string   `db:"phone_number"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
}

type RepositoryUpdateUserInput struct {
	Name               *string    `db:"name"`
	PhoneNumber        *string    `db:"phone_number"`
	IsActive           *bool      `db:"is_active"`
	RefreshToken       *string    `db:"refresh_token"`
	RefreshTokenExpiry *time.Time `db:"refresh_token_expiry"`
}

type RepositoryCreateDepartmentInput struct {
	Id                 uuid.UUID  `db:"id"`
	Name               string     `db:"name"`
	Description        *string    `db:"description"`
	HeadOfDepartmentId *uuid.UUID `db:"head_of_department_id"`
}

type RepositoryUpdateDepartmentInput struct {
	Name                  *string    `db:"name"`
	Description           *string    `db:"description"`
	HeadOfDepartmentId    *uuid.UUID `db:"head_of_department_id"`
	ClearHeadOfDepartment bool       `db:"-"`
}

type RepositoryCreateCourseInput struct {
	Id           uuid.UUID `db:"id"`
	DepartmentId uuid.UUID `db:"department_id"`
	Name         string    `db:"name"`
	Code         string    `db:"code"`
	Description  *string   `db:"description"`
	Credits      int32     `db:"credits"`
}

type RepositoryUpdateCourseInput struct {
	Name        *string `db:"name"`
	Code        *string `db:"code"`
	Description *string `db:"description"`
	Credits     *int32  `db:"credits"`
	IsActive    *bool   `db:"is_active"`
}

type RepositoryCreateBatchInput struct {
	Id        uuid.UUID `db:"id"`
	CourseId  uuid.UUID `db:"course_id"`
	TeacherId uuid.UUID `db:"teacher_id"`
	Name      string    `db:"name"`
	Semester  string    `db:"semester"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	IsActive  bool      `db:"is_active"`
}

type RepositoryUpdateBatchInput struct {
	Name      *string    `db:"name"`
	Semester  *string    `db:"semester"`
	StartDate *time.Time `db:"start_date"`
	EndDate   *time.Time `db:"end_date"`
	IsActive  *bool      `db:"is_active"`
}

type RepositoryCreateEnrollmentInput struct {
	Id             uuid.UUID `db:"id"`
	BatchId        uuid.UUID `db:"batch_id"`
	StudentId      uuid.UUID `db:"student_id"`
	EnrollmentDate time.Time `db:"enrollment_date"`
}

type RepositoryCreateAttendanceInput struct {
	Id                uuid.UUID        `db:"id"`
	BatchId           uuid.UUID        `db:"batch_id"`
	StudentId         uuid.UUID        `db:"student_id"`
	MarkedByTeacherId uuid.UUID        `db:"marked_by_teacher_id"`
	Date              time.Time        `db:"date"`
	Status            AttendanceStatus `db:"status"`
}

type RepositoryUpdateAttendanceInput struct {
	Date   *time.Time        `db:"date"`
	Status *AttendanceStatus `db:"status"`
}

type RepositoryCreateAssignmentInput struct {
	Id                 uuid.UUID  `db:"id"`
	BatchId            uuid.UUID  `db:"batch_id"`
	CreatedByTeacherId uuid.UUID  `db:"created_by_teacher_id"`
	Title              string     `db:"title"`
	Description        *string    `db:"description"`
	DueDate            *time.Time `db:"due_date"`
}

type RepositoryUpdateAssignmentInput struct {
	Title       *string    `db:"title"`
	Description *string    `db:"description"`
	DueDate     *time.Time `db:"due_date"`
}

type RepositoryCreateSubmissionInput struct {
	Id           uuid.UUID `db:"id"`
	AssignmentId uuid.UUID `db:"assignment_id"`
	StudentId    uuid.UUID `db:"student_id"`
	FileUrl      string    `db:"file_url"`
}

type RepositoryUpdateSubmissionInput struct {
	FileUrl           *string    `db:"file_url"`
	Grade             *float64   `db:"grade"`
	Remarks           *string    `db:"remarks"`
	GradedByTeacherId *uuid.UUID `db:"graded_by_teacher_id"`
	// ClearRemarks writes NULL remarks when Remarks is nil.
	ClearRemarks bool `db:"-"`
}

type RepositoryCreateNotificationInput struct {
	Id            uuid.UUID  `db:"id"`
	Title         string     `db:"title"`
	Message       string     `db:"message"`
	RecipientRole Role       `db:"recipient_role"`
	RecipientId   *uuid.UUID `db:"recipient_id"`
}

type RepositoryUpdateNotificationInput struct {
	Title   *string `db:"title"`
	Message *string `db:"message"`
	IsRead  *bool   `db:"is_read"`
}
