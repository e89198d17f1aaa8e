package model

import (
	"time"

	"github.com/google/uuid"
)

type RegisterInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Email       string  `json:"email" validate:"required,email,max=256"`
	Password    string  `json:"password" validate:"required,min=8,max=128"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitnil,max=20"`
	Role        Role    `json:"role" validate:"required"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenInput struct {
	AccessToken  string `json:"accessToken" validate:"required"`
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type UpdateUserInput struct {
	Name        *string `json:"name" validate:"omitnil,min=1,max=100"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitnil,max=20"`
}

type CreateDepartmentInput struct {
	Name               string     `json:"name" validate:"required,max=100"`
	Description        *string    `json:"description" validate:"omitnil,max=1000"`
	HeadOfDepartmentId *uuid.UUID `json:"headOfDepartmentId"`
}

type UpdateDepartmentInput struct {
	Name               *string    `json:"name" validate:"omitnil,max=100"`
	Description        *string    `json:"description" validate:"omitnil,max=1000"`
	HeadOfDepartmentId *uuid.UUID `json:"headOfDepartmentId"`
	// ClearHeadOfDepartment removes the current head.
	ClearHeadOfDepartment bool `json:"clearHeadOfDepartment"`
}

type CreateCourseInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Code        string  `json:"code" validate:"required,max=10"`
	Description *string `json:"description" validate:"omitnil,max=2000"`
	Credits     int32   `json:"credits" validate:"gt=0"`
}

type UpdateCourseInput struct {
	Name        *string `json:"name" validate:"omitnil,max=100"`
	Code        *string `json:"code" validate:"omitnil,max=10"`
	Description *string `json:"description" validate:"omitnil,max=2000"`
	Credits     *int32  `json:"credits" validate:"omitnil,gt=0"`
}

type CreateBatchInput struct {
	Name      string    `json:"name" validate:"required,max=100"`
	Semester  string    `json:"semester" validate:"required,max=50"`
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate" validate:"required,gtefield=StartDate"`
	IsActive  bool      `json:"isActive"`
}

type UpdateBatchInput struct {
	Name      *string    `json:"name" validate:"omitnil,max=100"`
	Semester  *string    `json:"semester" validate:"omitnil,max=50"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

type CreateAttendanceInput struct {
	StudentId uuid.UUID        `json:"studentId" validate:"required"`
	Date      time.Time        `json:"date" validate:"required"`
	Status    AttendanceStatus `json:"status" validate:"required,oneof=Present Absent Late"`
}

type UpdateAttendanceInput struct {
	Date   *time.Time        `json:"date"`
	Status *AttendanceStatus `json:"status" validate:"omitnil,oneof=Present Absent Late"`
}

type CreateAssignmentInput struct {
	Title       string     `json:"title" validate:"required,max=150"`
	Description *string    `json:"description" validate:"omitnil,max=1000"`
	DueDate     *time.Time `json:"dueDate"`
}

type UpdateAssignmentInput struct {
	Title       *string    `json:"title" validate:"omitnil,min=1,max=150"`
	Description *string    `json:"description" validate:"omitnil,max=1000"`
	DueDate     *time.Time `json:"dueDate"`
}

type GradeSubmissionInput struct {
	Grade   float64 `json:"grade" validate:"gte=0,lte=100"`
	Remarks *string `json:"remarks" validate:"omitnil,max=1000"`
}

type CreateNotificationInput struct {
	Title         string     `json:"title" validate:"required,max=200"`
	Message       string     `json:"message" validate:"required,max=1000"`
	RecipientRole Role       `json:"recipientRole" validate:"required,oneof=Admin Teacher Student"`
	RecipientId   *uuid.UUID `json:"recipientId"`
}

type UpdateNotificationInput struct {
	Title   *string `json:"title" validate:"omitnil,min=1,max=200"`
	Message *string `json:"message" validate:"omitnil,min=1,max=1000"`
}
