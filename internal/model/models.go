package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleTeacher Role = "Teacher"
	RoleStudent Role = "Student"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleTeacher || r == RoleStudent
}

func RoleFromString(s string) (Role, bool) {
	role := Role(s)
	return role, role.IsValid()
}

type User struct {
	Id                 uuid.UUID  `db:"id" json:"id"`
	Email              string     `db:"email" json:"email"`
	Name               string     `db:"name" json:"name"`
	PhoneNumber        *string    `db:"phone_number" json:"phoneNumber,omitempty"`
	PasswordHash       string     `db:"password_hash" json:"-"`
	Role               Role       `db:"role" json:"role"`
	IsActive           bool       `db:"is_active" json:"isActive"`
	RefreshToken       *string    `db:"refresh_token" json:"-"`
	RefreshTokenExpiry *time.Time `db:"refresh_token_expiry" json:"-"`
	CreatedAt          time.Time  `db:"created_at" json:"createdAt"`
	EditedAt           time.Time  `db:"edited_at" json:"editedAt"`
}

// IsInRole reports whether the user holds role. A user holds exactly the role it registered with.
func (u *User) IsInRole(role Role) bool {
	return u != nil && u.Role == role
}

func (u *User) Roles() []Role {
	if u == nil {
		return nil
	}
	return []Role{u.Role}
}

// Profile is the projection of a role profile joined with its user.
type Profile struct {
	UserId      uuid.UUID `db:"user_id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email"`
	PhoneNumber *string   `db:"phone_number" json:"phoneNumber,omitempty"`
	IsActive    bool      `db:"is_active" json:"isActive"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

type Department struct {
	Id                 uuid.UUID  `db:"id" json:"id"`
	Name               string     `db:"name" json:"name"`
	Description        *string    `db:"description" json:"description,omitempty"`
	HeadOfDepartmentId *uuid.UUID `db:"head_of_department_id" json:"headOfDepartmentId,omitempty"`
	CreatedAt          time.Time  `db:"created_at" json:"createdAt"`
	EditedAt           time.Time  `db:"edited_at" json:"editedAt"`
}

type Course struct {
	Id           uuid.UUID `db:"id" json:"id"`
	DepartmentId uuid.UUID `db:"department_id" json:"departmentId"`
	Name         string    `db:"name" json:"name"`
	Code         string    `db:"code" json:"code"`
	Description  *string   `db:"description" json:"description,omitempty"`
	Credits      int32     `db:"credits" json:"credits"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	EditedAt     time.Time `db:"edited_at" json:"editedAt"`
}

type Batch struct {
	Id        uuid.UUID `db:"id" json:"id"`
	CourseId  uuid.UUID `db:"course_id" json:"courseId"`
	TeacherId uuid.UUID `db:"teacher_id" json:"teacherId"`
	Name      string    `db:"name" json:"name"`
	Semester  string    `db:"semester" json:"semester"`
	StartDate time.Time `db:"start_date" json:"startDate"`
	EndDate   time.Time `db:"end_date" json:"endDate"`
	IsActive  bool      `db:"is_active" json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	EditedAt  time.Time `db:"edited_at" json:"editedAt"`
}

type StudentBatch struct {
	Id             uuid.UUID `db:"id" json:"id"`
	BatchId        uuid.UUID `db:"batch_id" json:"batchId"`
	StudentId      uuid.UUID `db:"student_id" json:"studentId"`
	EnrollmentDate time.Time `db:"enrollment_date" json:"enrollmentDate"`
}

// EnrolledBatch is a batch seen from the enrolled student's side.
type EnrolledBatch struct {
	EnrollmentId   uuid.UUID `db:"enrollment_id" json:"enrollmentId"`
	EnrollmentDate time.Time `db:"enrollment_date" json:"enrollmentDate"`
	BatchId        uuid.UUID `db:"batch_id" json:"batchId"`
	CourseId       uuid.UUID `db:"course_id" json:"courseId"`
	Name           string    `db:"name" json:"name"`
	Semester       string    `db:"semester" json:"semester"`
	StartDate      time.Time `db:"start_date" json:"startDate"`
	EndDate        time.Time `db:"end_date" json:"endDate"`
	IsActive       bool      `db:"is_active" json:"isActive"`
}

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "Present"
	AttendanceStatusAbsent  AttendanceStatus = "Absent"
	AttendanceStatusLate    AttendanceStatus = "Late"
)

func (s AttendanceStatus) String() string {
	return string(s)
}

func (s AttendanceStatus) IsValid() bool {
	return s == AttendanceStatusPresent || s == AttendanceStatusAbsent || s == AttendanceStatusLate
}

type Attendance struct {
	Id                uuid.UUID        `db:"id" json:"id"`
	BatchId           uuid.UUID        `db:"batch_id" json:"batchId"`
	StudentId         uuid.UUID        `db:"student_id" json:"studentId"`
	MarkedByTeacherId uuid.UUID        `db:"marked_by_teacher_id" json:"markedByTeacherId"`
	Date              time.Time        `db:"date" json:"date"`
	Status            AttendanceStatus `db:"status" json:"status"`
	CreatedAt         time.Time        `db:"created_at" json:"createdAt"`
}

type Assignment struct {
	Id                 uuid.UUID  `db:"id" json:"id"`
	BatchId            uuid.UUID  `db:"batch_id" json:"batchId"`
	CreatedByTeacherId uuid.UUID  `db:"created_by_teacher_id" json:"createdByTeacherId"`
	Title              string     `db:"title" json:"title"`
	Description        *string    `db:"description" json:"description,omitempty"`
	DueDate            *time.Time `db:"due_date" json:"dueDate,omitempty"`
	CreatedAt          time.Time  `db:"created_at" json:"createdAt"`
}

type Submission struct {
	Id                uuid.UUID  `db:"id" json:"id"`
	AssignmentId      uuid.UUID  `db:"assignment_id" json:"assignmentId"`
	StudentId         uuid.UUID  `db:"student_id" json:"studentId"`
	FileUrl           string     `db:"file_url" json:"fileUrl"`
	Grade             *float64   `db:"grade" json:"grade,omitempty"`
	Remarks           *string    `db:"remarks" json:"remarks,omitempty"`
	GradedByTeacherId *uuid.UUID `db:"graded_by_teacher_id" json:"gradedByTeacherId,omitempty"`
	SubmittedAt       time.Time  `db:"submitted_at" json:"submittedDate"`
}

type Notification struct {
	Id            uuid.UUID  `db:"id" json:"id"`
	Title         string     `db:"title" json:"title"`
	Message       string     `db:"message" json:"message"`
	RecipientRole Role       `db:"recipient_role" json:"recipientRole"`
	RecipientId   *uuid.UUID `db:"recipient_id" json:"recipientId,omitempty"`
	IsRead        bool       `db:"is_read" json:"isRead"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
}

// VisibleTo reports whether a caller with role and userId may see the notification.
// Admins see everything. Everyone else sees broadcasts to their role and rows addressed to them.
func (n *Notification) VisibleTo(role Role, userId uuid.UUID) bool {
	if role == RoleAdmin {
		return true
	}
	if n.RecipientRole != role {
		return false
	}
	return n.RecipientId == nil || *n.RecipientId == userId
}

type File struct {
	Name        string
	ContentType string
	Size        int64
	Content     []byte
}

type TokenPair struct {
	AccessToken        string    `json:"accessToken"`
	RefreshToken       string    `json:"refreshToken"`
	AccessTokenExpiry  time.Time `json:"accessTokenExpiry"`
	RefreshTokenExpiry time.Time `json:"refreshTokenExpiry"`
}

type LoginResult struct {
	Tokens TokenPair `json:"tokens"`
	UserId uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	Role   Role      `json:"role"`
}
