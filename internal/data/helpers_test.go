package data

import (
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"schoolhub/internal/model"
)

type AnyTime struct{}

func (a AnyTime) Match(v interface{}) bool {
	_, ok := v.(time.Time)
	return ok
}

var (
	nilString = (*string)(nil)
	nilUUID   = (*uuid.UUID)(nil)
	nilTime   = (*time.Time)(nil)
	nilFloat  = (*float64)(nil)
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mockPool.ExpectationsWereMet())
		mockPool.Close()
	})
	return mockPool
}

func departmentRows(d *model.Department) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "description", "head_of_department_id", "created_at", "edited_at"}).
		AddRow(d.Id, d.Name, d.Description, d.HeadOfDepartmentId, d.CreatedAt, d.EditedAt)
}

func courseRows(c *model.Course) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "department_id", "name", "code", "description", "credits", "is_active", "created_at", "edited_at"}).
		AddRow(c.Id, c.DepartmentId, c.Name, c.Code, c.Description, c.Credits, c.IsActive, c.CreatedAt, c.EditedAt)
}

func batchRows(batches ...*model.Batch) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "course_id", "teacher_id", "name", "semester", "start_date", "end_date", "is_active", "created_at", "edited_at"})
	for _, b := range batches {
		rows.AddRow(b.Id, b.CourseId, b.TeacherId, b.Name, b.Semester, b.StartDate, b.EndDate, b.IsActive, b.CreatedAt, b.EditedAt)
	}
	return rows
}

func notificationRows(notifications ...*model.Notification) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "title", "message", "recipient_role", "recipient_id", "is_read", "created_at"})
	for _, n := range notifications {
		rows.AddRow(n.Id, n.Title, n.Message, n.RecipientRole, n.RecipientId, n.IsRead, n.CreatedAt)
	}
	return rows
}

func userRows(u *model.User) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "email", "name", "phone_number", "password_hash", "role", "is_active",
		"refresh_token", "refresh_token_expiry", "created_at", "edited_at",
	}).AddRow(u.Id, u.Email, u.Name, u.PhoneNumber, u.PasswordHash, u.Role, u.IsActive,
		u.RefreshToken, u.RefreshTokenExpiry, u.CreatedAt, u.EditedAt)
}

func countRows(n int) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"count"}).AddRow(n)
}

func existsRows(found bool) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"exists"}).AddRow(found)
}
