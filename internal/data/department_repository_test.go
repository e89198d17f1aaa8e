package data

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub/internal/errdefs"
	"schoolhub/internal/model"
)

func TestDepartmentRepository_CreateDepartment(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewDepartmentRepository(mockPool)
	now := time.Now()
	dept := &model.Department{Id: uuid.New(), Name: "Computer Science", HeadOfDepartmentId: nilUUID, Description: nilString, CreatedAt: now, EditedAt: now}

	mockPool.ExpectQuery("INSERT INTO departments").
		WithArgs(dept.Id, dept.Name, nilString, nilUUID).
		WillReturnRows(departmentRows(dept))

	got, err := repo.CreateDepartment(context.Background(), &model.RepositoryCreateDepartmentInput{
		Id:   dept.Id,
		Name: dept.Name,
	})
	require.NoError(t, err)
	assert.Equal(t, dept.Id, got.Id)
	assert.Equal(t, "Computer Science", got.Name)
}

func TestDepartmentRepository_CreateDepartment_UniqueViolation(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewDepartmentRepository(mockPool)
	id := uuid.New()

	mockPool.ExpectQuery("INSERT INTO departments").
		WithArgs(id, "computer science", nilString, nilUUID).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.CreateDepartment(context.Background(), &model.RepositoryCreateDepartmentInput{Id: id, Name: "computer science"})
	assert.ErrorIs(t, err, errdefs.ErrAlreadyExists)
	assert.ErrorIs(t, err, errdefs.ErrConflict)
}

func TestDepartmentRepository_GetDepartment_NotFound(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewDepartmentRepository(mockPool)
	id := uuid.New()

	mockPool.ExpectQuery("SELECT .* FROM departments WHERE id =").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetDepartment(context.Background(), id)
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

func TestDepartmentRepository_DepartmentNameExists(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewDepartmentRepository(mockPool)

	mockPool.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM departments WHERE upper\(name\) = upper\(\$1\)\)`).
		WithArgs("computer science").
		WillReturnRows(existsRows(true))

	found, err := repo.DepartmentNameExists(context.Background(), "computer science")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestDepartmentRepository_IsHeadOfDepartment(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewDepartmentRepository(mockPool)
	teacherId := uuid.New()

	mockPool.ExpectQuery("SELECT EXISTS .* head_of_department_id = \\$1").
		WithArgs(teacherId).
		WillReturnRows(existsRows(false))

	found, err := repo.IsHeadOfDepartment(context.Background(), teacherId)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDepartmentRepository_DeleteDepartment(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := NewDepartmentRepository(mockPool)
		id := uuid.New()

		mockPool.ExpectExec("DELETE FROM departments WHERE id =").
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.DeleteDepartment(context.Background(), id))
	})

	t.Run("NotFound", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := NewDepartmentRepository(mockPool)
		id := uuid.New()

		mockPool.ExpectExec("DELETE FROM departments WHERE id =").
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.DeleteDepartment(context.Background(), id), errdefs.ErrNotFound)
	})

	t.Run("HasCourses", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := NewDepartmentRepository(mockPool)
		id := uuid.New()

		mockPool.ExpectExec("DELETE FROM departments WHERE id =").
			WithArgs(id).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		err := repo.DeleteDepartment(context.Background(), id)
		assert.ErrorIs(t, err, errdefs.ErrConflict)
		assert.NotErrorIs(t, err, errdefs.ErrAlreadyExists)
	})
}

func TestDepartmentRepository_UpdateDepartment(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewDepartmentRepository(mockPool)
	now := time.Now()
	name := "Mathematics"
	dept := &model.Department{Id: uuid.New(), Name: name, Description: nilString, HeadOfDepartmentId: nilUUID, CreatedAt: now, EditedAt: now}

	mockPool.ExpectQuery("UPDATE departments SET name = \\$1, edited_at = now\\(\\) WHERE id = \\$2").
		WithArgs(&name, dept.Id).
		WillReturnRows(departmentRows(dept))

	got, err := repo.UpdateDepartment(context.Background(), dept.Id, &model.RepositoryUpdateDepartmentInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, got.Name)
}
