package data

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub/internal/errdefs"
	"schoolhub/internal/model"
)

func TestCourseRepository_CreateCourse(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewCourseRepository(mockPool)
	now := time.Now()
	course := &model.Course{
		Id: uuid.New(), DepartmentId: uuid.New(), Name: "Intro", Code: "CS101",
		Description: nilString, Credits: 3, IsActive: true, CreatedAt: now, EditedAt: now,
	}

	mockPool.ExpectQuery("INSERT INTO courses").
		WithArgs(course.Id, course.DepartmentId, course.Name, course.Code, nilString, int32(3)).
		WillReturnRows(courseRows(course))

	got, err := repo.CreateCourse(context.Background(), &model.RepositoryCreateCourseInput{
		Id:           course.Id,
		DepartmentId: course.DepartmentId,
		Name:         course.Name,
		Code:         course.Code,
		Credits:      3,
	})
	require.NoError(t, err)
	assert.True(t, got.IsActive)
	assert.Equal(t, "CS101", got.Code)
}

func TestCourseRepository_CourseCodeExists(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewCourseRepository(mockPool)
	departmentId := uuid.New()

	mockPool.ExpectQuery(`SELECT EXISTS .* department_id = \$1 AND upper\(code\) = upper\(\$2\)`).
		WithArgs(departmentId, "cs101").
		WillReturnRows(existsRows(true))

	found, err := repo.CourseCodeExists(context.Background(), departmentId, "cs101")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestCourseRepository_GetCourseForDepartment_NotFound(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewCourseRepository(mockPool)
	departmentId, id := uuid.New(), uuid.New()

	mockPool.ExpectQuery("SELECT .* FROM courses WHERE department_id = \\$1 AND id = \\$2").
		WithArgs(departmentId, id).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetCourseForDepartment(context.Background(), departmentId, id)
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

func TestCourseRepository_SoftDelete(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewCourseRepository(mockPool)
	now := time.Now()
	course := &model.Course{Id: uuid.New(), DepartmentId: uuid.New(), Name: "Intro", Code: "CS101", Description: nilString, Credits: 3, CreatedAt: now, EditedAt: now}
	inactive := false

	mockPool.ExpectQuery("UPDATE courses SET is_active = \\$1, edited_at = now\\(\\) WHERE id = \\$2").
		WithArgs(&inactive, course.Id).
		WillReturnRows(courseRows(course))

	got, err := repo.UpdateCourse(context.Background(), course.Id, &model.RepositoryUpdateCourseInput{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}
