package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"schoolhub/internal/model"
)

const courseColumns = `
	id, department_id, name, code, description, credits, is_active, created_at, edited_at`

var courseList = listQuery{
	columns: courseColumns,
	from:    "FROM courses",
	sortable: map[string]string{
		"name":        "name",
		"code":        "code",
		"credits":     "credits",
		"isactive":    "is_active",
		"createddate": "created_at",
	},
	defaultSort: `"name" ASC`,
	search:      []string{"name", "code"},
}

type CourseRepository struct {
	db DB
}

func NewCourseRepository(db DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) CreateCourse(ctx context.Context, input *model.RepositoryCreateCourseInput) (*model.Course, error) {
	query := `
INSERT INTO courses (id, department_id, name, code, description, credits)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING` + courseColumns

	var course model.Course
	err := pgxscan.Get(ctx, r.db, &course, query,
		input.Id,
		input.DepartmentId,
		input.Name,
		input.Code,
		input.Description,
		input.Credits,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &course, nil
}

func (r *CourseRepository) GetCourse(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	query := `SELECT` + courseColumns + `
FROM courses
WHERE id = $1
`
	var course model.Course
	if err := pgxscan.Get(ctx, r.db, &course, query, id); err != nil {
		return nil, handleError(err)
	}
	return &course, nil
}

func (r *CourseRepository) GetCourseForDepartment(ctx context.Context, departmentId, id uuid.UUID) (*model.Course, error) {
	query := `SELECT` + courseColumns + `
FROM courses
WHERE department_id = $1 AND id = $2
`
	var course model.Course
	if err := pgxscan.Get(ctx, r.db, &course, query, departmentId, id); err != nil {
		return nil, handleError(err)
	}
	return &course, nil
}

func (r *CourseRepository) UpdateCourse(ctx context.Context, id uuid.UUID, input *model.RepositoryUpdateCourseInput) (*model.Course, error) {
	query, args, err := buildCourseUpdateQuery(input)
	if err != nil {
		return nil, err
	}
	args = append(args, id)
	var course model.Course
	if err := pgxscan.Get(ctx, r.db, &course, query, args...); err != nil {
		return nil, handleError(err)
	}
	return &course, nil
}

func (r *CourseRepository) CourseCodeExists(ctx context.Context, departmentId uuid.UUID, code string) (bool, error) {
	return exists(ctx, r.db,
		`SELECT EXISTS (SELECT 1 FROM courses WHERE department_id = $1 AND upper(code) = upper($2))`,
		departmentId, code)
}

func (r *CourseRepository) ListCoursesForDepartment(ctx context.Context, departmentId uuid.UUID, params model.PageParams) (*model.Page[*model.Course], error) {
	return selectPage[*model.Course](ctx, r.db, courseList, []string{"department_id = $1"}, []any{departmentId}, params)
}
