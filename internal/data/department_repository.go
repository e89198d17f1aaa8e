package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"schoolhub/internal/model"
)

const departmentColumns = `
	id, name, description, head_of_department_id, created_at, edited_at`

var departmentList = listQuery{
	columns: departmentColumns,
	from:    "FROM departments",
	sortable: map[string]string{
		"name":        "name",
		"createddate": "created_at",
	},
	defaultSort: `"name" ASC`,
	search:      []string{"name"},
}

type DepartmentRepository struct {
	db DB
}

func NewDepartmentRepository(db DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) CreateDepartment(ctx context.Context, input *model.RepositoryCreateDepartmentInput) (*model.Department, error) {
	query := `
INSERT INTO departments (id, name, description, head_of_department_id)
VALUES ($1, $2, $3, $4)
RETURNING` + departmentColumns

	var department model.Department
	err := pgxscan.Get(ctx, r.db, &department, query,
		input.Id,
		input.Name,
		input.Description,
		input.HeadOfDepartmentId,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &department, nil
}

func (r *DepartmentRepository) GetDepartment(ctx context.Context, id uuid.UUID) (*model.Department, error) {
	query := `SELECT` + departmentColumns + `
FROM departments
WHERE id = $1
`
	var department model.Department
	if err := pgxscan.Get(ctx, r.db, &department, query, id); err != nil {
		return nil, handleError(err)
	}
	return &department, nil
}

func (r *DepartmentRepository) UpdateDepartment(ctx context.Context, id uuid.UUID, input *model.RepositoryUpdateDepartmentInput) (*model.Department, error) {
	query, args, err := buildDepartmentUpdateQuery(input)
	if err != nil {
		return nil, err
	}
	args = append(args, id)
	var department model.Department
	if err := pgxscan.Get(ctx, r.db, &department, query, args...); err != nil {
		return nil, handleError(err)
	}
	return &department, nil
}

func (r *DepartmentRepository) DeleteDepartment(ctx context.Context, id uuid.UUID) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM departments WHERE id = $1`, id)
}

func (r *DepartmentRepository) DepartmentNameExists(ctx context.Context, name string) (bool, error) {
	return exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM departments WHERE upper(name) = upper($1))`, name)
}

func (r *DepartmentRepository) IsHeadOfDepartment(ctx context.Context, teacherId uuid.UUID) (bool, error) {
	return exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM departments WHERE head_of_department_id = $1)`, teacherId)
}

func (r *DepartmentRepository) ListDepartments(ctx context.Context, params model.PageParams) (*model.Page[*model.Department], error) {
	return selectPage[*model.Department](ctx, r.db, departmentList, nil, nil, params)
}
