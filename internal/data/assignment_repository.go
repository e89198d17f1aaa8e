package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"schoolhub/internal/model"
)

const assignmentColumns = `
	id, batch_id, created_by_teacher_id, title, description, due_date, created_at`

var assignmentList = listQuery{
	columns: assignmentColumns,
	from:    "FROM assignments",
	sortable: map[string]string{
		"title":       "title",
		"duedate":     "due_date",
		"createddate": "created_at",
	},
	defaultSort: `"created_at" ASC`,
	search:      []string{"title", "coalesce(description, '')"},
}

type AssignmentRepository struct {
	db DB
}

func NewAssignmentRepository(db DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) CreateAssignment(ctx context.Context, input *model.RepositoryCreateAssignmentInput) (*model.Assignment, error) {
	query := `
INSERT INTO assignments (id, batch_id, created_by_teacher_id, title, description, due_date)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING` + assignmentColumns

	var assignment model.Assignment
	err := pgxscan.Get(ctx, r.db, &assignment, query,
		input.Id,
		input.BatchId,
		input.CreatedByTeacherId,
		input.Title,
		input.Description,
		input.DueDate,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &assignment, nil
}

func (r *AssignmentRepository) GetAssignment(ctx context.Context, id uuid.UUID) (*model.Assignment, error) {
	query := `SELECT` + assignmentColumns + `
FROM assignments
WHERE id = $1
`
	var assignment model.Assignment
	if err := pgxscan.Get(ctx, r.db, &assignment, query, id); err != nil {
		return nil, handleError(err)
	}
	return &assignment, nil
}

func (r *AssignmentRepository) GetAssignmentForBatch(ctx context.Context, batchId, id uuid.UUID) (*model.Assignment, error) {
	query := `SELECT` + assignmentColumns + `
FROM assignments
WHERE batch_id = $1 AND id = $2
`
	var assignment model.Assignment
	if err := pgxscan.Get(ctx, r.db, &assignment, query, batchId, id); err != nil {
		return nil, handleError(err)
	}
	return &assignment, nil
}

func (r *AssignmentRepository) UpdateAssignment(ctx context.Context, id uuid.UUID, input *model.RepositoryUpdateAssignmentInput) (*model.Assignment, error) {
	query, args, err := buildAssignmentUpdateQuery(input)
	if err != nil {
		return nil, err
	}
	args = append(args, id)
	var assignment model.Assignment
	if err := pgxscan.Get(ctx, r.db, &assignment, query, args...); err != nil {
		return nil, handleError(err)
	}
	return &assignment, nil
}

func (r *AssignmentRepository) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM assignments WHERE id = $1`, id)
}

func (r *AssignmentRepository) ListAssignmentsForBatch(ctx context.Context, batchId uuid.UUID, params model.PageParams) (*model.Page[*model.Assignment], error) {
	return selectPage[*model.Assignment](ctx, r.db, assignmentList, []string{"batch_id = $1"}, []any{batchId}, params)
}
