package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"schoolhub/internal/model"
)

const batchColumns = `
	id, course_id, teacher_id, name, semester, start_date, end_date, is_active, created_at, edited_at`

var batchList = listQuery{
	columns: batchColumns,
	from:    "FROM batches",
	sortable: map[string]string{
		"name":        "name",
		"semester":    "semester",
		"startdate":   "start_date",
		"enddate":     "end_date",
		"isactive":    "is_active",
		"createddate": "created_at",
	},
	defaultSort: `"name" ASC`,
	search:      []string{"name"},
}

type BatchRepository struct {
	db DB
}

func NewBatchRepository(db DB) *BatchRepository {
	return &BatchRepository{db: db}
}

func (r *BatchRepository) CreateBatch(ctx context.Context, input *model.RepositoryCreateBatchInput) (*model.Batch, error) {
	query := `
INSERT INTO batches (id, course_id, teacher_id, name, semester, start_date, end_date, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING` + batchColumns

	var batch model.Batch
	err := pgxscan.Get(ctx, r.db, &batch, query,
		input.Id,
		input.CourseId,
		input.TeacherId,
		input.Name,
		input.Semester,
		input.StartDate,
		input.EndDate,
		input.IsActive,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &batch, nil
}

func (r *BatchRepository) GetBatch(ctx context.Context, id uuid.UUID) (*model.Batch, error) {
	query := `SELECT` + batchColumns + `
FROM batches
WHERE id = $1
`
	var batch model.Batch
	if err := pgxscan.Get(ctx, r.db, &batch, query, id); err != nil {
		return nil, handleError(err)
	}
	return &batch, nil
}

func (r *BatchRepository) GetBatchForCourse(ctx context.Context, courseId, id uuid.UUID) (*model.Batch, error) {
	query := `SELECT` + batchColumns + `
FROM batches
WHERE course_id = $1 AND id = $2
`
	var batch model.Batch
	if err := pgxscan.Get(ctx, r.db, &batch, query, courseId, id); err != nil {
		return nil, handleError(err)
	}
	return &batch, nil
}

func (r *BatchRepository) UpdateBatch(ctx context.Context, id uuid.UUID, input *model.RepositoryUpdateBatchInput) (*model.Batch, error) {
	query, args, err := buildBatchUpdateQuery(input)
	if err != nil {
		return nil, err
	}
	args = append(args, id)
	var batch model.Batch
	if err := pgxscan.Get(ctx, r.db, &batch, query, args...); err != nil {
		return nil, handleError(err)
	}
	return &batch, nil
}

func (r *BatchRepository) DeleteBatch(ctx context.Context, id uuid.UUID) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM batches WHERE id = $1`, id)
}

func (r *BatchRepository) BatchNameExists(ctx context.Context, courseId, teacherId uuid.UUID, name string) (bool, error) {
	return exists(ctx, r.db, `
SELECT EXISTS (
	SELECT 1 FROM batches
	WHERE course_id = $1 AND teacher_id = $2 AND upper(name) = upper($3)
)`, courseId, teacherId, name)
}

func (r *BatchRepository) ListBatchesForCourse(ctx context.Context, courseId uuid.UUID, params model.PageParams) (*model.Page[*model.Batch], error) {
	return selectPage[*model.Batch](ctx, r.db, batchList, []string{"course_id = $1"}, []any{courseId}, params)
}

func (r *BatchRepository) ListBatchesForTeacher(ctx context.Context, teacherId uuid.UUID, params model.PageParams) (*model.Page[*model.Batch], error) {
	return selectPage[*model.Batch](ctx, r.db, batchList, []string{"teacher_id = $1"}, []any{teacherId}, params)
}
