package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"schoolhub/internal/model"
)

const enrollmentColumns = `
	id, batch_id, student_id, enrollment_date`

var enrollmentList = listQuery{
	columns: enrollmentColumns,
	from:    "FROM student_batches",
	sortable: map[string]string{
		"enrollmentdate": "enrollment_date",
	},
	defaultSort: `"enrollment_date" ASC`,
}

var enrolledBatchList = listQuery{
	columns: `sb.id AS enrollment_id, sb.enrollment_date, b.id AS batch_id, b.course_id,
	b.name, b.semester, b.start_date, b.end_date, b.is_active`,
	from: "FROM student_batches sb\nJOIN batches b ON b.id = sb.batch_id",
	sortable: map[string]string{
		"enrollmentdate": "sb.enrollment_date",
		"name":           "b.name",
		"startdate":      "b.start_date",
	},
	defaultSort: `"sb"."enrollment_date" ASC`,
	search:      []string{"b.name"},
}

type EnrollmentRepository struct {
	db DB
}

func NewEnrollmentRepository(db DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (r *EnrollmentRepository) CreateEnrollment(ctx context.Context, input *model.RepositoryCreateEnrollmentInput) (*model.StudentBatch, error) {
	query := `
INSERT INTO student_batches (id, batch_id, student_id, enrollment_date)
VALUES ($1, $2, $3, $4)
RETURNING` + enrollmentColumns

	var enrollment model.StudentBatch
	err := pgxscan.Get(ctx, r.db, &enrollment, query,
		input.Id,
		input.BatchId,
		input.StudentId,
		input.EnrollmentDate,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &enrollment, nil
}

func (r *EnrollmentRepository) GetEnrollment(ctx context.Context, batchId, studentId uuid.UUID) (*model.StudentBatch, error) {
	query := `SELECT` + enrollmentColumns + `
FROM student_batches
WHERE batch_id = $1 AND student_id = $2
`
	var enrollment model.StudentBatch
	if err := pgxscan.Get(ctx, r.db, &enrollment, query, batchId, studentId); err != nil {
		return nil, handleError(err)
	}
	return &enrollment, nil
}

func (r *EnrollmentRepository) GetEnrollmentForBatch(ctx context.Context, batchId, id uuid.UUID) (*model.StudentBatch, error) {
	query := `SELECT` + enrollmentColumns + `
FROM student_batches
WHERE batch_id = $1 AND id = $2
`
	var enrollment model.StudentBatch
	if err := pgxscan.Get(ctx, r.db, &enrollment, query, batchId, id); err != nil {
		return nil, handleError(err)
	}
	return &enrollment, nil
}

func (r *EnrollmentRepository) DeleteEnrollment(ctx context.Context, id uuid.UUID) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM student_batches WHERE id = $1`, id)
}

func (r *EnrollmentRepository) ListEnrollmentsForBatch(ctx context.Context, batchId uuid.UUID, params model.PageParams) (*model.Page[*model.StudentBatch], error) {
	return selectPage[*model.StudentBatch](ctx, r.db, enrollmentList, []string{"batch_id = $1"}, []any{batchId}, params)
}

func (r *EnrollmentRepository) ListBatchesForStudent(ctx context.Context, studentId uuid.UUID, params model.PageParams) (*model.Page[*model.EnrolledBatch], error) {
	return selectPage[*model.EnrolledBatch](ctx, r.db, enrolledBatchList, []string{"sb.student_id = $1"}, []any{studentId}, params)
}
