package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"schoolhub/internal/model"
)

const attendanceColumns = `
	id, batch_id, student_id, marked_by_teacher_id, date, status, created_at`

var attendanceList = listQuery{
	columns: attendanceColumns,
	from:    "FROM attendances",
	sortable: map[string]string{
		"date":        "date",
		"status":      "status",
		"createddate": "created_at",
	},
	defaultSort: `"date" ASC`,
	search:      []string{"status"},
}

type AttendanceRepository struct {
	db DB
}

func NewAttendanceRepository(db DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) CreateAttendance(ctx context.Context, input *model.RepositoryCreateAttendanceInput) (*model.Attendance, error) {
	query := `
INSERT INTO attendances (id, batch_id, student_id, marked_by_teacher_id, date, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING` + attendanceColumns

	var attendance model.Attendance
	err := pgxscan.Get(ctx, r.db, &attendance, query,
		input.Id,
		input.BatchId,
		input.StudentId,
		input.MarkedByTeacherId,
		input.Date,
		input.Status,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &attendance, nil
}

func (r *AttendanceRepository) GetAttendanceForBatch(ctx context.Context, batchId, id uuid.UUID) (*model.Attendance, error) {
	query := `SELECT` + attendanceColumns + `
FROM attendances
WHERE batch_id = $1 AND id = $2
`
	var attendance model.Attendance
	if err := pgxscan.Get(ctx, r.db, &attendance, query, batchId, id); err != nil {
		return nil, handleError(err)
	}
	return &attendance, nil
}

func (r *AttendanceRepository) GetAttendanceForStudent(ctx context.Context, batchId, studentId uuid.UUID) (*model.Attendance, error) {
	query := `SELECT` + attendanceColumns + `
FROM attendances
WHERE batch_id = $1 AND student_id = $2
`
	var attendance model.Attendance
	if err := pgxscan.Get(ctx, r.db, &attendance, query, batchId, studentId); err != nil {
		return nil, handleError(err)
	}
	return &attendance, nil
}

func (r *AttendanceRepository) AttendanceExists(ctx context.Context, batchId, studentId uuid.UUID) (bool, error) {
	return exists(ctx, r.db,
		`SELECT EXISTS (SELECT 1 FROM attendances WHERE batch_id = $1 AND student_id = $2)`,
		batchId, studentId)
}

func (r *AttendanceRepository) UpdateAttendance(ctx context.Context, id uuid.UUID, input *model.RepositoryUpdateAttendanceInput) (*model.Attendance, error) {
	query, args, err := buildAttendanceUpdateQuery(input)
	if err != nil {
		return nil, err
	}
	args = append(args, id)
	var attendance model.Attendance
	if err := pgxscan.Get(ctx, r.db, &attendance, query, args...); err != nil {
		return nil, handleError(err)
	}
	return &attendance, nil
}

func (r *AttendanceRepository) DeleteAttendance(ctx context.Context, id uuid.UUID) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM attendances WHERE id = $1`, id)
}

func (r *AttendanceRepository) ListAttendanceForBatch(ctx context.Context, batchId uuid.UUID, params model.PageParams) (*model.Page[*model.Attendance], error) {
	return selectPage[*model.Attendance](ctx, r.db, attendanceList, []string{"batch_id = $1"}, []any{batchId}, params)
}
