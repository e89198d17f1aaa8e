package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"schoolhub/internal/model"
)

const submissionColumns = `
	id, assignment_id, student_id, file_url, grade, remarks, graded_by_teacher_id, submitted_at`

var submissionList = listQuery{
	columns: submissionColumns,
	from:    "FROM submissions",
	sortable: map[string]string{
		"submitteddate": "submitted_at",
		"grade":         "grade",
	},
	defaultSort: `"submitted_at" ASC`,
}

type SubmissionRepository struct {
	db DB
}

func NewSubmissionRepository(db DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) CreateSubmission(ctx context.Context, input *model.RepositoryCreateSubmissionInput) (*model.Submission, error) {
	query := `
INSERT INTO submissions (id, assignment_id, student_id, file_url)
VALUES ($1, $2, $3, $4)
RETURNING` + submissionColumns

	var submission model.Submission
	err := pgxscan.Get(ctx, r.db, &submission, query,
		input.Id,
		input.AssignmentId,
		input.StudentId,
		input.FileUrl,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &submission, nil
}

func (r *SubmissionRepository) GetSubmissionForAssignment(ctx context.Context, assignmentId, id uuid.UUID) (*model.Submission, error) {
	query := `SELECT` + submissionColumns + `
FROM submissions
WHERE assignment_id = $1 AND id = $2
`
	var submission model.Submission
	if err := pgxscan.Get(ctx, r.db, &submission, query, assignmentId, id); err != nil {
		return nil, handleError(err)
	}
	return &submission, nil
}

func (r *SubmissionRepository) SubmissionExists(ctx context.Context, assignmentId, studentId uuid.UUID) (bool, error) {
	return exists(ctx, r.db,
		`SELECT EXISTS (SELECT 1 FROM submissions WHERE assignment_id = $1 AND student_id = $2)`,
		assignmentId, studentId)
}

func (r *SubmissionRepository) UpdateSubmission(ctx context.Context, id uuid.UUID, input *model.RepositoryUpdateSubmissionInput) (*model.Submission, error) {
	query, args, err := buildSubmissionUpdateQuery(input)
	if err != nil {
		return nil, err
	}
	args = append(args, id)
	var submission model.Submission
	if err := pgxscan.Get(ctx, r.db, &submission, query, args...); err != nil {
		return nil, handleError(err)
	}
	return &submission, nil
}

func (r *SubmissionRepository) DeleteSubmission(ctx context.Context, id uuid.UUID) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM submissions WHERE id = $1`, id)
}

func (r *SubmissionRepository) ListSubmissionsForAssignment(ctx context.Context, assignmentId uuid.UUID, params model.PageParams) (*model.Page[*model.Submission], error) {
	return selectPage[*model.Submission](ctx, r.db, submissionList, []string{"assignment_id = $1"}, []any{assignmentId}, params)
}
