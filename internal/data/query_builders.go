package data

import (
	"fmt"
	"strings"

	"schoolhub/internal/errdefs"
	"schoolhub/internal/model"
)

var ErrNoFieldsToUpdate = fmt.Errorf("no fields to update: %w", errdefs.ErrValidation)

type updateBuilder struct {
	set  []string
	args []any
}

func (b *updateBuilder) add(column string, value any) {
	b.args = append(b.args, value)
	b.set = append(b.set, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// build renders "UPDATE table SET ... WHERE <key> = $n RETURNING ...". touch adds edited_at = now().
func (b *updateBuilder) build(table, key string, touch bool, returning string) (string, []any, error) {
	if len(b.set) == 0 {
		return "", nil, ErrNoFieldsToUpdate
	}
	set := b.set
	if touch {
		set = append(set, "edited_at = now()")
	}
	query := fmt.Sprintf(`
UPDATE %s
SET %s
WHERE %s = $%d
RETURNING %s
`, table, strings.Join(set, ", "), key, len(b.args)+1, returning)
	return query, b.args, nil
}

func buildUserUpdateQuery(input *model.RepositoryUpdateUserInput) (string, []any, error) {
	var b updateBuilder
	if input.Name != nil {
		b.add("name", input.Name)
	}
	if input.PhoneNumber != nil {
		b.add("phone_number", input.PhoneNumber)
	}
	if input.IsActive != nil {
		b.add("is_active", input.IsActive)
	}
	if input.RefreshToken != nil {
		b.add("refresh_token", input.RefreshToken)
	}
	if input.RefreshTokenExpiry != nil {
		b.add("refresh_token_expiry", input.RefreshTokenExpiry)
	}
	return b.build("users", "id", true, userColumns)
}

func buildDepartmentUpdateQuery(input *model.RepositoryUpdateDepartmentInput) (string, []any, error) {
	var b updateBuilder
	if input.Name != nil {
		b.add("name", input.Name)
	}
	if input.Description != nil {
		b.add("description", input.Description)
	}
	if input.HeadOfDepartmentId != nil {
		b.add("head_of_department_id", input.HeadOfDepartmentId)
	} else if input.ClearHeadOfDepartment {
		b.set = append(b.set, "head_of_department_id = NULL")
	}
	return b.build("departments", "id", true, departmentColumns)
}

func buildCourseUpdateQuery(input *model.RepositoryUpdateCourseInput) (string, []any, error) {
	var b updateBuilder
	if input.Name != nil {
		b.add("name", input.Name)
	}
	if input.Code != nil {
		b.add("code", input.Code)
	}
	if input.Description != nil {
		b.add("description", input.Description)
	}
	if input.Credits != nil {
		b.add("credits", input.Credits)
	}
	if input.IsActive != nil {
		b.add("is_active", input.IsActive)
	}
	return b.build("courses", "id", true, courseColumns)
}

func buildBatchUpdateQuery(input *model.RepositoryUpdateBatchInput) (string, []any, error) {
	var b updateBuilder
	if input.Name != nil {
		b.add("name", input.Name)
	}
	if input.Semester != nil {
		b.add("semester", input.Semester)
	}
	if input.StartDate != nil {
		b.add("start_date", input.StartDate)
	}
	if input.EndDate != nil {
		b.add("end_date", input.EndDate)
	}
	if input.IsActive != nil {
		b.add("is_active", input.IsActive)
	}
	return b.build("batches", "id", true, batchColumns)
}

func buildAttendanceUpdateQuery(input *model.RepositoryUpdateAttendanceInput) (string, []any, error) {
	var b updateBuilder
	if input.Date != nil {
		b.add("date", input.Date)
	}
	if input.Status != nil {
		b.add("status", input.Status)
	}
	return b.build("attendances", "id", false, attendanceColumns)
}

func buildAssignmentUpdateQuery(input *model.RepositoryUpdateAssignmentInput) (string, []any, error) {
	var b updateBuilder
	if input.Title != nil {
		b.add("title", input.Title)
	}
	if input.Description != nil {
		b.add("description", input.Description)
	}
	if input.DueDate != nil {
		b.add("due_date", input.DueDate)
	}
	return b.build("assignments", "id", false, assignmentColumns)
}

func buildSubmissionUpdateQuery(input *model.RepositoryUpdateSubmissionInput) (string, []any, error) {
	var b updateBuilder
	if input.FileUrl != nil {
		b.add("file_url", input.FileUrl)
		b.set = append(b.set, "submitted_at = now()")
	}
	if input.Grade != nil {
		b.add("grade", input.Grade)
	}
	if input.Remarks != nil {
		b.add("remarks", input.Remarks)
	} else if input.ClearRemarks {
		b.set = append(b.set, "remarks = NULL")
	}
	if input.GradedByTeacherId != nil {
		b.add("graded_by_teacher_id", input.GradedByTeacherId)
	}
	return b.build("submissions", "id", false, submissionColumns)
}

func buildNotificationUpdateQuery(input *model.RepositoryUpdateNotificationInput) (string, []any, error) {
	var b updateBuilder
	if input.Title != nil {
		b.add("title", input.Title)
	}
	if input.Message != nil {
		b.add("message", input.Message)
	}
	if input.IsRead != nil {
		b.add("is_read", input.IsRead)
	}
	return b.build("notifications", "id", false, notificationColumns)
}
