package data

import (
	"context"
	"testing"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub/internal/model"
)

func TestBuildOrderBy(t *testing.T) {
	sortable := map[string]string{
		"name":        "name",
		"createddate": "created_at",
		"teacher":     "t.name",
	}
	def := `"name" ASC`

	tests := []struct {
		name    string
		orderBy string
		want    string
	}{
		{"Empty", "", def},
		{"SingleAscending", "createdDate", `"created_at" ASC`},
		{"Descending", "name desc", `"name" DESC`},
		{"CaseInsensitiveField", "NAME DESC", `"name" DESC`},
		{"Multiple", "name desc, createdDate", `"name" DESC, "created_at" ASC`},
		{"UnknownIgnored", "password, name", `"name" ASC`},
		{"OnlyUnknown", "password desc", def},
		{"Duplicate", "name, name desc", `"name" ASC`},
		{"Qualified", "teacher", `"t"."name" ASC`},
		{"Injection", `name; DROP TABLE users`, `"name" ASC`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildOrderBy(tt.orderBy, sortable, def))
		})
	}
}

func TestSelectPage(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewBatchRepository(mockPool)
	courseId := uuid.New()
	batch := &model.Batch{Id: uuid.New(), CourseId: courseId, TeacherId: uuid.New(), Name: "Morning"}

	mockPool.ExpectQuery(`SELECT count\(\*\) FROM batches WHERE course_id = \$1 AND \(lower\(name\) LIKE \$2\)`).
		WithArgs(courseId, `%mor\_n%`).
		WillReturnRows(countRows(11))
	mockPool.ExpectQuery(`SELECT .* FROM batches WHERE course_id = \$1 AND \(lower\(name\) LIKE \$2\) ORDER BY "start_date" DESC LIMIT \$3 OFFSET \$4`).
		WithArgs(courseId, `%mor\_n%`, 5, 5).
		WillReturnRows(batchRows(batch))

	page, err := repo.ListBatchesForCourse(context.Background(), courseId, model.PageParams{
		PageNumber: 2,
		PageSize:   5,
		OrderBy:    "startDate desc",
		SearchTerm: " Mor_n ",
	})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, batch.Id, page.Items[0].Id)
	assert.Equal(t, model.PageMeta{CurrentPage: 2, PageSize: 5, TotalCount: 11, TotalPages: 3}, page.Meta)
}

func TestSelectPageDefaults(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewNotificationRepository(mockPool)

	mockPool.ExpectQuery(`SELECT count\(\*\) FROM notifications$`).
		WillReturnRows(countRows(0))
	mockPool.ExpectQuery(`FROM notifications ORDER BY "created_at" DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(model.DefaultPageSize, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "message", "recipient_role", "recipient_id", "is_read", "created_at"}))

	page, err := repo.ListNotifications(context.Background(), model.PageParams{})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Meta.TotalPages)
}
