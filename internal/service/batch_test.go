package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"schoolhub/internal/errdefs"
	"schoolhub/internal/model"
	"schoolhub/internal/service"
)

func batchService(d *deps) *service.BatchService {
	return service.NewBatchService(d.courses, d.batches, d.fanout())
}

func newBatchInput() *model.CreateBatchInput {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	return &model.CreateBatchInput{
		Name:      " A ",
		Semester:  "Fall",
		StartDate: start,
		EndDate:   start.AddDate(0, 4, 0),
	}
}

// ── Create ──────────────────────────────────────────────────────────

func TestBatchCreate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		d := setup(t)
		svc := batchService(d)
		courseId, teacherId := uuid.New(), uuid.New()

		d.courses.EXPECT().GetCourse(gomock.Any(), courseId).Return(&model.Course{Id: courseId}, nil)
		d.batches.EXPECT().BatchNameExists(gomock.Any(), courseId, teacherId, "A").Return(false, nil)
		d.batches.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input *model.RepositoryCreateBatchInput) (*model.Batch, error) {
				assert.Equal(t, courseId, input.CourseId)
				assert.Equal(t, teacherId, input.TeacherId)
				assert.Equal(t, "A", input.Name)
				assert.False(t, input.IsActive)
				return &model.Batch{Id: input.Id, CourseId: courseId, TeacherId: teacherId, Name: input.Name}, nil
			})
		stored := d.expectNotices(1)

		batch, err := svc.Create(context.Background(), courseId, teacherId, newBatchInput())
		require.NoError(t, err)
		assert.Equal(t, "A", batch.Name)
		assert.False(t, batch.IsActive)
		assert.Equal(t, model.RoleAdmin, (*stored)[0].RecipientRole)
		assert.Equal(t, "Batch Created", (*stored)[0].Title)
	})

	t.Run("CreatedActive", func(t *testing.T) {
		d := setup(t)
		svc := batchService(d)
		courseId, teacherId := uuid.New(), uuid.New()

		d.courses.EXPECT().GetCourse(gomock.Any(), courseId).Return(&model.Course{Id: courseId}, nil)
		d.batches.EXPECT().BatchNameExists(gomock.Any(), courseId, teacherId, "A").Return(false, nil)
		d.batches.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input *model.RepositoryCreateBatchInput) (*model.Batch, error) {
				assert.True(t, input.IsActive)
				return &model.Batch{Id: input.Id, CourseId: courseId, TeacherId: teacherId, Name: input.Name, IsActive: input.IsActive}, nil
			})
		d.expectNotices(1)

		input := newBatchInput()
		input.IsActive = true
		batch, err := svc.Create(context.Background(), courseId, teacherId, input)
		require.NoError(t, err)
		assert.True(t, batch.IsActive)
	})

	t.Run("CourseMissingWinsOverNameTaken", func(t *testing.T) {
		d := setup(t)
		svc := batchService(d)
		courseId := uuid.New()

		d.courses.EXPECT().GetCourse(gomock.Any(), courseId).Return(nil, errdefs.ErrNotFound)

		_, err := svc.Create(context.Background(), courseId, uuid.New(), newBatchInput())
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
		assert.Contains(t, err.Error(), "Course with Id")
	})

	t.Run("NameTaken", func(t *testing.T) {
		d := setup(t)
		svc := batchService(d)
		courseId, teacherId := uuid.New(), uuid.New()

		d.courses.EXPECT().GetCourse(gomock.Any(), courseId).Return(&model.Course{Id: courseId}, nil)
		d.batches.EXPECT().BatchNameExists(gomock.Any(), courseId, teacherId, "A").Return(true, nil)

		_, err := svc.Create(context.Background(), courseId, teacherId, newBatchInput())
		assert.ErrorIs(t, err, errdefs.ErrConflict)
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		d := setup(t)
		svc := batchService(d)
		input := newBatchInput()
		input.EndDate = input.StartDate.AddDate(0, 0, -1)

		_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), input)
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})
}

// ── Update ──────────────────────────────────────────────────────────

func TestBatchUpdate(t *testing.T) {
	t.Run("NotOwner", func(t *testing.T) {
		d := setup(t)
		svc := batchService(d)
		courseId, ownerId, otherId, id := uuid.New(), uuid.New(), uuid.New(), uuid.New()

		d.courses.EXPECT().GetCourse(gomock.Any(), courseId).Return(&model.Course{Id: courseId}, nil)
		d.batches.EXPECT().GetBatchForCourse(gomock.Any(), courseId, id).
			Return(&model.Batch{Id: id, CourseId: courseId, TeacherId: ownerId}, nil)

		_, err := svc.Update(context.Background(), courseId, otherId, id, &model.UpdateBatchInput{Name: ptr("B")})
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("MergedDatesMustBeOrdered", func(t *testing.T) {
		d := setup(t)
		svc := batchService(d)
		courseId, teacherId, id := uuid.New(), uuid.New(), uuid.New()
		start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

		d.courses.EXPECT().GetCourse(gomock.Any(), courseId).Return(&model.Course{Id: courseId}, nil)
		d.batches.EXPECT().GetBatchForCourse(gomock.Any(), courseId, id).
			Return(&model.Batch{Id: id, TeacherId: teacherId, StartDate: start, EndDate: start.AddDate(0, 4, 0)}, nil)

		_, err := svc.Update(context.Background(), courseId, teacherId, id, &model.UpdateBatchInput{
			StartDate: ptr(start.AddDate(1, 0, 0)),
		})
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("Success", func(t *testing.T) {
		d := setup(t)
		svc := batchService(d)
		courseId, teacherId, id := uuid.New(), uuid.New(), uuid.New()

		d.courses.EXPECT().GetCourse(gomock.Any(), courseId).Return(&model.Course{Id: courseId}, nil)
		d.batches.EXPECT().GetBatchForCourse(gomock.Any(), courseId, id).
			Return(&model.Batch{Id: id, TeacherId: teacherId, Name: "A"}, nil)
		d.batches.EXPECT().BatchNameExists(gomock.Any(), courseId, teacherId, "B").Return(false, nil)
		d.batches.EXPECT().UpdateBatch(gomock.Any(), id, &model.RepositoryUpdateBatchInput{Name: ptr("B")}).
			Return(&model.Batch{Id: id, TeacherId: teacherId, Name: "B"}, nil)
		d.expectNotices(1)

		batch, err := svc.Update(context.Background(), courseId, teacherId, id, &model.UpdateBatchInput{Name: ptr("B")})
		require.NoError(t, err)
		assert.Equal(t, "B", batch.Name)
	})
}

// ── Activate / Deactivate ───────────────────────────────────────────

func TestBatchStateMachine(t *testing.T) {
	courseId, teacherId, id := uuid.New(), uuid.New(), uuid.New()

	expectGuards := func(d *deps, active bool) {
		d.courses.EXPECT().GetCourse(gomock.Any(), courseId).Return(&model.Course{Id: courseId}, nil)
		d.batches.EXPECT().GetBatchForCourse(gomock.Any(), courseId, id).
			Return(&model.Batch{Id: id, CourseId: courseId, TeacherId: teacherId, IsActive: active}, nil)
	}

	t.Run("ActivateThenActivateAgain", func(t *testing.T) {
		d := setup(t)
		svc := batchService(d)

		expectGuards(d, false)
		d.batches.EXPECT().UpdateBatch(gomock.Any(), id, &model.RepositoryUpdateBatchInput{IsActive: ptr(true)}).
			Return(&model.Batch{Id: id, TeacherId: teacherId, IsActive: true}, nil)
		stored := d.expectNotices(1)

		batch, err := svc.Activate(context.Background(), courseId, teacherId, id)
		require.NoError(t, err)
		assert.True(t, batch.IsActive)
		assert.Equal(t, "Batch Activated", (*stored)[0].Title)

		expectGuards(d, true)
		_, err = svc.Activate(context.Background(), courseId, teacherId, id)
		assert.ErrorIs(t, err, errdefs.ErrConflict)
		assert.EqualError(t, err, "The batch cannot be activated because it is already in that state.")
	})

	t.Run("DeactivateInactive", func(t *testing.T) {
		d := setup(t)
		svc := batchService(d)

		expectGuards(d, false)

		_, err := svc.Deactivate(context.Background(), courseId, teacherId, id)
		assert.ErrorIs(t, err, errdefs.ErrInvalidState)
	})

	t.Run("DeactivateActive", func(t *testing.T) {
		d := setup(t)
		svc := batchService(d)

		expectGuards(d, true)
		d.batches.EXPECT().UpdateBatch(gomock.Any(), id, &model.RepositoryUpdateBatchInput{IsActive: ptr(false)}).
			Return(&model.Batch{Id: id, TeacherId: teacherId}, nil)
		d.expectNotices(1)

		_, err := svc.Deactivate(context.Background(), courseId, teacherId, id)
		require.NoError(t, err)
	})

	t.Run("NotOwnerCannotActivate", func(t *testing.T) {
		d := setup(t)
		svc := batchService(d)

		expectGuards(d, false)

		_, err := svc.Activate(context.Background(), courseId, uuid.New(), id)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("NotOwnerCannotDeactivate", func(t *testing.T) {
		d := setup(t)
		svc := batchService(d)

		expectGuards(d, true)

		_, err := svc.Deactivate(context.Background(), courseId, uuid.New(), id)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})
}

// ── Delete ──────────────────────────────────────────────────────────

func TestBatchDelete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		d := setup(t)
		svc := batchService(d)
		courseId, teacherId, id := uuid.New(), uuid.New(), uuid.New()

		d.courses.EXPECT().GetCourse(gomock.Any(), courseId).Return(&model.Course{Id: courseId}, nil)
		d.batches.EXPECT().GetBatchForCourse(gomock.Any(), courseId, id).
			Return(&model.Batch{Id: id, TeacherId: teacherId, Name: "A"}, nil)
		d.batches.EXPECT().DeleteBatch(gomock.Any(), id).Return(nil)
		stored := d.expectNotices(1)

		require.NoError(t, svc.Delete(context.Background(), courseId, teacherId, id))
		assert.Equal(t, "Batch Deleted", (*stored)[0].Title)
	})

	t.Run("NotOwner", func(t *testing.T) {
		d := setup(t)
		svc := batchService(d)
		courseId, ownerId, id := uuid.New(), uuid.New(), uuid.New()

		d.courses.EXPECT().GetCourse(gomock.Any(), courseId).Return(&model.Course{Id: courseId}, nil)
		d.batches.EXPECT().GetBatchForCourse(gomock.Any(), courseId, id).
			Return(&model.Batch{Id: id, CourseId: courseId, TeacherId: ownerId, Name: "A"}, nil)

		err := svc.Delete(context.Background(), courseId, uuid.New(), id)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("BatchOfAnotherCourse", func(t *testing.T) {
		d := setup(t)
		svc := batchService(d)
		courseId, id := uuid.New(), uuid.New()

		d.courses.EXPECT().GetCourse(gomock.Any(), courseId).Return(&model.Course{Id: courseId}, nil)
		d.batches.EXPECT().GetBatchForCourse(gomock.Any(), courseId, id).Return(nil, errdefs.ErrNotFound)

		err := svc.Delete(context.Background(), courseId, uuid.New(), id)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
		assert.Contains(t, err.Error(), "Batch with Id")
	})
}

func TestBatchListForCourse(t *testing.T) {
	d := setup(t)
	svc := batchService(d)
	courseId := uuid.New()
	params := model.PageParams{PageNumber: 1, PageSize: 10}
	page := &model.Page[*model.Batch]{Items: []*model.Batch{{Id: uuid.New()}}}

	d.courses.EXPECT().GetCourse(gomock.Any(), courseId).Return(&model.Course{Id: courseId}, nil)
	d.batches.EXPECT().ListBatchesForCourse(gomock.Any(), courseId, params).Return(page, nil)

	result, err := svc.GetAllForCourse(context.Background(), courseId, params)
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
}
