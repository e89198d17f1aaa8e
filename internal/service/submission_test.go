package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"schoolhub/internal/errdefs"
	"schoolhub/internal/model"
	"schoolhub/internal/service"
)

func submissionService(d *deps) *service.SubmissionService {
	return service.NewSubmissionService(d.assignments, d.submissions, d.identity, d.storage, d.fanout(), 1024)
}

func pdf() *model.File {
	return &model.File{Name: "essay.PDF", ContentType: "application/pdf", Size: 4, Content: []byte("%PDF")}
}

// ── Submit ──────────────────────────────────────────────────────────

func TestSubmissionScenario(t *testing.T) {
	d := setup(t)
	svc := submissionService(d)
	assignmentId, authorId, studentId, teacherId := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	assignment := &model.Assignment{Id: assignmentId, CreatedByTeacherId: authorId}

	d.assignments.EXPECT().GetAssignment(gomock.Any(), assignmentId).Return(assignment, nil).AnyTimes()
	d.identity.EXPECT().GetUser(gomock.Any(), studentId).Return(&model.User{Id: studentId, Role: model.RoleStudent}, nil).AnyTimes()

	t.Run("Submit", func(t *testing.T) {
		d.submissions.EXPECT().SubmissionExists(gomock.Any(), assignmentId, studentId).Return(false, nil)
		d.storage.EXPECT().Save(gomock.Any(), gomock.Any()).Return("submissions/a.pdf", nil)
		d.submissions.EXPECT().CreateSubmission(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *model.RepositoryCreateSubmissionInput) (*model.Submission, error) {
				assert.Equal(t, "submissions/a.pdf", in.FileUrl)
				return &model.Submission{Id: in.Id, AssignmentId: assignmentId, StudentId: studentId, FileUrl: in.FileUrl}, nil
			})
		stored := d.expectNotices(1)

		_, err := svc.Submit(context.Background(), assignmentId, studentId, pdf())
		require.NoError(t, err)
		assert.Equal(t, "New Submission", (*stored)[0].Title)
		assert.Equal(t, model.RoleTeacher, (*stored)[0].RecipientRole)
		assert.Equal(t, &authorId, (*stored)[0].RecipientId)
	})

	t.Run("SubmitAgain", func(t *testing.T) {
		d.submissions.EXPECT().SubmissionExists(gomock.Any(), assignmentId, studentId).Return(true, nil)

		_, err := svc.Submit(context.Background(), assignmentId, studentId, pdf())
		assert.ErrorIs(t, err, errdefs.ErrAlreadySubmitted)
		assert.ErrorIs(t, err, errdefs.ErrConflict)
	})

	t.Run("GradeBelowFiftyWithoutRemarks", func(t *testing.T) {
		_, err := svc.Grade(context.Background(), assignmentId, teacherId, uuid.New(), &model.GradeSubmissionInput{Grade: 40})
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})
}

func TestSubmit_RemovesFileWhenInsertFails(t *testing.T) {
	d := setup(t)
	svc := submissionService(d)
	assignmentId, studentId := uuid.New(), uuid.New()

	d.assignments.EXPECT().GetAssignment(gomock.Any(), assignmentId).Return(&model.Assignment{Id: assignmentId}, nil)
	d.expectUser(studentId, model.RoleStudent)
	d.submissions.EXPECT().SubmissionExists(gomock.Any(), assignmentId, studentId).Return(false, nil)
	d.storage.EXPECT().Save(gomock.Any(), gomock.Any()).Return("submissions/b.pdf", nil)
	d.submissions.EXPECT().CreateSubmission(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
	d.storage.EXPECT().Delete(gomock.Any(), "submissions/b.pdf").Return(nil)

	_, err := svc.Submit(context.Background(), assignmentId, studentId, pdf())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSubmit_FileRules(t *testing.T) {
	d := setup(t)
	svc := submissionService(d)

	cases := []struct {
		name string
		file *model.File
	}{
		{"Missing", nil},
		{"Empty", &model.File{Name: "a.pdf"}},
		{"WrongExtension", &model.File{Name: "a.exe", Size: 3, Content: []byte("abc")}},
		{"TooLarge", &model.File{Name: "a.docx", Size: 2048, Content: make([]byte, 2048)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), uuid.New(), uuid.New(), tc.file)
			assert.ErrorIs(t, err, errdefs.ErrValidation)
		})
	}
}

// ── Update / Delete ─────────────────────────────────────────────────

func TestSubmissionUpdate(t *testing.T) {
	assignmentId, studentId, id := uuid.New(), uuid.New(), uuid.New()
	current := &model.Submission{Id: id, AssignmentId: assignmentId, StudentId: studentId, FileUrl: "submissions/old.pdf"}

	expectGuards := func(d *deps) {
		d.assignments.EXPECT().GetAssignment(gomock.Any(), assignmentId).Return(&model.Assignment{Id: assignmentId}, nil)
		d.identity.EXPECT().GetUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, uid uuid.UUID) (*model.User, error) {
				return &model.User{Id: uid, Role: model.RoleStudent}, nil
			})
		d.submissions.EXPECT().GetSubmissionForAssignment(gomock.Any(), assignmentId, id).Return(current, nil)
	}

	t.Run("ReplacesFile", func(t *testing.T) {
		d := setup(t)
		svc := submissionService(d)

		expectGuards(d)
		d.storage.EXPECT().Save(gomock.Any(), gomock.Any()).Return("submissions/new.pdf", nil)
		d.submissions.EXPECT().UpdateSubmission(gomock.Any(), id, &model.RepositoryUpdateSubmissionInput{FileUrl: ptr("submissions/new.pdf")}).
			Return(&model.Submission{Id: id, StudentId: studentId, FileUrl: "submissions/new.pdf"}, nil)
		d.storage.EXPECT().Delete(gomock.Any(), "submissions/old.pdf").Return(nil)
		stored := d.expectNotices(1)

		result, err := svc.Update(context.Background(), assignmentId, studentId, id, pdf())
		require.NoError(t, err)
		assert.Equal(t, "submissions/new.pdf", result.FileUrl)
		assert.Equal(t, "Submission Updated", (*stored)[0].Title)
	})

	t.Run("NotOwner", func(t *testing.T) {
		d := setup(t)
		svc := submissionService(d)

		expectGuards(d)

		_, err := svc.Update(context.Background(), assignmentId, uuid.New(), id, pdf())
		assert.ErrorIs(t, err, errdefs.ErrNotOwnedByStudent)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("UpdateFailsRemovesNewFile", func(t *testing.T) {
		d := setup(t)
		svc := submissionService(d)

		expectGuards(d)
		d.storage.EXPECT().Save(gomock.Any(), gomock.Any()).Return("submissions/new.pdf", nil)
		d.submissions.EXPECT().UpdateSubmission(gomock.Any(), id, gomock.Any()).Return(nil, assert.AnError)
		d.storage.EXPECT().Delete(gomock.Any(), "submissions/new.pdf").Return(nil)

		_, err := svc.Update(context.Background(), assignmentId, studentId, id, pdf())
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("Delete", func(t *testing.T) {
		d := setup(t)
		svc := submissionService(d)

		expectGuards(d)
		d.submissions.EXPECT().DeleteSubmission(gomock.Any(), id).Return(nil)
		d.storage.EXPECT().Delete(gomock.Any(), "submissions/old.pdf").Return(assert.AnError)
		d.expectNotices(1)

		require.NoError(t, svc.Delete(context.Background(), assignmentId, studentId, id))
	})

	t.Run("DeleteNotOwner", func(t *testing.T) {
		d := setup(t)
		svc := submissionService(d)

		expectGuards(d)

		err := svc.Delete(context.Background(), assignmentId, uuid.New(), id)
		assert.ErrorIs(t, err, errdefs.ErrNotOwnedByStudent)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})
}

// ── Grade ───────────────────────────────────────────────────────────

func TestGrade(t *testing.T) {
	assignmentId, teacherId, studentId, id := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	t.Run("RegradeOverwrites", func(t *testing.T) {
		d := setup(t)
		svc := submissionService(d)

		d.assignments.EXPECT().GetAssignment(gomock.Any(), assignmentId).Return(&model.Assignment{Id: assignmentId}, nil).Times(2)
		d.identity.EXPECT().GetUser(gomock.Any(), teacherId).Return(&model.User{Id: teacherId, Role: model.RoleTeacher}, nil).Times(2)
		d.submissions.EXPECT().GetSubmissionForAssignment(gomock.Any(), assignmentId, id).
			Return(&model.Submission{Id: id, StudentId: studentId}, nil).Times(2)
		gomock.InOrder(
			d.submissions.EXPECT().UpdateSubmission(gomock.Any(), id, &model.RepositoryUpdateSubmissionInput{
				Grade: ptr(80.0), GradedByTeacherId: &teacherId, ClearRemarks: true,
			}).Return(&model.Submission{Id: id, StudentId: studentId, Grade: ptr(80.0)}, nil),
			d.submissions.EXPECT().UpdateSubmission(gomock.Any(), id, &model.RepositoryUpdateSubmissionInput{
				Grade: ptr(45.0), Remarks: ptr("Needs work"), GradedByTeacherId: &teacherId,
			}).Return(&model.Submission{Id: id, StudentId: studentId, Grade: ptr(45.0)}, nil),
		)
		stored := d.expectNotices(2)

		_, err := svc.Grade(context.Background(), assignmentId, teacherId, id, &model.GradeSubmissionInput{Grade: 80})
		require.NoError(t, err)
		result, err := svc.Grade(context.Background(), assignmentId, teacherId, id, &model.GradeSubmissionInput{Grade: 45, Remarks: ptr("Needs work")})
		require.NoError(t, err)
		assert.Equal(t, 45.0, *result.Grade)
		assert.Equal(t, "Assignment Graded", (*stored)[1].Title)
		assert.Equal(t, &studentId, (*stored)[1].RecipientId)
	})

	t.Run("RegradeClearsEarlierRemarks", func(t *testing.T) {
		d := setup(t)
		svc := submissionService(d)

		d.assignments.EXPECT().GetAssignment(gomock.Any(), assignmentId).Return(&model.Assignment{Id: assignmentId}, nil).Times(2)
		d.identity.EXPECT().GetUser(gomock.Any(), teacherId).Return(&model.User{Id: teacherId, Role: model.RoleTeacher}, nil).Times(2)
		d.submissions.EXPECT().GetSubmissionForAssignment(gomock.Any(), assignmentId, id).
			Return(&model.Submission{Id: id, StudentId: studentId}, nil).Times(2)
		gomock.InOrder(
			d.submissions.EXPECT().UpdateSubmission(gomock.Any(), id, &model.RepositoryUpdateSubmissionInput{
				Grade: ptr(45.0), Remarks: ptr("Needs work"), GradedByTeacherId: &teacherId,
			}).Return(&model.Submission{Id: id, StudentId: studentId, Grade: ptr(45.0), Remarks: ptr("Needs work")}, nil),
			d.submissions.EXPECT().UpdateSubmission(gomock.Any(), id, &model.RepositoryUpdateSubmissionInput{
				Grade: ptr(80.0), GradedByTeacherId: &teacherId, ClearRemarks: true,
			}).Return(&model.Submission{Id: id, StudentId: studentId, Grade: ptr(80.0)}, nil),
		)
		d.expectNotices(2)

		_, err := svc.Grade(context.Background(), assignmentId, teacherId, id, &model.GradeSubmissionInput{Grade: 45, Remarks: ptr("Needs work")})
		require.NoError(t, err)
		result, err := svc.Grade(context.Background(), assignmentId, teacherId, id, &model.GradeSubmissionInput{Grade: 80, Remarks: ptr("   ")})
		require.NoError(t, err)
		assert.Equal(t, 80.0, *result.Grade)
		assert.Nil(t, result.Remarks)
	})

	t.Run("OutOfRange", func(t *testing.T) {
		d := setup(t)
		svc := submissionService(d)

		_, err := svc.Grade(context.Background(), assignmentId, teacherId, id, &model.GradeSubmissionInput{Grade: 101})
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("BlankRemarksBelowFifty", func(t *testing.T) {
		d := setup(t)
		svc := submissionService(d)

		_, err := svc.Grade(context.Background(), assignmentId, teacherId, id, &model.GradeSubmissionInput{Grade: 10, Remarks: ptr("  ")})
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("StudentCannotGrade", func(t *testing.T) {
		d := setup(t)
		svc := submissionService(d)

		d.assignments.EXPECT().GetAssignment(gomock.Any(), assignmentId).Return(&model.Assignment{Id: assignmentId}, nil)
		d.expectUser(studentId, model.RoleStudent)

		_, err := svc.Grade(context.Background(), assignmentId, studentId, id, &model.GradeSubmissionInput{Grade: 90})
		assert.ErrorIs(t, err, errdefs.ErrWrongRole)
	})
}

func TestCheckForSubmission(t *testing.T) {
	d := setup(t)
	svc := submissionService(d)
	assignmentId, studentId := uuid.New(), uuid.New()

	d.assignments.EXPECT().GetAssignment(gomock.Any(), assignmentId).Return(nil, errdefs.ErrNotFound)

	_, err := svc.CheckForSubmission(context.Background(), assignmentId, studentId)
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}
