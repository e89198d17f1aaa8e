package service_test

import (
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"schoolhub/internal/model"
	"schoolhub/internal/service"
	"schoolhub/internal/service/mocks"
)

type deps struct {
	ctrl          *gomock.Controller
	users         *mocks.MockUserRepository
	identity      *mocks.MockIdentityProvider
	departments   *mocks.MockDepartmentRepository
	courses       *mocks.MockCourseRepository
	batches       *mocks.MockBatchRepository
	enrollments   *mocks.MockEnrollmentRepository
	attendance    *mocks.MockAttendanceRepository
	assignments   *mocks.MockAssignmentRepository
	submissions   *mocks.MockSubmissionRepository
	notifications *mocks.MockNotificationRepository
	storage       *mocks.MockFileStorage
	publisher     *mocks.MockNotificationPublisher
	tokens        *mocks.MockTokenManager
}

func setup(t *testing.T) *deps {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	return &deps{
		ctrl:          ctrl,
		users:         mocks.NewMockUserRepository(ctrl),
		identity:      mocks.NewMockIdentityProvider(ctrl),
		departments:   mocks.NewMockDepartmentRepository(ctrl),
		courses:       mocks.NewMockCourseRepository(ctrl),
		batches:       mocks.NewMockBatchRepository(ctrl),
		enrollments:   mocks.NewMockEnrollmentRepository(ctrl),
		attendance:    mocks.NewMockAttendanceRepository(ctrl),
		assignments:   mocks.NewMockAssignmentRepository(ctrl),
		submissions:   mocks.NewMockSubmissionRepository(ctrl),
		notifications: mocks.NewMockNotificationRepository(ctrl),
		storage:       mocks.NewMockFileStorage(ctrl),
		publisher:     mocks.NewMockNotificationPublisher(ctrl),
		tokens:        mocks.NewMockTokenManager(ctrl),
	}
}

func (d *deps) fanout() *service.FanOut {
	return service.NewFanOut(d.notifications, d.publisher)
}

// expectNotices expects n stored and published notifications and returns the stored inputs.
func (d *deps) expectNotices(n int) *[]*model.RepositoryCreateNotificationInput {
	stored := make([]*model.RepositoryCreateNotificationInput, 0, n)
	d.notifications.EXPECT().
		CreateNotification(gomock.Any(), gomock.Any()).
		Times(n).
		DoAndReturn(func(_ any, input *model.RepositoryCreateNotificationInput) (*model.Notification, error) {
			stored = append(stored, input)
			return &model.Notification{
				Id:            input.Id,
				Title:         input.Title,
				Message:       input.Message,
				RecipientRole: input.RecipientRole,
				RecipientId:   input.RecipientId,
			}, nil
		})
	d.publisher.EXPECT().PublishNotification(gomock.Any(), gomock.Any()).Times(n).Return(nil)
	return &stored
}

func (d *deps) expectUser(id uuid.UUID, role model.Role) {
	d.identity.EXPECT().GetUser(gomock.Any(), id).Return(&model.User{Id: id, Role: role, IsActive: true}, nil)
}

func ptr[T any](v T) *T {
	return &v
}
