package events

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub/internal/model"
	"schoolhub/pkg/utils"
)

type fakeWriter struct {
	errs   []error
	calls  int
	msgs   []kafka.Message
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.calls++
	if len(w.errs) > 0 {
		err := w.errs[0]
		w.errs = w.errs[1:]
		if err != nil {
			return err
		}
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func newTestPublisher(w *fakeWriter) *Publisher {
	p := NewPublisherWithWriter(w)
	p.backoff = utils.Backoff{MaxRetries: 3, BaseDelay: time.Millisecond}
	return p
}

func TestPublishNotification(t *testing.T) {
	w := &fakeWriter{}
	p := newTestPublisher(w)
	studentId := uuid.New()
	n := &model.Notification{Id: uuid.New(), Title: "Attendance Marked", RecipientRole: model.RoleStudent, RecipientId: &studentId}

	require.NoError(t, p.PublishNotification(context.Background(), n))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, []byte("Student"), w.msgs[0].Key)

	event, err := DecodeNotificationEvent(w.msgs[0].Value)
	require.NoError(t, err)
	assert.Equal(t, n.Id, event.Id)
	assert.Equal(t, &studentId, event.RecipientId)
	assert.Equal(t, "Attendance Marked", event.Title)
}

func TestPublishNotification_RetriesTemporaryErrors(t *testing.T) {
	w := &fakeWriter{errs: []error{kafka.LeaderNotAvailable, nil}}
	p := newTestPublisher(w)

	require.NoError(t, p.PublishNotification(context.Background(), &model.Notification{Id: uuid.New()}))
	assert.Equal(t, 2, w.calls)
}

func TestPublishNotification_PermanentError(t *testing.T) {
	w := &fakeWriter{errs: []error{assert.AnError}}
	p := newTestPublisher(w)

	err := p.PublishNotification(context.Background(), &model.Notification{Id: uuid.New()})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, w.calls)
}

func TestDecodeNotificationEvent_Invalid(t *testing.T) {
	_, err := DecodeNotificationEvent([]byte("{"))
	assert.Error(t, err)

	_, err = DecodeNotificationEvent([]byte(`{"title":"x"}`))
	assert.Error(t, err)
}

func TestClose(t *testing.T) {
	w := &fakeWriter{}
	require.NoError(t, NewPublisherWithWriter(w).Close())
	assert.True(t, w.closed)
}
