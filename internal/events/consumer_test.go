package events

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"schoolhub/internal/model"
	"schoolhub/pkg/logging"
)

type fakeReader struct {
	msgs      []kafka.Message
	fetchErr  error
	committed []kafka.Message
	cancel    context.CancelFunc
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if f.fetchErr != nil {
		err := f.fetchErr
		f.fetchErr = nil
		return kafka.Message{}, err
	}
	if len(f.msgs) == 0 {
		f.cancel()
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	msg := f.msgs[0]
	f.msgs = f.msgs[1:]
	return msg, nil
}

func (f *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	f.committed = append(f.committed, msgs...)
	return nil
}

func (f *fakeReader) Close() error {
	return nil
}

func eventMessage(t *testing.T, offset int64, title string) kafka.Message {
	t.Helper()
	n := &model.Notification{Id: uuid.New(), Title: title, RecipientRole: model.RoleStudent}
	msg, err := encodeEvent(NewNotificationEvent(n))
	require.NoError(t, err)
	msg.Offset = offset
	return msg
}

func TestConsume(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = logging.ContextWithLogger(ctx, logging.New(zap.NewNop()))

	reader := &fakeReader{
		fetchErr: errors.New("leader not available"),
		msgs: []kafka.Message{
			eventMessage(t, 1, "ok"),
			{Offset: 2, Value: []byte("{")},
			eventMessage(t, 3, "fail"),
		},
		cancel: cancel,
	}

	var delivered []string
	err := Consume(ctx, reader, func(_ context.Context, event *NotificationEvent) error {
		if event.Title == "fail" {
			return errors.New("smtp down")
		}
		delivered = append(delivered, event.Title)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, delivered)

	var offsets []int64
	for _, msg := range reader.committed {
		offsets = append(offsets, msg.Offset)
	}
	assert.Equal(t, []int64{1, 2}, offsets, "undecodable messages are committed, failed deliveries are not")
}
