package triggers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"quickfix/services/commission"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockProcessor struct{ mock.Mock }

func (m *MockProcessor) HandlePaymentCreated(ctx context.Context, evt commission.PaymentCreatedEvent) (commission.Result, error) {
	args := m.Called(ctx, evt)
	return args.Get(0).(commission.Result), args.Error(1)
}

func TestNewPaymentCreatedTask(t *testing.T) {
	task, err := NewPaymentCreatedTask(PaymentCreatedPayload{
		BookingID: "b1",
		PaymentID: "p1",
		Data:      map[string]interface{}{"status": "success", "amount": 12.5},
	})
	require.NoError(t, err)
	assert.Equal(t, TypePaymentCreated, task.Type())

	var decoded PaymentCreatedPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, "b1", decoded.BookingID)
	assert.Equal(t, "p1", decoded.PaymentID)
	assert.Equal(t, 12.5, decoded.Data["amount"])
}

func TestHandlePaymentCreatedTask(t *testing.T) {
	payload := PaymentCreatedPayload{BookingID: "b1", PaymentID: "p1", Data: map[string]interface{}{"status": "success"}}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	matchEvent := mock.MatchedBy(func(evt commission.PaymentCreatedEvent) bool {
		return evt.BookingID == "b1" && evt.PaymentID == "p1" && evt.Source == commission.SourceQueue
	})

	t.Run("terminal outcome acks the task", func(t *testing.T) {
		proc := new(MockProcessor)
		proc.On("HandlePaymentCreated", mock.Anything, matchEvent).
			Return(commission.Result{Outcome: commission.OutcomeBookingMissing, PayoutID: "b1_p1"}, nil)

		err := HandlePaymentCreatedTask(proc, zap.NewNop())(context.Background(), asynq.NewTask(TypePaymentCreated, body))
		assert.NoError(t, err)
		proc.AssertExpectations(t)
	})

	t.Run("infrastructure error is retried", func(t *testing.T) {
		proc := new(MockProcessor)
		boom := errors.New("firestore unavailable")
		proc.On("HandlePaymentCreated", mock.Anything, matchEvent).Return(commission.Result{}, boom)

		err := HandlePaymentCreatedTask(proc, zap.NewNop())(context.Background(), asynq.NewTask(TypePaymentCreated, body))
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("bad payload skips retry", func(t *testing.T) {
		proc := new(MockProcessor)

		err := HandlePaymentCreatedTask(proc, zap.NewNop())(context.Background(), asynq.NewTask(TypePaymentCreated, []byte("{not json")))
		assert.ErrorIs(t, err, asynq.SkipRetry)
		proc.AssertNotCalled(t, "HandlePaymentCreated", mock.Anything, mock.Anything)
	})
}

func TestEventFromDocument(t *testing.T) {
	data := map[string]interface{}{"status": "success", "amount": int64(10)}

	evt, err := eventFromDocument("projects/quickfix/databases/(default)/documents/bookings/b7/payments/p9", data)
	require.NoError(t, err)
	assert.Equal(t, "b7", evt.BookingID)
	assert.Equal(t, "p9", evt.PaymentID)
	assert.Equal(t, commission.SourceListener, evt.Source)
	assert.Equal(t, data, evt.Data)

	_, err = eventFromDocument("projects/quickfix/databases/(default)/documents/users/u1/payments/p9", data)
	assert.ErrorIs(t, err, commission.ErrInvalidDocument)
}
