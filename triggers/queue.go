package triggers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quickfix/config"
	"quickfix/services/commission"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypePaymentCreated = "payment:created"

// PaymentCreatedPayload is the queued form of a payment-created event.
type PaymentCreatedPayload struct {
	BookingID string                 `json:"bookingId"`
	PaymentID string                 `json:"paymentId"`
	Data      map[string]interface{} `json:"data"`
}

// NewPaymentCreatedTask builds a task keyed by the payout id, so asynq drops a
// second enqueue of the same payment while the first is still retained.
func NewPaymentCreatedTask(p PaymentCreatedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePaymentCreated, body,
		asynq.TaskID(commission.PaymentCreatedEvent{BookingID: p.BookingID, PaymentID: p.PaymentID}.PayoutID()),
		asynq.MaxRetry(10),
		asynq.Retention(24*time.Hour),
	), nil
}

// HandlePaymentCreatedTask returns only infrastructure errors, leaving retries
// to asynq. Undecodable payloads are never retried.
func HandlePaymentCreatedTask(proc commission.CommissionProcessor, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p PaymentCreatedPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Warn("invalid payment task payload", zap.Error(err))
			return fmt.Errorf("decode %s payload: %v: %w", TypePaymentCreated, err, asynq.SkipRetry)
		}

		res, err := proc.HandlePaymentCreated(ctx, commission.PaymentCreatedEvent{
			BookingID: p.BookingID,
			PaymentID: p.PaymentID,
			Data:      p.Data,
			Source:    commission.SourceQueue,
		})
		if err != nil {
			return err
		}
		logger.Debug("payment task done", zap.String("payoutId", res.PayoutID), zap.String("outcome", string(res.Outcome)))
		return nil
	}
}

func queueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewQueueClient returns a producer for payment-created tasks.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(queueRedisOpt())
}

// StartQueueWorker runs the payment task worker in the background and
// returns the server so the caller can shut it down.
func StartQueueWorker(proc commission.CommissionProcessor, logger *zap.Logger) *asynq.Server {
	concurrency := config.AppConfig.QueueConcurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	srv := asynq.NewServer(
		queueRedisOpt(),
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePaymentCreated, HandlePaymentCreatedTask(proc, logger))

	go func() {
		logger.Info("starting payment queue worker", zap.Int("concurrency", concurrency))
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("payment queue worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Fatal("payment queue worker: max retry attempts reached")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()

	return srv
}
