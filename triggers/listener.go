package triggers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quickfix/models"
	"quickfix/services/commission"

	"cloud.google.com/go/firestore"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Enqueuer hands an event to the task queue. *asynq.Client satisfies it.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

const (
	defaultListenerAttempts = 3
	defaultListenerBackoff  = 500 * time.Millisecond
)

// FirestoreListener watches the payments collection group and feeds every
// newly added document to the processor. The first snapshot replays every
// existing payment; the idempotency guard absorbs those.
//
// An infrastructure failure is retried MaxAttempts times with linear backoff.
// If it still fails and Fallback is set, the event is queued so the asynq
// worker keeps retrying it.
type FirestoreListener struct {
	Client      *firestore.Client
	Processor   commission.CommissionProcessor
	Logger      *zap.Logger
	Fallback    Enqueuer
	MaxAttempts int
	Backoff     time.Duration
}

// Run blocks until ctx is cancelled or the snapshot stream fails.
func (l *FirestoreListener) Run(ctx context.Context) error {
	it := l.Client.CollectionGroup(models.PaymentsCollection).Snapshots(ctx)
	defer it.Stop()

	l.Logger.Info("firestore payment listener started")
	for {
		snap, err := it.Next()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, iterator.Done) || status.Code(err) == codes.Canceled {
				l.Logger.Info("firestore payment listener stopped")
				return nil
			}
			return err
		}

		for _, change := range snap.Changes {
			if change.Kind != firestore.DocumentAdded {
				continue
			}
			l.handle(ctx, change.Doc)
		}
	}
}

func (l *FirestoreListener) handle(ctx context.Context, doc *firestore.DocumentSnapshot) {
	evt, err := eventFromDocument(doc.Ref.Path, doc.Data())
	if err != nil {
		// Collection group also matches payments subcollections under other parents.
		l.Logger.Debug("ignoring payment document", zap.String("path", doc.Ref.Path), zap.Error(err))
		return
	}
	if err := l.process(ctx, evt); err != nil {
		l.Logger.Error("listener dropped payment event", zap.String("path", doc.Ref.Path), zap.Error(err))
	}
}

// process runs one event through the processor, retrying infrastructure
// errors and then falling back to the queue. A non-nil error means the event
// was not handled anywhere.
func (l *FirestoreListener) process(ctx context.Context, evt commission.PaymentCreatedEvent) error {
	attempts := l.MaxAttempts
	if attempts <= 0 {
		attempts = defaultListenerAttempts
	}
	backoff := l.Backoff
	if backoff <= 0 {
		backoff = defaultListenerBackoff
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if _, err = l.Processor.HandlePaymentCreated(ctx, evt); err == nil {
			return nil
		}
		l.Logger.Warn("listener failed to process payment",
			zap.String("payoutId", evt.PayoutID()),
			zap.Int("attempt", attempt), zap.Int("maxAttempts", attempts), zap.Error(err))
		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * backoff):
		}
	}

	if l.Fallback == nil {
		return err
	}
	return l.enqueue(ctx, evt)
}

func (l *FirestoreListener) enqueue(ctx context.Context, evt commission.PaymentCreatedEvent) error {
	task, err := NewPaymentCreatedTask(PaymentCreatedPayload{
		BookingID: evt.BookingID,
		PaymentID: evt.PaymentID,
		Data:      evt.Data,
	})
	if err != nil {
		return fmt.Errorf("build payment task: %w", err)
	}

	if _, err := l.Fallback.EnqueueContext(ctx, task); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) || errors.Is(err, asynq.ErrDuplicateTask) {
			return nil
		}
		return fmt.Errorf("enqueue payment task: %w", err)
	}
	l.Logger.Info("listener handed payment to queue", zap.String("payoutId", evt.PayoutID()))
	return nil
}

func eventFromDocument(path string, data map[string]interface{}) (commission.PaymentCreatedEvent, error) {
	bookingID, paymentID, err := commission.ParseDocumentPath(path)
	if err != nil {
		return commission.PaymentCreatedEvent{}, err
	}
	return commission.PaymentCreatedEvent{
		BookingID: bookingID,
		PaymentID: paymentID,
		Data:      data,
		Source:    commission.SourceListener,
	}, nil
}
