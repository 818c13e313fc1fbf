package commission

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "quickfix/database/repository/booking"
	payoutRepo "quickfix/database/repository/payout"
	"quickfix/metrics"
	"quickfix/models"

	"go.uber.org/zap"
)

// Outcome is the terminal result of one payment event.
type Outcome string

const (
	OutcomeCreated        Outcome = "created"
	OutcomeNoData         Outcome = "no_data"
	OutcomeMalformed      Outcome = "malformed"
	OutcomeNotSuccess     Outcome = "not_success"
	OutcomeDuplicate      Outcome = "duplicate"
	OutcomeInvalidAmount  Outcome = "invalid_amount"
	OutcomeBookingMissing Outcome = "booking_missing"
)

// Result describes what one invocation did.
type Result struct {
	Outcome        Outcome
	PayoutID       string
	Payout         *models.Payout
	BookingUpdated bool
}

// ProcessedCache is an optional fast path for the payout existence check.
type ProcessedCache interface {
	Seen(ctx context.Context, payoutID string) (bool, error)
	Mark(ctx context.Context, payoutID string) error
}

// CommissionProcessor reacts to payment creation.
type CommissionProcessor interface {
	// HandlePaymentCreated returns an error only for infrastructure failures;
	// every other anomaly is a logged, terminal Outcome.
	HandlePaymentCreated(ctx context.Context, evt PaymentCreatedEvent) (Result, error)
}

type DefaultCommissionProcessor struct {
	Payouts            payoutRepo.PayoutRepository
	Bookings           bookingRepo.BookingRepository
	Cache              ProcessedCache
	Logger             *zap.Logger
	DeveloperAccountID string
	DefaultCurrency    string
	Now                func() time.Time
}

func NewCommissionProcessor(
	payouts payoutRepo.PayoutRepository,
	bookings bookingRepo.BookingRepository,
	cache ProcessedCache,
	logger *zap.Logger,
	developerAccountID, defaultCurrency string,
) *DefaultCommissionProcessor {
	return &DefaultCommissionProcessor{
		Payouts:            payouts,
		Bookings:           bookings,
		Cache:              cache,
		Logger:             logger,
		DeveloperAccountID: developerAccountID,
		DefaultCurrency:    defaultCurrency,
		Now:                time.Now,
	}
}

func (p *DefaultCommissionProcessor) HandlePaymentCreated(ctx context.Context, evt PaymentCreatedEvent) (Result, error) {
	start := time.Now()
	res, err := p.handle(ctx, evt)
	metrics.ProcessingDuration.WithLabelValues(evt.Source).Observe(time.Since(start).Seconds())
	if err != nil {
		p.Logger.Error("payment event failed",
			zap.String("payoutId", evt.PayoutID()),
			zap.String("source", evt.Source),
			zap.Error(err))
		return res, err
	}
	metrics.PaymentEventsTotal.WithLabelValues(string(res.Outcome), evt.Source).Inc()
	return res, nil
}

func (p *DefaultCommissionProcessor) handle(ctx context.Context, evt PaymentCreatedEvent) (Result, error) {
	payoutID := evt.PayoutID()
	res := Result{PayoutID: payoutID}
	log := p.Logger.With(zap.String("payoutId", payoutID), zap.String("source", evt.Source))

	if evt.Data == nil {
		res.Outcome = OutcomeNoData
		return res, nil
	}
	if evt.BookingID == "" || evt.PaymentID == "" {
		log.Warn("payment event without booking or payment id")
		res.Outcome = OutcomeMalformed
		return res, nil
	}

	payment := DecodePayment(evt.BookingID, evt.PaymentID, evt.Data, p.defaultCurrency())
	if payment.Status != models.PaymentStatusSuccess {
		log.Debug("skipping non-success payment", zap.String("status", payment.Status))
		res.Outcome = OutcomeNotSuccess
		return res, nil
	}

	exists, err := p.payoutExists(ctx, payoutID)
	if err != nil {
		return res, err
	}
	if exists {
		log.Info("payout already recorded")
		res.Outcome = OutcomeDuplicate
		return res, nil
	}

	split, err := p.split(payment.Amount)
	if err != nil {
		log.Warn("invalid payment amount", zap.Any("amount", payment.Amount), zap.Error(err))
		res.Outcome = OutcomeInvalidAmount
		return res, nil
	}

	booking, err := p.Bookings.GetByID(ctx, evt.BookingID)
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		log.Error("booking not found for payout", zap.String("bookingId", evt.BookingID))
		res.Outcome = OutcomeBookingMissing
		return res, nil
	}
	if err != nil {
		return res, err
	}

	payout := models.Payout{
		ID:                  payoutID,
		BookingID:           evt.BookingID,
		PaymentID:           evt.PaymentID,
		ProviderID:          booking.ProviderID,
		CustomerID:          booking.CustomerID,
		Amount:              split.Amount.InexactFloat64(),
		Currency:            payment.Currency,
		Method:              payment.Method,
		CommissionRate:      CommissionRate,
		DeveloperCommission: split.DeveloperCommission.InexactFloat64(),
		ProviderAmount:      split.ProviderAmount.InexactFloat64(),
		DeveloperAccountID:  p.DeveloperAccountID,
		CreatedAt:           p.Now().UTC(),
		GatewayMeta:         payment.GatewayMeta,
	}

	// The create-only write is the linearization point for duplicate deliveries.
	if err := p.Payouts.Create(ctx, payout); err != nil {
		if errors.Is(err, payoutRepo.ErrPayoutExists) {
			log.Info("payout written by a concurrent delivery")
			p.markProcessed(ctx, log, payoutID)
			res.Outcome = OutcomeDuplicate
			return res, nil
		}
		return res, err
	}
	p.markProcessed(ctx, log, payoutID)

	metrics.PayoutsCreatedTotal.WithLabelValues(payout.Currency).Inc()
	metrics.CommissionAmountTotal.WithLabelValues(payout.Currency).Add(payout.DeveloperCommission)
	log.Info("payout recorded",
		zap.String("bookingId", payout.BookingID),
		zap.String("paymentId", payout.PaymentID),
		zap.String("amount", split.Amount.StringFixed(amountPlaces)),
		zap.String("developerCommission", split.DeveloperCommission.StringFixed(amountPlaces)),
		zap.String("providerAmount", split.ProviderAmount.StringFixed(amountPlaces)),
		zap.String("currency", payout.Currency))

	res.Outcome = OutcomeCreated
	res.Payout = &payout

	if booking.IsPaid() {
		return res, nil
	}
	// Best effort: the payout is already authoritative and is never rolled back.
	if err := p.Bookings.MarkPaid(ctx, evt.BookingID); err != nil {
		metrics.BookingUpdateFailuresTotal.Inc()
		log.Warn("booking status update skipped/failed", zap.String("bookingId", evt.BookingID), zap.Error(err))
		return res, nil
	}
	res.BookingUpdated = true
	return res, nil
}

func (p *DefaultCommissionProcessor) split(raw interface{}) (Split, error) {
	amount, err := ParseAmount(raw)
	if err != nil {
		return Split{}, err
	}
	return ComputeSplit(amount)
}

// payoutExists consults the cache first. Cache failures fall through to the store.
func (p *DefaultCommissionProcessor) payoutExists(ctx context.Context, payoutID string) (bool, error) {
	if p.Cache != nil {
		seen, err := p.Cache.Seen(ctx, payoutID)
		if err != nil {
			p.Logger.Warn("processed cache lookup failed", zap.String("payoutId", payoutID), zap.Error(err))
		} else if seen {
			return true, nil
		}
	}

	exists, err := p.Payouts.Exists(ctx, payoutID)
	if err != nil {
		return false, fmt.Errorf("check payout %s: %w", payoutID, err)
	}
	return exists, nil
}

func (p *DefaultCommissionProcessor) markProcessed(ctx context.Context, log *zap.Logger, payoutID string) {
	if p.Cache == nil {
		return
	}
	if err := p.Cache.Mark(ctx, payoutID); err != nil {
		log.Warn("processed cache write failed", zap.Error(err))
	}
}

func (p *DefaultCommissionProcessor) defaultCurrency() string {
	if p.DefaultCurrency == "" {
		return "INR"
	}
	return p.DefaultCurrency
}
