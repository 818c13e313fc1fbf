package bookingRepo

import (
	"context"
	"errors"

	"quickfix/models"
)

// ErrBookingNotFound is returned when the referenced booking does not exist.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository covers the narrow slice of booking state this service touches.
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// MarkPaid moves the booking to paid and stamps confirmation fields with
	// the store's clock. The booking must exist.
	MarkPaid(ctx context.Context, id string) error
}
