package commission

import "fmt"

// EventError marks a payment event that can never be processed, no matter
// how often it is redelivered.
type EventError struct {
	Code    string
	Message string
}

func (e *EventError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewEventError(code, msg string) error {
	return &EventError{
		Code:    code,
		Message: msg,
	}
}

var (
	ErrInvalidAmount   = NewEventError("invalidAmount", "payment amount must be a finite number greater than zero")
	ErrInvalidDocument = NewEventError("invalidDocument", "document path is not bookings/{bookingId}/payments/{paymentId}")
)
