package bookingRepo

import (
	"quickfix/models"

	"github.com/spf13/cast"
)

// bookingFromFields reads the booking attributes leniently: the booking
// document is written by another subsystem and field types are not ours to
// trust.
func bookingFromFields(id string, fields map[string]interface{}) *models.Booking {
	b := &models.Booking{
		ID:               id,
		ProviderID:       cast.ToString(fields["providerId"]),
		CustomerID:       cast.ToString(fields["customerId"]),
		Status:           cast.ToString(fields["status"]),
		PaymentConfirmed: cast.ToBool(fields["paymentConfirmed"]),
		RealTimePayment:  cast.ToBool(fields["realTimePayment"]),
	}
	if b.Status == "" {
		b.Status = models.BookingStatusUnpaid
	}
	return b
}
