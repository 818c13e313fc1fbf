package models

import "time"

const (
	BookingStatusUnpaid = "unpaid"
	BookingStatusPaid   = "paid"
)

// Booking is the subset of a booking document this service reads and writes.
// Everything else on the document is owned by the booking-management side.
type Booking struct {
	ID                 string     `firestore:"-" bson:"_id" json:"id"`
	ProviderID         string     `firestore:"providerId" bson:"providerId" json:"providerId"`
	CustomerID         string     `firestore:"customerId" bson:"customerId" json:"customerId"`
	Status             string     `firestore:"status" bson:"status" json:"status"`
	PaymentConfirmed   bool       `firestore:"paymentConfirmed" bson:"paymentConfirmed" json:"paymentConfirmed"`
	PaymentConfirmedAt *time.Time `firestore:"paymentConfirmedAt,omitempty" bson:"paymentConfirmedAt,omitempty" json:"paymentConfirmedAt,omitempty"`
	RealTimePayment    bool       `firestore:"realTimePayment" bson:"realTimePayment" json:"realTimePayment"`
	UpdatedAt          *time.Time `firestore:"updatedAt,omitempty" bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// IsPaid reports whether the booking already reached the paid state.
func (b *Booking) IsPaid() bool {
	return b.Status == BookingStatusPaid
}
