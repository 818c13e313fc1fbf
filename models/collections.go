package models

// Document store collection names.
const (
	BookingsCollection = "bookings"
	PaymentsCollection = "payments"
	PayoutsCollection  = "payouts"
)
