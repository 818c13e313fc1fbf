package models

// PaymentStatusSuccess is the only payment status that produces a payout.
const PaymentStatusSuccess = "success"

// Payment is a payment record nested under a booking at
// bookings/{bookingId}/payments/{paymentId}. Amount stays untyped because
// payment capture writes it as whatever the gateway handed back.
type Payment struct {
	BookingID   string      `json:"bookingId"`
	PaymentID   string      `json:"paymentId"`
	Status      string      `json:"status"`
	Amount      interface{} `json:"amount"`
	Currency    string      `json:"currency"`
	Method      string      `json:"method"`
	GatewayMeta interface{} `json:"gatewayMeta,omitempty"`
}
