package models

import "time"

// Payout is the write-once ledger entry produced for one successful payment.
// It is never served to end-user read paths.
type Payout struct {
	ID                  string      `firestore:"-" bson:"_id" json:"id"`
	BookingID           string      `firestore:"bookingId" bson:"bookingId" json:"bookingId"`
	PaymentID           string      `firestore:"paymentId" bson:"paymentId" json:"paymentId"`
	ProviderID          string      `firestore:"providerId" bson:"providerId" json:"providerId"`
	CustomerID          string      `firestore:"customerId" bson:"customerId" json:"customerId"`
	Amount              float64     `firestore:"amount" bson:"amount" json:"amount"`
	Currency            string      `firestore:"currency" bson:"currency" json:"currency"`
	Method              string      `firestore:"method" bson:"method" json:"method"`
	CommissionRate      float64     `firestore:"commissionRate" bson:"commissionRate" json:"commissionRate"`
	DeveloperCommission float64     `firestore:"developerCommission" bson:"developerCommission" json:"developerCommission"`
	ProviderAmount      float64     `firestore:"providerAmount" bson:"providerAmount" json:"providerAmount"`
	DeveloperAccountID  string      `firestore:"developerAccountId" bson:"developerAccountId" json:"developerAccountId"`
	CreatedAt           time.Time   `firestore:"createdAt" bson:"createdAt" json:"createdAt"`
	GatewayMeta         interface{} `firestore:"gatewayMeta" bson:"gatewayMeta" json:"gatewayMeta"`
}

// PayoutID builds the deterministic ledger key for a payment.
func PayoutID(bookingID, paymentID string) string {
	return bookingID + "_" + paymentID
}
