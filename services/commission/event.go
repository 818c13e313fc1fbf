package commission

import (
	"fmt"
	"math"
	"strings"

	"quickfix/models"

	"github.com/spf13/cast"
)

// Delivery sources, used as a metrics label.
const (
	SourceHTTP     = "http"
	SourceQueue    = "queue"
	SourceListener = "listener"
)

// PaymentCreatedEvent is one creation of bookings/{BookingID}/payments/{PaymentID}.
// Data is the created document's field snapshot; nil means the event carried none.
type PaymentCreatedEvent struct {
	BookingID string
	PaymentID string
	Data      map[string]interface{}
	Source    string
}

// PayoutID is the ledger key the event maps to.
func (e PaymentCreatedEvent) PayoutID() string {
	return models.PayoutID(e.BookingID, e.PaymentID)
}

// DecodePayment turns a loosely typed payment snapshot into a Payment, applying
// defaults for absent fields. Currency, method and gatewayMeta also fall back
// when present but empty (nil, false, zero, NaN or ""). The amount is kept raw;
// see ParseAmount.
func DecodePayment(bookingID, paymentID string, data map[string]interface{}, defaultCurrency string) models.Payment {
	p := models.Payment{
		BookingID: bookingID,
		PaymentID: paymentID,
		Status:    cast.ToString(data["status"]),
		Amount:    data["amount"],
		Currency:  defaultCurrency,
		Method:    "unknown",
	}
	if v := data["currency"]; !isEmptyValue(v) {
		p.Currency = cast.ToString(v)
	}
	if v := data["method"]; !isEmptyValue(v) {
		p.Method = cast.ToString(v)
	}
	if v := data["gatewayMeta"]; !isEmptyValue(v) {
		p.GatewayMeta = v
	}
	return p
}

// isEmptyValue reports whether a snapshot field holds nothing worth keeping:
// nil, false, a zero or NaN number, or the empty string.
func isEmptyValue(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	case float64:
		return t == 0 || math.IsNaN(t)
	case float32:
		return t == 0 || math.IsNaN(float64(t))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return cast.ToInt64(t) == 0
	}
	return false
}

// ParseAmount coerces a stored amount to a number. An absent amount reads as
// zero; anything that is not numeric is ErrInvalidAmount.
func ParseAmount(raw interface{}) (float64, error) {
	if s, ok := raw.(string); ok {
		raw = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	return f, nil
}

// ParseDocumentPath extracts the booking and payment ids from a payment
// document path. Both the relative form and the fully qualified
// projects/{p}/databases/{d}/documents/... form are accepted.
func ParseDocumentPath(path string) (bookingID, paymentID string, err error) {
	path = strings.Trim(path, "/")
	if i := strings.Index(path, "/documents/"); i >= 0 {
		path = path[i+len("/documents/"):]
	}

	parts := strings.Split(path, "/")
	if len(parts) != 4 ||
		parts[0] != models.BookingsCollection ||
		parts[2] != models.PaymentsCollection ||
		parts[1] == "" || parts[3] == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidDocument, path)
	}
	return parts[1], parts[3], nil
}
