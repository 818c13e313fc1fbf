package handlers

import (
	"net/http"

	"quickfix/services/commission"
	"quickfix/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentEventRequest is the push body for a payment-created event. The
// document path, when given, wins over the explicit ids.
type PaymentEventRequest struct {
	BookingID string                 `json:"bookingId"`
	PaymentID string                 `json:"paymentId"`
	Document  string                 `json:"document"`
	Data      map[string]interface{} `json:"data"`
}

type PaymentEventResponse struct {
	Outcome  string `json:"outcome"`
	PayoutID string `json:"payoutId"`
}

type EventHandler struct {
	processor commission.CommissionProcessor
}

func NewEventHandler(processor commission.CommissionProcessor) *EventHandler {
	return &EventHandler{processor: processor}
}

// PaymentCreated answers 200 for every terminal outcome and 500 only when the
// processor hit an infrastructure failure, so the pusher redelivers just those.
func (h *EventHandler) PaymentCreated(c *gin.Context) {
	logger := getLogger(c)

	var req PaymentEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid event body", err.Error())
		return
	}

	bookingID, paymentID := req.BookingID, req.PaymentID
	if req.Document != "" {
		var err error
		bookingID, paymentID, err = commission.ParseDocumentPath(req.Document)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid document path", err.Error())
			return
		}
	}
	if bookingID == "" || paymentID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid event body", "bookingId and paymentId are required")
		return
	}

	res, err := h.processor.HandlePaymentCreated(c.Request.Context(), commission.PaymentCreatedEvent{
		BookingID: bookingID,
		PaymentID: paymentID,
		Data:      req.Data,
		Source:    commission.SourceHTTP,
	})
	if err != nil {
		logger.Error("payment event processing failed", zap.String("bookingId", bookingID), zap.String("paymentId", paymentID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Event processing failed", "retry later")
		return
	}

	c.JSON(http.StatusOK, PaymentEventResponse{Outcome: string(res.Outcome), PayoutID: res.PayoutID})
}
