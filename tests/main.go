// Manual harness: enqueues one payment-created task against the configured
// Redis queue so a running worker can be exercised end to end.
package main

import (
	"flag"
	"log"

	"quickfix/config"
	"quickfix/triggers"
)

func main() {
	bookingID := flag.String("booking", "", "booking id")
	paymentID := flag.String("payment", "", "payment id")
	amount := flag.Float64("amount", 1000, "payment amount")
	status := flag.String("status", "success", "payment status")
	currency := flag.String("currency", "INR", "payment currency")
	flag.Parse()

	if *bookingID == "" || *paymentID == "" {
		log.Fatal("both -booking and -payment are required")
	}

	config.LoadConfig()

	task, err := triggers.NewPaymentCreatedTask(triggers.PaymentCreatedPayload{
		BookingID: *bookingID,
		PaymentID: *paymentID,
		Data: map[string]interface{}{
			"status":   *status,
			"amount":   *amount,
			"currency": *currency,
			"method":   "manual",
		},
	})
	if err != nil {
		log.Fatalf("build task: %v", err)
	}

	client := triggers.NewQueueClient()
	defer client.Close()

	info, err := client.Enqueue(task)
	if err != nil {
		log.Fatalf("enqueue: %v", err)
	}
	log.Printf("enqueued %s as %s on queue %s", info.Type, info.ID, info.Queue)
}
