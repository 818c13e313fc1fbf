package bookingRepo

import (
	"context"
	"fmt"

	"quickfix/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type firestoreBookingRepo struct {
	coll *firestore.CollectionRef
}

// NewFirestoreBookingRepo returns a BookingRepository over the bookings collection.
func NewFirestoreBookingRepo(client *firestore.Client) BookingRepository {
	return &firestoreBookingRepo{coll: client.Collection(models.BookingsCollection)}
}

func (r *firestoreBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	snap, err := r.coll.Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("booking lookup %s: %w", id, err)
	}
	if !snap.Exists() {
		return nil, ErrBookingNotFound
	}
	return bookingFromFields(id, snap.Data()), nil
}

// MarkPaid relies on Update's implicit exists precondition, so a booking
// deleted in the meantime surfaces as ErrBookingNotFound.
func (r *firestoreBookingRepo) MarkPaid(ctx context.Context, id string) error {
	_, err := r.coll.Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: models.BookingStatusPaid},
		{Path: "paymentConfirmed", Value: true},
		{Path: "paymentConfirmedAt", Value: firestore.ServerTimestamp},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
		{Path: "realTimePayment", Value: true},
	})
	if status.Code(err) == codes.NotFound {
		return ErrBookingNotFound
	}
	if err != nil {
		return fmt.Errorf("booking update %s: %w", id, err)
	}
	return nil
}
