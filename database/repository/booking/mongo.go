package bookingRepo

import (
	"context"
	"errors"
	"fmt"

	"quickfix/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &mongoBookingRepo{coll: db.Collection(models.BookingsCollection)}
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var doc bson.M
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("booking lookup %s: %w", id, err)
	}
	return bookingFromFields(id, doc), nil
}

func (r *mongoBookingRepo) MarkPaid(ctx context.Context, id string) error {
	update := bson.M{
		"$set": bson.M{
			"status":           models.BookingStatusPaid,
			"paymentConfirmed": true,
			"realTimePayment":  true,
		},
		"$currentDate": bson.M{
			"paymentConfirmedAt": true,
			"updatedAt":          true,
		},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("booking update %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}
