package payoutRepo

import (
	"context"
	"errors"
	"fmt"

	"quickfix/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoPayoutRepo struct {
	coll *mongo.Collection
}

// NewMongoPayoutRepo returns a PayoutRepository backed by MongoDB. The payout
// key is stored as _id so the primary index enforces write-once.
func NewMongoPayoutRepo(db *mongo.Database) PayoutRepository {
	return &mongoPayoutRepo{coll: db.Collection(models.PayoutsCollection)}
}

func (r *mongoPayoutRepo) Exists(ctx context.Context, id string) (bool, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})
	err := r.coll.FindOne(ctx, bson.M{"_id": id}, opts).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("payout lookup %s: %w", id, err)
	}
	return true, nil
}

func (r *mongoPayoutRepo) Create(ctx context.Context, payout models.Payout) error {
	if payout.ID == "" {
		return errors.New("payout id is required")
	}
	_, err := r.coll.InsertOne(ctx, payout)
	if mongo.IsDuplicateKeyError(err) {
		return ErrPayoutExists
	}
	if err != nil {
		return fmt.Errorf("payout create %s: %w", payout.ID, err)
	}
	return nil
}
