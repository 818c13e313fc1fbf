package payoutRepo

import (
	"context"
	"errors"
	"fmt"

	"quickfix/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type firestorePayoutRepo struct {
	coll *firestore.CollectionRef
}

// NewFirestorePayoutRepo returns a PayoutRepository over the payouts collection.
func NewFirestorePayoutRepo(client *firestore.Client) PayoutRepository {
	return &firestorePayoutRepo{coll: client.Collection(models.PayoutsCollection)}
}

func (r *firestorePayoutRepo) Exists(ctx context.Context, id string) (bool, error) {
	snap, err := r.coll.Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("payout lookup %s: %w", id, err)
	}
	return snap.Exists(), nil
}

// Create uses a create-only write so a concurrent duplicate fails instead of merging.
func (r *firestorePayoutRepo) Create(ctx context.Context, payout models.Payout) error {
	if payout.ID == "" {
		return errors.New("payout id is required")
	}
	_, err := r.coll.Doc(payout.ID).Create(ctx, payout)
	if status.Code(err) == codes.AlreadyExists {
		return ErrPayoutExists
	}
	if err != nil {
		return fmt.Errorf("payout create %s: %w", payout.ID, err)
	}
	return nil
}
