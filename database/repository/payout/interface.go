package payoutRepo

import (
	"context"
	"errors"

	"quickfix/models"
)

// ErrPayoutExists is returned by Create when a payout already sits at the key.
var ErrPayoutExists = errors.New("payout already exists")

// PayoutRepository is the write-once payout ledger.
type PayoutRepository interface {
	// Exists reports whether a payout is stored under id.
	Exists(ctx context.Context, id string) (bool, error)
	// Create stores payout under payout.ID and never overwrites.
	Create(ctx context.Context, payout models.Payout) error
}
