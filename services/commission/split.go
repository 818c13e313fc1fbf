package commission

import (
	"math"

	"github.com/shopspring/decimal"
)

// CommissionRate is the share of every payment retained by the developer account.
const CommissionRate = 0.10

// amountPlaces is the currency minor-unit precision used for every split.
const amountPlaces = 2

var commissionRate = decimal.NewFromFloat(CommissionRate)

// Split is the commission breakdown of one payment.
type Split struct {
	Amount              decimal.Decimal
	DeveloperCommission decimal.Decimal
	ProviderAmount      decimal.Decimal
}

// ComputeSplit rounds the amount, takes the rounded commission from it and
// derives the provider share by subtraction, so both shares always add back
// up to the rounded amount.
func ComputeSplit(amount float64) (Split, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return Split{}, ErrInvalidAmount
	}

	total := decimal.NewFromFloat(amount).Round(amountPlaces)
	developer := total.Mul(commissionRate).Round(amountPlaces)
	provider := total.Sub(developer).Round(amountPlaces)

	return Split{
		Amount:              total,
		DeveloperCommission: developer,
		ProviderAmount:      provider,
	}, nil
}
