package commission

import (
	"math"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSplit_Examples(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		total     string
		developer string
		provider  string
	}{
		{"round thousand", 1000.00, "1000.00", "100.00", "900.00"},
		{"commission rounds up", 99.99, "99.99", "10.00", "89.99"},
		{"amount rounded first", 10.005, "10.01", "1.00", "9.01"},
		{"single cent", 0.01, "0.01", "0.00", "0.01"},
		{"sub cent commission", 0.05, "0.05", "0.01", "0.04"},
		{"large amount", 123456.78, "123456.78", "12345.68", "111111.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ComputeSplit(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.total, s.Amount.StringFixed(2))
			assert.Equal(t, tt.developer, s.DeveloperCommission.StringFixed(2))
			assert.Equal(t, tt.provider, s.ProviderAmount.StringFixed(2))
		})
	}
}

func TestComputeSplit_InvalidAmounts(t *testing.T) {
	for _, amount := range []float64{0, -5, -0.01, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := ComputeSplit(amount)
		assert.ErrorIs(t, err, ErrInvalidAmount, "amount %v", amount)
	}
}

func TestComputeSplit_SharesSumToAmount(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rate := decimal.NewFromFloat(CommissionRate)

	for i := 0; i < 10000; i++ {
		amount := rng.Float64() * 100000
		if amount == 0 {
			continue
		}
		s, err := ComputeSplit(amount)
		require.NoError(t, err)

		assert.True(t, s.DeveloperCommission.Add(s.ProviderAmount).Equal(s.Amount),
			"split of %v does not sum: %s + %s != %s", amount, s.DeveloperCommission, s.ProviderAmount, s.Amount)
		assert.True(t, s.DeveloperCommission.Equal(s.Amount.Mul(rate).Round(2)))
		assert.LessOrEqual(t, s.Amount.Exponent(), int32(0))
		assert.GreaterOrEqual(t, s.Amount.Exponent(), int32(-2))
	}
}
