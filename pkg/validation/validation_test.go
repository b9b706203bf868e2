package validation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		valid bool
	}{
		{"zero is valid", 0, true},
		{"hundred is valid", 100, true},
		{"middle is valid", 42.5, true},
		{"negative is invalid", -0.1, false},
		{"above hundred is invalid", 100.1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Percentage(tt.value, "Progress")
			assert.Equal(t, tt.valid, result.Valid)
			if !tt.valid {
				assert.Contains(t, result.Error, "Progress")
			}
		})
	}
}

func TestInterestRate(t *testing.T) {
	assert.True(t, InterestRate(0).Valid)
	assert.True(t, InterestRate(8.5).Valid)
	assert.True(t, InterestRate(50).Valid)
	assert.False(t, InterestRate(-1).Valid)
	assert.False(t, InterestRate(50.5).Valid)
}

func TestTenure(t *testing.T) {
	assert.False(t, Tenure(0).Valid)
	assert.True(t, Tenure(1).Valid)
	assert.True(t, Tenure(600).Valid)
	assert.False(t, Tenure(601).Valid)
	assert.False(t, Tenure(-12).Valid)
}

func TestAffordable(t *testing.T) {
	t.Run("within 40 percent passes", func(t *testing.T) {
		assert.True(t, Affordable(2000, 5000).Valid)
	})

	t.Run("above 40 percent fails with ratio in message", func(t *testing.T) {
		result := Affordable(2500, 5000)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "50.0%")
	})

	t.Run("zero income does not panic", func(t *testing.T) {
		assert.True(t, Affordable(500, 0).Valid)
	})
}

func TestDebtToIncome(t *testing.T) {
	// 30000 debt against 5000/month = 50% of annual income
	assert.True(t, DebtToIncome(30000, 5000).Valid)

	result := DebtToIncome(40000, 5000)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Error, "66.7%")

	assert.True(t, DebtToIncome(10000, 0).Valid)
}

func TestSavingsTarget(t *testing.T) {
	assert.True(t, SavingsTarget(3500, 5000).Valid)
	assert.False(t, SavingsTarget(3501, 5000).Valid)
}

func TestAmount(t *testing.T) {
	assert.True(t, Amount(0.01, "").Valid)
	assert.False(t, Amount(0, "").Valid)
	assert.False(t, Amount(-5, "").Valid)
	assert.False(t, Amount(math.NaN(), "").Valid)
	assert.False(t, Amount(math.Inf(1), "").Valid)
}

func TestSafeCalculate(t *testing.T) {
	t.Run("returns result when finite", func(t *testing.T) {
		got := SafeCalculate(func() float64 { return 10.0 / 4 }, -1)
		assert.Equal(t, 2.5, got)
	})

	t.Run("substitutes default on division by zero", func(t *testing.T) {
		zero := 0.0
		got := SafeCalculate(func() float64 { return 1 / zero }, 0)
		assert.Equal(t, 0.0, got)
	})

	t.Run("substitutes default on NaN", func(t *testing.T) {
		zero := 0.0
		got := SafeCalculate(func() float64 { return zero / zero }, 7)
		assert.Equal(t, 7.0, got)
	})

	t.Run("recovers from panic", func(t *testing.T) {
		got := SafeCalculate(func() float64 { panic("boom") }, 3)
		assert.Equal(t, 3.0, got)
	})
}
