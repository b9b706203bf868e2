package lifedata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyExpenseTotal(t *testing.T) {
	transactions := []Transaction{
		{ID: "1", Amount: 150, Description: "Grocery Run", Type: TransactionExpense, Category: "Food", MasterCategory: MasterConsumption, Necessity: NecessityNeed, Date: "2024-03-01"},
		{ID: "2", Amount: 1200, Description: "Rent", Type: TransactionExpense, Category: "Housing", Date: "2024-03-05T10:00:00Z"},
		{ID: "3", Amount: 80, Description: "Dinner out", Type: TransactionExpense, Category: "Food", Date: "2024-04-02"},
		{ID: "4", Amount: 5000, Description: "Salary", Type: TransactionIncome, Category: "Salary", Date: "2024-03-01"},
	}

	t.Run("includes only expenses within the month", func(t *testing.T) {
		assert.Equal(t, 1350.0, MonthlyExpenseTotal(transactions, 2024, time.March))
	})

	t.Run("other months are unaffected", func(t *testing.T) {
		assert.Equal(t, 80.0, MonthlyExpenseTotal(transactions, 2024, time.April))
		assert.Equal(t, 0.0, MonthlyExpenseTotal(transactions, 2024, time.May))
	})

	t.Run("unparseable dates fall outside every month", func(t *testing.T) {
		broken := []Transaction{{Amount: 10, Type: TransactionExpense, Date: "yesterday"}}
		assert.Equal(t, 0.0, MonthlyExpenseTotal(broken, 2024, time.March))
	})
}

func TestExpenseBreakdown(t *testing.T) {
	transactions := []Transaction{
		{Amount: 150, Type: TransactionExpense, Category: "Food"},
		{Amount: 80, Type: TransactionExpense, Category: "Food"},
		{Amount: 1200, Type: TransactionExpense, Category: "Housing"},
		{Amount: 5000, Type: TransactionIncome, Category: "Salary"},
	}

	breakdown := ExpenseBreakdown(transactions)

	assert.Equal(t, 230.0, breakdown["Food"])
	assert.Equal(t, 1200.0, breakdown["Housing"])
	assert.NotContains(t, breakdown, "Salary")
}

func TestReadyWishlist(t *testing.T) {
	now := time.Date(2026, time.March, 2, 13, 0, 0, 0, time.UTC)
	items := []WishlistItem{
		{ID: "1", Name: "Headphones", Amount: 250, CreatedAt: "2026-03-01T12:00:00Z"},
		{ID: "2", Name: "Keyboard", Amount: 120, CreatedAt: "2026-03-02T10:00:00Z"},
		{ID: "3", Name: "No date", Amount: 40},
	}

	ready := ReadyWishlist(items, now)

	// only the item past the 24-hour wait qualifies; an unparseable
	// createdAt never does
	require.Len(t, ready, 1)
	assert.Equal(t, "Headphones", ready[0].Name)

	exactly := time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC)
	assert.True(t, items[0].CoolingOffComplete(exactly))
	assert.False(t, items[1].CoolingOffComplete(exactly))
}

func TestComputeIncomeStats(t *testing.T) {
	transactions := []Transaction{
		{Amount: 5000, Type: TransactionIncome},
		{Amount: 1500, Type: TransactionExpense},
		{Amount: 1500, Type: TransactionExpense},
	}

	stats := ComputeIncomeStats(transactions)

	assert.Equal(t, 5000.0, stats.TotalIncome)
	assert.Equal(t, 3000.0, stats.TotalExpenses)
	assert.Equal(t, 2000.0, stats.NetSavings)
	assert.InDelta(t, 40.0, stats.SavingsRate, 1e-9)
	assert.Equal(t, 3, stats.TransactionCount)
}
