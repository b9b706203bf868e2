package lifedata

import (
	"time"

	"github.com/lifeos/lifeos/pkg/formula"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "Income"
	TransactionExpense TransactionType = "Expense"
)

// ESBICategory places income on the employee / self-employed / business /
// investor quadrant.
type ESBICategory string

const (
	ESBIEmployee     ESBICategory = "Employee (E)"
	ESBISelfEmployed ESBICategory = "Self-Employed (S)"
	ESBIBusiness     ESBICategory = "Business (B)"
	ESBIInvestor     ESBICategory = "Investor (I)"
)

// MasterCategory is one of the four spending buckets.
type MasterCategory string

const (
	MasterConsumption MasterCategory = "Consumption (Living)"
	MasterCommitment  MasterCategory = "Commitment (Debt)"
	MasterSafety      MasterCategory = "Safety (Protection)"
	MasterGrowth      MasterCategory = "Growth (Investing)"
)

type Necessity string

const (
	NecessityNeed Necessity = "Need"
	NecessityWant Necessity = "Want"
)

// Transaction is append-only: there is no update operation, and new entries
// are inserted newest-first.
type Transaction struct {
	ID             string          `json:"id"`
	Amount         float64         `json:"amount"`
	Description    string          `json:"description"`
	Type           TransactionType `json:"type"`
	Category       string          `json:"category"`
	ESBICategory   ESBICategory    `json:"esbiCategory,omitempty"`
	MasterCategory MasterCategory  `json:"masterCategory,omitempty"`
	Necessity      Necessity       `json:"necessity,omitempty"`
	Date           string          `json:"date"`
}

// InMonth reports whether the transaction falls in the given month.
// Unparseable dates are treated as outside every month.
func (t Transaction) InMonth(year int, month time.Month) bool {
	parsed, err := time.Parse(time.RFC3339, t.Date)
	if err != nil {
		parsed, err = time.Parse("2006-01-02", t.Date)
		if err != nil {
			return false
		}
	}
	return parsed.Year() == year && parsed.Month() == month
}

// WishlistCoolingOff is the mandatory wait before a wishlist purchase.
const WishlistCoolingOff = 24 * time.Hour

// WishlistItem is a purchase parked for a cooling-off period.
type WishlistItem struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Amount    float64        `json:"amount"`
	Category  MasterCategory `json:"category"`
	CreatedAt string         `json:"createdAt"`
	Note      string         `json:"note,omitempty"`
}

// CoolingOffComplete reports whether the 24-hour wait has elapsed.
func (w WishlistItem) CoolingOffComplete(now time.Time) bool {
	createdAt, err := time.Parse(time.RFC3339, w.CreatedAt)
	if err != nil {
		return false
	}
	return now.Sub(createdAt) >= WishlistCoolingOff
}

// ReadyWishlist returns the items whose cooling-off period has elapsed.
func ReadyWishlist(items []WishlistItem, now time.Time) []WishlistItem {
	ready := []WishlistItem{}
	for _, item := range items {
		if item.CoolingOffComplete(now) {
			ready = append(ready, item)
		}
	}
	return ready
}

type AssetType string

const (
	AssetSaving     AssetType = "Saving"
	AssetInvestment AssetType = "Investment"
)

type FinancialAsset struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Value  float64   `json:"value"`
	Type   AssetType `json:"type"`
	Target float64   `json:"target,omitempty"`
}

// IncomeStats summarizes the transaction log.
type IncomeStats struct {
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpenses    float64 `json:"totalExpenses"`
	NetSavings       float64 `json:"netSavings"`
	SavingsRate      float64 `json:"savingsRate"`
	TransactionCount int     `json:"transactionCount"`
}

// ComputeIncomeStats totals the transaction log by type.
func ComputeIncomeStats(transactions []Transaction) IncomeStats {
	var income, expenses float64
	for _, t := range transactions {
		switch t.Type {
		case TransactionIncome:
			income += t.Amount
		case TransactionExpense:
			expenses += t.Amount
		}
	}
	return IncomeStats{
		TotalIncome:      income,
		TotalExpenses:    expenses,
		NetSavings:       income - expenses,
		SavingsRate:      formula.SavingsRate(income, expenses),
		TransactionCount: len(transactions),
	}
}

// ExpenseBreakdown totals expenses by sub-category.
func ExpenseBreakdown(transactions []Transaction) map[string]float64 {
	breakdown := map[string]float64{}
	for _, t := range transactions {
		if t.Type == TransactionExpense {
			breakdown[t.Category] += t.Amount
		}
	}
	return breakdown
}

// MonthlyExpenseTotal sums expenses that fall inside the given month.
func MonthlyExpenseTotal(transactions []Transaction, year int, month time.Month) float64 {
	var total float64
	for _, t := range transactions {
		if t.Type == TransactionExpense && t.InMonth(year, month) {
			total += t.Amount
		}
	}
	return total
}
