package formula

import (
	"math"

	"github.com/lifeos/lifeos/pkg/validation"
)

// InterestMethod selects how loan interest is computed.
type InterestMethod string

const (
	// MethodReducing charges interest on the outstanding balance (true amortization).
	MethodReducing InterestMethod = "Reducing Balance"
	// MethodFlat charges interest on the full principal for the whole tenure.
	// For the same stated rate this yields a materially higher effective rate
	// than reducing balance (roughly 1.8x). That is the point of modeling it.
	MethodFlat InterestMethod = "Flat Rate"
)

// EMI returns the equated monthly installment for a loan.
// Total over its input domain: degenerate inputs yield 0, never NaN or Inf.
func EMI(principal, annualRatePercent float64, tenureMonths int, method InterestMethod) float64 {
	return validation.SafeCalculate(func() float64 {
		n := float64(tenureMonths)
		if method == MethodFlat {
			annualInterest := principal * (annualRatePercent / 100)
			totalInterest := annualInterest * (n / 12)
			return (principal + totalInterest) / n
		}
		r := annualRatePercent / 12 / 100
		if r == 0 {
			return principal / n
		}
		return principal * r * math.Pow(1+r, n) / (math.Pow(1+r, n) - 1)
	}, 0)
}

// FutureValue compounds a present value annually for the given number of years.
// Used both for inflating goal costs and for projecting investment growth.
func FutureValue(presentValue, annualRatePercent float64, years float64) float64 {
	return validation.SafeCalculate(func() float64 {
		return presentValue * math.Pow(1+annualRatePercent/100, years)
	}, 0)
}

// RequiredMonthlySIP returns the monthly contribution needed to reach
// futureValue in the given number of years at the expected annual return.
// A zero-year horizon means a lump sum: the full future value is returned.
func RequiredMonthlySIP(futureValue, annualReturnPercent float64, years int) float64 {
	if years == 0 {
		return futureValue
	}
	return validation.SafeCalculate(func() float64 {
		r := annualReturnPercent / 12 / 100
		n := float64(years * 12)
		return futureValue * r / (math.Pow(1+r, n) - 1)
	}, 0)
}

// EmergencyFundMultiplier returns the number of months of expenses to hold as
// an emergency fund. Exactly three buckets: a stable job with no dependents
// needs 3 months, an unstable job with dependents needs 12, everything else 6.
func EmergencyFundMultiplier(isJobStable, hasDependents bool) int {
	if isJobStable && !hasDependents {
		return 3
	}
	if !isJobStable && hasDependents {
		return 12
	}
	return 6
}

// EMIToIncomeRatio returns total monthly EMI as a percentage of monthly income.
func EMIToIncomeRatio(totalMonthlyEMI, monthlyIncome float64) float64 {
	return validation.SafeCalculate(func() float64 {
		return totalMonthlyEMI / monthlyIncome * 100
	}, 0)
}

// DebtToIncomeRatio returns total outstanding debt as a percentage of annual income.
func DebtToIncomeRatio(totalDebt, monthlyIncome float64) float64 {
	return validation.SafeCalculate(func() float64 {
		return totalDebt / (monthlyIncome * 12) * 100
	}, 0)
}

// SavingsRate returns the share of income left after expenses, as a percentage.
func SavingsRate(totalIncome, totalExpenses float64) float64 {
	return validation.SafeCalculate(func() float64 {
		return (totalIncome - totalExpenses) / totalIncome * 100
	}, 0)
}

// ReadinessScore is a weighted completion percentage over the two financial
// tool tiers: basic and advanced tools each contribute up to 50 points.
func ReadinessScore(basicTotal, basicComplete, advancedTotal, advancedComplete int) int {
	score := validation.SafeCalculate(func() float64 {
		var basicScore, advancedScore float64
		if basicTotal > 0 {
			basicScore = float64(basicComplete) / float64(basicTotal) * 50
		}
		if advancedTotal > 0 {
			advancedScore = float64(advancedComplete) / float64(advancedTotal) * 50
		}
		return basicScore + advancedScore
	}, 0)
	return int(math.Round(score))
}

// OpportunityScore sums the four 1-5 evaluation factors of an income idea.
func OpportunityScore(interest, capability, effortlessness, returnPotential int) int {
	return interest + capability + effortlessness + returnPotential
}
