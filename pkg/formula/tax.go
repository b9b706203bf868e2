package formula

import "math"

// IncomeHeads are the five heads of income recognized by the Indian tax code.
type IncomeHeads struct {
	Salary             float64
	HouseProperty      float64
	BusinessProfession float64
	CapitalGains       float64
	OtherSources       float64
}

func (h IncomeHeads) gross() float64 {
	return h.Salary + h.HouseProperty + h.BusinessProfession + h.CapitalGains + h.OtherSources
}

// Deductions are the itemized deductions available under the old regime.
type Deductions struct {
	Section80C       float64
	Section80D       float64
	Section80CCD     float64
	HRAExemption     float64
	HomeLoanInterest float64
}

func (d Deductions) total() float64 {
	return d.Section80C + d.Section80D + d.Section80CCD + d.HRAExemption + d.HomeLoanInterest
}

// TaxResult carries the final tax liability (slab tax, rebate applied,
// 4% cess included, rounded to the nearest rupee) and the taxable income
// the slabs were applied to.
type TaxResult struct {
	Tax           float64 `json:"tax"`
	TaxableIncome float64 `json:"taxableIncome"`
}

const (
	oldRegimeStandardDeduction = 50_000
	newRegimeStandardDeduction = 75_000
	oldRegimeRebateLimit       = 500_000
	newRegimeRebateLimit       = 700_000
	cessMultiplier             = 1.04
)

// IncomeTaxOldRegime computes the liability under the old regime:
// itemized deductions and a 50k standard deduction (salaried only) are
// subtracted before slabbing at 0% to 2.5L, 5% to 5L, 20% to 10L, 30% above.
// Full rebate when taxable income does not exceed 5L.
func IncomeTaxOldRegime(heads IncomeHeads, deductions Deductions) TaxResult {
	taxableIncome := heads.gross() - deductions.total()
	if heads.Salary > 0 {
		taxableIncome -= oldRegimeStandardDeduction
	}

	if taxableIncome <= 250_000 {
		return TaxResult{Tax: 0, TaxableIncome: math.Max(0, taxableIncome)}
	}

	var tax float64
	tax += math.Min(taxableIncome-250_000, 250_000) * 0.05
	if taxableIncome > 500_000 {
		tax += math.Min(taxableIncome-500_000, 500_000) * 0.20
	}
	if taxableIncome > 1_000_000 {
		tax += (taxableIncome - 1_000_000) * 0.30
	}

	if taxableIncome <= oldRegimeRebateLimit {
		tax = 0
	}
	tax *= cessMultiplier

	return TaxResult{Tax: math.Round(tax), TaxableIncome: math.Max(0, taxableIncome)}
}

// IncomeTaxNewRegime computes the liability under the new regime:
// a 75k standard deduction (salaried only), no itemized deductions, slabs at
// 0% to 3L, 5% on the next 4L, 10% on the next 3L, 15% on the next 2L,
// 20% on the next 3L, 30% above 15L. Full rebate when taxable income does
// not exceed 7L.
func IncomeTaxNewRegime(heads IncomeHeads) TaxResult {
	taxableIncome := heads.gross()
	if heads.Salary > 0 {
		taxableIncome -= newRegimeStandardDeduction
	}

	if taxableIncome <= 300_000 {
		return TaxResult{Tax: 0, TaxableIncome: math.Max(0, taxableIncome)}
	}

	var tax float64
	tax += math.Min(taxableIncome-300_000, 400_000) * 0.05
	if taxableIncome > 700_000 {
		tax += math.Min(taxableIncome-700_000, 300_000) * 0.10
	}
	if taxableIncome > 1_000_000 {
		tax += math.Min(taxableIncome-1_000_000, 200_000) * 0.15
	}
	if taxableIncome > 1_200_000 {
		tax += math.Min(taxableIncome-1_200_000, 300_000) * 0.20
	}
	if taxableIncome > 1_500_000 {
		tax += (taxableIncome - 1_500_000) * 0.30
	}

	if taxableIncome <= newRegimeRebateLimit {
		tax = 0
	}
	tax *= cessMultiplier

	return TaxResult{Tax: math.Round(tax), TaxableIncome: math.Max(0, taxableIncome)}
}
