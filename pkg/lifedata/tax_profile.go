package lifedata

import "github.com/lifeos/lifeos/pkg/formula"

type TaxRegime string

const (
	RegimeOld TaxRegime = "Old Regime"
	RegimeNew TaxRegime = "New Regime"
)

// TaxProfile is the singleton tax worksheet: five heads of income, the
// old-regime deductions, payments made, and the selected regime.
type TaxProfile struct {
	Salary             float64 `json:"salary"`
	HouseProperty      float64 `json:"houseProperty"`
	BusinessProfession float64 `json:"businessProfession"`
	CapitalGains       float64 `json:"capitalGains"`
	OtherSources       float64 `json:"otherSources"`

	Deduction80C     float64 `json:"deduction80C"`
	Deduction80D     float64 `json:"deduction80D"`
	Deduction80CCD   float64 `json:"deduction80CCD"`
	HRAExemption     float64 `json:"hraExemption"`
	HomeLoanInterest float64 `json:"homeLoanInterest"`

	TDSDeducted    float64 `json:"tdsDeducted"`
	AdvanceTaxPaid float64 `json:"advanceTaxPaid"`

	SelectedRegime TaxRegime `json:"selectedRegime"`
}

// Heads converts the profile into the formula library's income heads.
func (p TaxProfile) Heads() formula.IncomeHeads {
	return formula.IncomeHeads{
		Salary:             p.Salary,
		HouseProperty:      p.HouseProperty,
		BusinessProfession: p.BusinessProfession,
		CapitalGains:       p.CapitalGains,
		OtherSources:       p.OtherSources,
	}
}

// Deductions converts the profile into the formula library's deductions.
func (p TaxProfile) Deductions() formula.Deductions {
	return formula.Deductions{
		Section80C:       p.Deduction80C,
		Section80D:       p.Deduction80D,
		Section80CCD:     p.Deduction80CCD,
		HRAExemption:     p.HRAExemption,
		HomeLoanInterest: p.HomeLoanInterest,
	}
}

// TaxProfilePatch carries a partial merge; nil fields are left untouched.
type TaxProfilePatch struct {
	Salary             *float64   `json:"salary"`
	HouseProperty      *float64   `json:"houseProperty"`
	BusinessProfession *float64   `json:"businessProfession"`
	CapitalGains       *float64   `json:"capitalGains"`
	OtherSources       *float64   `json:"otherSources"`
	Deduction80C       *float64   `json:"deduction80C"`
	Deduction80D       *float64   `json:"deduction80D"`
	Deduction80CCD     *float64   `json:"deduction80CCD"`
	HRAExemption       *float64   `json:"hraExemption"`
	HomeLoanInterest   *float64   `json:"homeLoanInterest"`
	TDSDeducted        *float64   `json:"tdsDeducted"`
	AdvanceTaxPaid     *float64   `json:"advanceTaxPaid"`
	SelectedRegime     *TaxRegime `json:"selectedRegime"`
}

func (p TaxProfile) applyPatch(patch TaxProfilePatch) TaxProfile {
	if patch.Salary != nil {
		p.Salary = *patch.Salary
	}
	if patch.HouseProperty != nil {
		p.HouseProperty = *patch.HouseProperty
	}
	if patch.BusinessProfession != nil {
		p.BusinessProfession = *patch.BusinessProfession
	}
	if patch.CapitalGains != nil {
		p.CapitalGains = *patch.CapitalGains
	}
	if patch.OtherSources != nil {
		p.OtherSources = *patch.OtherSources
	}
	if patch.Deduction80C != nil {
		p.Deduction80C = *patch.Deduction80C
	}
	if patch.Deduction80D != nil {
		p.Deduction80D = *patch.Deduction80D
	}
	if patch.Deduction80CCD != nil {
		p.Deduction80CCD = *patch.Deduction80CCD
	}
	if patch.HRAExemption != nil {
		p.HRAExemption = *patch.HRAExemption
	}
	if patch.HomeLoanInterest != nil {
		p.HomeLoanInterest = *patch.HomeLoanInterest
	}
	if patch.TDSDeducted != nil {
		p.TDSDeducted = *patch.TDSDeducted
	}
	if patch.AdvanceTaxPaid != nil {
		p.AdvanceTaxPaid = *patch.AdvanceTaxPaid
	}
	if patch.SelectedRegime != nil {
		p.SelectedRegime = *patch.SelectedRegime
	}
	return p
}
