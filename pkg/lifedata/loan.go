package lifedata

import "github.com/lifeos/lifeos/pkg/formula"

// The five lenses: every loan is classified along five independent axes.

type LoanPurpose string

const (
	LoanProductive  LoanPurpose = "Productive (Asset Building)"
	LoanConsumption LoanPurpose = "Consumption (Lifestyle)"
)

type LoanCollateral string

const (
	LoanSecured   LoanCollateral = "Secured (Asset Backed)"
	LoanUnsecured LoanCollateral = "Unsecured (Credit Score Based)"
)

type LoanStructure string

const (
	LoanTerm      LoanStructure = "Term Loan (Fixed Tenure)"
	LoanRevolving LoanStructure = "Revolving (Credit Card/OD)"
)

// InterestCalculation mirrors formula.InterestMethod at the document boundary.
type InterestCalculation string

const (
	InterestReducing InterestCalculation = InterestCalculation(formula.MethodReducing)
	InterestFlat     InterestCalculation = InterestCalculation(formula.MethodFlat)
)

type InterestRateType string

const (
	RateFixed    InterestRateType = "Fixed Rate"
	RateFloating InterestRateType = "Floating Rate"
)

type LoanType string

const (
	LoanTypeHome       LoanType = "Home Loan"
	LoanTypeCar        LoanType = "Car Loan"
	LoanTypePersonal   LoanType = "Personal Loan"
	LoanTypeEducation  LoanType = "Education Loan"
	LoanTypeCreditCard LoanType = "Credit Card"
	LoanTypeOther      LoanType = "Other"
)

type Liability struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	TotalAmount    float64 `json:"totalAmount"`
	PaidAmount     float64 `json:"paidAmount"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	InterestRate   float64 `json:"interestRate"`
	TenureMonths   int     `json:"tenureMonths"`
	StartDate      string  `json:"startDate"`

	Purpose           LoanPurpose         `json:"purpose"`
	Collateral        LoanCollateral      `json:"collateral"`
	Structure         LoanStructure       `json:"structure"`
	CalculationMethod InterestCalculation `json:"calculationMethod"`
	RateType          InterestRateType    `json:"rateType"`

	LoanType    LoanType `json:"loanType"`
	CreditLimit float64  `json:"creditLimit,omitempty"`
}

// Outstanding is the principal still owed.
func (l Liability) Outstanding() float64 {
	return l.TotalAmount - l.PaidAmount
}

// DebtAnalysis splits outstanding debt by purpose and flags anything
// charged above 12% as high-interest.
type DebtAnalysis struct {
	GoodDebt         float64 `json:"goodDebt"`
	BadDebt          float64 `json:"badDebt"`
	HighInterestDebt float64 `json:"highInterestDebt"`
	TotalDebt        float64 `json:"totalDebt"`
}

// ComputeDebtAnalysis aggregates outstanding balances over all liabilities.
func ComputeDebtAnalysis(liabilities []Liability) DebtAnalysis {
	var analysis DebtAnalysis
	for _, l := range liabilities {
		outstanding := l.Outstanding()
		switch l.Purpose {
		case LoanProductive:
			analysis.GoodDebt += outstanding
		case LoanConsumption:
			analysis.BadDebt += outstanding
		}
		if l.InterestRate > 12 {
			analysis.HighInterestDebt += outstanding
		}
	}
	analysis.TotalDebt = analysis.GoodDebt + analysis.BadDebt
	return analysis
}

// TotalMonthlyEMI sums the monthly payments across all liabilities.
func TotalMonthlyEMI(liabilities []Liability) float64 {
	var total float64
	for _, l := range liabilities {
		total += l.MonthlyPayment
	}
	return total
}
