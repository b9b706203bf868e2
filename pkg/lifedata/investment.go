package lifedata

type AssetClass string

const (
	AssetClassEquity      AssetClass = "Equity (Growth)"
	AssetClassDebt        AssetClass = "Debt (Stability)"
	AssetClassCommodity   AssetClass = "Commodity (Hedge)"
	AssetClassRealEstate  AssetClass = "Real Estate (Illiquid)"
	AssetClassAlternative AssetClass = "Alternative (High Risk)"
)

type Investment struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	AssetClass       AssetClass `json:"assetClass"`
	AmountInvested   float64    `json:"amountInvested"`
	CurrentValue     float64    `json:"currentValue"`
	ExpectedReturn   float64    `json:"expectedReturn"`
	LinkedGoalID     string     `json:"linkedGoalId,omitempty"`
	IsSIP            bool       `json:"isSIP"`
	MonthlySIPAmount float64    `json:"monthlySIPAmount,omitempty"`
}
