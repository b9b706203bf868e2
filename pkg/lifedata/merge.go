package lifedata

import (
	"encoding/json"

	"github.com/lifeos/lifeos/internal/utils"
)

// MergeWithDefaults decodes a stored document on top of the default shape:
// every top-level section present in the document replaces the default one,
// sections the document predates keep their defaults. Goal fields added
// later are backfilled with the values the planner assumed before they
// existed.
func MergeWithDefaults(raw []byte, clock utils.Clock) (AppData, error) {
	var incoming AppData
	if err := json.Unmarshal(raw, &incoming); err != nil {
		return AppData{}, err
	}
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(raw, &sections); err != nil {
		return AppData{}, err
	}

	data := DefaultAppData(clock)
	replace := func(key string, apply func()) {
		if _, ok := sections[key]; ok {
			apply()
		}
	}
	replace("tasks", func() { data.Tasks = incoming.Tasks })
	replace("habits", func() { data.Habits = incoming.Habits })
	replace("transactions", func() { data.Transactions = incoming.Transactions })
	replace("wishlist", func() { data.Wishlist = incoming.Wishlist })
	replace("assets", func() { data.Assets = incoming.Assets })
	replace("liabilities", func() { data.Liabilities = incoming.Liabilities })
	replace("insurancePolicies", func() { data.InsurancePolicies = incoming.InsurancePolicies })
	replace("investments", func() { data.Investments = incoming.Investments })
	replace("financialTools", func() { data.FinancialTools = incoming.FinancialTools })
	replace("savingsConfig", func() { data.SavingsConfig = incoming.SavingsConfig })
	replace("incomeTarget", func() { data.IncomeTarget = incoming.IncomeTarget })
	replace("incomeOpportunities", func() { data.IncomeOpportunities = incoming.IncomeOpportunities })
	replace("growthStrategy", func() { data.GrowthStrategy = incoming.GrowthStrategy })
	replace("contacts", func() { data.Contacts = incoming.Contacts })
	replace("goals", func() { data.Goals = incoming.Goals })
	replace("lifeGoals", func() { data.LifeGoals = incoming.LifeGoals })
	replace("missionStatement", func() { data.MissionStatement = incoming.MissionStatement })
	replace("riskProfile", func() { data.RiskProfile = incoming.RiskProfile })
	replace("taxProfile", func() { data.TaxProfile = incoming.TaxProfile })

	for i, goal := range data.Goals {
		if goal.YearsAway == 0 {
			goal.YearsAway = 1
		}
		if goal.InflationRate == 0 {
			goal.InflationRate = 6
		}
		if goal.Tier == "" {
			goal.Tier = TierFreedom
		}
		data.Goals[i] = goal
	}
	if data.TaxProfile.SelectedRegime == "" {
		data.TaxProfile.SelectedRegime = RegimeNew
	}
	return data, nil
}
