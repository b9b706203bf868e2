package lifedata

// SavingsConfig drives the emergency fund target: the months multiplier is
// looked up from job stability and dependents, the target is multiplier
// times monthly expense.
type SavingsConfig struct {
	MonthlyExpense   float64 `json:"monthlyExpense"`
	IsJobStable      bool    `json:"isJobStable"`
	HasDependents    bool    `json:"hasDependents"`
	MonthsMultiplier int     `json:"monthsMultiplier"`
	TargetAmount     float64 `json:"targetAmount"`
	IsConfigured     bool    `json:"isConfigured"`
}

// IncomeTarget is the monthly income split across the six envelopes.
type IncomeTarget struct {
	Needs      float64 `json:"needs"`
	Wants      float64 `json:"wants"`
	Savings    float64 `json:"savings"`
	Insurance  float64 `json:"insurance"`
	Investment float64 `json:"investment"`
	TaxBuffer  float64 `json:"taxBuffer"`
}

// Total is the overall monthly income target.
func (t IncomeTarget) Total() float64 {
	return t.Needs + t.Wants + t.Savings + t.Insurance + t.Investment + t.TaxBuffer
}

// IncomeOpportunity is a side-income idea scored on four 1-5 factors.
// Score is the cached sum, set when the opportunity is added.
type IncomeOpportunity struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Interest        int    `json:"interest"`
	Capability      int    `json:"capability"`
	Effortlessness  int    `json:"effortlessness"`
	ReturnPotential int    `json:"returnPotential"`
	Score           int    `json:"score"`
}

// GrowthStrategy captures the skills/network/leverage/geography plan.
type GrowthStrategy struct {
	UnfairAdvantage string   `json:"unfairAdvantage"`
	SkillsToAcquire []string `json:"skillsToAcquire"`
	NetworkNotes    string   `json:"networkNotes"`
	LeverageAudit   []string `json:"leverageAudit"`
	GeographyPlan   string   `json:"geographyPlan"`
}

// GrowthStrategyPatch carries a partial update; nil fields are left untouched.
type GrowthStrategyPatch struct {
	UnfairAdvantage *string  `json:"unfairAdvantage"`
	SkillsToAcquire []string `json:"skillsToAcquire"`
	NetworkNotes    *string  `json:"networkNotes"`
	LeverageAudit   []string `json:"leverageAudit"`
	GeographyPlan   *string  `json:"geographyPlan"`
}

func (g GrowthStrategy) applyPatch(patch GrowthStrategyPatch) GrowthStrategy {
	if patch.UnfairAdvantage != nil {
		g.UnfairAdvantage = *patch.UnfairAdvantage
	}
	if patch.SkillsToAcquire != nil {
		g.SkillsToAcquire = append([]string(nil), patch.SkillsToAcquire...)
	}
	if patch.NetworkNotes != nil {
		g.NetworkNotes = *patch.NetworkNotes
	}
	if patch.LeverageAudit != nil {
		g.LeverageAudit = append([]string(nil), patch.LeverageAudit...)
	}
	if patch.GeographyPlan != nil {
		g.GeographyPlan = *patch.GeographyPlan
	}
	return g
}
