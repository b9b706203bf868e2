package lifedata

type GoalHorizon string

const (
	HorizonOneYear    GoalHorizon = "1 Year"
	HorizonThreeYears GoalHorizon = "3 Years"
	HorizonFiveYears  GoalHorizon = "5 Years"
	HorizonTenPlus    GoalHorizon = "10+ Years"
)

type GoalTier string

const (
	TierFreedom   GoalTier = "Freedom"
	TierLifestyle GoalTier = "Lifestyle"
)

// Goal is a vision-board entry. Financial goals carry a cost-today /
// years-away / inflation triple; futureValue and requiredSIP are derived
// from it once, when the goal is created, and cached on the entity.
type Goal struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Horizon  GoalHorizon `json:"horizon"`
	Progress float64     `json:"progress"`

	IsFinancial   bool     `json:"isFinancial"`
	CurrentCost   float64  `json:"currentCost,omitempty"`
	YearsAway     int      `json:"yearsAway,omitempty"`
	InflationRate float64  `json:"inflationRate,omitempty"`
	FutureValue   float64  `json:"futureValue,omitempty"`
	RequiredSIP   float64  `json:"requiredSIP,omitempty"`
	Tier          GoalTier `json:"tier,omitempty"`
}

// GoalPatch carries a partial update; nil fields are left untouched.
// The cached futureValue/requiredSIP are not recomputed on update.
type GoalPatch struct {
	Title    *string      `json:"title"`
	Horizon  *GoalHorizon `json:"horizon"`
	Progress *float64     `json:"progress"`
	Tier     *GoalTier    `json:"tier"`
}

func (g Goal) applyPatch(patch GoalPatch) Goal {
	if patch.Title != nil {
		g.Title = *patch.Title
	}
	if patch.Horizon != nil {
		g.Horizon = *patch.Horizon
	}
	if patch.Progress != nil {
		g.Progress = *patch.Progress
	}
	if patch.Tier != nil {
		g.Tier = *patch.Tier
	}
	return g
}

type LifeGoalType string

const (
	LifeGoalMustHave   LifeGoalType = "Must-Have"
	LifeGoalGoodToHave LifeGoalType = "Good-to-Have"
)

type LifeGoal struct {
	ID    string       `json:"id"`
	Title string       `json:"title"`
	Type  LifeGoalType `json:"type"`
}

type RiskLabel string

const (
	RiskConservative RiskLabel = "Conservative"
	RiskModerate     RiskLabel = "Moderate"
	RiskAggressive   RiskLabel = "Aggressive"
)

// RiskProfile is the 0-30 questionnaire outcome.
type RiskProfile struct {
	Score       int       `json:"score"`
	Label       RiskLabel `json:"label"`
	Description string    `json:"description"`
}
