package lifedata

// AppData is the single root aggregate. The Store owns the only live copy;
// everything handed out is a deep copy, so holders of a snapshot never see
// later mutations. Cross-entity relationships are ids, not pointers:
// deleting a referenced entity leaves a dangling id that resolvers report
// as unlinked.
type AppData struct {
	Tasks               []Task              `json:"tasks"`
	Habits              []Habit             `json:"habits"`
	Transactions        []Transaction       `json:"transactions"`
	Wishlist            []WishlistItem      `json:"wishlist"`
	Assets              []FinancialAsset    `json:"assets"`
	Liabilities         []Liability         `json:"liabilities"`
	InsurancePolicies   []InsurancePolicy   `json:"insurancePolicies"`
	Investments         []Investment        `json:"investments"`
	FinancialTools      []FinancialTool     `json:"financialTools"`
	SavingsConfig       SavingsConfig       `json:"savingsConfig"`
	IncomeTarget        IncomeTarget        `json:"incomeTarget"`
	IncomeOpportunities []IncomeOpportunity `json:"incomeOpportunities"`
	GrowthStrategy      GrowthStrategy      `json:"growthStrategy"`
	Contacts            []Contact           `json:"contacts"`
	Goals               []Goal              `json:"goals"`
	LifeGoals           []LifeGoal          `json:"lifeGoals"`
	MissionStatement    string              `json:"missionStatement"`
	RiskProfile         *RiskProfile        `json:"riskProfile,omitempty"`
	TaxProfile          TaxProfile          `json:"taxProfile"`
}

// Clone deep-copies the aggregate. Maps and nested slices are copied so a
// clone shares no mutable state with its source.
func (d AppData) Clone() AppData {
	out := d

	out.Tasks = append([]Task(nil), d.Tasks...)
	out.Transactions = append([]Transaction(nil), d.Transactions...)
	out.Wishlist = append([]WishlistItem(nil), d.Wishlist...)
	out.Assets = append([]FinancialAsset(nil), d.Assets...)
	out.Liabilities = append([]Liability(nil), d.Liabilities...)
	out.InsurancePolicies = append([]InsurancePolicy(nil), d.InsurancePolicies...)
	out.Investments = append([]Investment(nil), d.Investments...)
	out.IncomeOpportunities = append([]IncomeOpportunity(nil), d.IncomeOpportunities...)
	out.Contacts = append([]Contact(nil), d.Contacts...)
	out.Goals = append([]Goal(nil), d.Goals...)
	out.LifeGoals = append([]LifeGoal(nil), d.LifeGoals...)

	out.Habits = make([]Habit, len(d.Habits))
	for i, habit := range d.Habits {
		history := make(map[string]bool, len(habit.History))
		for k, v := range habit.History {
			history[k] = v
		}
		habit.History = history
		out.Habits[i] = habit
	}

	out.FinancialTools = make([]FinancialTool, len(d.FinancialTools))
	for i, tool := range d.FinancialTools {
		fields := make(map[string]string, len(tool.Fields))
		for k, v := range tool.Fields {
			fields[k] = v
		}
		tool.Fields = fields
		out.FinancialTools[i] = tool
	}

	out.GrowthStrategy.SkillsToAcquire = append([]string(nil), d.GrowthStrategy.SkillsToAcquire...)
	out.GrowthStrategy.LeverageAudit = append([]string(nil), d.GrowthStrategy.LeverageAudit...)

	if d.RiskProfile != nil {
		profile := *d.RiskProfile
		out.RiskProfile = &profile
	}

	return out
}

// ResolveGoal looks up a goal by id. A dangling or empty id resolves to
// "unlinked", never an error: deleting a goal must not cascade.
func (d AppData) ResolveGoal(goalID string) (Goal, bool) {
	if goalID == "" {
		return Goal{}, false
	}
	for _, goal := range d.Goals {
		if goal.ID == goalID {
			return goal, true
		}
	}
	return Goal{}, false
}

// FindTask looks up a task by id.
func (d AppData) FindTask(taskID string) (Task, bool) {
	for _, task := range d.Tasks {
		if task.ID == taskID {
			return task, true
		}
	}
	return Task{}, false
}

// FindHabit looks up a habit by id.
func (d AppData) FindHabit(habitID string) (Habit, bool) {
	for _, habit := range d.Habits {
		if habit.ID == habitID {
			return habit, true
		}
	}
	return Habit{}, false
}
