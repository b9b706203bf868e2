package lifedata

import "github.com/lifeos/lifeos/internal/utils"

// defaultFinancialTools is the nine-item financial setup checklist.
func defaultFinancialTools(now string) []FinancialTool {
	return []FinancialTool{
		{ID: "1", Category: ToolIdentity, Title: "Aadhaar Card", Status: ToolIncomplete, IsBasic: true, LastUpdated: now,
			Fields: map[string]string{"Number": "", "Status": "Active", "Linked to PAN": "No"}},
		{ID: "2", Category: ToolIdentity, Title: "PAN Card", Status: ToolIncomplete, IsBasic: true, LastUpdated: now,
			Fields: map[string]string{"Number": "", "Linked to Bank": "No"}},
		{ID: "3", Category: ToolBanking, Title: "3-Account System", Status: ToolIncomplete, IsBasic: true, LastUpdated: now,
			Fields: map[string]string{"Income Acct Setup": "No", "Investment Acct Setup": "No", "Living Acct Setup": "No"}},
		{ID: "4", Category: ToolSalary, Title: "EPF / UAN", Status: ToolIncomplete, IsBasic: true, LastUpdated: now,
			Fields: map[string]string{"UAN Number": "", "KYC Verified": "No", "Nominee Added": "No"}},
		{ID: "5", Category: ToolSafety, Title: "Document Vault", Status: ToolIncomplete, IsBasic: true, LastUpdated: now,
			Fields: map[string]string{"Physical Location": "Home Shelf", "Digital Backup": "Google Drive"}},
		{ID: "6", Category: ToolInvestment, Title: "Demat Account", Status: ToolIncomplete, IsBasic: false, LastUpdated: now,
			Fields: map[string]string{"Broker Name": "", "Client ID": "", "Nominee": ""}},
		{ID: "7", Category: ToolCredit, Title: "Credit Score", Status: ToolIncomplete, IsBasic: false, LastUpdated: now,
			Fields: map[string]string{"Last Score": "", "Last Checked": "", "Report Error Free": "Yes"}},
		{ID: "8", Category: ToolTax, Title: "Tax Portal", Status: ToolIncomplete, IsBasic: false, LastUpdated: now,
			Fields: map[string]string{"Login Active": "No", "Form 26AS Checked": "No"}},
		{ID: "9", Category: ToolLegacy, Title: "Will & Testament", Status: ToolIncomplete, IsBasic: false, LastUpdated: now,
			Fields: map[string]string{"Drafted": "No", "Registered": "No", "Witnesses": ""}},
	}
}

// DefaultAppData is the hardcoded starter shape a fresh profile begins with.
// It is also the base every stored partial document is merged onto, so older
// documents pick up fields introduced after they were written.
func DefaultAppData(clock utils.Clock) AppData {
	now := utils.NowISO(clock)
	return AppData{
		Tasks: []Task{
			{ID: "1", Title: "Review Quarterly Goals", Completed: false, Category: TaskCategoryProfessional, Priority: PriorityP1, IsTodayFocus: true},
			{ID: "2", Title: "Gym Workout", Completed: false, Category: TaskCategoryWellness, Priority: PriorityP2, IsTodayFocus: true},
			{ID: "3", Title: "Pay Credit Card Bill", Completed: false, Category: TaskCategoryFinancial, Priority: PriorityP1, IsTodayFocus: false},
		},
		Habits: []Habit{
			{ID: "1", Title: "Morning Meditation", Streak: 5, History: map[string]bool{}, Category: "Wellness"},
			{ID: "2", Title: "Read 30 mins", Streak: 12, History: map[string]bool{}, Category: "Personal"},
		},
		Transactions: []Transaction{
			{ID: "1", Amount: 5000, Description: "Monthly Salary", Type: TransactionIncome, Category: "Salary", ESBICategory: ESBIEmployee, Date: now},
			{ID: "2", Amount: 150, Description: "Grocery Run", Type: TransactionExpense, Category: "Food", Date: now},
			{ID: "3", Amount: 1200, Description: "Rent", Type: TransactionExpense, Category: "Housing", Date: now},
		},
		Wishlist: []WishlistItem{},
		Assets: []FinancialAsset{
			{ID: "1", Name: "Emergency Fund", Value: 10000, Type: AssetSaving, Target: 15000},
			{ID: "2", Name: "S&P 500 ETF", Value: 25000, Type: AssetInvestment},
			{ID: "3", Name: "Crypto Portfolio", Value: 2000, Type: AssetInvestment},
		},
		Liabilities: []Liability{
			{
				ID:                "1",
				Name:              "Car Loan",
				TotalAmount:       15000,
				PaidAmount:        5000,
				MonthlyPayment:    350,
				InterestRate:      8.5,
				TenureMonths:      60,
				StartDate:         now,
				Purpose:           LoanConsumption,
				Collateral:        LoanSecured,
				Structure:         LoanTerm,
				CalculationMethod: InterestReducing,
				RateType:          RateFixed,
				LoanType:          LoanTypeCar,
			},
		},
		InsurancePolicies: []InsurancePolicy{
			{
				ID: "1", Name: "Optima Restore", Type: InsuranceHealth, Insurer: "HDFC Ergo",
				PolicyNumber: "123456789", Premium: 400, SumAssured: 1000000,
				TPAContact: "1800-102-0333", RenewalDate: "2024-12-31", Nominee: "Spouse", IsCorporate: false,
			},
			{
				ID: "2", Name: "iTerm Plan", Type: InsuranceTermLife, Insurer: "Aegon Life",
				PolicyNumber: "TL-987654321", Premium: 500, SumAssured: 10000000,
				RenewalDate: "2025-06-15", Nominee: "Spouse", IsCorporate: false,
			},
		},
		Investments: []Investment{
			{ID: "1", Name: "Nifty 50 Index Fund", AssetClass: AssetClassEquity, AmountInvested: 20000, CurrentValue: 25000, ExpectedReturn: 12, IsSIP: true, MonthlySIPAmount: 500},
			{ID: "2", Name: "Gold Bees", AssetClass: AssetClassCommodity, AmountInvested: 5000, CurrentValue: 5500, ExpectedReturn: 8, IsSIP: false},
			{ID: "3", Name: "Bank FD", AssetClass: AssetClassDebt, AmountInvested: 10000, CurrentValue: 10500, ExpectedReturn: 6, IsSIP: false},
		},
		FinancialTools: defaultFinancialTools(now),
		SavingsConfig: SavingsConfig{
			MonthlyExpense:   0,
			IsJobStable:      true,
			HasDependents:    false,
			MonthsMultiplier: 6,
			TargetAmount:     0,
			IsConfigured:     false,
		},
		IncomeTarget: IncomeTarget{
			Needs:      3000,
			Wants:      1000,
			Savings:    500,
			Insurance:  200,
			Investment: 1000,
			TaxBuffer:  1000,
		},
		IncomeOpportunities: []IncomeOpportunity{},
		GrowthStrategy: GrowthStrategy{
			SkillsToAcquire: []string{},
			LeverageAudit:   []string{},
		},
		Contacts: []Contact{
			{ID: "1", Name: "John Doe", Company: "Tech Corp", Stage: LeadContacted, LastContacted: now},
			{ID: "2", Name: "Sarah Smith", Company: "Design Studio", Stage: LeadWon, DealValue: 12000, LastContacted: now},
		},
		Goals: []Goal{
			{ID: "1", Title: "Launch SaaS Product", Horizon: HorizonOneYear, Progress: 45, IsFinancial: false, Tier: TierFreedom},
		},
		LifeGoals:        []LifeGoal{},
		MissionStatement: "To build meaningful technology and live a balanced, healthy life.",
		TaxProfile: TaxProfile{
			SelectedRegime: RegimeNew,
		},
	}
}
