package lifedata

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/lifeos/lifeos/pkg/formula"
	"github.com/lifeos/lifeos/pkg/validation"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store}
}

func (handler *Handler) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}

func (handler *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func failValidation(w http.ResponseWriter, results ...validation.Result) bool {
	for _, result := range results {
		if !result.Valid {
			http.Error(w, result.Error, http.StatusBadRequest)
			return true
		}
	}
	return false
}

func (handler *Handler) GetData(w http.ResponseWriter, r *http.Request) {
	handler.store.Load(r.Context())
	handler.respond(w, http.StatusOK, handler.store.Snapshot())
}

func (handler *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var task Task
	if !handler.decode(w, r, &task) {
		return
	}
	if task.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}
	handler.respond(w, http.StatusCreated, handler.store.AddTask(r.Context(), task))
}

func (handler *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var patch TaskPatch
	if !handler.decode(w, r, &patch) {
		return
	}
	handler.store.UpdateTask(r.Context(), mux.Vars(r)["id"], patch)
	handler.respond(w, http.StatusNoContent, nil)
}

func (handler *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	handler.store.DeleteTask(r.Context(), mux.Vars(r)["id"])
	handler.respond(w, http.StatusNoContent, nil)
}

func (handler *Handler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	var habit Habit
	if !handler.decode(w, r, &habit) {
		return
	}
	if habit.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}
	handler.respond(w, http.StatusCreated, handler.store.AddHabit(r.Context(), habit))
}

func (handler *Handler) ToggleHabit(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Date string `json:"date"`
	}
	if !handler.decode(w, r, &body) {
		return
	}
	if body.Date == "" {
		http.Error(w, "date is required", http.StatusBadRequest)
		return
	}
	handler.store.ToggleHabit(r.Context(), mux.Vars(r)["id"], body.Date)
	handler.respond(w, http.StatusNoContent, nil)
}

func (handler *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var transaction Transaction
	if !handler.decode(w, r, &transaction) {
		return
	}
	if failValidation(w, validation.Amount(transaction.Amount, "Amount")) {
		return
	}
	handler.respond(w, http.StatusCreated, handler.store.AddTransaction(r.Context(), transaction))
}

func (handler *Handler) CreateWishlistItem(w http.ResponseWriter, r *http.Request) {
	var item WishlistItem
	if !handler.decode(w, r, &item) {
		return
	}
	if failValidation(w, validation.Amount(item.Amount, "Amount")) {
		return
	}
	handler.respond(w, http.StatusCreated, handler.store.AddWishlistItem(r.Context(), item))
}

func (handler *Handler) DeleteWishlistItem(w http.ResponseWriter, r *http.Request) {
	handler.store.DeleteWishlistItem(r.Context(), mux.Vars(r)["id"])
	handler.respond(w, http.StatusNoContent, nil)
}

func (handler *Handler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var asset FinancialAsset
	if !handler.decode(w, r, &asset) {
		return
	}
	if failValidation(w, validation.Amount(asset.Value, "Value")) {
		return
	}
	handler.respond(w, http.StatusCreated, handler.store.AddAsset(r.Context(), asset))
}

func (handler *Handler) CreateLiability(w http.ResponseWriter, r *http.Request) {
	var liability Liability
	if !handler.decode(w, r, &liability) {
		return
	}
	if failValidation(w,
		validation.Positive(liability.TotalAmount, "Total amount"),
		validation.InterestRate(liability.InterestRate),
		validation.Tenure(liability.TenureMonths),
	) {
		return
	}
	handler.respond(w, http.StatusCreated, handler.store.AddLiability(r.Context(), liability))
}

func (handler *Handler) UpdateLiabilityPaidAmount(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PaidAmount float64 `json:"paidAmount"`
	}
	if !handler.decode(w, r, &body) {
		return
	}
	if body.PaidAmount < 0 {
		http.Error(w, "paid amount cannot be negative", http.StatusBadRequest)
		return
	}
	handler.store.UpdateLiabilityPaidAmount(r.Context(), mux.Vars(r)["id"], body.PaidAmount)
	handler.respond(w, http.StatusNoContent, nil)
}

func (handler *Handler) DeleteLiability(w http.ResponseWriter, r *http.Request) {
	handler.store.DeleteLiability(r.Context(), mux.Vars(r)["id"])
	handler.respond(w, http.StatusNoContent, nil)
}

func (handler *Handler) CreateInsurance(w http.ResponseWriter, r *http.Request) {
	var policy InsurancePolicy
	if !handler.decode(w, r, &policy) {
		return
	}
	if failValidation(w, validation.Amount(policy.SumAssured, "Sum assured"), validation.Amount(policy.Premium, "Premium")) {
		return
	}
	handler.respond(w, http.StatusCreated, handler.store.AddInsurance(r.Context(), policy))
}

func (handler *Handler) DeleteInsurance(w http.ResponseWriter, r *http.Request) {
	handler.store.DeleteInsurance(r.Context(), mux.Vars(r)["id"])
	handler.respond(w, http.StatusNoContent, nil)
}

func (handler *Handler) CreateInvestment(w http.ResponseWriter, r *http.Request) {
	var investment Investment
	if !handler.decode(w, r, &investment) {
		return
	}
	if failValidation(w, validation.Amount(investment.AmountInvested, "Amount invested")) {
		return
	}
	handler.respond(w, http.StatusCreated, handler.store.AddInvestment(r.Context(), investment))
}

func (handler *Handler) DeleteInvestment(w http.ResponseWriter, r *http.Request) {
	handler.store.DeleteInvestment(r.Context(), mux.Vars(r)["id"])
	handler.respond(w, http.StatusNoContent, nil)
}

func (handler *Handler) UpdateFinancialTool(w http.ResponseWriter, r *http.Request) {
	var patch FinancialToolPatch
	if !handler.decode(w, r, &patch) {
		return
	}
	handler.store.UpdateFinancialTool(r.Context(), mux.Vars(r)["id"], patch)
	handler.respond(w, http.StatusNoContent, nil)
}

func (handler *Handler) UpdateSavingsConfig(w http.ResponseWriter, r *http.Request) {
	var config SavingsConfig
	if !handler.decode(w, r, &config) {
		return
	}
	if failValidation(w, validation.Amount(config.MonthlyExpense, "Monthly expense")) {
		return
	}
	handler.respond(w, http.StatusOK, handler.store.UpdateSavingsConfig(r.Context(), config))
}

func (handler *Handler) UpdateIncomeTarget(w http.ResponseWriter, r *http.Request) {
	var target IncomeTarget
	if !handler.decode(w, r, &target) {
		return
	}
	handler.store.UpdateIncomeTarget(r.Context(), target)
	handler.respond(w, http.StatusNoContent, nil)
}

func (handler *Handler) CreateIncomeOpportunity(w http.ResponseWriter, r *http.Request) {
	var opportunity IncomeOpportunity
	if !handler.decode(w, r, &opportunity) {
		return
	}
	handler.respond(w, http.StatusCreated, handler.store.AddIncomeOpportunity(r.Context(), opportunity))
}

func (handler *Handler) DeleteIncomeOpportunity(w http.ResponseWriter, r *http.Request) {
	handler.store.DeleteIncomeOpportunity(r.Context(), mux.Vars(r)["id"])
	handler.respond(w, http.StatusNoContent, nil)
}

func (handler *Handler) UpdateGrowthStrategy(w http.ResponseWriter, r *http.Request) {
	var patch GrowthStrategyPatch
	if !handler.decode(w, r, &patch) {
		return
	}
	handler.store.UpdateGrowthStrategy(r.Context(), patch)
	handler.respond(w, http.StatusNoContent, nil)
}

func (handler *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var contact Contact
	if !handler.decode(w, r, &contact) {
		return
	}
	if contact.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	handler.respond(w, http.StatusCreated, handler.store.AddContact(r.Context(), contact))
}

func (handler *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	var patch ContactPatch
	if !handler.decode(w, r, &patch) {
		return
	}
	handler.store.UpdateContact(r.Context(), mux.Vars(r)["id"], patch)
	handler.respond(w, http.StatusNoContent, nil)
}

func (handler *Handler) UpdateMission(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Statement string `json:"statement"`
	}
	if !handler.decode(w, r, &body) {
		return
	}
	handler.store.UpdateMission(r.Context(), body.Statement)
	handler.respond(w, http.StatusNoContent, nil)
}

func (handler *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var goal Goal
	if !handler.decode(w, r, &goal) {
		return
	}
	if goal.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}
	if goal.IsFinancial && failValidation(w, validation.Amount(goal.CurrentCost, "Current cost")) {
		return
	}
	handler.respond(w, http.StatusCreated, handler.store.AddGoal(r.Context(), goal))
}

func (handler *Handler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	var patch GoalPatch
	if !handler.decode(w, r, &patch) {
		return
	}
	handler.store.UpdateGoal(r.Context(), mux.Vars(r)["id"], patch)
	handler.respond(w, http.StatusNoContent, nil)
}

func (handler *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	handler.store.DeleteGoal(r.Context(), mux.Vars(r)["id"])
	handler.respond(w, http.StatusNoContent, nil)
}

func (handler *Handler) SetLifeGoals(w http.ResponseWriter, r *http.Request) {
	var goals []LifeGoal
	if !handler.decode(w, r, &goals) {
		return
	}
	handler.respond(w, http.StatusOK, handler.store.SetLifeGoals(r.Context(), goals))
}

func (handler *Handler) SetRiskProfile(w http.ResponseWriter, r *http.Request) {
	var profile RiskProfile
	if !handler.decode(w, r, &profile) {
		return
	}
	handler.store.SetRiskProfile(r.Context(), profile)
	handler.respond(w, http.StatusNoContent, nil)
}

func (handler *Handler) UpdateTaxProfile(w http.ResponseWriter, r *http.Request) {
	var patch TaxProfilePatch
	if !handler.decode(w, r, &patch) {
		return
	}
	handler.store.UpdateTaxProfile(r.Context(), patch)
	handler.respond(w, http.StatusNoContent, nil)
}

type cashflowReport struct {
	Year          int                `json:"year"`
	Month         int                `json:"month"`
	TotalExpenses float64            `json:"totalExpenses"`
	Breakdown     map[string]float64 `json:"breakdown"`
	Stats         IncomeStats        `json:"stats"`
	WishlistReady []WishlistItem     `json:"wishlistReady"`
}

// Cashflow reports the expense total for the requested month plus the
// all-time category breakdown and income statistics. Defaults to the
// current month.
func (handler *Handler) Cashflow(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year := now.Year()
	month := int(now.Month())
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "invalid year", http.StatusBadRequest)
			return
		}
		year = parsed
	}
	if v := r.URL.Query().Get("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			http.Error(w, "invalid month", http.StatusBadRequest)
			return
		}
		month = parsed
	}

	handler.store.Load(r.Context())
	data := handler.store.Snapshot()
	handler.respond(w, http.StatusOK, cashflowReport{
		Year:          year,
		Month:         month,
		TotalExpenses: MonthlyExpenseTotal(data.Transactions, year, time.Month(month)),
		Breakdown:     ExpenseBreakdown(data.Transactions),
		Stats:         ComputeIncomeStats(data.Transactions),
		WishlistReady: ReadyWishlist(data.Wishlist, now),
	})
}

type debtReport struct {
	DebtAnalysis
	TotalMonthlyEMI  float64 `json:"totalMonthlyEMI"`
	EMIToIncomeRatio float64 `json:"emiToIncomeRatio"`
}

// Debt reports the good/bad debt split and the EMI load against the income
// target.
func (handler *Handler) Debt(w http.ResponseWriter, r *http.Request) {
	handler.store.Load(r.Context())
	data := handler.store.Snapshot()
	totalEMI := TotalMonthlyEMI(data.Liabilities)
	handler.respond(w, http.StatusOK, debtReport{
		DebtAnalysis:     ComputeDebtAnalysis(data.Liabilities),
		TotalMonthlyEMI:  totalEMI,
		EMIToIncomeRatio: formula.EMIToIncomeRatio(totalEMI, data.IncomeTarget.Total()),
	})
}

type readinessReport struct {
	Score            int `json:"score"`
	BasicTotal       int `json:"basicTotal"`
	BasicComplete    int `json:"basicComplete"`
	AdvancedTotal    int `json:"advancedTotal"`
	AdvancedComplete int `json:"advancedComplete"`
}

// Readiness scores the financial setup checklist, half weight per tier.
func (handler *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	handler.store.Load(r.Context())
	data := handler.store.Snapshot()
	basicTotal, basicComplete, advancedTotal, advancedComplete := ToolCompletion(data.FinancialTools)
	handler.respond(w, http.StatusOK, readinessReport{
		Score:            formula.ReadinessScore(basicTotal, basicComplete, advancedTotal, advancedComplete),
		BasicTotal:       basicTotal,
		BasicComplete:    basicComplete,
		AdvancedTotal:    advancedTotal,
		AdvancedComplete: advancedComplete,
	})
}

type taxReport struct {
	OldRegime      formula.TaxResult `json:"oldRegime"`
	NewRegime      formula.TaxResult `json:"newRegime"`
	BetterRegime   TaxRegime         `json:"betterRegime"`
	AnnualSavings  float64           `json:"annualSavings"`
	SelectedRegime TaxRegime         `json:"selectedRegime"`
}

// Tax compares both regimes on the stored tax profile.
func (handler *Handler) Tax(w http.ResponseWriter, r *http.Request) {
	handler.store.Load(r.Context())
	data := handler.store.Snapshot()
	old := formula.IncomeTaxOldRegime(data.TaxProfile.Heads(), data.TaxProfile.Deductions())
	newRegime := formula.IncomeTaxNewRegime(data.TaxProfile.Heads())

	better := RegimeNew
	if old.Tax < newRegime.Tax {
		better = RegimeOld
	}
	savings := old.Tax - newRegime.Tax
	if savings < 0 {
		savings = -savings
	}
	handler.respond(w, http.StatusOK, taxReport{
		OldRegime:      old,
		NewRegime:      newRegime,
		BetterRegime:   better,
		AnnualSavings:  savings,
		SelectedRegime: data.TaxProfile.SelectedRegime,
	})
}
