package formula

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/lifeos/lifeos/pkg/validation"
	log "github.com/sirupsen/logrus"
)

// Handler exposes the calculator endpoints used by the dashboard forms.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func queryFloat(r *http.Request, name string) (float64, bool) {
	raw := r.URL.Query().Get(name)
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func queryInt(r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Errorf("failed to encode response: %v", err)
	}
}

// CalculateEMI handles GET /api/calculator/emi?principal=&rate=&tenure=&method=
func (h *Handler) CalculateEMI(w http.ResponseWriter, r *http.Request) {
	principal, ok := queryFloat(r, "principal")
	if !ok {
		http.Error(w, "invalid principal", http.StatusBadRequest)
		return
	}
	rate, ok := queryFloat(r, "rate")
	if !ok {
		http.Error(w, "invalid rate", http.StatusBadRequest)
		return
	}
	tenure, ok := queryInt(r, "tenure")
	if !ok {
		http.Error(w, "invalid tenure", http.StatusBadRequest)
		return
	}

	if result := validation.InterestRate(rate); !result.Valid {
		http.Error(w, result.Error, http.StatusBadRequest)
		return
	}
	if result := validation.Tenure(tenure); !result.Valid {
		http.Error(w, result.Error, http.StatusBadRequest)
		return
	}

	method := MethodReducing
	if r.URL.Query().Get("method") == "flat" {
		method = MethodFlat
	}

	writeJSON(w, map[string]float64{"emi": EMI(principal, rate, tenure, method)})
}

// CalculateFutureValue handles GET /api/calculator/future-value?presentValue=&rate=&years=
func (h *Handler) CalculateFutureValue(w http.ResponseWriter, r *http.Request) {
	presentValue, ok := queryFloat(r, "presentValue")
	if !ok {
		http.Error(w, "invalid presentValue", http.StatusBadRequest)
		return
	}
	rate, ok := queryFloat(r, "rate")
	if !ok {
		http.Error(w, "invalid rate", http.StatusBadRequest)
		return
	}
	years, ok := queryFloat(r, "years")
	if !ok {
		http.Error(w, "invalid years", http.StatusBadRequest)
		return
	}

	writeJSON(w, map[string]float64{"futureValue": FutureValue(presentValue, rate, years)})
}

// CalculateSIP handles GET /api/calculator/sip?futureValue=&rate=&years=
func (h *Handler) CalculateSIP(w http.ResponseWriter, r *http.Request) {
	futureValue, ok := queryFloat(r, "futureValue")
	if !ok {
		http.Error(w, "invalid futureValue", http.StatusBadRequest)
		return
	}
	rate, ok := queryFloat(r, "rate")
	if !ok {
		http.Error(w, "invalid rate", http.StatusBadRequest)
		return
	}
	years, ok := queryInt(r, "years")
	if !ok {
		http.Error(w, "invalid years", http.StatusBadRequest)
		return
	}

	writeJSON(w, map[string]float64{"requiredMonthlySIP": RequiredMonthlySIP(futureValue, rate, years)})
}

type taxComparisonRequest struct {
	Salary             float64 `json:"salary"`
	HouseProperty      float64 `json:"houseProperty"`
	BusinessProfession float64 `json:"businessProfession"`
	CapitalGains       float64 `json:"capitalGains"`
	OtherSources       float64 `json:"otherSources"`
	Deduction80C       float64 `json:"deduction80C"`
	Deduction80D       float64 `json:"deduction80D"`
	Deduction80CCD     float64 `json:"deduction80CCD"`
	HRAExemption       float64 `json:"hraExemption"`
	HomeLoanInterest   float64 `json:"homeLoanInterest"`
}

type taxComparisonResponse struct {
	OldRegime     TaxResult `json:"oldRegime"`
	NewRegime     TaxResult `json:"newRegime"`
	BetterRegime  string    `json:"betterRegime"`
	AnnualSavings float64   `json:"annualSavings"`
}

// CompareTaxRegimes handles POST /api/calculator/tax-regimes.
func (h *Handler) CompareTaxRegimes(w http.ResponseWriter, r *http.Request) {
	var req taxComparisonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	heads := IncomeHeads{
		Salary:             req.Salary,
		HouseProperty:      req.HouseProperty,
		BusinessProfession: req.BusinessProfession,
		CapitalGains:       req.CapitalGains,
		OtherSources:       req.OtherSources,
	}
	deductions := Deductions{
		Section80C:       req.Deduction80C,
		Section80D:       req.Deduction80D,
		Section80CCD:     req.Deduction80CCD,
		HRAExemption:     req.HRAExemption,
		HomeLoanInterest: req.HomeLoanInterest,
	}

	oldResult := IncomeTaxOldRegime(heads, deductions)
	newResult := IncomeTaxNewRegime(heads)

	better := "New Regime"
	if oldResult.Tax < newResult.Tax {
		better = "Old Regime"
	}
	savings := oldResult.Tax - newResult.Tax
	if savings < 0 {
		savings = -savings
	}

	writeJSON(w, taxComparisonResponse{
		OldRegime:     oldResult,
		NewRegime:     newResult,
		BetterRegime:  better,
		AnnualSavings: savings,
	})
}
