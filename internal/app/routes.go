package app

import (
	"github.com/gorilla/mux"

	"github.com/lifeos/lifeos/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Whole document
	r.HandleFunc("/api/data", deps.DataHandler.GetData).Methods("GET")

	// Tasks
	r.HandleFunc("/api/task", deps.DataHandler.CreateTask).Methods("POST")
	r.HandleFunc("/api/task/{id}", deps.DataHandler.UpdateTask).Methods("PATCH")
	r.HandleFunc("/api/task/{id}", deps.DataHandler.DeleteTask).Methods("DELETE")

	// Habits
	r.HandleFunc("/api/habit", deps.DataHandler.CreateHabit).Methods("POST")
	r.HandleFunc("/api/habit/{id}/toggle", deps.DataHandler.ToggleHabit).Methods("POST")

	// Cashflow
	r.HandleFunc("/api/transaction", deps.DataHandler.CreateTransaction).Methods("POST")
	r.HandleFunc("/api/wishlist", deps.DataHandler.CreateWishlistItem).Methods("POST")
	r.HandleFunc("/api/wishlist/{id}", deps.DataHandler.DeleteWishlistItem).Methods("DELETE")

	// Net worth
	r.HandleFunc("/api/asset", deps.DataHandler.CreateAsset).Methods("POST")
	r.HandleFunc("/api/liability", deps.DataHandler.CreateLiability).Methods("POST")
	r.HandleFunc("/api/liability/{id}/paid", deps.DataHandler.UpdateLiabilityPaidAmount).Methods("PATCH")
	r.HandleFunc("/api/liability/{id}", deps.DataHandler.DeleteLiability).Methods("DELETE")
	r.HandleFunc("/api/insurance", deps.DataHandler.CreateInsurance).Methods("POST")
	r.HandleFunc("/api/insurance/{id}", deps.DataHandler.DeleteInsurance).Methods("DELETE")
	r.HandleFunc("/api/investment", deps.DataHandler.CreateInvestment).Methods("POST")
	r.HandleFunc("/api/investment/{id}", deps.DataHandler.DeleteInvestment).Methods("DELETE")

	// Financial setup
	r.HandleFunc("/api/tool/{id}", deps.DataHandler.UpdateFinancialTool).Methods("PATCH")
	r.HandleFunc("/api/savings-config", deps.DataHandler.UpdateSavingsConfig).Methods("PUT")

	// Income planning
	r.HandleFunc("/api/income-target", deps.DataHandler.UpdateIncomeTarget).Methods("PUT")
	r.HandleFunc("/api/income-opportunity", deps.DataHandler.CreateIncomeOpportunity).Methods("POST")
	r.HandleFunc("/api/income-opportunity/{id}", deps.DataHandler.DeleteIncomeOpportunity).Methods("DELETE")
	r.HandleFunc("/api/growth-strategy", deps.DataHandler.UpdateGrowthStrategy).Methods("PATCH")

	// Contacts
	r.HandleFunc("/api/contact", deps.DataHandler.CreateContact).Methods("POST")
	r.HandleFunc("/api/contact/{id}", deps.DataHandler.UpdateContact).Methods("PATCH")

	// Vision and goals
	r.HandleFunc("/api/mission", deps.DataHandler.UpdateMission).Methods("PUT")
	r.HandleFunc("/api/goal", deps.DataHandler.CreateGoal).Methods("POST")
	r.HandleFunc("/api/goal/{id}", deps.DataHandler.UpdateGoal).Methods("PATCH")
	r.HandleFunc("/api/goal/{id}", deps.DataHandler.DeleteGoal).Methods("DELETE")
	r.HandleFunc("/api/life-goals", deps.DataHandler.SetLifeGoals).Methods("PUT")
	r.HandleFunc("/api/risk-profile", deps.DataHandler.SetRiskProfile).Methods("PUT")

	// Tax
	r.HandleFunc("/api/tax-profile", deps.DataHandler.UpdateTaxProfile).Methods("PATCH")

	// Reports
	r.HandleFunc("/api/report/cashflow", deps.DataHandler.Cashflow).Methods("GET")
	r.HandleFunc("/api/report/debt", deps.DataHandler.Debt).Methods("GET")
	r.HandleFunc("/api/report/readiness", deps.DataHandler.Readiness).Methods("GET")
	r.HandleFunc("/api/report/tax", deps.DataHandler.Tax).Methods("GET")

	// Calculators
	r.HandleFunc("/api/calculator/emi", deps.FormulaHandler.CalculateEMI).Methods("GET")
	r.HandleFunc("/api/calculator/future-value", deps.FormulaHandler.CalculateFutureValue).Methods("GET")
	r.HandleFunc("/api/calculator/sip", deps.FormulaHandler.CalculateSIP).Methods("GET")
	r.HandleFunc("/api/calculator/tax-regimes", deps.FormulaHandler.CompareTaxRegimes).Methods("POST")

	// Assistant
	r.HandleFunc("/api/assistant/insights", deps.AssistantHandler.Insights).Methods("POST")
	r.HandleFunc("/api/assistant/chat", deps.AssistantHandler.Chat).Methods("POST")
}
