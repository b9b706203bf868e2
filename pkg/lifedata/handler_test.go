package lifedata

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandlerTest() (*Handler, *Store) {
	store, _, _, _ := newTestStore()
	return NewHandler(store), store
}

func TestHandlerCreateTask(t *testing.T) {
	handler, store := setupHandlerTest()

	t.Run("creates a task and returns it with a server id", func(t *testing.T) {
		body := bytes.NewBufferString(`{"title":"Book dentist","category":"Personal","priority":"P3"}`)
		req := httptest.NewRequest("POST", "/api/task", body)
		rec := httptest.NewRecorder()

		handler.CreateTask(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var created Task
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Book dentist", created.Title)

		_, ok := store.Snapshot().FindTask(created.ID)
		assert.True(t, ok)
	})

	t.Run("rejects a task without a title", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/task", bytes.NewBufferString(`{"category":"Personal"}`))
		rec := httptest.NewRecorder()

		handler.CreateTask(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandlerCreateLiabilityValidation(t *testing.T) {
	handler, store := setupHandlerTest()
	liabilitiesBefore := len(store.Snapshot().Liabilities)

	t.Run("rejects an out-of-range interest rate", func(t *testing.T) {
		body := bytes.NewBufferString(`{"name":"Shark Loan","totalAmount":10000,"interestRate":75,"tenureMonths":24}`)
		req := httptest.NewRequest("POST", "/api/liability", body)
		rec := httptest.NewRecorder()

		handler.CreateLiability(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Len(t, store.Snapshot().Liabilities, liabilitiesBefore)
	})

	t.Run("rejects a zero tenure", func(t *testing.T) {
		body := bytes.NewBufferString(`{"name":"No Tenure","totalAmount":10000,"interestRate":8,"tenureMonths":0}`)
		req := httptest.NewRequest("POST", "/api/liability", body)
		rec := httptest.NewRecorder()

		handler.CreateLiability(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("accepts a valid liability", func(t *testing.T) {
		body := bytes.NewBufferString(`{"name":"Bike Loan","totalAmount":80000,"interestRate":9.5,"tenureMonths":36,"calculationMethod":"Reducing Balance"}`)
		req := httptest.NewRequest("POST", "/api/liability", body)
		rec := httptest.NewRecorder()

		handler.CreateLiability(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var created Liability
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Greater(t, created.MonthlyPayment, 0.0)
	})
}

func TestHandlerToggleHabitThroughRouter(t *testing.T) {
	handler, store := setupHandlerTest()
	habits := store.Snapshot().Habits
	require.NotEmpty(t, habits)

	r := mux.NewRouter()
	r.HandleFunc("/api/habit/{id}/toggle", handler.ToggleHabit).Methods("POST")

	body := bytes.NewBufferString(`{"date":"2026-03-01"}`)
	req := httptest.NewRequest("POST", "/api/habit/"+habits[0].ID+"/toggle", body)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	toggled, ok := store.Snapshot().FindHabit(habits[0].ID)
	require.True(t, ok)
	assert.True(t, toggled.History["2026-03-01"])
	assert.Equal(t, habits[0].Streak+1, toggled.Streak)
}

func TestHandlerTaxReport(t *testing.T) {
	handler, store := setupHandlerTest()
	salary := 1_500_000.0
	store.UpdateTaxProfile(httptest.NewRequest("GET", "/", nil).Context(), TaxProfilePatch{Salary: &salary})

	req := httptest.NewRequest("GET", "/api/report/tax", nil)
	rec := httptest.NewRecorder()

	handler.Tax(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var report struct {
		OldRegime struct {
			Tax float64 `json:"tax"`
		} `json:"oldRegime"`
		NewRegime struct {
			Tax float64 `json:"tax"`
		} `json:"newRegime"`
		BetterRegime  string  `json:"betterRegime"`
		AnnualSavings float64 `json:"annualSavings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.InDelta(t, 257400, report.OldRegime.Tax, 0.5)
	assert.InDelta(t, 130000, report.NewRegime.Tax, 0.5)
	assert.Equal(t, "New Regime", report.BetterRegime)
	assert.InDelta(t, 127400, report.AnnualSavings, 1.0)
}
