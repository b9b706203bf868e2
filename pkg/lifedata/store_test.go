package lifedata

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeos/lifeos/internal/utils"
	"github.com/lifeos/lifeos/pkg/storage"
	"github.com/lifeos/lifeos/pkg/user"
)

func newTestStore() (*Store, *storage.StubLocalStore, *storage.StubRemoteStore, *utils.MockClock) {
	local := storage.NewStubLocalStore()
	remote := storage.NewStubRemoteStore()
	clock := &utils.MockClock{FixedNow: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)}
	return NewStore(local, remote, clock), local, remote, clock
}

func TestStoreSnapshotIsolation(t *testing.T) {
	store, _, _, _ := newTestStore()
	ctx := context.Background()

	before := store.Snapshot()
	tasksBefore := len(before.Tasks)

	created := store.AddTask(ctx, Task{Title: "Write monthly review", Category: TaskCategoryPersonal, Priority: PriorityP2})
	after := store.Snapshot()

	assert.Len(t, before.Tasks, tasksBefore)
	assert.Len(t, after.Tasks, tasksBefore+1)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.Completed)

	// a held snapshot must not see later changes, even through shared maps
	held := store.Snapshot()
	habit := store.AddHabit(ctx, Habit{Title: "Journal", Category: "Personal"})
	store.ToggleHabit(ctx, habit.ID, "2026-03-01")
	assert.Len(t, held.Habits, len(before.Habits))
	for _, h := range held.Habits {
		assert.NotContains(t, h.History, "2026-03-01")
	}
}

func TestStoreAddLiability(t *testing.T) {
	ctx := context.Background()

	t.Run("computes monthly payment from loan terms when omitted", func(t *testing.T) {
		store, _, _, _ := newTestStore()

		created := store.AddLiability(ctx, Liability{
			Name:              "Car Loan",
			TotalAmount:       15000,
			InterestRate:      8.5,
			TenureMonths:      60,
			Purpose:           LoanConsumption,
			Collateral:        LoanSecured,
			Structure:         LoanTerm,
			CalculationMethod: InterestReducing,
			RateType:          RateFixed,
			LoanType:          LoanTypeCar,
		})

		assert.InDelta(t, 307.75, created.MonthlyPayment, 1.0)
		assert.NotEmpty(t, created.StartDate)
	})

	t.Run("keeps an explicit monthly payment", func(t *testing.T) {
		store, _, _, _ := newTestStore()

		created := store.AddLiability(ctx, Liability{
			Name:              "Family Loan",
			TotalAmount:       10000,
			MonthlyPayment:    200,
			InterestRate:      4,
			TenureMonths:      48,
			CalculationMethod: InterestReducing,
		})

		assert.Equal(t, 200.0, created.MonthlyPayment)
	})

	t.Run("computes a payment for an interest-free loan", func(t *testing.T) {
		store, _, _, _ := newTestStore()

		created := store.AddLiability(ctx, Liability{
			Name:              "Laptop EMI",
			TotalAmount:       1200,
			InterestRate:      0,
			TenureMonths:      12,
			CalculationMethod: InterestReducing,
		})

		assert.Equal(t, 100.0, created.MonthlyPayment)
	})
}

func TestStoreUpdateLiabilityPaidAmount(t *testing.T) {
	store, _, _, _ := newTestStore()
	ctx := context.Background()

	created := store.AddLiability(ctx, Liability{
		Name:              "Bike Loan",
		TotalAmount:       80000,
		InterestRate:      9.5,
		TenureMonths:      36,
		CalculationMethod: InterestReducing,
	})

	current := func() Liability {
		for _, liability := range store.Snapshot().Liabilities {
			if liability.ID == created.ID {
				return liability
			}
		}
		t.Fatalf("liability %s not found", created.ID)
		return Liability{}
	}

	t.Run("records repayment progress", func(t *testing.T) {
		store.UpdateLiabilityPaidAmount(ctx, created.ID, 20000)
		liability := current()
		assert.Equal(t, 20000.0, liability.PaidAmount)
		assert.Equal(t, 60000.0, liability.Outstanding())
	})

	t.Run("clamps an overpayment to the total amount", func(t *testing.T) {
		store.UpdateLiabilityPaidAmount(ctx, created.ID, 999999)
		liability := current()
		assert.Equal(t, 80000.0, liability.PaidAmount)
		assert.Equal(t, 0.0, liability.Outstanding())
	})

	t.Run("floors a negative amount at zero", func(t *testing.T) {
		store.UpdateLiabilityPaidAmount(ctx, created.ID, -500)
		assert.Equal(t, 0.0, current().PaidAmount)
	})
}

func TestStoreAddGoalCachesProjection(t *testing.T) {
	store, _, _, _ := newTestStore()
	ctx := context.Background()

	created := store.AddGoal(ctx, Goal{
		Title:         "House Down Payment",
		IsFinancial:   true,
		CurrentCost:   500000,
		YearsAway:     5,
		InflationRate: 6,
		Tier:          TierLifestyle,
	})

	// 500000 at 6% inflation over 5 years, funded at a 10% expected return
	assert.InDelta(t, 669112.79, created.FutureValue, 1.0)
	assert.InDelta(t, 8641, created.RequiredSIP, 2.0)
	assert.Equal(t, HorizonFiveYears, created.Horizon)
	assert.Equal(t, TierLifestyle, created.Tier)

	resolved, ok := store.Snapshot().ResolveGoal(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, resolved)
}

func TestStoreToggleHabit(t *testing.T) {
	store, _, _, _ := newTestStore()
	ctx := context.Background()

	habit := store.AddHabit(ctx, Habit{Title: "Morning Run", Category: "Wellness"})

	store.ToggleHabit(ctx, habit.ID, "2026-03-01")
	current, ok := store.Snapshot().FindHabit(habit.ID)
	require.True(t, ok)
	assert.Equal(t, 1, current.Streak)
	assert.True(t, current.History["2026-03-01"])

	store.ToggleHabit(ctx, habit.ID, "2026-03-01")
	current, _ = store.Snapshot().FindHabit(habit.ID)
	assert.Equal(t, 0, current.Streak)
	assert.False(t, current.History["2026-03-01"])

	// turning a day off never drives the streak negative
	floored := Habit{Streak: 0, History: map[string]bool{"2026-02-28": true}}.toggle("2026-02-28")
	assert.Equal(t, 0, floored.Streak)
}

func TestStorePersistsEveryMutationLocally(t *testing.T) {
	store, local, _, _ := newTestStore()
	ctx := context.Background()

	store.AddTask(ctx, Task{Title: "One"})
	store.AddTask(ctx, Task{Title: "Two"})
	store.UpdateMission(ctx, "Simplify.")

	assert.Equal(t, 3, local.Writes)

	var persisted AppData
	require.NoError(t, json.Unmarshal(local.Document(), &persisted))
	assert.Equal(t, "Simplify.", persisted.MissionStatement)
	assert.Equal(t, store.Snapshot().Tasks, persisted.Tasks)
}

func TestStorePushesMutationsToRemote(t *testing.T) {
	store, _, remote, _ := newTestStore()
	ctx := user.WithUser(context.Background(), user.User{Uid: "user-1"})

	store.UpdateMission(ctx, "Remote mission")

	assert.Eventually(t, func() bool {
		doc, ok := remote.Record("user-1")
		if !ok {
			return false
		}
		var persisted AppData
		return json.Unmarshal(doc, &persisted) == nil && persisted.MissionStatement == "Remote mission"
	}, time.Second, 10*time.Millisecond)
}

func TestStoreRemoteFailureIsDropped(t *testing.T) {
	store, local, remote, _ := newTestStore()
	remote.SaveErr = assert.AnError
	ctx := user.WithUser(context.Background(), user.User{Uid: "user-1"})

	store.UpdateMission(ctx, "Still works")

	assert.Equal(t, 1, local.Writes)
	assert.Equal(t, "Still works", store.Snapshot().MissionStatement)
}

func TestStoreLoad(t *testing.T) {
	t.Run("prefers the remote document when a session is present", func(t *testing.T) {
		store, local, remote, _ := newTestStore()
		local.Seed([]byte(`{"missionStatement":"from local"}`))
		remote.Seed("user-1", []byte(`{"missionStatement":"from remote"}`))
		ctx := user.WithUser(context.Background(), user.User{Uid: "user-1"})

		store.Load(ctx)

		assert.Equal(t, LoadLoaded, store.State())
		assert.Equal(t, "from remote", store.Snapshot().MissionStatement)
	})

	t.Run("merges the local document onto defaults without a session", func(t *testing.T) {
		store, local, _, _ := newTestStore()
		local.Seed([]byte(`{"missionStatement":"from local","goals":[{"id":"g1","title":"Sabbatical","isFinancial":true}]}`))

		store.Load(context.Background())

		data := store.Snapshot()
		assert.Equal(t, "from local", data.MissionStatement)
		// sections absent from the stored document keep their defaults
		assert.Len(t, data.Tasks, 3)
		require.Len(t, data.Goals, 1)
		assert.Equal(t, 1, data.Goals[0].YearsAway)
		assert.Equal(t, 6.0, data.Goals[0].InflationRate)
		assert.Equal(t, TierFreedom, data.Goals[0].Tier)
	})

	t.Run("starts from defaults when nothing is stored", func(t *testing.T) {
		store, _, _, clock := newTestStore()

		store.Load(context.Background())

		assert.Equal(t, LoadLoaded, store.State())
		assert.Equal(t, DefaultAppData(clock), store.Snapshot())
	})

	t.Run("falls back to defaults when the local document is corrupt", func(t *testing.T) {
		store, local, _, clock := newTestStore()
		local.Seed([]byte(`{"tasks": [broken`))

		store.Load(context.Background())

		assert.Equal(t, LoadLoaded, store.State())
		assert.Equal(t, DefaultAppData(clock), store.Snapshot())
	})

	t.Run("runs only once", func(t *testing.T) {
		store, local, _, _ := newTestStore()

		store.Load(context.Background())
		local.Seed([]byte(`{"missionStatement":"late arrival"}`))
		store.Load(context.Background())

		assert.NotEqual(t, "late arrival", store.Snapshot().MissionStatement)
	})
}

func TestStoreMutationLoadsPersistedStateFirst(t *testing.T) {
	first, local, _, clock := newTestStore()
	ctx := context.Background()

	existing := first.AddTask(ctx, Task{Title: "Existing task"})
	first.UpdateMission(ctx, "Persisted mission")

	// a fresh process mutating before anything triggered a read must not
	// overwrite the stored document with defaults
	second := NewStore(local, nil, clock)
	created := second.AddTask(ctx, Task{Title: "New task"})

	data := second.Snapshot()
	assert.Equal(t, "Persisted mission", data.MissionStatement)
	_, ok := data.FindTask(existing.ID)
	assert.True(t, ok)
	_, ok = data.FindTask(created.ID)
	assert.True(t, ok)

	var persisted AppData
	require.NoError(t, json.Unmarshal(local.Document(), &persisted))
	assert.Equal(t, "Persisted mission", persisted.MissionStatement)
	_, ok = persisted.FindTask(existing.ID)
	assert.True(t, ok)
}

func TestStoreRoundTrip(t *testing.T) {
	first, local, _, clock := newTestStore()
	ctx := context.Background()

	first.AddTask(ctx, Task{Title: "Renew passport", Category: TaskCategoryPersonal, Priority: PriorityP2})
	first.AddTransaction(ctx, Transaction{Amount: 900, Description: "Freelance gig", Type: TransactionIncome, Category: "Side Income"})
	first.UpdateMission(ctx, "Round trip")

	second := NewStore(local, nil, clock)
	second.Load(ctx)

	want := first.Snapshot()
	got := second.Snapshot()
	assert.Equal(t, want.Tasks, got.Tasks)
	assert.Equal(t, want.Transactions, got.Transactions)
	assert.Equal(t, want.MissionStatement, got.MissionStatement)
	assert.Equal(t, want.FinancialTools, got.FinancialTools)
	assert.Equal(t, want.TaxProfile, got.TaxProfile)
}

func TestStoreSetLifeGoals(t *testing.T) {
	store, _, _, _ := newTestStore()
	ctx := context.Background()
	tasksBefore := len(store.Snapshot().Tasks)

	goals := store.SetLifeGoals(ctx, []LifeGoal{
		{Title: "Financial independence", Type: LifeGoalMustHave},
		{Title: "Learn the piano", Type: LifeGoalGoodToHave},
	})

	data := store.Snapshot()
	require.Len(t, data.LifeGoals, 2)
	assert.NotEmpty(t, goals[0].ID)
	require.Len(t, data.Tasks, tasksBefore+2)

	generated := data.Tasks[tasksBefore:]
	assert.Equal(t, "Plan strategy for: Financial independence", generated[0].Title)
	assert.Equal(t, PriorityP1, generated[0].Priority)
	assert.Equal(t, TaskCategoryVision, generated[0].Category)
	assert.Equal(t, "Plan strategy for: Learn the piano", generated[1].Title)
	assert.Equal(t, PriorityP3, generated[1].Priority)

	// replacing an already populated list does not generate more tasks
	store.SetLifeGoals(ctx, []LifeGoal{{Title: "Run a marathon", Type: LifeGoalGoodToHave}})
	assert.Len(t, store.Snapshot().Tasks, tasksBefore+2)
}

func TestStoreUpdateSavingsConfig(t *testing.T) {
	store, _, _, _ := newTestStore()
	ctx := context.Background()

	updated := store.UpdateSavingsConfig(ctx, SavingsConfig{
		MonthlyExpense: 2000,
		IsJobStable:    false,
		HasDependents:  true,
	})

	assert.Equal(t, 12, updated.MonthsMultiplier)
	assert.Equal(t, 24000.0, updated.TargetAmount)
	assert.True(t, updated.IsConfigured)
}

func TestStoreAddTransactionOrder(t *testing.T) {
	store, _, _, _ := newTestStore()
	ctx := context.Background()

	store.AddTransaction(ctx, Transaction{Amount: 10, Description: "first", Type: TransactionExpense, Category: "Misc"})
	store.AddTransaction(ctx, Transaction{Amount: 20, Description: "second", Type: TransactionExpense, Category: "Misc"})

	transactions := store.Snapshot().Transactions
	assert.Equal(t, "second", transactions[0].Description)
	assert.Equal(t, "first", transactions[1].Description)
}

func TestStoreAddIncomeOpportunityScore(t *testing.T) {
	store, _, _, _ := newTestStore()
	ctx := context.Background()

	created := store.AddIncomeOpportunity(ctx, IncomeOpportunity{
		Name:            "Weekend workshops",
		Interest:        4,
		Capability:      3,
		Effortlessness:  2,
		ReturnPotential: 5,
	})

	assert.Equal(t, 14, created.Score)
}
