package lifedata

import (
	"context"
	"encoding/json"
	"math"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/lifeos/lifeos/internal/utils"
	"github.com/lifeos/lifeos/pkg/formula"
	"github.com/lifeos/lifeos/pkg/storage"
	"github.com/lifeos/lifeos/pkg/user"
)

type LoadState string

const (
	LoadUninitialized LoadState = "Uninitialized"
	LoadLoading       LoadState = "Loading"
	LoadLoaded        LoadState = "Loaded"
)

// Store holds the whole profile behind a single mutex. Every mutation clones
// the current root, applies the change to the clone and swaps the pointer, so
// a snapshot handed out earlier never changes under its reader.
//
// Each mutation writes the serialized root to the local store before the next
// mutation can start, and pushes the same document to the remote store from a
// goroutine. Remote failures are logged and dropped.
type Store struct {
	mu       sync.Mutex
	loadOnce sync.Once
	state    LoadState
	current  *AppData

	local  storage.LocalStore
	remote storage.RemoteStore
	clock  utils.Clock
}

func NewStore(local storage.LocalStore, remote storage.RemoteStore, clock utils.Clock) *Store {
	data := DefaultAppData(clock)
	return &Store{
		state:   LoadUninitialized,
		current: &data,
		local:   local,
		remote:  remote,
		clock:   clock,
	}
}

// Load resolves the initial root exactly once: the remote document when a user
// session is present and a remote store is configured, otherwise the local
// document merged onto defaults, otherwise defaults. Unreadable or corrupt
// documents are logged and treated as absent.
func (s *Store) Load(ctx context.Context) {
	s.loadOnce.Do(func() {
		s.mu.Lock()
		s.state = LoadLoading
		s.mu.Unlock()

		data := s.resolveInitial(ctx)

		s.mu.Lock()
		s.current = &data
		s.state = LoadLoaded
		s.mu.Unlock()
	})
}

func (s *Store) resolveInitial(ctx context.Context) AppData {
	if s.remote != nil {
		if uid, err := user.CurrentUid(ctx); err == nil {
			raw, found, err := s.remote.Load(ctx, uid)
			if err != nil {
				log.Errorf("Failed to load remote data: %v", err)
			} else if found {
				var data AppData
				if err := json.Unmarshal(raw, &data); err != nil {
					log.Errorf("Failed to parse remote data: %v", err)
				} else {
					return data
				}
			}
		}
	}
	raw, found, err := s.local.Read()
	if err != nil {
		log.Errorf("Failed to read local data: %v", err)
	} else if found {
		data, err := MergeWithDefaults(raw, s.clock)
		if err != nil {
			log.Errorf("Failed to parse local data: %v", err)
		} else {
			return data
		}
	}
	return DefaultAppData(s.clock)
}

func (s *Store) State() LoadState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot returns a deep copy of the current root.
func (s *Store) Snapshot() AppData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// mutate applies a change to a clone of the current root and persists the
// result. The local write happens inside the lock so documents reach disk in
// mutation order. The initial load runs first so a mutation arriving before
// any read never overwrites the persisted document with defaults.
func (s *Store) mutate(ctx context.Context, apply func(*AppData)) {
	s.Load(ctx)

	s.mu.Lock()
	next := s.current.Clone()
	apply(&next)
	s.current = &next

	doc, err := json.Marshal(next)
	if err != nil {
		log.Errorf("Failed to serialize data: %v", err)
		s.mu.Unlock()
		return
	}
	if err := s.local.Write(doc); err != nil {
		log.Errorf("Failed to write local data: %v", err)
	}
	s.mu.Unlock()

	s.pushRemote(ctx, doc)
}

func (s *Store) pushRemote(ctx context.Context, doc []byte) {
	if s.remote == nil {
		return
	}
	uid, err := user.CurrentUid(ctx)
	if err != nil {
		return
	}
	go func() {
		if err := s.remote.Save(context.Background(), uid, doc); err != nil {
			log.Errorf("Failed to save remote data for user %s: %v", uid, err)
		}
	}()
}

func (s *Store) now() string {
	return utils.NowISO(s.clock)
}

func (s *Store) AddTask(ctx context.Context, task Task) Task {
	task.ID = uuid.NewString()
	task.Completed = false
	s.mutate(ctx, func(d *AppData) {
		d.Tasks = append(d.Tasks, task)
	})
	return task
}

func (s *Store) UpdateTask(ctx context.Context, taskID string, patch TaskPatch) {
	s.mutate(ctx, func(d *AppData) {
		for i, task := range d.Tasks {
			if task.ID == taskID {
				d.Tasks[i] = task.applyPatch(patch)
				return
			}
		}
	})
}

func (s *Store) DeleteTask(ctx context.Context, taskID string) {
	s.mutate(ctx, func(d *AppData) {
		tasks := d.Tasks[:0]
		for _, task := range d.Tasks {
			if task.ID != taskID {
				tasks = append(tasks, task)
			}
		}
		d.Tasks = tasks
	})
}

func (s *Store) AddHabit(ctx context.Context, habit Habit) Habit {
	habit.ID = uuid.NewString()
	habit.Streak = 0
	habit.History = map[string]bool{}
	s.mutate(ctx, func(d *AppData) {
		d.Habits = append(d.Habits, habit)
	})
	return habit
}

// ToggleHabit flips completion for the given day and adjusts the streak by
// one, never below zero.
func (s *Store) ToggleHabit(ctx context.Context, habitID string, date string) {
	s.mutate(ctx, func(d *AppData) {
		for i, habit := range d.Habits {
			if habit.ID == habitID {
				d.Habits[i] = habit.toggle(date)
				return
			}
		}
	})
}

// AddTransaction prepends, keeping the ledger newest first.
func (s *Store) AddTransaction(ctx context.Context, transaction Transaction) Transaction {
	transaction.ID = uuid.NewString()
	if transaction.Date == "" {
		transaction.Date = s.now()
	}
	s.mutate(ctx, func(d *AppData) {
		d.Transactions = append([]Transaction{transaction}, d.Transactions...)
	})
	return transaction
}

func (s *Store) AddWishlistItem(ctx context.Context, item WishlistItem) WishlistItem {
	item.ID = uuid.NewString()
	item.CreatedAt = s.now()
	s.mutate(ctx, func(d *AppData) {
		d.Wishlist = append(d.Wishlist, item)
	})
	return item
}

func (s *Store) DeleteWishlistItem(ctx context.Context, itemID string) {
	s.mutate(ctx, func(d *AppData) {
		items := d.Wishlist[:0]
		for _, item := range d.Wishlist {
			if item.ID != itemID {
				items = append(items, item)
			}
		}
		d.Wishlist = items
	})
}

func (s *Store) AddAsset(ctx context.Context, asset FinancialAsset) FinancialAsset {
	asset.ID = uuid.NewString()
	s.mutate(ctx, func(d *AppData) {
		d.Assets = append(d.Assets, asset)
	})
	return asset
}

// AddLiability fills in the monthly payment from the loan terms when the
// caller leaves it at zero.
func (s *Store) AddLiability(ctx context.Context, liability Liability) Liability {
	liability.ID = uuid.NewString()
	if liability.StartDate == "" {
		liability.StartDate = s.now()
	}
	if liability.MonthlyPayment == 0 &&
		liability.TotalAmount > 0 &&
		liability.TenureMonths > 0 &&
		liability.CalculationMethod != "" {
		liability.MonthlyPayment = formula.EMI(
			liability.TotalAmount,
			liability.InterestRate,
			liability.TenureMonths,
			formula.InterestMethod(liability.CalculationMethod),
		)
	}
	s.mutate(ctx, func(d *AppData) {
		d.Liabilities = append(d.Liabilities, liability)
	})
	return liability
}

// UpdateLiabilityPaidAmount records repayment progress, clamped to
// [0, totalAmount] so the outstanding balance never goes negative.
func (s *Store) UpdateLiabilityPaidAmount(ctx context.Context, liabilityID string, paidAmount float64) {
	s.mutate(ctx, func(d *AppData) {
		for i, liability := range d.Liabilities {
			if liability.ID == liabilityID {
				if paidAmount < 0 {
					paidAmount = 0
				}
				if paidAmount > liability.TotalAmount {
					paidAmount = liability.TotalAmount
				}
				liability.PaidAmount = paidAmount
				d.Liabilities[i] = liability
				return
			}
		}
	})
}

func (s *Store) DeleteLiability(ctx context.Context, liabilityID string) {
	s.mutate(ctx, func(d *AppData) {
		liabilities := d.Liabilities[:0]
		for _, liability := range d.Liabilities {
			if liability.ID != liabilityID {
				liabilities = append(liabilities, liability)
			}
		}
		d.Liabilities = liabilities
	})
}

func (s *Store) AddInsurance(ctx context.Context, policy InsurancePolicy) InsurancePolicy {
	policy.ID = uuid.NewString()
	s.mutate(ctx, func(d *AppData) {
		d.InsurancePolicies = append(d.InsurancePolicies, policy)
	})
	return policy
}

func (s *Store) DeleteInsurance(ctx context.Context, policyID string) {
	s.mutate(ctx, func(d *AppData) {
		policies := d.InsurancePolicies[:0]
		for _, policy := range d.InsurancePolicies {
			if policy.ID != policyID {
				policies = append(policies, policy)
			}
		}
		d.InsurancePolicies = policies
	})
}

func (s *Store) AddInvestment(ctx context.Context, investment Investment) Investment {
	investment.ID = uuid.NewString()
	s.mutate(ctx, func(d *AppData) {
		d.Investments = append(d.Investments, investment)
	})
	return investment
}

func (s *Store) DeleteInvestment(ctx context.Context, investmentID string) {
	s.mutate(ctx, func(d *AppData) {
		investments := d.Investments[:0]
		for _, investment := range d.Investments {
			if investment.ID != investmentID {
				investments = append(investments, investment)
			}
		}
		d.Investments = investments
	})
}

func (s *Store) UpdateFinancialTool(ctx context.Context, toolID string, patch FinancialToolPatch) {
	now := s.now()
	s.mutate(ctx, func(d *AppData) {
		for i, tool := range d.FinancialTools {
			if tool.ID == toolID {
				d.FinancialTools[i] = tool.applyPatch(patch, now)
				return
			}
		}
	})
}

// UpdateSavingsConfig derives the months multiplier and target from the
// submitted expense and risk answers, ignoring whatever the caller put there.
func (s *Store) UpdateSavingsConfig(ctx context.Context, config SavingsConfig) SavingsConfig {
	config.MonthsMultiplier = formula.EmergencyFundMultiplier(config.IsJobStable, config.HasDependents)
	config.TargetAmount = config.MonthlyExpense * float64(config.MonthsMultiplier)
	config.IsConfigured = true
	s.mutate(ctx, func(d *AppData) {
		d.SavingsConfig = config
	})
	return config
}

func (s *Store) UpdateIncomeTarget(ctx context.Context, target IncomeTarget) {
	s.mutate(ctx, func(d *AppData) {
		d.IncomeTarget = target
	})
}

func (s *Store) AddIncomeOpportunity(ctx context.Context, opportunity IncomeOpportunity) IncomeOpportunity {
	opportunity.ID = uuid.NewString()
	opportunity.Score = formula.OpportunityScore(
		opportunity.Interest,
		opportunity.Capability,
		opportunity.Effortlessness,
		opportunity.ReturnPotential,
	)
	s.mutate(ctx, func(d *AppData) {
		d.IncomeOpportunities = append(d.IncomeOpportunities, opportunity)
	})
	return opportunity
}

func (s *Store) DeleteIncomeOpportunity(ctx context.Context, opportunityID string) {
	s.mutate(ctx, func(d *AppData) {
		opportunities := d.IncomeOpportunities[:0]
		for _, opportunity := range d.IncomeOpportunities {
			if opportunity.ID != opportunityID {
				opportunities = append(opportunities, opportunity)
			}
		}
		d.IncomeOpportunities = opportunities
	})
}

func (s *Store) UpdateGrowthStrategy(ctx context.Context, patch GrowthStrategyPatch) {
	s.mutate(ctx, func(d *AppData) {
		d.GrowthStrategy = d.GrowthStrategy.applyPatch(patch)
	})
}

func (s *Store) AddContact(ctx context.Context, contact Contact) Contact {
	contact.ID = uuid.NewString()
	if contact.LastContacted == "" {
		contact.LastContacted = s.now()
	}
	s.mutate(ctx, func(d *AppData) {
		d.Contacts = append(d.Contacts, contact)
	})
	return contact
}

func (s *Store) UpdateContact(ctx context.Context, contactID string, patch ContactPatch) {
	s.mutate(ctx, func(d *AppData) {
		for i, contact := range d.Contacts {
			if contact.ID == contactID {
				d.Contacts[i] = contact.applyPatch(patch)
				return
			}
		}
	})
}

func (s *Store) UpdateMission(ctx context.Context, statement string) {
	s.mutate(ctx, func(d *AppData) {
		d.MissionStatement = statement
	})
}

// AddGoal caches the inflation-adjusted cost and required monthly SIP for
// financial goals at creation time. The expected return steps down with the
// horizon: under three years 6%, under seven 10%, beyond that 12%.
func (s *Store) AddGoal(ctx context.Context, goal Goal) Goal {
	goal.ID = uuid.NewString()
	if goal.Tier == "" {
		goal.Tier = TierFreedom
	}
	if goal.IsFinancial && goal.FutureValue == 0 && goal.CurrentCost > 0 {
		if goal.YearsAway == 0 {
			goal.YearsAway = 1
		}
		if goal.InflationRate == 0 {
			goal.InflationRate = 6
		}
		goal.FutureValue = formula.FutureValue(goal.CurrentCost, goal.InflationRate, float64(goal.YearsAway))
		goal.RequiredSIP = math.Round(formula.RequiredMonthlySIP(goal.FutureValue, expectedReturnFor(goal.YearsAway), goal.YearsAway))
		if goal.Horizon == "" {
			goal.Horizon = horizonFor(goal.YearsAway)
		}
	}
	if goal.Horizon == "" {
		goal.Horizon = HorizonOneYear
	}
	s.mutate(ctx, func(d *AppData) {
		d.Goals = append(d.Goals, goal)
	})
	return goal
}

func expectedReturnFor(yearsAway int) float64 {
	switch {
	case yearsAway < 3:
		return 6
	case yearsAway < 7:
		return 10
	default:
		return 12
	}
}

func horizonFor(yearsAway int) GoalHorizon {
	switch {
	case yearsAway > 7:
		return HorizonTenPlus
	case yearsAway > 3:
		return HorizonFiveYears
	default:
		return HorizonThreeYears
	}
}

func (s *Store) UpdateGoal(ctx context.Context, goalID string, patch GoalPatch) {
	s.mutate(ctx, func(d *AppData) {
		for i, goal := range d.Goals {
			if goal.ID == goalID {
				d.Goals[i] = goal.applyPatch(patch)
				return
			}
		}
	})
}

func (s *Store) DeleteGoal(ctx context.Context, goalID string) {
	s.mutate(ctx, func(d *AppData) {
		goals := d.Goals[:0]
		for _, goal := range d.Goals {
			if goal.ID != goalID {
				goals = append(goals, goal)
			}
		}
		d.Goals = goals
	})
}

// SetLifeGoals replaces the life goal list. The first time goals are set, a
// planning task is generated for each one so the vision shows up in the day
// view. Must-Have goals get P1 tasks, the rest P3.
func (s *Store) SetLifeGoals(ctx context.Context, goals []LifeGoal) []LifeGoal {
	for i, goal := range goals {
		if goal.ID == "" {
			goal.ID = uuid.NewString()
			goals[i] = goal
		}
	}
	s.mutate(ctx, func(d *AppData) {
		firstTime := len(d.LifeGoals) == 0 && len(goals) > 0
		d.LifeGoals = goals
		if !firstTime {
			return
		}
		for _, goal := range goals {
			priority := PriorityP3
			if goal.Type == LifeGoalMustHave {
				priority = PriorityP1
			}
			d.Tasks = append(d.Tasks, Task{
				ID:       uuid.NewString(),
				Title:    "Plan strategy for: " + goal.Title,
				Category: TaskCategoryVision,
				Priority: priority,
			})
		}
	})
	return goals
}

func (s *Store) SetRiskProfile(ctx context.Context, profile RiskProfile) {
	s.mutate(ctx, func(d *AppData) {
		d.RiskProfile = &profile
	})
}

func (s *Store) UpdateTaxProfile(ctx context.Context, patch TaxProfilePatch) {
	s.mutate(ctx, func(d *AppData) {
		d.TaxProfile = d.TaxProfile.applyPatch(patch)
	})
}
