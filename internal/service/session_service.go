package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/dafibh/budget-planner/internal/domain"
	"github.com/dafibh/budget-planner/internal/websocket"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// SessionService owns the single interactive session and its stage transitions
type SessionService struct {
	mu             sync.Mutex
	state          *domain.SessionState
	store          domain.StateStore
	incomeService  *IncomeService
	budgetService  *BudgetService
	summaryService *SummaryService
	reportService  *ReportService
	eventPublisher websocket.EventPublisher
}

// NewSessionService creates a new SessionService starting at the income stage
func NewSessionService(
	store domain.StateStore,
	incomeService *IncomeService,
	budgetService *BudgetService,
	summaryService *SummaryService,
	reportService *ReportService,
) *SessionService {
	return &SessionService{
		state:          domain.NewSessionState(),
		store:          store,
		incomeService:  incomeService,
		budgetService:  budgetService,
		summaryService: summaryService,
		reportService:  reportService,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *SessionService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// publishEvent publishes an event if a publisher is configured
func (s *SessionService) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

// State returns a copy of the current session
func (s *SessionService) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// snapshot copies the mutable drafts. Results are never mutated after creation
// and are shared. Caller must hold mu.
func (s *SessionService) snapshot() domain.SessionState {
	st := *s.state
	st.RawIncome = append([]domain.RawIncomeEntry(nil), s.state.RawIncome...)
	st.RawBudget = s.state.RawBudget.Clone()
	return st
}

// UpdateIncomeDraft stores the income form while it is being edited.
// The rows are resized to numPeople when it is positive.
func (s *SessionService) UpdateIncomeDraft(numPeople int, raw []domain.RawIncomeEntry) (domain.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Stage != domain.StageIncome {
		return domain.SessionState{}, domain.ErrInvalidTransition
	}

	s.state.NumPeople = numPeople
	s.state.RawIncome = s.incomeService.ResizeEntries(numPeople, raw)

	st := s.snapshot()
	s.publishEvent(websocket.DraftUpdated(st))
	return st, nil
}

// SubmitIncome finalizes the income form and moves to the budget stage.
// A validation failure leaves the session untouched.
func (s *SessionService) SubmitIncome(ctx context.Context, numPeople int, raw []domain.RawIncomeEntry) (*domain.IncomeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Stage != domain.StageIncome {
		return nil, domain.ErrInvalidTransition
	}

	result, err := s.incomeService.Finalize(numPeople, raw)
	if err != nil {
		log.Debug().Err(err).Int("num_people", numPeople).Msg("Income rejected")
		return nil, err
	}

	s.state.NumPeople = numPeople
	s.state.RawIncome = s.incomeService.ResizeEntries(numPeople, raw)
	s.state.Income = result
	s.state.Stage = domain.StageBudget

	s.persist(ctx, domain.IncomeStateKey, domain.IncomeBlob{
		NumPeople: numPeople,
		RawIncome: s.state.RawIncome,
		Result:    result,
	})

	log.Info().
		Str("total_income", result.TotalIncome.String()).
		Int("contributors", result.ContributorCount).
		Msg("Income finalized")

	s.publishEvent(websocket.IncomeFinalized(s.snapshot()))
	return result, nil
}

// PreviewBudget returns live totals for a draft against the finalized income
func (s *SessionService) PreviewBudget(raw domain.RawBudget) (*BudgetPreview, error) {
	s.mu.Lock()
	income := s.state.Income
	s.mu.Unlock()

	if income == nil {
		return nil, domain.ErrIncomeRequired
	}
	return s.budgetService.Preview(raw, income.TotalIncome), nil
}

// UpdateBudgetDraft replaces the budget form while it is being edited
func (s *SessionService) UpdateBudgetDraft(raw domain.RawBudget) (domain.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Stage != domain.StageBudget {
		return domain.SessionState{}, domain.ErrInvalidTransition
	}

	s.state.RawBudget = mergeDraft(raw)

	st := s.snapshot()
	s.publishEvent(websocket.DraftUpdated(st))
	return st, nil
}

// AddSubcategory appends an empty subcategory to the draft and returns its id
func (s *SessionService) AddSubcategory(categoryID domain.CategoryID) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Stage != domain.StageBudget {
		return "", domain.ErrInvalidTransition
	}

	subID, err := s.state.RawBudget.AddSubcategory(categoryID)
	if err != nil {
		return "", err
	}

	s.publishEvent(websocket.DraftUpdated(s.snapshot()))
	return subID, nil
}

// SetMain sets the single-amount field of a draft category
func (s *SessionService) SetMain(categoryID domain.CategoryID, amount string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Stage != domain.StageBudget {
		return domain.ErrInvalidTransition
	}

	if err := s.state.RawBudget.SetMain(categoryID, amount); err != nil {
		return err
	}

	s.publishEvent(websocket.DraftUpdated(s.snapshot()))
	return nil
}

// UpdateSubcategory renames and re-prices an existing draft subcategory
func (s *SessionService) UpdateSubcategory(categoryID domain.CategoryID, subID, name, amount string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Stage != domain.StageBudget {
		return domain.ErrInvalidTransition
	}

	sub := domain.RawSubcategory{Name: name, Amount: amount}
	if err := s.state.RawBudget.UpdateSubcategory(categoryID, subID, sub); err != nil {
		return err
	}

	s.publishEvent(websocket.DraftUpdated(s.snapshot()))
	return nil
}

// RemoveSubcategory deletes a subcategory from the draft
func (s *SessionService) RemoveSubcategory(categoryID domain.CategoryID, subID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Stage != domain.StageBudget {
		return domain.ErrInvalidTransition
	}

	if err := s.state.RawBudget.RemoveSubcategory(categoryID, subID); err != nil {
		return err
	}

	s.publishEvent(websocket.DraftUpdated(s.snapshot()))
	return nil
}

// SubmitBudget finalizes the budget form and moves to the dashboard.
// A nil raw budget finalizes the stored draft.
func (s *SessionService) SubmitBudget(ctx context.Context, raw domain.RawBudget) (*domain.BudgetResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Stage != domain.StageBudget {
		return nil, domain.ErrInvalidTransition
	}
	if s.state.Income == nil {
		return nil, domain.ErrIncomeRequired
	}

	if raw != nil {
		s.state.RawBudget = mergeDraft(raw)
	}

	result := s.budgetService.Finalize(s.state.RawBudget, s.state.Income.TotalIncome)
	s.state.Budget = result
	s.state.Stage = domain.StageDashboard

	s.persist(ctx, domain.BudgetStateKey, domain.BudgetBlob{
		RawBudget: s.state.RawBudget,
		Result:    result,
	})

	log.Info().
		Str("total_spent", result.TotalSpent.String()).
		Str("remaining", result.Remaining.String()).
		Msg("Budget finalized")

	s.publishEvent(websocket.BudgetFinalized(s.snapshot()))
	return result, nil
}

// Back returns from the budget stage to the income stage, keeping both drafts.
// The income blob is marked so a restart resumes on the income form.
func (s *SessionService) Back(ctx context.Context) (domain.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Stage != domain.StageBudget {
		return domain.SessionState{}, domain.ErrInvalidTransition
	}

	s.state.Stage = domain.StageIncome

	s.persist(ctx, domain.IncomeStateKey, domain.IncomeBlob{
		NumPeople: s.state.NumPeople,
		RawIncome: s.state.RawIncome,
		Result:    s.state.Income,
		Editing:   true,
	})

	st := s.snapshot()
	s.publishEvent(websocket.SessionBack(st))
	return st, nil
}

// Edit discards the finalized budget and returns to the budget stage with the
// raw entries preserved
func (s *SessionService) Edit(ctx context.Context) (domain.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Stage != domain.StageDashboard {
		return domain.SessionState{}, domain.ErrInvalidTransition
	}

	s.state.Budget = nil
	s.state.Stage = domain.StageBudget

	s.persist(ctx, domain.BudgetStateKey, domain.BudgetBlob{
		RawBudget: s.state.RawBudget,
	})

	st := s.snapshot()
	s.publishEvent(websocket.SessionEdit(st))
	return st, nil
}

// Reset clears the session from any stage and deletes both persisted blobs
func (s *SessionService) Reset(ctx context.Context) domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = domain.NewSessionState()

	for _, key := range []string{domain.IncomeStateKey, domain.BudgetStateKey} {
		if err := s.store.Delete(ctx, key); err != nil && !errors.Is(err, domain.ErrStateNotFound) {
			log.Error().Err(err).Str("key", key).Msg("Failed to delete session state")
		}
	}

	log.Info().Msg("Session reset")

	st := s.snapshot()
	s.publishEvent(websocket.SessionReset(st))
	return st
}

// Summary derives the dashboard view. It is recomputed on every call.
func (s *SessionService) Summary() (*domain.SummaryView, error) {
	income, budget, err := s.results()
	if err != nil {
		return nil, err
	}
	view := s.summaryService.Summarize(income, budget)
	return &view, nil
}

// Report projects the finalized results into report lines
func (s *SessionService) Report() (domain.ReportLines, error) {
	income, budget, err := s.results()
	if err != nil {
		return nil, err
	}
	return s.reportService.Project(income, budget), nil
}

func (s *SessionService) results() (*domain.IncomeResult, *domain.BudgetResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Income == nil {
		return nil, nil, domain.ErrIncomeRequired
	}
	if s.state.Stage != domain.StageDashboard || s.state.Budget == nil {
		return nil, nil, domain.ErrBudgetRequired
	}
	return s.state.Income, s.state.Budget, nil
}

// Restore loads persisted blobs into the session. Anything missing, malformed
// or inconsistent is treated as absent: the session resumes from the last
// stage that could be rebuilt.
func (s *SessionService) Restore(ctx context.Context) domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = domain.NewSessionState()

	var incomeBlob domain.IncomeBlob
	if !s.load(ctx, domain.IncomeStateKey, &incomeBlob) {
		return s.snapshot()
	}
	// Re-derive the result so restored totals never disagree with their entries
	income, err := s.incomeService.Finalize(incomeBlob.NumPeople, incomeBlob.RawIncome)
	if err != nil {
		log.Warn().Err(err).Msg("Discarding saved income state")
		return s.snapshot()
	}
	s.state.NumPeople = incomeBlob.NumPeople
	s.state.RawIncome = incomeBlob.RawIncome
	s.state.Income = income
	s.state.Stage = domain.StageBudget
	if incomeBlob.Editing {
		s.state.Stage = domain.StageIncome
	}

	var budgetBlob domain.BudgetBlob
	if !s.load(ctx, domain.BudgetStateKey, &budgetBlob) {
		log.Info().Str("stage", string(s.state.Stage)).Msg("Session restored")
		return s.snapshot()
	}
	s.state.RawBudget = mergeDraft(budgetBlob.RawBudget)
	if budgetBlob.Result != nil && !incomeBlob.Editing {
		s.state.Budget = s.budgetService.Finalize(s.state.RawBudget, income.TotalIncome)
		s.state.Stage = domain.StageDashboard
	}

	log.Info().Str("stage", string(s.state.Stage)).Msg("Session restored")
	return s.snapshot()
}

// load reads and decodes one blob, reporting whether it is usable
func (s *SessionService) load(ctx context.Context, key string, v interface{}) bool {
	data, err := s.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrStateNotFound) {
			log.Error().Err(err).Str("key", key).Msg("Failed to read session state")
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Ignoring malformed session state")
		return false
	}
	return true
}

// persist writes one blob. Failures are logged and not returned: the
// in-memory session stays authoritative.
func (s *SessionService) persist(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to encode session state")
		return
	}
	if err := s.store.Put(ctx, key, data); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to save session state")
	}
}

// mergeDraft copies raw onto a fresh form so every catalog category is present.
// Unknown category ids are kept out of the draft.
func mergeDraft(raw domain.RawBudget) domain.RawBudget {
	draft := domain.NewRawBudget()
	for id, st := range raw.Clone() {
		if _, ok := domain.LookupCategory(id); !ok {
			continue
		}
		if st.Subcategories == nil {
			st.Subcategories = make(map[string]domain.RawSubcategory)
		}
		draft[id] = st
	}
	return draft
}

// IncomePreview is the live income total and distribution while the form is edited
type IncomePreview struct {
	TotalIncome decimal.Decimal           `json:"totalIncome"`
	Shares      []domain.ContributorShare `json:"shares"`
}

// PreviewIncome computes the live total and chart shares without touching the session
func (s *SessionService) PreviewIncome(raw []domain.RawIncomeEntry) *IncomePreview {
	return &IncomePreview{
		TotalIncome: s.incomeService.Total(raw),
		Shares:      s.incomeService.PreviewShares(raw),
	}
}
