package domain

import "context"

// Stage is a step of the budgeting form-flow
type Stage string

const (
	StageIncome    Stage = "income"
	StageBudget    Stage = "budget"
	StageDashboard Stage = "dashboard"
)

// Persistence keys for the two independently stored blobs
const (
	IncomeStateKey = "budgetIncomeData"
	BudgetStateKey = "budgetData"
)

// SessionState is the whole interactive session. Raw drafts are kept so that
// Back/Edit can return to a stage with the previous entries preserved.
type SessionState struct {
	Stage     Stage            `json:"stage"`
	NumPeople int              `json:"numPeople"`
	RawIncome []RawIncomeEntry `json:"rawIncome"`
	Income    *IncomeResult    `json:"income,omitempty"`
	RawBudget RawBudget        `json:"rawBudget"`
	Budget    *BudgetResult    `json:"budget,omitempty"`
}

// NewSessionState returns the initial state: income stage with one blank row
func NewSessionState() *SessionState {
	return &SessionState{
		Stage:     StageIncome,
		RawIncome: []RawIncomeEntry{{}},
		RawBudget: NewRawBudget(),
	}
}

// IncomeBlob is the persisted income stage. Editing marks a session that went
// back to the income form after finalizing it.
type IncomeBlob struct {
	NumPeople int              `json:"numPeople"`
	RawIncome []RawIncomeEntry `json:"rawIncome"`
	Result    *IncomeResult    `json:"result"`
	Editing   bool             `json:"editing,omitempty"`
}

// BudgetBlob is the persisted budget stage
type BudgetBlob struct {
	RawBudget RawBudget     `json:"rawBudget"`
	Result    *BudgetResult `json:"result"`
}

// StateStore is a simple key-value persistence surface
type StateStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
