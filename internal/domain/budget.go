package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RawSubcategory is a subcategory row as typed into the budget form
type RawSubcategory struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// RawCategoryState is the form state of one category
type RawCategoryState struct {
	Main          string                    `json:"main"`
	Subcategories map[string]RawSubcategory `json:"subcategories"`
}

// RawBudget is the whole budget form, keyed by category id
type RawBudget map[CategoryID]RawCategoryState

// NewRawBudget returns an empty form with every catalog category present
func NewRawBudget() RawBudget {
	raw := make(RawBudget, len(catalog))
	for _, def := range catalog {
		raw[def.ID] = RawCategoryState{Subcategories: make(map[string]RawSubcategory)}
	}
	return raw
}

func (b RawBudget) state(id CategoryID) (CategoryDefinition, RawCategoryState, error) {
	def, ok := LookupCategory(id)
	if !ok {
		return CategoryDefinition{}, RawCategoryState{}, ErrUnknownCategory
	}
	st := b[id]
	if st.Subcategories == nil {
		st.Subcategories = make(map[string]RawSubcategory)
	}
	return def, st, nil
}

// SetMain sets the single-amount field of a category
func (b RawBudget) SetMain(id CategoryID, amount string) error {
	_, st, err := b.state(id)
	if err != nil {
		return err
	}
	st.Main = amount
	b[id] = st
	return nil
}

// AddSubcategory appends an empty subcategory to a category and returns its id
func (b RawBudget) AddSubcategory(id CategoryID) (string, error) {
	def, st, err := b.state(id)
	if err != nil {
		return "", err
	}
	if !def.AllowsSubcategories {
		return "", ErrSubcategoriesNotAllowed
	}
	subID := "sub_" + newSubcategoryID()
	st.Subcategories[subID] = RawSubcategory{}
	b[id] = st
	return subID, nil
}

// UpdateSubcategory replaces the name and amount of an existing subcategory
func (b RawBudget) UpdateSubcategory(id CategoryID, subID string, sub RawSubcategory) error {
	_, st, err := b.state(id)
	if err != nil {
		return err
	}
	if _, ok := st.Subcategories[subID]; !ok {
		return ErrSubcategoryNotFound
	}
	st.Subcategories[subID] = sub
	b[id] = st
	return nil
}

// RemoveSubcategory deletes a subcategory by id
func (b RawBudget) RemoveSubcategory(id CategoryID, subID string) error {
	_, st, err := b.state(id)
	if err != nil {
		return err
	}
	if _, ok := st.Subcategories[subID]; !ok {
		return ErrSubcategoryNotFound
	}
	delete(st.Subcategories, subID)
	b[id] = st
	return nil
}

// Clone returns a deep copy so drafts can be edited without touching saved state
func (b RawBudget) Clone() RawBudget {
	if b == nil {
		return nil
	}
	out := make(RawBudget, len(b))
	for id, st := range b {
		subs := make(map[string]RawSubcategory, len(st.Subcategories))
		for k, v := range st.Subcategories {
			subs[k] = v
		}
		out[id] = RawCategoryState{Main: st.Main, Subcategories: subs}
	}
	return out
}

// newSubcategoryID returns a time-ordered id so that sorting by id follows creation order
func newSubcategoryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// SubcategoryEntry is a named line item owned by its parent category
type SubcategoryEntry struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// CategoryResult holds the finalized amounts for one category.
// Total is the sum of Subcategories when the category allows them, MainAmount otherwise.
type CategoryResult struct {
	Definition    CategoryDefinition          `json:"definition"`
	MainAmount    decimal.Decimal             `json:"mainAmount"`
	Subcategories map[string]SubcategoryEntry `json:"subcategories"`
	Total         decimal.Decimal             `json:"total"`
}

// BudgetResult is produced once per session when budget entry is finalized
type BudgetResult struct {
	Categories  map[CategoryID]*CategoryResult `json:"categories"`
	TotalSpent  decimal.Decimal                `json:"totalSpent"`
	TotalIncome decimal.Decimal                `json:"totalIncome"`
	Remaining   decimal.Decimal                `json:"remaining"`
}

// Category returns the result for id, or an empty result for the catalog entry
func (b *BudgetResult) Category(id CategoryID) *CategoryResult {
	if cat, ok := b.Categories[id]; ok && cat != nil {
		return cat
	}
	def, _ := LookupCategory(id)
	return &CategoryResult{
		Definition:    def,
		Subcategories: map[string]SubcategoryEntry{},
	}
}
