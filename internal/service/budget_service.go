package service

import (
	"github.com/dafibh/budget-planner/internal/domain"
	"github.com/dafibh/budget-planner/internal/util"
	"github.com/shopspring/decimal"
)

// BudgetService normalizes per-category spend entries into a BudgetResult
type BudgetService struct{}

// NewBudgetService creates a new BudgetService
func NewBudgetService() *BudgetService {
	return &BudgetService{}
}

// BudgetPreview contains the live totals shown while the budget form is edited
type BudgetPreview struct {
	CategoryTotals map[domain.CategoryID]decimal.Decimal `json:"categoryTotals"`
	TotalSpent     decimal.Decimal                       `json:"totalSpent"`
	Remaining      decimal.Decimal                       `json:"remaining"`
}

// Finalize builds the BudgetResult for all six catalog categories.
// It never fails: missing or unparsable fields count as zero, and category ids
// outside the catalog are ignored.
func (s *BudgetService) Finalize(raw domain.RawBudget, totalIncome decimal.Decimal) *domain.BudgetResult {
	categories := make(map[domain.CategoryID]*domain.CategoryResult)
	totalSpent := decimal.Zero

	for _, def := range domain.Catalog() {
		cat := finalizeCategory(def, raw[def.ID])
		categories[def.ID] = cat
		totalSpent = totalSpent.Add(cat.Total)
	}

	return &domain.BudgetResult{
		Categories:  categories,
		TotalSpent:  totalSpent,
		TotalIncome: totalIncome,
		Remaining:   totalIncome.Sub(totalSpent),
	}
}

// Preview returns the running totals for a draft using the same aggregation rule as Finalize
func (s *BudgetService) Preview(raw domain.RawBudget, totalIncome decimal.Decimal) *BudgetPreview {
	result := s.Finalize(raw, totalIncome)

	totals := make(map[domain.CategoryID]decimal.Decimal, len(result.Categories))
	for id, cat := range result.Categories {
		totals[id] = cat.Total
	}

	return &BudgetPreview{
		CategoryTotals: totals,
		TotalSpent:     result.TotalSpent,
		Remaining:      result.Remaining,
	}
}

func finalizeCategory(def domain.CategoryDefinition, state domain.RawCategoryState) *domain.CategoryResult {
	main := util.ParseAmount(state.Main)

	subs := make(map[string]domain.SubcategoryEntry, len(state.Subcategories))
	subTotal := decimal.Zero
	for id, sub := range state.Subcategories {
		amount := util.ParseAmount(sub.Amount)
		subs[id] = domain.SubcategoryEntry{
			ID:     id,
			Name:   sub.Name,
			Amount: amount,
		}
		subTotal = subTotal.Add(amount)
	}

	// Subcategories supersede the single amount once a category supports them;
	// MainAmount is still recorded.
	total := main
	if def.AllowsSubcategories {
		total = subTotal
	}

	return &domain.CategoryResult{
		Definition:    def,
		MainAmount:    main,
		Subcategories: subs,
		Total:         total,
	}
}
