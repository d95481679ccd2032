package service

import (
	"sort"

	"github.com/dafibh/budget-planner/internal/domain"
	"github.com/dafibh/budget-planner/internal/util"
	"github.com/shopspring/decimal"
)

// SummaryService combines income and budget results into the dashboard view
type SummaryService struct {
	incomeService *IncomeService
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(incomeService *IncomeService) *SummaryService {
	return &SummaryService{
		incomeService: incomeService,
	}
}

// Summarize derives the SummaryView. It is pure and recomputed on every call.
// Percentages are not clamped; capping a progress bar is up to the renderer.
func (s *SummaryService) Summarize(income *domain.IncomeResult, budget *domain.BudgetResult) domain.SummaryView {
	totalIncome := income.TotalIncome
	totalSpent := budget.TotalSpent
	remaining := totalIncome.Sub(totalSpent)

	perCategory := make(map[domain.CategoryID]decimal.Decimal)
	categories := make([]domain.CategorySummary, 0, len(budget.Categories))
	for _, def := range domain.Catalog() {
		cat := budget.Category(def.ID)
		pct := util.Percentage(cat.Total, totalIncome)
		perCategory[def.ID] = pct
		categories = append(categories, domain.CategorySummary{
			ID:            def.ID,
			Name:          def.DisplayName,
			Total:         cat.Total,
			Percentage:    pct,
			Subcategories: SortedSubcategories(cat.Subcategories),
		})
	}

	return domain.SummaryView{
		TotalIncome:    totalIncome,
		TotalSpent:     totalSpent,
		Remaining:      remaining,
		UtilizationPct: util.Percentage(totalSpent, totalIncome),
		PerCategoryPct: perCategory,
		OverBudget:     remaining.IsNegative(),
		Categories:     categories,
		Contributors:   s.incomeService.Shares(income),
	}
}

// SortedSubcategories orders subcategories by id. Generated ids are time-ordered,
// so this is creation order.
func SortedSubcategories(subs map[string]domain.SubcategoryEntry) []domain.SubcategoryEntry {
	out := make([]domain.SubcategoryEntry, 0, len(subs))
	for _, sub := range subs {
		out = append(out, sub)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}
