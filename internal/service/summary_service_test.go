package service

import (
	"testing"

	"github.com/dafibh/budget-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_ScenarioB(t *testing.T) {
	income := &domain.IncomeResult{
		Entries:          []domain.IncomeEntry{{Name: "A", Amount: decimal.NewFromInt(3000)}},
		TotalIncome:      decimal.NewFromInt(3000),
		ContributorCount: 1,
	}
	raw := domain.NewRawBudget()
	require.NoError(t, raw.SetMain(domain.CategoryGroceries, "500"))
	withSubs(raw, domain.CategoryDebts, "200", "300")
	budget := NewBudgetService().Finalize(raw, income.TotalIncome)

	view := NewSummaryService(NewIncomeService()).Summarize(income, budget)

	assert.True(t, view.TotalSpent.Equal(decimal.NewFromInt(800)))
	assert.True(t, view.Remaining.Equal(decimal.NewFromInt(2200)))
	assert.Equal(t, "26.7", view.UtilizationPct.StringFixed(1))
	assert.Equal(t, "16.7", view.PerCategoryPct[domain.CategoryGroceries].StringFixed(1))
	assert.Equal(t, "16.7", view.PerCategoryPct[domain.CategoryDebts].StringFixed(1))
	assert.True(t, view.PerCategoryPct[domain.CategorySavings].IsZero())
	assert.False(t, view.OverBudget)

	require.Len(t, view.Categories, 6)
	for i, def := range domain.Catalog() {
		assert.Equal(t, def.ID, view.Categories[i].ID)
		assert.Equal(t, def.DisplayName, view.Categories[i].Name)
	}
	assert.Len(t, view.Categories[1].Subcategories, 2)

	require.Len(t, view.Contributors, 1)
	assert.Equal(t, "100.0", view.Contributors[0].Percentage.StringFixed(1))
}

func TestSummarize_ZeroIncomeGuard(t *testing.T) {
	income := &domain.IncomeResult{TotalIncome: decimal.Zero}
	raw := domain.NewRawBudget()
	require.NoError(t, raw.SetMain(domain.CategorySavings, "100"))
	budget := NewBudgetService().Finalize(raw, decimal.Zero)

	view := NewSummaryService(NewIncomeService()).Summarize(income, budget)

	assert.True(t, view.UtilizationPct.IsZero())
	for id, pct := range view.PerCategoryPct {
		assert.True(t, pct.IsZero(), "category %s", id)
	}
	assert.True(t, view.OverBudget)
}

func TestSummarize_PercentagesAreNotClamped(t *testing.T) {
	income := &domain.IncomeResult{TotalIncome: decimal.NewFromInt(1000)}
	raw := domain.NewRawBudget()
	withSubs(raw, domain.CategoryRentFamily, "1500")
	budget := NewBudgetService().Finalize(raw, income.TotalIncome)

	view := NewSummaryService(NewIncomeService()).Summarize(income, budget)

	assert.Equal(t, "150.0", view.UtilizationPct.StringFixed(1))
	assert.Equal(t, "150.0", view.PerCategoryPct[domain.CategoryRentFamily].StringFixed(1))
	assert.True(t, view.OverBudget)
	assert.True(t, view.Remaining.Equal(decimal.NewFromInt(-500)))
}

func TestSummarize_SubcategoriesInCreationOrder(t *testing.T) {
	income := &domain.IncomeResult{TotalIncome: decimal.NewFromInt(1000)}
	raw := domain.NewRawBudget()
	ids := withSubs(raw, domain.CategoryInvestments, "30", "10", "20")
	budget := NewBudgetService().Finalize(raw, income.TotalIncome)

	view := NewSummaryService(NewIncomeService()).Summarize(income, budget)

	subs := view.Categories[4].Subcategories
	require.Len(t, subs, 3)
	for i, id := range ids {
		assert.Equal(t, id, subs[i].ID)
	}
}
