package domain

import "github.com/shopspring/decimal"

// CategorySummary is one category as shown on the dashboard
type CategorySummary struct {
	ID            CategoryID         `json:"id"`
	Name          string             `json:"name"`
	Total         decimal.Decimal    `json:"total"`
	Percentage    decimal.Decimal    `json:"percentage"`
	Subcategories []SubcategoryEntry `json:"subcategories"`
}

// SummaryView is derived from an IncomeResult and a BudgetResult on every request.
// Percentages are raw values and may exceed 100.
type SummaryView struct {
	TotalIncome    decimal.Decimal                `json:"totalIncome"`
	TotalSpent     decimal.Decimal                `json:"totalSpent"`
	Remaining      decimal.Decimal                `json:"remaining"`
	UtilizationPct decimal.Decimal                `json:"utilizationPct"`
	PerCategoryPct map[CategoryID]decimal.Decimal `json:"perCategoryPct"`
	OverBudget     bool                           `json:"overBudget"`
	Categories     []CategorySummary              `json:"categories"`
	Contributors   []ContributorShare             `json:"contributors"`
}
