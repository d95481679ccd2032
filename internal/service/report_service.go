package service

import (
	"strings"

	"github.com/dafibh/budget-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// ReportService flattens income and budget results into printable report lines
type ReportService struct{}

// NewReportService creates a new ReportService
func NewReportService() *ReportService {
	return &ReportService{}
}

// Project builds the report: income lines, fixed expenses (everything except
// Planned Purchases), their total and the remainder, then planned purchases,
// and the final balance. Zero amounts are not emitted.
func (s *ReportService) Project(income *domain.IncomeResult, budget *domain.BudgetResult) domain.ReportLines {
	var lines domain.ReportLines

	for _, entry := range income.Entries {
		lines = append(lines, domain.ReportLine{
			Section: domain.SectionIncome,
			Label:   domain.LabelIncome,
			Detail:  entry.Name,
			Amount:  entry.Amount,
		})
	}

	totalFixed := decimal.Zero
	var planned *domain.CategoryResult
	for _, def := range domain.Catalog() {
		cat := budget.Category(def.ID)
		if def.IsPlannedPurchases() {
			planned = cat
			continue
		}
		catLines := categoryLines(domain.SectionFixedExpense, cat)
		for _, line := range catLines {
			totalFixed = totalFixed.Add(line.Amount)
		}
		lines = append(lines, catLines...)
	}

	lines = append(lines,
		domain.ReportLine{
			Section: domain.SectionTotal,
			Label:   domain.LabelTotalFixedExpenses,
			Amount:  totalFixed,
		},
		domain.ReportLine{
			Section: domain.SectionBalance,
			Label:   domain.LabelRemainingAfterFixed,
			Amount:  income.TotalIncome.Sub(totalFixed),
		},
	)

	if planned != nil && planned.Total.IsPositive() {
		lines = append(lines, categoryLines(domain.SectionPlannedPurchase, planned)...)
		lines = append(lines, domain.ReportLine{
			Section: domain.SectionTotal,
			Label:   domain.LabelTotalPlannedPurchases,
			Amount:  planned.Total,
		})
	}

	// Same expression as BudgetResult.Remaining
	lines = append(lines, domain.ReportLine{
		Section: domain.SectionBalance,
		Label:   domain.LabelFinalBalance,
		Amount:  income.TotalIncome.Sub(budget.TotalSpent),
	})

	return lines
}

// categoryLines emits the non-zero lines of one category. The category label
// appears on the first line only.
func categoryLines(section domain.ReportSection, cat *domain.CategoryResult) domain.ReportLines {
	var lines domain.ReportLines

	if !cat.Definition.AllowsSubcategories {
		if cat.Total.IsPositive() {
			lines = append(lines, domain.ReportLine{
				Section: section,
				Label:   cat.Definition.DisplayName,
				Detail:  domain.DetailMonthlyExpense,
				Amount:  cat.Total,
			})
		}
		return lines
	}

	for _, sub := range SortedSubcategories(cat.Subcategories) {
		if !sub.Amount.IsPositive() {
			continue
		}
		label := ""
		if len(lines) == 0 {
			label = cat.Definition.DisplayName
		}
		detail := strings.TrimSpace(sub.Name)
		if detail == "" {
			detail = domain.DetailUnnamedSubcategory
		}
		lines = append(lines, domain.ReportLine{
			Section: section,
			Label:   label,
			Detail:  detail,
			Amount:  sub.Amount,
		})
	}
	return lines
}
