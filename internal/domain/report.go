package domain

import "github.com/shopspring/decimal"

// ReportSection groups report lines
type ReportSection string

const (
	SectionIncome          ReportSection = "income"
	SectionFixedExpense    ReportSection = "fixed_expense"
	SectionPlannedPurchase ReportSection = "planned_purchase"
	SectionTotal           ReportSection = "total"
	SectionBalance         ReportSection = "balance"
)

// Report labels
const (
	LabelIncome                = "Income"
	LabelTotalFixedExpenses    = "Total Fixed Expenses"
	LabelRemainingAfterFixed   = "Remaining After Fixed Expenses"
	LabelTotalPlannedPurchases = "Total Planned Purchases"
	LabelFinalBalance          = "Final Balance"
	DetailMonthlyExpense       = "Monthly expense"
	DetailUnnamedSubcategory   = "Unnamed"
)

// ReportLine is one row of the printable report
type ReportLine struct {
	Section ReportSection   `json:"section"`
	Label   string          `json:"label"`
	Detail  string          `json:"detail"`
	Amount  decimal.Decimal `json:"amount"`
}

// ReportLines is the ordered, flattened report
type ReportLines []ReportLine

// Find returns the first line with the given section and label
func (r ReportLines) Find(section ReportSection, label string) (ReportLine, bool) {
	for _, line := range r {
		if line.Section == section && line.Label == label {
			return line, true
		}
	}
	return ReportLine{}, false
}

// BySection returns the lines of one section in order
func (r ReportLines) BySection(section ReportSection) ReportLines {
	var out ReportLines
	for _, line := range r {
		if line.Section == section {
			out = append(out, line)
		}
	}
	return out
}
