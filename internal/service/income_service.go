package service

import (
	"fmt"
	"strings"

	"github.com/dafibh/budget-planner/internal/domain"
	"github.com/dafibh/budget-planner/internal/util"
	"github.com/shopspring/decimal"
)

// IncomeService normalizes contributor incomes into an IncomeResult
type IncomeService struct{}

// NewIncomeService creates a new IncomeService
func NewIncomeService() *IncomeService {
	return &IncomeService{}
}

// Finalize validates the income form and builds the IncomeResult.
// The rows are resized to numPeople first, so ContributorCount always matches
// Entries. Individual rows are never rejected: unparsable or negative amounts
// count as zero.
func (s *IncomeService) Finalize(numPeople int, raw []domain.RawIncomeEntry) (*domain.IncomeResult, error) {
	if numPeople <= 0 {
		return nil, domain.NewValidationError(domain.ReasonNoPeople)
	}
	raw = s.ResizeEntries(numPeople, raw)

	entries := make([]domain.IncomeEntry, len(raw))
	total := decimal.Zero
	for i, row := range raw {
		amount := util.ParseNonNegativeAmount(row.Amount)
		total = total.Add(amount)
		entries[i] = domain.IncomeEntry{
			Name:   defaultName(row.Name, i),
			Amount: amount,
		}
	}

	if !total.IsPositive() {
		return nil, domain.NewValidationError(domain.ReasonZeroIncome)
	}

	return &domain.IncomeResult{
		Entries:          entries,
		TotalIncome:      total,
		ContributorCount: numPeople,
	}, nil
}

// Total sums the parsed amounts of an unfinished form (live total while typing)
func (s *IncomeService) Total(raw []domain.RawIncomeEntry) decimal.Decimal {
	total := decimal.Zero
	for _, row := range raw {
		total = total.Add(util.ParseNonNegativeAmount(row.Amount))
	}
	return total
}

// Shares returns each contributor's percentage of the total income
func (s *IncomeService) Shares(income *domain.IncomeResult) []domain.ContributorShare {
	if income == nil {
		return nil
	}
	shares := make([]domain.ContributorShare, len(income.Entries))
	for i, entry := range income.Entries {
		shares[i] = domain.ContributorShare{
			Name:       entry.Name,
			Amount:     entry.Amount,
			Percentage: util.Percentage(entry.Amount, income.TotalIncome),
		}
	}
	return shares
}

// PreviewShares returns the shares of the rows with a positive amount,
// as displayed in the income distribution chart before the form is submitted
func (s *IncomeService) PreviewShares(raw []domain.RawIncomeEntry) []domain.ContributorShare {
	total := s.Total(raw)
	var shares []domain.ContributorShare
	for i, row := range raw {
		amount := util.ParseNonNegativeAmount(row.Amount)
		if !amount.IsPositive() {
			continue
		}
		shares = append(shares, domain.ContributorShare{
			Name:       defaultName(row.Name, i),
			Amount:     amount,
			Percentage: util.Percentage(amount, total),
		})
	}
	return shares
}

// ResizeEntries adjusts the form to count rows, keeping existing rows in place.
// A non-positive count leaves a single blank row.
func (s *IncomeService) ResizeEntries(count int, existing []domain.RawIncomeEntry) []domain.RawIncomeEntry {
	if count <= 0 {
		return []domain.RawIncomeEntry{{}}
	}
	rows := make([]domain.RawIncomeEntry, count)
	copy(rows, existing)
	return rows
}

func defaultName(name string, index int) string {
	if strings.TrimSpace(name) == "" {
		return fmt.Sprintf("Person %d", index+1)
	}
	return name
}
