package domain

import "github.com/shopspring/decimal"

// RawIncomeEntry is one contributor row exactly as typed into the income form
type RawIncomeEntry struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// IncomeEntry is a finalized contributor income
type IncomeEntry struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// IncomeResult is produced once per session when income entry is finalized
type IncomeResult struct {
	Entries          []IncomeEntry   `json:"entries"`
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	ContributorCount int             `json:"contributorCount"`
}

// ContributorShare is a contributor's portion of the household income
type ContributorShare struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}
