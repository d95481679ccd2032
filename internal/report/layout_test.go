package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/dafibh/budget-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func incomeLines(n int) domain.ReportLines {
	lines := make(domain.ReportLines, n)
	for i := range lines {
		lines[i] = domain.ReportLine{
			Section: domain.SectionIncome,
			Label:   domain.LabelIncome,
			Detail:  fmt.Sprintf("Person %d", i+1),
			Amount:  decimal.NewFromInt(100),
		}
	}
	return lines
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{"0", "Rs. 0.00"},
		{"5", "Rs. 5.00"},
		{"1234", "Rs. 1,234.00"},
		{"1234567.891", "Rs. 1,234,567.89"},
		{"-250.5", "-Rs. 250.50"},
		{"999.999", "Rs. 1,000.00"},
		{"-0.001", "Rs. 0.00"},
		{"12345678901234567.89", "Rs. 12,345,678,901,234,567.89"},
		{"-123456789012345678901.5", "-Rs. 123,456,789,012,345,678,901.50"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatAmount(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestPaginate_SinglePage(t *testing.T) {
	at := time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)
	lines := domain.ReportLines{
		{Section: domain.SectionIncome, Label: domain.LabelIncome, Detail: "Alice", Amount: decimal.NewFromInt(3000)},
		{Section: domain.SectionBalance, Label: domain.LabelFinalBalance, Amount: decimal.NewFromInt(3000)},
	}

	pages := Paginate(lines, Options{GeneratedAt: at})
	require.Len(t, pages, 1)

	rows := pages[0].Rows
	require.Len(t, rows, 5)
	assert.Equal(t, RowTitle, rows[0].Kind)
	assert.Equal(t, "Generated 2026-10-18", rows[1].Label)
	assert.Equal(t, RowHeading, rows[2].Kind)

	assert.Equal(t, RowLine, rows[3].Kind)
	assert.Equal(t, "Alice", rows[3].Detail)
	assert.Equal(t, "Rs. 3,000.00", rows[3].Amount)
	assert.Equal(t, RowTotal, rows[4].Kind)

	for i, row := range rows {
		assert.Equal(t, TopMargin+float64(i)*RowHeight, row.Y)
	}
}

func TestPaginate_BreaksPastThreshold(t *testing.T) {
	// Threshold 150: rows at 50,70,...; a row is placed while the cursor is <= 150
	pages := Paginate(incomeLines(8), Options{PageThreshold: 150})

	require.Len(t, pages, 2)
	// First page: title, subtitle, heading at 50/70/90, then lines at 110,130,150
	assert.Len(t, pages[0].Rows, 6)
	for _, row := range pages[0].Rows {
		assert.LessOrEqual(t, row.Y, 150.0)
	}

	// Second page repeats the heading, then lines at 70..150
	second := pages[1]
	assert.Equal(t, 2, second.Number)
	require.Len(t, second.Rows, 6)
	assert.Equal(t, RowHeading, second.Rows[0].Kind)
	assert.Equal(t, TopMargin, second.Rows[0].Y)
	assert.Equal(t, "Person 4", second.Rows[1].Detail)
}

func TestPaginate_KeepsEveryLineInOrder(t *testing.T) {
	lines := incomeLines(120)
	pages := Paginate(lines, Options{})

	assert.Greater(t, len(pages), 1)

	var details []string
	for _, page := range pages {
		for _, row := range page.Rows {
			if row.Kind == RowLine {
				details = append(details, row.Detail)
			}
			assert.LessOrEqual(t, row.Y, DefaultPageThreshold+RowHeight)
		}
	}
	require.Len(t, details, len(lines))
	for i, line := range lines {
		assert.Equal(t, line.Detail, details[i])
	}
}

func TestPaginate_EmptyLines(t *testing.T) {
	pages := Paginate(nil, Options{})
	require.Len(t, pages, 1)
	assert.Len(t, pages[0].Rows, 3)
}
