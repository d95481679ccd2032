package report

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/dafibh/budget-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Budget Report"

// XLSXRenderer renders report lines as a single spreadsheet without pagination
type XLSXRenderer struct{}

// NewXLSXRenderer creates a new XLSXRenderer
func NewXLSXRenderer() *XLSXRenderer {
	return &XLSXRenderer{}
}

// Render writes the title, column headings and one row per report line.
// Amounts are stored as numbers so the sheet can be summed, unless a float
// cannot hold them to the cent.
func (r *XLSXRenderer) Render(lines domain.ReportLines, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#2D3436"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#000000", Style: 1},
		},
	})
	if err != nil {
		return nil, err
	}
	amountStyle, err := f.NewStyle(&excelize.Style{
		CustomNumFmt: strPtr(`"Rs. "#,##0.00`),
		Alignment:    &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, err
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: strPtr(`"Rs. "#,##0.00`),
		Alignment:    &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, err
	}

	set := func(cell string, value interface{}) {
		// Errors only occur for invalid cell names, which are built below
		_ = f.SetCellValue(sheetName, cell, value)
	}

	set("A1", DocumentTitle)
	_ = f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	set("A2", "Generated "+generatedAt.Format("2006-01-02"))

	set("A3", HeadingCategory)
	set("B3", HeadingDetails)
	set("C3", HeadingAmount)
	_ = f.SetCellStyle(sheetName, "A3", "C3", headerStyle)

	row := 4
	for _, line := range lines {
		set(fmt.Sprintf("A%d", row), line.Label)
		set(fmt.Sprintf("B%d", row), line.Detail)
		set(fmt.Sprintf("C%d", row), cellAmount(line.Amount))

		style := amountStyle
		if line.Section == domain.SectionTotal || line.Section == domain.SectionBalance {
			style = totalStyle
		}
		cell := fmt.Sprintf("C%d", row)
		_ = f.SetCellStyle(sheetName, cell, cell, style)
		row++
	}

	_ = f.SetColWidth(sheetName, "A", "A", 30)
	_ = f.SetColWidth(sheetName, "B", "B", 28)
	_ = f.SetColWidth(sheetName, "C", "C", 18)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func strPtr(s string) *string {
	return &s
}

func cellAmount(amount decimal.Decimal) interface{} {
	fixed := amount.StringFixed(2)
	f := amount.Round(2).InexactFloat64()
	if strconv.FormatFloat(f, 'f', 2, 64) == fixed {
		return f
	}
	return fixed
}
