// Package report lays out report lines into pages and renders them as PDF or
// XLSX documents.
package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/dafibh/budget-planner/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Page geometry in points (A4 portrait)
const (
	LabelX    = 40.0
	DetailX   = 200.0
	AmountX   = 450.0
	RowHeight = 20.0
	TopMargin = 50.0

	DefaultPageThreshold = 750.0
)

// DocumentTitle is printed at the top of the first page and names the sheet
const DocumentTitle = "Budget Report"

// Column headings
const (
	HeadingCategory = "Category"
	HeadingDetails  = "Details"
	HeadingAmount   = "Amount"
)

// RowKind tells renderers how to style a row
type RowKind int

const (
	RowTitle RowKind = iota
	RowSubtitle
	RowHeading
	RowLine
	RowTotal
)

// Row is one positioned row on a page
type Row struct {
	Kind   RowKind
	Y      float64
	Label  string
	Detail string
	Amount string
}

// Page is one page of the laid out report
type Page struct {
	Number int
	Rows   []Row
}

// Options controls layout
type Options struct {
	PageThreshold float64
	GeneratedAt   time.Time
}

var printer = message.NewPrinter(language.English)

// FormatAmount renders an amount with thousands separators, e.g. "Rs. 1,234.00"
func FormatAmount(amount decimal.Decimal) string {
	amount = amount.Round(2)
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	fixed := amount.StringFixed(2)
	dot := strings.IndexByte(fixed, '.')
	return sign + "Rs. " + groupThousands(fixed[:dot]) + fixed[dot:]
}

// groupThousands inserts separators into a string of decimal digits.
func groupThousands(digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return printer.Sprintf("%d", n)
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Paginate positions the report lines on pages. A new page starts (with the
// column headings repeated) once the vertical cursor passes the threshold.
func Paginate(lines domain.ReportLines, opts Options) []Page {
	threshold := opts.PageThreshold
	if threshold <= 0 {
		threshold = DefaultPageThreshold
	}

	page := Page{Number: 1}
	y := TopMargin

	place := func(row Row) {
		row.Y = y
		page.Rows = append(page.Rows, row)
		y += RowHeight
	}
	heading := Row{Kind: RowHeading, Label: HeadingCategory, Detail: HeadingDetails, Amount: HeadingAmount}

	place(Row{Kind: RowTitle, Label: DocumentTitle})
	place(Row{Kind: RowSubtitle, Label: "Generated " + opts.GeneratedAt.Format("2006-01-02")})
	place(heading)

	var pages []Page
	for _, line := range lines {
		if y > threshold {
			pages = append(pages, page)
			page = Page{Number: page.Number + 1}
			y = TopMargin
			place(heading)
		}
		place(lineRow(line))
	}

	return append(pages, page)
}

func lineRow(line domain.ReportLine) Row {
	kind := RowLine
	if line.Section == domain.SectionTotal || line.Section == domain.SectionBalance {
		kind = RowTotal
	}
	return Row{
		Kind:   kind,
		Label:  line.Label,
		Detail: line.Detail,
		Amount: FormatAmount(line.Amount),
	}
}
