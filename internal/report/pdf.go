package report

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/signintech/gopdf"
)

// ErrFontNotConfigured is returned when PDF export has no TTF font to embed
var ErrFontNotConfigured = errors.New("report font not configured")

const fontFamily = "report"

// PDFRenderer renders laid out pages with gopdf
type PDFRenderer struct {
	fontPath string
}

// NewPDFRenderer creates a renderer embedding the TTF font at fontPath
func NewPDFRenderer(fontPath string) *PDFRenderer {
	return &PDFRenderer{fontPath: fontPath}
}

// Render writes every page and returns the PDF bytes
func (r *PDFRenderer) Render(pages []Page) ([]byte, error) {
	if r.fontPath == "" {
		return nil, ErrFontNotConfigured
	}

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})

	if err := pdf.AddTTFFont(fontFamily, r.fontPath); err != nil {
		return nil, fmt.Errorf("load report font: %w", err)
	}

	for _, page := range pages {
		pdf.AddPage()
		for _, row := range page.Rows {
			if err := r.drawRow(&pdf, row); err != nil {
				return nil, fmt.Errorf("draw page %d: %w", page.Number, err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) drawRow(pdf *gopdf.GoPdf, row Row) error {
	size := 11.0
	switch row.Kind {
	case RowTitle:
		size = 18
	case RowSubtitle:
		size = 10
	case RowHeading, RowTotal:
		size = 12
	}
	if err := pdf.SetFont(fontFamily, "", size); err != nil {
		return err
	}

	if row.Kind == RowSubtitle {
		pdf.SetTextColor(99, 110, 114)
	} else {
		pdf.SetTextColor(45, 52, 54)
	}

	cells := []struct {
		x    float64
		text string
	}{
		{LabelX, row.Label},
		{DetailX, row.Detail},
		{AmountX, row.Amount},
	}
	for _, c := range cells {
		if c.text == "" {
			continue
		}
		pdf.SetX(c.x)
		pdf.SetY(row.Y)
		if err := pdf.Cell(nil, c.text); err != nil {
			return err
		}
	}

	if row.Kind == RowHeading {
		pdf.SetLineWidth(0.5)
		pdf.Line(LabelX, row.Y+RowHeight-4, AmountX+100, row.Y+RowHeight-4)
	}
	return nil
}
