package pdfgen

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/dreamdecode/backend/internal/app/service/dream"
	"github.com/dreamdecode/backend/pkg/tool"
	"github.com/dreamdecode/backend/pkg/types"
)

type Renderer struct{}

func NewRenderer() dream.ReportRenderer {
	return &Renderer{}
}

// Render lays the report out on US Letter. Output is byte-identical for the
// same name, report and timestamp: the document dates are pinned and the
// header year derives from the given time, not the wall clock.
func (r *Renderer) Render(name string, report *types.DreamReport, at time.Time) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("nil report")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetModificationDate(time.Unix(0, 0).UTC())
	pdf.SetMargins(25, 25, 25)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Header
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(212, 175, 55)
	pdf.CellFormat(0, 14, "DreamDecode", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(44, 62, 80)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Prophetic Revelation for %s", name)), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Hebrew Year: %d", tool.HebrewYear(at)), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	heading := func(text string) {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.SetTextColor(44, 62, 80)
		pdf.CellFormat(0, 10, tr(text), "", 1, "L", false, 0, "")
	}
	body := func(text string) {
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(44, 62, 80)
		pdf.MultiCell(0, 6, tr(text), "", "L", false)
		pdf.Ln(2)
	}

	heading("Interpretations")
	for _, interp := range report.Interpretations {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(44, 62, 80)
		pdf.MultiCell(0, 6, tr(interp.Title), "", "L", false)
		body(interp.Meaning)
	}

	if report.Scripture.Reference != "" {
		heading("Scriptural Foundation")
		pdf.SetFont("Times", "I", 11)
		pdf.SetTextColor(85, 85, 85)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("%s\n%s", report.Scripture.Reference, report.Scripture.Text)), "", "L", false)
		pdf.Ln(2)
		body(report.Scripture.Context)
	}

	if report.Prayer != "" {
		heading("Personalized Prayer")
		body(report.Prayer)
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(128, 128, 128)
	pdf.MultiCell(0, 5, "This interpretation is provided for spiritual guidance and encouragement.", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output failed: %w", err)
	}
	return buf.Bytes(), nil
}
