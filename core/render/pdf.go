package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/trailboard/norquay/core"
)

// PDFRenderer renders the report as a one-page A4 summary.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render draws the conditions block followed by lift and run tables.
func (r *PDFRenderer) Render(report core.Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Core fonts are cp1252; degree signs and curly quotes need translating.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, "Norquay conditions", "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, tr("Source: "+report.Source), "", "L", false)
	pdf.MultiCell(0, 5, "Updated: "+Stamp(report.UpdatedAt), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	if c := report.Conditions; c != nil {
		renderHeading(pdf, "Weather")
		renderPair(pdf, tr, "Temperature", TempC(c.TempC))
		renderPair(pdf, tr, "Note", Note(c.Note))
		renderHeading(pdf, "New snow")
		renderPair(pdf, tr, "Overnight", Cm(c.NewSnow.OvernightCm))
		renderPair(pdf, tr, "Last 24h", Cm(c.NewSnow.Last24Cm))
		renderPair(pdf, tr, "Last 7d", Cm(c.NewSnow.Last7DaysCm))
		renderHeading(pdf, "Snow base")
		renderPair(pdf, tr, "Lower", Cm(c.SnowBase.LowerCm))
		renderPair(pdf, tr, "Upper", Cm(c.SnowBase.UpperCm))
		ytd := Cm(c.SnowBase.YTDSnowfallCm)
		if c.SnowBase.YTDSnowfall2Cm != nil {
			ytd += " / " + Cm(c.SnowBase.YTDSnowfall2Cm)
		}
		renderPair(pdf, tr, "YTD snowfall", ytd)
	}

	if len(report.Lifts) > 0 {
		renderHeading(pdf, "Lifts")
		renderTable(pdf, tr, SortedRuns(report.Lifts), false)
	}
	if len(report.Runs) > 0 {
		renderHeading(pdf, "Runs")
		renderTable(pdf, tr, SortedRuns(report.Runs), true)
	}

	if report.Applied > 0 || report.NotFound > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, fmt.Sprintf("Applied: %d. Not found: %d.", report.Applied, report.NotFound), "", "L", false)
		for _, name := range report.Missing {
			pdf.MultiCell(0, 5, tr("- "+name), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

func renderHeading(pdf *gofpdf.Fpdf, text string) {
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.MultiCell(0, 7, text, "", "L", false)
	pdf.Ln(1)
}

func renderPair(pdf *gofpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(35, 5, tr(label+":"), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, tr(value), "", "L", false)
}

// renderTable writes one row per entry with the status cell shaded.
func renderTable(pdf *gofpdf.Fpdf, tr func(string) string, lines []RunLine, groomed bool) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(100, 6, "Name", "1", 0, "L", true, 0, "")
	if groomed {
		pdf.CellFormat(30, 6, "Status", "1", 0, "L", true, 0, "")
		pdf.CellFormat(25, 6, "Groomed", "1", 1, "L", true, 0, "")
	} else {
		pdf.CellFormat(30, 6, "Status", "1", 1, "L", true, 0, "")
	}

	pdf.SetFont("Helvetica", "", 9)
	for _, line := range lines {
		pdf.CellFormat(100, 5.5, tr(line.Name), "1", 0, "L", false, 0, "")
		switch line.Status.Safe() {
		case core.StatusOpen:
			pdf.SetFillColor(209, 250, 229)
		case core.StatusClosed:
			pdf.SetFillColor(254, 226, 226)
		default:
			pdf.SetFillColor(245, 245, 245)
		}
		ln := 1
		if groomed {
			ln = 0
		}
		pdf.CellFormat(30, 5.5, string(line.Status.Safe()), "1", ln, "L", true, 0, "")
		if groomed {
			mark := ""
			if line.Groomed {
				mark = "yes"
			}
			pdf.CellFormat(25, 5.5, mark, "1", 1, "L", false, 0, "")
		}
	}
}
