package export

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/atlastools/svgcountries/internal/country"
	"github.com/atlastools/svgcountries/internal/report"
)

// WritePDF renders a printable summary sheet: record count, the breakdown by
// type, and a table of the Latin-script fields. The core PDF fonts only cover
// Latin-1, so localized names stay in the JSON and CSV outputs.
func WritePDF(path string, records []country.Record) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Country and territory index", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("%d records extracted", len(records)), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Records by type", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, tc := range report.TypeBreakdown(records) {
		pdf.CellFormat(0, 5, fmt.Sprintf("%s: %d", tc.Label, tc.Count), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	// Column widths sum to the printable width of an A4 page with default
	// margins.
	widths := []float64{24, 70, 42, 54}
	headers := []string{"ID", "English name", "Type", "Sovereignty"}
	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for _, rec := range records {
		cells := []string{rec.ID, rec.NameEN, rec.Type, rec.Sovereignty}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 5, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
