package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/atlastools/svgcountries/internal/country"
)

// csvHeader is the fixed column set. Every row carries all six fields in this
// order, empty or not, so downstream imports never have to guess the shape.
var csvHeader = []string{"id", "name_local", "name_en", "formal_en", "type", "sovereignty"}

// WriteCSV writes records to path as UTF-8 CSV behind a byte order mark.
// Spreadsheet tools still key their encoding detection off the BOM, and
// without it localized names open as mojibake.
func WriteCSV(path string, records []country.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	bw := transform.NewWriter(f, unicode.UTF8BOM.NewEncoder())
	w := csv.NewWriter(bw)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		row := []string{rec.ID, rec.NameLocal, rec.NameEN, rec.FormalEN, rec.Type, rec.Sovereignty}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row %s: %w", rec.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	if err := bw.Close(); err != nil {
		return fmt.Errorf("finish %s: %w", path, err)
	}
	return f.Close()
}
