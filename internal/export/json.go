package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/atlastools/svgcountries/internal/country"
)

// WriteJSON writes records to path as an indented JSON array in extraction
// order. HTML escaping is off so localized names land in the file as the
// characters themselves rather than \u escapes.
func WriteJSON(path string, records []country.Record) error {
	if records == nil {
		records = []country.Record{}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
