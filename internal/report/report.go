package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/width"

	"github.com/atlastools/svgcountries/internal/country"
)

// Per-column truncation limits for the preview table, in runes. The preview
// is a glance; the full text lives in the exports.
const (
	localNameMax   = 10
	englishNameMax = 18
	typeMax        = 13
	sovereigntyMax = 18
)

// Per-column padding widths in terminal cells.
const (
	indexCol       = 4
	localNameCol   = 12
	englishNameCol = 20
	typeCol        = 15
	sovereigntyCol = 20
)

// ruleWidth is the full table width: five padded columns and four separating
// spaces.
const ruleWidth = indexCol + localNameCol + englishNameCol + typeCol + sovereigntyCol + 4

// UnknownType labels records that carry no type classification.
const UnknownType = "unknown"

// Preview writes the record count and a fixed-width table of the first limit
// records. A limit of zero or less shows everything; when records are held
// back, a trailing line says how many.
func Preview(w io.Writer, records []country.Record, limit int) {
	fmt.Fprintf(w, "%d countries/territories found\n", len(records))
	rule := strings.Repeat("-", ruleWidth)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%s %s %s %s %s\n",
		pad("#", indexCol),
		pad("Local name", localNameCol),
		pad("English name", englishNameCol),
		pad("Type", typeCol),
		pad("Sovereignty", sovereigntyCol))
	fmt.Fprintln(w, rule)

	shown := records
	if limit > 0 && limit < len(records) {
		shown = records[:limit]
	}
	for i, rec := range shown {
		fmt.Fprintf(w, "%s %s %s %s %s\n",
			pad(fmt.Sprintf("%d", i+1), indexCol),
			pad(truncate(rec.NameLocal, localNameMax), localNameCol),
			pad(truncate(rec.NameEN, englishNameMax), englishNameCol),
			pad(truncate(rec.Type, typeMax), typeCol),
			pad(truncate(rec.Sovereignty, sovereigntyMax), sovereigntyCol))
	}
	if len(shown) < len(records) {
		fmt.Fprintf(w, "... %d more not shown\n", len(records)-len(shown))
	}
}

// TypeCount is one entry of the type breakdown.
type TypeCount struct {
	Label string
	Count int
}

// TypeBreakdown tallies records per type value, labeling empty types as
// UnknownType. Entries come back sorted by label so output is deterministic
// run to run.
func TypeBreakdown(records []country.Record) []TypeCount {
	counts := make(map[string]int)
	for _, rec := range records {
		label := rec.Type
		if label == "" {
			label = UnknownType
		}
		counts[label]++
	}
	out := make([]TypeCount, 0, len(counts))
	for label, n := range counts {
		out = append(out, TypeCount{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// WriteTypeBreakdown writes the breakdown as an indented list.
func WriteTypeBreakdown(w io.Writer, records []country.Record) {
	fmt.Fprintln(w, "Records by type:")
	for _, tc := range TypeBreakdown(records) {
		fmt.Fprintf(w, "  %s: %d\n", tc.Label, tc.Count)
	}
}

// Lookup returns the first record whose local or English name contains term
// as a substring.
func Lookup(records []country.Record, term string) (country.Record, bool) {
	for _, rec := range records {
		if strings.Contains(rec.NameLocal, term) || strings.Contains(rec.NameEN, term) {
			return rec, true
		}
	}
	return country.Record{}, false
}

// WriteLookups runs each term through Lookup and writes one result line per
// term, found or not.
func WriteLookups(w io.Writer, records []country.Record, terms []string) {
	if len(terms) == 0 {
		return
	}
	fmt.Fprintln(w, "Lookups:")
	for _, term := range terms {
		if rec, ok := Lookup(records, term); ok {
			fmt.Fprintf(w, "  %q: %s (%s)\n", term, rec.NameLocal, rec.NameEN)
		} else {
			fmt.Fprintf(w, "  %q: not found\n", term)
		}
	}
}

// truncate cuts s to at most max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// pad right-pads s with spaces to the given display width. CJK characters
// occupy two terminal cells, so padding counts cells rather than runes to
// keep mixed-script columns aligned.
func pad(s string, cells int) string {
	if d := cells - displayWidth(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}

func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
