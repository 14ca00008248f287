package report

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/atlastools/svgcountries/internal/country"
)

func sampleRecords(n int) []country.Record {
	records := make([]country.Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, country.Record{
			ID:          fmt.Sprintf("T%02d", i),
			NameLocal:   fmt.Sprintf("地区%d", i),
			NameEN:      fmt.Sprintf("Territory %d", i),
			Type:        "Sovereign country",
			Sovereignty: fmt.Sprintf("Territory %d", i),
		})
	}
	return records
}

func TestPreview_ShowsCountAndLimitsRows(t *testing.T) {
	var buf bytes.Buffer
	Preview(&buf, sampleRecords(12), 10)
	out := buf.String()

	if !strings.Contains(out, "12 countries/territories found") {
		t.Fatalf("missing count line:\n%s", out)
	}
	if !strings.Contains(out, "Territory 9") {
		t.Fatalf("tenth record missing:\n%s", out)
	}
	if strings.Contains(out, "Territory 10") {
		t.Fatalf("eleventh record should be held back:\n%s", out)
	}
	if !strings.Contains(out, "... 2 more not shown") {
		t.Fatalf("missing held-back line:\n%s", out)
	}
}

func TestPreview_ZeroLimitShowsEverything(t *testing.T) {
	var buf bytes.Buffer
	Preview(&buf, sampleRecords(12), 0)
	out := buf.String()
	if !strings.Contains(out, "Territory 11") {
		t.Fatalf("expected all records:\n%s", out)
	}
	if strings.Contains(out, "more not shown") {
		t.Fatalf("no held-back line expected:\n%s", out)
	}
}

func TestPreview_TruncatesLongValues(t *testing.T) {
	records := []country.Record{{
		ID:          "XYZ",
		NameLocal:   strings.Repeat("名", 11),
		NameEN:      "An Exceedingly Long Country Name",
		Type:        "A very specific type",
		Sovereignty: "A very long sovereign state name",
	}}
	var buf bytes.Buffer
	Preview(&buf, records, 10)
	out := buf.String()

	if strings.Contains(out, strings.Repeat("名", 11)) {
		t.Fatalf("local name not truncated:\n%s", out)
	}
	if !strings.Contains(out, strings.Repeat("名", 10)) {
		t.Fatalf("truncated local name missing:\n%s", out)
	}
	// 18 runes of "An Exceedingly Long Country Name" is "An Exceedingly Lon".
	if !strings.Contains(out, "An Exceedingly Lon") || strings.Contains(out, "An Exceedingly Long") {
		t.Fatalf("english name not truncated to 18 runes:\n%s", out)
	}
}

func TestPreview_AlignsMixedScripts(t *testing.T) {
	records := []country.Record{
		{NameLocal: "中国", NameEN: "China", Type: "Sovereign country", Sovereignty: "China"},
		{NameLocal: "Fiji", NameEN: "Fiji", Type: "Sovereign country", Sovereignty: "Fiji"},
	}
	var buf bytes.Buffer
	Preview(&buf, records, 10)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// Rows are the last two lines; the type column must start at the same
	// byte-independent display offset, which for ASCII-only padding of row
	// two and CJK row one means both contain the type label preceded by the
	// same column gap.
	row1, row2 := lines[len(lines)-2], lines[len(lines)-1]
	if !strings.Contains(row1, "中国") || !strings.Contains(row2, "Fiji") {
		t.Fatalf("rows out of order:\n%s", buf.String())
	}
	// "中国" is 2 runes but 4 display cells; padding to 12 cells means 8
	// trailing spaces before the next column.
	if !strings.Contains(row1, "中国"+strings.Repeat(" ", 8)+" China") {
		t.Fatalf("CJK padding wrong: %q", row1)
	}
	if !strings.Contains(row2, "Fiji"+strings.Repeat(" ", 8)+" Fiji") {
		t.Fatalf("ASCII padding wrong: %q", row2)
	}
}

func TestTypeBreakdown_CountsAndSorts(t *testing.T) {
	records := []country.Record{
		{NameEN: "A", Type: "Sovereign country"},
		{NameEN: "B", Type: "Dependency"},
		{NameEN: "C", Type: "Sovereign country"},
		{NameEN: "D"},
	}
	got := TypeBreakdown(records)
	want := []TypeCount{
		{Label: "Dependency", Count: 1},
		{Label: "Sovereign country", Count: 2},
		{Label: UnknownType, Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("breakdown mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestWriteTypeBreakdown_Output(t *testing.T) {
	var buf bytes.Buffer
	WriteTypeBreakdown(&buf, []country.Record{{NameEN: "A", Type: "Dependency"}})
	out := buf.String()
	if !strings.Contains(out, "Records by type:") || !strings.Contains(out, "  Dependency: 1") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestLookup_MatchesEitherName(t *testing.T) {
	records := []country.Record{
		{NameLocal: "中国", NameEN: "China"},
		{NameLocal: "印度尼西亚", NameEN: "Indonesia"},
	}
	if rec, ok := Lookup(records, "中国"); !ok || rec.NameEN != "China" {
		t.Fatalf("local name lookup failed: %+v ok=%v", rec, ok)
	}
	if rec, ok := Lookup(records, "Indo"); !ok || rec.NameLocal != "印度尼西亚" {
		t.Fatalf("english substring lookup failed: %+v ok=%v", rec, ok)
	}
	if _, ok := Lookup(records, "Atlantis"); ok {
		t.Fatalf("expected miss for unknown term")
	}
}

func TestLookup_ReturnsFirstMatch(t *testing.T) {
	records := []country.Record{
		{ID: "PRK", NameEN: "North Korea"},
		{ID: "KOR", NameEN: "South Korea"},
	}
	rec, ok := Lookup(records, "Korea")
	if !ok || rec.ID != "PRK" {
		t.Fatalf("expected first match PRK, got %+v ok=%v", rec, ok)
	}
}

func TestWriteLookups_FoundAndMissing(t *testing.T) {
	records := []country.Record{{NameLocal: "日本", NameEN: "Japan"}}
	var buf bytes.Buffer
	WriteLookups(&buf, records, []string{"日本", "Wakanda"})
	out := buf.String()
	if !strings.Contains(out, `"日本": 日本 (Japan)`) {
		t.Fatalf("missing found line:\n%s", out)
	}
	if !strings.Contains(out, `"Wakanda": not found`) {
		t.Fatalf("missing not-found line:\n%s", out)
	}
}

func TestWriteLookups_NoTermsWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	WriteLookups(&buf, sampleRecords(3), nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got:\n%s", buf.String())
	}
}
