package extract

import (
	"regexp"

	"github.com/atlastools/svgcountries/internal/country"
)

var (
	// pathTagRe matches an opening path tag with at least one attribute,
	// regardless of case, attribute order, or line breaks inside the tag.
	pathTagRe = regexp.MustCompile(`(?i)<path\s+[^>]*>`)

	// idAttrRe is anchored on leading whitespace so the bare id attribute
	// cannot be shadowed by data-* names that contain "id" as a substring.
	idAttrRe = regexp.MustCompile(`(?:^|\s)id="([^"]*)"`)

	dataAttrRes = compileDataAttrRes()
)

func compileDataAttrRes() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp, len(country.DataAttrs))
	for _, name := range country.DataAttrs {
		res[name] = regexp.MustCompile(regexp.QuoteMeta(name) + `="([^"]*)"`)
	}
	return res
}

// FromPattern scans raw bytes for path tags and assembles records from the
// attributes found inside each tag. It never fails: a document with no
// recognizable path tags simply yields no records. Used when the input is
// too malformed for FromDocument.
func FromPattern(data []byte) []country.Record {
	tags := pathTagRe.FindAll(data, -1)
	records := make([]country.Record, 0, len(tags))
	for _, tag := range tags {
		attrs := make(map[string]string, len(dataAttrRes)+1)
		if m := idAttrRe.FindSubmatch(tag); m != nil {
			attrs[country.AttrID] = string(m[1])
		}
		for name, re := range dataAttrRes {
			if m := re.FindSubmatch(tag); m != nil {
				attrs[name] = string(m[1])
			}
		}
		if rec, ok := country.FromAttrs(attrs); ok {
			records = append(records, rec)
		}
	}
	return records
}
