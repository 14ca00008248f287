package extract

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html/charset"

	"github.com/atlastools/svgcountries/internal/country"
)

// svgNamespace is the default namespace URI of SVG documents.
const svgNamespace = "http://www.w3.org/2000/svg"

// FromFile reads an SVG map and extracts its country records. Structured
// parsing is tried first; when the document is not well formed the raw bytes
// are scanned instead, so a broken export still yields whatever records its
// path tags carry. The error is non-nil only when the file itself cannot be
// read.
func FromFile(path string) ([]country.Record, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}
	records, err := FromDocument(data)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("structured parse failed, scanning raw text")
		return FromPattern(data), nil
	}
	return records, nil
}

// FromDocument parses data as XML and collects records from every path
// element in document order. Elements under the SVG default namespace are
// queried separately when the plain query finds nothing. A parse error means
// the document is malformed and the caller should fall back to FromPattern.
func FromDocument(data []byte) ([]country.Record, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	nodes := xmlquery.Find(doc, "//path")
	if len(nodes) == 0 {
		if expr, err := xpath.CompileWithNS("//svg:path", map[string]string{"svg": svgNamespace}); err == nil {
			nodes = xmlquery.QuerySelectorAll(doc, expr)
		}
	}
	records := make([]country.Record, 0, len(nodes))
	for _, node := range nodes {
		attrs := make(map[string]string, len(node.Attr))
		for _, a := range node.Attr {
			attrs[a.Name.Local] = a.Value
		}
		if rec, ok := country.FromAttrs(attrs); ok {
			records = append(records, rec)
		}
	}
	return records, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readInput loads the file and normalizes its encoding to UTF-8. Map exports
// travel through spreadsheet and design tools that prepend BOMs or save
// UTF-16; the charset sniffer transcodes those, and any byte order mark that
// survives transcoding is trimmed so the XML tokenizer never sees it.
func readInput(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	data := raw
	if r, err := charset.NewReader(bytes.NewReader(raw), ""); err == nil {
		if converted, err := io.ReadAll(r); err == nil {
			data = converted
		}
	}
	return bytes.TrimPrefix(data, utf8BOM), nil
}
