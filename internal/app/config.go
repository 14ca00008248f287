package app

// Config holds runtime configuration for the application.
type Config struct {
	// Input
	InputPath string

	// Outputs. JSON and CSV are always written; the PDF summary sheet is
	// produced only when a path is set.
	JSONPath string
	CSVPath  string
	PDFPath  string

	// Console reporting
	PreviewLimit int
	SearchTerms  []string

	// Behavior
	Verbose bool
}

// defaultSearchTerms are looked up when no terms are configured by flag or
// file.
var defaultSearchTerms = []string{"中国", "美国", "日本", "印度尼西亚"}
