package app

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/atlastools/svgcountries/internal/export"
	"github.com/atlastools/svgcountries/internal/extract"
	"github.com/atlastools/svgcountries/internal/report"
)

// App wires the extraction pipeline to its exports and console reports.
type App struct {
	cfg Config
	out io.Writer
}

// ErrPartialFailure is returned when the run finished but one or more stages
// reported an error. Per the exit code policy this condition results in a
// non-zero process exit, while every stage still gets its chance to run.
var ErrPartialFailure = fmt.Errorf("one or more stages failed")

// New validates cfg and prepares an App. Console reports go to stdout; tests
// swap the writer.
func New(cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if len(cfg.SearchTerms) == 0 {
		cfg.SearchTerms = append([]string(nil), defaultSearchTerms...)
	}
	return &App{cfg: cfg, out: os.Stdout}, nil
}

// Run executes one conversion pass: extract, preview, export, report. A
// failing stage is logged and marks the run, but never stops the stages after
// it, so a bad CSV path still leaves a good JSON file behind.
func (a *App) Run() error {
	failed := false

	log.Info().Str("input", a.cfg.InputPath).Msg("reading world map")
	records, err := extract.FromFile(a.cfg.InputPath)
	if err != nil {
		log.Warn().Err(err).Msg("extraction failed; continuing with zero records")
		failed = true
	}
	if len(records) == 0 && err == nil {
		log.Warn().Str("input", a.cfg.InputPath).Msg("no country data found in input")
	}

	report.Preview(a.out, records, a.cfg.PreviewLimit)

	if err := export.WriteJSON(a.cfg.JSONPath, records); err != nil {
		log.Warn().Err(err).Str("path", a.cfg.JSONPath).Msg("json export failed")
		failed = true
	} else {
		log.Info().Str("path", a.cfg.JSONPath).Int("records", len(records)).Msg("wrote json")
	}

	if err := export.WriteCSV(a.cfg.CSVPath, records); err != nil {
		log.Warn().Err(err).Str("path", a.cfg.CSVPath).Msg("csv export failed")
		failed = true
	} else {
		log.Info().Str("path", a.cfg.CSVPath).Int("records", len(records)).Msg("wrote csv")
	}

	if a.cfg.PDFPath != "" {
		if err := export.WritePDF(a.cfg.PDFPath, records); err != nil {
			log.Warn().Err(err).Str("path", a.cfg.PDFPath).Msg("pdf export failed")
			failed = true
		} else {
			log.Info().Str("path", a.cfg.PDFPath).Msg("wrote pdf")
		}
	}

	fmt.Fprintln(a.out)
	report.WriteTypeBreakdown(a.out, records)
	fmt.Fprintln(a.out)
	report.WriteLookups(a.out, records, a.cfg.SearchTerms)

	if failed {
		return ErrPartialFailure
	}
	return nil
}
