package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/atlastools/svgcountries/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath   string
		jsonPath    string
		csvPath     string
		pdfPath     string
		preview     int
		searchTerms string
		configPath  string
		verbose     bool
	)

	flag.StringVar(&inputPath, "input", "worldmap.svg", "Path to the world map SVG to read")
	flag.StringVar(&jsonPath, "output.json", "countries.json", "Path to write the JSON record list")
	flag.StringVar(&csvPath, "output.csv", "countries.csv", "Path to write the CSV table")
	flag.StringVar(&pdfPath, "output.pdf", "", "Optional path for a PDF summary sheet (empty disables)")
	flag.IntVar(&preview, "preview", 10, "Number of records to show in the console table (0 shows all)")
	flag.StringVar(&searchTerms, "search", "", "Comma-separated name lookup terms (empty uses a stock set)")
	flag.StringVar(&configPath, "config", "", "Optional YAML or JSON config file; explicit flags take precedence")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		InputPath:    inputPath,
		JSONPath:     jsonPath,
		CSVPath:      csvPath,
		PDFPath:      pdfPath,
		PreviewLimit: preview,
		Verbose:      verbose,
	}

	// Parse lookup terms into slice
	if s := strings.TrimSpace(searchTerms); s != "" {
		parts := strings.Split(s, ",")
		list := make([]string, 0, len(parts))
		for _, p := range parts {
			if v := strings.TrimSpace(p); v != "" {
				list = append(list, v)
			}
		}
		cfg.SearchTerms = list
	}

	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("config file unusable")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
		if cfg.Verbose && !verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: a run that finished with failed stages maps to
		// exit code 2 so callers can tell partial output from a run that
		// never started; anything else is a plain failure.
		if errors.Is(err, app.ErrPartialFailure) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run()
}
