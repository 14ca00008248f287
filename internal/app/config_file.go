package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema.
// Nested sections improve readability and map naturally to flags.
type FileConfig struct {
	Input string `yaml:"input" json:"input"`

	Output struct {
		JSON string `yaml:"json" json:"json"`
		CSV  string `yaml:"csv" json:"csv"`
		PDF  string `yaml:"pdf" json:"pdf"`
	} `yaml:"output" json:"output"`

	Preview int      `yaml:"preview" json:"preview"`
	Search  []string `yaml:"search" json:"search"`
	Verbose bool     `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields that
// are currently unset or still at their flag defaults. Flags should already
// have been parsed; this function lets file config supply defaults while
// preserving explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	// Defaults from flag parsing that file config may override when flags not set
	const (
		inputDefault   = "worldmap.svg"
		jsonDefault    = "countries.json"
		csvDefault     = "countries.csv"
		previewDefault = 10
	)

	if (cfg.InputPath == "" || cfg.InputPath == inputDefault) && fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if (cfg.JSONPath == "" || cfg.JSONPath == jsonDefault) && fc.Output.JSON != "" {
		cfg.JSONPath = fc.Output.JSON
	}
	if (cfg.CSVPath == "" || cfg.CSVPath == csvDefault) && fc.Output.CSV != "" {
		cfg.CSVPath = fc.Output.CSV
	}
	if cfg.PDFPath == "" && fc.Output.PDF != "" {
		cfg.PDFPath = fc.Output.PDF
	}
	// Zero is a meaningful preview limit (show everything), so only the flag
	// default is overridable here.
	if cfg.PreviewLimit == previewDefault && fc.Preview > 0 {
		cfg.PreviewLimit = fc.Preview
	}
	if len(cfg.SearchTerms) == 0 && len(fc.Search) > 0 {
		cfg.SearchTerms = append([]string{}, fc.Search...)
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.InputPath) == "" {
		return errors.New("config: input path is required")
	}
	if strings.TrimSpace(cfg.JSONPath) == "" {
		return errors.New("config: json output path is required")
	}
	if strings.TrimSpace(cfg.CSVPath) == "" {
		return errors.New("config: csv output path is required")
	}
	if cfg.PreviewLimit < 0 {
		return errors.New("config: negative preview limit is not allowed")
	}
	return nil
}
