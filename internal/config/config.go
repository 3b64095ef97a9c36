package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/alexanderramin/doseplan/internal/contract"
)

// Config holds default generation parameters, optionally loaded from a YAML
// or JSON file. Flags set explicitly on the command line take precedence
// over file values.
type Config struct {
	Duration       int    `json:"duration"`
	IntervalMin    int    `json:"interval_min"`
	IntervalMax    int    `json:"interval_max"`
	StartDate      string `json:"start_date"`
	OutputFilePath string `json:"output_file_path"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Duration:       contract.DefaultDuration,
		IntervalMin:    contract.DefaultIntervalMin,
		IntervalMax:    contract.DefaultIntervalMax,
		StartDate:      contract.DefaultStartDate,
		OutputFilePath: "output.txt",
	}
}

// Load reads a defaults file over the built-in defaults. The format is
// chosen by extension: .yaml/.yml or .json.
func Load(path string) (Config, error) {
	var parser koanf.Parser
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return Config{}, fmt.Errorf("unsupported config format %q (expected .yaml, .yml or .json)", filepath.Ext(path))
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the loaded values against the generator preconditions so
// a bad defaults file fails before any generation work.
func (c Config) Validate() error {
	if c.Duration < 0 {
		return fmt.Errorf("duration: must be >= 0, got %d", c.Duration)
	}
	if c.IntervalMax < c.IntervalMin {
		return fmt.Errorf("interval bounds: max (%d) must be >= min (%d)", c.IntervalMax, c.IntervalMin)
	}
	if c.StartDate == "" {
		return fmt.Errorf("start date: required")
	}
	if c.OutputFilePath == "" {
		return fmt.Errorf("output file path: required")
	}
	return nil
}
