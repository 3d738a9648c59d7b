package reqchain

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/reqchain/reqchain/nlp"
)

// Pattern styles control the adjacency operator applied to every role
// of every template.
const (
	// PatternDirect matches only immediate parent-child links.
	PatternDirect = "direct"
	// PatternNested matches links at any depth.
	PatternNested = "nested"
)

// Chain styles control how groups canonicalize when linking chains.
const (
	// ChainWholeGroup compares whole-group lemma sequences.
	ChainWholeGroup = "whole-group"
	// ChainLastWord compares only the final token's lemma.
	ChainLastWord = "last-word"
)

// Config holds all configuration for the extractor and the CLI around
// it.
type Config struct {
	// Provider configures the token provider sidecar.
	Provider nlp.HTTPConfig `json:"provider" yaml:"provider"`

	// PatternStyle is "direct" or "nested".
	PatternStyle string `json:"pattern_style" yaml:"pattern_style"`

	// ChainStyle is "whole-group" or "last-word".
	ChainStyle string `json:"chain_style" yaml:"chain_style"`

	// InputPath is the requirement document to extract from.
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is the acceptance-test workbook to write.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// DBPath, when set, persists each run to a SQLite database.
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// DefaultConfig returns a Config with the stock settings.
func DefaultConfig() Config {
	return Config{
		Provider: nlp.HTTPConfig{
			BaseURL:  "http://localhost:9010",
			Pipeline: "en_core_web_md",
		},
		PatternStyle: PatternDirect,
		ChainStyle:   ChainWholeGroup,
		InputPath:    "input.txt",
		OutputPath:   "output.xlsx",
	}
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	switch c.PatternStyle {
	case PatternDirect, PatternNested:
	default:
		return fmt.Errorf("%w: pattern_style must be %q or %q, got %q",
			ErrInvalidConfig, PatternDirect, PatternNested, c.PatternStyle)
	}
	switch c.ChainStyle {
	case ChainWholeGroup, ChainLastWord:
	default:
		return fmt.Errorf("%w: chain_style must be %q or %q, got %q",
			ErrInvalidConfig, ChainWholeGroup, ChainLastWord, c.ChainStyle)
	}
	if c.Provider.BaseURL == "" {
		return fmt.Errorf("%w: provider.base_url is required", ErrInvalidConfig)
	}
	return nil
}

// LoadConfig reads a YAML config file, applying defaults for anything
// unset.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reqchain: reading config file: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("reqchain: parsing config file: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes the configuration to a YAML file, creating parent
// directories as needed.
func SaveConfig(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("reqchain: creating config directory: %w", err)
		}
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("reqchain: marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("reqchain: writing config file: %w", err)
	}
	return nil
}
