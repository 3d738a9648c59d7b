package reqchain

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PatternStyle = PatternNested
	cfg.ChainStyle = ChainLastWord
	cfg.DBPath = "runs.db"

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded != cfg {
		t.Errorf("loaded = %+v, want %+v", loaded, cfg)
	}
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("chain_style: last-word\n"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ChainStyle != ChainLastWord {
		t.Errorf("chain style = %q, want %q", cfg.ChainStyle, ChainLastWord)
	}
	if cfg.PatternStyle != PatternDirect {
		t.Errorf("pattern style = %q, want default %q", cfg.PatternStyle, PatternDirect)
	}
	if cfg.Provider.BaseURL == "" {
		t.Error("provider base URL default not applied")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"nested last-word", func(c *Config) {
			c.PatternStyle = PatternNested
			c.ChainStyle = ChainLastWord
		}, false},
		{"bad pattern style", func(c *Config) { c.PatternStyle = "shallow" }, true},
		{"bad chain style", func(c *Config) { c.ChainStyle = "first-word" }, true},
		{"missing provider URL", func(c *Config) { c.Provider.BaseURL = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
