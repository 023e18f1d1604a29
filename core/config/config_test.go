package config

import (
	"os"
	"path/filepath"
	"testing"

	"barrel/core/logger"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir(), logger.Nop{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("got %+v, want defaults %+v", cfg, Default())
	}
	if !cfg.Recursive {
		t.Fatal("recursive should default to true")
	}
}

func TestLoadFile(t *testing.T) {
	wd := t.TempDir()
	content := `base: src
output: components.js
header: "// generated\n"
pattern: "**/index.tsx"
`
	if err := os.WriteFile(filepath.Join(wd, FileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(wd, logger.Nop{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Base != "src" || cfg.Output != "components.js" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Header != "// generated\n" {
		t.Fatalf("header = %q", cfg.Header)
	}
	if cfg.Pattern != "**/index.tsx" {
		t.Fatalf("pattern = %q", cfg.Pattern)
	}
	if !cfg.Recursive {
		t.Fatal("recursive omitted in file should stay true")
	}
}

func TestLoadRecursiveFalse(t *testing.T) {
	wd := t.TempDir()
	if err := os.WriteFile(filepath.Join(wd, FileName), []byte("recursive: false\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(wd, logger.Nop{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Recursive {
		t.Fatal("recursive: false not honored")
	}
}

func TestLoadBadYAML(t *testing.T) {
	wd := t.TempDir()
	if err := os.WriteFile(filepath.Join(wd, FileName), []byte("base: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(wd, logger.Nop{}); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"empty base", func(c *Config) { c.Base = "" }, true},
		{"empty output", func(c *Config) { c.Output = "" }, true},
		{"empty pattern", func(c *Config) { c.Pattern = "" }, true},
		{"bad pattern", func(c *Config) { c.Pattern = "[unterminated" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
