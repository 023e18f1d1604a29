package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar"
	"gopkg.in/yaml.v3"

	"barrel/core/logger"
)

// Config is an immutable value: loading produces a fresh Config, settings
// are never merged onto an existing one.
type Config struct {
	Base      string `yaml:"base"`
	Output    string `yaml:"output"`
	Header    string `yaml:"header"`
	Pattern   string `yaml:"pattern"`
	Recursive bool   `yaml:"recursive"`
}

const FileName = "barrel.yaml"

func Default() Config {
	return Config{
		Base:      ".",
		Output:    "index.js",
		Header:    "",
		Pattern:   "**/index.js",
		Recursive: true,
	}
}

// Load reads barrel.yaml from wd, falling back to Default when the file is
// absent. Fields omitted in the file keep their default values.
func Load(wd string, log logger.Logger) (Config, error) {
	log = logger.OrNop(log)

	filePath := filepath.Join(wd, FileName)
	if _, err := os.Stat(filePath); err != nil {
		log.Debug("No config file found, using default config")
		return Default(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", filePath, err)
	}

	log.Debug("Config file found: %s", filePath)
	log.Debug("Config: %+v", cfg)

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Base == "" {
		return fmt.Errorf("base must not be empty")
	}
	if c.Output == "" {
		return fmt.Errorf("output must not be empty")
	}
	if c.Pattern == "" {
		return fmt.Errorf("pattern must not be empty")
	}
	if _, err := doublestar.Match(c.Pattern, "probe"); err != nil {
		return fmt.Errorf("bad pattern %q: %w", c.Pattern, err)
	}
	return nil
}
