package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level cfopsum.yaml configuration.
type Config struct {
	Columns  ColumnsConfig `yaml:"columns"`
	SkipRows int           `yaml:"skip_rows"`
	Export   ExportConfig  `yaml:"export"`
}

// ColumnsConfig names the two required sheet columns.
type ColumnsConfig struct {
	Code   string `yaml:"code"`
	Amount string `yaml:"amount"`
}

// ExportConfig controls the consolidated summary output.
type ExportConfig struct {
	Path string `yaml:"path"`
}

// Load reads a cfopsum.yaml file from disk. Fields left empty fall back to
// the defaults, so a partial file only overrides what it names.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Columns.Code == "" {
		cfg.Columns.Code = "CFOP"
	}
	if cfg.Columns.Amount == "" {
		cfg.Columns.Amount = "Valor NF"
	}
	if cfg.SkipRows < 0 {
		return nil, fmt.Errorf("skip_rows must not be negative, got %d", cfg.SkipRows)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration matching the fiscal exports this tool
// was built for: CFOP/Valor NF columns, header on row 18.
func Default() *Config {
	return &Config{
		Columns: ColumnsConfig{
			Code:   "CFOP",
			Amount: "Valor NF",
		},
		SkipRows: 17,
		Export: ExportConfig{
			Path: "resumo_cfop_entradas_saidas.csv",
		},
	}
}
