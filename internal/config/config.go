package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete reconciler configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Output   OutputConfig   `yaml:"output" envconfig:"OUTPUT"`
	BigQuery BigQueryConfig `yaml:"bigquery" envconfig:"BIGQUERY"`
	Mappings Mappings       `yaml:"mappings" envconfig:"-"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// OutputConfig contains file output configuration.
type OutputConfig struct {
	Dir string `yaml:"dir" envconfig:"DIR"`
}

// BigQueryConfig identifies the warehouse tables the result sets append to.
// Project is only required when warehouse output is requested.
type BigQueryConfig struct {
	Project       string `yaml:"project" envconfig:"PROJECT"`
	Dataset       string `yaml:"dataset" envconfig:"DATASET"`
	RecordsTable  string `yaml:"records_table" envconfig:"RECORDS_TABLE"`
	VarianceTable string `yaml:"variance_table" envconfig:"VARIANCE_TABLE"`
	PricingTable  string `yaml:"pricing_table" envconfig:"PRICING_TABLE"`
	SummaryTable  string `yaml:"summary_table" envconfig:"SUMMARY_TABLE"`
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/finrec.log",
		},
		Output: OutputConfig{Dir: "output"},
		BigQuery: BigQueryConfig{
			Dataset:       "mm_fin_internal",
			RecordsTable:  "fin_rec_data",
			VarianceTable: "fin_rec_variance",
			PricingTable:  "fin_rec_pricing",
			SummaryTable:  "fin_rec_summary",
		},
		Mappings: DefaultMappings(),
	}
}

// Load loads configuration from the optional YAML file and then applies
// FINREC_* environment variables on top. Keys absent from both keep
// their built-in defaults.
func Load() (*Config, error) {
	cfg := defaultConfig()

	configFile := configFilePath()
	if _, err := os.Stat(configFile); err == nil {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Environment variables override file values. Unset variables leave
	// the fields untouched.
	if err := envconfig.Process("FINREC", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if cfg.Mappings.isZero() {
		cfg.Mappings = DefaultMappings()
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func configFilePath() string {
	if p := os.Getenv("FINREC_CONFIG_FILE"); p != "" {
		return p
	}
	if exe, err := os.Executable(); err == nil {
		return filepath.Join(filepath.Dir(exe), "config.yaml")
	}
	return "config.yaml"
}

func (c *Config) validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid log output: %s", c.Logging.Output)
	}

	if err := c.Mappings.Validate(); err != nil {
		return fmt.Errorf("invalid column mappings: %w", err)
	}

	return nil
}
