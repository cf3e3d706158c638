package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Data    DataConfig    `yaml:"data" envconfig:"DATA"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"greenfin.log"`
}

// DataConfig names the input exports and the columns the loader coerces.
// File fields are resolved against the data directory unless absolute.
type DataConfig struct {
	BondsFile  string `yaml:"bonds_file" envconfig:"BONDS_FILE" default:"GREEN_BONDS_RAW_DATA.csv" validate:"required"`
	LoansFile  string `yaml:"loans_file" envconfig:"LOANS_FILE" default:"GREEN_LOANS_RAW_DATA.csv" validate:"required"`
	FossilFile string `yaml:"fossil_file" envconfig:"FOSSIL_FILE" default:"nzba_fossil_comprehensive.xlsx"`

	Columns ColumnConfig `yaml:"columns" envconfig:"COLUMNS"`
}

// ColumnConfig maps the loader onto the export's header names. The defaults
// match the Refinitiv export layout.
type ColumnConfig struct {
	ISIN    string `yaml:"isin" envconfig:"ISIN" default:"ISIN"`
	Issuer  string `yaml:"issuer" envconfig:"ISSUER" default:"IssuerCommonName" validate:"required"`
	Country string `yaml:"country" envconfig:"COUNTRY" default:"IssuerCountry" validate:"required"`
	Date    string `yaml:"date" envconfig:"DATE" default:"IssueDate" validate:"required"`
	Amount  string `yaml:"amount" envconfig:"AMOUNT" default:"FaceIssuedTotal" validate:"required"`
}

// Load loads configuration from environment variables and an optional YAML
// config file. Values set in the config file override the env-derived ones.
func Load() (*Config, error) {
	return LoadFromFile(getConfigFilePath())
}

// LoadFromFile is Load with an explicit config file location, primarily for
// tests. A missing file is not an error; env values and defaults apply.
func LoadFromFile(configFile string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("GREENFIN", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			fileConfig, err := loadFromFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
			cfg = mergeConfigs(*fileConfig, cfg)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs overlays non-empty file values onto the env-derived config.
func mergeConfigs(fileConfig, envConfig Config) Config {
	if fileConfig.Logging.Level != "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if fileConfig.Logging.Output != "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if fileConfig.Logging.FilePath != "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}

	if fileConfig.Data.BondsFile != "" {
		envConfig.Data.BondsFile = fileConfig.Data.BondsFile
	}
	if fileConfig.Data.LoansFile != "" {
		envConfig.Data.LoansFile = fileConfig.Data.LoansFile
	}
	if fileConfig.Data.FossilFile != "" {
		envConfig.Data.FossilFile = fileConfig.Data.FossilFile
	}

	if fileConfig.Data.Columns.ISIN != "" {
		envConfig.Data.Columns.ISIN = fileConfig.Data.Columns.ISIN
	}
	if fileConfig.Data.Columns.Issuer != "" {
		envConfig.Data.Columns.Issuer = fileConfig.Data.Columns.Issuer
	}
	if fileConfig.Data.Columns.Country != "" {
		envConfig.Data.Columns.Country = fileConfig.Data.Columns.Country
	}
	if fileConfig.Data.Columns.Date != "" {
		envConfig.Data.Columns.Date = fileConfig.Data.Columns.Date
	}
	if fileConfig.Data.Columns.Amount != "" {
		envConfig.Data.Columns.Amount = fileConfig.Data.Columns.Amount
	}

	return envConfig
}

// validate validates the configuration via struct tags.
func (c *Config) validate() error {
	return validator.New().Struct(c)
}

// getConfigFilePath returns the expected config file location next to the
// executable, falling back to the working directory.
func getConfigFilePath() string {
	const name = "greenfin.yaml"

	exe, err := os.Executable()
	if err != nil {
		return name
	}
	return filepath.Join(filepath.Dir(exe), name)
}
