// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"fjacquet/expense-categorizer/internal/logging"
	"fjacquet/expense-categorizer/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by InitializeConfig.
const EnvPrefix = "EXPENSE"

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// CSVConfig holds batch CSV settings.
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// CategorizerConfig selects the scoring variant and the learning behaviour.
type CategorizerConfig struct {
	Variant             string  `mapstructure:"variant" yaml:"variant"`
	Learn               bool    `mapstructure:"learn" yaml:"learn"`
	MinLearnTokenLength int     `mapstructure:"min_learn_token_length" yaml:"min_learn_token_length"`
	ConfidenceCeiling   float64 `mapstructure:"confidence_ceiling" yaml:"confidence_ceiling"`
}

// CategoriesConfig names the keyword files.
type CategoriesConfig struct {
	File        string `mapstructure:"file" yaml:"file"`
	LearnedFile string `mapstructure:"learned_file" yaml:"learned_file"`
}

// CorrectionsConfig selects where corrections are logged.
type CorrectionsConfig struct {
	Backend  string `mapstructure:"backend" yaml:"backend"`
	File     string `mapstructure:"file" yaml:"file"`
	Database string `mapstructure:"database" yaml:"database"`
}

// Config represents the complete application configuration
type Config struct {
	Log         LogConfig         `mapstructure:"log" yaml:"log"`
	CSV         CSVConfig         `mapstructure:"csv" yaml:"csv"`
	Categorizer CategorizerConfig `mapstructure:"categorizer" yaml:"categorizer"`
	Categories  CategoriesConfig  `mapstructure:"categories" yaml:"categories"`
	Corrections CorrectionsConfig `mapstructure:"corrections" yaml:"corrections"`
}

// InitializeConfig loads configuration from defaults, the optional config
// file and EXPENSE_* environment variables, in increasing precedence.
func InitializeConfig() (*Config, error) {
	return InitializeConfigFromFile("")
}

// InitializeConfigFromFile is InitializeConfig with an explicit config file.
// An empty path searches $HOME/.expense-categorizer, ./.expense-categorizer and ".".
func InitializeConfigFromFile(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.expense-categorizer")
		v.AddConfigPath(".expense-categorizer")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if configFile != "" {
				return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
			}
			// a broken file in a search path is not fatal; defaults and env still apply
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// LOG_LEVEL without prefix is honoured, as in the .env files
	if err := v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		fmt.Printf("Warning: failed to bind LOG_LEVEL environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("categorizer.variant", models.VariantBrandAware)
	v.SetDefault("categorizer.learn", true)
	v.SetDefault("categorizer.min_learn_token_length", 4)
	v.SetDefault("categorizer.confidence_ceiling", 0.98)

	v.SetDefault("categories.file", "categories.yaml")
	v.SetDefault("categories.learned_file", "learned_keywords.yaml")

	v.SetDefault("corrections.backend", models.CorrectionBackendYAML)
	v.SetDefault("corrections.file", "database/corrections.yaml")
	v.SetDefault("corrections.database", "database/corrections.db")
}

// DefaultConfig returns the configuration InitializeConfig produces with no
// config file and no environment overrides.
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	_ = v.Unmarshal(&config)
	return &config
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	switch config.Categorizer.Variant {
	case models.VariantBrandAware, models.VariantPattern:
	default:
		return fmt.Errorf("invalid categorizer variant: %s (must be '%s' or '%s')",
			config.Categorizer.Variant, models.VariantBrandAware, models.VariantPattern)
	}

	if config.Categorizer.MinLearnTokenLength < 1 || config.Categorizer.MinLearnTokenLength > 64 {
		return fmt.Errorf("categorizer.min_learn_token_length must be between 1 and 64, got: %d",
			config.Categorizer.MinLearnTokenLength)
	}

	if config.Categorizer.ConfidenceCeiling <= 0.5 || config.Categorizer.ConfidenceCeiling >= 1.0 {
		return fmt.Errorf("categorizer.confidence_ceiling must be in (0.5, 1.0), got: %f",
			config.Categorizer.ConfidenceCeiling)
	}

	switch config.Corrections.Backend {
	case models.CorrectionBackendYAML:
		if config.Corrections.File == "" {
			return fmt.Errorf("corrections.file is required for the yaml backend")
		}
	case models.CorrectionBackendSQLite:
		if config.Corrections.Database == "" {
			return fmt.Errorf("corrections.database is required for the sqlite backend")
		}
	case models.CorrectionBackendNone:
	default:
		return fmt.Errorf("invalid corrections backend: %s", config.Corrections.Backend)
	}

	return nil
}

// Validate checks c, for instance after command-line overrides were applied.
func (c *Config) Validate() error {
	return validateConfig(c)
}

// Delimiter returns the CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	r := []rune(c.CSV.Delimiter)
	if len(r) == 0 {
		return ','
	}
	return r[0]
}

// NewLogger builds the application logger from the Log section.
func (c *Config) NewLogger() logging.Logger {
	return logging.NewLogrusAdapter(c.Log.Level, c.Log.Format)
}
