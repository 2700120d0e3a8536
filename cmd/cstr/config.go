package main

import (
	"github.com/spf13/viper"
)

// Config holds tool-wide settings; per-subcommand knobs stay flags.
type Config struct {
	Input   string `mapstructure:"input"`    // default corpus path, "-" for stdin
	LogDB   string `mapstructure:"log_db"`   // SQLite log sink, empty for console
	LogTail int    `mapstructure:"log_tail"` // entries shown by the logs subcommand
}

func DefaultConfig() *Config {
	return &Config{
		Input:   "-",
		LogTail: 20,
	}
}

// LoadConfig loads configuration from file and environment, in that
// order of precedence. Missing config files are not an error.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("cstr")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.cstr")
	viper.SetEnvPrefix("CSTR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
