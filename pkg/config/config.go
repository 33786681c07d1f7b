package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Addr             string        `mapstructure:"addr"`
	MySQLDSN         string        `mapstructure:"mysql_dsn"`
	OpenAIAPIKey     string        `mapstructure:"openai_api_key"`
	OpenAIModel      string        `mapstructure:"openai_model"`
	NarrativeTimeout time.Duration `mapstructure:"narrative_timeout"`
	ShutdownTimeout  time.Duration `mapstructure:"shutdown_timeout"`
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("addr", ":8080")
	v.SetDefault("openai_model", "gpt-4o-mini")
	v.SetDefault("narrative_timeout", 30*time.Second)
	v.SetDefault("shutdown_timeout", 10*time.Second)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.MySQLDSN == "" {
		return nil, fmt.Errorf("mysql_dsn is required")
	}
	return &cfg, nil
}
