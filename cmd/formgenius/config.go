package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type config struct {
	ServerURL string `mapstructure:"server_url"`
	DataDir   string `mapstructure:"data_dir"`
	LogLevel  string `mapstructure:"log_level"`
	LogFile   string `mapstructure:"log_file"`
}

// loadConfig reads ~/.formgenius/config.yaml when present and fills the
// rest from defaults. FORMGENIUS_* environment variables override both.
func loadConfig() (*config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".formgenius")

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetDefault("server_url", "https://formgenius-backend.onrender.com/api")
	v.SetDefault("data_dir", dir)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", filepath.Join(dir, "logs", "formgenius.log"))
	v.SetEnvPrefix("FORMGENIUS")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
