package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host         string   `toml:"host"`
	Port         int      `toml:"port"`
	AllowOrigins []string `toml:"allow_origins"`
	LogLevel     string   `toml:"log_level"`
	LogFile      string   `toml:"log_file"`
	MaxUploadMB  int      `toml:"max_upload_mb"`
	DataFile     string   `toml:"data_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Host:         "127.0.0.1",
		Port:         8081,
		AllowOrigins: []string{"*"},
		LogLevel:     "info",
		LogFile:      "logs/scorecard-service.log",
		MaxUploadMB:  64,
		DataFile:     "data/final.xlsx",
	}
}

// Load reads config: defaults -> TOML file -> env vars (env wins). The
// file path comes from SCORECARD_CONFIG, falling back to scorecard.toml
// in the working directory; a missing file is fine.
func Load() Config {
	cfg := Default()

	path := getenv("SCORECARD_CONFIG", "scorecard.toml")
	if data, err := os.ReadFile(path); err == nil {
		_ = toml.Unmarshal(data, &cfg)
	}

	cfg.Host = getenv("HOST", cfg.Host)
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := os.Getenv("ALLOW_ORIGINS"); v != "" {
		cfg.AllowOrigins = strings.Split(v, ",")
	}
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = getenv("LOG_FILE", cfg.LogFile)
	if v := os.Getenv("MAX_UPLOAD_MB"); v != "" {
		if mb, err := strconv.Atoi(v); err == nil {
			cfg.MaxUploadMB = mb
		}
	}
	cfg.DataFile = getenv("DATA_FILE", cfg.DataFile)

	return cfg
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
