package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv blanks every override so ambient variables cannot leak into a
// test's Load call.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HOST", "PORT", "ALLOW_ORIGINS", "LOG_LEVEL", "LOG_FILE", "MAX_UPLOAD_MB", "DATA_FILE"} {
		t.Setenv(k, "")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Addr() != "127.0.0.1:8081" {
		t.Errorf("Addr() = %q, want %q", cfg.Addr(), "127.0.0.1:8081")
	}
	if cfg.MaxUploadMB != 64 {
		t.Errorf("MaxUploadMB = %d, want 64", cfg.MaxUploadMB)
	}
	if len(cfg.AllowOrigins) != 1 || cfg.AllowOrigins[0] != "*" {
		t.Errorf("AllowOrigins = %v, want [*]", cfg.AllowOrigins)
	}
}

func TestLoadFromTOML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "scorecard.toml")
	toml := `
host = "0.0.0.0"
port = 9090
log_level = "debug"
data_file = "fixtures/final.xlsx"
allow_origins = ["http://localhost:5173"]
`
	if err := os.WriteFile(path, []byte(toml), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	t.Setenv("SCORECARD_CONFIG", path)

	cfg := Load()
	if cfg.Addr() != "0.0.0.0:9090" {
		t.Errorf("Addr() = %q, want %q", cfg.Addr(), "0.0.0.0:9090")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.DataFile != "fixtures/final.xlsx" {
		t.Errorf("DataFile = %q", cfg.DataFile)
	}
	if len(cfg.AllowOrigins) != 1 || cfg.AllowOrigins[0] != "http://localhost:5173" {
		t.Errorf("AllowOrigins = %v", cfg.AllowOrigins)
	}
	// fields absent from the file keep their defaults
	if cfg.MaxUploadMB != 64 {
		t.Errorf("MaxUploadMB = %d, want default 64", cfg.MaxUploadMB)
	}
}

func TestLoadEnvWinsOverTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scorecard.toml")
	if err := os.WriteFile(path, []byte("port = 9090\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	t.Setenv("SCORECARD_CONFIG", path)
	t.Setenv("PORT", "7777")
	t.Setenv("HOST", "10.0.0.5")
	t.Setenv("ALLOW_ORIGINS", "http://a.example,http://b.example")
	t.Setenv("MAX_UPLOAD_MB", "8")
	t.Setenv("DATA_FILE", "/srv/final.xlsx")

	cfg := Load()
	if cfg.Addr() != "10.0.0.5:7777" {
		t.Errorf("Addr() = %q, want %q", cfg.Addr(), "10.0.0.5:7777")
	}
	if len(cfg.AllowOrigins) != 2 || cfg.AllowOrigins[1] != "http://b.example" {
		t.Errorf("AllowOrigins = %v", cfg.AllowOrigins)
	}
	if cfg.MaxUploadMB != 8 {
		t.Errorf("MaxUploadMB = %d, want 8", cfg.MaxUploadMB)
	}
	if cfg.DataFile != "/srv/final.xlsx" {
		t.Errorf("DataFile = %q", cfg.DataFile)
	}
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SCORECARD_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	cfg := Load()
	if cfg.Port != 8081 || cfg.Host != "127.0.0.1" {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadBadEnvNumbersIgnored(t *testing.T) {
	t.Setenv("SCORECARD_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))
	t.Setenv("PORT", "not-a-number")
	t.Setenv("MAX_UPLOAD_MB", "many")

	cfg := Load()
	if cfg.Port != 8081 {
		t.Errorf("Port = %d, want default 8081", cfg.Port)
	}
	if cfg.MaxUploadMB != 64 {
		t.Errorf("MaxUploadMB = %d, want default 64", cfg.MaxUploadMB)
	}
}
