package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, appName), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, appName, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfig(t *testing.T) {
	writeConfigFile(t, `
locale = "fr-ca"
api_version = "v2"
user_agent = "my-app/1.0"

[auth]
username = "user"
password = "pwd"
`)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Locale != "fr-ca" {
		t.Errorf("Locale = %q, want %q", cfg.Locale, "fr-ca")
	}
	if cfg.APIVersion != "v2" {
		t.Errorf("APIVersion = %q, want %q", cfg.APIVersion, "v2")
	}
	if cfg.UserAgent != "my-app/1.0" {
		t.Errorf("UserAgent = %q, want %q", cfg.UserAgent, "my-app/1.0")
	}
	if cfg.Auth.Username != "user" || cfg.Auth.Password != "pwd" {
		t.Errorf("Auth = %+v", cfg.Auth)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("LoadConfig() = %+v, want zero config", cfg)
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	writeConfigFile(t, "locale = [not toml")

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() accepted a malformed file")
	}
}

func TestConfigPathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	path, err := configPath()
	if err != nil {
		t.Fatalf("configPath() error: %v", err)
	}
	want := filepath.Join("/tmp/xdg", appName, "config.toml")
	if path != want {
		t.Errorf("configPath() = %q, want %q", path, want)
	}
}
