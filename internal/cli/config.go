package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// =============================================================================
// Configuration
// =============================================================================

// Config holds user preferences loaded from the configuration file.
// All fields are optional; zero values fall back to built-in defaults.
type Config struct {
	Locale     string     `toml:"locale"`
	APIVersion string     `toml:"api_version"`
	UserAgent  string     `toml:"user_agent"`
	Auth       AuthConfig `toml:"auth"`
}

// AuthConfig holds credentials for the staging environment, which sits
// behind basic auth.
type AuthConfig struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
}

// configPath returns the configuration file path using the XDG standard
// (~/.config/foodfacts/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// LoadConfig reads the user's configuration file.
// A missing file returns a zero Config and no error; a malformed file is an error.
func LoadConfig() (Config, error) {
	var cfg Config
	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// configCommand creates the config command for inspecting resolved settings.
func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err != nil {
				printWarning("No configuration file found, using defaults")
			} else {
				printSuccess("Configuration loaded")
			}
			printDetail("%s", path)

			printKeyValue("locale", orDefault(c.config.Locale, "world"))
			printKeyValue("api_version", orDefault(c.config.APIVersion, "v0"))
			printKeyValue("user_agent", orDefault(c.config.UserAgent, "(built-in)"))
			printKeyValue("auth", orDefault(c.config.Auth.Username, "(not set)"))
			return nil
		},
	}
}

// orDefault returns s, or fallback if s is empty.
func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
