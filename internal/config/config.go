package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the top-level devgauge configuration.
type Config struct {
	GitHubToken  string `mapstructure:"github_token"`
	GitHubAPIURL string `mapstructure:"github_api_url"`
	Fetch        Fetch  `mapstructure:"fetch"`
	Output       Output `mapstructure:"output"`
}

// Fetch defines commit-history fetch behavior.
type Fetch struct {
	Concurrency    int `mapstructure:"concurrency"`
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. A .env file in the
// working directory is loaded first so GITHUB_TOKEN can live there.
func Load(cfgFile string) (*Config, error) {
	// Missing .env is fine; real environment always wins.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("github_api_url", DefaultGitHubAPIURL)
	v.SetDefault("fetch.concurrency", DefaultFetch.Concurrency)
	v.SetDefault("fetch.timeout_seconds", DefaultFetch.TimeoutSeconds)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	_ = v.BindEnv("github_token", "GITHUB_TOKEN")

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DBPath returns the full path to the SQLite database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
