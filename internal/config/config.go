package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mcdonaldj/gitlink/internal/provider"
)

// Config holds user preferences for URL resolution. Every field is optional;
// zero values fall back to the defaults documented on each field.
type Config struct {
	// DefaultRemote is the remote used when the command names none.
	// Empty means the first configured remote.
	DefaultRemote string `yaml:"default_remote"`

	// DefaultBranch is the branch value used for branch pins when the
	// command supplies none. Empty means resolve from the repository.
	DefaultBranch string `yaml:"default_branch"`

	// DefaultPin is the pin kind used when the command omits one.
	// One of branch, tag, commit, root. Empty means commit.
	DefaultPin string `yaml:"default_pin"`

	// CommitLength truncates commit-pin refs to this many characters.
	// Zero means the full 40-character hash.
	CommitLength int `yaml:"commit_length"`

	// AllowUncommittedLines keeps line anchors for dirty tracked files.
	// When false (default) the anchor is dropped with an informational
	// notice instead of failing the resolution.
	AllowUncommittedLines bool `yaml:"allow_line_numbers_with_uncommitted_changes"`

	// OpenCmd is the external program used to open URLs. Empty means the
	// platform default.
	OpenCmd string `yaml:"open_cmd"`

	// Providers maps remote hosts to URL templates, merged over the
	// built-in GitHub/GitLab entries. User entries win on collision.
	Providers map[string]provider.Template `yaml:"providers"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		DefaultPin: "commit",
	}
}

// ConfigPath returns the path of the config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".gitlink", "config.yaml")
}

// Load reads the config file, returning defaults when it does not exist.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.DefaultPin == "" {
		cfg.DefaultPin = "commit"
	}

	return cfg, nil
}

// Save writes the config file, creating its directory if needed.
func (c *Config) Save() error {
	path := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ProviderTable returns the merged provider lookup table.
func (c *Config) ProviderTable() provider.Table {
	return provider.Merge(c.Providers)
}
