// Package config handles library repository and global configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kthompson/bibkit/internal/export"
	"github.com/kthompson/bibkit/internal/style"
)

// Config represents library configuration stored in .bibkit/config.json.
type Config struct {
	// PreferredStyle is the citation style used when a command does not
	// specify one.
	PreferredStyle string `json:"preferred_style"`

	// DefaultFormat is the export format used when a command does not
	// specify one.
	DefaultFormat string `json:"default_format,omitempty"`
}

const (
	BibkitDir   = ".bibkit"
	ConfigFile  = "config.json"
	RecordsFile = "records.jsonl"
	CacheDir    = "cache"
	DBFile      = "records.db"
)

// BibkitPath returns the path to the .bibkit directory from a root path.
func BibkitPath(root string) string {
	return filepath.Join(root, BibkitDir)
}

// ConfigPath returns the path to config.json from a root path.
func ConfigPath(root string) string {
	return filepath.Join(root, BibkitDir, ConfigFile)
}

// RecordsPath returns the path to records.jsonl from a root path.
func RecordsPath(root string) string {
	return filepath.Join(root, BibkitDir, RecordsFile)
}

// CachePath returns the path to the cache directory from a root path.
func CachePath(root string) string {
	return filepath.Join(root, BibkitDir, CacheDir)
}

// DBPath returns the path to records.db from a root path.
func DBPath(root string) string {
	return filepath.Join(root, BibkitDir, CacheDir, DBFile)
}

// IsRepository checks if the given path contains a bibkit library.
func IsRepository(root string) bool {
	info, err := os.Stat(BibkitPath(root))
	return err == nil && info.IsDir()
}

// FindRepository walks up from the given path to find a bibkit library.
// Returns the library root path or an error if not found.
func FindRepository(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsRepository(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not in a bibkit library (no .bibkit directory found)")
		}
		abs = parent
	}
}

// Init creates the .bibkit directory structure with a default config.
func Init(root string) error {
	if IsRepository(root) {
		return fmt.Errorf("already a bibkit library: %s", root)
	}

	if err := os.MkdirAll(CachePath(root), 0755); err != nil {
		return fmt.Errorf("creating library directories: %w", err)
	}

	cfg := &Config{PreferredStyle: string(style.APA)}
	return cfg.Save(root)
}

// Load reads configuration from the library at the given root.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Save writes configuration to the library at the given root.
func (c *Config) Save(root string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Set updates a configuration key, validating against the closed style
// and format sets.
func (c *Config) Set(key, value string) error {
	switch strings.ToLower(key) {
	case "preferred_style":
		st, err := style.Parse(value)
		if err != nil {
			return err
		}
		c.PreferredStyle = string(st)
	case "default_format":
		f, err := export.ParseFormat(value)
		if err != nil {
			return err
		}
		c.DefaultFormat = string(f)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// Style resolves the configured preferred style, defaulting to APA.
func (c *Config) Style() style.Style {
	st, err := style.Parse(c.PreferredStyle)
	if err != nil {
		return style.APA
	}
	return st
}
