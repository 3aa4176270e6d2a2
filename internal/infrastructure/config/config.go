// Package config provides configuration management for the hook commands.
// It uses viper for loading configuration from command-line flags and
// environment variables.
//
// Configuration priority (highest to lowest):
// 1. Command-line flags
// 2. Environment variables (with HOOKS_ prefix)
// 3. Defaults
package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values for the hook commands.
type Config struct {
	// ProjectRoot is the directory all relative paths resolve against.
	// Defaults to "." (current directory).
	ProjectRoot string

	// LogDir is where the command audit log files live,
	// relative to ProjectRoot unless absolute.
	LogDir string

	// TrashDir is where trashed files are moved,
	// relative to ProjectRoot unless absolute.
	TrashDir string

	// ProtectedRulesFile is the optional per-project overlay extending the
	// built-in protected path rules.
	ProtectedRulesFile string

	// Notifications controls whether the notify command actually delivers
	// desktop notifications.
	Notifications bool

	// ClaudeMdWarnBytes is the CLAUDE.md size above which the session check
	// suggests trimming.
	ClaudeMdWarnBytes int64

	// ClaudeMdLimitBytes is the CLAUDE.md size above which the session check
	// flags the file as too large.
	ClaudeMdLimitBytes int64

	// DocStaleDays is the age in days after which a memory-bank document is
	// considered stale.
	DocStaleDays int
}

// Defaults returns a Config struct with all default values set.
func Defaults() *Config {
	return &Config{
		ProjectRoot:        ".",
		LogDir:             filepath.Join(".claude", "logs"),
		TrashDir:           filepath.Join(".claude", "trash"),
		ProtectedRulesFile: filepath.Join(".claude", "protected.yaml"),
		Notifications:      true,
		ClaudeMdWarnBytes:  10 * 1024,
		ClaudeMdLimitBytes: 15 * 1024,
		DocStaleDays:       7,
	}
}

// LoadConfig loads and returns the configuration from viper.
// It sets up environment variable bindings with the HOOKS_ prefix.
//
// The caller is expected to have set up viper with BindPFlag() calls
// for command-line flags before calling this function.
func LoadConfig() *Config {
	cfg := Defaults()

	viper.SetEnvPrefix("HOOKS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if viper.IsSet("root") {
		cfg.ProjectRoot = viper.GetString("root")
	}
	if viper.IsSet("logDir") {
		cfg.LogDir = viper.GetString("logDir")
	}
	if viper.IsSet("trashDir") {
		cfg.TrashDir = viper.GetString("trashDir")
	}
	if viper.IsSet("protectedRules") {
		cfg.ProtectedRulesFile = viper.GetString("protectedRules")
	}
	if viper.IsSet("notifications") {
		cfg.Notifications = viper.GetBool("notifications")
	}
	if viper.IsSet("claudeMdWarnBytes") {
		cfg.ClaudeMdWarnBytes = viper.GetInt64("claudeMdWarnBytes")
	}
	if viper.IsSet("claudeMdLimitBytes") {
		cfg.ClaudeMdLimitBytes = viper.GetInt64("claudeMdLimitBytes")
	}
	if viper.IsSet("docStaleDays") {
		cfg.DocStaleDays = viper.GetInt("docStaleDays")
	}

	return cfg
}

// ResolvePath resolves p against the project root unless it is already
// absolute.
func (c *Config) ResolvePath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.ProjectRoot, p)
}
