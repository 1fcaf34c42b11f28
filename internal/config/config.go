// Package config loads calculator settings from a config file, environment
// variables, and command-line flags, in rising order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// View names accepted by the renderer selection.
const (
	ViewHierarchy = "hierarchy"
	ViewGrid      = "grid"
)

const (
	// DefaultView is the AST rendering used when none is configured.
	DefaultView = ViewHierarchy

	// DefaultPrompt is the interactive prompt.
	DefaultPrompt = ">>> "

	envPrefix = "ASTCALC"
)

// Config represents the calculator configuration.
type Config struct {
	// AST prints the parse tree of each expression before its value.
	AST bool
	// View selects the tree rendering, ViewHierarchy or ViewGrid.
	View string
	// Prompt is the interactive prompt string.
	Prompt string
	// History is the path of the interactive history file. Empty means
	// the default location in the user's home directory.
	History string
	// LogLevel is the logrus level name for diagnostics.
	LogLevel string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		View:     DefaultView,
		Prompt:   DefaultPrompt,
		LogLevel: "warning",
	}
}

// Load reads configuration. If path is empty, Load searches for .astcalc.yaml
// in the user's home directory and the current directory, and a missing file
// is not an error. A non-empty path names a file that must exist. Keys may be
// overridden by ASTCALC_* environment variables and then by flags, when a
// flag set is given.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("ast", false)
	v.SetDefault("view", DefaultView)
	v.SetDefault("prompt", DefaultPrompt)
	v.SetDefault("history", "")
	v.SetDefault("log.level", "warning")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".astcalc")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		AST:      v.GetBool("ast"),
		View:     v.GetString("view"),
		Prompt:   v.GetString("prompt"),
		History:  v.GetString("history"),
		LogLevel: v.GetString("log.level"),
	}

	return cfg, nil
}

// NormalizeView maps a configured view name to one of the View constants.
// "tree" is accepted as an alias for the grid rendering.
func NormalizeView(view string) (string, error) {
	switch strings.ToLower(view) {
	case ViewHierarchy:
		return ViewHierarchy, nil
	case ViewGrid, "tree":
		return ViewGrid, nil
	default:
		return "", fmt.Errorf("unknown view %q (want %s or %s)", view, ViewHierarchy, ViewGrid)
	}
}
