// Package config handles storage layout resolution and global configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// DefaultBaseDir is the storage directory created under the working
	// directory when nothing else is configured.
	DefaultBaseDir = ".snippets"
	// FilesDirName holds imported and authored snippet file bodies.
	FilesDirName = "files"
	// DBFileName is the SQLite database file.
	DBFileName = "snippets.db"

	// EnvDir overrides the storage base directory.
	EnvDir = "SNIP_DIR"
)

// Layout describes the on-disk storage layout rooted at a base directory.
type Layout struct {
	base string
}

// NewLayout creates a layout rooted at the given base directory.
func NewLayout(base string) Layout {
	return Layout{base: base}
}

// ResolveLayout picks the storage base directory. Priority: the explicit
// override (--dir flag), the SNIP_DIR environment variable, the global
// config "dir" key, then .snippets under the current working directory.
func ResolveLayout(override string) Layout {
	if override != "" {
		return NewLayout(override)
	}
	if dir := os.Getenv(EnvDir); dir != "" {
		return NewLayout(dir)
	}
	if dir := viper.GetString("dir"); dir != "" {
		return NewLayout(ExpandPath(dir))
	}
	return NewLayout(DefaultBaseDir)
}

// Base returns the storage base directory.
func (l Layout) Base() string { return l.base }

// FilesDir returns the directory holding snippet file bodies.
func (l Layout) FilesDir() string { return filepath.Join(l.base, FilesDirName) }

// DBPath returns the path of the SQLite database file.
func (l Layout) DBPath() string { return filepath.Join(l.base, DBFileName) }

// Ensure creates the base directory and its files subdirectory, including
// missing parents. It is idempotent and safe to call on every startup. A
// path collision with a non-directory file surfaces as an error; the caller
// treats it as fatal.
func (l Layout) Ensure() error {
	for _, dir := range []string{l.base, l.FilesDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}

// InitGlobal wires viper to the optional global config file
// ($XDG_CONFIG_HOME/snip/config.yaml, falling back to ~/.config/snip) and
// the SNIP_* environment. A missing config file is not an error.
func InitGlobal() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		viper.AddConfigPath(filepath.Join(xdg, "snip"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "snip"))
	}

	viper.SetEnvPrefix("SNIP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("editor", "")
	viper.SetDefault("list_limit", 0)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

// FallbackEditor returns the configured fallback editor command, consulted
// after VISUAL and EDITOR.
func FallbackEditor() string {
	return viper.GetString("editor")
}

// ListLimit returns the configured default list limit (0 = unlimited).
func ListLimit() int {
	return viper.GetInt("list_limit")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
