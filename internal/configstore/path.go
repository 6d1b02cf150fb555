package configstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const configFileName = "config.toml"

// GetConfigPath resolves the mimchine configuration directory and file path
// using XDG rules with a fallback to ~/.config/mimchine/config.toml. The
// MIMCHINE_HOME environment variable overrides both.
func GetConfigPath() (string, string, error) {
	if override := strings.TrimSpace(os.Getenv("MIMCHINE_HOME")); override != "" {
		dir := filepath.Clean(override)
		if !filepath.IsAbs(dir) {
			abs, err := filepath.Abs(dir)
			if err != nil {
				return "", "", fmt.Errorf("resolve MIMCHINE_HOME %q: %w", override, err)
			}
			dir = abs
		}
		return dir, filepath.Join(dir, configFileName), nil
	}

	base := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME"))
	if base != "" {
		dir := filepath.Join(base, "mimchine")
		return dir, filepath.Join(dir, configFileName), nil
	}

	home, err := resolveHomeDir()
	if err != nil {
		return "", "", err
	}
	dir := filepath.Join(home, ".config", "mimchine")
	return dir, filepath.Join(dir, configFileName), nil
}

// resolveHomeDir evaluates HOME-style environment variables on each call to
// avoid relying on os.UserHomeDir's cached value, which can be stale in tests
// that mutate the process environment.
func resolveHomeDir() (string, error) {
	home := strings.TrimSpace(os.Getenv("HOME"))
	if home == "" {
		drive := strings.TrimSpace(os.Getenv("HOMEDRIVE"))
		path := strings.TrimSpace(os.Getenv("HOMEPATH"))
		if drive != "" && path != "" {
			home = filepath.Join(drive, path)
		} else {
			home = strings.TrimSpace(os.Getenv("USERPROFILE"))
		}
	}
	if home != "" {
		return filepath.Clean(home), nil
	}

	resolved, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(resolved) == "" {
		if err == nil {
			err = fmt.Errorf("home directory not found")
		}
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Clean(resolved), nil
}
