// Package xdg resolves XDG Base Directory paths for the admin CLI.
// It falls back to traditional locations when the XDG environment
// variables are unset and creates directories with private permissions,
// since the config dir may hold the keyring file fallback.
package xdg

import (
	"os"
	"path/filepath"
)

const appDir = "learndash-admin"

// ConfigDir returns the XDG config directory for the admin CLI.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/learndash-admin when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, appDir)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}

// StateDir returns the XDG state directory for the admin CLI.
// It falls back to ~/.local/state/learndash-admin when XDG_STATE_HOME is unset.
func StateDir() (string, error) {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".local", "state")
	}
	dir := filepath.Join(base, appDir)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
