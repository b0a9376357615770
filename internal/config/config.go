// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package config loads CLI configuration from an optional config.json in
// the XDG config dir, overridden by LEARNDASH_* environment variables.
// Only non-secret settings live here; tokens go to the OS keychain.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"learndash/admincli/internal/xdg"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	BaseURL     string        `json:"base_url" env:"LEARNDASH_BASE_URL" env-default:"https://learning-dashboard-rouge.vercel.app"`
	Timeout     time.Duration `json:"timeout" env:"LEARNDASH_TIMEOUT" env-default:"10s"`
	LogLevel    string        `json:"log_level" env:"LEARNDASH_LOG_LEVEL" env-default:"info"`
	PageLimit   int           `json:"page_limit" env:"LEARNDASH_PAGE_LIMIT" env-default:"20"`
	ColorOutput bool          `json:"color_output" env:"LEARNDASH_COLOR" env-default:"true"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration. A missing file yields env-or-default values;
// environment variables always win over the file.
func Load() (Config, error) {
	var c Config
	p, err := path()
	if err != nil {
		// No usable config dir: fall back to env and defaults.
		return c, cleanenv.ReadEnv(&c)
	}
	if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
		return c, cleanenv.ReadEnv(&c)
	}
	if err := cleanenv.ReadConfig(p, &c); err != nil {
		return c, err
	}
	return c, nil
}
