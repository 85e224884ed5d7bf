package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Pagination selects where page arithmetic happens.
type Pagination string

const (
	// PaginationServer sends limit/skip to the API on every page change.
	PaginationServer Pagination = "server"
	// PaginationClient fetches the full result set once per query change
	// and slices pages locally.
	PaginationClient Pagination = "client"
)

// Config captures the fields Ladle needs to talk to the recipe API.
type Config struct {
	BaseURL    string
	PageSize   int
	Pagination Pagination
	Timeout    time.Duration
}

const (
	defaultConfigPath     = "~/.config/ladle/config.toml"
	defaultBaseURL        = "https://dummyjson.com"
	defaultPageSize       = 6
	defaultTimeoutSeconds = 10
)

// Load locates and parses the config file, falling back to defaults when it
// is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BaseURL        string `toml:"base_url"`
		PageSize       int    `toml:"page_size"`
		Pagination     string `toml:"pagination"`
		TimeoutSeconds int    `toml:"timeout_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if base := strings.TrimSpace(raw.BaseURL); base != "" {
		cfg.BaseURL = base
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if raw.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(raw.TimeoutSeconds) * time.Second
	}
	switch mode := Pagination(strings.ToLower(strings.TrimSpace(raw.Pagination))); mode {
	case PaginationServer, PaginationClient:
		cfg.Pagination = mode
	case "":
	default:
		return Config{}, fmt.Errorf("pagination must be %q or %q, got %q",
			PaginationServer, PaginationClient, raw.Pagination)
	}

	return cfg, nil
}

func defaults() Config {
	return Config{
		BaseURL:    defaultBaseURL,
		PageSize:   defaultPageSize,
		Pagination: PaginationServer,
		Timeout:    defaultTimeoutSeconds * time.Second,
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
