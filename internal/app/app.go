package app

import (
	"context"
	"fmt"

	"github.com/ladlekit/ladle/internal/browse"
	"github.com/ladlekit/ladle/internal/config"
	"github.com/ladlekit/ladle/internal/prefs"
	"github.com/ladlekit/ladle/internal/recipes"
	"github.com/ladlekit/ladle/internal/ui"
)

// Options configure the Ladle application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/ladle/prefs.toml
	PageSize   int    // overrides the configured page size when > 0
}

// Run boots the Ladle TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.PageSize > 0 {
		cfg.PageSize = opts.PageSize
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := recipes.NewClient(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return fmt.Errorf("init recipe client: %w", err)
	}

	query := browse.DefaultQuery()
	query.SortField = browse.ParseSortField(userPrefs.SortField)
	query.SortOrder = browse.ParseSortOrder(userPrefs.SortOrder)

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Config:    &cfg,
		Query:     query,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
