package main

import (
	"github.com/firmscope/firmscope"
	"github.com/firmscope/firmscope/internal/config"
)

// clientOptions returns the firmscope.Option slice derived from the shared
// parts of AppConfig: database storage, the research endpoint, and limits.
// Callers append entrypoint-specific options (logger, flag overrides) before
// passing the full slice to firmscope.New.
func clientOptions(cfg config.AppConfig) []firmscope.Option {
	opts := []firmscope.Option{
		firmscope.WithDataDir(cfg.DataDir()),
		firmscope.WithEmployeeLimit(cfg.EmployeeLimit()),
	}

	if dbURL := cfg.DBURL(); dbURL != "" {
		opts = append(opts, firmscope.WithDBURL(dbURL))
	}

	if endpoint := cfg.ResearchEndpoint(); endpoint.IsConfigured() {
		opts = append(opts, firmscope.WithResearchEndpoint(endpoint))
	}

	if cacheDir := cfg.HTTPCacheDir(); cacheDir != "" {
		opts = append(opts, firmscope.WithHTTPCacheDir(cacheDir))
	}

	return opts
}
