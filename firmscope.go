// Package firmscope provides a cache-first company research library.
//
// Firmscope resolves a company name (plus optional disambiguating context)
// to a structured profile and employee roster. Cached results are served
// from the database; misses are researched once through a search-grounded
// AI provider and persisted atomically.
//
// Basic usage:
//
//	client, err := firmscope.New(
//	    firmscope.WithSQLite(".firmscope/firmscope.db"),
//	    firmscope.WithGemini(os.Getenv("GEMINI_API_KEY")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	record, err := client.Research.Lookup(ctx, "Acme Corp", "manufacturer in Ohio")
//
//	result, err := client.BulkSearch.Run(ctx, "Acme Corp", nil)
package firmscope

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/firmscope/firmscope/application/service"
	"github.com/firmscope/firmscope/infrastructure/enricher"
	"github.com/firmscope/firmscope/infrastructure/persistence"
	"github.com/firmscope/firmscope/infrastructure/provider"
	"github.com/firmscope/firmscope/internal/database"
)

// ErrNoProvider indicates no AI provider was configured.
var ErrNoProvider = errors.New("firmscope: no AI provider configured, use WithGemini, WithOpenAI or WithTextProvider")

// Client is the main entry point for the firmscope library.
//
// Access operations via struct fields:
//
//	client.Research.Lookup(ctx, name, context)
//	client.BulkSearch.Run(ctx, name, roleTemplates)
type Client struct {
	Research   *service.Research
	BulkSearch *service.BulkSearch

	db           database.Database
	textProvider provider.Provider
	logger       *slog.Logger
	closed       atomic.Bool
}

// New creates a new Client with the given options.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	dbURL, err := resolveDatabaseURL(cfg)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	db, err := database.NewDatabase(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := persistence.AutoMigrate(db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("auto migrate: %w", err), errClose)
	}
	if err := persistence.ValidateSchema(db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("validate schema: %w", err), errClose)
	}

	enr := cfg.enricher
	textProvider := cfg.textProvider
	if enr == nil {
		if textProvider == nil {
			if !cfg.endpoint.IsConfigured() {
				errClose := db.Close()
				return nil, errors.Join(ErrNoProvider, errClose)
			}
			textProvider, err = provider.NewFromEndpoint(ctx, cfg.endpoint, cfg.httpCacheDir)
			if err != nil {
				errClose := db.Close()
				return nil, errors.Join(fmt.Errorf("create provider: %w", err), errClose)
			}
		}
		enr = enricher.NewProviderEnricher(textProvider, logger).
			WithEmployeeLimit(cfg.employeeLimit)
	}

	companyStore := persistence.NewCompanyStore(db)
	employeeStore := persistence.NewEmployeeStore(db)

	return &Client{
		Research:     service.NewResearch(companyStore, employeeStore, enr, logger),
		BulkSearch:   service.NewBulkSearch(enr, logger),
		db:           db,
		textProvider: textProvider,
		logger:       logger,
	}, nil
}

// resolveDatabaseURL picks the database URL from the options, defaulting to
// a SQLite file under the data directory.
func resolveDatabaseURL(cfg *clientConfig) (string, error) {
	if cfg.dbURL != "" {
		return cfg.dbURL, nil
	}

	path := cfg.sqlitePath
	if path == "" {
		path = filepath.Join(cfg.dataDir, "firmscope.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return "sqlite:///" + path, nil
}

// DB returns the underlying database handle.
func (c *Client) DB() database.Database {
	return c.db
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// Close releases the provider and database. Subsequent calls return
// service.ErrClientClosed.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return service.ErrClientClosed
	}

	if c.textProvider != nil {
		if err := c.textProvider.Close(); err != nil {
			c.logger.Error("failed to close provider", slog.Any("error", err))
		}
	}

	if err := c.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}

	c.logger.Info("firmscope client closed")
	return nil
}
