package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"promptcalc/internal/domain"
	"promptcalc/internal/gemini"
	"promptcalc/internal/history"
	"promptcalc/internal/services/calculator"
	"promptcalc/internal/store"
)

const historyFile = "history.db"

// Wire bundles the stores, client and service for the CLI.
type Wire struct {
	Keys        domain.KeyStore
	Credentials domain.CredentialStore
	History     domain.HistoryStore
	Client      domain.CalculationClient
	Calculator  *calculator.Service
	Log         *slog.Logger
}

// NewWire constructs the dependency graph from cfg, creating the profile
// directory on first run.
func NewWire(ctx context.Context, cfg Config) (*Wire, error) {
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	keys := store.NewKeyStore(cfg.Home)
	creds := store.NewCredentialStore(cfg.Home, keys, log)

	hist, err := history.Open(ctx, filepath.Join(cfg.Home, historyFile))
	if err != nil {
		return nil, err
	}

	client := gemini.NewClient(cfg.BaseURL, cfg.Model, &http.Client{Timeout: cfg.HTTPTimeout})
	svc := calculator.New(creds, client, hist, log)

	return &Wire{
		Keys:        keys,
		Credentials: creds,
		History:     hist,
		Client:      client,
		Calculator:  svc,
		Log:         log,
	}, nil
}

// Close releases resources held by the graph.
func (w *Wire) Close() error {
	if w.History == nil {
		return nil
	}
	return w.History.Close()
}
