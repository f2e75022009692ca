// Package app wires the console together: configuration, logging, the
// credential store driver, the backend client, and the REPL.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rangira/bloodlink/internal/console/cli"
	"github.com/rangira/bloodlink/internal/console/credstore"
	"github.com/rangira/bloodlink/internal/console/credstore/drivers/file"
	"github.com/rangira/bloodlink/internal/console/credstore/drivers/sqlite"
	"github.com/rangira/bloodlink/internal/console/session"
	"github.com/rangira/bloodlink/pkg/bloodsdk"
	"github.com/rangira/bloodlink/pkg/cryptox"
	"github.com/rangira/bloodlink/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application holds the console's dependencies for one run.
type Application struct {
	cfg    Config
	logger *slog.Logger

	store   credstore.Store
	client  *bloodsdk.SDKClient
	manager *session.Manager
	console *cli.App
}

// New creates an Application with all dependencies initialized. Session
// restore happens here so the REPL starts with a settled identity.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "bloodlink-console",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetKeyPath(cfg.KeyFile)

	store, err := openStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential store: %w", err)
	}
	app.store = store

	app.client = bloodsdk.NewSDKClient(cfg.APIBaseURL, app.logger)
	app.client.HTTPClient.Timeout = cfg.HTTPTimeout

	app.manager = session.NewManager(store, app.client, app.logger)
	app.manager.Init()

	app.console = cli.New(app.manager, app.logger, os.Stdin, os.Stdout)

	return app, nil
}

// openStore picks the credential store driver. Parent directories are
// created up front so first runs work on a clean machine.
func openStore(cfg Config) (credstore.Store, error) {
	switch cfg.CredStore {
	case "file":
		if err := os.MkdirAll(filepath.Dir(cfg.CredFile), 0o700); err != nil {
			return nil, err
		}
		return file.New(cfg.CredFile)
	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(cfg.CredDB), 0o700); err != nil {
			return nil, err
		}
		return sqlite.NewStore(cfg.CredDB)
	default:
		return nil, fmt.Errorf("unknown credential store driver %q", cfg.CredStore)
	}
}

// Run starts the REPL and blocks until the user exits or an interrupt
// arrives.
func (app *Application) Run() error {
	defer func() {
		if err := app.store.Close(); err != nil {
			app.logger.Error("failed to close credential store", "err", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.logger.Info("console starting",
		"version", BuildVersion,
		"api", app.cfg.APIBaseURL,
		"store", app.cfg.CredStore,
	)

	app.console.Run(ctx)
	return nil
}
