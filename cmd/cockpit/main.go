package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/cockpit/internal/cli"
	"github.com/alexanderramin/cockpit/internal/config"
	"github.com/alexanderramin/cockpit/internal/db"
	"github.com/alexanderramin/cockpit/internal/repository"
	"github.com/alexanderramin/cockpit/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, closer, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	var opts []service.Option
	if cfg.LogUseCases {
		opts = append(opts, service.WithObserver(service.NewLogUseCaseObserver(os.Stderr)))
	}

	cockpit, err := service.NewCockpit(context.Background(), store, opts...)
	if err != nil {
		return fmt.Errorf("loading cockpit state: %w", err)
	}

	app := &cli.App{
		Flights: cockpit.Flights,
		Rewards: cockpit.Rewards,
		Status:  cockpit.Status,
		Config:  cfg,
	}

	// Detect interactive terminal so the bare command opens the TUI.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openStore wires the configured persistence backend.
func openStore(cfg config.Config) (repository.StateStore, io.Closer, error) {
	switch cfg.Store {
	case config.StoreFile:
		return repository.NewFileStateStore(cfg.StateDir), nopCloser{}, nil
	default:
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		uow := db.NewSQLiteUnitOfWork(database)
		return repository.NewSQLiteStateStore(database, uow), database, nil
	}
}
