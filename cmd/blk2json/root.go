package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"blk2json/internal/common/config"
	"blk2json/internal/history/repository"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blk2json",
		Short: "Convert BLK scene files to JSON",
		Long: `blk2json converts BLK scene descriptions (drawLines / drawQuads blocks)
into a JSON document of lines and quadrilaterals.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "YAML configuration file")
	cmd.PersistentFlags().String("db", "", "history database path (overrides config)")

	cmd.AddCommand(NewConvertCmd())
	cmd.AddCommand(NewRenderCmd())
	cmd.AddCommand(NewHistoryCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig reads env configuration and overlays --config when given.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	if path == "" {
		cfg = config.Load()
	} else {
		var err error
		cfg, err = config.LoadFile(path)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("%w: %s", err, path)
			}
			return nil, err
		}
	}

	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.HistoryDBPath = db
	}
	return cfg, nil
}

// openHistory opens and migrates the history database.
func openHistory(ctx context.Context, cfg *config.Config) (*repository.Repository, func() error, error) {
	db, err := repository.OpenSQLite(cfg.HistoryDBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open history: %w", err)
	}

	repo := repository.New(db)
	if err := repo.Init(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("init history: %w", err)
	}
	return repo, db.Close, nil
}
