package main

import (
	"context"
	"log/slog"
	"os"

	"its/config"
	logs "its/internal/infra/log"
	"its/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

type rootOptions struct {
	sqlitePath string
}

// env is what a command needs from the configuration and the database.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *gorm.DB
}

func (e *env) close() {
	if e.db == nil {
		return
	}
	if sqlDB, err := e.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "itsctl",
		Short: "Operate the ITS mission backend",
		Long: `itsctl manages the ITS database from the command line: schema migration,
seeding of the default catalog, the planet catalog itself and route estimates.

Configuration is read the same way as the server (config/config.yaml, .env, environment).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.sqlitePath, "sqlite", "", "use a SQLite database file instead of the configured driver")

	cmd.AddCommand(newMigrateCmd(opts))
	cmd.AddCommand(newSeedCmd(opts))
	cmd.AddCommand(newPlanetsCmd(opts))
	cmd.AddCommand(newEstimateCmd())

	return cmd
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, err
	}

	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}

// openEnv loads the configuration, connects and brings the schema up to date.
func openEnv(ctx context.Context, opts *rootOptions) (*env, error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if opts.sqlitePath != "" {
		cfg.Database.Driver = config.DriverSQLite
		cfg.Database.SQLitePath = opts.sqlitePath
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, logger: logger, db: db.WithContext(ctx)}
	if err := postgres.Migrate(e.db); err != nil {
		e.close()

		return nil, errors.Wrap(err, "migrate schema")
	}

	return e, nil
}
