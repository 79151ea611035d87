package main

import (
	"fmt"

	"its/internal/domain/validation"
	"its/internal/infra/auth"
	"its/internal/infra/persistence/postgres"
	"its/internal/usecase/impl"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the configured planets, admin and default player",
		Long: `Seed creates everything listed in the bootstrap section of the configuration.
Entries that already exist are skipped, so running it twice is harmless.
The bootstrap.enabled switch only controls seeding at server start.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer e.close()

			if e.cfg.Bootstrap == nil {
				return errors.New("bootstrap section is missing from the configuration")
			}

			txManager := postgres.NewTransactionManager(e.db)
			v := validation.New(e.cfg.Validation.PasswordMinLength)
			bootstrap := impl.NewBootstrapService(impl.BootstrapServiceParams{
				Config:    e.cfg,
				TxManager: txManager,
				Hasher:    auth.NewBcryptHasher(e.cfg),
				Validator: v,
				Planets:   impl.NewPlanetService(txManager, v, e.logger),
				Ships:     impl.NewSpaceShipService(txManager, v, e.logger),
				Logger:    e.logger,
			})

			report, err := bootstrap.Seed(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s seeding finished\n", color.GreenString("✓"))
			fmt.Fprintf(out, "  planets created: %d\n", report.PlanetsCreated)
			fmt.Fprintf(out, "  users created:   %d\n", report.UsersCreated)
			fmt.Fprintf(out, "  ships created:   %d\n", report.ShipsCreated)
			if report.Skipped > 0 {
				fmt.Fprintf(out, "  %s\n", color.YellowString("skipped (already present): %d", report.Skipped))
			}

			return nil
		},
	}
}
