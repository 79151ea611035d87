package main

import (
	"fmt"

	"its/internal/domain/entity"
	"its/internal/domain/mechanics"
	"its/internal/util"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type estimateOptions struct {
	from, to         string
	speed            float64
	level            int
	levelCoefficient float64
	timeCoefficient  float64
}

func newEstimateCmd() *cobra.Command {
	opts := &estimateOptions{}

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate distance and flight time of a route",
		Long: `Estimate computes what the mission constructor would show for a route without
touching the database. Coefficients come from the gameMechanics section of the
configuration unless both are given as flags.`,
		Example: `  itsctl estimate --from 50,50 --to 300,300 --speed 15.5 --level 1`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			coefficients, err := opts.coefficients(cmd)
			if err != nil {
				return err
			}

			return runEstimate(cmd, opts, coefficients)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "start coordinates as X,Y")
	cmd.Flags().StringVar(&opts.to, "to", "", "destination coordinates as X,Y")
	cmd.Flags().Float64Var(&opts.speed, "speed", 0, "ship speed")
	cmd.Flags().IntVar(&opts.level, "level", 1, "ship level")
	cmd.Flags().Float64Var(&opts.levelCoefficient, "level-coefficient", 0, "override gameMechanics.shipLevelCoefficient")
	cmd.Flags().Float64Var(&opts.timeCoefficient, "time-coefficient", 0, "override gameMechanics.timeCoefficientSeconds")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("speed")

	return cmd
}

func (o *estimateOptions) coefficients(cmd *cobra.Command) (mechanics.Coefficients, error) {
	levelSet := cmd.Flags().Changed("level-coefficient")
	timeSet := cmd.Flags().Changed("time-coefficient")
	if levelSet && timeSet {
		return mechanics.NewCoefficients(&o.levelCoefficient, &o.timeCoefficient)
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return mechanics.Coefficients{}, err
	}

	level, timeSeconds := o.levelCoefficient, o.timeCoefficient
	var levelPtr, timePtr *float64
	if levelSet {
		levelPtr = &level
	}
	if timeSet {
		timePtr = &timeSeconds
	}
	if cfg.GameMechanics != nil {
		if levelPtr == nil {
			levelPtr = cfg.GameMechanics.ShipLevelCoefficient
		}
		if timePtr == nil {
			timePtr = cfg.GameMechanics.TimeCoefficientSeconds
		}
	}

	return mechanics.NewCoefficients(levelPtr, timePtr)
}

func runEstimate(cmd *cobra.Command, opts *estimateOptions, coefficients mechanics.Coefficients) error {
	startX, startY, err := util.ParsePoint(opts.from)
	if err != nil {
		return err
	}
	destX, destY, err := util.ParsePoint(opts.to)
	if err != nil {
		return err
	}

	ship := &entity.SpaceShip{Name: "estimate", Level: opts.level, Speed: opts.speed, MaxCargoCapacity: 1}
	start := &entity.Planet{Name: "from", PositionX: startX, PositionY: startY}
	dest := &entity.Planet{Name: "to", PositionX: destX, PositionY: destY}

	metrics, err := mechanics.NewMissionMetrics(ship, start, dest, 0, coefficients)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "distance: %s\n", color.CyanString("%.3f", metrics.Distance))
	fmt.Fprintf(out, "duration: %s (%s)\n",
		color.CyanString("%ds", metrics.Duration), util.FormatFlightTime(metrics.Duration))

	return nil
}
