package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"its/internal/domain/entity"
	"its/internal/domain/validation"
	"its/internal/infra/persistence/postgres"
	"its/internal/usecase"
	"its/internal/usecase/impl"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputTable = "table"
	outputYAML  = "yaml"
)

// planetRecord is the yaml shape of a planet; it matches the bootstrap.planets entries.
type planetRecord struct {
	Name      string `yaml:"name"`
	PositionX int64  `yaml:"positionX"`
	PositionY int64  `yaml:"positionY"`
	Radius    int    `yaml:"radius"`
	Color     string `yaml:"color"`
	Type      int    `yaml:"type"`
}

func newPlanetsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "planets",
		Short: "Inspect and extend the planet catalog",
	}

	cmd.AddCommand(newPlanetsListCmd(opts))
	cmd.AddCommand(newPlanetsAddCmd(opts))

	return cmd
}

func planetService(e *env) usecase.PlanetUsecase {
	return impl.NewPlanetService(
		postgres.NewTransactionManager(e.db),
		validation.New(e.cfg.Validation.PasswordMinLength),
		e.logger,
	)
}

func newPlanetsListCmd(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every planet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output != outputTable && output != outputYAML {
				return errors.Errorf("unknown output format %q (use %s or %s)", output, outputTable, outputYAML)
			}

			e, err := openEnv(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer e.close()

			planets, err := planetService(e).FindAllPlanets(cmd.Context())
			if err != nil {
				return err
			}

			if output == outputYAML {
				return writePlanetsYAML(cmd.OutOrStdout(), planets)
			}

			return writePlanetsTable(cmd.OutOrStdout(), planets)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table or yaml")

	return cmd
}

func writePlanetsYAML(out io.Writer, planets []*entity.Planet) error {
	records := make([]planetRecord, 0, len(planets))
	for _, p := range planets {
		records = append(records, planetRecord{
			Name:      p.Name,
			PositionX: p.PositionX,
			PositionY: p.PositionY,
			Radius:    p.Radius,
			Color:     p.Color,
			Type:      int(p.Type),
		})
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(map[string][]planetRecord{"planets": records}); err != nil {
		return errors.Wrap(err, "encode planets")
	}

	return enc.Close()
}

func writePlanetsTable(out io.Writer, planets []*entity.Planet) error {
	if len(planets) == 0 {
		fmt.Fprintln(out, "No planets found.")

		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tX\tY\tRADIUS\tCOLOR\tTYPE")
	fmt.Fprintln(w, "----\t-\t-\t------\t-----\t----")
	for _, p := range planets {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t%s\n",
			p.Name, p.PositionX, p.PositionY, p.Radius, p.Color, planetTypeName(p.Type))
	}

	return w.Flush()
}

func planetTypeName(t entity.PlanetType) string {
	switch t {
	case entity.PlanetTypeTerrestrial:
		return "terrestrial"
	case entity.PlanetTypeGas:
		return "gas"
	case entity.PlanetTypeIce:
		return "ice"
	default:
		return strconv.Itoa(int(t))
	}
}

func newPlanetsAddCmd(opts *rootOptions) *cobra.Command {
	var (
		radius     int
		colorValue string
		planetType int
	)

	cmd := &cobra.Command{
		Use:   "add NAME X Y",
		Short: "Add a planet to the catalog",
		Example: `  itsctl planets add P-003 120 640
  itsctl planets add Titan 900 80 --radius 25 --color "#e0c060" --type 1`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return errors.Wrapf(err, "parse X %q", args[1])
			}
			y, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return errors.Wrapf(err, "parse Y %q", args[2])
			}

			e, err := openEnv(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer e.close()

			planet, err := planetService(e).CreatePlanet(cmd.Context(), &usecase.CreatePlanetInput{
				Name:      args[0],
				PositionX: x,
				PositionY: y,
				Radius:    radius,
				Color:     colorValue,
				Type:      planetType,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s created planet %s at (%d, %d)\n",
				color.GreenString("✓"), planet.Name, planet.PositionX, planet.PositionY)

			return nil
		},
	}

	cmd.Flags().IntVar(&radius, "radius", 10, "drawing radius")
	cmd.Flags().StringVar(&colorValue, "color", "#32cbd4", "drawing color")
	cmd.Flags().IntVar(&planetType, "type", int(entity.PlanetTypeTerrestrial), "planet type: 0 terrestrial, 1 gas, 2 ice")

	return cmd
}
