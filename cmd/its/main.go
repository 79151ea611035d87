package main

import (
	"context"
	"log/slog"
	"os"

	"its/config"
	"its/internal/delivery"
	"its/internal/delivery/http"
	"its/internal/delivery/http/middleware"
	"its/internal/delivery/http/router/handler"
	"its/internal/domain/mechanics"
	"its/internal/domain/validation"
	"its/internal/infra/auth"
	logs "its/internal/infra/log"
	"its/internal/infra/persistence/postgres"
	"its/internal/usecase"
	"its/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type seedCatalogParams struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Logger    *slog.Logger
	Bootstrap usecase.BootstrapUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedCatalog,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newValidator,
			newCoefficients,
		),
	)
}

// newValidator builds the input rules from the validation section.
func newValidator(cfg *config.Config) *validation.Validator {
	return validation.New(cfg.Validation.PasswordMinLength)
}

// newCoefficients resolves the duration formula constants once; a missing or
// invalid value stops the application from starting.
func newCoefficients(cfg *config.Config) (mechanics.Coefficients, error) {
	if cfg.GameMechanics == nil {
		return mechanics.NewCoefficients(nil, nil)
	}

	return mechanics.NewCoefficients(cfg.GameMechanics.ShipLevelCoefficient, cfg.GameMechanics.TimeCoefficientSeconds)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewPlanetService,
			impl.NewSpaceShipService,
			impl.NewMissionService,
			impl.NewBootstrapService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimiter,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewPlanetHandler,
			handler.NewSpaceShipHandler,
			handler.NewMissionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedCatalog runs after the database hooks, so the schema is already migrated.
func seedCatalog(params seedCatalogParams) {
	if params.Config.Bootstrap == nil || !params.Config.Bootstrap.Enabled {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			report, err := params.Bootstrap.Seed(ctx)
			if err != nil {
				return err
			}

			params.Logger.Info("Bootstrap finished",
				slog.Int("planets_created", report.PlanetsCreated),
				slog.Int("users_created", report.UsersCreated),
				slog.Int("ships_created", report.ShipsCreated),
				slog.Int("skipped", report.Skipped),
			)

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
