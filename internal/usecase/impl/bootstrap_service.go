package impl

import (
	"context"
	"log/slog"
	"time"

	"its/config"
	deliverycontext "its/internal/delivery/context"
	"its/internal/domain/entity"
	domainerrors "its/internal/domain/errors"
	"its/internal/domain/repository"
	"its/internal/domain/service"
	"its/internal/domain/validation"
	ierrors "its/internal/errors"
	"its/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bootstrapService implements the BootstrapUsecase interface.
type bootstrapService struct {
	seed      *config.BootstrapConfig
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	validator *validation.Validator
	planets   usecase.PlanetUsecase
	ships     usecase.SpaceShipUsecase
	logger    *slog.Logger
}

// BootstrapServiceParams holds dependencies for BootstrapService, injected by Fx.
type BootstrapServiceParams struct {
	fx.In

	Config    *config.Config
	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Validator *validation.Validator
	Planets   usecase.PlanetUsecase
	Ships     usecase.SpaceShipUsecase
	Logger    *slog.Logger
}

// NewBootstrapService is the constructor for bootstrapService.
func NewBootstrapService(params BootstrapServiceParams) usecase.BootstrapUsecase {
	return &bootstrapService{
		seed:      params.Config.Bootstrap,
		txManager: params.TxManager,
		hasher:    params.Hasher,
		validator: params.Validator,
		planets:   params.Planets,
		ships:     params.Ships,
		logger:    params.Logger,
	}
}

func (srv *bootstrapService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

// isDuplicate reports the errors a second seeding run is expected to hit.
func isDuplicate(err error) bool {
	return ierrors.IsAny(err,
		domainerrors.ErrPlanetAlreadyExists,
		domainerrors.ErrUserAlreadyExists,
		domainerrors.ErrEmailAlreadyExists,
		domainerrors.ErrShipAlreadyExists,
	)
}

// Seed creates the configured planets, the admin account and the default player.
// Entries that already exist are skipped.
func (srv *bootstrapService) Seed(ctx context.Context) (*usecase.BootstrapReport, error) {
	report := &usecase.BootstrapReport{}
	if srv.seed == nil {
		return report, nil
	}

	for _, p := range srv.seed.Planets {
		_, err := srv.planets.CreatePlanet(ctx, &usecase.CreatePlanetInput{
			Name:      p.Name,
			PositionX: p.PositionX,
			PositionY: p.PositionY,
			Radius:    p.Radius,
			Color:     p.Color,
			Type:      p.Type,
		})
		if err = srv.tally(ctx, err, &report.PlanetsCreated, &report.Skipped, "planet", p.Name); err != nil {
			return report, err
		}
	}

	accounts := []struct {
		seed *config.UserSeed
		role entity.Role
	}{
		{srv.seed.Admin, entity.RoleAdmin},
		{srv.seed.DefaultUser, entity.RolePlayer},
	}
	for _, account := range accounts {
		if account.seed == nil {
			continue
		}
		if err := srv.seedAccount(ctx, account.seed, account.role, report); err != nil {
			return report, err
		}
	}

	srv.log(ctx).Info("Bootstrap finished",
		slog.Int("planets", report.PlanetsCreated),
		slog.Int("users", report.UsersCreated),
		slog.Int("ships", report.ShipsCreated),
		slog.Int("skipped", report.Skipped))

	return report, nil
}

func (srv *bootstrapService) seedAccount(ctx context.Context, seed *config.UserSeed, role entity.Role, report *usecase.BootstrapReport) error {
	err := srv.createAccount(ctx, seed, role)
	if err = srv.tally(ctx, err, &report.UsersCreated, &report.Skipped, "user", seed.Username); err != nil {
		return err
	}

	for _, s := range seed.Ships {
		_, err := srv.ships.CreateSpaceShip(ctx, seed.Username, &usecase.CreateSpaceShipInput{
			Name:             s.Name,
			MaxCargoCapacity: s.MaxCargoCapacity,
			Level:            s.Level,
			Speed:            s.Speed,
		})
		if err = srv.tally(ctx, err, &report.ShipsCreated, &report.Skipped, "ship", s.Name); err != nil {
			return err
		}
	}

	return nil
}

func (srv *bootstrapService) createAccount(ctx context.Context, seed *config.UserSeed, role entity.Role) error {
	err := srv.validator.Check().Username(seed.Username).Password(seed.Password).Email(seed.Email).Err()
	if err != nil {
		return err
	}

	hashedPassword, err := srv.hasher.Hash(seed.Password)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
	}

	user := &entity.User{
		Username:     seed.Username,
		PasswordHash: hashedPassword,
		Role:         role,
		Extension:    &entity.UserExtension{Email: seed.Email, RegistrationTime: time.Now()},
		GameProfile:  &entity.GameProfile{},
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return createUniqueUser(ctx, repoFactory.UserRepo(), user)
	})
}

// tally counts err against created or skipped. Errors other than duplicates abort the run.
func (srv *bootstrapService) tally(ctx context.Context, err error, created, skipped *int, kind, name string) error {
	switch {
	case err == nil:
		*created++

		return nil
	case isDuplicate(err):
		*skipped++
		srv.log(ctx).Warn("Bootstrap entry already exists", slog.String("kind", kind), slog.String("name", name))

		return nil
	default:
		return errors.Wrapf(err, "failed to seed %s %s", kind, name)
	}
}
