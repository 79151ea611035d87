package postgres

import (
	"context"

	"its/internal/domain/entity"
	domainerrors "its/internal/domain/errors"
	"its/internal/domain/repository"
	"its/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// missionRepository implements the repository.MissionRepository interface.
type missionRepository struct {
	db *gorm.DB
}

// NewMissionRepository is the constructor for missionRepository.
func NewMissionRepository(db *gorm.DB) repository.MissionRepository {
	return &missionRepository{db: db}
}

func (repo *missionRepository) withAssociations(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Owner").
		Preload("Ship").
		Preload("StartPlanet").
		Preload("DestinationPlanet")
}

// Create persists a new mission. Ship and planets must already exist.
func (repo *missionRepository) Create(ctx context.Context, mission *entity.Mission) error {
	if mission.ID == uuid.Nil {
		mission.ID = uuid.New()
	}
	missionM := fromMissionDomain(mission)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(missionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("mission references an unknown ship, planet or owner")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create mission")
	}

	return nil
}

// FindByID retrieves a mission with its ship, planets and owner.
func (repo *missionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Mission, error) {
	var missionM model.MissionModel

	if err := repo.withAssociations(ctx).Where("id = ?", id).First(&missionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find mission by ID")
	}

	return toMissionDomain(&missionM), nil
}

// FindAllByOwner returns missions ordered by registration time, newest first.
func (repo *missionRepository) FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Mission, error) {
	var missionMs []model.MissionModel

	if err := repo.withAssociations(ctx).
		Where("owner_id = ?", ownerID).
		Order("registration_time DESC").
		Find(&missionMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list missions")
	}

	missions := make([]*entity.Mission, 0, len(missionMs))
	for i := range missionMs {
		missions = append(missions, toMissionDomain(&missionMs[i]))
	}

	return missions, nil
}

// Update stores status, start and finish times, payload and duration.
func (repo *missionRepository) Update(ctx context.Context, mission *entity.Mission) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MissionModel{}).
		Where("id = ?", mission.ID).
		Updates(map[string]any{
			"status":      mission.Status.String(),
			"start_time":  mission.StartTime,
			"finish_time": mission.FinishTime,
			"payload":     mission.Payload,
			"duration":    mission.Duration,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update mission")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMissionNotFound
	}

	return nil
}

func toMissionDomain(data *model.MissionModel) *entity.Mission {
	if data == nil {
		return nil
	}

	mission := &entity.Mission{
		ID:                data.ID,
		OwnerID:           data.OwnerID,
		Ship:              toShipDomain(data.Ship),
		StartPlanet:       toPlanetDomain(data.StartPlanet),
		DestinationPlanet: toPlanetDomain(data.DestinationPlanet),
		Payload:           data.Payload,
		RegistrationTime:  data.RegistrationTime,
		StartTime:         data.StartTime,
		FinishTime:        data.FinishTime,
		Duration:          data.Duration,
		Status:            entity.MissionStatus(data.Status),
	}
	if data.Owner != nil {
		mission.OwnerUsername = data.Owner.Username
		if mission.Ship != nil {
			mission.Ship.OwnerUsername = data.Owner.Username
		}
	}

	return mission
}

func fromMissionDomain(data *entity.Mission) *model.MissionModel {
	missionM := &model.MissionModel{
		ID:               data.ID,
		OwnerID:          data.OwnerID,
		Payload:          data.Payload,
		RegistrationTime: data.RegistrationTime,
		StartTime:        data.StartTime,
		FinishTime:       data.FinishTime,
		Duration:         data.Duration,
		Status:           data.Status.String(),
	}
	if data.Ship != nil {
		missionM.ShipID = data.Ship.ID
	}
	if data.StartPlanet != nil {
		missionM.StartPlanetID = data.StartPlanet.ID
	}
	if data.DestinationPlanet != nil {
		missionM.DestinationPlanetID = data.DestinationPlanet.ID
	}

	return missionM
}
