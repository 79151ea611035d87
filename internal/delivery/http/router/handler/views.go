package handler

import (
	"time"

	"its/internal/domain/entity"
	"its/internal/usecase"

	"github.com/google/uuid"
)

// Views are read-only projections of entities. They point from owner to owned
// data only, so nested values never reference back to the user.

type UserExtensionView struct {
	Email            string    `json:"email"`
	RegistrationTime time.Time `json:"registrationTime"`
}

type GameProfileView struct {
	ShipsNumber       int   `json:"shipsNumber"`
	Experience        int64 `json:"experience"`
	CompletedMissions int   `json:"completedMissions"`
}

type UserView struct {
	ID        uuid.UUID          `json:"id"`
	Username  string             `json:"username"`
	Role      string             `json:"role"`
	Extension *UserExtensionView `json:"extension,omitempty"`
	Profile   *GameProfileView   `json:"profile,omitempty"`
}

// UserDetailView is the personal room: the account plus everything it owns.
type UserDetailView struct {
	UserView
	Ships    []ShipView    `json:"ships"`
	Missions []MissionView `json:"missions"`
}

type PlanetView struct {
	Name      string `json:"name"`
	PositionX int64  `json:"positionX"`
	PositionY int64  `json:"positionY"`
	Radius    int    `json:"radius"`
	Color     string `json:"color"`
	Type      int    `json:"type"`
}

type ShipView struct {
	Name             string  `json:"name"`
	MaxCargoCapacity float64 `json:"maxCargoCapacity"`
	Level            int     `json:"level"`
	Speed            float64 `json:"speed"`
	Status           string  `json:"status"`
}

// ShipSummaryView is the part of a ship shown inside a mission.
type ShipSummaryView struct {
	Name  string  `json:"name"`
	Level int     `json:"level"`
	Speed float64 `json:"speed"`
}

type MissionView struct {
	ID                uuid.UUID        `json:"id"`
	Ship              *ShipSummaryView `json:"ship,omitempty"`
	StartPlanet       *PlanetView      `json:"startPlanet,omitempty"`
	DestinationPlanet *PlanetView      `json:"destinationPlanet,omitempty"`
	Payload           float64          `json:"payload"`
	RegistrationTime  time.Time        `json:"registrationTime"`
	StartTime         *time.Time       `json:"startTime,omitempty"`
	FinishTime        *time.Time       `json:"finishTime,omitempty"`
	Duration          int64            `json:"duration"`
	Status            string           `json:"status"`
}

type LoginView struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}

func newUserView(u *entity.User) UserView {
	view := UserView{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role.String(),
	}
	if u.Extension != nil {
		view.Extension = &UserExtensionView{
			Email:            u.Extension.Email,
			RegistrationTime: u.Extension.RegistrationTime,
		}
	}
	if u.GameProfile != nil {
		view.Profile = &GameProfileView{
			ShipsNumber:       u.GameProfile.ShipsNumber,
			Experience:        u.GameProfile.Experience,
			CompletedMissions: u.GameProfile.CompletedMissions,
		}
	}

	return view
}

func newUserDetailView(d *usecase.UserDetail) UserDetailView {
	return UserDetailView{
		UserView: newUserView(d.User),
		Ships:    newShipViews(d.Ships),
		Missions: newMissionViews(d.Missions),
	}
}

func newPlanetView(p *entity.Planet) PlanetView {
	return PlanetView{
		Name:      p.Name,
		PositionX: p.PositionX,
		PositionY: p.PositionY,
		Radius:    p.Radius,
		Color:     p.Color,
		Type:      int(p.Type),
	}
}

func newPlanetViews(planets []*entity.Planet) []PlanetView {
	views := make([]PlanetView, 0, len(planets))
	for _, p := range planets {
		views = append(views, newPlanetView(p))
	}

	return views
}

func newShipView(s *entity.SpaceShip) ShipView {
	return ShipView{
		Name:             s.Name,
		MaxCargoCapacity: s.MaxCargoCapacity,
		Level:            s.Level,
		Speed:            s.Speed,
		Status:           s.Status.String(),
	}
}

func newShipViews(ships []*entity.SpaceShip) []ShipView {
	views := make([]ShipView, 0, len(ships))
	for _, s := range ships {
		views = append(views, newShipView(s))
	}

	return views
}

func newMissionView(m *entity.Mission) MissionView {
	view := MissionView{
		ID:               m.ID,
		Payload:          m.Payload,
		RegistrationTime: m.RegistrationTime,
		StartTime:        m.StartTime,
		FinishTime:       m.FinishTime,
		Duration:         m.Duration,
		Status:           m.Status.String(),
	}
	if m.Ship != nil {
		view.Ship = &ShipSummaryView{Name: m.Ship.Name, Level: m.Ship.Level, Speed: m.Ship.Speed}
	}
	if m.StartPlanet != nil {
		p := newPlanetView(m.StartPlanet)
		view.StartPlanet = &p
	}
	if m.DestinationPlanet != nil {
		p := newPlanetView(m.DestinationPlanet)
		view.DestinationPlanet = &p
	}

	return view
}

func newMissionViews(missions []*entity.Mission) []MissionView {
	views := make([]MissionView, 0, len(missions))
	for _, m := range missions {
		views = append(views, newMissionView(m))
	}

	return views
}
