package handler

import (
	"context"
	"net/http"

	"its/internal/delivery/http/middleware"
	"its/internal/delivery/http/response"
	"its/internal/domain/entity"
	domainerrors "its/internal/domain/errors"
	"its/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MissionHandler serves the mission constructor and mission management pages.
type MissionHandler struct {
	uc usecase.MissionUsecase
}

func NewMissionHandler(uc usecase.MissionUsecase) *MissionHandler {
	return &MissionHandler{uc: uc}
}

type missionIDQuery struct {
	ID string `query:"id" validate:"required,uuid"`
}

type missionTransition func(ctx context.Context, owner string, id uuid.UUID) (*entity.Mission, error)

// Analyze previews distance and duration of a route without constructing a mission.
func (h *MissionHandler) Analyze(c echo.Context) error {
	username, err := middleware.CurrentUsername(c)
	if err != nil {
		return err
	}

	var req usecase.MissionRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mission query")
	}

	metrics, err := h.uc.GenerateMissionMetrics(c.Request().Context(), username, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, metrics, "")
}

func (h *MissionHandler) Construct(c echo.Context) error {
	username, err := middleware.CurrentUsername(c)
	if err != nil {
		return err
	}

	var req *usecase.MissionRequest
	if err := c.Bind(&req); err != nil || req == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mission input")
	}

	mission, err := h.uc.ConstructNewMission(c.Request().Context(), username, req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newMissionView(mission), "Mission constructed")
}

func (h *MissionHandler) ListMissions(c echo.Context) error {
	username, err := middleware.CurrentUsername(c)
	if err != nil {
		return err
	}

	missions, err := h.uc.FindAllMissions(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newMissionViews(missions), "")
}

func (h *MissionHandler) Details(c echo.Context) error {
	return h.handle(c, h.uc.FindMission, "")
}

func (h *MissionHandler) Start(c echo.Context) error {
	return h.handle(c, h.uc.StartMission, "Mission started")
}

func (h *MissionHandler) Cancel(c echo.Context) error {
	return h.handle(c, h.uc.CancelMission, "Mission canceled")
}

func (h *MissionHandler) Complete(c echo.Context) error {
	return h.handle(c, h.uc.CompleteMission, "Mission completed")
}

func (h *MissionHandler) handle(c echo.Context, fn missionTransition, message string) error {
	username, err := middleware.CurrentUsername(c)
	if err != nil {
		return err
	}

	id, err := missionID(c)
	if err != nil {
		return err
	}

	mission, err := fn(c.Request().Context(), username, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newMissionView(mission), message)
}

func missionID(c echo.Context) (uuid.UUID, error) {
	q := missionIDQuery{ID: c.QueryParam("id")}
	if err := c.Validate(&q); err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.Parse(q.ID)
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id is not a valid UUID")
	}

	return id, nil
}
