package handler

import (
	"net/http"

	"its/internal/delivery/http/middleware"
	"its/internal/delivery/http/response"
	"its/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SpaceShipHandler serves the caller's hangar.
type SpaceShipHandler struct {
	uc usecase.SpaceShipUsecase
}

func NewSpaceShipHandler(uc usecase.SpaceShipUsecase) *SpaceShipHandler {
	return &SpaceShipHandler{uc: uc}
}

func (h *SpaceShipHandler) ListShips(c echo.Context) error {
	username, err := middleware.CurrentUsername(c)
	if err != nil {
		return err
	}

	ships, err := h.uc.FindAllShips(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newShipViews(ships), "")
}

// ListFreeShips returns the ships that can take a new mission.
func (h *SpaceShipHandler) ListFreeShips(c echo.Context) error {
	username, err := middleware.CurrentUsername(c)
	if err != nil {
		return err
	}

	ships, err := h.uc.FindAllFreeShips(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newShipViews(ships), "")
}

func (h *SpaceShipHandler) CreateShip(c echo.Context) error {
	username, err := middleware.CurrentUsername(c)
	if err != nil {
		return err
	}

	var input *usecase.CreateSpaceShipInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid space ship input")
	}

	ship, err := h.uc.CreateSpaceShip(c.Request().Context(), username, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newShipView(ship), "Space ship created")
}
