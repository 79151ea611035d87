package handler

import (
	"net/http"

	"its/internal/delivery/http/response"
	"its/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlanetHandler serves the shared planet catalog.
type PlanetHandler struct {
	uc usecase.PlanetUsecase
}

func NewPlanetHandler(uc usecase.PlanetUsecase) *PlanetHandler {
	return &PlanetHandler{uc: uc}
}

// ListPlanets returns every planet of the space map.
func (h *PlanetHandler) ListPlanets(c echo.Context) error {
	planets, err := h.uc.FindAllPlanets(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPlanetViews(planets), "")
}

// CreatePlanet adds a planet to the catalog.
func (h *PlanetHandler) CreatePlanet(c echo.Context) error {
	var input *usecase.CreatePlanetInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid planet input")
	}

	planet, err := h.uc.CreatePlanet(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newPlanetView(planet), "Planet created")
}

// DeleteAllPlanets empties the catalog. It fails while any mission references a planet.
func (h *PlanetHandler) DeleteAllPlanets(c echo.Context) error {
	deleted, err := h.uc.DeleteAllPlanets(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted": deleted}, "Planets deleted")
}
