// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"its/internal/delivery/http/middleware"
	"its/internal/delivery/http/router/handler"
	"its/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	PlanetHandler    *handler.PlanetHandler
	SpaceShipHandler *handler.SpaceShipHandler
	MissionHandler   *handler.MissionHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	planetHandler    *handler.PlanetHandler
	spaceShipHandler *handler.SpaceShipHandler
	missionHandler   *handler.MissionHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		planetHandler:    params.PlanetHandler,
		spaceShipHandler: params.SpaceShipHandler,
		missionHandler:   params.MissionHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterUser)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Everything below requires a valid access token
	private := e.Group("/private")
	private.Use(r.authMiddleware.Authenticate)
	{
		private.GET("/whoami", r.userHandler.WhoAmI)

		private.GET("/personal-room/user-data", r.userHandler.UserData)
		private.POST("/personal-room/edit", r.userHandler.EditExtension)
		private.DELETE("/personal-room", r.userHandler.DeleteAccount)

		private.GET("/space-map/planets", r.planetHandler.ListPlanets)

		private.GET("/ships", r.spaceShipHandler.ListShips)
		private.POST("/ships", r.spaceShipHandler.CreateShip)

		private.GET("/mission-constructor/planet-list", r.planetHandler.ListPlanets)
		private.GET("/mission-constructor/free-ship-list", r.spaceShipHandler.ListFreeShips)
		private.GET("/mission-constructor/analyze", r.missionHandler.Analyze)
		private.POST("/mission-constructor/construct", r.missionHandler.Construct)

		private.GET("/mission-management/missions", r.missionHandler.ListMissions)

		private.GET("/mission/details", r.missionHandler.Details)
		private.POST("/mission/start", r.missionHandler.Start)
		private.POST("/mission/cancel", r.missionHandler.Cancel)
		private.POST("/mission/complete", r.missionHandler.Complete)
	}

	// Catalog management requires the admin role
	admin := e.Group("/admin")
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		admin.POST("/planets", r.planetHandler.CreatePlanet)
		admin.DELETE("/planets", r.planetHandler.DeleteAllPlanets)
	}
}
