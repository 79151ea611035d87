// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"its/internal/delivery/http/middleware"
	"its/internal/delivery/http/response"
	"its/internal/domain/entity"
	"its/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account and personal room handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type editExtensionRequest struct {
	Email *string `json:"email"`
}

// RegisterUser handles the user registration request.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var input *usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	user, err := h.uc.RegisterUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserView(user), "User registered successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, LoginView{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		ExpiresIn:   output.ExpiresIn,
	}, "Login successful")
}

// WhoAmI returns the username carried by the access token.
func (h *UserHandler) WhoAmI(c echo.Context) error {
	username, err := middleware.CurrentUsername(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"username": username}, "")
}

// UserData returns the personal room of the caller.
func (h *UserHandler) UserData(c echo.Context) error {
	username, err := middleware.CurrentUsername(c)
	if err != nil {
		return err
	}

	detail, err := h.uc.FindUser(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserDetailView(detail), "")
}

// EditExtension changes the contact data of the caller.
func (h *UserHandler) EditExtension(c echo.Context) error {
	username, err := middleware.CurrentUsername(c)
	if err != nil {
		return err
	}

	var req editExtensionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user extension input")
	}

	user, err := h.uc.ChangeUserExtension(c.Request().Context(), username, entity.UserExtensionPatch{Email: req.Email})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "User data updated")
}

// DeleteAccount removes the caller together with their ships and missions.
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	username, err := middleware.CurrentUsername(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteUser(c.Request().Context(), username); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"username": username}, "User deleted")
}
