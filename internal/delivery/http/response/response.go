// Package response renders the JSON envelope shared by every endpoint.
package response

import (
	"net/http"

	domainerrors "its/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo names the business error, e.g. "MISSION_STATE_CONFLICT".
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// Success writes data under the "data" key.
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error writes a failure envelope. An empty message falls back to the status text.
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// AppError writes a domain error using its own status and codes.
func AppError(c echo.Context, err domainerrors.AppError) error {
	return Error(c, err.HTTPCode(), err.ErrorCode(), err.Message(), err.Details())
}

// BindingError reports a body or query that could not be decoded.
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}
