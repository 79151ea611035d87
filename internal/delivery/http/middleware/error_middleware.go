package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "its/internal/delivery/context"
	"its/internal/delivery/http/response"
	domainerrors "its/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, debug bool) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		debug:  debug,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.log(c).Error("Request failed", slog.String("code", appErr.ErrorCode()), slog.Any("error", err))
		}

		if c.Request().Method == http.MethodHead {
			m.write(c, appErr.HTTPCode(), "", "", "")

			return
		}
		if writeErr := response.AppError(c, appErr); writeErr != nil {
			m.log(c).Error("Failed to write error response", slog.Any("error", writeErr))
		}

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else if httpErr.Message != nil {
			message = fmt.Sprint(httpErr.Message)
		}

		m.write(c, httpErr.Code, message, "HTTP_ERROR", message)

		return
	}

	// Default to internal error, log error and return generic error
	m.log(c).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	details := ""
	if m.debug {
		details = err.Error()
	}
	m.write(c, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR", details)
}

func (m *ErrorMiddleware) write(c echo.Context, code int, message, errorCode, details string) {
	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = response.Error(c, code, errorCode, message, details)
	}

	if err != nil {
		m.log(c).Error("Failed to write error response", slog.Any("error", err))
	}
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.LoggerOr(c.Request().Context(), m.logger)
}
