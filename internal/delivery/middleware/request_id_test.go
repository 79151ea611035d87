package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "its/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "client id is kept", incoming: "trace-42.a_b", keep: true},
		{name: "missing id is generated", incoming: ""},
		{name: "id with spaces is replaced", incoming: "bad id"},
		{name: "id with newline is replaced", incoming: "evil\nlog"},
		{name: "overlong id is replaced", incoming: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			err := m.Process(func(c echo.Context) error {
				ctx := c.Request().Context()
				seen = deliverycontext.RequestID(ctx)
				deliverycontext.LoggerOr(ctx, nil).Info("handled")

				return nil
			})(c)
			require.NoError(t, err)

			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Contains(t, buf.String(), "request_id="+seen)
			if tt.keep {
				assert.Equal(t, tt.incoming, seen)
			} else {
				_, parseErr := uuid.Parse(seen)
				assert.NoError(t, parseErr)
			}
		})
	}
}
