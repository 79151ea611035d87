package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"its/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_Levels(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"Warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Env.Log.Level = tt.in

			logger, err := NewWithWriter(cfg, &bytes.Buffer{})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Enabled(t.Context(), tt.want))
			assert.False(t, logger.Enabled(t.Context(), tt.want-1))
		})
	}
}

func TestNewWithWriter_JSONAttributes(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "test"
	cfg.Env.ServiceName = "its"

	var buf bytes.Buffer
	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	logger.Info("seeded", slog.Int("planets", 4))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "seeded", line["msg"])
	assert.Equal(t, "its", line["service"])
	assert.Equal(t, "test", line["env"])
	assert.EqualValues(t, 4, line["planets"])
}

func TestNew_Output(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Pretty = true

	for _, out := range []string{"", "stdout", "STDERR"} {
		cfg.Env.Log.Output = out
		_, err := New(Params{Config: cfg})
		assert.NoError(t, err, out)
	}

	cfg.Env.Log.Output = "syslog"
	_, err := New(Params{Config: cfg})
	assert.Error(t, err)
}
