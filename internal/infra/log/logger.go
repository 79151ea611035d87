// Package logs builds the process-wide slog.Logger from the env.log section.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"its/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates the server logger. Output goes to env.log.output ("stdout" by default).
func New(params Params) (*slog.Logger, error) {
	out, err := output(params.Config.Env.Log.Output)
	if err != nil {
		return nil, err
	}

	return NewWithWriter(params.Config, out)
}

// NewWithWriter creates a logger writing to w. The CLI uses it to keep stdout
// free for command output.
func NewWithWriter(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if raw := strings.TrimSpace(cfg.Env.Log.Level); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			return nil, errors.Wrapf(err, "env.log.level %q", raw)
		}
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: cfg.Env.Debug}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if cfg.Env.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	if cfg.Env.ServiceName != "" {
		logger = logger.With(slog.String("service", cfg.Env.ServiceName))
	}
	if cfg.Env.Env != "" {
		logger = logger.With(slog.String("env", cfg.Env.Env))
	}

	return logger, nil
}

func output(name string) (io.Writer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return nil, errors.Errorf("unknown log output: %s", name)
	}
}
