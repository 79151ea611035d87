// Package util holds small formatting and parsing helpers shared by the binaries.
package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}

// FormatFlightTime renders a mission duration given in whole seconds.
func FormatFlightTime(seconds int64) string {
	return FormatDuration(time.Duration(seconds) * time.Second)
}

// ParsePoint parses map coordinates written as "X,Y".
func ParsePoint(s string) (x, y int64, err error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, errors.Errorf("point %q must look like X,Y", s)
	}

	x, err = strconv.ParseInt(strings.TrimSpace(xs), 10, 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "parse x of %q", s)
	}

	y, err = strconv.ParseInt(strings.TrimSpace(ys), 10, 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "parse y of %q", s)
	}

	return x, y, nil
}
