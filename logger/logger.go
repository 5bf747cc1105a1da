// Package logger builds the LogHarbour loggers used across numbername.
package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/remiges-tech/logharbour/logharbour"
)

var priorities = map[string]logharbour.LogPriority{
	"debug2": logharbour.Debug2,
	"debug1": logharbour.Debug1,
	"debug0": logharbour.Debug0,
	"info":   logharbour.Info,
	"warn":   logharbour.Warn,
	"err":    logharbour.Err,
	"crit":   logharbour.Crit,
	"sec":    logharbour.Sec,
}

// ParsePriority maps a config value such as "info" or "debug0" to a
// LogHarbour priority. An empty string gives logharbour.DefaultPriority.
func ParsePriority(s string) (logharbour.LogPriority, error) {
	if s == "" {
		return logharbour.DefaultPriority, nil
	}
	p, ok := priorities[strings.ToLower(s)]
	if !ok {
		return logharbour.DefaultPriority, fmt.Errorf("unknown log priority %q", s)
	}
	return p, nil
}

// NewLogger creates a LogHarbour logger for appName writing to w, dropping
// entries below minPriority.
func NewLogger(appName string, w io.Writer, minPriority logharbour.LogPriority) *logharbour.Logger {
	lctx := logharbour.NewLoggerContext(minPriority)
	return logharbour.NewLogger(lctx, appName, w)
}
