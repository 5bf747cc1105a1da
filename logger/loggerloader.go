package logger

import (
	"io"
	"os"

	"github.com/remiges-tech/logharbour/logharbour"
)

// LoadLogger creates the service logger. It writes to stdout and falls back
// to stderr if stdout becomes unwritable.
func LoadLogger(appName string, priority string) (*logharbour.Logger, error) {
	p, err := ParsePriority(priority)
	if err != nil {
		return nil, err
	}
	var w io.Writer = logharbour.NewFallbackWriter(os.Stdout, os.Stderr)
	return NewLogger(appName, w, p), nil
}
