package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// New builds the engine logger at the given level, falling back to info
// for anything unparseable. The returned logger is safe to share between
// the cycle worker and whatever reads the output.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(lvl)
}
