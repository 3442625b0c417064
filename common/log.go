package common

import (
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// SetupLogger routes the global zerolog logger to a colored console writer
// and applies the named level. Unknown levels fall back to info.
func SetupLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{
		Out:        colorable.NewColorableStdout(),
		TimeFormat: "15:04:05.000",
	})
	return zlog.Logger
}
