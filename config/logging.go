package config

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel  = "OTHELLO_LOG_LEVEL"
	EnvLogFormat = "OTHELLO_LOG_FORMAT"
)

// InitLogging configures the global logger from the environment: the level
// from OTHELLO_LOG_LEVEL (default info) and, unless OTHELLO_LOG_FORMAT is
// "json", a human readable console writer on stderr.
func InitLogging() error {
	return initLogging(os.Stderr, os.Getenv(EnvLogLevel), os.Getenv(EnvLogFormat))
}

func initLogging(out io.Writer, level, format string) error {
	lvl := zerolog.InfoLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return err
		}
		lvl = parsed
	}
	zerolog.SetGlobalLevel(lvl)

	if strings.EqualFold(format, "json") {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
		return nil
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen})
	return nil
}
