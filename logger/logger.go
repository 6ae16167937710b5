package logger

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var once sync.Once

// Init configures the global zerolog logger once. Later calls are no-ops.
//
// Diagnostics go to out (stderr in the command) so that stdout carries only the
// benchmark's own output.
func Init(appName, logLevel string, out io.Writer) error {
	level, err := ParseLevel(logLevel)
	if err != nil {
		return err
	}

	once.Do(func() {
		zerolog.SetGlobalLevel(level)
		log.Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: "02-01-2006 15:04:05.000",
			FormatLevel: func(i interface{}) string {
				return strings.ToUpper(fmt.Sprintf("%-6s", i))
			},
			FieldsExclude: []string{"applicationName"},
		}).With().Timestamp().Caller().Str("applicationName", appName).Logger()

		zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
			parts := strings.Split(file, "/")
			return parts[len(parts)-1] + ":" + strconv.Itoa(line)
		}

		log.Debug().Msg("Logger initialized!")
	})

	return nil
}

// ParseLevel maps an upper or lower case level name to a zerolog level.
func ParseLevel(logLevel string) (zerolog.Level, error) {
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		return zerolog.DebugLevel, nil
	case "INFO":
		return zerolog.InfoLevel, nil
	case "WARN", "":
		return zerolog.WarnLevel, nil
	case "ERROR":
		return zerolog.ErrorLevel, nil
	case "FATAL":
		return zerolog.FatalLevel, nil
	case "PANIC":
		return zerolog.PanicLevel, nil
	case "DISABLED":
		return zerolog.Disabled, nil
	default:
		return zerolog.NoLevel, errors.Errorf("incorrect log level - %s", logLevel)
	}
}
