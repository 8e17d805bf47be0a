package telemetry

import (
	"io"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

type zeroLogger struct {
	logger zerolog.Logger
}

// NewZeroLogger writes human readable log lines to w at the given level
// ("debug", "info", "error", ...). An empty level means info.
func NewZeroLogger(w io.Writer, level string) (Logger, error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return nil, errors.Wrapf(err, "log level %q", level)
		}
		lvl = parsed
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339Nano, NoColor: true}
	return &zeroLogger{
		logger: zerolog.New(out).Level(lvl).With().Timestamp().Logger(),
	}, nil
}

// With returns a logger that adds key=value to every line.
func With(l Logger, key, value string) Logger {
	z, ok := l.(*zeroLogger)
	if !ok {
		return l
	}
	return &zeroLogger{logger: z.logger.With().Str(key, value).Logger()}
}

func (z *zeroLogger) Info(msg string) {
	z.logger.Info().Msg(msg)
}

func (z *zeroLogger) Debug(msg string) {
	z.logger.Debug().Msg(msg)
}

func (z *zeroLogger) Error(msg string, err error) {
	z.logger.Error().Err(err).Msg(msg)
}
