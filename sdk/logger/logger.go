// Package logger provides a thin wrapper around slog configured from the
// environment.
package logger

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"time"

	"github.com/cultivarhq/cultivar/sdk/environment"
)

// Logger wraps the standard slog.Logger.
type Logger struct {
	*slog.Logger
}

// Options is the exportable logger configuration.
type Options struct {
	Level      string `env:"LOG_LEVEL" default:"INFO"`
	Output     string `env:"LOG_OUTPUT" default:"STDOUT"`
	Format     string `env:"LOG_FORMAT" default:"json"`
	TimeFormat string `env:"LOG_TIME_FORMAT" default:"RFC3339"`
}

// options holds the resolved runtime settings.
type options struct {
	level      slog.Level
	output     io.Writer
	addSource  bool
	format     string
	timeFormat string
}

// Option configures the logger beyond what the environment provides.
type Option func(*options)

// WithLevel overrides the configured level.
func WithLevel(level string) Option {
	return func(o *options) {
		o.level = parseLevel(level)
	}
}

// WithOutput overrides the configured output writer.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithSource enables source file annotation on every record.
func WithSource() Option {
	return func(o *options) {
		o.addSource = true
	}
}

// NewDefault creates a JSON logger at INFO writing to stdout.
func NewDefault(opts ...Option) *Logger {
	cfg := Options{
		Level:      "INFO",
		Output:     "STDOUT",
		Format:     "json",
		TimeFormat: time.RFC3339,
	}
	return newLogger(cfg, opts...)
}

// NewFromEnv creates a logger from prefixed environment variables.
func NewFromEnv(prefix string, opts ...Option) (*Logger, error) {
	var cfg Options
	if err := environment.ParseEnvTags(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing logger config: %w", err)
	}
	return newLogger(cfg, opts...), nil
}

// NewStdLogger adapts the Logger for APIs that require a *log.Logger, such as
// http.Server's ErrorLog.
func NewStdLogger(logger *Logger, level slog.Level) *log.Logger {
	return slog.NewLogLogger(logger.Logger.Handler(), level)
}

func newLogger(cfg Options, opts ...Option) *Logger {
	o := &options{
		level:      parseLevel(cfg.Level),
		output:     parseOutput(cfg.Output),
		format:     cfg.Format,
		timeFormat: cfg.TimeFormat,
	}

	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     o.level,
		AddSource: o.addSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && o.timeFormat != "" {
				switch o.timeFormat {
				case "Unix":
					return slog.Int64(slog.TimeKey, a.Value.Time().Unix())
				case "UnixMilli":
					return slog.Int64(slog.TimeKey, a.Value.Time().UnixMilli())
				case "RFC3339":
					return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
				default:
					return slog.String(slog.TimeKey, a.Value.Time().Format(o.timeFormat))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	switch o.format {
	case "text":
		handler = slog.NewTextHandler(o.output, handlerOpts)
	default:
		handler = slog.NewJSONHandler(o.output, handlerOpts)
	}

	return &Logger{Logger: slog.New(handler)}
}
