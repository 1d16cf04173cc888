// Package logging builds the hamcycle logger and carries it through a context.
package logging

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type loggerContextKey string

const loggerContextKeyVal = loggerContextKey("logrus.FieldLogger")

// Config selects level and format. Format is auto, text or json.
type Config struct {
	Level  string
	Format string
}

// New returns a logger writing to out.
func New(cfg Config, out io.Writer) (*logrus.Logger, error) {
	level := logrus.InfoLevel
	if cfg.Level != "" {
		var err error
		if level, err = logrus.ParseLevel(cfg.Level); err != nil {
			return nil, errors.Wrap(err, "log level")
		}
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)

	switch cfg.Format {
	case "", "auto":
		colorable := CheckIfColorable(out)
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: !colorable,
			ForceColors:   colorable,
			FullTimestamp: !colorable,
		})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, errors.Errorf("log format %q: want auto, text or json", cfg.Format)
	}

	return logger, nil
}

// Logger returns the appropriate logger for current context
func Logger(ctx context.Context) logrus.FieldLogger {
	val := ctx.Value(loggerContextKeyVal)
	if val != nil {
		if logger, ok := val.(logrus.FieldLogger); ok {
			return logger
		}
	}
	return logrus.StandardLogger()
}

// WithLogger adds a value to the context for the logger
func WithLogger(ctx context.Context, logger logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, loggerContextKeyVal, logger)
}

// CheckIfTerminal reports whether w is an interactive terminal.
func CheckIfTerminal(w io.Writer) bool {
	switch v := w.(type) {
	case *os.File:
		return isatty.IsTerminal(v.Fd()) || isatty.IsCygwinTerminal(v.Fd())
	default:
		return false
	}
}

// CheckIfColorable reports whether coloured output should go to w.
func CheckIfColorable(w io.Writer) bool {
	if !CheckIfTerminal(w) {
		return false
	}
	// https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if t, ok := os.LookupEnv("TERM"); ok && t == "dumb" {
		return false
	}
	return true
}
