// Package logging builds the logrus logger shared by the dispatcher and the
// built-in commands. Output goes to stderr and, when a file is configured, to
// a size-rotated log file.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger construction.
type Options struct {
	Level  string    // logrus level name; empty means "warn"
	File   string    // optional path of a rotated log file
	JSON   bool      // use the JSON formatter instead of text
	Output io.Writer // terminal output; nil means os.Stderr

	Rotation Rotation
}

// Rotation configures the lumberjack file writer.
type Rotation struct {
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// DefaultRotation mirrors the limits used for long-running services.
var DefaultRotation = Rotation{
	MaxSize:    128,
	MaxBackups: 5,
	MaxAge:     16,
}

// New returns a configured logger. An unknown level is an error.
func New(opts Options) (*logrus.Logger, error) {
	logger := logrus.New()

	level := logrus.WarnLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("parsing log level %q: %w", opts.Level, err)
		}
		level = parsed
	}
	logger.SetLevel(level)

	if opts.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: opts.File == "",
			FullTimestamp:    true,
		})
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	if opts.File != "" {
		rot := opts.Rotation
		if rot == (Rotation{}) {
			rot = DefaultRotation
		}
		out = io.MultiWriter(out, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    rot.MaxSize,
			MaxBackups: rot.MaxBackups,
			MaxAge:     rot.MaxAge,
			Compress:   rot.Compress,
		})
	}
	logger.SetOutput(out)

	return logger, nil
}

// Discard returns a logger that drops everything. Tests use it.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// ApplyFlags raises verbosity for the --verbose and --debug global options.
// It never lowers a level already configured to be more verbose.
func ApplyFlags(logger *logrus.Logger, verbose, debug bool) {
	want := logger.GetLevel()
	if verbose && want < logrus.InfoLevel {
		want = logrus.InfoLevel
	}
	if debug && want < logrus.DebugLevel {
		want = logrus.DebugLevel
	}
	logger.SetLevel(want)
}
