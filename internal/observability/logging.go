package observability

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"

	"github.com/wandb/chartbrush/internal/sentry_ext"
)

type Tags map[string]string

// NewTags creates Tags from a mix of slog.Attr values and key/value pairs.
// Incomplete pairs and other types are ignored.
func NewTags(args ...any) Tags {
	tags := Tags{}
	for len(args) > 0 {
		switch x := args[0].(type) {
		case slog.Attr:
			tags[x.Key] = x.Value.String()
			args = args[1:]
		case string:
			if len(args) < 2 {
				return tags
			}
			attr := slog.Any(x, args[1])
			tags[attr.Key] = attr.Value.String()
			args = args[2:]
		default:
			args = args[1:]
		}
	}
	return tags
}

type CoreLoggerParams struct {
	Sentry *sentry_ext.Client
	Tags   Tags
}

// CoreLogger is a slog.Logger that can also report to Sentry.
type CoreLogger struct {
	*slog.Logger
	baseTags Tags
	sentry   *sentry_ext.Client
}

func NewCoreLogger(logger *slog.Logger, params *CoreLoggerParams) *CoreLogger {
	if params == nil {
		params = &CoreLoggerParams{}
	}

	tags := Tags{}
	var args []any
	for key, value := range params.Tags {
		args = append(args, slog.String(key, value))
		tags[key] = value
	}

	return &CoreLogger{
		Logger:   logger.With(args...),
		sentry:   params.Sentry,
		baseTags: tags,
	}
}

// With returns a derived logger that includes the given tags in each
// message and in Sentry events.
func (cl *CoreLogger) With(args ...any) *CoreLogger {
	tags := NewTags(args...)
	for key, value := range cl.baseTags {
		tags[key] = value
	}
	return &CoreLogger{
		Logger:   cl.Logger.With(args...),
		baseTags: tags,
		sentry:   cl.sentry,
	}
}

func (cl *CoreLogger) tagsWith(args ...any) Tags {
	tags := NewTags(args...)
	for key, value := range cl.baseTags {
		tags[key] = value
	}
	return tags
}

// CaptureError logs an error and sends it to Sentry.
func (cl *CoreLogger) CaptureError(err error, args ...any) {
	cl.Error(err.Error(), args...)
	if cl.sentry != nil {
		cl.sentry.CaptureException(err, cl.tagsWith(args...))
	}
}

// CaptureWarn logs a warning and sends it to Sentry.
func (cl *CoreLogger) CaptureWarn(msg string, args ...any) {
	cl.Warn(msg, args...)
	if cl.sentry != nil {
		cl.sentry.CaptureMessage(msg, cl.tagsWith(args...))
	}
}

// GetTags returns the tags attached to the logger.
//
// Used for testing.
func (cl *CoreLogger) GetTags() Tags {
	return cl.baseTags
}

// NewNoOpLogger returns a logger that discards all messages.
//
// Used for testing.
func NewNoOpLogger() *CoreLogger {
	return NewCoreLogger(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
}

// NewHandler returns a charmbracelet/log handler writing to w at level.
func NewHandler(w io.Writer, level string) slog.Handler {
	lvl, err := charmlog.ParseLevel(level)
	if err != nil {
		lvl = charmlog.InfoLevel
	}
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		Level:           lvl,
		Prefix:          "chartbrush",
	})
}

// OpenLogFile opens path for appending, creating parent directories.
// An empty path yields io.Discard, since the terminal belongs to the UI.
func OpenLogFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// NewFileLogger builds the application logger: a charmbracelet/log handler
// writing to path (or nowhere when path is empty), reporting to sentry when
// it is enabled. The returned closer closes the log file.
func NewFileLogger(
	path string,
	level string,
	sentry *sentry_ext.Client,
) (*CoreLogger, io.Closer, error) {
	w, err := OpenLogFile(path)
	if err != nil {
		return nil, nil, err
	}
	logger := NewCoreLogger(
		slog.New(NewHandler(w, level)),
		&CoreLoggerParams{Sentry: sentry},
	)
	return logger, w, nil
}
