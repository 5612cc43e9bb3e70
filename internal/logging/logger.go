package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"wordfreq/internal/config"
)

// FieldSessionID is the structured logging key that ties records to one CLI invocation.
const FieldSessionID = "session_id"

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string
	// Writer receives records in Format; stderr when nil.
	Writer io.Writer
	// File, when set, receives a JSON copy of every record at the same level.
	File      io.Writer
	SessionID string
}

// New constructs a slog logger using the provided options.
func New(opts Options) (*slog.Logger, error) {
	level := parseLevel(opts.Level)
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	outputWriter := opts.Writer
	if outputWriter == nil {
		outputWriter = os.Stderr
	}

	addSource := level <= slog.LevelDebug

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "console"
	}

	var handler slog.Handler
	switch format {
	case "json":
		handler = newJSONHandler(outputWriter, levelVar, addSource)
	case "console":
		handler = newPrettyHandler(outputWriter, levelVar, addSource)
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	if opts.File != nil {
		handler = TeeHandler(handler, newJSONHandler(opts.File, levelVar, true))
	}

	logger := slog.New(handler)
	if id := strings.TrimSpace(opts.SessionID); id != "" {
		logger = logger.With(String(FieldSessionID, id))
	}
	return logger, nil
}

// NewFromConfig creates a logger using application config values. Records go to
// w (stderr when nil) and, when logging.file is set, to that JSON log file.
// The returned close func releases the log file and is safe to call when none
// was opened.
func NewFromConfig(cfg *config.Config, w io.Writer, sessionID string) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }
	if cfg == nil {
		logger, err := New(Options{Level: "warn", Format: "console", Writer: w, SessionID: sessionID})
		return logger, noop, err
	}

	opts := Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Writer:    w,
		SessionID: sessionID,
	}
	closeFn := noop
	if path := strings.TrimSpace(cfg.Logging.File); path != "" {
		file, err := openLogFile(path)
		if err != nil {
			return nil, noop, err
		}
		opts.File = file
		closeFn = file.Close
	}

	logger, err := New(opts)
	if err != nil {
		_ = closeFn()
		return nil, noop, err
	}
	return logger, closeFn, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info", "":
		return slog.LevelInfo
	default:
		return slog.LevelInfo
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := ensureLogDir(path); err != nil {
		return nil, fmt.Errorf("create log directory for %s: %w", path, err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return file, nil
}

func ensureLogDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
