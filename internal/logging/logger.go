package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"roombook/internal/config"

	"github.com/rs/zerolog"
)

const defaultServiceName = "roombook"

// New builds the service logger. JSON at info level on stdout unless the
// config says otherwise; development environments default to the console
// writer so request lines stay readable.
func New(cfg config.LoggingConfig, app config.AppConfig) (*zerolog.Logger, io.Closer, error) {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level))); err == nil {
		level = parsed
	}

	output := io.Writer(os.Stdout)
	var closer io.Closer

	switch strings.ToLower(strings.TrimSpace(cfg.Output)) {
	case "stderr":
		output = os.Stderr
	case "file":
		if cfg.FilePath == "" {
			return nil, nil, fmt.Errorf("logging.output=file requires logging.file_path")
		}
		file, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		output = file
		closer = file
	}

	if useConsole(cfg.Format, app.Environment) {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.DurationFieldUnit = time.Millisecond

	service := strings.TrimSpace(app.Name)
	if service == "" {
		service = defaultServiceName
	}

	base := zerolog.New(output).Level(level).With().Timestamp().Str("service", service)
	if app.Environment != "" {
		base = base.Str("env", app.Environment)
	}
	if app.Version != "" {
		base = base.Str("version", app.Version)
	}

	logger := base.Logger()
	return &logger, closer, nil
}

// useConsole picks the console writer on explicit request or, absent an
// explicit format, in development environments.
func useConsole(format, environment string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "console":
		return true
	case "json":
		return false
	}
	return strings.EqualFold(environment, "development")
}
