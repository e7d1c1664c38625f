// Package logger builds the zerolog logger used by the command line and the
// HTTP server.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config controls level, format and optional file output.
type Config struct {
	Level      string `yaml:"level" validate:"oneof=trace debug info warn error"`
	Format     string `yaml:"format" validate:"oneof=console json"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `yaml:"max_age_days" validate:"gte=0"`
	Compress   bool   `yaml:"compress"`
}

// DefaultConfig logs info and above to the console.
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     FormatConsole,
		MaxSizeMB:  10,
		MaxBackups: 5,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// New builds a logger writing to out and, if cfg.File is set, to a rotating
// file as well. Console output is coloured only when out is a terminal.
func New(cfg Config, out io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var w io.Writer = out
	if cfg.Format != FormatJSON {
		w = ConsoleWriter(out, isTerminal(out))
	}
	if cfg.File != "" {
		w = zerolog.MultiLevelWriter(w, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		})
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// ConsoleWriter renders levels as lipgloss badges. Without colour the
// badges fall back to zerolog's short level names (TRC, DBG, INF, WRN, ERR).
func ConsoleWriter(out io.Writer, color bool) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    !color,
		TimeFormat: "01-02 15:04:05",
		FormatLevel: func(i any) string {
			lvl := shortLevel(fmt.Sprint(i))
			if !color {
				return lvl
			}
			return lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ffffff")).
				Background(lipgloss.Color(levelColor(fmt.Sprint(i)))).
				Padding(0, 1).
				Render(lvl)
		},
	}
}

func levelColor(level string) string {
	switch strings.ToLower(level) {
	case "trace", "debug":
		return "#3ddbd9"
	case "info":
		return "#4589ff"
	case "warn":
		return "#ff832b"
	case "error":
		return "#da1e28"
	case "fatal", "panic":
		return "#ff0000"
	default:
		return "#8d8d8d"
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func shortLevel(name string) string {
	if l, err := zerolog.ParseLevel(name); err == nil {
		if short, ok := zerolog.FormattedLevels[l]; ok {
			return short
		}
	}
	return strings.ToUpper(name)
}
