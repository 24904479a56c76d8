// Package logging builds the process slog.Logger. The terminal belongs to the
// game screen, so records go to a rotating file instead of stdout.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"tile-roguelike/internal/config"
)

// Setup returns a JSON logger writing to cfg.File through lumberjack and the
// closer that flushes it. The level is parsed from cfg.Level.
func Setup(cfg config.LogConfig) (*slog.Logger, io.Closer, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, nil, err
		}
	}
	fileLogger := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		LocalTime:  true,
	}
	return New(fileLogger, level), fileLogger, nil
}

// New returns a JSON logger on w at the given level, with short source paths.
func New(w io.Writer, level slog.Level) *slog.Logger {
	lv := &slog.LevelVar{}
	lv.Set(level)
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     lv,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					source.Function = ""
					source.File = filepath.Base(source.File)
				}
			}
			return a
		},
	}))
}
