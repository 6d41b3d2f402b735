package logger

import (
	"io"
	"log/slog"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/oxbel/dirkit/internal/cache"
	"github.com/oxbel/dirkit/internal/constants"
)

var (
	defaultLogger *slog.Logger
	once          sync.Once
)

// Get returns the global logger instance, initializing it once
func Get() *slog.Logger {
	once.Do(func() {
		defaultLogger = initLogger()
	})
	return defaultLogger
}

// initLogger creates the global logger that writes to dirkit.log in the
// cache directory. Uses lumberjack for rotation so the file stays small.
// If the log file cannot be created, returns a no-op logger that discards
// all output.
func initLogger() *slog.Logger {
	cacheDir, err := cache.EnsureCacheDir()
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	logWriter := &lumberjack.Logger{
		Filename:   filepath.Join(cacheDir, constants.LogFile),
		MaxSize:    1, // MB
		MaxBackups: 0,
		MaxAge:     0,
		Compress:   false,
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	return slog.New(handler)
}
