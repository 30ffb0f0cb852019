package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/blackdot-sh/blackdot/internal/constants"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogRotationConfig holds configuration for engine log rotation.
type LogRotationConfig struct {
	MaxAge     int  // Maximum number of days to retain log files
	MaxSize    int  // Maximum size in megabytes before rotation
	MaxBackups int  // Maximum number of backup files to retain
	Compress   bool // Whether to compress rotated files
}

// DefaultLogRotationConfig returns sensible defaults for log rotation.
func DefaultLogRotationConfig() LogRotationConfig {
	return LogRotationConfig{
		MaxAge:     30,
		MaxSize:    10,
		MaxBackups: 5,
		Compress:   true,
	}
}

// SetupLogger builds the engine's structured logger. When baseDir is
// non-empty, records go to a rotating file under <baseDir>/logs; otherwise
// they go to stderr. Verbose lowers the level to Debug.
func SetupLogger(baseDir string, rotation LogRotationConfig, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stderr
	if baseDir != "" {
		logPath := constants.LogPath(baseDir)
		if err := os.MkdirAll(filepath.Dir(logPath), 0o750); err == nil {
			w = &lumberjack.Logger{
				Filename:   logPath,
				MaxSize:    rotation.MaxSize,
				MaxBackups: rotation.MaxBackups,
				MaxAge:     rotation.MaxAge,
				Compress:   rotation.Compress,
				LocalTime:  true,
			}
		}
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// CleanupOldLogs removes log files older than maxAgeDays. This provides
// additional cleanup beyond lumberjack's built-in MaxAge.
func CleanupOldLogs(logDir string, maxAgeDays int) error {
	if maxAgeDays <= 0 {
		return nil
	}

	cutoff := time.Now().AddDate(0, 0, -maxAgeDays)
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(logDir, e.Name()))
		}
	}
	return nil
}
