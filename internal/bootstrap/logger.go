package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Sahillather002/challenge-fun-app/internal/config"
	"github.com/Sahillather002/challenge-fun-app/internal/logger"
)

// SetupLogger initializes the default logger writing to stdout and, when
// cfg.LogDir is set, to a per-session file in that directory.
// Returns the log file handle (caller must close), nil when no file is used.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.Version, cfg.Environment)

	if cfg.LogDir == "" {
		logger.InitLoggerWithWriter(logCfg, os.Stdout)
		logStartup(cfg, logCfg)
		return nil, nil
	}

	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir)

	timestamp := time.Now().Format(LogFileTimestampFormat)
	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	logger.InitLoggerWithWriter(logCfg, io.MultiWriter(os.Stdout, logFile))
	logStartup(cfg, logCfg)

	return logFile, nil
}

func logStartup(cfg *config.Config, logCfg logger.Config) {
	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "format", logCfg.Format)
	slog.Info(LogMsgStartingApp,
		"environment", cfg.Environment,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"redis_db", cfg.Redis.DB,
		"redis_tls", cfg.Redis.TLS,
		"rate_limit_rps", cfg.RateLimit.RPS,
		"snapshot_cache_size", cfg.SnapshotCache.Size)

	for _, warning := range config.Warnings(cfg) {
		slog.Warn(LogMsgConfigWarning, "warning", warning)
	}
}

// cleanupLogs removes the oldest log files once LogFileRetentionLimit is
// reached, leaving LogFileRetentionCount. Session names sort chronologically.
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []os.DirEntry
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry)
		}
	}

	if len(logFiles) < LogFileRetentionLimit {
		return
	}

	toDelete := len(logFiles) - LogFileRetentionCount
	for i := 0; i < toDelete; i++ {
		if err := os.Remove(filepath.Join(logDir, logFiles[i].Name())); err != nil {
			fmt.Fprintf(os.Stderr, LogMsgFailedDeleteOldLog, logFiles[i].Name(), err)
		}
	}
}
