package bootstrap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/kabachok/lootcase/internal/config"
	"github.com/kabachok/lootcase/internal/handler"
	"github.com/kabachok/lootcase/internal/logger"
)

// SetupLogger initializes the default logger writing to stdout and, when
// cfg.LogDir is set, to a size-rotated file in that directory.
// The returned closer flushes the file and must be closed on exit.
func SetupLogger(cfg *config.Config) (io.Closer, error) {
	var out io.Writer = os.Stdout
	var closer io.Closer = nopCloser{}

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
		}
		file := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.LogDir, LogFileName),
			MaxSize:    LogFileMaxSizeMB,
			MaxBackups: LogFileMaxBackups,
			MaxAge:     LogFileMaxAgeDays,
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, file)
		closer = file
	}

	addSource := cfg.Environment == "dev" || cfg.Environment == "development"
	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		ServiceName,
		handler.CurrentVersion(),
		cfg.Environment,
		addSource,
	), out)

	logger.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat, "dir", cfg.LogDir)
	logger.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"version", handler.CurrentVersion(),
		"store", cfg.StoreDriver)

	logger.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"redis", cfg.RedisAddr != "",
		"broker", cfg.AMQPURL != "",
		"port", cfg.Port)

	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
