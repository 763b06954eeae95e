package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/WebCoreServices/customer-portal/internal/config"
)

func New(cfg *config.Config) *zap.Logger {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.LogLevel); err != nil {
		level = zapcore.InfoLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.DisableStacktrace = true

	log, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
