package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger returns a production sugared logger tagged with the
// service name. Logs go to stderr in JSON.
func NewZapLogger(service string, level zapcore.Level) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		// zap production config cannot fail to build with a valid level
		panic(err)
	}

	return logger.Sugar().With("service", service)
}
