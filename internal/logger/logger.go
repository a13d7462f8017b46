// Package logger provides structured logging with zap.
package logger

import "go.uber.org/zap"

// New creates a new zap.Logger depending on the environment. "production"
// gets the sampling JSON config, "test" a no-op logger, anything else the
// development console config.
func New(env string) *zap.Logger {
	switch env {
	case "production":
		logger, _ := zap.NewProduction()
		return logger
	case "test":
		return zap.NewNop()
	default:
		logger, _ := zap.NewDevelopment()
		return logger
	}
}
