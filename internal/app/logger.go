// Package app provides logger initialization.
package app

import (
	"github.com/threadline/bagging-service/config"
	"github.com/threadline/bagging-service/internal/logger"
)

// InitializeLogger configures the global structured logger.
func InitializeLogger(cfg config.LoggingConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}
