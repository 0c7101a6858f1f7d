package cmd

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the production logger. The level defaults to warn,
// GAPCHECK_LOG_LEVEL overrides it and verbose forces debug. Without
// outputs the logger writes to stderr.
func newLogger(verbose bool, outputs ...string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if lvl := os.Getenv("GAPCHECK_LOG_LEVEL"); lvl != "" {
		parsed, err := zap.ParseAtomicLevel(lvl)
		if err != nil {
			return nil, fmt.Errorf("parse GAPCHECK_LOG_LEVEL: %w", err)
		}
		config.Level = parsed
	}
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if len(outputs) > 0 {
		config.OutputPaths = outputs
		config.ErrorOutputPaths = outputs
	}
	return config.Build()
}
