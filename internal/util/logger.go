package util

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a JSON production logger at the named level writing to
// paths. No paths means stdout.
func NewLogger(level string, paths []string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfgZap := zap.NewProductionConfig()
	cfgZap.Level.SetLevel(lvl)
	cfgZap.OutputPaths = []string{"stdout"}
	if len(paths) > 0 {
		cfgZap.OutputPaths = paths
	}
	return cfgZap.Build()
}

// NewConsoleLogger builds a human readable logger on stderr for the command
// line tools. Verbose enables debug output.
func NewConsoleLogger(verbose bool) (*zap.Logger, error) {
	cfgZap := zap.NewDevelopmentConfig()
	cfgZap.OutputPaths = []string{"stderr"}
	cfgZap.Level.SetLevel(zapcore.WarnLevel)
	if verbose {
		cfgZap.Level.SetLevel(zapcore.DebugLevel)
	}
	return cfgZap.Build()
}
