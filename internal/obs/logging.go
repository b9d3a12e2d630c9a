// Package obs contains observability utilities such as logging.
package obs

import (
	"go.uber.org/zap"
)

// NewLogger builds a JSON production logger writing to the given outputs
// ("stderr", "stdout" or file paths) at the given level.
func NewLogger(level string, outputs ...string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	if len(outputs) > 0 {
		cfg.OutputPaths = outputs
	}
	return cfg.Build()
}
