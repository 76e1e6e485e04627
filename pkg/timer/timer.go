package timer

import (
	"time"

	"go.uber.org/zap"
)

// Track returns a function that, when executed, logs the duration.
// Usage: defer timer.Track("FunctionName")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		zap.L().Debug("timed", zap.String("op", name), zap.Duration("took", time.Since(start)))
	}
}
