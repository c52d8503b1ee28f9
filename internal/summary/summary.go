// Package summary reports run statistics through the logger
package summary

import (
	"time"

	"github.com/bethropolis/wc/internal/counter"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Debug(format string, args ...interface{})
}

// Throughput returns bytes per second, or 0 for an instant run
func Throughput(chars int64, duration time.Duration) float64 {
	if duration <= 0 {
		return 0
	}
	return float64(chars) / duration.Seconds()
}

// DisplayResults logs the counts and timing of a finished scan
func DisplayResults(logger Logger, path string, counts counter.Counts, duration time.Duration) {
	logger.Debug("Counted %s: lines=%d words=%d chars=%d", path, counts.Lines, counts.Words, counts.Chars)
	logger.Debug("Scan complete in %v (%.0f bytes/s).",
		duration.Round(time.Microsecond), Throughput(counts.Chars, duration))
}
