// Package monitoring provides the shared data-quality warning logger.
package monitoring

import "log"

// Warnf reports a non-fatal data quality problem, such as a skipped CSV row.
// It defaults to log.Printf (stderr) but may be replaced with SetWarnf so
// tests can capture or mute warnings.
var Warnf func(format string, v ...interface{}) = log.Printf

// SetWarnf replaces the warning logger. Passing nil installs a no-op logger.
func SetWarnf(f func(format string, v ...interface{})) {
	if f == nil {
		Warnf = func(string, ...interface{}) {}
		return
	}
	Warnf = f
}
