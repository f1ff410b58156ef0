package layout

import "go.uber.org/zap"

// debugLogger returns the package logger, or nil when debug output is
// disabled so call sites skip building fields.
func debugLogger() *zap.Logger {
	l := zap.L()
	if !l.Core().Enabled(zap.DebugLevel) {
		return nil
	}
	return l.Named("layout")
}
