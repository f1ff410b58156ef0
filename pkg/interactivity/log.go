package interactivity

import "go.uber.org/zap"

func debugLogger() *zap.Logger {
	l := zap.L()
	if !l.Core().Enabled(zap.DebugLevel) {
		return nil
	}
	return l.Named("interactivity")
}
