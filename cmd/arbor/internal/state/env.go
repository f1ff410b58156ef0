// Package state defines shared program state.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/go-drift/arbor/cmd/arbor/internal/config"
)

type envKey struct{}

// LocalEnv keeps everything the program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Log *zap.Logger

	start         time.Time
	restoreGlobal func()
	restoreStdLog func()
}

// EnvFromContext returns the environment stored by ContextWithEnv.
func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

// ContextWithEnv returns ctx carrying a fresh environment with defaults and a
// no-op logger.
func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &LocalEnv{
		Cfg:   config.Default(),
		Log:   zap.NewNop(),
		start: time.Now(),
	})
}

// Uptime returns the time since the environment was created.
func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// InstallLogger makes log the program logger, the global zap logger used by
// the library packages, and the target of the standard library logger.
func (e *LocalEnv) InstallLogger(log *zap.Logger) {
	e.Log = log
	e.restoreGlobal = zap.ReplaceGlobals(log)
	e.restoreStdLog = zap.RedirectStdLog(log)
}

// RestoreLogger syncs the logger and undoes InstallLogger.
func (e *LocalEnv) RestoreLogger() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
		e.restoreStdLog = nil
	}
	if e.restoreGlobal != nil {
		e.restoreGlobal()
		e.restoreGlobal = nil
	}
}
