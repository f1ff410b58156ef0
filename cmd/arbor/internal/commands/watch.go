package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/go-drift/arbor/cmd/arbor/internal/document"
	"github.com/go-drift/arbor/cmd/arbor/internal/state"
	arborerrors "github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/graphics"
	arbortest "github.com/go-drift/arbor/pkg/testing"
)

// debounceWindow batches the burst of events editors produce on save.
const debounceWindow = 100 * time.Millisecond

// Watch lays out a scene, then again every time the file changes, printing
// the difference between consecutive layouts. It runs until ctx is done.
func Watch(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	sc, err := loadScene(ctx, cmd)
	if err != nil {
		return err
	}

	addr := cmd.String("metrics")
	if addr == "" {
		addr = env.Cfg.Metrics.Address
	}
	if addr != "" {
		_, stop, err := serveMetrics(addr, env.Log)
		if err != nil {
			return err
		}
		defer stop()
	}

	width, height := cmd.Float("width"), cmd.Float("height")
	s, err := newWatchSession(sc.path, cmd.Root().Writer, env.Log, func(doc *document.Document) graphics.Size {
		return clientSize(doc, env.Cfg, width, height)
	})
	if err != nil {
		return err
	}
	if err := s.reload(); err != nil {
		return err
	}
	return s.watch(ctx)
}

// serveMetrics exposes the default Prometheus registry on addr and returns
// the address actually bound.
func serveMetrics(addr string, log *zap.Logger) (bound string, stop func(), err error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, fmt.Errorf("unable to listen for metrics: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		defer arborerrors.Recover("cmd.metrics")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Metrics server stopped", zap.Error(err))
		}
	}()
	log.Info("Serving metrics", zap.String("address", ln.Addr().String()))

	return ln.Addr().String(), func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}

type watchSession struct {
	path string
	out  io.Writer
	log  *zap.Logger
	size func(*document.Document) graphics.Size

	last *arbortest.Snapshot
	// ready is closed once the watcher is registered.
	ready chan struct{}
}

func newWatchSession(path string, out io.Writer, log *zap.Logger, size func(*document.Document) graphics.Size) (*watchSession, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return &watchSession{path: abs, out: out, log: log, size: size, ready: make(chan struct{})}, nil
}

// reload lays the scene out again. The first layout is printed as an
// outline, later ones as a diff against the previous layout. A panic while
// laying out is reported and returned as an error so watching continues.
func (s *watchSession) reload() (err error) {
	defer arborerrors.RecoverWithCallback("cmd.watch", func(r any) {
		err = fmt.Errorf("layout panicked: %v", r)
	})

	doc, err := document.Load(s.path)
	if err != nil {
		return err
	}
	root, err := doc.NewRoot(s.size(doc))
	if err != nil {
		return err
	}
	if err := root.LayoutPass(); err != nil {
		return err
	}
	snap := arbortest.CaptureSnapshot(root)

	defer func() { s.last = snap }()
	if s.last == nil {
		return snap.WriteText(s.out)
	}
	if diff := snap.Diff(s.last); diff != "" {
		_, err = fmt.Fprint(s.out, diff)
		return err
	}
	_, err = fmt.Fprintln(s.out, "layout unchanged")
	return err
}

// watch reloads after each burst of writes to the scene until ctx is done.
// The directory is watched so that editors replacing the file are seen.
func (s *watchSession) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("unable to watch %s: %w", s.path, err)
	}
	close(s.ready)
	s.log.Info("Watching scene", zap.String("scene", s.path))

	var timer *time.Timer
	var timerC <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != s.path || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
			} else {
				timer.Reset(debounceWindow)
			}
			timerC = timer.C
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("Watcher error", zap.Error(err))
		case <-timerC:
			timerC = nil
			if err := s.reload(); err != nil {
				s.log.Error("Unable to lay out scene", zap.Error(err))
			}
		}
	}
}
