package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/site"
	"git.home.luguber.info/inful/docsite/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Debounce    time.Duration `help:"Quiet period before reloading" default:"500ms"`
	MetricsAddr string        `name:"metrics-addr" help:"Serve Prometheus metrics on this address (e.g. :9090)"`
}

func (c *WatchCmd) Run(g *Global, root *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rec := metrics.NewPrometheusRecorder(nil)
	w, err := watch.New(root.Config,
		watch.WithDebounce(c.Debounce),
		watch.WithLogger(g.logger()),
		watch.WithLoadOptions(site.WithRecorder(rec)),
		watch.OnReload(func(s *site.Site) {
			_, _ = fmt.Fprintf(g.out(), "Reloaded %s: %d instances, %d docs\n", root.Config, len(s.Instances.All()), len(s.Docs()))
		}),
	)
	if err != nil {
		return err
	}

	// A broken definition at startup is reported but does not stop the watch.
	_, _ = w.Reload()

	if err := w.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	if c.MetricsAddr != "" {
		srv := &http.Server{Addr: c.MetricsAddr, Handler: metricsMux(rec), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				g.logger().Error("Metrics server failed", logfields.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	<-ctx.Done()
	g.logger().Info("Stopping watch")
	return nil
}

func metricsMux(rec *metrics.PrometheusRecorder) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", rec.HTTPHandler())
	return mux
}
