package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-drift/carousel/cmd/carousel/internal/config"
	"github.com/go-drift/carousel/cmd/carousel/internal/layoutfile"
	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/resize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zoobzio/capitan"
)

func init() {
	RegisterCommand(&Command{
		Name:  "watch",
		Short: "Follow layout edits and re-measure the carousel",
		Long: `Run the engine frame loop over the layout in carousel.yaml. Saving the
file with a changed container or slide size triggers a re-measurement,
exactly as a resize observer would on a page. Lifecycle events are printed
one per line.

Flags:
  --config FILE          Configuration file (default: carousel.yaml)
  --metrics-addr ADDR    Serve Prometheus metrics on ADDR at /metrics
  --poll DURATION        Detect size changes by polling node rects instead
                         of file events (e.g. 100ms)
  --fps N                Frames per second (default: 60)`,
		Usage: "carousel watch [--config FILE] [--metrics-addr ADDR] [--poll DURATION] [--fps N]",
		Run:   runWatch,
	})
}

type watchOptions struct {
	configPath  string
	metricsAddr string
	poll        time.Duration
	fps         int
}

func parseWatch(args []string) (watchOptions, error) {
	fs, err := parseFlags(args, "config", "metrics-addr", "poll", "fps")
	if err != nil {
		return watchOptions{}, err
	}
	opts := watchOptions{
		configPath:  fs.string("config", config.DefaultFile),
		metricsAddr: fs.string("metrics-addr", ""),
	}
	if opts.poll, err = fs.duration("poll", 0); err != nil {
		return opts, err
	}
	if opts.fps, err = fs.int("fps", 60); err != nil {
		return opts, err
	}
	if opts.fps < 1 {
		return opts, fmt.Errorf("--fps must be at least 1")
	}
	return opts, nil
}

func runWatch(args []string) error {
	opts, err := parseWatch(args)
	if err != nil {
		return err
	}
	resolved, err := config.Resolve(opts.configPath)
	if err != nil {
		return err
	}
	if _, err := os.Stat(opts.configPath); err != nil {
		return fmt.Errorf("watch needs an existing config file: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hookSignals(stdout)
	defer capitan.Shutdown()

	registry := prometheus.NewRegistry()
	metrics := carousel.NewMetrics(registry)
	if opts.metricsAddr != "" {
		srv := serveMetrics(opts.metricsAddr, registry)
		defer srv.Close()
	}

	layout := layoutfile.NewLayout(resolved.Container, resolved.Slides)
	fileObserver := layoutfile.NewObserver(opts.configPath, resolved.Options.Axis, layout)

	var observer resize.Observer = fileObserver
	if opts.poll > 0 {
		// File events only keep the nodes current; the poller detects changes.
		disconnect, err := fileObserver.Observe(nil, func([]resize.Entry) {})
		if err != nil {
			return err
		}
		defer disconnect()
		observer = resize.NewPollingObserver(opts.poll)
	}

	container, slides := layout.Nodes()
	engineOpts := resolved.Options
	engineOpts.WatchResize = resize.Watch(true)
	engine := carousel.New(container, slides, engineOpts, carousel.Dependencies{
		Observer: observer,
		Metrics:  metrics,
	})
	if err := engine.Init(); err != nil {
		return err
	}
	defer engine.Destroy()

	fmt.Fprintf(stdout, "watching %s (Ctrl+C to stop)\n", opts.configPath)
	engine.Run(ctx, time.Second/time.Duration(opts.fps))
	return nil
}

func serveMetrics(addr string, registry *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "metrics server: %v\n", err)
		}
	}()
	fmt.Fprintf(stdout, "serving metrics on %s/metrics\n", addr)
	return srv
}
