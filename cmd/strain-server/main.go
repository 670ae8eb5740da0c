package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/signalsfoundry/strain-projector/core"
	"github.com/signalsfoundry/strain-projector/internal/httpapi"
	"github.com/signalsfoundry/strain-projector/internal/logging"
	"github.com/signalsfoundry/strain-projector/internal/observability"
	"github.com/signalsfoundry/strain-projector/network"
)

// Config collects the strain-server settings sourced from flags.
type Config struct {
	HTTPAddress    string
	MetricsAddress string
	DetectorsPath  string
}

func main() {
	httpAddr := flag.String("http-addr", ":8080", "TCP address the strain API listens on")
	metricsAddr := flag.String("metrics-addr", ":9090", "HTTP address for Prometheus /metrics")
	detectorsPath := flag.String("detectors", "", "Path to a JSON file with additional detector specs")
	flag.Parse()

	cfg := Config{
		HTTPAddress:    *httpAddr,
		MetricsAddress: *metricsAddr,
		DetectorsPath:  *detectorsPath,
	}

	log := logging.NewFromEnv()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lis, err := net.Listen("tcp", cfg.HTTPAddress)
	if err != nil {
		log.Error(ctx, "failed to listen", logging.String("addr", cfg.HTTPAddress), logging.Err(err))
		os.Exit(1)
	}

	if err := run(ctx, cfg, log, lis); err != nil {
		log.Error(ctx, "strain-server exited", logging.Err(err))
		os.Exit(1)
	}
}

// run wires the registry, metrics, tracing, and API server, then serves until
// ctx is cancelled.
func run(ctx context.Context, cfg Config, log logging.Logger, lis net.Listener) error {
	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		return err
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdownTracing, log)

	collector, err := observability.NewProjectionCollector(nil)
	if err != nil {
		return err
	}

	registry := network.NewRegistry()
	registry.Subscribe(func(ev network.Event) {
		collector.SetRegisteredDetectors(ev.Count)
		log.Debug(ctx, "detector registered",
			logging.String("name", ev.Spec.Name),
			logging.Int("count", ev.Count),
		)
	})

	for _, spec := range core.StandardDetectors() {
		if err := registry.Add(spec); err != nil {
			return err
		}
	}
	loadDetectorFile(log, registry, cfg.DetectorsPath)

	metricsSrv := serveMetrics(cfg.MetricsAddress, collector, log)

	api := httpapi.NewServer(registry, collector, log)
	srv := &http.Server{Handler: api.Routes()}

	log.Info(ctx, "starting strain API server",
		logging.String("addr", lis.Addr().String()),
		logging.Int("detectors", registry.Len()),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info(ctx, "shutting down strain-server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
	return <-errCh
}

func serveMetrics(addr string, collector *observability.ProjectionCollector, log logging.Logger) *http.Server {
	if addr == "" || collector == nil {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn(context.Background(), "metrics server exited", logging.Err(err))
		}
	}()

	log.Info(context.Background(), "serving Prometheus metrics", logging.String("addr", addr))
	return srv
}

func loadDetectorFile(log logging.Logger, registry *network.Registry, path string) {
	if path == "" {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		log.Warn(context.Background(), "skipping detector file", logging.String("path", path), logging.Err(err))
		return
	}
	defer f.Close()

	summary, err := network.LoadDetectors(registry, f)
	if err != nil {
		log.Warn(context.Background(), "failed to load detector file", logging.String("path", path), logging.Err(err))
		return
	}

	log.Info(context.Background(), "loaded detector file",
		logging.String("path", path),
		logging.Int("registered", len(summary.Registered)),
		logging.Int("skipped", len(summary.Skipped)),
	)
}
