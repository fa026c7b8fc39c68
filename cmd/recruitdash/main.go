package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/cli"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/config"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/db"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/repository"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/service"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/source"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := &cli.App{
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}
	root := cli.NewRootCmd(app)
	config.RegisterFlags(root.PersistentFlags())

	// Services are wired after flag parsing so flags can override config.
	var closers []func()
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}()
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.FromFlags(cmd.Flags())
		if err != nil {
			return err
		}
		c, err := wire(cmd.Context(), cfg, app)
		closers = append(closers, c...)
		return err
	}

	return root.ExecuteContext(ctx)
}

// wire builds the services described by cfg into app. The returned closers
// must run even when wiring fails part way.
func wire(ctx context.Context, cfg config.Config, app *cli.App) ([]func(), error) {
	var closers []func()

	logger, err := service.NewFileLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return closers, fmt.Errorf("opening log: %w", err)
	}
	closers = append(closers, func() { _ = logger.Sync() })

	observers := []service.UseCaseObserver{service.NewLogUseCaseObserver(logger)}
	if cfg.MetricsAddr != "" {
		metrics, shutdown, err := serveMetrics(cfg.MetricsAddr, logger)
		if err != nil {
			return closers, err
		}
		closers = append(closers, shutdown)
		observers = append(observers, metrics)
	}
	observer := service.NewMultiUseCaseObserver(observers...)

	if cfg.Source.Kind == source.KindFile && cfg.Source.Path == "" {
		return closers, errors.New("no data source configured: pass --source or set source.path")
	}
	src, err := source.New(ctx, cfg.Source)
	if err != nil {
		return closers, fmt.Errorf("configuring source: %w", err)
	}

	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		return closers, fmt.Errorf("opening session store: %w", err)
	}
	closers = append(closers, func() { _ = database.Close() })

	datasets := service.NewDatasetService(
		source.NewCached(src),
		cfg.Normalize(),
		repository.NewSQLiteRecordRepo(database),
		repository.NewSQLiteLoadRepo(database),
		db.NewSQLiteUnitOfWork(database),
		observer,
	)
	app.Datasets = datasets
	app.Session = service.NewSession(datasets, observer)

	logger.Info("dashboard configured",
		zap.String("source", src.Name()),
		zap.String("config_file", cfg.File),
		zap.String("staff_policy", string(cfg.StaffPolicy)),
	)
	return closers, nil
}

// serveMetrics exposes a private registry on addr until shutdown is called.
func serveMetrics(addr string, logger *zap.Logger) (service.UseCaseObserver, func(), error) {
	reg := prometheus.NewRegistry()
	metrics, err := service.NewMetricsUseCaseObserver(reg)
	if err != nil {
		return nil, nil, fmt.Errorf("registering metrics: %w", err)
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("listening on %s: %w", addr, err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("metrics server stopped", zap.Error(err))
		}
	}()

	shutdown := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
	return metrics, shutdown, nil
}
