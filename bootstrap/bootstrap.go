// Package bootstrap wires a built application into a running process:
// configuration, logging, metrics, the audit trail, the HTTP server, and
// graceful shutdown. The schema itself is immutable for the process
// lifetime; only operational knobs participate in hot reload.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/artpar/pagekit/adapters/clock"
	"github.com/artpar/pagekit/adapters/idgen"
	"github.com/artpar/pagekit/adapters/memory"
	"github.com/artpar/pagekit/adapters/metrics"
	"github.com/artpar/pagekit/adapters/sqlite"
	"github.com/artpar/pagekit/config"
	"github.com/artpar/pagekit/core/runtime"
	"github.com/artpar/pagekit/core/schema"
	"github.com/artpar/pagekit/ports"
	"github.com/artpar/pagekit/web"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Options configures application initialization. Schema and Registry are
// the output of a builder's Build call and are required.
type Options struct {
	Schema   schema.Schema
	Registry *runtime.Registry

	// ConfigPath is an optional YAML config file. When empty or absent,
	// configuration comes from PAGEKIT_* environment variables and
	// defaults; a schema server is fully functional with zero config.
	ConfigPath string

	// Watch enables config hot reload (file watch + SIGHUP).
	// Only meaningful with a ConfigPath that exists.
	Watch bool
}

// App represents the running application.
type App struct {
	Logger     zerolog.Logger
	Config     *config.Config
	Metrics    *metrics.Collector
	HTTPServer *http.Server

	holder  *config.Holder
	db      *sqlite.DB
	audit   ports.AuditStore
	promReg *prometheus.Registry
}

// New creates and initializes the application.
func New(opts Options) (*App, error) {
	cfg, holder, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	logger := setupLogger(cfg.Logging)
	logger.Info().Msg("initializing pagekit")

	a := &App{
		Logger: logger,
		Config: cfg,
		holder: holder,
	}

	if cfg.Metrics.Enabled {
		a.promReg = prometheus.NewRegistry()
		a.promReg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		a.Metrics = metrics.New(a.promReg)
		logger.Info().Str("path", cfg.Metrics.Path).Msg("prometheus metrics enabled")
	}

	if err := a.initAuditStore(cfg.Audit); err != nil {
		return nil, fmt.Errorf("init audit store: %w", err)
	}

	a.initHTTPServer(opts, cfg)

	if holder != nil {
		a.wireReload(holder)
		if opts.Watch {
			if err := holder.WatchFile(); err != nil {
				logger.Warn().Err(err).Msg("config file watch unavailable")
			}
			holder.WatchSignals()
		}
	}

	return a, nil
}

func loadConfig(opts Options) (*config.Config, *config.Holder, error) {
	if opts.ConfigPath != "" {
		if _, err := os.Stat(opts.ConfigPath); err == nil {
			holder, err := config.NewHolder(opts.ConfigPath, zerolog.Nop())
			if err != nil {
				return nil, nil, err
			}
			return holder.Get(), holder, nil
		}
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, nil, err
	}
	return cfg, nil, nil
}

func (a *App) initAuditStore(cfg config.AuditConfig) error {
	switch cfg.Driver {
	case "none":
		a.Logger.Info().Msg("audit trail disabled")
	case "memory":
		a.audit = memory.NewAuditStore()
		a.Logger.Info().Msg("in-memory audit trail enabled")
	case "sqlite":
		db, err := sqlite.Open(cfg.DSN)
		if err != nil {
			return err
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return fmt.Errorf("migrate: %w", err)
		}
		a.db = db
		a.audit = sqlite.NewAuditStore(db)
		a.Logger.Info().Str("dsn", cfg.DSN).Msg("sqlite audit trail enabled")
	}
	return nil
}

func (a *App) initHTTPServer(opts Options, cfg *config.Config) {
	handler := web.NewHandler(web.Deps{
		Schema:   opts.Schema,
		Registry: opts.Registry,
		Logger:   a.Logger,
		Metrics:  a.Metrics,
		Audit:    a.audit,
		IDs:      idgen.UUID{},
		Clock:    clock.Real{},
	})

	r := chi.NewRouter()
	r.Mount("/", handler.Router())

	if a.promReg != nil {
		r.Handle(cfg.Metrics.Path, promhttp.HandlerFor(a.promReg, promhttp.HandlerOpts{}))
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	a.HTTPServer = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	a.Logger.Info().Str("addr", addr).Msg("http server configured")
}

// wireReload applies reloadable knobs and counts reload outcomes.
// Server address and audit driver changes take effect on restart.
func (a *App) wireReload(holder *config.Holder) {
	holder.OnChange(func(cfg *config.Config) {
		if level, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
			zerolog.SetGlobalLevel(level)
		}
		a.Config = cfg
		if a.Metrics != nil {
			a.Metrics.ConfigReloads.Inc()
		}
	})
	holder.OnError(func(error) {
		if a.Metrics != nil {
			a.Metrics.ConfigReloadErrors.Inc()
		}
	})
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info().Str("addr", a.HTTPServer.Addr).Msg("starting http server")
		if err := a.HTTPServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		a.Logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	return a.Shutdown()
}

// Shutdown gracefully stops the application.
func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if a.holder != nil {
		a.holder.Stop()
	}

	if a.HTTPServer != nil {
		if err := a.HTTPServer.Shutdown(ctx); err != nil {
			a.Logger.Error().Err(err).Msg("http server shutdown error")
		}
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.Logger.Error().Err(err).Msg("database close error")
		}
	}

	a.Logger.Info().Msg("shutdown complete")
	return nil
}

func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "console" {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		return zerolog.New(output).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
