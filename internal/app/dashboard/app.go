package dashboard

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/agency-dashboard/internal/cache"
	"github.com/magabrotheeeer/agency-dashboard/internal/config"
	"github.com/magabrotheeeer/agency-dashboard/internal/fixture"
	"github.com/magabrotheeeer/agency-dashboard/internal/metrics"
	dashboardservice "github.com/magabrotheeeer/agency-dashboard/internal/services/dashboard"
	"github.com/magabrotheeeer/agency-dashboard/internal/storage/memory"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	cache  io.Closer
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	ds, err := loadDataset(cfg, logger)
	if err != nil {
		return nil, err
	}
	storage := memory.New(ds)

	var resultCache interface {
		dashboardservice.Cache
		io.Closer
	} = cache.Nop{}
	if cfg.RedisConnection.Enabled {
		redisCache, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, err
		}
		resultCache = redisCache
		logger.Info("result cache enabled", slog.String("address", cfg.AddressRedis))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	service := dashboardservice.NewService(storage, resultCache, m, logger, cfg.TTL)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, service, m, reg, rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst))

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		cache:  resultCache,
	}, nil
}

// Handler возвращает корневой обработчик приложения.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		_ = a.cache.Close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if cerr := a.cache.Close(); cerr != nil {
			a.logger.Warn("failed to close cache", slog.Any("err", cerr))
		}
		return err
	}
}

func loadDataset(cfg *config.Config, logger *slog.Logger) (*fixture.Dataset, error) {
	if cfg.FixturePath == "" {
		logger.Info("using built-in dataset")
		return fixture.Default(time.Now()), nil
	}

	ds, err := fixture.Load(cfg.FixturePath)
	if err != nil {
		return nil, err
	}
	logger.Info("dataset loaded",
		slog.String("path", cfg.FixturePath),
		slog.Int("leads", len(ds.Leads)),
		slog.Int("plans", len(ds.Plans)),
		slog.Int("appointments", len(ds.Appointments)),
	)
	return ds, nil
}
