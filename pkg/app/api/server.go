// Package api implements app.Runner for the countries API process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	apphttp "github.com/chainsafe/country-mirror/pkg/app/http"
	"github.com/chainsafe/country-mirror/pkg/config"
	countryservice "github.com/chainsafe/country-mirror/pkg/country/service"
	"github.com/chainsafe/country-mirror/pkg/countrystore"
	"github.com/chainsafe/country-mirror/pkg/pgutil"
	"github.com/chainsafe/country-mirror/pkg/summary"
	"github.com/chainsafe/country-mirror/pkg/upstream"
)

const defaultRequestTimeout = 60 * time.Second

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting countries API",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	db, err := pgutil.ConnectDB(ctx, &cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	store := countrystore.NewStore(db)

	renderer, err := summary.NewRenderer(store, cfg.Summary.CachePath, logger)
	if err != nil {
		return fmt.Errorf("setup summary renderer: %w", err)
	}
	scheduler, err := summary.NewScheduler(renderer, cfg.Summary.Schedule, logger)
	if err != nil {
		return err
	}

	svc := countryservice.NewService(
		store,
		upstream.NewCountriesClient(&cfg.Upstream, upstream.WithLogger(logger)),
		upstream.NewRatesClient(&cfg.Upstream, upstream.WithLogger(logger)),
		renderer,
		logger,
	)

	router := NewRouter(cfg, countryservice.NewLog(svc, logger), logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return scheduler.Run(gctx)
	})
	g.Go(func() error {
		return apphttp.ServeAndWait(gctx, router, logger, &cfg.Server)
	})
	return g.Wait()
}

// NewRouter builds the chi router with the middleware stack and all routes.
func NewRouter(cfg *config.Config, svc countryservice.Service, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	requestTimeout := cfg.Server.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apphttp.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler())
	}

	countryservice.RegisterRoutes(r, svc, logger)

	return r
}
