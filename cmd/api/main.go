package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/prescriptions-api/internal/config"
	"github.com/jwalitptl/prescriptions-api/internal/handler/health"
	prescriptionHandler "github.com/jwalitptl/prescriptions-api/internal/handler/prescription"
	prometheusHandler "github.com/jwalitptl/prescriptions-api/internal/handler/prometheus"
	userHandler "github.com/jwalitptl/prescriptions-api/internal/handler/user"
	"github.com/jwalitptl/prescriptions-api/internal/middleware"
	"github.com/jwalitptl/prescriptions-api/internal/repository"
	"github.com/jwalitptl/prescriptions-api/internal/repository/memory"
	"github.com/jwalitptl/prescriptions-api/internal/repository/postgres"
	"github.com/jwalitptl/prescriptions-api/internal/router"
	prescriptionService "github.com/jwalitptl/prescriptions-api/internal/service/prescription"
	userService "github.com/jwalitptl/prescriptions-api/internal/service/user"
	"github.com/jwalitptl/prescriptions-api/pkg/logger"
	"github.com/jwalitptl/prescriptions-api/pkg/messaging"
	"github.com/jwalitptl/prescriptions-api/pkg/messaging/redis"
	"github.com/jwalitptl/prescriptions-api/pkg/metrics"
)

type storage struct {
	pinger        health.Pinger
	doctors       repository.DoctorRepository
	patients      repository.PatientRepository
	prescriptions repository.PrescriptionRepository
	close         func() error
}

func main() {
	configPath := flag.String("config", "", "path to config.yml")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize storage
	store, err := openStorage(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize storage")
	}
	defer store.close()

	reg := prometheus.NewRegistry()
	m := metrics.New(cfg.Metrics.Namespace, reg)

	publisher, closePublisher := openPublisher(ctx, cfg.Redis, m)
	defer closePublisher()

	// Initialize services
	userSvc := userService.NewService(store.doctors, store.patients, publisher, m)
	prescriptionSvc := prescriptionService.NewService(store.prescriptions, store.doctors, store.patients, publisher, m)

	// Setup router
	r := router.NewRouter(
		userHandler.NewHandler(userSvc),
		prescriptionHandler.NewHandler(prescriptionSvc),
		health.NewHandler(store.pinger),
		prometheusHandler.New(reg),
		router.RouterConfig{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RateLimit: middleware.RateLimiterConfig{
				Rate:  rate.Limit(cfg.RateLimit.RequestsPerSecond),
				Burst: cfg.RateLimit.Burst,
				TTL:   cfg.RateLimit.ClientTTL,
			},
			CORSConfig: middleware.DefaultCORSConfig(cfg.CORS.AllowedOrigins),
			Metrics:    m,
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info().Str("addr", srv.Addr).Str("storage", cfg.Database.Driver).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return
	}

	log.Info().Msg("server exited properly")
}

func openStorage(ctx context.Context, cfg config.DatabaseConfig) (*storage, error) {
	if cfg.Driver == "memory" {
		log.Warn().Msg("using in-memory storage, data is lost on restart")
		s := memory.NewStore()
		return &storage{
			pinger:        s,
			doctors:       s.Doctors(),
			patients:      s.Patients(),
			prescriptions: s.Prescriptions(),
			close:         func() error { return nil },
		}, nil
	}

	db, err := postgres.NewDB(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := postgres.Migrate(ctx, db, "up"); err != nil {
			db.Close()
			return nil, err
		}
	}

	return &storage{
		pinger:        db,
		doctors:       postgres.NewDoctorRepository(db),
		patients:      postgres.NewPatientRepository(db),
		prescriptions: postgres.NewPrescriptionRepository(db),
		close:         db.Close,
	}, nil
}

// openPublisher falls back to a no-op publisher when Redis is not configured or unreachable
func openPublisher(ctx context.Context, cfg config.RedisConfig, m *metrics.Metrics) (messaging.Publisher, func()) {
	if cfg.URL == "" {
		return messaging.NopPublisher{}, func() {}
	}

	broker, err := redis.NewRedisBroker(ctx, redis.Config{
		URL:          cfg.URL,
		MaxRetries:   cfg.MaxRetries,
		RetryBackoff: cfg.RetryBackoff,
		PoolSize:     cfg.PoolSize,
	}, log.Logger)
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to Redis, events will not be published")
		return messaging.NopPublisher{}, func() {}
	}

	adapter := messaging.NewBrokerAdapter(broker, cfg.Channel, m)
	return adapter, func() {
		if err := adapter.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close message broker")
		}
	}
}
