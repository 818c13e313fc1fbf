// File: quickfix/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quickfix/config"
	"quickfix/database"
	"quickfix/database/cache"
	bookingRepo "quickfix/database/repository/booking"
	payoutRepo "quickfix/database/repository/payout"
	"quickfix/handlers"
	"quickfix/middleware"
	"quickfix/routes"
	"quickfix/services/commission"
	"quickfix/triggers"
	"quickfix/utils"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	checks := map[string]utils.HealthCheck{}

	// stores.
	var (
		payouts  payoutRepo.PayoutRepository
		bookings bookingRepo.BookingRepository
		fsClient *firestore.Client
	)
	switch config.AppConfig.StoreBackend {
	case config.StoreMongo:
		if err := database.InitDB(); err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		db := database.Database()
		payouts = payoutRepo.NewMongoPayoutRepo(db)
		bookings = bookingRepo.NewMongoBookingRepo(db)
		checks["mongo"] = func(ctx context.Context) error { return database.MongoClient.Ping(ctx, nil) }
	case config.StoreFirestore:
		client, err := utils.GetFirestoreClient()
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		fsClient = client
		payouts = payoutRepo.NewFirestorePayoutRepo(client)
		bookings = bookingRepo.NewFirestoreBookingRepo(client)
	default:
		logger.Sugar().Fatalf("main: unknown STORE_BACKEND %q", config.AppConfig.StoreBackend)
	}

	processed, redisClient := newProcessedCache(logger)
	if redisClient != nil {
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}

	processor := commission.NewCommissionProcessor(
		payouts,
		bookings,
		processed,
		logger,
		config.AppConfig.DeveloperAccountID,
		config.AppConfig.DefaultCurrency,
	)

	// triggers.
	var queueServer *asynq.Server
	if config.AppConfig.EnableQueueWorker {
		queueServer = triggers.StartQueueWorker(processor, logger)
	}

	if config.AppConfig.EnableFirestoreListener {
		if fsClient == nil {
			logger.Sugar().Fatalf("main: the Firestore listener requires STORE_BACKEND=%s", config.StoreFirestore)
		}
		listener := &triggers.FirestoreListener{Client: fsClient, Processor: processor, Logger: logger}
		if config.AppConfig.EnableQueueWorker {
			queueClient := triggers.NewQueueClient()
			defer queueClient.Close()
			listener.Fallback = queueClient
		}
		go func() {
			if err := listener.Run(ctx); err != nil {
				logger.Error("main: firestore listener exited", zap.Error(err))
				stop()
			}
		}()
	}

	utils.StartHealthMonitor(ctx, 60*time.Second, checks)

	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))

	handlerBundle := &handlers.HandlerBundle{
		TriggerToken:      config.AppConfig.TriggerToken,
		MaxRequestsPerMin: config.AppConfig.MaxRequestsPerMin,
		HealthHandler:     handlers.HealthHandler,
		MetricsHandler:    gin.WrapH(promhttp.Handler()),
	}
	if config.AppConfig.EnableHTTPTrigger {
		handlerBundle.PaymentCreatedHandler = handlers.NewEventHandler(processor).PaymentCreated
	}
	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if queueServer != nil {
		queueServer.Shutdown()
	}
	if fsClient != nil {
		_ = fsClient.Close()
	}
	if database.MongoClient != nil {
		_ = database.MongoClient.Disconnect(shutdownCtx)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// newProcessedCache returns the processed-payout cache, or nil when it is
// disabled or Redis is unreachable. Without it the store check carries
// idempotency alone.
func newProcessedCache(logger *zap.Logger) (commission.ProcessedCache, *redis.Client) {
	if !config.AppConfig.EnableProcessedCache {
		return nil, nil
	}
	client, err := utils.GetCacheClient()
	if err != nil {
		logger.Warn("main: processed cache disabled", zap.Error(err))
		return nil, nil
	}
	return cache.NewRedisProcessedCache(client, config.AppConfig.ProcessedCacheTTL), client
}
