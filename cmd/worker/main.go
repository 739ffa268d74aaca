package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"
	"gorm.io/gorm"

	cartmemory "github.com/nexashop/storefront/internal/domains/cart/adapters/memory"
	cartmongo "github.com/nexashop/storefront/internal/domains/cart/adapters/mongo"
	cartredis "github.com/nexashop/storefront/internal/domains/cart/adapters/redis"
	cartapp "github.com/nexashop/storefront/internal/domains/cart/application"
	cartports "github.com/nexashop/storefront/internal/domains/cart/ports"
	checkoutmemory "github.com/nexashop/storefront/internal/domains/checkout/adapters/memory"
	checkoutredis "github.com/nexashop/storefront/internal/domains/checkout/adapters/redis"
	checkoutapp "github.com/nexashop/storefront/internal/domains/checkout/application"
	checkoutports "github.com/nexashop/storefront/internal/domains/checkout/ports"
	ordersmemory "github.com/nexashop/storefront/internal/domains/orders/adapters/memory"
	ordersobs "github.com/nexashop/storefront/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/nexashop/storefront/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/nexashop/storefront/internal/domains/orders/application"
	ordersports "github.com/nexashop/storefront/internal/domains/orders/ports"
	platformmongo "github.com/nexashop/storefront/internal/platform/mongo"
	platformobservability "github.com/nexashop/storefront/internal/platform/observability"
	platformpostgres "github.com/nexashop/storefront/internal/platform/postgres"
	platformredis "github.com/nexashop/storefront/internal/platform/redis"
	checkoutactivities "github.com/nexashop/storefront/internal/platform/temporal/activities/checkout"
	checkoutworkflow "github.com/nexashop/storefront/internal/platform/temporal/workflows/checkout"
)

func main() {
	ctx := context.Background()
	const serviceName = "storefront-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanupDB()
	redisClient, cleanupRedis := platformredis.ConnectFromEnv(ctx, logger)
	defer cleanupRedis()
	mongoDB, cleanupMongo := platformmongo.ConnectFromEnv(ctx, logger)
	defer cleanupMongo()

	ordersService := ordersobs.New(
		newOrdersService(db, logger),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	var cartRepo cartports.Repository = cartmemory.NewRepository()
	if mongoDB != nil {
		cartRepo = cartmongo.NewRepository(mongoDB)
	}
	var cartCache cartports.Cache = cartports.NoopCache
	if redisClient != nil {
		cartCache = cartredis.NewCache(redisClient)
	}
	cartService := cartapp.NewService(cartRepo, cartCache, logger)

	var draftStore checkoutports.DraftStore = checkoutmemory.NewDraftStore()
	if redisClient != nil {
		draftStore = checkoutredis.NewDraftStore(redisClient)
	}
	checkoutService := checkoutapp.NewService(cartService, ordersService, draftStore, logger)
	activities := checkoutactivities.NewActivities(checkoutService, cartService, draftStore)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, checkoutworkflow.OrderPlacementTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(checkoutworkflow.OrderPlacementWorkflow, workflow.RegisterOptions{Name: checkoutworkflow.OrderPlacementWorkflowName})
	w.RegisterActivityWithOptions(activities.PersistOrder, activity.RegisterOptions{Name: checkoutactivities.PersistOrderActivityName})
	w.RegisterActivityWithOptions(activities.ClearCart, activity.RegisterOptions{Name: checkoutactivities.ClearCartActivityName})
	w.RegisterActivityWithOptions(activities.ResetDraft, activity.RegisterOptions{Name: checkoutactivities.ResetDraftActivityName})

	logger.Info("worker listening", slog.String("taskQueue", checkoutworkflow.OrderPlacementTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func newOrdersService(db *gorm.DB, logger *slog.Logger) ordersports.Service {
	if db == nil {
		logger.Warn("orders repository falling back to memory")
		return ordersapp.NewService(ordersmemory.NewRepository())
	}
	return ordersapp.NewService(orderspostgres.NewRepository(db))
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
