// Package api boots the storefront HTTP process and wires every bounded
// context to its configured backend, falling back to in-memory adapters when
// an external dependency is not reachable.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"cloud.google.com/go/storage"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	cartmemory "github.com/nexashop/storefront/internal/domains/cart/adapters/memory"
	cartmongo "github.com/nexashop/storefront/internal/domains/cart/adapters/mongo"
	cartredis "github.com/nexashop/storefront/internal/domains/cart/adapters/redis"
	cartapp "github.com/nexashop/storefront/internal/domains/cart/application"
	cartports "github.com/nexashop/storefront/internal/domains/cart/ports"
	catalogmemory "github.com/nexashop/storefront/internal/domains/catalog/adapters/memory"
	catalogobs "github.com/nexashop/storefront/internal/domains/catalog/adapters/observability"
	catalogpostgres "github.com/nexashop/storefront/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/nexashop/storefront/internal/domains/catalog/application"
	checkoutmemory "github.com/nexashop/storefront/internal/domains/checkout/adapters/memory"
	checkoutredis "github.com/nexashop/storefront/internal/domains/checkout/adapters/redis"
	checkoutworkflows "github.com/nexashop/storefront/internal/domains/checkout/adapters/workflows"
	checkoutapp "github.com/nexashop/storefront/internal/domains/checkout/application"
	checkoutports "github.com/nexashop/storefront/internal/domains/checkout/ports"
	mediagcs "github.com/nexashop/storefront/internal/domains/media/adapters/gcs"
	mediamemory "github.com/nexashop/storefront/internal/domains/media/adapters/memory"
	mediaapp "github.com/nexashop/storefront/internal/domains/media/application"
	mediaports "github.com/nexashop/storefront/internal/domains/media/ports"
	ordersmemory "github.com/nexashop/storefront/internal/domains/orders/adapters/memory"
	ordersobs "github.com/nexashop/storefront/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/nexashop/storefront/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/nexashop/storefront/internal/domains/orders/application"
	usersmemory "github.com/nexashop/storefront/internal/domains/users/adapters/memory"
	usersobs "github.com/nexashop/storefront/internal/domains/users/adapters/observability"
	userspostgres "github.com/nexashop/storefront/internal/domains/users/adapters/persistence/postgres"
	usersapp "github.com/nexashop/storefront/internal/domains/users/application"
	usersports "github.com/nexashop/storefront/internal/domains/users/ports"
	"github.com/nexashop/storefront/internal/platform/migrations"
	platformmongo "github.com/nexashop/storefront/internal/platform/mongo"
	platformobservability "github.com/nexashop/storefront/internal/platform/observability"
	platformpostgres "github.com/nexashop/storefront/internal/platform/postgres"
	platformredis "github.com/nexashop/storefront/internal/platform/redis"
	storefrontserver "github.com/nexashop/storefront/server"
)

// Run boots the storefront HTTP API with observability, repositories, and workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "storefront-api"
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
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
	if db != nil {
		if err := migrations.Run(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	catalogService := catalogobs.New(
		newCatalogService(db, logger),
		catalogobs.WithLogger(logger),
		catalogobs.WithTracer(instruments.Tracer("internal.catalog.application")),
		catalogobs.WithMeter(instruments.Meter("internal.catalog.application")),
	)
	ordersService := ordersobs.New(
		newOrdersService(db, logger),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	usersService := usersobs.New(
		newUsersService(db, cfg.SessionTTL, logger),
		usersobs.WithLogger(logger),
		usersobs.WithTracer(instruments.Tracer("internal.users.application")),
		usersobs.WithMeter(instruments.Meter("internal.users.application")),
	)

	redisClient, cleanupRedis := platformredis.ConnectFromEnv(ctx, logger)
	defer cleanupRedis()
	mongoDB, cleanupMongo := platformmongo.ConnectFromEnv(ctx, logger)
	defer cleanupMongo()

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

	var checkoutOrchestrator checkoutports.WorkflowOrchestrator = checkoutworkflows.NewInlineCheckoutWorkflows(checkoutService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, placing orders inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		checkoutOrchestrator = checkoutworkflows.NewTemporalCheckoutWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	mediaService := mediaapp.NewService(buildObjectStore(ctx, cfg, logger), logger)

	handlers := storefrontserver.ApiHandleFunctions{
		CatalogAPI:  storefrontserver.NewCatalogAPI(catalogService),
		CartAPI:     storefrontserver.NewCartAPI(cartService, catalogService),
		CheckoutAPI: storefrontserver.NewCheckoutAPI(checkoutService, cartService, checkoutOrchestrator),
		AccountAPI:  storefrontserver.NewAccountAPI(usersService, ordersService),
		AuthAPI:     storefrontserver.NewAuthAPI(usersService, cfg.SessionTTL),
		AdminAPI:    storefrontserver.NewAdminAPI(catalogService, ordersService, mediaService, usersService),
	}

	router := storefrontserver.NewRouter(handlers, otelgin.Middleware(serviceName), storefrontserver.NewGuard(usersService))
	addr := ":" + cfg.Port
	logger.Info("storefront API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("storefront API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func newCatalogService(db *gorm.DB, logger *slog.Logger) *catalogapp.Service {
	if db == nil {
		logger.Warn("catalog repository falling back to memory")
		return catalogapp.NewService(catalogmemory.NewRepository(), catalogmemory.NewCategoryRepository())
	}
	return catalogapp.NewService(catalogpostgres.NewRepository(db), catalogpostgres.NewCategoryRepository(db))
}

func newOrdersService(db *gorm.DB, logger *slog.Logger) *ordersapp.Service {
	if db == nil {
		logger.Warn("orders repository falling back to memory")
		return ordersapp.NewService(ordersmemory.NewRepository())
	}
	return ordersapp.NewService(orderspostgres.NewRepository(db))
}

func newUsersService(db *gorm.DB, sessionTTL time.Duration, logger *slog.Logger) *usersapp.Service {
	if db == nil {
		logger.Warn("user stores falling back to memory")
		return usersapp.NewService(usersmemory.NewRepository(), usersmemory.NewSessionStore(), usersmemory.NewResetTokenStore(), sessionTTL)
	}
	var repo usersports.Repository = userspostgres.NewRepository(db)
	return usersapp.NewService(repo, userspostgres.NewSessionStore(db), userspostgres.NewResetTokenStore(db), sessionTTL)
}

func buildObjectStore(ctx context.Context, cfg Config, logger *slog.Logger) mediaports.ObjectStore {
	if cfg.GCSBucket == "" {
		logger.Warn("GCS_BUCKET not set, storing uploads in memory")
		return mediamemory.NewObjectStore()
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		logger.Warn("failed to create GCS client, storing uploads in memory", slog.String("error", err.Error()))
		return mediamemory.NewObjectStore()
	}
	logger.Info("uploads configured with GCS", slog.String("bucket", cfg.GCSBucket))
	return mediagcs.New(client, cfg.GCSBucket)
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
