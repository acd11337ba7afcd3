package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	adminhttp "github.com/lisbeauty/storefront/internal/admin/delivery/http"
	adminrepo "github.com/lisbeauty/storefront/internal/admin/repository"
	admincommand "github.com/lisbeauty/storefront/internal/admin/usecase/command"
	adminquery "github.com/lisbeauty/storefront/internal/admin/usecase/query"
	carthttp "github.com/lisbeauty/storefront/internal/cart/delivery/http"
	cartrepo "github.com/lisbeauty/storefront/internal/cart/repository"
	cartcommand "github.com/lisbeauty/storefront/internal/cart/usecase/command"
	cartquery "github.com/lisbeauty/storefront/internal/cart/usecase/query"
	cataloghttp "github.com/lisbeauty/storefront/internal/catalog/delivery/http"
	catalogdomain "github.com/lisbeauty/storefront/internal/catalog/domain"
	catalogrepo "github.com/lisbeauty/storefront/internal/catalog/repository"
	"github.com/lisbeauty/storefront/internal/config"
	"github.com/lisbeauty/storefront/internal/export"
	"github.com/lisbeauty/storefront/internal/favorites"
	orderhttp "github.com/lisbeauty/storefront/internal/order/delivery/http"
	orderrepo "github.com/lisbeauty/storefront/internal/order/repository"
	ordercommand "github.com/lisbeauty/storefront/internal/order/usecase/command"
	orderquery "github.com/lisbeauty/storefront/internal/order/usecase/query"
	"github.com/lisbeauty/storefront/kafka"
	"github.com/lisbeauty/storefront/pkg/database"
	"github.com/lisbeauty/storefront/pkg/logger"
	"github.com/lisbeauty/storefront/pkg/store"
	"github.com/lisbeauty/storefront/pkg/tracing"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.ServiceName, cfg.IsDevelopment)
	ctx := context.Background()

	if cfg.TracingOn {
		tp, err := tracing.InitTracer(cfg.ServiceName)
		if err != nil {
			logger.Error(ctx).Err(err).Msg("Failed to initialize tracing")
			os.Exit(1)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			tracing.Shutdown(shutdownCtx, tp)
		}()
	}

	durable, err := openDurableStore(cfg)
	if err != nil {
		logger.Error(ctx).Err(err).Msg("Failed to open durable store")
		os.Exit(1)
	}

	// Session-scoped records live in memory only and vanish on restart,
	// unless login asked to be remembered.
	scopes := store.NewScoped(durable, store.NewMemory())

	// Repositories over the durable store. The catalog repository records
	// spans when tracing is on.
	baseCatalog := catalogrepo.NewStoreProductRepository(durable)
	var productRepo catalogdomain.ProductRepository = baseCatalog
	if cfg.TracingOn {
		productRepo = catalogrepo.NewTracingProductRepository(baseCatalog)
	}
	cartRepo := cartrepo.NewStoreCartRepository(durable)
	favoritesRepo := favorites.NewStoreRepository(durable)
	orderRepo := orderrepo.NewStoreOrderRepository(durable)
	customerRepo := orderrepo.NewStoreCustomerRepository(durable)
	accountRepo := adminrepo.NewStoreAccountRepository(durable)
	sessions := adminrepo.NewScopedSessionStore(scopes)

	// First boot gets the demo data set.
	seeders := []func() error{
		baseCatalog.EnsureSeed,
		orderRepo.EnsureSeed,
		customerRepo.EnsureSeed,
		accountRepo.EnsureSeed,
	}
	for _, seed := range seeders {
		if err := seed(); err != nil {
			logger.Error(ctx).Err(err).Msg("Failed to seed initial data")
			os.Exit(1)
		}
	}

	// Event publishing is optional; without brokers checkout still works.
	var publisher ordercommand.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		p, err := kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Error(ctx).Err(err).Msg("Failed to connect to Kafka")
			os.Exit(1)
		}
		defer p.Close()
		publisher = p
	}

	// Handlers
	productHandler := cataloghttp.NewProductHandler(productRepo)

	cartHandler := carthttp.NewCartHandler(
		cartcommand.NewAddItemHandler(cartRepo, productRepo),
		cartcommand.NewRemoveItemHandler(cartRepo),
		cartcommand.NewSetQuantityHandler(cartRepo),
		cartcommand.NewClearCartHandler(cartRepo),
		cartquery.NewGetCartHandler(cartRepo),
	)

	favoritesHandler := favorites.NewHandler(favorites.NewService(favoritesRepo))

	orderHandler := orderhttp.NewOrderHandler(
		ordercommand.NewCheckoutHandler(orderRepo, customerRepo, cartRepo, publisher),
		ordercommand.NewUpdateStatusHandler(orderRepo),
		orderquery.NewListOrdersHandler(orderRepo),
		orderquery.NewListCustomersHandler(customerRepo),
		orderquery.NewGetDashboardHandler(orderRepo, customerRepo, productRepo),
	)

	adminHandler := adminhttp.NewAdminHandler(
		admincommand.NewLoginHandler(accountRepo, sessions),
		admincommand.NewRegisterHandler(accountRepo),
		admincommand.NewLogoutHandler(sessions),
		adminquery.NewGetSessionHandler(sessions),
	)

	exportHandler := export.NewHandler(productRepo, orderRepo)

	// Router
	router := mux.NewRouter()
	productHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	favoritesHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)
	adminHandler.RegisterRoutes(router)
	exportHandler.RegisterRoutes(router)

	router.Handle("/metrics", promhttp.Handler())
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	var handler http.Handler = router
	if cfg.TracingOn {
		handler = tracing.Middleware("storefront.http", handler)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: c.Handler(handler),
	}

	go func() {
		logger.Info(ctx).Str("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error(ctx).Err(err).Msg("HTTP server failed")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(ctx).Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx).Err(err).Msg("Server shutdown failed")
	}
}

// openDurableStore picks the storage backend. The file backend is the
// default and needs no external services.
func openDurableStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
		})
		return store.NewRedis(client, "lisbeauty"), nil
	case config.BackendPostgres:
		db, err := database.NewGormConnection(cfg.Database)
		if err != nil {
			return nil, err
		}
		return store.NewGorm(db)
	default:
		return store.NewFile(cfg.StoreFile)
	}
}
