package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlphaC137/EG-Business-Final-Project/internal/api/handlers"
	"github.com/AlphaC137/EG-Business-Final-Project/internal/api/middleware"
	"github.com/AlphaC137/EG-Business-Final-Project/internal/cache"
	"github.com/AlphaC137/EG-Business-Final-Project/internal/config"
	"github.com/AlphaC137/EG-Business-Final-Project/internal/health"
	"github.com/AlphaC137/EG-Business-Final-Project/internal/metrics"
	repository "github.com/AlphaC137/EG-Business-Final-Project/internal/repositories"
	service "github.com/AlphaC137/EG-Business-Final-Project/internal/services"
	"github.com/AlphaC137/EG-Business-Final-Project/internal/tracing"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := tracing.Init(context.Background(), cfg)
	if err != nil {
		slog.Error("❌ Error initializing tracing", "error", err.Error())
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Cart store setup
	var cartStore cache.CartStore
	switch cfg.Cart.Backend {
	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisConnect.Host,
			Username: cfg.RedisConnect.Username,
			Password: cfg.RedisConnect.Password,
			DB:       cfg.RedisConnect.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			slog.Error("❌ Error accessing the redis instance", "error", err.Error())
			os.Exit(1)
		}
		cartStore = cache.NewRedisCartStore(redisClient, &cfg.Cart)
	default:
		cartStore = cache.NewMemoryCartStore()
	}

	defer func() {
		if err := cartStore.Close(); err != nil {
			slog.Error("⚠️ Error closing cart store", slog.String("error", err.Error()))
		}
	}()

	jwtKey := []byte(cfg.Security.JWTKey)
	catalogService := service.NewCatalogService(repos.Product, cfg.Catalog.MaxRows)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartService := service.NewCartService(cartStore)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutService := service.NewCheckoutService(cartService, repos.Address, repos.Order, repos.Product, &cfg.Checkout)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	orderService := service.NewOrderService(repos.Order)
	orderHandler := handlers.NewOrderHandler(orderService)
	profileService := service.NewProfileService(repos.Profile)
	profileHandler := handlers.NewProfileHandler(profileService)
	navigationHandler := handlers.NewNavigationHandler()
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error setting up health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized",
		slog.String("env", cfg.Env),
		slog.String("cartBackend", cfg.Cart.Backend),
		slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/cart", authMiddleware.Authenticate(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/v1/cart/items", authMiddleware.Authenticate(cartHandler.AddItem()))
	routerMux.HandleFunc("PUT /api/v1/cart/items", authMiddleware.Authenticate(cartHandler.UpdateQuantity()))
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{productId}", authMiddleware.Authenticate(cartHandler.RemoveItem()))
	routerMux.HandleFunc("POST /api/v1/checkout", authMiddleware.Authenticate(checkoutHandler.PlaceOrder()))
	routerMux.HandleFunc("GET /api/v1/orders/{id}", authMiddleware.Authenticate(orderHandler.GetOrder()))
	routerMux.HandleFunc("GET /api/v1/orders", authMiddleware.Authenticate(orderHandler.ListOrders()))
	routerMux.HandleFunc("GET /api/v1/profile", authMiddleware.Authenticate(profileHandler.GetProfile()))
	routerMux.HandleFunc("PUT /api/v1/profile", authMiddleware.Authenticate(profileHandler.UpdateProfile()))
	routerMux.HandleFunc("GET /api/v1/profile/privacy", authMiddleware.Authenticate(profileHandler.GetPrivacy()))
	routerMux.HandleFunc("PUT /api/v1/profile/privacy", authMiddleware.Authenticate(profileHandler.UpdatePrivacy()))
	routerMux.HandleFunc("GET /api/v1/navigation/resolve", authMiddleware.Identify(navigationHandler.Resolve()))
	routerMux.Handle("GET /health", http.HandlerFunc(healthHandler.HandlerFunc))
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)
	handler = otelhttp.NewHandler(handler, "eg-business")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {

		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracing shutdown encountered an issue", slog.String("error", err.Error()))
	}

}
