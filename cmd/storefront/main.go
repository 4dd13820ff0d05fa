package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/am-nutrition/storefront/internal/api/handlers"
	"github.com/am-nutrition/storefront/internal/api/middleware"
	"github.com/am-nutrition/storefront/internal/cart"
	"github.com/am-nutrition/storefront/internal/catalog"
	"github.com/am-nutrition/storefront/internal/config"
	"github.com/am-nutrition/storefront/internal/health"
	"github.com/am-nutrition/storefront/internal/inventory"
	"github.com/am-nutrition/storefront/internal/localstore"
	"github.com/am-nutrition/storefront/internal/metrics"
	"github.com/am-nutrition/storefront/internal/orders"
	repository "github.com/am-nutrition/storefront/internal/repositories"
	"github.com/am-nutrition/storefront/internal/telemetry"
	"github.com/am-nutrition/storefront/pkg/sendgrid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	shutdownTracing, err := telemetry.InitTracerProvider(ctx, "storefront", "1.0.0")
	if err != nil {
		slog.Error("❌ Error initializing tracing", "error", err.Error())
		os.Exit(1)
	}

	// Remote store (catalog + orders)
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		}
	}()

	// Durable local slots (cart, order counter)
	redisClient, err := localstore.NewClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	store := localstore.New(redisClient)

	// Catalog snapshot; a failed first load is an explicit empty state, the
	// storefront still starts.
	snapshot := catalog.NewSnapshot(repos.Products)
	if err := snapshot.Refresh(ctx); err != nil {
		slog.Warn("⚠️ Initial catalog load failed", slog.String("error", err.Error()))
	} else {
		slog.Info("📦 Catalog loaded", slog.Int("products", snapshot.Len()))
	}

	// Cart engine, restored from the durable slot
	engine := cart.NewEngine(snapshot, store)
	if err := engine.Load(ctx); err != nil {
		slog.Warn("⚠️ Could not restore persisted cart", slog.String("error", err.Error()))
	}

	var notifier inventory.Notifier
	if cfg.SendGrid.APIKey != "" && cfg.SendGrid.AdminEmail != "" {
		notifier = sendgrid.NewAlertService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName, cfg.SendGrid.AdminEmail)
	}

	reconciler := inventory.NewReconciler(repos.Products, snapshot, notifier)
	numbers := orders.NewNumberGenerator(store, cfg.Orders.NumberPrefix)
	orderService := orders.NewService(engine, repos.Orders, reconciler, numbers)

	catalogHandler := handlers.NewCatalogHandler(snapshot)
	cartHandler := handlers.NewCartHandler(engine)
	shippingHandler := handlers.NewShippingHandler()
	orderHandler := handlers.NewOrderHandler(orderService)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating health handler", "error", err.Error())
		os.Exit(1)
	}

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/catalog", catalogHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/catalog/categories", catalogHandler.ListCategories())
	routerMux.HandleFunc("GET /api/v1/catalog/{id}", catalogHandler.GetProduct())
	routerMux.HandleFunc("POST /api/v1/catalog/refresh", catalogHandler.Refresh())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("PUT /api/v1/cart/items", cartHandler.ChangeQuantity())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem())
	routerMux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart())
	routerMux.HandleFunc("GET /api/v1/shipping/quote", shippingHandler.Quote())
	routerMux.HandleFunc("GET /api/v1/shipping/regions", shippingHandler.ListRegions())
	routerMux.HandleFunc("POST /api/v1/orders", orderHandler.CreateOrder())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "storefront")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr), slog.String("env", cfg.Env))

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
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}

	slog.Info("✅ Server shut down gracefully. All connections closed.")
}
