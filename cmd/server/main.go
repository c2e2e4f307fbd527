package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/packhouse/backend/internal/application/documents"
	appfulfillment "github.com/packhouse/backend/internal/application/fulfillment"
	domain "github.com/packhouse/backend/internal/domain/fulfillment"
	"github.com/packhouse/backend/internal/domain/layout"
	"github.com/packhouse/backend/internal/domain/shipping"
	"github.com/packhouse/backend/internal/infrastructure/assets"
	"github.com/packhouse/backend/internal/infrastructure/cache"
	"github.com/packhouse/backend/internal/infrastructure/config"
	"github.com/packhouse/backend/internal/infrastructure/logger"
	"github.com/packhouse/backend/internal/infrastructure/ordersource"
	"github.com/packhouse/backend/internal/infrastructure/persistence"
	"github.com/packhouse/backend/internal/infrastructure/persistence/models"
	"github.com/packhouse/backend/internal/infrastructure/printing"
	"github.com/packhouse/backend/internal/interfaces/http/handler"
	"github.com/packhouse/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Packhouse Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Printed-status store on SQLite
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, log,
		logger.MapGormLogLevel(cfg.Log.Level))
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if err := db.Migrate(&models.PrintedOrderModel{}); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}
	printedStore := persistence.NewGormPrintedStatusRepository(db.DB)

	// Asset cache: Redis when reachable, in-memory otherwise
	cacheFactory := cache.NewAssetCacheFactory(cache.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, cache.WithLogger(log))
	assetCache, err := cacheFactory.CreateCache()
	if err != nil {
		log.Fatal("Failed to create asset cache", zap.Error(err))
	}

	// Order source
	source, err := ordersource.NewClient(&ordersource.Config{
		BaseURL:        cfg.OrderSource.BaseURL,
		Token:          cfg.OrderSource.Token,
		TimeoutSeconds: cfg.OrderSource.TimeoutSeconds,
	}, log.Named("ordersource"))
	if err != nil {
		log.Fatal("Failed to create order source client", zap.Error(err))
	}

	// PDF renderer
	renderer, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{
		DefaultTimeout: cfg.Printing.RenderTimeout,
		RemoteURL:      cfg.Printing.RemoteChromeURL,
		NoSandbox:      cfg.Printing.NoSandbox,
		Logger:         log.Named("chromedp"),
	})
	if err != nil {
		log.Fatal("Failed to create PDF renderer", zap.Error(err))
	}
	defer func() {
		if err := renderer.Close(); err != nil {
			log.Error("Error closing renderer", zap.Error(err))
		}
	}()

	htmlBuilder, err := printing.NewHTMLBuilder()
	if err != nil {
		log.Fatal("Failed to parse document templates", zap.Error(err))
	}

	// Domain assembly
	catalog := &domain.BoxSizeCatalog{Entries: cfg.BoxSizes}
	engine := &layout.Engine{
		TwoUpSmallestPack: cfg.Layout.TwoUpSmallestPack,
		SmallestPackKey:   cfg.SmallestPackKey(),
	}
	fetcher := assets.NewImageFetcher(
		assets.WithCache(assetCache),
		assets.WithLogger(log.Named("assets")),
	)
	resolver := assets.NewResolver(fetcher, log.Named("assets"))

	// Application services
	orderSvc := appfulfillment.NewOrderService(source, printedStore, catalog,
		shipping.NewAssigner(), log.Named("orders"))
	docSvc := documents.NewDocumentService(engine, resolver, htmlBuilder,
		renderer, log.Named("documents"))

	// HTTP surface
	r := router.New(cfg, log, router.Handlers{
		System:    handler.NewSystemHandler(cfg.App.Name),
		Orders:    handler.NewOrderHandler(orderSvc),
		Documents: handler.NewDocumentHandler(orderSvc, docSvc),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        r,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
