package main

import (
	"net/http"

	"inventory-service/internal/alert"
	"inventory-service/internal/handler"
	mid "inventory-service/internal/middleware"
	"inventory-service/internal/product"
	"inventory-service/pkg/config"
	"inventory-service/pkg/database"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration (reads .env if present)
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting inventory-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")
	db := database.GetDB()

	// Wire services with explicit database handles
	alertService := alert.NewService(alert.NewStore(db), appConfig.Alerts.WindowDays)
	productService := product.NewService(product.NewRepository(db))

	alertHandler := handler.NewAlertHandler(alertService)
	productHandler := handler.NewProductHandler(productService)
	thresholdHandler := handler.NewThresholdHandler(db)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Routes
	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Alert API routes
	e.GET("/api/companies/:company_id/alerts/low-stock", alertHandler.GetLowStockAlerts)

	// Product API routes
	productAPI := e.Group("/api/products")
	productAPI.GET("", productHandler.ListProducts)
	productAPI.GET("/:id", productHandler.GetProduct)
	productAPI.POST("", productHandler.CreateProduct)

	// Threshold configuration routes
	thresholdAPI := e.Group("/api/thresholds")
	thresholdAPI.GET("", thresholdHandler.ListThresholds)
	thresholdAPI.PUT("/:category", thresholdHandler.UpsertThreshold)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
