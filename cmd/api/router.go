package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/coinsguard/coinsguard-api/config"
	_ "github.com/coinsguard/coinsguard-api/docs" // Swagger spec
	"github.com/coinsguard/coinsguard-api/internal/cache"
	"github.com/coinsguard/coinsguard-api/internal/handlers"
	"github.com/coinsguard/coinsguard-api/internal/middleware"
	"github.com/coinsguard/coinsguard-api/internal/repository"
	"github.com/coinsguard/coinsguard-api/internal/services"
	"github.com/coinsguard/coinsguard-api/pkg/metrics"
)

// newRouter wires services, handlers and middleware around store
func newRouter(cfg *config.Config, store *repository.DocumentStore) *gin.Engine {
	// nil unless RECENT_CACHE_TTL is set
	recent := cache.NewRecentCache(cfg.Cache.RecentTTLSeconds)

	submissionService := services.NewSubmissionService(store, recent)

	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	healthHandler := handlers.NewHealthHandler(store, newProbe(store, cfg.Database))

	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(cors.New(corsConfig(cfg)))

	router.GET("/", healthHandler.Root)
	router.GET("/test", healthHandler.Diagnostics)

	api := router.Group("/api")
	api.GET("/hello", healthHandler.Hello)
	api.GET("/healthcheck", healthHandler.Healthcheck)
	api.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	formLimit := middleware.BodySizeLimitMiddleware(middleware.DefaultMaxFormBodySize)
	api.POST("/recovery", formLimit, submissionHandler.PostRecovery)
	api.POST("/contact", formLimit, submissionHandler.PostContact)
	api.GET("/recovery", submissionHandler.ListRecovery)

	if !cfg.IsProduction() {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return router
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID", "traceparent", "tracestate"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}

	// Credentials cannot be combined with a wildcard origin
	if cfg.AllowsAllOrigins() {
		c.AllowAllOrigins = true
		return c
	}

	c.AllowOrigins = cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		c.AllowOrigins = append(c.AllowOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}
	c.AllowCredentials = true
	return c
}
