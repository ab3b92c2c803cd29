package server

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rblc/parts-marketplace-backend/config"
	"github.com/rblc/parts-marketplace-backend/docs"
	aiChatHandler "github.com/rblc/parts-marketplace-backend/internal/handler/ai_chat"
	analyticsHandler "github.com/rblc/parts-marketplace-backend/internal/handler/analytics"
	faqHandler "github.com/rblc/parts-marketplace-backend/internal/handler/faq"
	mechanicHandler "github.com/rblc/parts-marketplace-backend/internal/handler/mechanic"
	orderHandler "github.com/rblc/parts-marketplace-backend/internal/handler/order"
	productHandler "github.com/rblc/parts-marketplace-backend/internal/handler/product"
	supplierHandler "github.com/rblc/parts-marketplace-backend/internal/handler/supplier"
	"github.com/rblc/parts-marketplace-backend/internal/repository"
	aiChatService "github.com/rblc/parts-marketplace-backend/internal/service/ai_chat"
	analyticsService "github.com/rblc/parts-marketplace-backend/internal/service/analytics"
	faqService "github.com/rblc/parts-marketplace-backend/internal/service/faq"
	mechanicService "github.com/rblc/parts-marketplace-backend/internal/service/mechanic"
	orderService "github.com/rblc/parts-marketplace-backend/internal/service/order"
	productService "github.com/rblc/parts-marketplace-backend/internal/service/product"
	redisService "github.com/rblc/parts-marketplace-backend/internal/service/redis"
	supplierService "github.com/rblc/parts-marketplace-backend/internal/service/supplier"
	visitService "github.com/rblc/parts-marketplace-backend/internal/service/visit"
	"github.com/rblc/parts-marketplace-backend/middleware"
	"github.com/rblc/parts-marketplace-backend/pkg/metrics"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	publicWriteLimit  = 20
	publicWriteWindow = time.Minute
)

type RouterHandler struct {
	analyticsHandler *analyticsHandler.AnalyticsHandler
	faqHandler       *faqHandler.FAQHandler
	orderHandler     *orderHandler.OrderHandler
	aiChatHandler    *aiChatHandler.AIChatHandler
	productHandler   *productHandler.ProductHandler
	supplierHandler  *supplierHandler.SupplierHandler
	mechanicHandler  *mechanicHandler.MechanicHandler

	db       *sqlx.DB
	cache    interface{ Health(ctx context.Context) error }
	limiter  middleware.RateLimiter
	metrics  *metrics.Metrics
	registry *prometheus.Registry
}

func RunServer(config *config.Config, logger *slog.Logger) {
	switch config.Env {
	case "prod", "production":
		gin.SetMode(gin.ReleaseMode)
		log.Println("🚀 Starting server in PRODUCTION mode")
	case "dev", "development":
		gin.SetMode(gin.DebugMode)
		log.Println("🔧 Starting server in DEVELOPMENT mode")
	default:
		gin.SetMode(gin.DebugMode)
		log.Println("🔧 Starting server in DEVELOPMENT mode (default)")
	}

	db, err := repository.NewRepository(config.DB)
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}
	defer db.Close()

	cache, err := redisService.NewRedisService(redisService.RedisConfig{
		Host:     config.Redis.Host,
		Port:     config.Redis.Port,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})
	if err != nil {
		log.Printf("⚠️ Redis unavailable, visit dedup, FAQ cache and rate limiting disabled: %v", err)
	} else {
		defer cache.Close()
	}

	routerHandler := NewRouterHandler(config, db, cache, logger)
	r := setupRouter(config, routerHandler)

	srv := &http.Server{
		Addr:              ":" + config.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("✅ Server starting on port %s", config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	gracefulShutdown(srv)
}

// NewRouterHandler wires repositories, services and handlers. cache may be
// nil, in which case visits are never deduplicated, FAQs are always read from
// the database and nothing is rate limited.
func NewRouterHandler(config *config.Config, db *sqlx.DB, cache *redisService.Service, logger *slog.Logger) *RouterHandler {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db.DB, "postgres"),
	)
	m := metrics.NewMetrics(registry)

	visitRepo := repository.NewVisitRepository(db)
	faqRepo := repository.NewFAQRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	conversationRepo := repository.NewConversationRepository(db)
	productRepo := repository.NewProductRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	mechanicRepo := repository.NewMechanicRepository(db)

	var (
		dedup    visitService.Deduplicator
		limiter  middleware.RateLimiter
		faqCache faqService.Cache
		health   interface{ Health(ctx context.Context) error }
	)
	if cache != nil {
		dedup = cache
		limiter = cache
		faqCache = cache
		health = cache
	}

	faqSrv := faqService.NewFAQService(faqRepo, faqCache)
	analyticsSrv := analyticsService.NewAnalyticsService(visitRepo, logger)
	visitSrv := visitService.NewVisitService(visitRepo, dedup, logger)
	chatSrv := aiChatService.NewAIChatService(aiChatService.Config{
		APIKey:  config.OpenAI.APIKey,
		Model:   config.OpenAI.Model,
		BaseURL: config.OpenAI.BaseURL,
	}, faqSrv, conversationRepo, logger)
	orderSrv := orderService.NewOrderService(orderRepo, config.WhatsApp.BusinessNumber, chatSrv)
	productSrv := productService.NewProductService(productRepo)
	supplierSrv := supplierService.NewSupplierService(supplierRepo)
	mechanicSrv := mechanicService.NewMechanicService(mechanicRepo, config.WhatsApp.BusinessNumber)

	return &RouterHandler{
		analyticsHandler: analyticsHandler.NewAnalyticsHandler(analyticsSrv, visitSrv, m, logger),
		faqHandler:       faqHandler.NewFAQHandler(faqSrv),
		orderHandler:     orderHandler.NewOrderHandler(orderSrv, m),
		aiChatHandler:    aiChatHandler.NewAIChatHandler(chatSrv, m),
		productHandler:   productHandler.NewProductHandler(productSrv),
		supplierHandler:  supplierHandler.NewSupplierHandler(supplierSrv),
		mechanicHandler:  mechanicHandler.NewMechanicHandler(mechanicSrv),
		db:               db,
		cache:            health,
		limiter:          limiter,
		metrics:          m,
		registry:         registry,
	}
}

func gracefulShutdown(srv *http.Server) {
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("🔄 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
		return
	}

	log.Println("✅ Server gracefully stopped")
}

func setupRouter(config *config.Config, routerHandler *RouterHandler) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	r.Use(metrics.GinMiddleware(routerHandler.metrics))
	r.Use(middleware.CORSMiddleware(config.Server.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := routerHandler.db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"timestamp": time.Now().Unix(),
				"service":   "parts-marketplace-backend",
			})
			return
		}

		body := gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"service":   "parts-marketplace-backend",
		}
		// Redis only backs optional features, so it never fails the check.
		if routerHandler.cache != nil {
			body["redis"] = "up"
			if err := routerHandler.cache.Health(ctx); err != nil {
				body["redis"] = "down"
			}
		}
		c.JSON(http.StatusOK, body)
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler(routerHandler.registry)))

	docs.SwaggerInfo.Host = swaggerHost(config.Server.BaseURL)
	docs.SwaggerInfo.Schemes = []string{"http", "https"}
	docs.SwaggerInfo.BasePath = "/api/v1"

	if config.IsProduction() {
		r.Use(middleware.SwaggerHostMiddleware(docs.SwaggerInfo.Host))
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	limited := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		if routerHandler.limiter == nil {
			return []gin.HandlerFunc{handler}
		}
		return []gin.HandlerFunc{
			middleware.RateLimitMiddleware(routerHandler.limiter, publicWriteLimit, publicWriteWindow),
			handler,
		}
	}

	publicRoutes := r.Group("/api/v1")
	{
		publicRoutes.POST("/analytics/track", routerHandler.analyticsHandler.TrackVisit)
		publicRoutes.GET("/faqs", routerHandler.faqHandler.ListFAQs)
		publicRoutes.POST("/orders", limited(routerHandler.orderHandler.CreateOrder)...)
		publicRoutes.POST("/ai/chat", limited(routerHandler.aiChatHandler.Chat)...)
		publicRoutes.POST("/whatsapp/webhook", limited(routerHandler.aiChatHandler.WhatsAppWebhook)...)

		publicRoutes.GET("/products", routerHandler.productHandler.ListProducts)
		publicRoutes.GET("/products/:id", routerHandler.productHandler.GetProduct)
		publicRoutes.GET("/suppliers", routerHandler.supplierHandler.ListSuppliers)
		publicRoutes.GET("/mechanics", routerHandler.mechanicHandler.ListMechanics)
		publicRoutes.POST("/mechanics/register", limited(routerHandler.mechanicHandler.RegisterMechanic)...)
	}

	privateRoutes := r.Group("/api/v1/admin")
	privateRoutes.Use(middleware.AuthenticationMiddleware([]byte(config.Auth.JWTSecret)))
	{
		privateRoutes.GET("/analytics", routerHandler.analyticsHandler.GetAnalytics)

		privateRoutes.POST("/faqs", routerHandler.faqHandler.CreateFAQ)
		privateRoutes.PUT("/faqs/:id", routerHandler.faqHandler.UpdateFAQ)
		privateRoutes.DELETE("/faqs/:id", routerHandler.faqHandler.DeleteFAQ)

		privateRoutes.GET("/orders", routerHandler.orderHandler.GetOrders)
		privateRoutes.GET("/orders/:id", routerHandler.orderHandler.GetOrderByID)
		privateRoutes.PATCH("/orders/:id", routerHandler.orderHandler.UpdateOrder)

		privateRoutes.GET("/conversations", routerHandler.aiChatHandler.GetConversations)

		privateRoutes.POST("/products", routerHandler.productHandler.CreateProduct)
		privateRoutes.PUT("/products/:id", routerHandler.productHandler.UpdateProduct)
		privateRoutes.DELETE("/products/:id", routerHandler.productHandler.DeleteProduct)

		privateRoutes.POST("/suppliers", routerHandler.supplierHandler.CreateSupplier)
		privateRoutes.PUT("/suppliers/:id", routerHandler.supplierHandler.UpdateSupplier)
		privateRoutes.DELETE("/suppliers/:id", routerHandler.supplierHandler.DeleteSupplier)

		privateRoutes.POST("/mechanics", routerHandler.mechanicHandler.CreateMechanic)
		privateRoutes.PUT("/mechanics/:id", routerHandler.mechanicHandler.UpdateMechanic)
		privateRoutes.DELETE("/mechanics/:id", routerHandler.mechanicHandler.DeleteMechanic)
	}

	return r
}

func swaggerHost(baseURL string) string {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return "127.0.0.1:8080"
	}
	return parsed.Host
}
