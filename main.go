package main

import (
	"context"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"checkout-service/config"
	"checkout-service/controllers"
	"checkout-service/database"
	"checkout-service/gateway"
	"checkout-service/logger"
	"checkout-service/middleware"
	"checkout-service/repository"
	"checkout-service/routes"
	"checkout-service/services"
	"checkout-service/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	// --- 1. Persistence ---

	mongoClient, err := database.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	db := mongoClient.Database(cfg.MongoDB)

	orderRepo := repository.NewMongoOrderRepo(db)
	if err := orderRepo.EnsureIndexes(context.Background()); err != nil {
		log.Warn("Failed to ensure order indexes", zap.Error(err))
	}

	// --- 2. Dependency injection ---

	gatewayClient := gateway.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	orderService := services.NewOrderService(orderRepo, gatewayClient, cfg.Currency, log)

	orderController := controllers.NewOrderController(orderService, log)
	checkoutController := controllers.NewCheckoutController(cfg.RazorpayKeyID)

	// --- 3. HTTP server & middleware ---

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.RateLimit(rate.Every(time.Minute/100), 50))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))

	// --- 4. Routes ---

	routes.RegisterOrderRoutes(r, orderController)
	routes.RegisterCheckoutRoutes(r, checkoutController)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// --- 5. Graceful shutdown ---

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info("Checkout service starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down checkout service...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := database.Close(shutdownCtx, mongoClient); err != nil {
		log.Error("Failed to close MongoDB connection", zap.Error(err))
	}

	log.Info("Checkout service stopped gracefully")
}
