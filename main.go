package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecommerce-api/cache"
	"ecommerce-api/common/logger"
	"ecommerce-api/controllers"
	"ecommerce-api/database"
	"ecommerce-api/kafka"
	awspkg "ecommerce-api/pkg/aws"
	"ecommerce-api/repository"
	"ecommerce-api/routes"
	"ecommerce-api/services"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger.Initialize(os.Getenv("ENV"))
	defer logger.Log.Sync()

	ctx := context.Background()

	cfg, err := LoadConfig(ctx)
	if err != nil {
		logger.Log.Fatal("Failed to load config", zap.Error(err))
	}

	if err := database.Connect(); err != nil {
		logger.Log.Fatal("Database connection failed", zap.Error(err))
	}
	defer database.Close()

	db := database.DB
	if cfg.Env != "production" {
		if err := database.Seed(db); err != nil {
			logger.Log.Fatal("Seeding failed", zap.Error(err))
		}
	}

	// repositories
	userRepo := repository.NewGormUserRepository(db)
	categoryRepo := repository.NewGormCategoryRepository(db)
	productRepo := repository.NewGormProductRepository(db)
	orderRepo := repository.NewGormOrderRepository(db, productRepo)

	// optional infrastructure
	productCache := cache.NewProductCache(cache.NewRedisClient(cfg.RedisURL))

	var producer kafka.ProducerAPI
	if len(cfg.KafkaBrokers) > 0 {
		p := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer p.Close()
		producer = p
	}

	var s3Client *s3.Client
	if cfg.S3Bucket != "" {
		awsCfg, err := awspkg.LoadAWSConfig(ctx)
		if err != nil {
			logger.Log.Warn("AWS config init failed, image upload disabled", zap.Error(err))
		} else {
			s3Client = awspkg.NewS3Client(awsCfg)
		}
	}

	// services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	userService := services.NewUserService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo, db)
	productService := services.NewProductService(productRepo, categoryRepo, productCache, db)
	orderService := services.NewOrderService(orderRepo, producer)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())

	r.Use(func(c *gin.Context) {
		reqCtx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(reqCtx)
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	routes.Register(r, routes.Controllers{
		Auth:     controllers.NewAuthController(authService),
		User:     controllers.NewUserController(userService),
		Category: controllers.NewCategoryController(categoryService),
		Product:  controllers.NewProductController(productService),
		Order:    controllers.NewOrderController(orderService),
		Upload:   controllers.NewUploadController(productService, s3Client, cfg.S3Bucket, cfg.AWSRegion),
	}, cfg.JWTSecret)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Log.Info("API started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("Server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Log.Info("Server exited cleanly")
}
