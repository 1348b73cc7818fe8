package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"onboarding-backend/internal/common/config"
	"onboarding-backend/internal/common/logger"
	"onboarding-backend/internal/common/middleware"
	authhttp "onboarding-backend/internal/features/auth/delivery/http"
	authservice "onboarding-backend/internal/features/auth/service"
	paymenthttp "onboarding-backend/internal/features/payment/delivery/http"
	paymentservice "onboarding-backend/internal/features/payment/service"
	usercache "onboarding-backend/internal/features/user/cache/redis"
	userhttp "onboarding-backend/internal/features/user/delivery/http"
	usermongo "onboarding-backend/internal/features/user/repository/mongo"
	userservice "onboarding-backend/internal/features/user/service"
	"onboarding-backend/internal/platform/mailer"
	mongoplatform "onboarding-backend/internal/platform/mongo"
	razorpayplatform "onboarding-backend/internal/platform/razorpay"
	redisplatform "onboarding-backend/internal/platform/redis"
)

func main() {
	cfg := config.MustLoad()
	logger.Init("onboarding-backend", cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, err := mongoplatform.Open(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		if err := mongoClient.Close(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Mongo disconnect failed")
		}
	}()
	logger.Info().Msg("MongoDB connection established")

	userRepo := usermongo.NewUserRepository(mongoClient.Database())

	var cache userservice.Cache
	if cfg.Redis.CacheEnabled {
		redisClient, err := redisplatform.Open(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer redisClient.Close()
		cache = usercache.NewUserCache(redisClient, cfg.Redis.CacheTTL)
		logger.Info().Msg("User cache enabled")
	}

	var m mailer.Mailer
	if cfg.SMTP.Disabled {
		m = mailer.NoopMailer{}
	} else {
		m = mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.FromName)
	}

	gateway := razorpayplatform.NewClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)

	userSvc := userservice.NewUserService(userRepo, cache)
	authSvc := authservice.NewAuthService(userRepo, m, cache)
	paymentSvc := paymentservice.NewPaymentService(gateway, cfg.Razorpay.KeySecret)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.CORSAllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "X-Requested-With"}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Onboarding backend active",
		})
	})

	root := &router.RouterGroup
	authhttp.NewAuthHandler(authSvc).RegisterRoutes(root)
	paymenthttp.NewPaymentHandler(paymentSvc).RegisterRoutes(root)
	userhttp.NewUserHandler(userSvc).RegisterRoutes(root)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
		os.Exit(1)
	}

	logger.Info().Msg("Server exited")
}
