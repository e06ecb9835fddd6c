package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	recruitHTTP "recruitme/internal/controller/http"
	"recruitme/internal/repo/persistent"
	"recruitme/internal/usecase"
	"recruitme/pkg/cache"
	"recruitme/pkg/config"
	"recruitme/pkg/database"
	"recruitme/pkg/email"
	"recruitme/pkg/jwt"
	"recruitme/pkg/logger"
	"recruitme/pkg/middleware"
	"recruitme/pkg/ratelimit"
	"recruitme/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	limiter     ratelimit.Limiter
	storage     usecase.ImageStorage
	emailSender email.Sender
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	var redisClient *redis.Client
	limiter := ratelimit.NewNoopLimiter()
	if cfg.RateLimitEnabled() {
		redisClient, err = cache.NewRedisClient(cfg)
		if err != nil {
			log.Error("Failed to connect to redis: %v (continuing without rate limiting)", err)
			redisClient = nil
		} else {
			limiter = ratelimit.NewRedisLimiter(redisClient, log)
		}
	}

	var storage usecase.ImageStorage = usecase.NewNoopImageStorage(log)
	if cfg.StorageEnabled() {
		s3Client, err := s3.NewClient(cfg)
		if err != nil {
			log.Error("Failed to create S3 client: %v (continuing without image storage)", err)
		} else {
			storage = s3Client
		}
	}

	emailSender := email.NewNoopSender(log)
	if cfg.EmailEnabled() {
		emailSender = email.NewMailgunSender(cfg, log)
	}

	jwtService := jwt.NewService(cfg.JWTSecret)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		limiter:     limiter,
		storage:     storage,
		emailSender: emailSender,
		jwtService:  jwtService,
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	userRepo := persistent.NewUserRepository(a.db)
	profileRepo := persistent.NewProfileRepository(a.db)
	videoRepo := persistent.NewVideoRepository(a.db)
	tokenRepo := persistent.NewTokenRepository(a.db)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, profileRepo, tokenRepo, a.jwtService, a.emailSender, a.storage, a.log)
	profileUseCase := usecase.NewProfileUseCase(userRepo, profileRepo, a.storage, a.log)
	videoUseCase := usecase.NewVideoUseCase(userRepo, profileRepo, videoRepo, a.log)
	publishUseCase := usecase.NewPublishUseCase(userRepo, profileRepo, a.log)

	// Initialize HTTP handlers
	authHandler := recruitHTTP.NewAuthHandler(authUseCase)
	profileHandler := recruitHTTP.NewProfileHandler(profileUseCase, publishUseCase)
	videoHandler := recruitHTTP.NewVideoHandler(videoUseCase)
	publicHandler := recruitHTTP.NewPublicHandler(profileUseCase)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{a.cfg.AppURL, "http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Retry-After"},
		AllowCredentials: true,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authRequired := middleware.AuthMiddleware(a.jwtService)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", middleware.RateLimitMiddleware(a.limiter, 3, 15*time.Minute), authHandler.Signup)
			auth.POST("/login", middleware.RateLimitMiddleware(a.limiter, 5, 15*time.Minute), authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.POST("/forgot-password", middleware.RateLimitMiddleware(a.limiter, 3, 15*time.Minute), authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
			auth.POST("/verify-email", authHandler.VerifyEmail)
			auth.POST("/resend-verification", authRequired, middleware.RateLimitMiddleware(a.limiter, 3, 15*time.Minute), authHandler.ResendVerification)
			auth.DELETE("/account", authRequired, authHandler.DeleteAccount)
		}

		// Public athlete profiles
		api.GET("/athletes/:slug", publicHandler.GetAthleteProfile)

		// Protected routes
		protected := api.Group("")
		protected.Use(authRequired)
		{
			protected.GET("/profile", profileHandler.GetProfile)
			protected.PUT("/profile", profileHandler.UpdateProfile)
			protected.POST("/profile/image", profileHandler.UploadImage)
			protected.DELETE("/profile/image", profileHandler.DeleteImage)
			protected.GET("/profile/status", profileHandler.Status)
			protected.POST("/profile/publish", profileHandler.Publish)
			protected.POST("/profile/unpublish", profileHandler.Unpublish)

			protected.GET("/onboarding", profileHandler.OnboardingStatus)
			protected.POST("/onboarding/complete", profileHandler.CompleteOnboarding)

			protected.GET("/videos", videoHandler.ListVideos)
			protected.POST("/videos", videoHandler.AddVideo)
			protected.PUT("/videos/:id", videoHandler.UpdateVideo)
			protected.DELETE("/videos/:id", videoHandler.DeleteVideo)
			protected.POST("/videos/reorder", videoHandler.ReorderVideos)
		}
	}

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("RecruitMe API starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down RecruitMe API...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	// Shutdown server
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("RecruitMe API exited")
	return nil
}
