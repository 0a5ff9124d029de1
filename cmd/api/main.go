package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/winniio/meetingpress/pkg/validator"

	"github.com/winniio/meetingpress/internal/adapter/handler"
	"github.com/winniio/meetingpress/internal/adapter/repository"
	"github.com/winniio/meetingpress/internal/infrastructure/cache"
	"github.com/winniio/meetingpress/internal/infrastructure/database"
	"github.com/winniio/meetingpress/internal/infrastructure/external/fireflies"
	"github.com/winniio/meetingpress/internal/infrastructure/external/social"
	"github.com/winniio/meetingpress/internal/infrastructure/external/wordpress"
	"github.com/winniio/meetingpress/internal/infrastructure/storage"
	"github.com/winniio/meetingpress/internal/usecase/auth"
	"github.com/winniio/meetingpress/internal/usecase/extract"
	"github.com/winniio/meetingpress/internal/usecase/pipeline"
	"github.com/winniio/meetingpress/internal/usecase/publish"
	pkgai "github.com/winniio/meetingpress/pkg/ai"
	"github.com/winniio/meetingpress/pkg/config"
	"github.com/winniio/meetingpress/pkg/jwt"
)

// @title           MeetingPress API
// @version         1.0
// @description     Turns Fireflies meeting transcripts into anonymized blog posts and publishes them to WordPress

// @contact.name   API Support
// @contact.url    https://winniio.io

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate in CI/CD.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("DB_AUTO_MIGRATE is enabled in production. Manage schema with sql-migrate instead.")
		}
		log.Println("🔄 Running database migrations (development only) ...")
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize cache: Redis with in-memory fallback
	log.Println("📦 Connecting to Redis...")
	var summaryCache cache.Store
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Printf("⚠️  Redis unavailable (%v), falling back to in-memory cache", err)
		summaryCache = cache.NewMemoryStore()
	} else {
		defer redisClient.Close()
		summaryCache = redisClient
	}

	// Initialize artifact storage
	log.Println("🗄️  Connecting to artifact storage...")
	var archiver pipeline.Archiver
	minioClient, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Printf("⚠️  Artifact storage unavailable (%v), runs will not be archived", err)
	} else {
		archiver = minioClient
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	runRepo := repository.NewRunRepository(db)

	// Initialize external clients
	log.Println("🔌 Initializing external clients...")
	firefliesClient := fireflies.NewClient(&cfg.Fireflies, logger)
	groqClient := pkgai.NewGroqClient(&cfg.Groq)
	wordpressClient := wordpress.NewClient(&cfg.WordPress)

	var linkedinClient publish.LinkedInSharer
	if cfg.Social.LinkedInAccessToken != "" {
		linkedinClient = social.NewLinkedInClient(cfg.Social.LinkedInAccessToken)
	}
	var twitterClient publish.TweetPoster
	if cfg.Social.TwitterAccessToken != "" {
		twitterClient = social.NewTwitterClient(cfg.Social.TwitterAccessToken)
	}

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiry)

	// Initialize services
	log.Println("✨ Initializing services...")
	authService := auth.NewService(firefliesClient, jwtManager, logger)
	extractService := extract.NewService(firefliesClient, summaryCache, cfg.Fireflies.SummaryTTL, logger)
	pipelineService := pipeline.NewService(groqClient, runRepo, archiver, cfg.Groq.Model, logger)
	publishService := publish.NewService(wordpressClient, linkedinClient, twitterClient, runRepo, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	authHandler := handler.NewAuth(authService, logger)
	meetingHandler := handler.NewMeeting(extractService, pipelineService, logger)
	postHandler := handler.NewPost(publishService, logger)
	log.Println("✅ Handlers initialized successfully")

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, jwtManager, authHandler, meetingHandler, postHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
