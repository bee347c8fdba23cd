package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/hoos-helper/advisor-api/api/swagger"
	"github.com/hoos-helper/advisor-api/internal/handler"
	"github.com/hoos-helper/advisor-api/internal/llm"
	"github.com/hoos-helper/advisor-api/internal/middleware"
	"github.com/hoos-helper/advisor-api/internal/planner"
	"github.com/hoos-helper/advisor-api/internal/repository"
	"github.com/hoos-helper/advisor-api/internal/scraper"
	"github.com/hoos-helper/advisor-api/internal/service"
	"github.com/hoos-helper/advisor-api/pkg/cache"
	"github.com/hoos-helper/advisor-api/pkg/config"
	"github.com/hoos-helper/advisor-api/pkg/database"
	"github.com/hoos-helper/advisor-api/pkg/jobs"
	"github.com/hoos-helper/advisor-api/pkg/logger"
	corsmiddleware "github.com/hoos-helper/advisor-api/pkg/middleware/cors"
	reqidmiddleware "github.com/hoos-helper/advisor-api/pkg/middleware/requestid"
)

// @title HoosHelper Advisor API
// @version 1.0.0
// @description Course planning, prerequisite validation, and advising chat for UVA students
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Postgres and Redis are optional at startup: without them the API
	// serves the seeded catalog and skips snapshot caching.
	var db *sqlx.DB
	if db, err = database.NewPostgres(cfg.Database); err != nil {
		logr.Sugar().Warnw("postgres unavailable, serving seeded data", "error", err)
		db = nil
	}

	var redisClient *redis.Client
	if redisClient, err = cache.NewRedis(cfg.Redis); err != nil {
		logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		redisClient = nil
	}

	metricsSvc := service.NewMetricsService()

	var generator llm.Generator
	if cfg.Chat.APIKey != "" {
		generator = llm.NewAnthropicClient(cfg.Chat)
	} else {
		logr.Warn("ANTHROPIC_API_KEY not set, chat and plan generation disabled")
	}

	catalogSvc := newCatalogService(cfg, db, redisClient, logr)
	clubSvc := newClubService(cfg, db, logr)
	chatSvc := newChatService(cfg, db, generator, logr)

	plannerSvc := service.NewPlannerService(catalogSvc, generator, nil, planner.Options{
		DefaultCourseCredits: cfg.Planner.DefaultCourseCredits,
		MinTermCredits:       cfg.Planner.MinTermCredits,
		MaxTermCredits:       cfg.Planner.MaxTermCredits,
	}, nil, logr)

	queue := newScrapeQueue(cfg, db, redisClient, logr)
	if queue != nil {
		queue.Start(context.Background())
		defer queue.Stop()
	}
	scrapeSvc := newScrapeService(queue, logr)

	courseHandler := handler.NewCourseHandler(catalogSvc)
	clubHandler := handler.NewClubHandler(clubSvc)
	planHandler := handler.NewPlanHandler(plannerSvc, metricsSvc)
	chatHandler := handler.NewChatHandler(chatSvc)
	scrapeHandler := handler.NewScrapeHandler(scrapeSvc, metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		status := gin.H{"status": "ready", "database": db != nil, "cache": redisClient != nil}
		c.JSON(http.StatusOK, status)
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/courses", courseHandler.List)
		api.GET("/clubs", clubHandler.List)
		api.GET("/clubs/recommended", clubHandler.Recommended)
		api.POST("/plan/validate", planHandler.Validate)
		api.POST("/plan/generate", planHandler.Generate)
		api.POST("/plan/export", planHandler.Export)
		api.POST("/chat", chatHandler.Chat)
		api.POST("/scrape/courses", scrapeHandler.Courses)
		api.POST("/scrape/clubs", scrapeHandler.Clubs)
		api.POST("/scrape/documents", scrapeHandler.Documents)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func newCatalogService(cfg *config.Config, db *sqlx.DB, redisClient *redis.Client, logr *zap.Logger) *service.CatalogService {
	if db == nil {
		return service.NewCatalogService(nil, nil, cfg.Catalog.CacheTTL, cfg.Catalog.SeedFallback, logr)
	}
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	return service.NewCatalogService(repository.NewCourseRepository(db), cacheRepo, cfg.Catalog.CacheTTL, cfg.Catalog.SeedFallback, logr)
}

func newClubService(cfg *config.Config, db *sqlx.DB, logr *zap.Logger) *service.ClubService {
	if db == nil {
		return service.NewClubService(nil, cfg.Catalog.SeedFallback, logr)
	}
	return service.NewClubService(repository.NewClubRepository(db), cfg.Catalog.SeedFallback, logr)
}

func newChatService(cfg *config.Config, db *sqlx.DB, generator llm.Generator, logr *zap.Logger) *service.ChatService {
	if db == nil {
		return service.NewChatService(nil, generator, cfg.Chat.RetrieveK, logr)
	}
	return service.NewChatService(repository.NewDocumentRepository(db), generator, cfg.Chat.RetrieveK, logr)
}

// newScrapeQueue wires the background scrape workers. Returns nil when
// scraping is disabled or there is no database to write into.
func newScrapeQueue(cfg *config.Config, db *sqlx.DB, redisClient *redis.Client, logr *zap.Logger) *jobs.Queue {
	if !cfg.Scraper.Enabled {
		return nil
	}
	if db == nil {
		logr.Warn("scrapers enabled but postgres is unavailable, disabling scraping")
		return nil
	}

	dispatcher := service.NewScrapeDispatcher(
		scraper.NewCourseScraper(cfg.Scraper, repository.NewCourseRepository(db), logr),
		scraper.NewClubScraper(cfg.Scraper, repository.NewClubRepository(db), logr),
		scraper.NewDocumentScraper(cfg.Scraper, repository.NewDocumentRepository(db), logr),
		repository.NewCacheRepository(redisClient, logr),
		logr,
	)

	return jobs.NewQueue("scrape", dispatcher.Handle, jobs.QueueConfig{
		Workers:    cfg.Scraper.Workers,
		MaxRetries: cfg.Scraper.Retries,
		Logger:     logr,
	})
}

func newScrapeService(queue *jobs.Queue, logr *zap.Logger) *service.ScrapeService {
	if queue == nil {
		return service.NewScrapeService(nil, logr)
	}
	return service.NewScrapeService(queue, logr)
}
