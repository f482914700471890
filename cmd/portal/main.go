package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/klcse/faculty-option-api/api/swagger"
	"github.com/klcse/faculty-option-api/internal/handler"
	"github.com/klcse/faculty-option-api/internal/middleware"
	"github.com/klcse/faculty-option-api/internal/models"
	"github.com/klcse/faculty-option-api/internal/repository"
	"github.com/klcse/faculty-option-api/internal/service"
	"github.com/klcse/faculty-option-api/internal/source"
	"github.com/klcse/faculty-option-api/pkg/cache"
	"github.com/klcse/faculty-option-api/pkg/config"
	"github.com/klcse/faculty-option-api/pkg/database"
	"github.com/klcse/faculty-option-api/pkg/export"
	"github.com/klcse/faculty-option-api/pkg/logger"
	corsmiddleware "github.com/klcse/faculty-option-api/pkg/middleware/cors"
	reqidmiddleware "github.com/klcse/faculty-option-api/pkg/middleware/requestid"
	"github.com/klcse/faculty-option-api/pkg/storage"
)

// @title Faculty Option API
// @version 0.1.0
// @description Course preference collection portal for faculty
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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, catalog caching disabled", "error", err)
		redisClient = nil
	}
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck

	exportStore, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init export storage", "error", err)
	}

	catalogFetcher := source.NewFetcher(cfg.Catalog.FetchTimeout)
	sourceFetcher := source.NewFetcher(cfg.Sources.FetchTimeout)

	directoryRepo := repository.NewDirectoryRepository(sourceFetcher, cfg.Sources.Directory)
	credentialRepo := repository.NewCredentialRepository(sourceFetcher, cfg.Sources.Credentials, cfg.Sources.Roles)
	selectionRepo := repository.NewSelectionRepository(db)

	authSvc := service.NewAuthService(credentialRepo, nil, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	metricsSvc := service.NewMetricsService()
	catalogSvc := service.NewCatalogService(catalogFetcher, cacheRepo, cfg.Catalog, metricsSvc, logr)
	directorySvc := service.NewDirectoryService(directoryRepo, logr)
	selectionSvc := service.NewSelectionService(directoryRepo, selectionRepo, catalogSvc, nil, metricsSvc, logr)
	reportSvc := service.NewReportService(selectionRepo, exportStore, cfg.Exports.ResultTTL, logr,
		export.NewCSVExporter(), export.NewPDFExporter())

	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			removed, err := reportSvc.Cleanup()
			if err != nil {
				logr.Sugar().Warnw("export cleanup failed", "error", err)
				continue
			}
			if len(removed) > 0 {
				logr.Sugar().Infow("stale exports removed", "count", len(removed))
			}
		}
	}()

	authHandler := handler.NewAuthHandler(authSvc)
	directoryHandler := handler.NewDirectoryHandler(directorySvc)
	catalogHandler := handler.NewCatalogHandler(catalogSvc, directorySvc)
	selectionHandler := handler.NewSelectionHandler(selectionSvc)
	reportHandler := handler.NewReportHandler(reportSvc)

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
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", middleware.JWT(authSvc), authHandler.Me)

	authed := api.Group("")
	authed.Use(middleware.JWT(authSvc))

	authed.GET("/directory/:employeeId",
		middleware.RBAC(string(models.RoleAdmin), middleware.SelfMarker), directoryHandler.Lookup)
	authed.GET("/catalog", catalogHandler.View)

	faculty := authed.Group("/faculty")
	faculty.GET("/all", middleware.RequireRoles(models.RoleAdmin), selectionHandler.ListAll)
	faculty.GET("/:employeeId",
		middleware.RBAC(string(models.RoleAdmin), middleware.SelfMarker), selectionHandler.ListByEmployee)
	faculty.POST("/submit", selectionHandler.Submit)
	faculty.PUT("/update/:id", selectionHandler.UpdateRow)
	faculty.DELETE("/delete/:id", selectionHandler.DeleteRow)
	faculty.DELETE("/delete-all/:employeeId",
		middleware.RequireRoles(models.RoleAdmin), selectionHandler.DeleteAll)

	reports := authed.Group("/reports")
	reports.Use(middleware.RequireRoles(models.RoleAdmin))
	reports.GET("/selections/export", reportHandler.Export)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
