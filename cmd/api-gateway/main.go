package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/child-therapy-api/api/swagger"
	"github.com/noah-isme/child-therapy-api/internal/handler"
	"github.com/noah-isme/child-therapy-api/internal/middleware"
	"github.com/noah-isme/child-therapy-api/internal/models"
	"github.com/noah-isme/child-therapy-api/internal/repository"
	"github.com/noah-isme/child-therapy-api/internal/service"
	"github.com/noah-isme/child-therapy-api/pkg/cache"
	"github.com/noah-isme/child-therapy-api/pkg/config"
	"github.com/noah-isme/child-therapy-api/pkg/database"
	"github.com/noah-isme/child-therapy-api/pkg/export"
	"github.com/noah-isme/child-therapy-api/pkg/logger"
	"github.com/noah-isme/child-therapy-api/pkg/mailer"
	corsmiddleware "github.com/noah-isme/child-therapy-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/child-therapy-api/pkg/middleware/requestid"
)

// @title Child Therapy API
// @version 0.1.0
// @description Therapy session tracking and progress reporting for pediatric care
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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	// Redis is optional: without it dashboards are computed on every request.
	var cacheRepo service.CacheRepository
	cacheEnabled := false
	if cfg.Dashboard.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, dashboard caching disabled", "error", err)
		} else {
			defer redisClient.Close()
			cacheRepo = repository.NewRedisCacheRepository(redisClient)
			cacheEnabled = true
		}
	}

	userRepo := repository.NewUserRepository(db)
	childRepo := repository.NewChildRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	metrics := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Dashboard.CacheTTL, logr, cacheEnabled)

	notifications := service.NewNotificationService(mailer.New(cfg.Mail), cfg.Mail.Workers, logr)
	notifications.Start(context.Background())
	defer notifications.Stop()

	childSvc := service.NewChildService(childRepo, userRepo, notifications, logr)
	authSvc := service.NewAuthService(userRepo, childSvc, cfg.JWT, logr)
	sessionSvc := service.NewSessionService(sessionRepo, childSvc, logr)
	dashboardSvc := service.NewDashboardService(struct {
		*repository.ChildRepository
		*repository.SessionRepository
	}{childRepo, sessionRepo}, cacheSvc, logr)

	var exporter *export.PDFExporter
	if cfg.Reports.PDFEnabled {
		exporter = export.NewPDFExporter()
	}
	progressSvc := service.NewProgressService(childRepo, sessionRepo, exporter, metrics, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	childHandler := handler.NewChildHandler(childSvc)
	sessionHandler := handler.NewSessionHandler(sessionSvc, dashboardSvc)
	reportHandler := handler.NewReportHandler(progressSvc, childSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register/doctor", authHandler.RegisterDoctor)
			auth.POST("/register/parent", authHandler.RegisterParent)
		}

		api.POST("/children/verify-code", childHandler.VerifyCode)

		authed := api.Group("")
		authed.Use(middleware.JWT(authSvc))
		{
			authed.POST("/children", middleware.RequireRoles(models.RoleDoctor), childHandler.Create)
			authed.GET("/children/:id", childHandler.Get)
			authed.GET("/children/:id/sessions", sessionHandler.ListByChild)

			authed.GET("/doctor/children", middleware.RequireRoles(models.RoleDoctor), childHandler.ListForDoctor)
			authed.GET("/parent/children", middleware.RequireRoles(models.RoleParent), childHandler.ListForParent)
			authed.POST("/parent/link-child", middleware.RequireRoles(models.RoleParent), childHandler.Link)

			authed.POST("/sessions", middleware.RequireRoles(models.RoleDoctor), sessionHandler.Create)
			authed.GET("/sessions/:id", sessionHandler.Get)

			authed.GET("/reports/weekly/:childId", reportHandler.Weekly)
			authed.GET("/reports/monthly/:childId", reportHandler.Monthly)
			if cfg.Reports.PDFEnabled {
				authed.GET("/reports/monthly/:childId/pdf", reportHandler.MonthlyPDF)
			}

			authed.GET("/doctor/dashboard", middleware.RequireRoles(models.RoleDoctor), dashboardHandler.Doctor)
			authed.GET("/parent/dashboard", middleware.RequireRoles(models.RoleParent), dashboardHandler.Parent)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
