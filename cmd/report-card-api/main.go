package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/report-card-api/api/swagger"
	"github.com/noah-isme/report-card-api/internal/handler"
	internalmiddleware "github.com/noah-isme/report-card-api/internal/middleware"
	"github.com/noah-isme/report-card-api/internal/service"
	"github.com/noah-isme/report-card-api/pkg/config"
	"github.com/noah-isme/report-card-api/pkg/export"
	"github.com/noah-isme/report-card-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/report-card-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/report-card-api/pkg/middleware/requestid"
	"github.com/noah-isme/report-card-api/pkg/reportcard"
)

// @title Report Card API
// @version 0.1.0
// @description Hosts student report cards: six subject grades and the derived GPA
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

	reportcard.SetDefaultSink(reportcard.NewZapSink(logr.Named("reportcard")))

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}

	validate := validator.New()
	authSvc := service.NewAuthService(logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenTTL:    cfg.JWT.Expiration,
	})
	cardSvc := service.NewReportCardService(validate, logr, metrics, export.NewCSVExporter(), export.NewPDFExporter(), service.ReportCardConfig{
		DefaultPageSize: cfg.ReportCards.DefaultPageSize,
		MaxPageSize:     cfg.ReportCards.MaxPageSize,
		ExportsEnabled:  cfg.Exports.Enabled,
		PDFTitle:        cfg.Exports.PDFTitle,
	})

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metrics))

	metricsHandler := handler.NewMetricsHandler(metrics)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	if cfg.Metrics.Enabled {
		r.GET("/metrics", metricsHandler.Prometheus)
	}

	api := r.Group(cfg.APIPrefix)
	handler.RegisterReportCardRoutes(api, handler.NewReportCardHandler(cardSvc), authSvc)

	if cfg.DevTokenAllowed() {
		api.POST("/auth/dev-token", handler.NewAuthHandler(authSvc).DevToken)
		logr.Warn("dev token endpoint enabled", zap.String("path", cfg.APIPrefix+"/auth/dev-token"))
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "api_prefix", cfg.APIPrefix)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
