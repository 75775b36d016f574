package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"civicsync-reporter/config"
	"civicsync-reporter/controllers"
	"civicsync-reporter/logger"
	"civicsync-reporter/middlewares"
	"civicsync-reporter/repository"
	"civicsync-reporter/routes"
	"civicsync-reporter/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel)

	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET is not set, report submission and /api/auth/me will fail")
	}

	ctx := context.Background()

	db, err := config.ConnectDB(ctx, cfg)
	if err != nil {
		log.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer db.Client().Disconnect(context.Background())

	rdb, err := config.ConnectRedis(ctx, cfg)
	if err != nil {
		log.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer rdb.Close()

	reportRepo := repository.NewReportRepository(db)
	userRepo := repository.NewUserRepository(db)
	if err := reportRepo.EnsureIndexes(ctx); err != nil {
		log.Warn("Failed to create report indexes", "error", err)
	}
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Warn("Failed to create user indexes", "error", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	var images storage.ImageStore
	if cfg.CloudinaryEnabled() {
		cld, err := storage.NewCloudinaryStore(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryUploadFolder)
		if err != nil {
			log.Error("Failed to configure Cloudinary", "error", err)
			os.Exit(1)
		}
		images = cld
	} else {
		local := storage.NewLocalStore(cfg.UploadDir)
		r.Static(local.URLPrefix, cfg.UploadDir)
		images = local
		log.Info("Storing report images on disk", "dir", cfg.UploadDir)
	}

	routes.HealthRoutes(r)
	routes.AuthRoutes(r, controllers.NewAuthController(userRepo, cfg.JWTSecret, cfg.Domain, cfg.IsProduction()), cfg.JWTSecret)
	routes.ReportRoutes(r, controllers.NewReportController(reportRepo, images, cfg.PageSize), cfg.JWTSecret, routes.ReportLimit{
		Counter:     rdb,
		QueuePrefix: cfg.ReportQueue,
		Daily:       cfg.ReportDailyLimit,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info("Server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}
	log.Info("Server exited")
}
