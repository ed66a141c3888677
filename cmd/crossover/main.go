package main

import (
	"log"

	"github.com/MarisolRV/crossover/collab"
	collabGorm "github.com/MarisolRV/crossover/collab/repository/gorm"
	collabService "github.com/MarisolRV/crossover/collab/service"
	collabTransport "github.com/MarisolRV/crossover/collab/transport"
	"github.com/MarisolRV/crossover/internal/config"
	"github.com/MarisolRV/crossover/persistence"
	"github.com/MarisolRV/crossover/storage"
	storageLocal "github.com/MarisolRV/crossover/storage/local"
	storageS3 "github.com/MarisolRV/crossover/storage/s3"
	"github.com/MarisolRV/crossover/transport"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Panic(err)
	}
	defer logger.Sync()

	cfg, err := config.New()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewGorm(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Pick the uploader once at startup; handlers only ever see the
	// interface
	var uploader storage.Uploader
	if cfg.Storage.Remote {
		uploader, err = storageS3.NewS3Uploader(storageS3.Config{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			Secure:    cfg.Storage.Secure,
		})
		if err != nil {
			logger.Fatal("Failed to connect to object storage", zap.Error(err))
		}
	} else {
		uploader = storageLocal.NewLocalUploader(cfg.Storage.UploadDir)
	}

	// Setup repositories
	collabRepository := collabGorm.NewGormCollabRepository(db)
	// Setup services
	collabSvc := collabService.NewCollabService(collabRepository)

	// Setup HTTP Server
	httpSrvCfg := transport.HttpConfig{
		Host:   cfg.Server.Host,
		Port:   cfg.Server.Port,
		Scheme: cfg.Server.Scheme,

		Templates: "templates/*.html",

		RemoveExtraSlashes: true,
	}
	router := transport.NewHttp(httpSrvCfg)

	// Attach Middlewares
	//
	// Order of execution:
	// 1. Rate Limiter
	// 2. Security Middleware (Adds essential security headers to request)
	// 3. Request logger
	// 4. Error Middleware handles any errors that were generated from route execution
	if cfg.Server.RPS > 0 {
		router.Use(transport.RateLimiterMiddleware(cfg.Server.RPS))
	}
	router.Use(transport.SecurityMiddleware(), transport.RequestLoggerMiddleware(logger), transport.ErrorMiddleware(logger))

	// Attach routes
	for _, kind := range collab.Kinds {
		collabTransport.NewCollabHttp(kind, collabSvc, uploader, router)
	}
	collabTransport.NewPagesHttp(collabSvc, router)

	// Start HTTP server
	if err := transport.RunHttp(httpSrvCfg, logger, router); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
