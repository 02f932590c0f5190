package main

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"SiteModels/internal/cache"
	"SiteModels/internal/config"
	"SiteModels/internal/handlers"
	"SiteModels/internal/middleware"
	"SiteModels/internal/repo"
	"SiteModels/internal/service"
	"SiteModels/internal/storage"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	// Кэш списков; без Redis сервис работает напрямую с БД.
	var listCache *cache.ListCache
	if cfg.RedisAddr != "" {
		listCache, err = cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, sugar)
		if err != nil {
			sugar.Warnw("redis unavailable, list cache disabled", "addr", cfg.RedisAddr, "error", err)
		} else {
			defer listCache.Close()
		}
	}

	// Хранилище вложений: S3 при заданном бакете, иначе локальный каталог.
	var store storage.BlobStore
	if cfg.S3Bucket != "" {
		store, err = storage.NewS3Store(ctx, cfg.S3Region, cfg.S3Bucket)
		if err != nil {
			sugar.Fatalw("failed to initialize s3 store", "error", err)
		}
	} else {
		store, err = storage.NewFSStore(cfg.UploadDir, cfg.AssetBaseURL)
		if err != nil {
			sugar.Fatalw("failed to initialize file store", "error", err)
		}
	}

	userRepo := repo.NewUserRepository(gormDB)
	adminRepo := repo.NewAdminRepository(gormDB)
	buyerRepo := repo.NewBuyerRepository(gormDB)
	productRepo := repo.NewProductRepository(gormDB)
	disclaimerRepo := repo.NewDisclaimerRepository(gormDB)
	videoRepo := repo.NewTrainingVideoRepository(gormDB)

	accessTTL := time.Duration(cfg.AccessTokenTTLMin) * time.Minute
	refreshTTL := time.Duration(cfg.RefreshTokenTTLHrs) * time.Hour

	authService := service.NewAuthService(userRepo, cfg.AuthSecret, accessTTL, refreshTTL, sugar)
	userService := service.NewUserService(userRepo, adminRepo, buyerRepo, store, listCache, sugar)
	productService := service.NewProductService(productRepo, store, listCache, sugar)
	disclaimerService := service.NewDisclaimerService(disclaimerRepo, listCache, sugar)
	videoService := service.NewTrainingVideoService(videoRepo, listCache, sugar)

	h := handlers.NewHandler(authService, userService, productService, disclaimerService, videoService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"RedisAddr", cfg.RedisAddr,
		"S3Bucket", cfg.S3Bucket,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
