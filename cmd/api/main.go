package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barber-marketplace/internal/audit"
	"github.com/BruksfildServices01/barber-marketplace/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-marketplace/internal/db"
	"github.com/BruksfildServices01/barber-marketplace/internal/logger"
	"github.com/BruksfildServices01/barber-marketplace/internal/middleware"
	"github.com/BruksfildServices01/barber-marketplace/internal/routes"
	"github.com/BruksfildServices01/barber-marketplace/internal/storage"
	"github.com/BruksfildServices01/barber-marketplace/internal/timezone"
	"github.com/BruksfildServices01/barber-marketplace/internal/validators"
)

func main() {

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogPretty)
	log := logger.L()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database")
	}

	// ======================================================
	// SINGLETONS
	// ======================================================
	dispatcher := audit.NewDispatcher(audit.New(db))

	var rateStore middleware.RateStore = middleware.NewMemoryRateStore()
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("redis url")
		}
		redisClient = redis.NewClient(opts)
		rateStore = middleware.NewRedisRateStore(redisClient)
	}

	var uploader storage.Uploader
	if s3 := storage.NewS3Uploader(cfg.S3); s3 != nil {
		uploader = s3
	} else {
		log.Warn().Msg("S3_BUCKET not set, avatar uploads disabled")
	}

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		DB:        db,
		Config:    cfg,
		Audit:     dispatcher,
		RateStore: rateStore,
		Uploader:  uploader,
		Clock:     timezone.SystemClock,
		Domains:   validators.IsEmailDomainValid,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("timezone", cfg.Timezone).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	// ======================================================
	// SHUTDOWN
	// ======================================================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := dispatcher.Close(ctx); err != nil {
		log.Error().Err(err).Msg("audit drain")
	}

	if redisClient != nil {
		_ = redisClient.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
