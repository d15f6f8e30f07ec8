package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KashAmir418/Numerio-sub000/internal/config"
	"github.com/KashAmir418/Numerio-sub000/internal/db"
	apihttp "github.com/KashAmir418/Numerio-sub000/internal/http"
	"github.com/KashAmir418/Numerio-sub000/internal/repository"
	"github.com/KashAmir418/Numerio-sub000/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	readingRepo := repository.NewPgReadingRepository(pool)
	compatSvc := service.NewCompatibilityService(logger)

	// Caché de resultados: redis si está configurado y responde, memoria
	// como fallback. El motor es determinista por día, el caché solo ahorra
	// cómputo repetido.
	resultCache := service.NewMemoryResultCache()
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			resultCache = service.NewRedisResultCache(redisClient)
		}
		cancel()
	}

	compatHandler := apihttp.NewCompatHandler(logger, compatSvc, resultCache, readingRepo)
	router := apihttp.NewRouter(logger, compatHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
