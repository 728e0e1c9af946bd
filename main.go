package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/formaltex/formal/backend/api/handlers"
	chathandler "github.com/formaltex/formal/backend/api/internal/chat/handler"
	chatrepo "github.com/formaltex/formal/backend/api/internal/chat/repository"
	"github.com/formaltex/formal/backend/api/internal/config"
	"github.com/formaltex/formal/backend/api/internal/database"
	dochandler "github.com/formaltex/formal/backend/api/internal/document/handler"
	docrepo "github.com/formaltex/formal/backend/api/internal/document/repository"
	"github.com/formaltex/formal/backend/api/internal/template"
	tplhandler "github.com/formaltex/formal/backend/api/internal/template/handler"
	tplrepo "github.com/formaltex/formal/backend/api/internal/template/repository"
	"github.com/formaltex/formal/backend/api/pkg/logger"
	"github.com/formaltex/formal/backend/api/pkg/metrics"
	"github.com/formaltex/formal/backend/api/pkg/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Log.Level, cfg.Log.Format)
	defer logger.Sync()

	// Any failure to reach the store at startup is fatal.
	ctx := context.Background()
	client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		logger.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()
	logger.Info("successfully connected to MongoDB")

	db := client.Database(cfg.MongoDB.Database)
	database.EnsureIndexes(ctx, db)

	docs := docrepo.NewMongoRepo(db.Collection("documents"))
	templates := tplrepo.NewMongoRepo(db.Collection("templates"))
	chats := chatrepo.NewMongoRepo(db.Collection("chat_messages"))

	if err := template.Seed(ctx, templates); err != nil {
		logger.Warnf("template seeding failed: %v", err)
	}

	if cfg.Server.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.CORS())
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.RequestMetrics())

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && cfg.Redis.Host != "" {
			rdb := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			if err := rdb.Ping(ctx).Err(); err != nil {
				logger.Warnf("failed to connect to Redis (%s:%s): %v — using in-memory rate limiter", cfg.Redis.Host, cfg.Redis.Port, err)
				r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
			} else {
				win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
				r.Use(middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
				logger.Infof("Redis-backed rate limiter enabled (%s:%s)", cfg.Redis.Host, cfg.Redis.Port)
			}
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
			logger.Info("in-memory rate limiter enabled")
		}
	}

	handlers.RegisterHealth(r)
	handlers.RegisterCategories(r)
	handlers.RegisterSwagger(r)
	dochandler.RegisterDocumentRoutes(r, docs)
	tplhandler.RegisterTemplateRoutes(r, templates)
	chathandler.RegisterChatRoutes(r, chats)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("starting API server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server shutdown failed: %v", err)
	}
	logger.Info("disconnected from MongoDB, server stopped")
}
