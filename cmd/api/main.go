// Command api runs the todo backend: JWT auth, per-user task CRUD, and the
// activity feed, backed by MongoDB and Redis.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/taskhive/todo-api/docs"
	"github.com/taskhive/todo-api/internal/api"
	"github.com/taskhive/todo-api/internal/core/service"
	mongodb "github.com/taskhive/todo-api/internal/infrastructure/db/mongo"
	redisdb "github.com/taskhive/todo-api/internal/infrastructure/db/redis"
	"github.com/taskhive/todo-api/internal/infrastructure/queue"
	"github.com/taskhive/todo-api/internal/pkg/config"
	"github.com/taskhive/todo-api/pkg/logger"
)

// @title                      Todo API
// @version                    1.0
// @description                Multi-tenant todo backend with JWT authentication.
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Storage ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	userRepo := mongodb.NewUserRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := taskRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("task index creation failed")
	}
	if err := activityRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("activity index creation failed")
	}

	// --- Services ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens, log)
	activityService := service.NewActivityService(activityRepo, log)

	dispatcher := queue.NewDispatcher(cfg.ActivityWorkers, activityService, log)
	dispatcher.Start(ctx)

	taskCache := redisdb.NewTaskCache(rdb)
	taskService := service.NewTaskService(taskRepo, taskCache, dispatcher, log)

	// --- HTTP ---
	e := api.NewRouter(api.RouterConfig{
		Auth:        authService,
		Tasks:       taskService,
		Activity:    activityService,
		Tokens:      tokens,
		Mongo:       db,
		Redis:       rdb,
		CORSOrigins: cfg.CORSOrigins,
		Log:         log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
