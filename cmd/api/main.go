package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/craftlink/community-api/internal/api"
	mongodb "github.com/craftlink/community-api/internal/infrastructure/db/mongo"
	redisdb "github.com/craftlink/community-api/internal/infrastructure/db/redis"
	"github.com/craftlink/community-api/internal/infrastructure/queue"
	"github.com/craftlink/community-api/internal/infrastructure/realtime"
	"github.com/craftlink/community-api/internal/pkg/config"
	"github.com/craftlink/community-api/pkg/logger"
)

const shutdownGrace = 10 * time.Second

// @title CraftLink Community API
// @version 1.0
// @description Community platform for artisans and mentors.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	hub := realtime.NewHub()
	dispatcher := queue.NewDispatcher(cfg.ChatWorkers, hub, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.RouterDeps{
		Mongo:      db,
		Redis:      rdb,
		Dispatcher: dispatcher,
		Broker:     hub,
		Config:     cfg,
		Logger:     log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// ensureIndexes creates all collection indexes up front so the first
// request does not pay the cost.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewIdentityRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewRequestRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewMessageRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewForumRepository(db).EnsureIndexes(ctx)
}
