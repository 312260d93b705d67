// UZEED marketplace API server.
//
// @title           UZEED Marketplace API
// @version         1.0
// @description     Directory, realtime presence, and marketplace workflows for the UZEED platform.
// @BasePath        /v1
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/uzeed/marketplace-api/internal/api"
	"github.com/uzeed/marketplace-api/internal/core/service"
	"github.com/uzeed/marketplace-api/internal/infrastructure/config"
	mongostore "github.com/uzeed/marketplace-api/internal/infrastructure/db/mongo"
	redisstore "github.com/uzeed/marketplace-api/internal/infrastructure/db/redis"
	"github.com/uzeed/marketplace-api/internal/infrastructure/queue"
	"github.com/uzeed/marketplace-api/internal/realtime"
	"github.com/uzeed/marketplace-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "marketplace-api",
		Pretty:  cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	mongoClient, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	users := mongostore.NewUserRepository(db)
	views := mongostore.NewViewRepository(db)
	if err := mongostore.EnsureIndexes(ctx,
		users,
		mongostore.NewEstablishmentRepository(db),
		mongostore.NewCatalogRepository(db),
		mongostore.NewRatingRepository(db),
		mongostore.NewFavoriteRepository(db),
		mongostore.NewRequestRepository(db),
		mongostore.NewMessageRepository(db),
		views,
	); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Profile view pipeline ---
	recorder := service.NewViewRecorder(views, redisstore.NewViewDedup(rdb), logger.For("views"))
	dispatcher := queue.NewDispatcher(cfg.Views.Workers, recorder, logger.For("views"))
	dispatcher.Start(ctx)
	viewService := service.NewViewService(dispatcher, views)

	// --- Realtime ---
	registry := realtime.NewRegistry(cfg.Realtime.MaxConnsPerUser)
	hub := realtime.NewHub(registry, logger.For("realtime"))
	tracker := realtime.NewTracker(users, hub, logger.For("realtime"))

	e := api.NewRouter(api.Dependencies{
		Config:      cfg,
		Mongo:       db,
		Redis:       rdb,
		Registry:    registry,
		Hub:         hub,
		Tracker:     tracker,
		ViewService: viewService,
		Log:         log,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
	log.Info().Msg("server stopped")
}
