package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tfxsoftware/PickPegaAPI/internal/api"
	"github.com/tfxsoftware/PickPegaAPI/internal/core/service"
	"github.com/tfxsoftware/PickPegaAPI/internal/infrastructure/config"
	mongodb "github.com/tfxsoftware/PickPegaAPI/internal/infrastructure/db/mongo"
	redisdb "github.com/tfxsoftware/PickPegaAPI/internal/infrastructure/db/redis"
	"github.com/tfxsoftware/PickPegaAPI/internal/infrastructure/identity"
	"github.com/tfxsoftware/PickPegaAPI/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Document store ---
	client, documents, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("document store connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	// --- Identity store (own database, fails independently) ---
	identityDB := client.Database(cfg.Mongo.IdentityDatabase)
	identityStore := identity.NewMongoStore(identityDB)

	// --- Redis (dual-write journal) ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Repositories ---
	restaurantRepo := mongodb.NewRestaurantRepository(documents)
	menuRepo := mongodb.NewMenuRepository(documents)
	orderRepo := mongodb.NewOrderRepository(documents)
	journal := redisdb.NewJournal(rdb)

	if err := menuRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("menu index creation failed")
	}
	if err := orderRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("order index creation failed")
	}
	if err := identityStore.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("identity index creation failed")
	}

	// --- Services ---
	accountService := service.NewAccountService(restaurantRepo, menuRepo, orderRepo, identityStore, journal, log)
	menuService := service.NewMenuService(menuRepo, log)
	orderService := service.NewOrderService(orderRepo, log)
	authService := service.NewAuthService(identityStore, cfg.JWTSecret, 24*time.Hour)

	reconciler := service.NewReconciler(restaurantRepo, identityStore, journal, cfg.Reconcile.Grace, log)
	go reconciler.Run(ctx, cfg.Reconcile.Interval)

	e := api.NewRouter(api.Services{
		Accounts: accountService,
		Menus:    menuService,
		Orders:   orderService,
		Auth:     authService,
	}, documents, identityDB, rdb, cfg.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
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
