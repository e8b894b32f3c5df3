package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/Dileepadari/placement-navigator/internal/auth"
	"github.com/Dileepadari/placement-navigator/internal/cache"
	"github.com/Dileepadari/placement-navigator/internal/config"
	"github.com/Dileepadari/placement-navigator/internal/database"
	"github.com/Dileepadari/placement-navigator/internal/fetcher"
	"github.com/Dileepadari/placement-navigator/internal/handler"
	"github.com/Dileepadari/placement-navigator/internal/logger"
	"github.com/Dileepadari/placement-navigator/internal/repository"
	"github.com/Dileepadari/placement-navigator/internal/ws"
)

type application struct {
	DB      *pgxpool.Pool
	Logger  *zap.Logger
	Config  *config.Config
	Hub     *ws.Hub
	Handler *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	pool, err := database.Connect(ctx, cfg.DB.DSN, cfg.DB.MaxConns, cfg.DB.MaxConnLifetime)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	rdb := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	var listCache *cache.Cache
	if err := cache.Ping(ctx, rdb); err != nil {
		// the list works without the snapshot cache, just slower
		sugar.Warnf("redis unavailable, running without cache: %v", err)
	} else {
		listCache = cache.New(rdb, cfg.Redis.CacheTTL)
	}

	hub := ws.NewHub(log)
	go hub.Run()
	defer hub.Stop()

	repo := repository.NewRepository(pool)

	h := &handler.Handler{
		Logger:      log,
		Companies:   repo,
		Experiences: repo,
		Questions:   repo,
		Users:       repo,
		Cache:       listCache,
		Hub:         hub,
		Fetcher:     fetcher.New(cfg.Fetcher.Timeout, cfg.Fetcher.UserAgent),
		TokenMaker:  auth.NewJWTMaker(cfg.JWT.Secret),
		TokenTTL:    cfg.JWT.AccessTokenTTL,
	}

	app := &application{
		DB:      pool,
		Logger:  log,
		Config:  cfg,
		Hub:     hub,
		Handler: h,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
