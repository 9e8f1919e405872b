package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gamehub-br/server/api/rest"
	"github.com/gamehub-br/server/api/sse"
	"github.com/gamehub-br/server/audit"
	"github.com/gamehub-br/server/cache"
	"github.com/gamehub-br/server/config"
	"github.com/gamehub-br/server/db"
	"github.com/gamehub-br/server/model"
	"github.com/gamehub-br/server/scheduler"
	"github.com/gamehub-br/server/storefront"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "./config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	var logger *zap.Logger
	if cfg.Server.Debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Server.AdminKey == "" {
		logger.Warn("server.admin_key is not set; admin endpoints are disabled")
	}

	database, err := db.Open(cfg.Database)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	if err := model.AutoMigrate(database); err != nil {
		logger.Fatal("migrate database", zap.Error(err))
	}

	ca, err := cache.NewCache(cfg.Cache)
	if err != nil {
		logger.Fatal("init cache", zap.Error(err))
	}
	events, err := cache.NewPubSub(cfg.Cache)
	if err != nil {
		logger.Fatal("init pubsub", zap.Error(err))
	}

	aud := audit.New(database, logger)
	sched := scheduler.New(logger)
	store := storefront.New(database, events, logger)

	router := rest.NewRouter(rest.Deps{
		Config: cfg,
		DB:     database,
		Cache:  ca,
		Store:  store,
		Audit:  aud,
		Sched:  sched,
		Logger: logger,
	})
	router.GET("/api/events", sse.NewHandler(events, logger).Stream)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info("server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("server shutdown", zap.Error(err))
	}
	sched.Stop()
	aud.Stop(shutdownCtx)
	logger.Info("bye")
}
