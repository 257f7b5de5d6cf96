package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/userdept/admin-system/internal/api"
	"github.com/userdept/admin-system/internal/core/ports"
	"github.com/userdept/admin-system/internal/core/service"
	"github.com/userdept/admin-system/internal/infrastructure/config"
	mongorepo "github.com/userdept/admin-system/internal/infrastructure/db/mongo"
	redisinfra "github.com/userdept/admin-system/internal/infrastructure/db/redis"
	"github.com/userdept/admin-system/internal/infrastructure/queue"
	"github.com/userdept/admin-system/pkg/logger"
)

// @title           Admin System API
// @version         1.0
// @description     User and department administration service.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("starting admin system")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	connectCtx, connectCancel := context.WithTimeout(ctx, 10*time.Second)
	defer connectCancel()

	mongoClient, db, err := mongorepo.Connect(connectCtx, mongorepo.Config{
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
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongodb connected")

	// Redis is optional: without it logins still work, but logout cannot
	// revoke tokens before they expire.
	var blacklist ports.TokenBlacklist
	rdb, err := redisinfra.Connect(connectCtx, redisinfra.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, token revocation disabled")
		rdb = nil
	} else {
		blacklist = redisinfra.NewTokenBlacklist(rdb)
		defer rdb.Close()
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")
	}

	auditRepo := mongorepo.NewAuditRepository(db)
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, api.RouterConfig{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
		Blacklist: blacklist,
		AuditSink: dispatcher,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	cancel()
	log.Info().Msg("server stopped")
}
