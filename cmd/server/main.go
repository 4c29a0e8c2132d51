package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"warbler/internal/config"
	"warbler/internal/database"
	"warbler/internal/observability"
	postgresrepo "warbler/internal/repository/postgres"
	"warbler/internal/service"
	"warbler/internal/session"
	"warbler/internal/transport/http/handlers"
	"warbler/internal/web"
)

func main() {
	cfg := config.Load()

	observability.InitLogger("warbler")
	log := observability.Log

	// Database
	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(context.Background(), pool); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	log.Info("connected to database")

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	messageRepo := postgresrepo.NewMessageRepo(pool)
	followRepo := postgresrepo.NewFollowRepo(pool)
	likeRepo := postgresrepo.NewLikeRepo(pool)

	// Services
	svcs := handlers.Services{
		Auth:     service.NewAuthService(userRepo),
		Users:    service.NewUserService(userRepo, messageRepo, followRepo, likeRepo),
		Follows:  service.NewFollowService(followRepo, userRepo),
		Messages: service.NewMessageService(messageRepo, likeRepo),
	}

	// Views and sessions
	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatal("template parse failed", zap.Error(err))
	}
	sm := session.NewManager(cfg.SessionSecret)

	router := handlers.NewRouter(sm, renderer, userRepo, svcs, pool)
	srv := &http.Server{Addr: ":" + cfg.ServerPort, Handler: router}

	go func() {
		log.Info("HTTP started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)

	log.Info("stopped")
}
