package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/partykeep/partykeep/internal/api"
	"github.com/partykeep/partykeep/internal/api/controller"
	"github.com/partykeep/partykeep/internal/auth"
	"github.com/partykeep/partykeep/internal/config"
	"github.com/partykeep/partykeep/internal/infrastructure/database"
	"github.com/partykeep/partykeep/internal/repository"
	"github.com/partykeep/partykeep/internal/service"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.NewMySQLConnection(conf.Database.DSN)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	issuer := auth.NewTokenIssuer(
		conf.JWT.AccessSecret,
		conf.JWT.RefreshSecret,
		conf.JWT.AccessTTL(),
		conf.JWT.RefreshTTL(),
	)
	hasher := auth.NewPasswordHasher()

	var tokenStore auth.TokenStore
	switch conf.Auth.TokenStore {
	case "database":
		tokenStore = repository.NewDBTokenStore(db)
	default:
		tokenStore = auth.NewMemoryTokenStore()
	}
	slog.Info("refresh token store ready", "backend", conf.Auth.TokenStore)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go auth.RunSweeper(ctx, tokenStore, conf.Auth.SweepInterval())

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	characterRepo := repository.NewCharacterRepository(db)

	authSvc := service.NewAuthService(userRepo, hasher, issuer, tokenStore)
	userSvc := service.NewUserService(userRepo, hasher)
	taskSvc := service.NewTaskService(taskRepo)
	characterSvc := service.NewCharacterService(characterRepo)

	r := gin.Default()
	api.RegisterRoutes(
		r,
		issuer,
		controller.NewAuthController(authSvc),
		controller.NewUserController(userSvc),
		controller.NewTaskController(taskSvc),
		controller.NewCharacterController(characterSvc),
	)

	srv := &http.Server{
		Addr:    conf.Server.Port,
		Handler: r,
	}

	go func() {
		slog.Info("partykeep server starting", "port", conf.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server exited", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
