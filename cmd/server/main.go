// Package main provides the entry point for the standup bot server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/antonk9218/standup-bot/internal/auth"
	"github.com/antonk9218/standup-bot/internal/config"
	"github.com/antonk9218/standup-bot/internal/database"
	"github.com/antonk9218/standup-bot/internal/database/migrate"
	"github.com/antonk9218/standup-bot/internal/health"
	"github.com/antonk9218/standup-bot/internal/middleware"
	"github.com/antonk9218/standup-bot/internal/notifier"
	"github.com/antonk9218/standup-bot/internal/scheduler"
	standupRepository "github.com/antonk9218/standup-bot/internal/standup/repository"
	standupRouter "github.com/antonk9218/standup-bot/internal/standup/router"
	standupService "github.com/antonk9218/standup-bot/internal/standup/service"
	statisticsRouter "github.com/antonk9218/standup-bot/internal/statistics/router"
	userRepository "github.com/antonk9218/standup-bot/internal/user/repository"
	userRouter "github.com/antonk9218/standup-bot/internal/user/router"
	workspaceRepository "github.com/antonk9218/standup-bot/internal/workspace/repository"
	workspaceRouter "github.com/antonk9218/standup-bot/internal/workspace/router"
	workspaceService "github.com/antonk9218/standup-bot/internal/workspace/service"
	"github.com/antonk9218/standup-bot/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	gin.SetMode(cfg.GinMode)

	db, err := database.New()
	if err != nil {
		zapLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer database.Close(db) //nolint:errcheck

	if err := migrate.Migrate(db); err != nil {
		zapLogger.Fatalw("failed to run migrations", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	workspaceRepo := workspaceRepository.New(db, zapLogger)
	workspaceSvc := workspaceService.New(workspaceRepo, zapLogger)
	userRepo := userRepository.New(db, zapLogger)
	reportRepo := standupRepository.NewReportRepository(db, zapLogger)
	stateRepo := standupRepository.NewStateRepository(db, zapLogger)

	slackNotifier := notifier.New(cfg.Slack.BotToken, zapLogger)
	standupSvc := standupService.New(reportRepo, stateRepo, userRepo, workspaceRepo, slackNotifier, zapLogger)

	if err := registerWorkspace(ctx, cfg, workspaceSvc, zapLogger); err != nil {
		zapLogger.Fatalw("workspace registration failed", "error", err)
	}

	sched := scheduler.New(standupSvc, workspaceSvc, zapLogger)
	if err := sched.Start(ctx); err != nil {
		zapLogger.Fatalw("failed to start scheduler", "error", err)
	}
	defer sched.Stop()

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(zapLogger))
	r.Use(middleware.Recovery(zapLogger))

	r.GET("/health", health.New(db, zapLogger).Check)
	standupRouter.RegisterRoutes(r, standupSvc, slackNotifier, cfg.Slack.SigningSecret, zapLogger)
	auth.RegisterRoutes(r, cfg.Admin, zapLogger)

	admin := r.Group("/admin")
	admin.Use(middleware.AdminAuth(cfg.Admin))
	userRouter.RegisterRoutes(admin, db, zapLogger)
	workspaceRouter.RegisterRoutes(admin, db, zapLogger, func() {
		reloadCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := sched.Reload(reloadCtx); err != nil {
			zapLogger.Errorw("schedule reload failed", "error", err)
		}
	})
	statisticsRouter.RegisterRoutes(admin, db, zapLogger)
	standupRouter.RegisterAdminRoutes(admin, reportRepo, zapLogger)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zapLogger.Infow("server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	zapLogger.Infow("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Errorw("server shutdown failed", "error", err)
	}

	zapLogger.Infow("server stopped")
}

// registerWorkspace resolves the bot's own workspace via auth.test and
// makes sure it exists in the store before the first dispatch tick.
func registerWorkspace(ctx context.Context, cfg config.Config, workspaces workspaceService.Service, zapLogger *zap.SugaredLogger) error {
	api := slack.New(cfg.Slack.BotToken)

	authCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	identity, err := api.AuthTestContext(authCtx)
	if err != nil {
		return err
	}

	ws, err := workspaces.GetOrCreate(ctx, identity.TeamID, cfg.Slack.DefaultReportChannel)
	if err != nil {
		return err
	}

	zapLogger.Infow("workspace registered", "workspace_id", ws.ID, "slack_team_id", ws.SlackTeamID)
	return nil
}
