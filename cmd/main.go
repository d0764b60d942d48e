package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/huashi-art/oc-pk-contest/brackets"
	"github.com/huashi-art/oc-pk-contest/config"
	"github.com/huashi-art/oc-pk-contest/handlers"
	"github.com/huashi-art/oc-pk-contest/repositories"
	api "github.com/huashi-art/oc-pk-contest/routes"
	"github.com/huashi-art/oc-pk-contest/services"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	fixtures := repositories.DefaultFixtures()

	matchRepo := repositories.NewInMemoryMatchRepository(fixtures.MatchesByVariant, fixtures.MetaByVariant)
	workRepo := repositories.NewInMemoryWorkRepository(fixtures.Works)
	leaderboardRepo := repositories.NewInMemoryLeaderboardRepository(fixtures.Leaderboard)
	entryRepo := repositories.NewInMemoryEntryRepository(fixtures.MyEntries)
	regRepo := repositories.NewInMemoryRegistrationRepository(fixtures.RegistrationConfig)
	rewardRepo := repositories.NewInMemoryRewardRepository(
		fixtures.LotteryRewards,
		fixtures.LotteryHistory,
		fixtures.LotteryUnlocked,
		fixtures.DrawsRemaining,
	)
	logger.Info("repositories initialized")

	wsHub := brackets.NewHub()
	go wsHub.Run()
	logger.Info("WebSocket Hub started")

	arenaService := services.NewArenaService(matchRepo, workRepo, wsHub, cfg.VotesPerDraw, nil)
	stageService := services.NewStageService(arenaService, wsHub, fixtures.Profile, cfg.StageSignal)
	lotteryService := services.NewLotteryService(rewardRepo, nil)
	matchService := services.NewMatchService(matchRepo, arenaService, wsHub, logger)
	bracketService := services.NewBracketService(matchRepo)
	activityService := services.NewActivityService(matchRepo, workRepo, leaderboardRepo, entryRepo, regRepo)
	registrationService := services.NewRegistrationService(regRepo, workRepo, stageService)
	logger.Info("services initialized")

	// Close open matches whose deadline has passed, refreshing the
	// arena and notifying subscribers.
	go func() {
		ticker := time.NewTicker(cfg.SchedulerInterval)
		defer ticker.Stop()
		logger.Info("match deadline scheduler started", slog.Duration("interval", cfg.SchedulerInterval))

		for range ticker.C {
			if closed := matchService.CloseExpiredMatches(context.Background()); closed > 0 {
				logger.Info("scheduler closed expired matches", slog.Int("count", closed))
			}
		}
	}()

	stageHandler := handlers.NewStageHandler(stageService)
	arenaHandler := handlers.NewArenaHandler(arenaService, stageService)
	lotteryHandler := handlers.NewLotteryHandler(lotteryService, arenaService)
	activityHandler := handlers.NewActivityHandler(activityService, bracketService, stageService, workRepo, leaderboardRepo, entryRepo)
	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		cfg.AllowedOrigins,
		stageHandler,
		arenaHandler,
		lotteryHandler,
		activityHandler,
		registrationHandler,
		webSocketHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		} else {
			logger.Info("server stopped gracefully")
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		} else {
			logger.Info("server shutdown complete")
		}
	}
	logger.Info("application exited")
}
