package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime parameters of the application.
type Config struct {
	ServerPort        int
	StageSignal       string
	VotesPerDraw      int
	AllowedOrigins    []string
	SchedulerInterval time.Duration
}

// Load reads configuration from environment variables, optionally
// seeded from a .env file for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	// STAGE_SIGNAL mirrors the ?stage= query parameter the frontend
	// passes; anything unparseable falls back to the default variant.
	stageSignal := os.Getenv("STAGE_SIGNAL")

	votesPerDraw := 10
	if v := os.Getenv("VOTES_PER_DRAW"); v != "" {
		votesPerDraw, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid VOTES_PER_DRAW environment variable: %w", err)
		}
		if votesPerDraw <= 0 {
			return nil, fmt.Errorf("VOTES_PER_DRAW must be positive, got %d", votesPerDraw)
		}
	}

	origins := []string{"*"}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, origin := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	interval := 30 * time.Second
	if raw := os.Getenv("SCHEDULER_INTERVAL"); raw != "" {
		interval, err = time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SCHEDULER_INTERVAL environment variable: %w", err)
		}
	}

	cfg := &Config{
		ServerPort:        port,
		StageSignal:       stageSignal,
		VotesPerDraw:      votesPerDraw,
		AllowedOrigins:    origins,
		SchedulerInterval: interval,
	}

	return cfg, nil
}
