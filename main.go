package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/ozodbekm/mafia-online/internal/config"
	"github.com/ozodbekm/mafia-online/internal/game"
	"github.com/ozodbekm/mafia-online/internal/handlers"
	"github.com/ozodbekm/mafia-online/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	rooms := store.NewRoomStore()
	stopJanitor := rooms.StartJanitor(cfg.SweepInterval, cfg.RoomTTL)
	defer stopJanitor()

	games := game.NewService(rooms, game.Config{PhaseDuration: cfg.PhaseDuration})

	mux := handlers.NewMux(&handlers.Context{
		Games:  games,
		Config: cfg,
		Logger: logger,
	})

	logger.Info("server starting", "addr", cfg.Addr, "room_ttl", cfg.RoomTTL)
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
