package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ozodbekm/mafia-online/internal/config"
	"github.com/ozodbekm/mafia-online/internal/game"
)

// Context carries the dependencies every handler needs
type Context struct {
	Games  *game.Service
	Config *config.Config
	Logger *slog.Logger
}

// NewMux registers every route on a fresh ServeMux. The routes mirror
// the polling JSON API the game page talks to.
func NewMux(ctx *Context) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /create_game", ctx.HandleCreateGame)
	mux.HandleFunc("POST /join_game", ctx.HandleJoinGame)
	mux.HandleFunc("GET /game_state/{code}", ctx.HandleGameState)
	mux.HandleFunc("POST /start_game/{code}", ctx.HandleStartGame)
	mux.HandleFunc("POST /night_action/{code}", ctx.HandleNightAction)
	mux.HandleFunc("POST /execute_night/{code}", ctx.HandleExecuteNight)
	mux.HandleFunc("POST /vote/{code}", ctx.HandleVote)
	mux.HandleFunc("POST /execute_vote/{code}", ctx.HandleExecuteVote)
	mux.HandleFunc("POST /next_phase/{code}", ctx.HandleNextPhase)
	mux.HandleFunc("GET /chat/{code}", ctx.HandleGetChat)
	mux.HandleFunc("POST /chat/{code}", ctx.HandlePostChat)
	mux.HandleFunc("GET /events/{code}", ctx.HandleEvents)
	mux.HandleFunc("GET /qr/{code}", ctx.HandleJoinQR)
	return mux
}
