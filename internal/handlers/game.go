package handlers

import (
	"fmt"
	"net/http"

	"github.com/ozodbekm/mafia-online/internal/game"
	"github.com/ozodbekm/mafia-online/internal/models"
	"github.com/ozodbekm/mafia-online/internal/sse"
)

// HandleStartGame deals roles and opens the role reveal. Host only.
func (ctx *Context) HandleStartGame(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if err := ctx.Games.StartGame(code, playerID(r)); err != nil {
		ctx.writeError(w, err)
		return
	}

	ctx.Logger.Info("game started", "code", code)
	ctx.broadcast(code, sse.EventGameStarted, "started")
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleNightAction records a mafia, detective or doctor selection. The
// role comes from the request body and is validated against the caller.
func (ctx *Context) HandleNightAction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Role     string `json:"role"`
		TargetID string `json:"target_id"`
	}
	if err := decodeBody(r, &req); err != nil {
		ctx.writeError(w, fmt.Errorf("%w: invalid request body", game.ErrValidation))
		return
	}

	err := ctx.Games.SubmitNightAction(r.PathValue("code"), playerID(r), models.Role(req.Role), req.TargetID)
	if err != nil {
		ctx.writeError(w, err)
		return
	}
	// No broadcast: night selections are secret.
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleExecuteNight resolves the night and advances the phase. Host only.
func (ctx *Context) HandleExecuteNight(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if err := ctx.Games.ResolveNight(code, playerID(r)); err != nil {
		ctx.writeError(w, err)
		return
	}

	ctx.broadcastOutcome(code)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleVote casts or replaces the caller's vote
func (ctx *Context) HandleVote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TargetID string `json:"target_id"`
	}
	if err := decodeBody(r, &req); err != nil {
		ctx.writeError(w, fmt.Errorf("%w: invalid request body", game.ErrValidation))
		return
	}

	if err := ctx.Games.SubmitVote(r.PathValue("code"), playerID(r), req.TargetID); err != nil {
		ctx.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleExecuteVote tallies the ballots and advances the phase. Host only.
func (ctx *Context) HandleExecuteVote(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if err := ctx.Games.ResolveVote(code, playerID(r)); err != nil {
		ctx.writeError(w, err)
		return
	}

	ctx.broadcastOutcome(code)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleNextPhase advances the phase machine one step. Host only.
func (ctx *Context) HandleNextPhase(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if err := ctx.Games.AdvancePhase(code, playerID(r)); err != nil {
		ctx.writeError(w, err)
		return
	}

	ctx.broadcast(code, sse.EventStateUpdate, "phase")
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// broadcast pushes an event to every subscriber of the room
func (ctx *Context) broadcast(code, event, data string) {
	room, err := ctx.Games.Room(code)
	if err != nil {
		return
	}
	sse.Broadcast(room, event, data)
}

// broadcastOutcome notifies subscribers after a resolution, switching to
// the game-over event when the session just ended.
func (ctx *Context) broadcastOutcome(code string) {
	room, err := ctx.Games.Room(code)
	if err != nil {
		return
	}
	room.RLock()
	over := room.Phase == models.PhaseGameOver
	room.RUnlock()

	if over {
		sse.Broadcast(room, sse.EventGameOver, "over")
		return
	}
	sse.Broadcast(room, sse.EventStateUpdate, "phase")
}
