package handlers

import (
	"fmt"
	"net/http"

	"github.com/ozodbekm/mafia-online/internal/game"
	"github.com/ozodbekm/mafia-online/internal/sse"
)

// HandleCreateGame allocates a new room with the caller as host
func (ctx *Context) HandleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decodeBody(r, &req); err != nil {
		ctx.writeError(w, fmt.Errorf("%w: invalid request body", game.ErrValidation))
		return
	}

	roomCode, hostID, err := ctx.Games.CreateRoom(req.Name)
	if err != nil {
		ctx.writeError(w, err)
		return
	}

	ctx.Logger.Info("room created", "code", roomCode, "host", hostID)
	setPlayerCookie(w, hostID)
	writeJSON(w, http.StatusOK, map[string]string{
		"room_code": roomCode,
		"player_id": hostID,
	})
}

// HandleJoinGame adds the caller to a waiting room
func (ctx *Context) HandleJoinGame(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RoomCode string `json:"room_code"`
		Name     string `json:"name"`
	}
	if err := decodeBody(r, &req); err != nil {
		ctx.writeError(w, fmt.Errorf("%w: invalid request body", game.ErrValidation))
		return
	}

	playerID, err := ctx.Games.JoinRoom(req.RoomCode, req.Name)
	if err != nil {
		ctx.writeError(w, err)
		return
	}

	ctx.Logger.Info("player joined", "code", req.RoomCode, "player", playerID)
	if room, err := ctx.Games.Room(req.RoomCode); err == nil {
		sse.Broadcast(room, sse.EventStateUpdate, "joined")
	}

	setPlayerCookie(w, playerID)
	writeJSON(w, http.StatusOK, map[string]string{
		"room_code": req.RoomCode,
		"player_id": playerID,
	})
}

// HandleGameState returns the caller's personalized snapshot of the room
func (ctx *Context) HandleGameState(w http.ResponseWriter, r *http.Request) {
	snapshot, err := ctx.Games.GetState(r.PathValue("code"), playerID(r))
	if err != nil {
		ctx.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}
