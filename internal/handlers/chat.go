package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/ozodbekm/mafia-online/internal/game"
	"github.com/ozodbekm/mafia-online/internal/models"
	"github.com/ozodbekm/mafia-online/internal/sse"
)

// HandleGetChat returns the room's chat messages newer than since_id
func (ctx *Context) HandleGetChat(w http.ResponseWriter, r *http.Request) {
	sinceID, _ := strconv.Atoi(r.URL.Query().Get("since_id"))

	messages, err := ctx.Games.FetchChat(r.PathValue("code"), playerID(r), sinceID)
	if err != nil {
		ctx.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]models.ChatMessage{"messages": messages})
}

// HandlePostChat appends a moderated chat message from a living player
func (ctx *Context) HandlePostChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := decodeBody(r, &req); err != nil {
		ctx.writeError(w, fmt.Errorf("%w: invalid request body", game.ErrValidation))
		return
	}

	code := r.PathValue("code")
	msg, err := ctx.Games.PostChat(code, playerID(r), req.Message)
	if err != nil {
		ctx.writeError(w, err)
		return
	}

	ctx.broadcast(code, sse.EventChatUpdate, strconv.Itoa(msg.ID))
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": msg,
	})
}
