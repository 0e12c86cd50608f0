package handlers

import (
	"fmt"
	"net/http"

	"github.com/ozodbekm/mafia-online/internal/game"
	"github.com/ozodbekm/mafia-online/internal/models"
	"github.com/ozodbekm/mafia-online/internal/sse"
)

// HandleEvents streams room events via Server-Sent Events. Clients use
// the events as a hint to refetch state; polling keeps working without
// this connection.
func (ctx *Context) HandleEvents(w http.ResponseWriter, r *http.Request) {
	room, err := ctx.Games.Room(r.PathValue("code"))
	if err != nil {
		ctx.writeError(w, err)
		return
	}

	pid := playerID(r)
	room.RLock()
	member := room.Player(pid) != nil
	room.RUnlock()
	if !member {
		ctx.writeError(w, fmt.Errorf("%w: not a player of this room", game.ErrPermissionDenied))
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	client := make(chan models.SSEMessage, 10)
	sse.AddClient(room, client, pid)
	defer sse.RemoveClient(room, client)

	fmt.Fprintf(w, ": connected\n\n")
	flusher.Flush()

	reqCtx := r.Context()
	for {
		select {
		case <-reqCtx.Done():
			return
		case msg := <-client:
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Event, msg.Data)
			flusher.Flush()
		}
	}
}
