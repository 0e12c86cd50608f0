package sse

import (
	"log/slog"
	"time"

	"github.com/ozodbekm/mafia-online/internal/models"
)

// sendTimeout bounds how long a broadcast waits on a slow client before
// skipping it.
const sendTimeout = time.Second

// AddClient registers a subscriber channel for a room
func AddClient(g *models.Game, client chan models.SSEMessage, playerID string) {
	g.Lock()
	defer g.Unlock()

	dup := 0
	for _, pid := range g.SSEClients() {
		if pid == playerID {
			dup++
		}
	}
	if dup > 0 {
		slog.Warn("player opened additional event connections", "player_id", playerID, "extra", dup)
	}
	g.AddSSEClient(client, playerID)
}

// RemoveClient removes a subscriber channel from a room
func RemoveClient(g *models.Game, client chan models.SSEMessage) {
	g.Lock()
	defer g.Unlock()
	g.RemoveSSEClient(client)
}

// Broadcast sends an event to every subscriber of the room. Channels are
// collected under the lock and written without it so a stalled client
// cannot block game operations.
func Broadcast(g *models.Game, event, data string) {
	g.RLock()
	clients := g.SSEClients()
	g.RUnlock()

	msg := models.SSEMessage{Event: event, Data: data}
	for client := range clients {
		select {
		case client <- msg:
		case <-time.After(sendTimeout):
			slog.Debug("dropped event for slow client", "event", event)
		}
	}
}
