package sse

// Event names pushed to room subscribers. Payloads are short tokens;
// clients refetch the game state or chat tail when one arrives.
const (
	EventStateUpdate = "state-update"
	EventChatUpdate  = "chat-update"
	EventGameStarted = "game-started"
	EventGameOver    = "game-over"
)
