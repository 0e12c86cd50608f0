package game

import "time"

const (
	// MinPlayers is the minimum number of players required to start a game
	MinPlayers = 3

	// MaxChatMessageLen is the maximum chat message length in runes
	MaxChatMessageLen = 200

	// ChatHistoryLimit caps the chat log; older messages are evicted
	ChatHistoryLimit = 200

	// GameLogTail is how many narrative lines a state snapshot carries
	GameLogTail = 5

	// DefaultPhaseDuration is the advisory countdown shown for each phase
	DefaultPhaseDuration = 60 * time.Second

	// RoomCodeLength is the length of generated room codes
	RoomCodeLength = 6

	// RoomCodeChars are the characters used for generating room codes (excluding ambiguous chars)
	RoomCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)
