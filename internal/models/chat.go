package models

import "time"

// ChatMessage is one entry in a room's chat log
type ChatMessage struct {
	ID        int       `json:"id"`
	PlayerID  string    `json:"player_id"`
	Name      string    `json:"name"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
