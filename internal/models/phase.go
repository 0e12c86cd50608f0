package models

// Phase represents one segment of the game-day cycle
type Phase string

const (
	PhaseWaiting    Phase = "waiting"
	PhaseRoleReveal Phase = "role_reveal"
	PhaseNight      Phase = "night"
	PhaseDay        Phase = "day"
	PhaseVoting     Phase = "voting"
	PhaseGameOver   Phase = "game_over"
)
