package game

import (
	"github.com/ozodbekm/mafia-online/internal/models"
)

// PlayerView is the public slice of a player every room member may see.
// Roles are never part of it.
type PlayerView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Alive bool   `json:"alive"`
}

// Snapshot is the personalized room view returned by GetState. Secret
// fields are filled only for the caller they belong to: the pending night
// target is visible to living mafia during the night, the pending check
// and save only to their own detective and doctor.
type Snapshot struct {
	Phase            models.Phase             `json:"phase"`
	DayNumber        int                      `json:"day_number"`
	Players          []PlayerView             `json:"players"`
	PlayerID         string                   `json:"player_id,omitempty"`
	PlayerRole       models.Role              `json:"player_role,omitempty"`
	PlayerAlive      bool                     `json:"player_alive"`
	IsHost           bool                     `json:"is_host"`
	LastEliminated   string                   `json:"last_eliminated,omitempty"`
	LastEliminatedBy models.Cause             `json:"last_eliminated_by,omitempty"`
	GameLog          []string                 `json:"game_log"`
	TimeRemaining    int                      `json:"time_remaining"`
	SelectedTarget   string                   `json:"selected_target,omitempty"`
	PlayerVote       string                   `json:"player_vote,omitempty"`
	Winner           models.Winner            `json:"winner,omitempty"`
	DetectiveResult  *models.DetectiveResult  `json:"detective_result,omitempty"`
	DetectiveHistory []models.DetectiveResult `json:"detective_history,omitempty"`
	DetectiveCheck   string                   `json:"detective_check,omitempty"`
	DoctorSave       string                   `json:"doctor_save,omitempty"`
}

// GetState returns the caller's view of the room. Unknown callers still
// get the public fields, matching the original behavior of the game page.
func (s *Service) GetState(roomCode, callerID string) (*Snapshot, error) {
	g, err := s.Room(roomCode)
	if err != nil {
		return nil, err
	}

	g.Lock()
	defer g.Unlock()
	g.LastActivity = s.now()

	snap := &Snapshot{
		Phase:            g.Phase,
		DayNumber:        g.DayNumber,
		Players:          make([]PlayerView, 0, len(g.Players)),
		LastEliminated:   g.LastEliminated,
		LastEliminatedBy: g.LastEliminatedBy,
		GameLog:          logTail(g.GameLog, GameLogTail),
		TimeRemaining:    s.timeRemaining(g),
		Winner:           g.WinnerSide,
	}
	for _, p := range g.Players {
		snap.Players = append(snap.Players, PlayerView{ID: p.ID, Name: p.Name, Alive: p.Alive})
	}

	caller := g.Player(callerID)
	if caller == nil {
		return snap, nil
	}

	snap.PlayerID = caller.ID
	snap.PlayerRole = caller.Role
	snap.PlayerAlive = caller.Alive
	snap.IsHost = g.HostID == callerID

	if g.Phase == models.PhaseVoting {
		snap.PlayerVote = g.Votes[callerID]
	}
	if caller.Role == models.RoleMafia && caller.Alive && g.Phase == models.PhaseNight {
		snap.SelectedTarget = g.SelectedTarget
	}
	if caller.Role == models.RoleDetective {
		snap.DetectiveCheck = g.DetectiveCheck
	}
	if caller.Role == models.RoleDoctor {
		snap.DoctorSave = g.DoctorSave
	}
	if history := g.DetectiveResults[callerID]; len(history) > 0 {
		snap.DetectiveHistory = append([]models.DetectiveResult(nil), history...)
		latest := history[len(history)-1]
		snap.DetectiveResult = &latest
	}

	return snap, nil
}

// timeRemaining computes the advisory countdown in seconds (lock held).
// Phases never auto-advance on expiry.
func (s *Service) timeRemaining(g *models.Game) int {
	if g.PhaseStart.IsZero() {
		return 0
	}
	remaining := g.PhaseDuration - s.now().Sub(g.PhaseStart)
	if remaining < 0 {
		return 0
	}
	return int(remaining.Seconds())
}

// logTail returns the last n lines of the narrative log
func logTail(log []string, n int) []string {
	if len(log) <= n {
		return append([]string(nil), log...)
	}
	return append([]string(nil), log[len(log)-n:]...)
}
