package models

import (
	"sync"
	"time"
)

// Cause records how a player left the game
type Cause string

const (
	CauseVote  Cause = "vote"
	CauseMafia Cause = "mafia"
)

// Winner identifies the winning side once the game is decided
type Winner string

const (
	WinnerNone     Winner = ""
	WinnerCivilian Winner = "civilian"
	WinnerMafia    Winner = "mafia"
)

// DetectiveResult is the outcome of a single night check. Results
// accumulate per detective for the whole game; Day records which night
// the check belongs to.
type DetectiveResult struct {
	Day        int    `json:"day"`
	TargetName string `json:"target_name"`
	IsMafia    bool   `json:"is_mafia"`
}

// SSEMessage is one event pushed to a connected client
type SSEMessage struct {
	Event string // event name, e.g. "state-update"
	Data  string // payload, usually a short token telling clients to refetch
}

// Game represents a single room's session state (ephemeral, in-memory).
// All fields are guarded by the embedded mutex; callers go through
// Lock/RLock like every other shared structure in this codebase.
type Game struct {
	Code     string // immutable room code
	HostID   string // creating player, never changes
	HostName string

	// Players keeps insertion order until roles are dealt, then the
	// shuffled order becomes canonical. Players are never removed.
	Players []*Player

	Phase     Phase
	DayNumber int

	Votes     map[string]string // voter -> target, cleared every voting cycle
	VoteOrder []string          // voters in cast order; a re-vote moves the voter to the back

	// Current-night submissions, each last-write-wins. NightTarget is the
	// mafia's pending victim; SelectedTarget mirrors the latest selection
	// for the mafia's own view; DoctorSave and DetectiveCheck belong to
	// their roles and are cleared on the night -> day transition.
	// DetectiveResults accumulates every check a detective has made for
	// the whole game, keyed by the detective's id; it is never cleared.
	NightTarget      string
	SelectedTarget   string
	DoctorSave       string
	DetectiveCheck   string
	DetectiveResults map[string][]DetectiveResult

	LastEliminated   string
	LastEliminatedBy Cause
	WinnerSide       Winner

	PhaseStart    time.Time
	PhaseDuration time.Duration // advisory only, phases never auto-advance

	GameLog []string // append-only narrative, localized

	ChatMessages []ChatMessage
	ChatLastID   int // strictly increasing, survives truncation

	LastActivity time.Time

	mu         sync.RWMutex
	sseClients map[chan SSEMessage]string // channel -> playerID
}

// Lock acquires the session's write lock
func (g *Game) Lock() {
	g.mu.Lock()
}

// Unlock releases the session's write lock
func (g *Game) Unlock() {
	g.mu.Unlock()
}

// RLock acquires the session's read lock
func (g *Game) RLock() {
	g.mu.RLock()
}

// RUnlock releases the session's read lock
func (g *Game) RUnlock() {
	g.mu.RUnlock()
}

// Player returns the player with the given id, or nil (must be called with lock held)
func (g *Game) Player(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// AppendLog adds a narrative line to the game log (must be called with lock held)
func (g *Game) AppendLog(line string) {
	g.GameLog = append(g.GameLog, line)
}

// SSEClients returns a copy of the subscriber map (must be called with lock held)
func (g *Game) SSEClients() map[chan SSEMessage]string {
	clients := make(map[chan SSEMessage]string, len(g.sseClients))
	for ch, pid := range g.sseClients {
		clients[ch] = pid
	}
	return clients
}

// AddSSEClient registers a subscriber channel (must be called with lock held)
func (g *Game) AddSSEClient(client chan SSEMessage, playerID string) {
	if g.sseClients == nil {
		g.sseClients = make(map[chan SSEMessage]string)
	}
	g.sseClients[client] = playerID
}

// RemoveSSEClient removes a subscriber channel (must be called with lock held)
func (g *Game) RemoveSSEClient(client chan SSEMessage) {
	delete(g.sseClients, client)
}
