package game

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ozodbekm/mafia-online/internal/models"
	"github.com/ozodbekm/mafia-online/internal/store"
)

// Config tunes a Service. Zero values fall back to defaults, which lets
// tests pin the shuffle seed and the clock.
type Config struct {
	PhaseDuration time.Duration
	Rand          *rand.Rand
	Now           func() time.Time
}

// Service owns every game session and exposes the operations the
// transport layer binds to. Each operation executes atomically under the
// session's lock; operations on different rooms never contend.
type Service struct {
	rooms         *store.RoomStore
	phaseDuration time.Duration
	now           func() time.Time

	rngMu sync.Mutex // math/rand.Rand is not safe for concurrent use
	rng   *rand.Rand
}

// NewService creates a Service on top of the given room store
func NewService(rooms *store.RoomStore, cfg Config) *Service {
	if cfg.PhaseDuration <= 0 {
		cfg.PhaseDuration = DefaultPhaseDuration
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		rooms:         rooms,
		phaseDuration: cfg.PhaseDuration,
		now:           cfg.Now,
		rng:           cfg.Rand,
	}
}

// Room returns the session for a room code. Codes are case-insensitive.
func (s *Service) Room(code string) (*models.Game, error) {
	g, exists := s.rooms.Get(strings.ToUpper(strings.TrimSpace(code)))
	if !exists {
		return nil, fmt.Errorf("%w: room %q", ErrNotFound, code)
	}
	return g, nil
}

// CreateRoom allocates a new session in the waiting phase with the
// creating player as host. Returns the room code and the host's player id.
func (s *Service) CreateRoom(hostName string) (roomCode, hostID string, err error) {
	hostName = strings.TrimSpace(hostName)
	if hostName == "" {
		return "", "", fmt.Errorf("%w: name is required", ErrValidation)
	}

	hostID = uuid.New().String()
	roomCode = UniqueRoomCode(s.rooms)

	g := &models.Game{
		Code:             roomCode,
		HostID:           hostID,
		HostName:         hostName,
		Phase:            models.PhaseWaiting,
		Votes:            make(map[string]string),
		DetectiveResults: make(map[string][]models.DetectiveResult),
		PhaseDuration:    s.phaseDuration,
		LastActivity:     s.now(),
	}
	addPlayer(g, hostID, hostName)

	s.rooms.Set(roomCode, g)
	return roomCode, hostID, nil
}

// JoinRoom adds a player to a waiting room and returns the new player id
func (s *Service) JoinRoom(roomCode, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", ErrValidation)
	}

	g, err := s.Room(roomCode)
	if err != nil {
		return "", err
	}

	g.Lock()
	defer g.Unlock()

	if g.Phase != models.PhaseWaiting {
		return "", fmt.Errorf("%w: game already started", ErrInvalidPhase)
	}

	playerID := uuid.New().String()
	if !addPlayer(g, playerID, name) {
		return "", fmt.Errorf("%w: player id already present", ErrValidation)
	}
	g.LastActivity = s.now()
	return playerID, nil
}

// addPlayer appends a player and the join narrative (lock held). Returns
// false when the id is already taken.
func addPlayer(g *models.Game, playerID, name string) bool {
	if g.Player(playerID) != nil {
		return false
	}
	g.Players = append(g.Players, &models.Player{
		ID:    playerID,
		Name:  name,
		Role:  models.RoleUnassigned,
		Alive: true,
	})
	g.AppendLog(fmt.Sprintf("%s o'yinga qo'shildi", name))
	return true
}

// StartGame deals roles and moves the room into role reveal. Host only,
// requires at least MinPlayers and a room still in the waiting phase.
func (s *Service) StartGame(roomCode, callerID string) error {
	g, err := s.Room(roomCode)
	if err != nil {
		return err
	}

	g.Lock()
	defer g.Unlock()

	if g.HostID != callerID {
		return fmt.Errorf("%w: only the host can start the game", ErrPermissionDenied)
	}
	if g.Phase != models.PhaseWaiting {
		return fmt.Errorf("%w: game already started", ErrInvalidPhase)
	}
	if len(g.Players) < MinPlayers {
		return fmt.Errorf("%w: at least %d players required", ErrValidation, MinPlayers)
	}

	s.rngMu.Lock()
	AssignRoles(g, s.rng)
	s.rngMu.Unlock()

	g.Phase = models.PhaseRoleReveal
	g.DayNumber = 1
	g.PhaseStart = s.now()
	g.LastActivity = s.now()
	return nil
}

// SubmitNightAction records a role-gated night selection: the mafia's
// victim, the detective's check, or the doctor's save. Each follows
// last-write-wins within the night.
func (s *Service) SubmitNightAction(roomCode, callerID string, role models.Role, targetID string) error {
	g, err := s.Room(roomCode)
	if err != nil {
		return err
	}

	g.Lock()
	defer g.Unlock()

	if g.Phase != models.PhaseNight {
		return fmt.Errorf("%w: night actions are only valid at night", ErrInvalidPhase)
	}

	actor := g.Player(callerID)
	if actor == nil {
		return fmt.Errorf("%w: player", ErrNotFound)
	}
	if !actor.Alive || actor.Role != role {
		return fmt.Errorf("%w: action not available", ErrPermissionDenied)
	}

	target := g.Player(targetID)
	if target == nil || !target.Alive {
		return fmt.Errorf("%w: target", ErrInvalidTarget)
	}

	switch role {
	case models.RoleMafia:
		g.NightTarget = targetID
		g.SelectedTarget = targetID
	case models.RoleDetective:
		g.DetectiveCheck = targetID
		recordDetectiveResult(g, callerID, target)
	case models.RoleDoctor:
		g.DoctorSave = targetID
	default:
		return fmt.Errorf("%w: role %q has no night action", ErrValidation, role)
	}

	g.LastActivity = s.now()
	return nil
}

// recordDetectiveResult appends a check to the detective's history, or
// replaces the entry when the detective re-checks within the same night.
// History accumulates for the whole game and is never truncated.
func recordDetectiveResult(g *models.Game, detectiveID string, target *models.Player) {
	result := models.DetectiveResult{
		Day:        g.DayNumber,
		TargetName: target.Name,
		IsMafia:    target.Role == models.RoleMafia,
	}
	history := g.DetectiveResults[detectiveID]
	if n := len(history); n > 0 && history[n-1].Day == g.DayNumber {
		history[n-1] = result
	} else {
		history = append(history, result)
	}
	g.DetectiveResults[detectiveID] = history
}

// ResolveNight applies the night's outcome and, unless the game ended,
// advances to day. Host only.
func (s *Service) ResolveNight(roomCode, callerID string) error {
	g, err := s.Room(roomCode)
	if err != nil {
		return err
	}

	g.Lock()
	defer g.Unlock()

	if g.Phase != models.PhaseNight {
		return fmt.Errorf("%w: night can only be resolved at night", ErrInvalidPhase)
	}
	if g.HostID != callerID {
		return fmt.Errorf("%w: only the host can resolve the night", ErrPermissionDenied)
	}

	ResolveNight(g)
	if s.applyWinner(g) == models.WinnerNone {
		s.advancePhase(g)
	}
	g.LastActivity = s.now()
	return nil
}

// SubmitVote casts or replaces a living player's vote during the voting
// phase. A re-vote moves the voter to the back of the tally order.
func (s *Service) SubmitVote(roomCode, callerID, targetID string) error {
	g, err := s.Room(roomCode)
	if err != nil {
		return err
	}

	g.Lock()
	defer g.Unlock()

	if g.Phase != models.PhaseVoting {
		return fmt.Errorf("%w: voting is closed", ErrInvalidPhase)
	}

	voter := g.Player(callerID)
	if voter == nil {
		return fmt.Errorf("%w: player", ErrNotFound)
	}
	if !voter.Alive {
		return fmt.Errorf("%w: eliminated players cannot vote", ErrPermissionDenied)
	}

	target := g.Player(targetID)
	if target == nil || !target.Alive {
		return fmt.Errorf("%w: target", ErrInvalidTarget)
	}

	if _, voted := g.Votes[callerID]; voted {
		for i, id := range g.VoteOrder {
			if id == callerID {
				g.VoteOrder = append(g.VoteOrder[:i], g.VoteOrder[i+1:]...)
				break
			}
		}
	}
	g.Votes[callerID] = targetID
	g.VoteOrder = append(g.VoteOrder, callerID)
	g.SelectedTarget = targetID

	g.LastActivity = s.now()
	return nil
}

// ResolveVote tallies the ballots, eliminates the winning target if any,
// and advances the phase unless the game ended. Host only.
func (s *Service) ResolveVote(roomCode, callerID string) error {
	g, err := s.Room(roomCode)
	if err != nil {
		return err
	}

	g.Lock()
	defer g.Unlock()

	if g.Phase != models.PhaseVoting {
		return fmt.Errorf("%w: no vote in progress", ErrInvalidPhase)
	}
	if g.HostID != callerID {
		return fmt.Errorf("%w: only the host can count the votes", ErrPermissionDenied)
	}

	if target, ok := CountVotes(g); ok {
		Eliminate(g, target, models.CauseVote)
	}
	if s.applyWinner(g) == models.WinnerNone {
		s.advancePhase(g)
	}
	g.LastActivity = s.now()
	return nil
}

// AdvancePhase moves the room to the next phase in the cycle. Host only.
// Used for role_reveal -> night and day -> voting; the resolution
// operations drive the other transitions themselves.
func (s *Service) AdvancePhase(roomCode, callerID string) error {
	g, err := s.Room(roomCode)
	if err != nil {
		return err
	}

	g.Lock()
	defer g.Unlock()

	if g.HostID != callerID {
		return fmt.Errorf("%w: only the host can change the phase", ErrPermissionDenied)
	}

	s.advancePhase(g)
	g.LastActivity = s.now()
	return nil
}

// advancePhase performs one step of the phase machine (lock held). Every
// transition stamps a fresh phase clock. night -> day clears the night's
// transient selections without resolving them; voting -> night clears the
// ballots, re-checks the win condition and starts the next day.
func (s *Service) advancePhase(g *models.Game) {
	g.PhaseStart = s.now()
	switch g.Phase {
	case models.PhaseRoleReveal:
		g.Phase = models.PhaseNight
	case models.PhaseNight:
		g.Phase = models.PhaseDay
		g.SelectedTarget = ""
		g.DetectiveCheck = ""
		g.DoctorSave = ""
	case models.PhaseDay:
		g.Phase = models.PhaseVoting
	case models.PhaseVoting:
		g.Votes = make(map[string]string)
		g.VoteOrder = nil
		g.SelectedTarget = ""
		if s.applyWinner(g) == models.WinnerNone {
			g.DayNumber++
			g.Phase = models.PhaseNight
		}
	}
}

// applyWinner evaluates the win condition and, when decided, ends the
// game (lock held). The winner is set at most once; game_over is terminal.
func (s *Service) applyWinner(g *models.Game) models.Winner {
	winner := EvaluateWinner(g.Players)
	if winner == models.WinnerNone {
		return winner
	}
	g.WinnerSide = winner
	g.Phase = models.PhaseGameOver
	g.PhaseStart = s.now()
	if winner == models.WinnerCivilian {
		g.AppendLog("Oddiy fuqarolar g'alaba qozondi!")
	} else {
		g.AppendLog("Mafiya g'alaba qozondi!")
	}
	return winner
}

// PostChat validates and appends a chat message from a living player.
// The log keeps the most recent ChatHistoryLimit messages; ids keep
// increasing across truncation.
func (s *Service) PostChat(roomCode, callerID, text string) (models.ChatMessage, error) {
	g, err := s.Room(roomCode)
	if err != nil {
		return models.ChatMessage{}, err
	}

	g.Lock()
	defer g.Unlock()

	author := g.Player(callerID)
	if author == nil {
		return models.ChatMessage{}, fmt.Errorf("%w: player", ErrNotFound)
	}
	if !author.Alive {
		return models.ChatMessage{}, fmt.Errorf("%w: eliminated players cannot chat", ErrPermissionDenied)
	}

	clean, err := ModerateMessage(text)
	if err != nil {
		return models.ChatMessage{}, err
	}

	g.ChatLastID++
	msg := models.ChatMessage{
		ID:        g.ChatLastID,
		PlayerID:  author.ID,
		Name:      author.Name,
		Text:      clean,
		Timestamp: s.now(),
	}
	g.ChatMessages = append(g.ChatMessages, msg)
	if n := len(g.ChatMessages); n > ChatHistoryLimit {
		g.ChatMessages = g.ChatMessages[n-ChatHistoryLimit:]
	}

	g.LastActivity = s.now()
	return msg, nil
}

// FetchChat returns the messages with an id greater than sinceID. Any
// recognized player of the room may read, dead or alive.
func (s *Service) FetchChat(roomCode, callerID string, sinceID int) ([]models.ChatMessage, error) {
	g, err := s.Room(roomCode)
	if err != nil {
		return nil, err
	}

	g.RLock()
	defer g.RUnlock()

	if g.Player(callerID) == nil {
		return nil, fmt.Errorf("%w: not a player of this room", ErrPermissionDenied)
	}

	messages := make([]models.ChatMessage, 0)
	for _, msg := range g.ChatMessages {
		if msg.ID > sinceID {
			messages = append(messages, msg)
		}
	}
	return messages, nil
}
