package store

import (
	"log/slog"
	"sync"
	"time"

	"github.com/ozodbekm/mafia-online/internal/models"
)

// RoomStore owns every live game session, keyed by room code. Rooms are
// created on demand and reclaimed by Sweep once idle; nothing else ever
// removes them.
type RoomStore struct {
	rooms map[string]*models.Game
	mu    sync.RWMutex
	now   func() time.Time
}

// NewRoomStore creates an empty room store
func NewRoomStore() *RoomStore {
	return &RoomStore{
		rooms: make(map[string]*models.Game),
		now:   time.Now,
	}
}

// Get retrieves a session by room code
func (s *RoomStore) Get(code string) (*models.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, exists := s.rooms[code]
	return g, exists
}

// Set stores a session
func (s *RoomStore) Set(code string, g *models.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[code] = g
}

// Delete removes a session
func (s *RoomStore) Delete(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, code)
}

// Exists checks if a room code is taken
func (s *RoomStore) Exists(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.rooms[code]
	return exists
}

// Len returns the number of live rooms
func (s *RoomStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

// Sweep removes every room whose last activity is older than maxIdle and
// returns the evicted room codes. Finished rooms follow the same policy
// as stalled ones.
func (s *RoomStore) Sweep(maxIdle time.Duration) []string {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	var evicted []string
	for code, g := range s.rooms {
		g.RLock()
		idle := g.LastActivity.Before(cutoff)
		g.RUnlock()
		if idle {
			delete(s.rooms, code)
			evicted = append(evicted, code)
		}
	}
	return evicted
}

// StartJanitor sweeps idle rooms on a fixed interval until the returned
// stop function is called.
func (s *RoomStore) StartJanitor(interval, maxIdle time.Duration) (stop func()) {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if evicted := s.Sweep(maxIdle); len(evicted) > 0 {
					slog.Info("evicted idle rooms", "count", len(evicted), "codes", evicted)
				}
			}
		}
	}()

	return func() { close(done) }
}
