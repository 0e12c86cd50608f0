package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ozodbekm/mafia-online/internal/config"
	"github.com/ozodbekm/mafia-online/internal/game"
	"github.com/ozodbekm/mafia-online/internal/store"
)

func newTestMux() *http.ServeMux {
	svc := game.NewService(store.NewRoomStore(), game.Config{
		Rand: rand.New(rand.NewSource(1)),
	})
	ctx := &Context{
		Games:  svc,
		Config: &config.Config{PublicURL: "http://mafia.test", PhaseDuration: 60 * time.Second},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return NewMux(ctx)
}

func postJSON(t *testing.T, mux *http.ServeMux, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

// createRoom drives the create handler and returns the room code and the
// host's session cookie.
func createRoom(t *testing.T, mux *http.ServeMux, name string) (string, *http.Cookie) {
	t.Helper()
	w := postJSON(t, mux, "/create_game", map[string]string{"name": name}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("create_game returned %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		RoomCode string `json:"room_code"`
		PlayerID string `json:"player_id"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	for _, c := range w.Result().Cookies() {
		if c.Name == "player_id" {
			if c.Value != resp.PlayerID {
				t.Fatalf("cookie %q does not match player id %q", c.Value, resp.PlayerID)
			}
			return resp.RoomCode, c
		}
	}
	t.Fatal("no player_id cookie set")
	return "", nil
}

func joinRoom(t *testing.T, mux *http.ServeMux, code, name string) *http.Cookie {
	t.Helper()
	w := postJSON(t, mux, "/join_game", map[string]string{"room_code": code, "name": name}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("join_game returned %d: %s", w.Code, w.Body.String())
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == "player_id" {
			return c
		}
	}
	t.Fatal("no player_id cookie set")
	return nil
}

func TestCreateAndJoinFlow(t *testing.T) {
	mux := newTestMux()
	code, hostCookie := createRoom(t, mux, "Aziza")

	joinRoom(t, mux, code, "Botir")
	joinRoom(t, mux, code, "Gulnora")

	req := httptest.NewRequest(http.MethodGet, "/game_state/"+code, nil)
	req.AddCookie(hostCookie)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("game_state returned %d: %s", w.Code, w.Body.String())
	}
	var snap struct {
		Phase   string `json:"phase"`
		Players []struct {
			Name string `json:"name"`
		} `json:"players"`
		IsHost bool `json:"is_host"`
	}
	if err := json.NewDecoder(w.Body).Decode(&snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snap.Phase != "waiting" {
		t.Errorf("phase = %q, want waiting", snap.Phase)
	}
	if len(snap.Players) != 3 {
		t.Errorf("roster length = %d, want 3", len(snap.Players))
	}
	if !snap.IsHost {
		t.Error("host flag not set for creator")
	}
}

func TestErrorStatusMapping(t *testing.T) {
	mux := newTestMux()
	code, hostCookie := createRoom(t, mux, "Aziza")
	memberCookie := joinRoom(t, mux, code, "Botir")
	joinRoom(t, mux, code, "Gulnora")

	// Unknown room -> 404.
	w := postJSON(t, mux, "/join_game", map[string]string{"room_code": "NOPE99", "name": "X"}, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown room join = %d, want 404", w.Code)
	}

	// Blank name -> 400.
	w = postJSON(t, mux, "/create_game", map[string]string{"name": "  "}, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("blank name create = %d, want 400", w.Code)
	}

	// Non-host start -> 403.
	w = postJSON(t, mux, "/start_game/"+code, nil, memberCookie)
	if w.Code != http.StatusForbidden {
		t.Errorf("non-host start = %d, want 403", w.Code)
	}

	// Host start succeeds.
	w = postJSON(t, mux, "/start_game/"+code, nil, hostCookie)
	if w.Code != http.StatusOK {
		t.Fatalf("host start = %d: %s", w.Code, w.Body.String())
	}

	// Voting outside the voting phase -> 400.
	w = postJSON(t, mux, "/vote/"+code, map[string]string{"target_id": "whoever"}, memberCookie)
	if w.Code != http.StatusBadRequest {
		t.Errorf("vote in role_reveal = %d, want 400", w.Code)
	}
}

func TestChatEndpoints(t *testing.T) {
	mux := newTestMux()
	code, hostCookie := createRoom(t, mux, "Aziza")
	memberCookie := joinRoom(t, mux, code, "Botir")

	w := postJSON(t, mux, "/chat/"+code, map[string]string{"message": "men mafiyaman"}, hostCookie)
	if w.Code != http.StatusBadRequest {
		t.Errorf("role claim post = %d, want 400", w.Code)
	}

	w = postJSON(t, mux, "/chat/"+code, map[string]string{"message": "salom hammaga"}, hostCookie)
	if w.Code != http.StatusOK {
		t.Fatalf("chat post = %d: %s", w.Code, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/chat/"+code+"?since_id=0", nil)
	req.AddCookie(memberCookie)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("chat get = %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Messages []struct {
			ID   int    `json:"id"`
			Text string `json:"text"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode chat: %v", err)
	}
	if len(resp.Messages) != 1 || resp.Messages[0].Text != "salom hammaga" {
		t.Errorf("unexpected chat payload: %+v", resp.Messages)
	}

	// Reading without a session cookie -> 403.
	req = httptest.NewRequest(http.MethodGet, "/chat/"+code, nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("anonymous chat read = %d, want 403", rec.Code)
	}
}

func TestJoinQR(t *testing.T) {
	mux := newTestMux()
	code, _ := createRoom(t, mux, "Aziza")

	req := httptest.NewRequest(http.MethodGet, "/qr/"+code, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("qr = %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %q, want image/png", ct)
	}
	if w.Body.Len() == 0 {
		t.Error("empty QR payload")
	}

	req = httptest.NewRequest(http.MethodGet, "/qr/NOPE99", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown room qr = %d, want 404", w.Code)
	}
}
