package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ozodbekm/mafia-online/internal/game"
)

const playerCookie = "player_id"

// writeJSON serializes v with the given status code
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps a service error kind to an HTTP status
func (ctx *Context) writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, game.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrPermissionDenied):
		status = http.StatusForbidden
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// playerID extracts the caller's identity from the session cookie.
// Returns "" when no session exists; the service treats unknown callers
// per operation.
func playerID(r *http.Request) string {
	cookie, err := r.Cookie(playerCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// setPlayerCookie binds the player identity to the browser session
func setPlayerCookie(w http.ResponseWriter, playerID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     playerCookie,
		Value:    playerID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		// Secure: true, // enable when serving over HTTPS
	})
}

// decodeBody parses a JSON request body into dst
func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
