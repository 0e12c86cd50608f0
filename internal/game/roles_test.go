package game

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/ozodbekm/mafia-online/internal/models"
)

func makeRoster(n int) *models.Game {
	g := &models.Game{
		Code:             "TEST42",
		Votes:            make(map[string]string),
		DetectiveResults: make(map[string][]models.DetectiveResult),
	}
	for i := 0; i < n; i++ {
		g.Players = append(g.Players, &models.Player{
			ID:    fmt.Sprintf("p%d", i),
			Name:  fmt.Sprintf("Player%d", i),
			Alive: true,
		})
	}
	return g
}

func countRoles(g *models.Game) map[models.Role]int {
	counts := make(map[models.Role]int)
	for _, p := range g.Players {
		counts[p.Role]++
	}
	return counts
}

func TestAssignRolesCounts(t *testing.T) {
	tests := []struct {
		players   int
		mafia     int
		detective int
		doctor    int
		civilian  int
	}{
		{players: 3, mafia: 1, detective: 0, doctor: 0, civilian: 2},
		{players: 4, mafia: 1, detective: 0, doctor: 0, civilian: 3},
		{players: 5, mafia: 1, detective: 1, doctor: 0, civilian: 3},
		{players: 6, mafia: 2, detective: 1, doctor: 0, civilian: 3},
		{players: 7, mafia: 2, detective: 1, doctor: 1, civilian: 3},
		{players: 8, mafia: 2, detective: 1, doctor: 1, civilian: 4},
		{players: 9, mafia: 3, detective: 1, doctor: 1, civilian: 4},
		{players: 10, mafia: 3, detective: 1, doctor: 1, civilian: 5},
		{players: 12, mafia: 4, detective: 1, doctor: 1, civilian: 6},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d players", tt.players), func(t *testing.T) {
			g := makeRoster(tt.players)
			AssignRoles(g, rand.New(rand.NewSource(1)))

			counts := countRoles(g)
			if counts[models.RoleMafia] != tt.mafia {
				t.Errorf("mafia = %d, want %d", counts[models.RoleMafia], tt.mafia)
			}
			if counts[models.RoleDetective] != tt.detective {
				t.Errorf("detective = %d, want %d", counts[models.RoleDetective], tt.detective)
			}
			if counts[models.RoleDoctor] != tt.doctor {
				t.Errorf("doctor = %d, want %d", counts[models.RoleDoctor], tt.doctor)
			}
			if counts[models.RoleCivilian] != tt.civilian {
				t.Errorf("civilian = %d, want %d", counts[models.RoleCivilian], tt.civilian)
			}
			if counts[models.RoleUnassigned] != 0 {
				t.Errorf("unassigned = %d, want 0", counts[models.RoleUnassigned])
			}
		})
	}
}

func TestAssignRolesSeededBinding(t *testing.T) {
	// Same seed, same roster: the player order and the player->role
	// binding must be identical.
	first := makeRoster(9)
	second := makeRoster(9)
	AssignRoles(first, rand.New(rand.NewSource(42)))
	AssignRoles(second, rand.New(rand.NewSource(42)))

	for i := range first.Players {
		if first.Players[i].ID != second.Players[i].ID {
			t.Fatalf("order differs at %d: %s vs %s", i, first.Players[i].ID, second.Players[i].ID)
		}
		if first.Players[i].Role != second.Players[i].Role {
			t.Fatalf("role differs for %s: %s vs %s", first.Players[i].ID, first.Players[i].Role, second.Players[i].Role)
		}
	}
}

func TestAssignRolesLogsSummary(t *testing.T) {
	g := makeRoster(7)
	AssignRoles(g, rand.New(rand.NewSource(1)))

	if len(g.GameLog) != 1 {
		t.Fatalf("game log has %d entries, want 1", len(g.GameLog))
	}
	summary := g.GameLog[0]
	if !strings.HasPrefix(summary, "O'yin boshlandi! 2 ta mafia") {
		t.Errorf("unexpected summary: %q", summary)
	}
	if !strings.Contains(summary, "1 ta komissar") || !strings.Contains(summary, "1 ta doktor") {
		t.Errorf("summary missing special roles: %q", summary)
	}
	if !strings.Contains(summary, "3 ta oddiy fuqaro") {
		t.Errorf("summary missing civilian count: %q", summary)
	}
}
