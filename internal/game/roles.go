package game

import (
	"fmt"
	"math/rand"

	"github.com/ozodbekm/mafia-online/internal/models"
)

// AssignRoles shuffles the roster and deals roles. The shuffled order
// becomes the session's canonical player order. Role counts depend only
// on the player count: max(1, N/3) mafia, one detective from 5 players,
// one doctor from 7, the rest civilians. A localized summary of the
// counts is appended to the game log.
//
// Must be called with the session lock held and with every role still
// unassigned.
func AssignRoles(g *models.Game, rng *rand.Rand) {
	rng.Shuffle(len(g.Players), func(i, j int) {
		g.Players[i], g.Players[j] = g.Players[j], g.Players[i]
	})

	numPlayers := len(g.Players)
	numMafia := max(1, numPlayers/3)

	for i := 0; i < numMafia; i++ {
		g.Players[i].Role = models.RoleMafia
	}

	hasDetective := false
	hasDoctor := false

	if numPlayers >= 5 && numPlayers-numMafia > 0 {
		g.Players[numMafia].Role = models.RoleDetective
		hasDetective = true
	}

	if numPlayers >= 7 && numPlayers-numMafia > 1 {
		offset := 0
		if hasDetective {
			offset = 1
		}
		g.Players[numMafia+offset].Role = models.RoleDoctor
		hasDoctor = true
	}

	start := numMafia
	if hasDetective {
		start++
	}
	if hasDoctor {
		start++
	}
	for i := start; i < numPlayers; i++ {
		g.Players[i].Role = models.RoleCivilian
	}

	summary := fmt.Sprintf("O'yin boshlandi! %d ta mafia", numMafia)
	if hasDetective {
		summary += ", 1 ta komissar"
	}
	if hasDoctor {
		summary += ", 1 ta doktor"
	}
	if numCivilians := numPlayers - start; numCivilians > 0 {
		summary += fmt.Sprintf(", %d ta oddiy fuqaro", numCivilians)
	}
	g.AppendLog(summary)
}
