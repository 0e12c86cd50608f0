package game

import (
	"fmt"

	"github.com/ozodbekm/mafia-online/internal/models"
)

// Eliminate marks a player dead and records the narrative. Night kills
// keep the victim's role secret; vote eliminations reveal it in the log.
//
// Must be called with the session lock held.
func Eliminate(g *models.Game, playerID string, cause models.Cause) *models.Player {
	p := g.Player(playerID)
	if p == nil {
		return nil
	}
	p.Alive = false
	g.LastEliminated = p.Name
	g.LastEliminatedBy = cause
	if cause == models.CauseMafia {
		g.AppendLog(fmt.Sprintf("%s don tomonidan o'ldirildi", p.Name))
	} else {
		g.AppendLog(fmt.Sprintf("%s ovoz orqali o'yindan chiqarildi (Rol: %s)", p.Name, p.Role))
	}
	return p
}

// ResolveNight applies the mafia/doctor interaction: the victim survives
// iff the doctor protected exactly the mafia's target. The pending mafia
// target is cleared either way. Returns the eliminated player, or nil
// when there was no target or the doctor saved them.
//
// Must be called with the session lock held.
func ResolveNight(g *models.Game) *models.Player {
	if g.NightTarget == "" {
		return nil
	}

	var victim *models.Player
	if g.DoctorSave != "" && g.DoctorSave == g.NightTarget {
		if target := g.Player(g.NightTarget); target != nil {
			g.AppendLog(fmt.Sprintf("Doktor %sni qutqardi!", target.Name))
		}
	} else {
		victim = Eliminate(g, g.NightTarget, models.CauseMafia)
	}
	g.NightTarget = ""
	return victim
}
