package game

import "github.com/ozodbekm/mafia-online/internal/models"

// EvaluateWinner applies the mafia-parity rule to the roster: civilians
// win once no mafia is alive, mafia wins on reaching parity with the
// living good players (a tie counts as a mafia win).
func EvaluateWinner(players []*models.Player) models.Winner {
	aliveMafia := 0
	aliveGood := 0
	for _, p := range players {
		if !p.Alive {
			continue
		}
		switch {
		case p.Role == models.RoleMafia:
			aliveMafia++
		case p.Role.IsGood():
			aliveGood++
		}
	}

	if aliveMafia == 0 {
		return models.WinnerCivilian
	}
	if aliveMafia >= aliveGood {
		return models.WinnerMafia
	}
	return models.WinnerNone
}
