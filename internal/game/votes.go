package game

import "github.com/ozodbekm/mafia-online/internal/models"

// CountVotes returns the elimination target for the current ballots.
// Ballots are replayed in cast order and the winner is the first target
// to reach the final maximum count, so ties resolve deterministically by
// vote submission order rather than by map iteration. Returns false when
// nobody voted.
//
// Must be called with the session lock held.
func CountVotes(g *models.Game) (string, bool) {
	if len(g.VoteOrder) == 0 {
		return "", false
	}

	counts := make(map[string]int, len(g.Votes))
	leader := ""
	best := 0
	for _, voter := range g.VoteOrder {
		target, ok := g.Votes[voter]
		if !ok {
			continue
		}
		counts[target]++
		if counts[target] > best {
			best = counts[target]
			leader = target
		}
	}
	return leader, leader != ""
}
