package stats

import "mleague-tracker/internal/domain"

// CompareHeadToHead tallies hand-level results between two players over
// every game that contains both. Higher raw score wins the hand, equal
// is a draw.
func CompareHeadToHead(p1, p2 string, games []domain.Game) domain.HeadToHead {
	var h2h domain.HeadToHead

	for _, game := range games {
		if !containsPlayer(game, p1) || !containsPlayer(game, p2) {
			continue
		}
		for _, hand := range game.Scores {
			s1, ok1 := hand.RawScores[p1]
			s2, ok2 := hand.RawScores[p2]
			if !ok1 || !ok2 {
				continue
			}
			h2h.TotalHanchans++
			switch {
			case s1 > s2:
				h2h.P1Wins++
			case s2 > s1:
				h2h.P2Wins++
			default:
				h2h.Draws++
			}
		}
	}
	return h2h
}

func containsPlayer(game domain.Game, id string) bool {
	for _, p := range game.PlayerIDs {
		if p == id {
			return true
		}
	}
	return false
}
