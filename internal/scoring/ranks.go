// Package scoring converts raw table scores into ranks and point deltas
// under a game's scoring settings.
package scoring

import "sort"

// AssignRanks groups tied scores and assigns competition ranks: tied
// players share the better rank and the next group's rank skips past the
// whole tie (two tied for 1st, next gets 3rd). Ranks are 1-based.
//
// Callers previewing a draft hand may pass fewer than four scores; only
// the players present are ranked.
func AssignRanks(scores map[string]int) map[string]int {
	groups := groupByScore(scores)

	ranks := make(map[string]int, len(scores))
	rankCursor := 0
	for _, g := range groups {
		for _, id := range g.players {
			ranks[id] = rankCursor + 1
		}
		rankCursor += len(g.players)
	}
	return ranks
}

type scoreGroup struct {
	score   int
	players []string
}

// groupByScore buckets players by identical raw score and returns the
// groups in descending score order. Player order inside a group is
// sorted for determinism; rank and point math never depend on it.
func groupByScore(scores map[string]int) []scoreGroup {
	byScore := make(map[int][]string)
	for id, s := range scores {
		byScore[s] = append(byScore[s], id)
	}

	groups := make([]scoreGroup, 0, len(byScore))
	for s, players := range byScore {
		sort.Strings(players)
		groups = append(groups, scoreGroup{score: s, players: players})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].score > groups[j].score })
	return groups
}
