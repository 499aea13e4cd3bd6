package trophy

import "mleague-tracker/internal/domain"

// Evaluate runs the full catalog for every player in statsByPlayer
// against the given game subset. A player with zero hanchans in the
// subset gets every trophy false: absence of qualifying evidence is a
// negative result, not an error.
func Evaluate(games []domain.Game, statsByPlayer map[string]*domain.PlayerStats) map[string]map[ID]bool {
	ctxs := buildContexts(games, statsByPlayer)

	result := make(map[string]map[ID]bool, len(statsByPlayer))
	for playerID, ctx := range ctxs {
		earned := make(map[ID]bool, len(Catalog))
		if ctx.Stats.TotalHanchans == 0 {
			for _, t := range Catalog {
				earned[t.ID] = false
			}
		} else {
			for _, t := range Catalog {
				earned[t.ID] = t.Earned(ctx)
			}
		}
		result[playerID] = earned
	}
	return result
}
