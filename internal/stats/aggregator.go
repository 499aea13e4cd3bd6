// Package stats derives per-player statistics from a snapshot of game
// history. Everything here is a pure function of its inputs: the
// surrounding layer recomputes wholesale whenever its data changes,
// nothing is cached or carried between calls.
package stats

import (
	"math"
	"sort"

	"mleague-tracker/internal/domain"
	"mleague-tracker/internal/scoring"
)

type streakState struct {
	current  domain.Streaks
	lastRank int // 0-based; -1 before the first ranked hand
}

// Aggregate replays games in chronological order and builds a stats
// record per user. Users without games get zero-valued entries. Ranks
// are re-derived from raw scores rather than read from stored points, so
// historical statistics stay independent of whichever uma/oka settings
// produced a given game's points.
//
// Unknown player IDs inside a game are skipped; one dangling reference
// must not poison everyone else's stats.
func Aggregate(games []domain.Game, users []domain.User) map[string]*domain.PlayerStats {
	result := make(map[string]*domain.PlayerStats, len(users))
	streaks := make(map[string]*streakState, len(users))
	for _, u := range users {
		result[u.ID] = &domain.PlayerStats{ID: u.ID, Name: u.Name, PhotoURL: u.PhotoURL}
		streaks[u.ID] = &streakState{lastRank: -1}
	}

	sorted := make([]domain.Game, len(games))
	copy(sorted, games)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	for _, game := range sorted {
		for _, pID := range game.PlayerIDs {
			if s, ok := result[pID]; ok {
				s.GameCount++
			}
		}
		for pID, pts := range game.TotalPoints {
			if s, ok := result[pID]; ok {
				s.TotalPoints += pts
			}
		}

		for _, hand := range game.Scores {
			accumulateHand(hand, result, streaks)
		}
	}

	for _, s := range result {
		finalizeRates(s)
	}
	return result
}

// accumulateHand applies one hanchan, in stored order, to every tracked
// player that appears in it.
func accumulateHand(hand domain.Hand, result map[string]*domain.PlayerStats, streaks map[string]*streakState) {
	for pID, raw := range hand.RawScores {
		s, ok := result[pID]
		if !ok {
			continue
		}
		st := streaks[pID]
		s.TotalRawScore += raw
		if raw < 0 {
			s.BustedCount++
			st.current.NoTobi = 0
		} else {
			st.current.NoTobi++
		}
		s.MaxStreak.NoTobi = max(s.MaxStreak.NoTobi, st.current.NoTobi)
	}

	ranks := scoring.AssignRanks(hand.RawScores)
	for pID, rank := range ranks {
		s, ok := result[pID]
		if !ok {
			continue
		}
		st := streaks[pID]
		idx := rank - 1
		s.Ranks[idx]++

		if idx <= 1 {
			st.current.Rentai++
		} else {
			st.current.Rentai = 0
		}
		if idx == 0 {
			st.current.Top++
		} else {
			st.current.Top = 0
		}
		if idx == 3 {
			st.current.NoLast = 0
		} else {
			st.current.NoLast++
		}
		// First occurrence counts as a streak of 1, not 0.
		if st.lastRank == idx {
			st.current.SameRank++
		} else {
			st.current.SameRank = 1
		}
		st.lastRank = idx

		s.MaxStreak.Rentai = max(s.MaxStreak.Rentai, st.current.Rentai)
		s.MaxStreak.Top = max(s.MaxStreak.Top, st.current.Top)
		s.MaxStreak.NoLast = max(s.MaxStreak.NoLast, st.current.NoLast)
		s.MaxStreak.SameRank = max(s.MaxStreak.SameRank, st.current.SameRank)
	}

	for pID := range hand.RawScores {
		if s, ok := result[pID]; ok {
			s.TotalHanchans++
		}
	}

	for _, ev := range hand.YakumanEvents {
		if s, ok := result[ev.PlayerID]; ok {
			s.YakumanCount += len(ev.Yakumans)
		}
	}
}

func finalizeRates(s *domain.PlayerStats) {
	if s.TotalHanchans == 0 {
		return
	}
	n := float64(s.TotalHanchans)
	weighted := 0
	for i, count := range s.Ranks {
		weighted += count * (i + 1)
	}
	s.AvgRank = float64(weighted) / n
	s.TopRate = float64(s.Ranks[0]) / n * 100
	s.RentaiRate = float64(s.Ranks[0]+s.Ranks[1]) / n * 100
	s.LastRate = float64(s.Ranks[3]) / n * 100
	s.BustedRate = float64(s.BustedCount) / n * 100
	s.AvgRawScore = int(math.Round(float64(s.TotalRawScore)/n/100)) * 100
}
