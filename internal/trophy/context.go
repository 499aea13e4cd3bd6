// Package trophy evaluates the achievement catalog against a snapshot of
// game history. Every call re-derives every predicate for every player;
// no trophy state survives between calls.
package trophy

import (
	"sort"

	"mleague-tracker/internal/domain"
	"mleague-tracker/internal/scoring"
	"mleague-tracker/internal/stats"
)

// HandResult is one hanchan from a single player's point of view.
type HandResult struct {
	Rank           int // 1-based
	RawScore       int
	Day            string
	Yakumans       []string
	WitnessYakuman bool // any player scored a yakuman this hand
	AllEqual       bool // all four raw scores identical
}

// PlayerContext carries everything a predicate may inspect: cumulative
// stats plus per-hand, per-day, per-month and per-opponent views built
// from one chronological replay of the game subset.
type PlayerContext struct {
	Stats *domain.PlayerStats

	Hands []HandResult // chronological

	Days          []string // distinct play days, chronological
	DayPoints     map[string]float64
	DayHanchans   map[string]int
	DayTops       map[string]int
	DayBusts      map[string]int
	DayHasLast    map[string]bool
	MonthHanchans map[string]int

	OppHands map[string]int
	OppWins  map[string]int

	PenaltyCount int
}

func newPlayerContext(s *domain.PlayerStats) *PlayerContext {
	return &PlayerContext{
		Stats:         s,
		DayPoints:     make(map[string]float64),
		DayHanchans:   make(map[string]int),
		DayTops:       make(map[string]int),
		DayBusts:      make(map[string]int),
		DayHasLast:    make(map[string]bool),
		MonthHanchans: make(map[string]int),
		OppHands:      make(map[string]int),
		OppWins:       make(map[string]int),
	}
}

// buildContexts replays the games once, chronologically, and fans each
// hand out to the participating players' contexts. Unknown player IDs
// are skipped, mirroring the aggregator.
func buildContexts(games []domain.Game, statsByPlayer map[string]*domain.PlayerStats) map[string]*PlayerContext {
	ctxs := make(map[string]*PlayerContext, len(statsByPlayer))
	for id, s := range statsByPlayer {
		ctxs[id] = newPlayerContext(s)
	}

	sorted := make([]domain.Game, len(games))
	copy(sorted, games)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	for _, game := range sorted {
		day := stats.DayKey(game.GameDate)
		month := stats.MonthKey(game.GameDate)

		for pID, pts := range game.TotalPoints {
			if ctx, ok := ctxs[pID]; ok {
				ctx.DayPoints[day] += pts
			}
		}

		for _, hand := range game.Scores {
			ranks := scoring.AssignRanks(hand.RawScores)

			yakumansBy := make(map[string][]string)
			for _, ev := range hand.YakumanEvents {
				yakumansBy[ev.PlayerID] = append(yakumansBy[ev.PlayerID], ev.Yakumans...)
			}
			witnessed := len(yakumansBy) > 0

			allEqual := len(hand.RawScores) == 4
			var first int
			seeded := false
			for _, s := range hand.RawScores {
				if !seeded {
					first, seeded = s, true
				} else if s != first {
					allEqual = false
				}
			}

			for pID, raw := range hand.RawScores {
				ctx, ok := ctxs[pID]
				if !ok {
					continue
				}
				rank := ranks[pID]

				if ctx.DayHanchans[day] == 0 {
					ctx.Days = append(ctx.Days, day)
				}
				ctx.DayHanchans[day]++
				ctx.MonthHanchans[month]++
				if rank == 1 {
					ctx.DayTops[day]++
				}
				if rank == 4 {
					ctx.DayHasLast[day] = true
				}
				if raw < 0 {
					ctx.DayBusts[day]++
				}

				ctx.Hands = append(ctx.Hands, HandResult{
					Rank:           rank,
					RawScore:       raw,
					Day:            day,
					Yakumans:       yakumansBy[pID],
					WitnessYakuman: witnessed,
					AllEqual:       allEqual,
				})

				for oppID, oppRaw := range hand.RawScores {
					if oppID == pID {
						continue
					}
					ctx.OppHands[oppID]++
					if raw > oppRaw {
						ctx.OppWins[oppID]++
					}
				}
			}

			for _, pen := range hand.Penalties {
				if ctx, ok := ctxs[pen.PlayerID]; ok {
					count := pen.Count
					if count == 0 {
						count = 1
					}
					ctx.PenaltyCount += count
				}
			}
		}
	}

	return ctxs
}

// maxSingleHand is the best raw score over all hands, or 0 with none.
func (c *PlayerContext) maxSingleHand() int {
	best := 0
	for i, h := range c.Hands {
		if i == 0 || h.RawScore > best {
			best = h.RawScore
		}
	}
	return best
}

func (c *PlayerContext) minSingleHand() int {
	worst := 0
	for i, h := range c.Hands {
		if i == 0 || h.RawScore < worst {
			worst = h.RawScore
		}
	}
	return worst
}

func (c *PlayerContext) hasRareYakuman() bool {
	for _, h := range c.Hands {
		for _, y := range h.Yakumans {
			if domain.RareYakumans[y] {
				return true
			}
		}
	}
	return false
}

func (c *PlayerContext) maxYakumansInOneHand() int {
	best := 0
	for _, h := range c.Hands {
		if len(h.Yakumans) > best {
			best = len(h.Yakumans)
		}
	}
	return best
}

// consecutiveRank returns the longest run of hands at exactly rank r.
func (c *PlayerContext) consecutiveRank(r int) int {
	best, run := 0, 0
	for _, h := range c.Hands {
		if h.Rank == r {
			run++
		} else {
			run = 0
		}
		if run > best {
			best = run
		}
	}
	return best
}

// hasYoYo reports a top→last→top over three consecutive hands.
func (c *PlayerContext) hasYoYo() bool {
	for i := 2; i < len(c.Hands); i++ {
		if c.Hands[i-2].Rank == 1 && c.Hands[i-1].Rank == 4 && c.Hands[i].Rank == 1 {
			return true
		}
	}
	return false
}

// hasReversal reports a play date with a last-place hand followed by the
// next play date opening with a top.
func (c *PlayerContext) hasReversal() bool {
	for i := 1; i < len(c.Days); i++ {
		if c.DayHasLast[c.Days[i-1]] && c.DayTops[c.Days[i]] > 0 {
			return true
		}
	}
	return false
}

func (c *PlayerContext) maxDayPoints() float64 {
	best := 0.0
	for i, d := range c.Days {
		if p := c.DayPoints[d]; i == 0 || p > best {
			best = p
		}
	}
	return best
}

func (c *PlayerContext) maxMonthHanchans() int {
	best := 0
	for _, n := range c.MonthHanchans {
		if n > best {
			best = n
		}
	}
	return best
}

func (c *PlayerContext) maxDayTops() int {
	best := 0
	for _, n := range c.DayTops {
		if n > best {
			best = n
		}
	}
	return best
}

func (c *PlayerContext) maxDayBusts() int {
	best := 0
	for _, n := range c.DayBusts {
		if n > best {
			best = n
		}
	}
	return best
}

// hasPerfectDay reports a day of at least 3 hanchans, all of them tops.
func (c *PlayerContext) hasPerfectDay() bool {
	for _, d := range c.Days {
		if c.DayHanchans[d] >= 3 && c.DayTops[d] == c.DayHanchans[d] {
			return true
		}
	}
	return false
}

// hasAirGame reports a day of at least 3 hanchans whose point total
// lands within one point of zero.
func (c *PlayerContext) hasAirGame() bool {
	for _, d := range c.Days {
		if c.DayHanchans[d] < 3 {
			continue
		}
		p := c.DayPoints[d]
		if p <= 1 && p >= -1 {
			return true
		}
	}
	return false
}

// hasNemesis reports a 60%+ hand win rate against some opponent over at
// least 30 shared hands.
func (c *PlayerContext) hasNemesis() bool {
	for opp, hands := range c.OppHands {
		if hands >= 30 && float64(c.OppWins[opp])/float64(hands)*100 >= 60 {
			return true
		}
	}
	return false
}

func (c *PlayerContext) hasPeacefulVillage() bool {
	for _, h := range c.Hands {
		if h.AllEqual {
			return true
		}
	}
	return false
}

func (c *PlayerContext) witnessedYakuman() bool {
	for _, h := range c.Hands {
		if h.WitnessYakuman {
			return true
		}
	}
	return false
}
