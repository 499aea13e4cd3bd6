package trophy

type ID string

type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
	TierCrystal  Tier = "crystal"
	TierChaos    Tier = "chaos"
)

// Tiers in display order. The grouping is presentational only; it never
// affects evaluation.
var Tiers = []Tier{TierBronze, TierSilver, TierGold, TierPlatinum, TierCrystal, TierChaos}

// Predicate decides one trophy for one player. Predicates are
// independent of each other and free of side effects.
type Predicate func(*PlayerContext) bool

type Trophy struct {
	ID     ID
	Tier   Tier
	Name   string
	Desc   string
	Icon   string
	Earned Predicate
}

// Catalog is the full achievement table. Rate and average thresholds
// carry minimum sample sizes so a lucky first week doesn't clear them.
var Catalog = []Trophy{
	// bronze
	{ID: "first_game", Tier: TierBronze, Name: "First Battle", Desc: "Play your first hanchan", Icon: "fa-chess-pawn",
		Earned: func(c *PlayerContext) bool { return c.Stats.TotalHanchans >= 1 }},
	{ID: "first_top", Tier: TierBronze, Name: "First Top", Desc: "Take 1st place for the first time", Icon: "fa-crown",
		Earned: func(c *PlayerContext) bool { return c.Stats.Ranks[0] >= 1 }},
	{ID: "first_rentai", Tier: TierBronze, Name: "In the Mix", Desc: "Finish 1st or 2nd", Icon: "fa-medal",
		Earned: func(c *PlayerContext) bool { return c.Stats.Ranks[0]+c.Stats.Ranks[1] >= 1 }},
	{ID: "first_last", Tier: TierBronze, Name: "Bottom of the Table", Desc: "Finish 4th", Icon: "fa-anchor",
		Earned: func(c *PlayerContext) bool { return c.Stats.Ranks[3] >= 1 }},
	{ID: "first_bust", Tier: TierBronze, Name: "Into the Red", Desc: "Go below zero points", Icon: "fa-arrow-trend-down",
		Earned: func(c *PlayerContext) bool { return c.Stats.BustedCount >= 1 }},
	{ID: "ten_hanchans", Tier: TierBronze, Name: "Getting Started", Desc: "Play 10 hanchans", Icon: "fa-seedling",
		Earned: func(c *PlayerContext) bool { return c.Stats.TotalHanchans >= 10 }},
	{ID: "five_games", Tier: TierBronze, Name: "Regular Seat", Desc: "Join 5 game sessions", Icon: "fa-chair",
		Earned: func(c *PlayerContext) bool { return c.Stats.GameCount >= 5 }},
	{ID: "five_days", Tier: TierBronze, Name: "League Member", Desc: "Play on 5 different days", Icon: "fa-calendar-check",
		Earned: func(c *PlayerContext) bool { return len(c.Days) >= 5 }},
	{ID: "score_50k", Tier: TierBronze, Name: "Fifty Grand", Desc: "Score 50,000+ in a single hanchan", Icon: "fa-coins",
		Earned: func(c *PlayerContext) bool { return c.maxSingleHand() >= 50000 }},
	{ID: "first_yakuman_chance", Tier: TierBronze, Name: "Eyewitness", Desc: "Sit at a table where a yakuman is scored", Icon: "fa-eye",
		Earned: func(c *PlayerContext) bool { return c.witnessedYakuman() }},

	// silver
	{ID: "yakuman", Tier: TierSilver, Name: "Edge of the Divine", Desc: "Score your first yakuman", Icon: "fa-dragon",
		Earned: func(c *PlayerContext) bool { return c.Stats.YakumanCount >= 1 }},
	{ID: "fifty_hanchans", Tier: TierSilver, Name: "Seasoned", Desc: "Play 50 hanchans", Icon: "fa-layer-group",
		Earned: func(c *PlayerContext) bool { return c.Stats.TotalHanchans >= 50 }},
	{ID: "ten_tops", Tier: TierSilver, Name: "Double Digits", Desc: "Take 1st place 10 times", Icon: "fa-ranking-star",
		Earned: func(c *PlayerContext) bool { return c.Stats.Ranks[0] >= 10 }},
	{ID: "rentai_streak_3", Tier: TierSilver, Name: "Hot Hand", Desc: "Finish 1st or 2nd in 3 straight hanchans", Icon: "fa-fire",
		Earned: func(c *PlayerContext) bool { return c.Stats.MaxStreak.Rentai >= 3 }},
	{ID: "no_last_streak_10", Tier: TierSilver, Name: "Never Last", Desc: "Avoid 4th place for 10 straight hanchans", Icon: "fa-shield",
		Earned: func(c *PlayerContext) bool { return c.Stats.MaxStreak.NoLast >= 10 }},
	{ID: "score_60k", Tier: TierSilver, Name: "Big Stack", Desc: "Score 60,000+ in a single hanchan", Icon: "fa-sack-dollar",
		Earned: func(c *PlayerContext) bool { return c.maxSingleHand() >= 60000 }},
	{ID: "plus_100", Tier: TierSilver, Name: "Into the Black", Desc: "Reach +100pt cumulative", Icon: "fa-chart-line",
		Earned: func(c *PlayerContext) bool { return c.Stats.TotalPoints >= 100 }},
	{ID: "three_tops_one_day", Tier: TierSilver, Name: "Day of Glory", Desc: "Take 1st place 3 times in one day", Icon: "fa-sun",
		Earned: func(c *PlayerContext) bool { return c.maxDayTops() >= 3 }},
	{ID: "avg_rank_2_2", Tier: TierSilver, Name: "Consistent", Desc: "Average rank 2.2 or better over 20+ hanchans", Icon: "fa-scale-balanced",
		Earned: func(c *PlayerContext) bool { return c.Stats.TotalHanchans >= 20 && c.Stats.AvgRank <= 2.2 }},
	{ID: "no_bust_streak_30", Tier: TierSilver, Name: "Steady Hands", Desc: "Stay above zero for 30 straight hanchans", Icon: "fa-hand",
		Earned: func(c *PlayerContext) bool { return c.Stats.MaxStreak.NoTobi >= 30 }},

	// gold
	{ID: "hundred_hanchans", Tier: TierGold, Name: "Centurion", Desc: "Play 100 hanchans", Icon: "fa-landmark",
		Earned: func(c *PlayerContext) bool { return c.Stats.TotalHanchans >= 100 }},
	{ID: "top_streak_3", Tier: TierGold, Name: "Three-peat", Desc: "Take 1st place in 3 straight hanchans", Icon: "fa-bolt",
		Earned: func(c *PlayerContext) bool { return c.Stats.MaxStreak.Top >= 3 }},
	{ID: "rentai_streak_5", Tier: TierGold, Name: "On a Roll", Desc: "Finish 1st or 2nd in 5 straight hanchans", Icon: "fa-fire-flame-curved",
		Earned: func(c *PlayerContext) bool { return c.Stats.MaxStreak.Rentai >= 5 }},
	{ID: "top_rate_30", Tier: TierGold, Name: "Front Runner", Desc: "30%+ top rate over 30+ hanchans", Icon: "fa-gauge-high",
		Earned: func(c *PlayerContext) bool { return c.Stats.TotalHanchans >= 30 && c.Stats.TopRate >= 30 }},
	{ID: "plus_500", Tier: TierGold, Name: "Point Baron", Desc: "Reach +500pt cumulative", Icon: "fa-vault",
		Earned: func(c *PlayerContext) bool { return c.Stats.TotalPoints >= 500 }},
	{ID: "score_70k", Tier: TierGold, Name: "Mountain of Chips", Desc: "Score 70,000+ in a single hanchan", Icon: "fa-mountain",
		Earned: func(c *PlayerContext) bool { return c.maxSingleHand() >= 70000 }},
	{ID: "day_plus_150", Tier: TierGold, Name: "Banner Day", Desc: "Finish a day at +150pt or better", Icon: "fa-flag-checkered",
		Earned: func(c *PlayerContext) bool { return len(c.Days) > 0 && c.maxDayPoints() >= 150 }},
	{ID: "month_15_hanchans", Tier: TierGold, Name: "Monthly Grinder", Desc: "Play 15 hanchans in a calendar month", Icon: "fa-calendar-days",
		Earned: func(c *PlayerContext) bool { return c.maxMonthHanchans() >= 15 }},
	{ID: "two_yakumans", Tier: TierGold, Name: "Twice Blessed", Desc: "Score 2 yakumans", Icon: "fa-star",
		Earned: func(c *PlayerContext) bool { return c.Stats.YakumanCount >= 2 }},
	{ID: "no_bust_streak_100", Tier: TierGold, Name: "Ironclad", Desc: "Stay above zero for 100 straight hanchans", Icon: "fa-shield-halved",
		Earned: func(c *PlayerContext) bool { return c.Stats.MaxStreak.NoTobi >= 100 }},

	// platinum
	{ID: "three_hundred_hanchans", Tier: TierPlatinum, Name: "Mainstay", Desc: "Play 300 hanchans", Icon: "fa-building-columns",
		Earned: func(c *PlayerContext) bool { return c.Stats.TotalHanchans >= 300 }},
	{ID: "top_streak_5", Tier: TierPlatinum, Name: "Untouchable", Desc: "Take 1st place in 5 straight hanchans", Icon: "fa-jet-fighter",
		Earned: func(c *PlayerContext) bool { return c.Stats.MaxStreak.Top >= 5 }},
	{ID: "rentai_streak_8", Tier: TierPlatinum, Name: "Juggernaut", Desc: "Finish 1st or 2nd in 8 straight hanchans", Icon: "fa-train",
		Earned: func(c *PlayerContext) bool { return c.Stats.MaxStreak.Rentai >= 8 }},
	{ID: "top_rate_40", Tier: TierPlatinum, Name: "Apex", Desc: "40%+ top rate over 50+ hanchans", Icon: "fa-arrow-up-right-dots",
		Earned: func(c *PlayerContext) bool { return c.Stats.TotalHanchans >= 50 && c.Stats.TopRate >= 40 }},
	{ID: "plus_1000", Tier: TierPlatinum, Name: "Four Figures", Desc: "Reach +1000pt cumulative", Icon: "fa-gem",
		Earned: func(c *PlayerContext) bool { return c.Stats.TotalPoints >= 1000 }},
	{ID: "score_80k", Tier: TierPlatinum, Name: "Avalanche", Desc: "Score 80,000+ in a single hanchan", Icon: "fa-snowflake",
		Earned: func(c *PlayerContext) bool { return c.maxSingleHand() >= 80000 }},
	{ID: "same_rank_streak_5", Tier: TierPlatinum, Name: "Creature of Habit", Desc: "Finish at the same rank 5 hanchans running", Icon: "fa-repeat",
		Earned: func(c *PlayerContext) bool { return c.Stats.MaxStreak.SameRank >= 5 }},
	{ID: "perfect_day", Tier: TierPlatinum, Name: "Perfect Day", Desc: "Win every hanchan on a 3+ hanchan day", Icon: "fa-wand-sparkles",
		Earned: func(c *PlayerContext) bool { return c.hasPerfectDay() }},
	{ID: "month_30_hanchans", Tier: TierPlatinum, Name: "Table Resident", Desc: "Play 30 hanchans in a calendar month", Icon: "fa-house-chimney",
		Earned: func(c *PlayerContext) bool { return c.maxMonthHanchans() >= 30 }},
	{ID: "three_yakumans", Tier: TierPlatinum, Name: "Thrice Blessed", Desc: "Score 3 yakumans", Icon: "fa-hat-wizard",
		Earned: func(c *PlayerContext) bool { return c.Stats.YakumanCount >= 3 }},

	// crystal
	{ID: "five_hundred_hanchans", Tier: TierCrystal, Name: "Living Legend", Desc: "Play 500 hanchans", Icon: "fa-monument",
		Earned: func(c *PlayerContext) bool { return c.Stats.TotalHanchans >= 500 }},
	{ID: "top_streak_8", Tier: TierCrystal, Name: "Divine Run", Desc: "Take 1st place in 8 straight hanchans", Icon: "fa-meteor",
		Earned: func(c *PlayerContext) bool { return c.Stats.MaxStreak.Top >= 8 }},
	{ID: "avg_rank_2_0", Tier: TierCrystal, Name: "Above the Field", Desc: "Average rank 2.0 or better over 100+ hanchans", Icon: "fa-crown",
		Earned: func(c *PlayerContext) bool { return c.Stats.TotalHanchans >= 100 && c.Stats.AvgRank <= 2.0 }},
	{ID: "plus_2000", Tier: TierCrystal, Name: "Stratosphere", Desc: "Reach +2000pt cumulative", Icon: "fa-rocket",
		Earned: func(c *PlayerContext) bool { return c.Stats.TotalPoints >= 2000 }},
	{ID: "score_100k", Tier: TierCrystal, Name: "Six Digits", Desc: "Score 100,000+ in a single hanchan", Icon: "fa-trophy",
		Earned: func(c *PlayerContext) bool { return c.maxSingleHand() >= 100000 }},
	{ID: "double_yakuman_hand", Tier: TierCrystal, Name: "Double Miracle", Desc: "Score 2 yakumans in a single hanchan", Icon: "fa-burst",
		Earned: func(c *PlayerContext) bool { return c.maxYakumansInOneHand() >= 2 }},
	{ID: "rare_yakuman", Tier: TierCrystal, Name: "Once in a Lifetime", Desc: "Score one of the rarest yakumans", Icon: "fa-comet",
		Earned: func(c *PlayerContext) bool { return c.hasRareYakuman() }},
	{ID: "nemesis", Tier: TierCrystal, Name: "Nemesis", Desc: "Beat one opponent in 60%+ of 30+ shared hanchans", Icon: "fa-skull",
		Earned: func(c *PlayerContext) bool { return c.hasNemesis() }},
	{ID: "phoenix", Tier: TierCrystal, Name: "Phoenix", Desc: "Take last on one play day and a top on the next", Icon: "fa-feather-pointed",
		Earned: func(c *PlayerContext) bool { return c.hasReversal() }},
	{ID: "no_last_streak_50", Tier: TierCrystal, Name: "Floor Is Lava", Desc: "Avoid 4th place for 50 straight hanchans", Icon: "fa-person-walking-arrow-right",
		Earned: func(c *PlayerContext) bool { return c.Stats.MaxStreak.NoLast >= 50 }},

	// chaos
	{ID: "freefall", Tier: TierChaos, Name: "Freefall", Desc: "Finish 4th in 4 straight hanchans", Icon: "fa-parachute-box",
		Earned: func(c *PlayerContext) bool { return c.consecutiveRank(4) >= 4 }},
	{ID: "demolition_day", Tier: TierChaos, Name: "Demolition Day", Desc: "Bust 3 times in a single day", Icon: "fa-house-crack",
		Earned: func(c *PlayerContext) bool { return c.maxDayBusts() >= 3 }},
	{ID: "minus_1000", Tier: TierChaos, Name: "Bottomless", Desc: "Fall to -1000pt cumulative", Icon: "fa-hole",
		Earned: func(c *PlayerContext) bool { return c.Stats.TotalPoints <= -1000 }},
	{ID: "last_rate_40", Tier: TierChaos, Name: "Cellar Dweller", Desc: "40%+ last rate over 30+ hanchans", Icon: "fa-dungeon",
		Earned: func(c *PlayerContext) bool { return c.Stats.TotalHanchans >= 30 && c.Stats.LastRate >= 40 }},
	{ID: "bust_rate_20", Tier: TierChaos, Name: "Glass Cannon", Desc: "20%+ bust rate over 30+ hanchans", Icon: "fa-wine-glass-empty",
		Earned: func(c *PlayerContext) bool { return c.Stats.TotalHanchans >= 30 && c.Stats.BustedRate >= 20 }},
	{ID: "score_minus_30k", Tier: TierChaos, Name: "Crater", Desc: "Finish a hanchan at -30,000 or worse", Icon: "fa-circle-down",
		Earned: func(c *PlayerContext) bool { return len(c.Hands) > 0 && c.minSingleHand() <= -30000 }},
	{ID: "yo_yo", Tier: TierChaos, Name: "Yo-yo", Desc: "Top, last, top in 3 straight hanchans", Icon: "fa-arrows-up-down",
		Earned: func(c *PlayerContext) bool { return c.hasYoYo() }},
	{ID: "air_game", Tier: TierChaos, Name: "Thin Air", Desc: "Play 3+ hanchans in a day and end within 1pt of zero", Icon: "fa-wind",
		Earned: func(c *PlayerContext) bool { return c.hasAirGame() }},
	{ID: "peaceful_village", Tier: TierChaos, Name: "Peaceful Village", Desc: "End a hanchan with all four players at the same score", Icon: "fa-dove",
		Earned: func(c *PlayerContext) bool { return c.hasPeacefulVillage() }},
	{ID: "rule_breaker", Tier: TierChaos, Name: "Rule Breaker", Desc: "Have a penalty on your record", Icon: "fa-gavel",
		Earned: func(c *PlayerContext) bool { return c.PenaltyCount >= 1 }},
}

// ByID indexes the catalog for lookups by the presentation layer.
var ByID = func() map[ID]Trophy {
	m := make(map[ID]Trophy, len(Catalog))
	for _, t := range Catalog {
		m[t.ID] = t
	}
	return m
}()
