package domain

import (
	"time"
)

type User struct {
	ID        string
	Name      string
	PhotoURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScoringSettings is snapshotted per game, so historical games keep the
// rules that were in effect when they were played.
type ScoringSettings struct {
	BasePoint   int    `json:"basePoint"`
	ReturnPoint int    `json:"returnPoint"`
	Uma         [4]int `json:"uma"` // 1st..4th place
}

// Oka is the pooled bonus funded by the base/return gap, awarded to 1st.
func (s ScoringSettings) Oka() float64 {
	return float64((s.ReturnPoint-s.BasePoint)*4) / 1000
}

// TableTotal is the sum all four raw scores of a complete hand must hit.
func (s ScoringSettings) TableTotal() int {
	return s.BasePoint * 4
}

type YakumanEvent struct {
	PlayerID string   `json:"playerId"`
	Yakumans []string `json:"yakumans"`
}

type PenaltyType string

const (
	PenaltyChombo     PenaltyType = "chombo"
	PenaltyAgariHouki PenaltyType = "agariHouki"
)

type Penalty struct {
	PlayerID string      `json:"playerId"`
	Type     PenaltyType `json:"type"`
	Reason   string      `json:"reason"`
	Count    int         `json:"count"`
}

// Hand is one hanchan's worth of table scores. RawScores are the source
// of truth; Points are a rule-dependent projection baked in at save time.
type Hand struct {
	RawScores     map[string]int     `json:"rawScores"`
	Points        map[string]float64 `json:"points"`
	YakumanEvents []YakumanEvent     `json:"yakumanEvents,omitempty"`
	Penalties     []Penalty          `json:"penalties,omitempty"`
}

type Game struct {
	ID          string
	GameDate    string // "YYYY/M/D(aaa)" display string, also the grouping key
	PlayerIDs   [4]string
	PlayerNames [4]string // denormalized snapshot, updated on rename
	Settings    ScoringSettings
	Scores      []Hand
	TotalPoints map[string]float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Streaks struct {
	Rentai   int `json:"rentai"`
	NoTobi   int `json:"noTobi"`
	NoLast   int `json:"noLast"`
	Top      int `json:"top"`
	SameRank int `json:"sameRank"`
}

// PlayerStats is derived wholesale from a game subset and never persisted.
type PlayerStats struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PhotoURL      string  `json:"photoURL,omitempty"`
	TotalPoints   float64 `json:"totalPoints"`
	GameCount     int     `json:"gameCount"`
	TotalHanchans int     `json:"totalHanchans"`
	Ranks         [4]int  `json:"ranks"` // index 0 = 1st place count
	BustedCount   int     `json:"bustedCount"`
	TotalRawScore int     `json:"totalRawScore"`
	YakumanCount  int     `json:"yakumanCount"`
	MaxStreak     Streaks `json:"maxStreak"`
	AvgRank       float64 `json:"avgRank"`
	TopRate       float64 `json:"topRate"`
	RentaiRate    float64 `json:"rentaiRate"`
	LastRate      float64 `json:"lastRate"`
	BustedRate    float64 `json:"bustedRate"`
	AvgRawScore   int     `json:"avgRawScore"`
}

type HeadToHead struct {
	P1Wins        int `json:"p1Wins"`
	P2Wins        int `json:"p2Wins"`
	Draws         int `json:"draws"`
	TotalHanchans int `json:"totalHanchans"`
}

// WinRate is P1's hand-level win percentage. Zero shared hands means
// "no data", reported as (0, false) instead of dividing 0 by 0.
func (h HeadToHead) WinRate() (float64, bool) {
	if h.TotalHanchans == 0 {
		return 0, false
	}
	return float64(h.P1Wins) / float64(h.TotalHanchans) * 100, true
}
