package stats

import (
	"testing"
	"time"

	"mleague-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCompareHeadToHead(t *testing.T) {
	base := time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC)
	games := []domain.Game{
		game(base, "2025/3/1(Sat)",
			hand(40000, 30000, 20000, 10000), // a beats b
			hand(20000, 45000, 20000, 15000), // b beats a
			hand(25000, 25000, 25000, 25000), // draw
		),
		game(base.Add(time.Hour), "2025/3/1(Sat)",
			hand(50000, 10000, 30000, 10000), // a beats b
		),
	}

	h2h := CompareHeadToHead("a", "b", games)

	assert.Equal(t, 4, h2h.TotalHanchans)
	assert.Equal(t, 2, h2h.P1Wins)
	assert.Equal(t, 1, h2h.P2Wins)
	assert.Equal(t, 1, h2h.Draws)
}

func TestCompareHeadToHeadIsSymmetric(t *testing.T) {
	base := time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC)
	games := []domain.Game{
		game(base, "2025/3/1(Sat)",
			hand(40000, 30000, 20000, 10000),
			hand(10000, 20000, 30000, 40000),
			hand(25000, 25000, 30000, 20000),
		),
	}

	fwd := CompareHeadToHead("a", "b", games)
	rev := CompareHeadToHead("b", "a", games)

	assert.Equal(t, fwd.P1Wins, rev.P2Wins)
	assert.Equal(t, fwd.P2Wins, rev.P1Wins)
	assert.Equal(t, fwd.Draws, rev.Draws)
	assert.Equal(t, fwd.TotalHanchans, rev.TotalHanchans)
}

func TestCompareHeadToHeadSkipsGamesWithoutBothPlayers(t *testing.T) {
	base := time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC)
	g := domain.Game{
		ID:        "g1",
		PlayerIDs: [4]string{"a", "c", "d", "e"},
		Scores: []domain.Hand{
			{RawScores: map[string]int{"a": 40000, "c": 30000, "d": 20000, "e": 10000}},
		},
		CreatedAt: base,
	}

	h2h := CompareHeadToHead("a", "b", []domain.Game{g})
	assert.Zero(t, h2h.TotalHanchans)

	rate, ok := h2h.WinRate()
	assert.False(t, ok)
	assert.Zero(t, rate)
}

func TestHeadToHeadWinRate(t *testing.T) {
	h2h := domain.HeadToHead{TotalHanchans: 4, P1Wins: 3, P2Wins: 1}
	rate, ok := h2h.WinRate()
	assert.True(t, ok)
	assert.InDelta(t, 75.0, rate, 1e-9)
}
