package scoring

import (
	"errors"
	"fmt"

	"mleague-tracker/internal/domain"
)

// ErrUnbalancedHand is returned when a hand's raw scores do not sum to
// basePoint*4. The converter refuses rather than silently coercing.
var ErrUnbalancedHand = errors.New("raw scores do not sum to the table total")

// ValidateHand checks the closed-table invariant for a complete hand.
func ValidateHand(rawScores map[string]int, settings domain.ScoringSettings) error {
	if len(rawScores) != 4 {
		return fmt.Errorf("expected 4 raw scores, got %d", len(rawScores))
	}
	sum := 0
	for _, s := range rawScores {
		sum += s
	}
	if sum != settings.TableTotal() {
		return fmt.Errorf("%w: sum %d, want %d", ErrUnbalancedHand, sum, settings.TableTotal())
	}
	return nil
}

// ConvertPoints computes each player's point delta for one complete hand:
//
//	(rawScore - returnPoint)/1000 + sharedUma + sharedOka
//
// Uma for a tied group is the sum of the uma slots the group occupies,
// split evenly. Oka goes to the group holding 1st place, split evenly.
// Ties never break by a secondary key; they always split.
//
// The deltas of the four players sum to zero up to floating point error.
func ConvertPoints(rawScores map[string]int, settings domain.ScoringSettings) (map[string]float64, error) {
	if err := ValidateHand(rawScores, settings); err != nil {
		return nil, err
	}

	oka := settings.Oka()
	points := make(map[string]float64, len(rawScores))

	rankCursor := 0
	for _, g := range groupByScore(rawScores) {
		size := len(g.players)

		umaSum := 0
		for i := rankCursor; i < rankCursor+size; i++ {
			umaSum += settings.Uma[i]
		}
		sharedUma := float64(umaSum) / float64(size)

		sharedOka := 0.0
		if rankCursor == 0 {
			sharedOka = oka / float64(size)
		}

		for _, id := range g.players {
			points[id] = float64(g.score-settings.ReturnPoint)/1000 + sharedUma + sharedOka
		}
		rankCursor += size
	}

	return points, nil
}

// Convert returns both the point deltas and the ranks for a complete
// hand, as baked into a saved game and shown in the entry preview.
func Convert(rawScores map[string]int, settings domain.ScoringSettings) (points map[string]float64, ranks map[string]int, err error) {
	points, err = ConvertPoints(rawScores, settings)
	if err != nil {
		return nil, nil, err
	}
	return points, AssignRanks(rawScores), nil
}
