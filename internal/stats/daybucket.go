package stats

import (
	"strconv"
	"strings"

	"mleague-tracker/internal/domain"
)

// Date bucketing works on the gameDate display string, not parsed time.
// The leading "YYYY/M/D" substring before the weekday suffix is the
// canonical key; no timezone-aware interpretation is attempted. Known
// fragility at leap-year/timezone boundaries, kept on purpose so keys
// match what was entered.

// DayKey returns the "YYYY/M/D" portion of a gameDate string.
func DayKey(gameDate string) string {
	if i := strings.IndexByte(gameDate, '('); i >= 0 {
		return gameDate[:i]
	}
	return gameDate
}

// MonthKey returns the "YYYY/M" portion of a gameDate string.
func MonthKey(gameDate string) string {
	day := DayKey(gameDate)
	parts := strings.SplitN(day, "/", 3)
	if len(parts) < 2 {
		return day
	}
	return parts[0] + "/" + parts[1]
}

// YearOf returns the year a game belongs to: the first four characters
// of gameDate when they parse as a number, otherwise the createdAt year.
func YearOf(game domain.Game) string {
	if len(game.GameDate) >= 4 {
		year := game.GameDate[:4]
		if _, err := strconv.Atoi(year); err == nil {
			return year
		}
	}
	return strconv.Itoa(game.CreatedAt.Year())
}

// GameYears lists the distinct years present in a game set, newest first.
func GameYears(games []domain.Game) []string {
	seen := make(map[string]bool)
	var years []string
	for _, g := range games {
		y := YearOf(g)
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	for i := 0; i < len(years); i++ {
		for j := i + 1; j < len(years); j++ {
			if years[j] > years[i] {
				years[i], years[j] = years[j], years[i]
			}
		}
	}
	return years
}

// FilterByYear keeps the games belonging to one year. An empty year
// keeps everything.
func FilterByYear(games []domain.Game, year string) []domain.Game {
	if year == "" {
		return games
	}
	var out []domain.Game
	for _, g := range games {
		if YearOf(g) == year {
			out = append(out, g)
		}
	}
	return out
}
