package service

import (
	"context"
	"sort"

	"mleague-tracker/internal/constants"
	"mleague-tracker/internal/domain"
	"mleague-tracker/internal/repository"
	"mleague-tracker/internal/stats"
	"mleague-tracker/internal/trophy"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// LeagueService is the recomputation pipeline over the persisted
// snapshot: stats = aggregate(games, users), trophies = evaluate(games,
// stats). Nothing derived is ever stored; every call recomputes from the
// current data.
type LeagueService struct {
	games  *repository.GameRepository
	users  *repository.UserRepository
	logger zerolog.Logger
}

func NewLeagueService(games *repository.GameRepository, users *repository.UserRepository, logger zerolog.Logger) *LeagueService {
	return &LeagueService{games: games, users: users, logger: logger}
}

// snapshot loads users and games concurrently and applies the year
// filter. The result is the stable input every derived computation
// works from.
func (s *LeagueService) snapshot(ctx context.Context, year string) ([]domain.Game, []domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	var (
		games []domain.Game
		users []domain.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		games, err = s.games.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = s.users.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return stats.FilterByYear(games, year), users, nil
}

// Leaderboard returns every player's stats for the period, sorted by
// total points. Zero-game players appear with zero-valued entries.
func (s *LeagueService) Leaderboard(ctx context.Context, year string) ([]*domain.PlayerStats, error) {
	games, users, err := s.snapshot(ctx, year)
	if err != nil {
		return nil, err
	}

	byPlayer := stats.Aggregate(games, users)
	board := make([]*domain.PlayerStats, 0, len(byPlayer))
	for _, ps := range byPlayer {
		board = append(board, ps)
	}
	sort.SliceStable(board, func(i, j int) bool {
		if board[i].TotalPoints != board[j].TotalPoints {
			return board[i].TotalPoints > board[j].TotalPoints
		}
		return board[i].Name < board[j].Name
	})

	s.logger.Debug().Str("year", year).Int("players", len(board)).Int("games", len(games)).Msg("leaderboard computed")
	return board, nil
}

// Trophies evaluates the full catalog for every player over the period.
func (s *LeagueService) Trophies(ctx context.Context, year string) (map[string]map[trophy.ID]bool, error) {
	games, users, err := s.snapshot(ctx, year)
	if err != nil {
		return nil, err
	}

	byPlayer := stats.Aggregate(games, users)
	return trophy.Evaluate(games, byPlayer), nil
}

// PlayerOverview is the personal-stats view: one player's stats plus
// their earned trophies.
type PlayerOverview struct {
	Stats    *domain.PlayerStats `json:"stats"`
	Trophies map[trophy.ID]bool  `json:"trophies"`
}

func (s *LeagueService) PlayerOverview(ctx context.Context, playerID, year string) (*PlayerOverview, error) {
	if _, err := s.users.Get(ctx, playerID); err != nil {
		return nil, err
	}

	games, users, err := s.snapshot(ctx, year)
	if err != nil {
		return nil, err
	}

	byPlayer := stats.Aggregate(games, users)
	trophies := trophy.Evaluate(games, byPlayer)
	return &PlayerOverview{
		Stats:    byPlayer[playerID],
		Trophies: trophies[playerID],
	}, nil
}

// HeadToHead tallies hand-level results between two players.
func (s *LeagueService) HeadToHead(ctx context.Context, p1, p2, year string) (*domain.HeadToHead, error) {
	if _, err := s.users.Get(ctx, p1); err != nil {
		return nil, err
	}
	if _, err := s.users.Get(ctx, p2); err != nil {
		return nil, err
	}

	games, _, err := s.snapshot(ctx, year)
	if err != nil {
		return nil, err
	}

	h2h := stats.CompareHeadToHead(p1, p2, games)
	return &h2h, nil
}

// Years lists the years with recorded games, newest first.
func (s *LeagueService) Years(ctx context.Context) ([]string, error) {
	games, _, err := s.snapshot(ctx, "")
	if err != nil {
		return nil, err
	}
	return stats.GameYears(games), nil
}
