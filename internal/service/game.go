package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mleague-tracker/internal/constants"
	"mleague-tracker/internal/domain"
	"mleague-tracker/internal/repository"
	"mleague-tracker/internal/scoring"
	"mleague-tracker/internal/stats"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

// ErrInvalidGame wraps every game-entry validation failure so the HTTP
// layer can map them to a client error.
var ErrInvalidGame = errors.New("invalid game")

func invalidGame(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidGame, fmt.Sprintf(format, args...))
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

type HandInput struct {
	RawScores     map[string]int        `json:"rawScores"`
	YakumanEvents []domain.YakumanEvent `json:"yakumanEvents,omitempty"`
	Penalties     []domain.Penalty      `json:"penalties,omitempty"`
}

type GameInput struct {
	GameDate  string                 `json:"gameDate"`
	PlayerIDs [4]string              `json:"playerIds"`
	Settings  domain.ScoringSettings `json:"settings"`
	Hands     []HandInput            `json:"hands"`
}

// PreviewResult carries the live conversion shown during score entry.
// Points are only present once the hand is complete and balanced.
type PreviewResult struct {
	Ranks  map[string]int     `json:"ranks"`
	Points map[string]float64 `json:"points,omitempty"`
}

type GameService struct {
	games  *repository.GameRepository
	users  *repository.UserRepository
	drafts *repository.DraftRepository
	logger zerolog.Logger
}

func NewGameService(games *repository.GameRepository, users *repository.UserRepository, drafts *repository.DraftRepository, logger zerolog.Logger) *GameService {
	return &GameService{games: games, users: users, drafts: drafts, logger: logger}
}

// Preview converts a single hand for live display. Partial input is
// allowed: present players are ranked, but points are withheld until the
// hand is complete and balanced.
func (s *GameService) Preview(rawScores map[string]int, settings domain.ScoringSettings) PreviewResult {
	result := PreviewResult{Ranks: scoring.AssignRanks(rawScores)}
	if points, err := scoring.ConvertPoints(rawScores, settings); err == nil {
		result.Points = points
	}
	return result
}

// Save validates and persists a finalized game, baking converted points
// and totals in at save time.
func (s *GameService) Save(ctx context.Context, input GameInput) (*domain.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	game, err := s.buildGame(ctx, input)
	if err != nil {
		return nil, err
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate game id: %w", err)
	}
	game.ID = id
	game.CreatedAt = nowUTC()
	game.UpdatedAt = game.CreatedAt

	if err := s.games.Save(ctx, game); err != nil {
		s.logger.Error().Err(err).Str("game_id", game.ID).Msg("failed to save game")
		return nil, fmt.Errorf("failed to save game: %w", err)
	}
	return game, nil
}

// Update replaces all fields of a stored game with a re-validated,
// re-converted version.
func (s *GameService) Update(ctx context.Context, id string, input GameInput) (*domain.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	existing, err := s.games.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	game, err := s.buildGame(ctx, input)
	if err != nil {
		return nil, err
	}
	game.ID = existing.ID
	game.CreatedAt = existing.CreatedAt
	game.UpdatedAt = nowUTC()

	if err := s.games.Replace(ctx, game); err != nil {
		s.logger.Error().Err(err).Str("game_id", id).Msg("failed to replace game")
		return nil, fmt.Errorf("failed to replace game: %w", err)
	}
	return game, nil
}

func (s *GameService) Get(ctx context.Context, id string) (*domain.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.games.Get(ctx, id)
}

// List returns stored games, optionally restricted to one year.
func (s *GameService) List(ctx context.Context, year string) ([]domain.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	games, err := s.games.List(ctx)
	if err != nil {
		return nil, err
	}
	return stats.FilterByYear(games, year), nil
}

func (s *GameService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if _, err := s.games.Get(ctx, id); err != nil {
		return err
	}
	return s.games.Delete(ctx, id)
}

func (s *GameService) SaveDraft(ctx context.Context, payload json.RawMessage) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.drafts.Save(ctx, payload)
}

func (s *GameService) LoadDraft(ctx context.Context) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.drafts.Load(ctx)
}

func (s *GameService) ClearDraft(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.drafts.Clear(ctx)
}

// buildGame validates the input and produces a game with points and
// totals baked in. Raw scores remain the source of truth; the stored
// points are a projection under this game's settings.
func (s *GameService) buildGame(ctx context.Context, input GameInput) (*domain.Game, error) {
	if input.GameDate == "" {
		return nil, invalidGame("game date is required")
	}
	if len(input.Hands) == 0 {
		return nil, invalidGame("at least one hanchan is required")
	}
	if input.Settings.BasePoint <= 0 || input.Settings.ReturnPoint <= 0 {
		return nil, invalidGame("base point and return point must be positive")
	}

	seen := make(map[string]bool, constants.PlayersPerGame)
	var playerNames [4]string
	for seat, playerID := range input.PlayerIDs {
		if playerID == "" {
			return nil, invalidGame("seat %d has no player", seat+1)
		}
		if seen[playerID] {
			return nil, invalidGame("player %s appears more than once", playerID)
		}
		seen[playerID] = true

		user, err := s.users.Get(ctx, playerID)
		if err != nil {
			return nil, invalidGame("unknown player %s", playerID)
		}
		playerNames[seat] = user.Name
	}

	game := &domain.Game{
		GameDate:    input.GameDate,
		PlayerIDs:   input.PlayerIDs,
		PlayerNames: playerNames,
		Settings:    input.Settings,
		TotalPoints: make(map[string]float64, constants.PlayersPerGame),
	}

	for i, hand := range input.Hands {
		if err := s.validateHand(i, hand, seen); err != nil {
			return nil, err
		}

		points, err := scoring.ConvertPoints(hand.RawScores, input.Settings)
		if err != nil {
			return nil, fmt.Errorf("%w: hanchan %d: %s", ErrInvalidGame, i+1, err)
		}

		game.Scores = append(game.Scores, domain.Hand{
			RawScores:     hand.RawScores,
			Points:        points,
			YakumanEvents: hand.YakumanEvents,
			Penalties:     hand.Penalties,
		})
		for playerID, pts := range points {
			game.TotalPoints[playerID] += pts
		}
	}

	return game, nil
}

func (s *GameService) validateHand(index int, hand HandInput, players map[string]bool) error {
	for playerID := range hand.RawScores {
		if !players[playerID] {
			return invalidGame("hanchan %d scores unknown player %s", index+1, playerID)
		}
	}

	for _, ev := range hand.YakumanEvents {
		if !players[ev.PlayerID] {
			return invalidGame("hanchan %d yakuman event for non-participant %s", index+1, ev.PlayerID)
		}
		if len(ev.Yakumans) == 0 {
			return invalidGame("hanchan %d has an empty yakuman event", index+1)
		}
		for _, name := range ev.Yakumans {
			if !domain.IsYakuman(name) {
				return invalidGame("hanchan %d has unknown yakuman %q", index+1, name)
			}
		}
		if err := checkYakumanCompatibility(ev.Yakumans); err != nil {
			return invalidGame("hanchan %d: %s", index+1, err)
		}
	}

	for _, pen := range hand.Penalties {
		if !players[pen.PlayerID] {
			return invalidGame("hanchan %d penalty for non-participant %s", index+1, pen.PlayerID)
		}
		if pen.Type != domain.PenaltyChombo && pen.Type != domain.PenaltyAgariHouki {
			return invalidGame("hanchan %d has unknown penalty type %q", index+1, pen.Type)
		}
	}

	return nil
}

func checkYakumanCompatibility(yakumans []string) error {
	for i, a := range yakumans {
		for _, b := range yakumans[i+1:] {
			for _, banned := range domain.YakumanIncompatibility[a] {
				if banned == b {
					return fmt.Errorf("yakumans %q and %q cannot be scored together", a, b)
				}
			}
		}
	}
	return nil
}
