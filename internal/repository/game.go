package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"mleague-tracker/internal/db"
	"mleague-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type GameRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewGameRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *GameRepository {
	return &GameRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// Save persists a finalized game: the game row, four seat rows, and
// every hand, in one transaction.
func (r *GameRepository) Save(ctx context.Context, game *domain.Game) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	if err := qtx.InsertGame(ctx, db.InsertGameParams{
		ID:          game.ID,
		GameDate:    game.GameDate,
		BasePoint:   int64(game.Settings.BasePoint),
		ReturnPoint: int64(game.Settings.ReturnPoint),
		Uma1:        int64(game.Settings.Uma[0]),
		Uma2:        int64(game.Settings.Uma[1]),
		Uma3:        int64(game.Settings.Uma[2]),
		Uma4:        int64(game.Settings.Uma[3]),
		CreatedAt:   game.CreatedAt,
		UpdatedAt:   game.UpdatedAt,
	}); err != nil {
		return fmt.Errorf("failed to insert game %s: %w", game.ID, err)
	}

	if err := r.insertChildren(ctx, qtx, game); err != nil {
		return err
	}

	r.logger.Info().Str("game_id", game.ID).Int("hands", len(game.Scores)).Msg("game saved")
	return tx.Commit()
}

// Replace implements edit-and-resave: all fields of the stored game are
// overwritten with the new version.
func (r *GameRepository) Replace(ctx context.Context, game *domain.Game) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	if err := qtx.UpdateGame(ctx, db.UpdateGameParams{
		GameDate:    game.GameDate,
		BasePoint:   int64(game.Settings.BasePoint),
		ReturnPoint: int64(game.Settings.ReturnPoint),
		Uma1:        int64(game.Settings.Uma[0]),
		Uma2:        int64(game.Settings.Uma[1]),
		Uma3:        int64(game.Settings.Uma[2]),
		Uma4:        int64(game.Settings.Uma[3]),
		UpdatedAt:   game.UpdatedAt,
		ID:          game.ID,
	}); err != nil {
		return fmt.Errorf("failed to update game %s: %w", game.ID, err)
	}
	if err := qtx.DeleteGameChildren(ctx, game.ID); err != nil {
		return fmt.Errorf("failed to clear game %s children: %w", game.ID, err)
	}
	if err := r.insertChildren(ctx, qtx, game); err != nil {
		return err
	}

	r.logger.Info().Str("game_id", game.ID).Msg("game replaced")
	return tx.Commit()
}

func (r *GameRepository) insertChildren(ctx context.Context, qtx *db.Queries, game *domain.Game) error {
	for seat, playerID := range game.PlayerIDs {
		if err := qtx.InsertGamePlayer(ctx, db.InsertGamePlayerParams{
			GameID:      game.ID,
			Seat:        int64(seat),
			PlayerID:    playerID,
			PlayerName:  game.PlayerNames[seat],
			TotalPoints: game.TotalPoints[playerID],
		}); err != nil {
			return fmt.Errorf("failed to insert player %s: %w", playerID, err)
		}
	}

	for i, hand := range game.Scores {
		params, err := marshalHand(game.ID, int64(i), hand)
		if err != nil {
			return err
		}
		if err := qtx.InsertHand(ctx, params); err != nil {
			return fmt.Errorf("failed to insert hand %d: %w", i, err)
		}
	}
	return nil
}

func (r *GameRepository) Get(ctx context.Context, id string) (*domain.Game, error) {
	row, err := r.queries.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	players, err := r.queries.ListGamePlayers(ctx, id)
	if err != nil {
		return nil, err
	}
	hands, err := r.queries.ListHands(ctx, id)
	if err != nil {
		return nil, err
	}
	return assembleGame(row, players, hands)
}

// List returns every stored game fully assembled, oldest first. Three
// bulk queries instead of N+1 round trips per game.
func (r *GameRepository) List(ctx context.Context) ([]domain.Game, error) {
	gameRows, err := r.queries.ListGames(ctx)
	if err != nil {
		return nil, err
	}
	playerRows, err := r.queries.ListAllGamePlayers(ctx)
	if err != nil {
		return nil, err
	}
	handRows, err := r.queries.ListAllHands(ctx)
	if err != nil {
		return nil, err
	}

	playersByGame := make(map[string][]db.GamePlayer)
	for _, p := range playerRows {
		playersByGame[p.GameID] = append(playersByGame[p.GameID], p)
	}
	handsByGame := make(map[string][]db.Hand)
	for _, h := range handRows {
		handsByGame[h.GameID] = append(handsByGame[h.GameID], h)
	}

	games := make([]domain.Game, 0, len(gameRows))
	for _, row := range gameRows {
		game, err := assembleGame(row, playersByGame[row.ID], handsByGame[row.ID])
		if err != nil {
			return nil, err
		}
		games = append(games, *game)
	}
	return games, nil
}

// Delete removes the game and its seat and hand rows. Children are
// deleted explicitly rather than left to the FK cascade, which only
// fires on connections that have the foreign_keys pragma set.
func (r *GameRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	if err := qtx.DeleteGameChildren(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game %s children: %w", id, err)
	}
	if err := qtx.DeleteGame(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game %s: %w", id, err)
	}

	r.logger.Info().Str("game_id", id).Msg("game deleted")
	return tx.Commit()
}

func marshalHand(gameID string, index int64, hand domain.Hand) (db.InsertHandParams, error) {
	raw, err := json.Marshal(hand.RawScores)
	if err != nil {
		return db.InsertHandParams{}, fmt.Errorf("failed to marshal raw scores: %w", err)
	}
	points, err := json.Marshal(hand.Points)
	if err != nil {
		return db.InsertHandParams{}, fmt.Errorf("failed to marshal points: %w", err)
	}
	yakumans, err := json.Marshal(hand.YakumanEvents)
	if err != nil {
		return db.InsertHandParams{}, fmt.Errorf("failed to marshal yakuman events: %w", err)
	}
	penalties, err := json.Marshal(hand.Penalties)
	if err != nil {
		return db.InsertHandParams{}, fmt.Errorf("failed to marshal penalties: %w", err)
	}
	return db.InsertHandParams{
		GameID:        gameID,
		HandIndex:     index,
		RawScores:     string(raw),
		Points:        string(points),
		YakumanEvents: string(yakumans),
		Penalties:     string(penalties),
	}, nil
}

func assembleGame(row db.Game, players []db.GamePlayer, hands []db.Hand) (*domain.Game, error) {
	game := &domain.Game{
		ID:       row.ID,
		GameDate: row.GameDate,
		Settings: domain.ScoringSettings{
			BasePoint:   int(row.BasePoint),
			ReturnPoint: int(row.ReturnPoint),
			Uma:         [4]int{int(row.Uma1), int(row.Uma2), int(row.Uma3), int(row.Uma4)},
		},
		TotalPoints: make(map[string]float64, len(players)),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	for _, p := range players {
		if p.Seat >= 0 && p.Seat < 4 {
			game.PlayerIDs[p.Seat] = p.PlayerID
			game.PlayerNames[p.Seat] = p.PlayerName
		}
		game.TotalPoints[p.PlayerID] = p.TotalPoints
	}

	game.Scores = make([]domain.Hand, 0, len(hands))
	for _, h := range hands {
		var hand domain.Hand
		if err := json.Unmarshal([]byte(h.RawScores), &hand.RawScores); err != nil {
			return nil, fmt.Errorf("failed to unmarshal raw scores for game %s: %w", row.ID, err)
		}
		if err := json.Unmarshal([]byte(h.Points), &hand.Points); err != nil {
			return nil, fmt.Errorf("failed to unmarshal points for game %s: %w", row.ID, err)
		}
		if err := json.Unmarshal([]byte(h.YakumanEvents), &hand.YakumanEvents); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yakuman events for game %s: %w", row.ID, err)
		}
		if err := json.Unmarshal([]byte(h.Penalties), &hand.Penalties); err != nil {
			return nil, fmt.Errorf("failed to unmarshal penalties for game %s: %w", row.ID, err)
		}
		game.Scores = append(game.Scores, hand)
	}

	return game, nil
}
