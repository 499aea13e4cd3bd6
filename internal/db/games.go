package db

import (
	"context"
	"time"
)

type Game struct {
	ID          string
	GameDate    string
	BasePoint   int64
	ReturnPoint int64
	Uma1        int64
	Uma2        int64
	Uma3        int64
	Uma4        int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type GamePlayer struct {
	GameID      string
	Seat        int64
	PlayerID    string
	PlayerName  string
	TotalPoints float64
}

type Hand struct {
	GameID        string
	HandIndex     int64
	RawScores     string // JSON object playerID -> score
	Points        string // JSON object playerID -> points
	YakumanEvents string // JSON array
	Penalties     string // JSON array
}

type InsertGameParams struct {
	ID          string
	GameDate    string
	BasePoint   int64
	ReturnPoint int64
	Uma1        int64
	Uma2        int64
	Uma3        int64
	Uma4        int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (q *Queries) InsertGame(ctx context.Context, arg InsertGameParams) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO games (id, game_date, base_point, return_point, uma_1, uma_2, uma_3, uma_4, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		arg.ID, arg.GameDate, arg.BasePoint, arg.ReturnPoint,
		arg.Uma1, arg.Uma2, arg.Uma3, arg.Uma4, arg.CreatedAt, arg.UpdatedAt)
	return err
}

type UpdateGameParams struct {
	GameDate    string
	BasePoint   int64
	ReturnPoint int64
	Uma1        int64
	Uma2        int64
	Uma3        int64
	Uma4        int64
	UpdatedAt   time.Time
	ID          string
}

func (q *Queries) UpdateGame(ctx context.Context, arg UpdateGameParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE games SET game_date = ?, base_point = ?, return_point = ?,
		 uma_1 = ?, uma_2 = ?, uma_3 = ?, uma_4 = ?, updated_at = ?
		 WHERE id = ?`,
		arg.GameDate, arg.BasePoint, arg.ReturnPoint,
		arg.Uma1, arg.Uma2, arg.Uma3, arg.Uma4, arg.UpdatedAt, arg.ID)
	return err
}

func (q *Queries) GetGame(ctx context.Context, id string) (Game, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT id, game_date, base_point, return_point, uma_1, uma_2, uma_3, uma_4, created_at, updated_at
		 FROM games WHERE id = ?`, id)
	var g Game
	err := row.Scan(&g.ID, &g.GameDate, &g.BasePoint, &g.ReturnPoint,
		&g.Uma1, &g.Uma2, &g.Uma3, &g.Uma4, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

func (q *Queries) ListGames(ctx context.Context) ([]Game, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, game_date, base_point, return_point, uma_1, uma_2, uma_3, uma_4, created_at, updated_at
		 FROM games ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []Game
	for rows.Next() {
		var g Game
		if err := rows.Scan(&g.ID, &g.GameDate, &g.BasePoint, &g.ReturnPoint,
			&g.Uma1, &g.Uma2, &g.Uma3, &g.Uma4, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

func (q *Queries) DeleteGame(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, id)
	return err
}

// DeleteGameChildren clears a game's players and hands ahead of an
// edit-and-resave, which replaces all fields.
func (q *Queries) DeleteGameChildren(ctx context.Context, gameID string) error {
	if _, err := q.db.ExecContext(ctx, `DELETE FROM game_players WHERE game_id = ?`, gameID); err != nil {
		return err
	}
	_, err := q.db.ExecContext(ctx, `DELETE FROM hands WHERE game_id = ?`, gameID)
	return err
}

type InsertGamePlayerParams struct {
	GameID      string
	Seat        int64
	PlayerID    string
	PlayerName  string
	TotalPoints float64
}

func (q *Queries) InsertGamePlayer(ctx context.Context, arg InsertGamePlayerParams) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO game_players (game_id, seat, player_id, player_name, total_points)
		 VALUES (?, ?, ?, ?, ?)`,
		arg.GameID, arg.Seat, arg.PlayerID, arg.PlayerName, arg.TotalPoints)
	return err
}

func (q *Queries) ListGamePlayers(ctx context.Context, gameID string) ([]GamePlayer, error) {
	return q.scanGamePlayers(ctx,
		`SELECT game_id, seat, player_id, player_name, total_points
		 FROM game_players WHERE game_id = ? ORDER BY seat`, gameID)
}

func (q *Queries) ListAllGamePlayers(ctx context.Context) ([]GamePlayer, error) {
	return q.scanGamePlayers(ctx,
		`SELECT game_id, seat, player_id, player_name, total_points
		 FROM game_players ORDER BY game_id, seat`)
}

func (q *Queries) scanGamePlayers(ctx context.Context, query string, args ...any) ([]GamePlayer, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []GamePlayer
	for rows.Next() {
		var p GamePlayer
		if err := rows.Scan(&p.GameID, &p.Seat, &p.PlayerID, &p.PlayerName, &p.TotalPoints); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// ListGameIDsForPlayer backs the delete-user cascade.
func (q *Queries) ListGameIDsForPlayer(ctx context.Context, playerID string) ([]string, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT DISTINCT game_id FROM game_players WHERE player_id = ?`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

type InsertHandParams struct {
	GameID        string
	HandIndex     int64
	RawScores     string
	Points        string
	YakumanEvents string
	Penalties     string
}

func (q *Queries) InsertHand(ctx context.Context, arg InsertHandParams) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO hands (game_id, hand_index, raw_scores, points, yakuman_events, penalties)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		arg.GameID, arg.HandIndex, arg.RawScores, arg.Points, arg.YakumanEvents, arg.Penalties)
	return err
}

func (q *Queries) ListHands(ctx context.Context, gameID string) ([]Hand, error) {
	return q.scanHands(ctx,
		`SELECT game_id, hand_index, raw_scores, points, yakuman_events, penalties
		 FROM hands WHERE game_id = ? ORDER BY hand_index`, gameID)
}

func (q *Queries) ListAllHands(ctx context.Context) ([]Hand, error) {
	return q.scanHands(ctx,
		`SELECT game_id, hand_index, raw_scores, points, yakuman_events, penalties
		 FROM hands ORDER BY game_id, hand_index`)
}

func (q *Queries) scanHands(ctx context.Context, query string, args ...any) ([]Hand, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hands []Hand
	for rows.Next() {
		var h Hand
		if err := rows.Scan(&h.GameID, &h.HandIndex, &h.RawScores, &h.Points, &h.YakumanEvents, &h.Penalties); err != nil {
			return nil, err
		}
		hands = append(hands, h)
	}
	return hands, rows.Err()
}
