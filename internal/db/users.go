package db

import (
	"context"
	"time"
)

type User struct {
	ID        string
	Name      string
	PhotoURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateUserParams struct {
	ID        string
	Name      string
	PhotoURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO users (id, name, photo_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		arg.ID, arg.Name, arg.PhotoURL, arg.CreatedAt, arg.UpdatedAt)
	return err
}

func (q *Queries) GetUser(ctx context.Context, id string) (User, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT id, name, photo_url, created_at, updated_at FROM users WHERE id = ?`, id)
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.PhotoURL, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (q *Queries) GetUserByName(ctx context.Context, name string) (User, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT id, name, photo_url, created_at, updated_at FROM users WHERE name = ?`, name)
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.PhotoURL, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (q *Queries) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, name, photo_url, created_at, updated_at FROM users ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.PhotoURL, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

type UpdateUserNameParams struct {
	Name      string
	UpdatedAt time.Time
	ID        string
}

func (q *Queries) UpdateUserName(ctx context.Context, arg UpdateUserNameParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE users SET name = ?, updated_at = ? WHERE id = ?`,
		arg.Name, arg.UpdatedAt, arg.ID)
	return err
}

type UpdateUserPhotoParams struct {
	PhotoURL  string
	UpdatedAt time.Time
	ID        string
}

func (q *Queries) UpdateUserPhoto(ctx context.Context, arg UpdateUserPhotoParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE users SET photo_url = ?, updated_at = ? WHERE id = ?`,
		arg.PhotoURL, arg.UpdatedAt, arg.ID)
	return err
}

func (q *Queries) DeleteUser(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	return err
}

// UpdatePlayerNameInGames refreshes the denormalized name snapshot in
// historical games after a rename.
type UpdatePlayerNameInGamesParams struct {
	PlayerName string
	PlayerID   string
}

func (q *Queries) UpdatePlayerNameInGames(ctx context.Context, arg UpdatePlayerNameInGamesParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE game_players SET player_name = ? WHERE player_id = ?`,
		arg.PlayerName, arg.PlayerID)
	return err
}
