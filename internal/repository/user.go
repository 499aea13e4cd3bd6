package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"mleague-tracker/internal/db"
	"mleague-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type UserRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewUserRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func toDomainUser(u db.User) domain.User {
	return domain.User{
		ID:        u.ID,
		Name:      u.Name,
		PhotoURL:  u.PhotoURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	return r.queries.CreateUser(ctx, db.CreateUserParams{
		ID:        user.ID,
		Name:      user.Name,
		PhotoURL:  user.PhotoURL,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
}

func (r *UserRepository) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := r.queries.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	user := toDomainUser(u)
	return &user, nil
}

func (r *UserRepository) GetByName(ctx context.Context, name string) (*domain.User, error) {
	u, err := r.queries.GetUserByName(ctx, name)
	if err != nil {
		return nil, err
	}
	user := toDomainUser(u)
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.queries.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, len(rows))
	for i, u := range rows {
		users[i] = toDomainUser(u)
	}
	return users, nil
}

// Rename updates the user's name and the denormalized player_name
// snapshots in historical games, atomically.
func (r *UserRepository) Rename(ctx context.Context, id, newName string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	if err := qtx.UpdateUserName(ctx, db.UpdateUserNameParams{
		Name:      newName,
		UpdatedAt: time.Now(),
		ID:        id,
	}); err != nil {
		return fmt.Errorf("failed to rename user %s: %w", id, err)
	}
	if err := qtx.UpdatePlayerNameInGames(ctx, db.UpdatePlayerNameInGamesParams{
		PlayerName: newName,
		PlayerID:   id,
	}); err != nil {
		return fmt.Errorf("failed to cascade rename into games: %w", err)
	}

	r.logger.Info().Str("user_id", id).Str("name", newName).Msg("user renamed")
	return tx.Commit()
}

func (r *UserRepository) SetPhotoURL(ctx context.Context, id, photoURL string) error {
	return r.queries.UpdateUserPhoto(ctx, db.UpdateUserPhotoParams{
		PhotoURL:  photoURL,
		UpdatedAt: time.Now(),
		ID:        id,
	})
}

// Delete removes the user and hard-deletes every game the user appears
// in, hands and seat rows included.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	gameIDs, err := qtx.ListGameIDsForPlayer(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list games for user %s: %w", id, err)
	}
	for _, gameID := range gameIDs {
		if err := qtx.DeleteGameChildren(ctx, gameID); err != nil {
			return fmt.Errorf("failed to delete game %s children: %w", gameID, err)
		}
		if err := qtx.DeleteGame(ctx, gameID); err != nil {
			return fmt.Errorf("failed to delete game %s: %w", gameID, err)
		}
	}
	if err := qtx.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}

	r.logger.Info().Str("user_id", id).Int("games_deleted", len(gameIDs)).Msg("user deleted")
	return tx.Commit()
}
