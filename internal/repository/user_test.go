package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"mleague-tracker/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryCreateAndGet(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	users := NewUserRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, users.Create(ctx, &domain.User{
		ID:        "u1",
		Name:      "Akagi",
		PhotoURL:  "https://example.com/akagi.png",
		CreatedAt: now,
		UpdatedAt: now,
	}))

	got, err := users.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Akagi", got.Name)
	assert.Equal(t, "https://example.com/akagi.png", got.PhotoURL)

	byName, err := users.GetByName(ctx, "Akagi")
	require.NoError(t, err)
	assert.Equal(t, "u1", byName.ID)

	_, err = users.Get(ctx, "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUserRepositoryList(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	users := NewUserRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	seedUsers(t, users, "u1", "u2", "u3")

	list, err := users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestUserRepositoryRenameCascadesIntoGames(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	users := NewUserRepository(sqlDB, queries, zerolog.Nop())
	games := NewGameRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	seedUsers(t, users, "u1", "u2", "u3", "u4")
	require.NoError(t, games.Save(ctx, fixtureGame("g1")))

	require.NoError(t, users.Rename(ctx, "u2", "Washizu"))

	got, err := users.Get(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, "Washizu", got.Name)

	// the denormalized seat snapshot follows the rename
	g, err := games.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "Washizu", g.PlayerNames[1])
	assert.Equal(t, "player u1", g.PlayerNames[0])
}

func TestUserRepositorySetPhotoURL(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	users := NewUserRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	seedUsers(t, users, "u1")
	require.NoError(t, users.SetPhotoURL(ctx, "u1", "https://example.com/new.png"))

	got, err := users.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/new.png", got.PhotoURL)
}

func TestUserRepositoryDeleteRemovesTheirGames(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	users := NewUserRepository(sqlDB, queries, zerolog.Nop())
	games := NewGameRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	seedUsers(t, users, "u1", "u2", "u3", "u4", "u5")
	require.NoError(t, games.Save(ctx, fixtureGame("g1")))

	other := fixtureGame("g2")
	other.PlayerIDs = [4]string{"u5", "u2", "u3", "u4"}
	other.PlayerNames = [4]string{"player u5", "player u2", "player u3", "player u4"}
	other.TotalPoints = map[string]float64{"u5": 60, "u2": 10, "u3": -20, "u4": -50}
	other.Scores = nil
	require.NoError(t, games.Save(ctx, other))

	require.NoError(t, users.Delete(ctx, "u1"))

	_, err := users.Get(ctx, "u1")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	// g1 contained u1 and goes with them; g2 did not and survives
	_, err = games.Get(ctx, "g1")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	survivor, err := games.Get(ctx, "g2")
	require.NoError(t, err)
	assert.Equal(t, "g2", survivor.ID)
}
