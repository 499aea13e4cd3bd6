package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"mleague-tracker/internal/config"
	"mleague-tracker/internal/database"
	"mleague-tracker/internal/db"
	"mleague-tracker/internal/domain"
	"mleague-tracker/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type testServices struct {
	users  *UserService
	games  *GameService
	league *LeagueService
}

// newTestServices wires the full stack over a fresh in-memory database.
// Shared cache keeps the database alive across the pool's connections.
func newTestServices(t *testing.T) *testServices {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	sqlDB, err := database.New(&config.Config{DBPath: dsn}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	queries := db.New(sqlDB)
	nop := zerolog.Nop()
	userRepo := repository.NewUserRepository(sqlDB, queries, nop)
	gameRepo := repository.NewGameRepository(sqlDB, queries, nop)
	draftRepo := repository.NewDraftRepository(queries, nop)

	return &testServices{
		users:  NewUserService(userRepo, nop),
		games:  NewGameService(gameRepo, userRepo, draftRepo, nop),
		league: NewLeagueService(gameRepo, userRepo, nop),
	}
}

// registerFour creates four players and returns their IDs in seat order.
func registerFour(t *testing.T, users *UserService) [4]string {
	t.Helper()
	var ids [4]string
	for i, name := range []string{"Akagi", "Baishou", "Chihiro", "Daisuke"} {
		u, err := users.Register(context.Background(), name)
		require.NoError(t, err)
		ids[i] = u.ID
	}
	return ids
}

func mLeagueSettings() domain.ScoringSettings {
	return domain.ScoringSettings{
		BasePoint:   25000,
		ReturnPoint: 30000,
		Uma:         [4]int{30, 10, -10, -30},
	}
}

func validInput(ids [4]string) GameInput {
	return GameInput{
		GameDate:  "2025/3/1(Sat)",
		PlayerIDs: ids,
		Settings:  mLeagueSettings(),
		Hands: []HandInput{
			{RawScores: map[string]int{
				ids[0]: 40000, ids[1]: 30000, ids[2]: 20000, ids[3]: 10000,
			}},
		},
	}
}
