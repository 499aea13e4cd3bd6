package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"mleague-tracker/internal/domain"
	"mleague-tracker/internal/repository"
	"mleague-tracker/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameServicePreviewPartialHand(t *testing.T) {
	svc := newTestServices(t)

	result := svc.games.Preview(map[string]int{"a": 32000, "b": 28000}, mLeagueSettings())

	assert.Equal(t, map[string]int{"a": 1, "b": 2}, result.Ranks)
	assert.Nil(t, result.Points, "points withheld until the hand balances")
}

func TestGameServicePreviewCompleteHand(t *testing.T) {
	svc := newTestServices(t)

	result := svc.games.Preview(map[string]int{
		"a": 40000, "b": 30000, "c": 20000, "d": 10000,
	}, mLeagueSettings())

	require.NotNil(t, result.Points)
	assert.InDelta(t, 60.0, result.Points["a"], 1e-9)
	assert.Equal(t, 4, len(result.Ranks))
}

func TestGameServiceSave(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	ids := registerFour(t, svc.users)

	game, err := svc.games.Save(ctx, validInput(ids))
	require.NoError(t, err)
	assert.NotEmpty(t, game.ID)
	assert.Equal(t, [4]string{"Akagi", "Baishou", "Chihiro", "Daisuke"}, game.PlayerNames)
	assert.InDelta(t, 60.0, game.TotalPoints[ids[0]], 1e-9)

	got, err := svc.games.Get(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, game.GameDate, got.GameDate)
	require.Len(t, got.Scores, 1)
	assert.InDelta(t, -50.0, got.Scores[0].Points[ids[3]], 1e-9)
}

func TestGameServiceSaveValidation(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	ids := registerFour(t, svc.users)

	tests := []struct {
		name   string
		mutate func(*GameInput)
	}{
		{"missing date", func(in *GameInput) { in.GameDate = "" }},
		{"no hands", func(in *GameInput) { in.Hands = nil }},
		{"zero return point", func(in *GameInput) { in.Settings.ReturnPoint = 0 }},
		{"empty seat", func(in *GameInput) { in.PlayerIDs[2] = "" }},
		{"duplicate player", func(in *GameInput) { in.PlayerIDs[1] = in.PlayerIDs[0] }},
		{"unknown player", func(in *GameInput) { in.PlayerIDs[3] = "ghost" }},
		{"unbalanced hand", func(in *GameInput) {
			in.Hands[0].RawScores[ids[0]] = 40100
		}},
		{"score for non-participant", func(in *GameInput) {
			in.Hands[0].RawScores = map[string]int{
				ids[0]: 40000, ids[1]: 30000, ids[2]: 20000, "ghost": 10000,
			}
		}},
		{"unknown yakuman", func(in *GameInput) {
			in.Hands[0].YakumanEvents = []domain.YakumanEvent{
				{PlayerID: ids[0], Yakumans: []string{"open riichi"}},
			}
		}},
		{"empty yakuman event", func(in *GameInput) {
			in.Hands[0].YakumanEvents = []domain.YakumanEvent{{PlayerID: ids[0]}}
		}},
		{"incompatible yakuman pair", func(in *GameInput) {
			in.Hands[0].YakumanEvents = []domain.YakumanEvent{
				{PlayerID: ids[0], Yakumans: []string{domain.YakumanTenhou, domain.YakumanChiihou}},
			}
		}},
		{"unknown penalty type", func(in *GameInput) {
			in.Hands[0].Penalties = []domain.Penalty{
				{PlayerID: ids[0], Type: "shouting"},
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput(ids)
			tt.mutate(&input)

			_, err := svc.games.Save(ctx, input)
			assert.ErrorIs(t, err, ErrInvalidGame)
		})
	}
}

func TestGameServiceSaveAllowsCompatibleYakumanPair(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	ids := registerFour(t, svc.users)

	input := validInput(ids)
	input.Hands[0].YakumanEvents = []domain.YakumanEvent{
		{PlayerID: ids[0], Yakumans: []string{domain.YakumanTsuuiisou, domain.YakumanSuuankou}},
	}

	_, err := svc.games.Save(ctx, input)
	assert.NoError(t, err)
}

func TestGameServiceUpdate(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	ids := registerFour(t, svc.users)

	game, err := svc.games.Save(ctx, validInput(ids))
	require.NoError(t, err)

	edited := validInput(ids)
	edited.GameDate = "2025/3/2(Sun)"
	edited.Hands = append(edited.Hands, HandInput{RawScores: map[string]int{
		ids[0]: 10000, ids[1]: 20000, ids[2]: 30000, ids[3]: 40000,
	}})

	updated, err := svc.games.Update(ctx, game.ID, edited)
	require.NoError(t, err)
	assert.Equal(t, game.ID, updated.ID)
	assert.Equal(t, game.CreatedAt, updated.CreatedAt)
	assert.Len(t, updated.Scores, 2)

	sum := 0.0
	for _, pts := range updated.TotalPoints {
		sum += pts
	}
	assert.InDelta(t, 0.0, sum, 1e-9)

	_, err = svc.games.Update(ctx, "missing", edited)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestGameServiceListFiltersByYear(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	ids := registerFour(t, svc.users)

	in2024 := validInput(ids)
	in2024.GameDate = "2024/12/31(Tue)"
	_, err := svc.games.Save(ctx, in2024)
	require.NoError(t, err)

	_, err = svc.games.Save(ctx, validInput(ids))
	require.NoError(t, err)

	all, err := svc.games.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	only2025, err := svc.games.List(ctx, "2025")
	require.NoError(t, err)
	require.Len(t, only2025, 1)
	assert.Equal(t, "2025/3/1(Sat)", only2025[0].GameDate)
}

func TestGameServiceDelete(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	ids := registerFour(t, svc.users)

	game, err := svc.games.Save(ctx, validInput(ids))
	require.NoError(t, err)

	require.NoError(t, svc.games.Delete(ctx, game.ID))
	_, err = svc.games.Get(ctx, game.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	assert.ErrorIs(t, svc.games.Delete(ctx, "missing"), sql.ErrNoRows)
}

func TestGameServiceDraftRoundTrip(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	_, err := svc.games.LoadDraft(ctx)
	assert.ErrorIs(t, err, repository.ErrNoDraft)

	payload := json.RawMessage(`{"gameDate":"2025/3/1(Sat)","hands":[]}`)
	require.NoError(t, svc.games.SaveDraft(ctx, payload))

	got, err := svc.games.LoadDraft(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), string(got))

	require.NoError(t, svc.games.ClearDraft(ctx))
	_, err = svc.games.LoadDraft(ctx)
	assert.ErrorIs(t, err, repository.ErrNoDraft)
}

func TestGameServiceSaveMatchesScoringConvert(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	ids := registerFour(t, svc.users)

	input := validInput(ids)
	game, err := svc.games.Save(ctx, input)
	require.NoError(t, err)

	expected, err := scoring.ConvertPoints(input.Hands[0].RawScores, input.Settings)
	require.NoError(t, err)
	assert.Equal(t, expected, game.Scores[0].Points)
}
