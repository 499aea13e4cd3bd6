package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mleague-tracker/internal/config"
	"mleague-tracker/internal/database"
	"mleague-tracker/internal/db"
	"mleague-tracker/internal/repository"
	"mleague-tracker/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
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

	users := service.NewUserService(userRepo, nop)
	games := service.NewGameService(gameRepo, userRepo, draftRepo, nop)
	league := service.NewLeagueService(gameRepo, userRepo, nop)

	mux := http.NewServeMux()
	NewLeagueServer(users, games, league, nop).RegisterRoutes(mux)

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url string, body any, out any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func registerPlayer(t *testing.T, ts *httptest.Server, name string) string {
	t.Helper()
	var created struct {
		ID string `json:"id"`
	}
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/users", map[string]string{"name": name}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, created.ID)
	return created.ID
}

func saveGameBody(ids [4]string) map[string]any {
	return map[string]any{
		"gameDate":  "2025/3/1(Sat)",
		"playerIds": ids,
		"settings": map[string]any{
			"basePoint":   25000,
			"returnPoint": 30000,
			"uma":         [4]int{30, 10, -10, -30},
		},
		"hands": []map[string]any{
			{"rawScores": map[string]int{
				ids[0]: 40000, ids[1]: 30000, ids[2]: 20000, ids[3]: 10000,
			}},
		},
	}
}

func registerTable(t *testing.T, ts *httptest.Server) [4]string {
	t.Helper()
	var ids [4]string
	for i, name := range []string{"Akagi", "Baishou", "Chihiro", "Daisuke"} {
		ids[i] = registerPlayer(t, ts, name)
	}
	return ids
}

func TestUserEndpoints(t *testing.T) {
	ts := newTestServer(t)

	id := registerPlayer(t, ts, "Akagi")

	var listed []map[string]any
	resp := doJSON(t, http.MethodGet, ts.URL+"/api/users", nil, &listed)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, listed, 1)
	assert.Equal(t, "Akagi", listed[0]["name"])

	// duplicate name maps to 400
	resp = doJSON(t, http.MethodPost, ts.URL+"/api/users", map[string]string{"name": "Akagi"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var renamed map[string]any
	resp = doJSON(t, http.MethodPatch, ts.URL+"/api/users/"+id, map[string]string{"name": "Washizu"}, &renamed)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Washizu", renamed["name"])

	resp = doJSON(t, http.MethodDelete, ts.URL+"/api/users/"+id, nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, ts.URL+"/api/users/"+id, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGameEndpoints(t *testing.T) {
	ts := newTestServer(t)
	ids := registerTable(t, ts)

	var created gameResponse
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/games", saveGameBody(ids), &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, created.ID)
	assert.InDelta(t, 20.0, created.Settings.Oka, 1e-9)
	assert.InDelta(t, 60.0, created.TotalPoints[ids[0]], 1e-9)

	var fetched gameResponse
	resp = doJSON(t, http.MethodGet, ts.URL+"/api/games/"+created.ID, nil, &fetched)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, created.ID, fetched.ID)

	var listed []gameResponse
	resp = doJSON(t, http.MethodGet, ts.URL+"/api/games?year=2025", nil, &listed)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, listed, 1)

	resp = doJSON(t, http.MethodGet, ts.URL+"/api/games?year=2020", nil, &listed)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, listed)

	resp = doJSON(t, http.MethodDelete, ts.URL+"/api/games/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, ts.URL+"/api/games/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSaveGameRejectsUnbalancedHand(t *testing.T) {
	ts := newTestServer(t)
	ids := registerTable(t, ts)

	body := saveGameBody(ids)
	body["hands"] = []map[string]any{
		{"rawScores": map[string]int{
			ids[0]: 40100, ids[1]: 30000, ids[2]: 20000, ids[3]: 10000,
		}},
	}

	var errResp errorResponse
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/games", body, &errResp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, errResp.Error)
}

func TestPreviewEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var result service.PreviewResult
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/games/preview", map[string]any{
		"rawScores": map[string]int{"a": 32000, "b": 28000},
		"settings": map[string]any{
			"basePoint":   25000,
			"returnPoint": 30000,
			"uma":         [4]int{30, 10, -10, -30},
		},
	}, &result)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, result.Ranks)
	assert.Nil(t, result.Points)
}

func TestDraftEndpoints(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodGet, ts.URL+"/api/draft", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	payload := map[string]any{"gameDate": "2025/3/1(Sat)", "hands": []any{}}
	resp = doJSON(t, http.MethodPut, ts.URL+"/api/draft", payload, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	var loaded map[string]any
	resp = doJSON(t, http.MethodGet, ts.URL+"/api/draft", nil, &loaded)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "2025/3/1(Sat)", loaded["gameDate"])

	resp = doJSON(t, http.MethodDelete, ts.URL+"/api/draft", nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, ts.URL+"/api/draft", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLeaderboardAndTrophyEndpoints(t *testing.T) {
	ts := newTestServer(t)
	ids := registerTable(t, ts)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/games", saveGameBody(ids), nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var board []map[string]any
	resp = doJSON(t, http.MethodGet, ts.URL+"/api/leaderboard", nil, &board)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, board, 4)
	assert.Equal(t, ids[0], board[0]["id"])

	var trophies trophiesResponse
	resp = doJSON(t, http.MethodGet, ts.URL+"/api/trophies", nil, &trophies)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, trophies.Catalog, 60)
	assert.True(t, trophies.Earned[ids[0]]["first_top"])

	var years []string
	resp = doJSON(t, http.MethodGet, ts.URL+"/api/years", nil, &years)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"2025"}, years)
}

func TestPlayerStatsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ids := registerTable(t, ts)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/games", saveGameBody(ids), nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var overview struct {
		Stats struct {
			TotalHanchans int `json:"totalHanchans"`
		} `json:"stats"`
		Trophies map[string]bool `json:"trophies"`
	}
	resp = doJSON(t, http.MethodGet, ts.URL+"/api/players/"+ids[0]+"/stats", nil, &overview)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, overview.Stats.TotalHanchans)
	assert.True(t, overview.Trophies["first_game"])

	resp = doJSON(t, http.MethodGet, ts.URL+"/api/players/missing/stats", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHeadToHeadEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ids := registerTable(t, ts)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/games", saveGameBody(ids), nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var h2h headToHeadResponse
	url := fmt.Sprintf("%s/api/head-to-head?p1=%s&p2=%s", ts.URL, ids[0], ids[1])
	resp = doJSON(t, http.MethodGet, url, nil, &h2h)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, h2h.P1Wins)
	require.NotNil(t, h2h.P1WinRate)
	assert.InDelta(t, 100.0, *h2h.P1WinRate, 1e-9)

	// same player twice is a client error
	resp = doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/head-to-head?p1=%s&p2=%s", ts.URL, ids[0], ids[0]), nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
