package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"mleague-tracker/internal/domain"
	"mleague-tracker/internal/repository"
	"mleague-tracker/internal/scoring"
	"mleague-tracker/internal/service"

	"github.com/rs/zerolog"
)

// LeagueServer exposes the league over JSON HTTP. It owns no logic:
// every handler decodes, delegates to a service, and translates the
// result.
type LeagueServer struct {
	users  *service.UserService
	games  *service.GameService
	league *service.LeagueService
	logger zerolog.Logger
}

func NewLeagueServer(users *service.UserService, games *service.GameService, league *service.LeagueService, logger zerolog.Logger) *LeagueServer {
	return &LeagueServer{users: users, games: games, league: league, logger: logger}
}

func (s *LeagueServer) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/users", s.handleListUsers)
	mux.HandleFunc("POST /api/users", s.handleRegisterUser)
	mux.HandleFunc("PATCH /api/users/{id}", s.handleUpdateUser)
	mux.HandleFunc("DELETE /api/users/{id}", s.handleDeleteUser)

	mux.HandleFunc("GET /api/games", s.handleListGames)
	mux.HandleFunc("POST /api/games", s.handleSaveGame)
	mux.HandleFunc("POST /api/games/preview", s.handlePreview)
	mux.HandleFunc("GET /api/games/{id}", s.handleGetGame)
	mux.HandleFunc("PUT /api/games/{id}", s.handleUpdateGame)
	mux.HandleFunc("DELETE /api/games/{id}", s.handleDeleteGame)

	mux.HandleFunc("GET /api/draft", s.handleLoadDraft)
	mux.HandleFunc("PUT /api/draft", s.handleSaveDraft)
	mux.HandleFunc("DELETE /api/draft", s.handleClearDraft)

	mux.HandleFunc("GET /api/years", s.handleYears)
	mux.HandleFunc("GET /api/leaderboard", s.handleLeaderboard)
	mux.HandleFunc("GET /api/trophies", s.handleTrophies)
	mux.HandleFunc("GET /api/players/{id}/stats", s.handlePlayerStats)
	mux.HandleFunc("GET /api/head-to-head", s.handleHeadToHead)
}

// --- users ---

func (s *LeagueServer) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := make([]userResponse, len(users))
	for i, u := range users {
		resp[i] = toUserResponse(u)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *LeagueServer) handleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	user, err := s.users.Register(r.Context(), req.Name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toUserResponse(*user))
}

func (s *LeagueServer) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req struct {
		Name     *string `json:"name"`
		PhotoURL *string `json:"photoURL"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	if req.Name != nil {
		if err := s.users.Rename(r.Context(), id, *req.Name); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	if req.PhotoURL != nil {
		if err := s.users.SetPhotoURL(r.Context(), id, *req.PhotoURL); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	user, err := s.users.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toUserResponse(*user))
}

func (s *LeagueServer) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.users.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- games ---

func (s *LeagueServer) handleListGames(w http.ResponseWriter, r *http.Request) {
	games, err := s.games.List(r.Context(), r.URL.Query().Get("year"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := make([]gameResponse, len(games))
	for i, g := range games {
		resp[i] = toGameResponse(g)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *LeagueServer) handleSaveGame(w http.ResponseWriter, r *http.Request) {
	var input service.GameInput
	if !s.decode(w, r, &input) {
		return
	}
	game, err := s.games.Save(r.Context(), input)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toGameResponse(*game))
}

func (s *LeagueServer) handleGetGame(w http.ResponseWriter, r *http.Request) {
	game, err := s.games.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toGameResponse(*game))
}

func (s *LeagueServer) handleUpdateGame(w http.ResponseWriter, r *http.Request) {
	var input service.GameInput
	if !s.decode(w, r, &input) {
		return
	}
	game, err := s.games.Update(r.Context(), r.PathValue("id"), input)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toGameResponse(*game))
}

func (s *LeagueServer) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := s.games.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *LeagueServer) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RawScores map[string]int         `json:"rawScores"`
		Settings  domain.ScoringSettings `json:"settings"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	s.writeJSON(w, http.StatusOK, s.games.Preview(req.RawScores, req.Settings))
}

// --- draft ---

func (s *LeagueServer) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	var payload json.RawMessage
	if !s.decode(w, r, &payload) {
		return
	}
	if err := s.games.SaveDraft(r.Context(), payload); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *LeagueServer) handleLoadDraft(w http.ResponseWriter, r *http.Request) {
	payload, err := s.games.LoadDraft(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

func (s *LeagueServer) handleClearDraft(w http.ResponseWriter, r *http.Request) {
	if err := s.games.ClearDraft(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- derived views ---

func (s *LeagueServer) handleYears(w http.ResponseWriter, r *http.Request) {
	years, err := s.league.Years(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, years)
}

func (s *LeagueServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	board, err := s.league.Leaderboard(r.Context(), r.URL.Query().Get("year"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, board)
}

func (s *LeagueServer) handleTrophies(w http.ResponseWriter, r *http.Request) {
	earned, err := s.league.Trophies(r.Context(), r.URL.Query().Get("year"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, trophiesResponse{
		Catalog: catalogResponse(),
		Earned:  earned,
	})
}

func (s *LeagueServer) handlePlayerStats(w http.ResponseWriter, r *http.Request) {
	overview, err := s.league.PlayerOverview(r.Context(), r.PathValue("id"), r.URL.Query().Get("year"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, overview)
}

func (s *LeagueServer) handleHeadToHead(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p1, p2 := q.Get("p1"), q.Get("p2")
	if p1 == "" || p2 == "" || p1 == p2 {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "p1 and p2 must be two distinct player ids"})
		return
	}
	h2h, err := s.league.HeadToHead(r.Context(), p1, p2, q.Get("year"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := headToHeadResponse{HeadToHead: *h2h}
	if rate, ok := h2h.WinRate(); ok {
		resp.P1WinRate = &rate
	} else {
		resp.NoData = true
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// --- plumbing ---

type errorResponse struct {
	Error string `json:"error"`
}

func (s *LeagueServer) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

func (s *LeagueServer) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *LeagueServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidGame),
		errors.Is(err, scoring.ErrUnbalancedHand),
		errors.Is(err, service.ErrNameTaken),
		errors.Is(err, service.ErrEmptyName):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, sql.ErrNoRows), errors.Is(err, repository.ErrNoDraft):
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	default:
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
