package server

import (
	"time"

	"mleague-tracker/internal/domain"
	"mleague-tracker/internal/trophy"
)

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	PhotoURL  string    `json:"photoURL,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		PhotoURL:  u.PhotoURL,
		CreatedAt: u.CreatedAt,
	}
}

type settingsResponse struct {
	BasePoint   int     `json:"basePoint"`
	ReturnPoint int     `json:"returnPoint"`
	Uma         [4]int  `json:"uma"`
	Oka         float64 `json:"oka"`
}

type gameResponse struct {
	ID          string             `json:"id"`
	GameDate    string             `json:"gameDate"`
	PlayerIDs   [4]string          `json:"playerIds"`
	PlayerNames [4]string          `json:"playerNames"`
	Settings    settingsResponse   `json:"settings"`
	Scores      []domain.Hand      `json:"scores"`
	TotalPoints map[string]float64 `json:"totalPoints"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func toGameResponse(g domain.Game) gameResponse {
	return gameResponse{
		ID:          g.ID,
		GameDate:    g.GameDate,
		PlayerIDs:   g.PlayerIDs,
		PlayerNames: g.PlayerNames,
		Settings: settingsResponse{
			BasePoint:   g.Settings.BasePoint,
			ReturnPoint: g.Settings.ReturnPoint,
			Uma:         g.Settings.Uma,
			Oka:         g.Settings.Oka(),
		},
		Scores:      g.Scores,
		TotalPoints: g.TotalPoints,
		CreatedAt:   g.CreatedAt,
	}
}

type trophyInfo struct {
	ID   trophy.ID   `json:"id"`
	Tier trophy.Tier `json:"tier"`
	Name string      `json:"name"`
	Desc string      `json:"desc"`
	Icon string      `json:"icon"`
}

func catalogResponse() []trophyInfo {
	infos := make([]trophyInfo, len(trophy.Catalog))
	for i, t := range trophy.Catalog {
		infos[i] = trophyInfo{ID: t.ID, Tier: t.Tier, Name: t.Name, Desc: t.Desc, Icon: t.Icon}
	}
	return infos
}

type trophiesResponse struct {
	Catalog []trophyInfo                  `json:"catalog"`
	Earned  map[string]map[trophy.ID]bool `json:"earned"`
}

type headToHeadResponse struct {
	domain.HeadToHead
	P1WinRate *float64 `json:"p1WinRate,omitempty"`
	NoData    bool     `json:"noData,omitempty"`
}
