package fx

import (
	"database/sql"

	"mleague-tracker/internal/config"
	"mleague-tracker/internal/database"
	"mleague-tracker/internal/db"
	"mleague-tracker/internal/logger"
	"mleague-tracker/internal/repository"
	"mleague-tracker/internal/server"
	"mleague-tracker/internal/service"

	"go.uber.org/fx"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	// repos
	fx.Provide(repository.NewUserRepository),
	fx.Provide(repository.NewGameRepository),
	fx.Provide(repository.NewDraftRepository),
	// svc
	fx.Provide(service.NewUserService),
	fx.Provide(service.NewGameService),
	fx.Provide(service.NewLeagueService),
	// server
	fx.Provide(server.NewLeagueServer),
)
