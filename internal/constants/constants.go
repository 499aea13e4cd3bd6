package constants

import "time"

const (
	DatabaseTimeout = 5 * time.Second
	RequestTimeout  = 30 * time.Second
	ShutdownTimeout = 5 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
	DBBatchSize       = 100
)

// Default rule preset ("M-League rules" in the entry UI).
const (
	DefaultBasePoint   = 25000
	DefaultReturnPoint = 30000
)

var DefaultUma = [4]int{30, 10, -10, -30}

const PlayersPerGame = 4
