package game

import (
	"os"
	"strconv"
	"time"
)

const (
	GridWidth  = 40
	GridHeight = 30

	SnakeStartX = 8
	SnakeStartY = 8
	FoodStartX  = 3
	FoodStartY  = 4

	InitialSnakeSpeed = 100 * time.Millisecond
	MinSnakeSpeed     = 20 * time.Millisecond
	SpeedStep         = 5 * time.Millisecond
	// speed drops by SpeedStep on every SpeedupEvery-th food item
	SpeedupEvery = 5

	GameTickDuration = 16 * time.Millisecond

	BoardCols         = 40
	BoardRows         = 30
	BoardCellSize     = 32
	BoardWalkInterval = 1250 * time.Millisecond

	scoreWorkersCount   = 2
	updateChannelBuffer = 16
	inputChannelBuffer  = 32
)

// Settings is the runtime configuration read from the environment.
type Settings struct {
	Host              string
	Port              string
	HostKeyPath       string
	DBPath            string
	AutopilotScript   string
	Sponsor           string
	Theme             string
	LogLevel          string
	MaxConnectionsPer int
}

func LoadSettings() Settings {
	return Settings{
		Host:              getEnv("ARCADE_HOST", "0.0.0.0"),
		Port:              getEnv("ARCADE_PORT", "6996"),
		HostKeyPath:       getEnv("ARCADE_HOST_KEY_PATH", ".ssh/arcade_ed25519"),
		DBPath:            getEnv("ARCADE_DB_PATH", "arcade.db"),
		AutopilotScript:   os.Getenv("ARCADE_AUTOPILOT_SCRIPT"),
		Sponsor:           os.Getenv("ARCADE_SPONSOR"),
		Theme:             getEnv("ARCADE_THEME", "default"),
		LogLevel:          getEnv("ARCADE_LOG_LEVEL", "info"),
		MaxConnectionsPer: getEnvInt("ARCADE_MAX_CONN_PER_IP", 2),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
