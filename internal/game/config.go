// Package game provides the main game loop and state management.
package game

import (
	"os"
	"strconv"

	"github.com/Elean1402/go-roguelike/internal/world"
)

// Config holds game configuration options.
type Config struct {
	world.Params

	// Seed for dungeon generation. Zero means derive one from the clock.
	Seed int64
}

// DefaultConfig returns the configuration matching the original tutorial
// constants: an 80x45 map, up to 30 rooms sized 6-10, clock-derived seed.
func DefaultConfig() Config {
	return Config{Params: world.DefaultParams()}
}

// ConfigFromEnv returns DefaultConfig overridden by ROGUELIKE_* environment
// variables. Unset or unparseable variables keep their defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.Seed = envInt64("ROGUELIKE_SEED", cfg.Seed)
	cfg.Width = envInt("ROGUELIKE_WIDTH", cfg.Width)
	cfg.Height = envInt("ROGUELIKE_HEIGHT", cfg.Height)
	cfg.MaxRooms = envInt("ROGUELIKE_MAX_ROOMS", cfg.MaxRooms)
	cfg.RoomMinSize = envInt("ROGUELIKE_ROOM_MIN_SIZE", cfg.RoomMinSize)
	cfg.RoomMaxSize = envInt("ROGUELIKE_ROOM_MAX_SIZE", cfg.RoomMaxSize)
	return cfg
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envInt64(key string, fallback int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return fallback
	}
	return v
}
