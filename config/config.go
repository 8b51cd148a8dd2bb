package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/marianogappa/guinote/guinote"
)

// Config is everything the terminal binary reads from the environment.
type Config struct {
	// Seed makes shuffling deterministic when HasSeed is true.
	Seed    uint64
	HasSeed bool

	WinThreshold   int
	HandSize       int
	MinWidth       int
	MinHeight      int
	LastTrickBonus int

	// SpectateAddr is where the read-only spectator server listens; empty disables it.
	SpectateAddr string

	LogLevel string
	LogFile  string
}

// Load reads a .env file if there is one, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		SpectateAddr: getenv("GUINOTE_SPECTATE_ADDR"),
		LogLevel:     getEnv(getenv, "LOG_LEVEL", "info"),
		LogFile:      getEnv(getenv, "GUINOTE_LOG_FILE", "guinote.log"),
	}

	if v := getenv("GUINOTE_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("GUINOTE_SEED: %w", err)
		}
		cfg.Seed, cfg.HasSeed = seed, true
	}

	ints := []struct {
		key string
		def int
		dst *int
	}{
		{"GUINOTE_WIN_THRESHOLD", guinote.DefaultWinThreshold, &cfg.WinThreshold},
		{"GUINOTE_HAND_SIZE", guinote.DefaultHandSize, &cfg.HandSize},
		{"GUINOTE_MIN_WIDTH", guinote.DefaultMinWidth, &cfg.MinWidth},
		{"GUINOTE_MIN_HEIGHT", guinote.DefaultMinHeight, &cfg.MinHeight},
		{"GUINOTE_LAST_TRICK_BONUS", guinote.DefaultLastTrickBonus, &cfg.LastTrickBonus},
	}
	for _, i := range ints {
		v, err := getInt(getenv, i.key, i.def)
		if err != nil {
			return Config{}, err
		}
		*i.dst = v
	}

	return cfg, nil
}

// GameOptions turns the configuration into guinote.New options.
func (c Config) GameOptions() []func(*guinote.GameState) {
	opts := []func(*guinote.GameState){
		guinote.WithWinThreshold(c.WinThreshold),
		guinote.WithHandSize(c.HandSize),
		guinote.WithMinTerminalSize(c.MinWidth, c.MinHeight),
		guinote.WithLastTrickBonus(c.LastTrickBonus),
	}
	if c.HasSeed {
		opts = append(opts, guinote.WithSeed(c.Seed))
	}
	return opts
}

func getEnv(getenv func(string) string, k, def string) string {
	if v := getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(getenv func(string) string, k string, def int) (int, error) {
	v := getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}
