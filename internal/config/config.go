// internal/config/config.go
//
// Runtime configuration for both game commands.
//
// Values come from the environment, optionally seeded from a .env file in
// the working directory. Every variable has a default that reproduces the
// plain game, so no setup is needed to play.
//
// Environment variables:
//   TARGET_DICT=en               English word list
//   TARGET_UA_DICT=base.lst      Ukrainian tagged word list
//   TARGET_RESULTS=results.txt   result file (overwritten each run)
//   TARGET_SEED=<uint>           fixed random seed
//   TARGET_DAILY=false           derive the seed from today's date
//   TARGET_DAILY_SALT=target     salt for the daily seed
//   LOG_LEVEL=warn               zerolog level

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/robalobadob/target/internal/daily"
)

// Config holds the resolved settings of one run.
type Config struct {
	DictPath       string
	TaggedDictPath string
	ResultPath     string
	Seed           uint64
	Seeded         bool // Seed was fixed by TARGET_SEED or TARGET_DAILY.
	LogLevel       zerolog.Level
}

// Load reads .env (if present) and then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv, time.Now())
}

// FromLookup resolves a Config using lookup for variables and now for the
// daily seed. Split out from Load for tests.
func FromLookup(lookup func(string) (string, bool), now time.Time) (Config, error) {
	get := func(k, def string) string {
		if v, ok := lookup(k); ok && v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		DictPath:       get("TARGET_DICT", "en"),
		TaggedDictPath: get("TARGET_UA_DICT", "base.lst"),
		ResultPath:     get("TARGET_RESULTS", "results.txt"),
	}

	lvl, err := zerolog.ParseLevel(get("LOG_LEVEL", "warn"))
	if err != nil {
		return Config{}, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = lvl

	if v := get("TARGET_SEED", ""); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: TARGET_SEED: %w", err)
		}
		cfg.Seed, cfg.Seeded = seed, true
	}

	dailyMode, err := strconv.ParseBool(get("TARGET_DAILY", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("config: TARGET_DAILY: %w", err)
	}
	if dailyMode && !cfg.Seeded {
		cfg.Seed, cfg.Seeded = daily.Seed(now, get("TARGET_DAILY_SALT", "target")), true
	}
	return cfg, nil
}
