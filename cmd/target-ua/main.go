package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/target/internal/config"
	"github.com/robalobadob/target/internal/grid"
	"github.com/robalobadob/target/internal/logging"
	"github.com/robalobadob/target/internal/play"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logging.Setup(os.Stderr, cfg.LogLevel)

	opts := play.Options{
		DictPath:   cfg.TaggedDictPath,
		ResultPath: cfg.ResultPath,
		In:         os.Stdin,
		Out:        os.Stdout,
	}
	if cfg.Seeded {
		opts.Rand = grid.NewRand(cfg.Seed)
	}
	if _, err := play.Ukrainian(opts); err != nil {
		log.Fatal().Err(err).Msg("round failed")
	}
}
