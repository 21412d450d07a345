// Package logging configures the global zerolog logger for the commands.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup routes the global logger to w in console format at lvl.
// Game output goes to stdout, so w is normally stderr.
func Setup(w io.Writer, lvl zerolog.Level) {
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
}
