// internal/play/play.go
//
// Runs one round of either variant as a linear pipeline:
//   generate grid → load dictionary → collect input → validate → report.
//
// All I/O and randomness come in through Options so a round can be driven
// end to end from tests. Each round carries a UUID that tags its log lines.

package play

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/robalobadob/target/internal/game"
	"github.com/robalobadob/target/internal/grid"
	"github.com/robalobadob/target/internal/input"
	"github.com/robalobadob/target/internal/report"
	"github.com/robalobadob/target/internal/words"
)

const instructions = "Enter one word per line. Press Ctrl-D (or Ctrl-Z then Enter on Windows) to finish.\n"

// Options configures a round.
type Options struct {
	DictPath   string    // Dictionary file (plain or tagged, per variant).
	ResultPath string    // Summary file, overwritten.
	In         io.Reader // Player input.
	Out        io.Writer // Console.
	Rand       grid.Rand // Randomness; a fresh random source if nil.

	Grid     *grid.Grid     // Fixed grid; generated if nil.
	Alphabet string         // Ukrainian alphabet; grid.UkrainianAlphabet if empty.
	Category words.Category // Fixed Ukrainian target; picked at random if empty.
}

func (o *Options) source() grid.Rand {
	if o.Rand == nil {
		o.Rand = grid.NewRand(rand.Uint64())
	}
	return o.Rand
}

func roundLogger(variant string) zerolog.Logger {
	return log.With().Str("round", uuid.NewString()).Str("variant", variant).Logger()
}

// English plays a 3x3 round and returns its summary.
func English(o Options) (*report.Summary, error) {
	lg := roundLogger("en")

	var g grid.Grid
	if o.Grid != nil {
		g = *o.Grid
	} else {
		g = grid.NewEnglish(o.source())
	}
	lg.Info().Strs("grid", g.Rows()).Str("central", string(g.Central())).Msg("grid ready")

	dict, err := words.ReadWordFile(o.DictPath)
	if err != nil {
		return nil, err
	}
	rules := game.NewEnglishRules(g)
	possible := rules.Candidates(dict)
	lg.Info().Int("entries", len(dict)).Int("candidates", len(possible)).Msg("dictionary filtered")

	fmt.Fprintln(o.Out, g.Render())
	fmt.Fprint(o.Out, instructions)

	user, err := input.NewCollector(language.English).Collect(o.In)
	if err != nil {
		return nil, err
	}
	lg.Info().Int("words", len(user)).Msg("input collected")

	s := &report.Summary{}
	s.Add(report.PossibleWords, possible).
		Add(report.UserWords, user).
		Add(report.PureUserWords, rules.PureUserWords(user, possible))
	if err := report.Emit(s, o.ResultPath, o.Out); err != nil {
		return nil, err
	}
	return s, nil
}

// Ukrainian plays a 5-letter round against one grammatical category.
func Ukrainian(o Options) (*report.Summary, error) {
	lg := roundLogger("ua")

	var g grid.Grid
	if o.Grid != nil {
		g = *o.Grid
	} else {
		alphabet := o.Alphabet
		if alphabet == "" {
			alphabet = grid.UkrainianAlphabet
		}
		var err error
		if g, err = grid.NewUkrainian(o.source(), alphabet); err != nil {
			return nil, err
		}
	}
	category := o.Category
	if category == "" {
		category = game.PickCategory(o.source())
	}
	lg.Info().Strs("grid", g.Rows()).Str("category", string(category)).Msg("grid ready")

	entries, err := words.ReadTaggedFile(o.DictPath)
	if err != nil {
		return nil, err
	}
	rules := game.NewUkrainianRules(g)
	candidates := rules.Candidates(entries)
	lg.Info().Int("entries", len(entries)).Int("candidates", len(candidates)).Msg("dictionary filtered")

	fmt.Fprintln(o.Out, g.Render())
	fmt.Fprintf(o.Out, "Category: %s\n", category)
	fmt.Fprint(o.Out, instructions)

	user, err := input.NewCollector(language.Ukrainian).Collect(o.In)
	if err != nil {
		return nil, err
	}
	lg.Info().Int("words", len(user)).Msg("input collected")

	res := rules.Evaluate(user, candidates, category)
	s := &report.Summary{}
	s.Add(report.PossibleWords, game.WordsOf(candidates)).
		Add(report.UserWords, user).
		Add(report.CorrectWords, res.Correct).
		Add(report.MissedWords, res.Missed)
	if err := report.Emit(s, o.ResultPath, o.Out); err != nil {
		return nil, err
	}
	return s, nil
}
