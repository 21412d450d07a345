// internal/report/report.go
//
// Round summary formatting and output.
//
// A Summary is an ordered list of labeled word lists rendered as
//   Possible words: a, b, c
//   User words: ...
// It is written once to the result file (overwritten each run) and the
// same text is echoed to the console.

package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Labels used by the two variants.
const (
	PossibleWords = "Possible words"
	UserWords     = "User words"
	PureUserWords = "Pure user words"
	CorrectWords  = "Correct words"
	MissedWords   = "Missed words"
)

// Line is one labeled list of words.
type Line struct {
	Label string
	Words []string
}

// Summary is the ordered set of lines describing a round.
type Summary struct {
	Lines []Line
}

// Add appends a labeled line and returns the summary for chaining.
func (s *Summary) Add(label string, words []string) *Summary {
	s.Lines = append(s.Lines, Line{Label: label, Words: words})
	return s
}

// Get returns the words under label.
func (s *Summary) Get(label string) ([]string, bool) {
	for _, l := range s.Lines {
		if l.Label == label {
			return l.Words, true
		}
	}
	return nil, false
}

// String renders the summary, one "Label: w1, w2" line each.
func (s *Summary) String() string {
	var b strings.Builder
	for _, l := range s.Lines {
		fmt.Fprintf(&b, "%s: %s\n", l.Label, strings.Join(l.Words, ", "))
	}
	return b.String()
}

// Emit writes the summary to path, replacing any previous content, and
// echoes it to console.
func Emit(s *Summary, path string, console io.Writer) error {
	text := s.String()
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("bytes", len(text)).Msg("summary written")
	if _, err := io.WriteString(console, text); err != nil {
		return fmt.Errorf("report: echo: %w", err)
	}
	return nil
}
