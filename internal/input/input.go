// internal/input/input.go
//
// Collects the player's words from a line-oriented reader.
//
// Usage: one word per line; end-of-stream (Ctrl-D on *nix, Ctrl-Z+Enter on
// Windows) finishes the collection. No sentinel word exists.
// Lines are normalized (trimmed, NFC, lowercased) and blank lines are dropped;
// nothing else is checked here.

package input

import (
	"bufio"
	"fmt"
	"io"
	"iter"

	"golang.org/x/text/language"

	"github.com/robalobadob/target/internal/words"
)

// Collector reads normalized words from a reader.
type Collector struct {
	norm *words.Normalizer
}

// NewCollector returns a Collector lowercasing with the rules of tag.
func NewCollector(tag language.Tag) *Collector {
	return &Collector{norm: words.NewNormalizer(tag)}
}

// Lines yields one normalized word per non-blank line of r until
// end-of-stream. A read error is yielded once and ends the sequence.
func (c *Collector) Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			w := c.norm.Normalize(sc.Text())
			if w == "" {
				continue
			}
			if !yield(w, nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield("", fmt.Errorf("input: read: %w", err))
		}
	}
}

// Collect drains Lines into a slice, preserving input order.
func (c *Collector) Collect(r io.Reader) ([]string, error) {
	out := []string{}
	for w, err := range c.Lines(r) {
		if err != nil {
			return out, err
		}
		out = append(out, w)
	}
	return out, nil
}
