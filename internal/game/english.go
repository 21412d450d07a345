// internal/game/english.go
//
// Rules of the English variant.
//
// A word is admitted when:
//   1. it has at least 4 letters,
//   2. it contains the grid's central letter,
//   3. no letter occurs in it more often than on the grid.
//
// The same predicate filters the dictionary and the player's words.

package game

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/robalobadob/target/internal/grid"
	"github.com/robalobadob/target/internal/words"
)

// NewEnglishRules derives the rules for g.
func NewEnglishRules(g grid.Grid) EnglishRules {
	return EnglishRules{
		MinLen:  englishMinLen,
		Central: g.Central(),
		Supply:  words.NewBag(g.Letters()),
	}
}

// Admits reports whether w satisfies every grid constraint.
func (r EnglishRules) Admits(w string) bool {
	return utf8.RuneCountInString(w) >= r.MinLen &&
		strings.ContainsRune(w, r.Central) &&
		r.Supply.Covers(w)
}

// Candidates returns the deduplicated, sorted dictionary words r admits.
func (r EnglishRules) Candidates(dict []string) []string {
	return r.admitted(dict, nil)
}

// PureUserWords returns the player words that r admits but that are not in
// dict. Deduplicated and sorted.
func (r EnglishRules) PureUserWords(user, dict []string) []string {
	return r.admitted(user, words.ToSet(dict))
}

// admitted filters list by Admits, dropping anything present in exclude.
func (r EnglishRules) admitted(list []string, exclude map[string]struct{}) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, w := range list {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		if _, skip := exclude[w]; skip {
			continue
		}
		if r.Admits(w) {
			out = append(out, w)
		}
	}
	slices.Sort(out)
	return out
}
