// internal/game/ukrainian.go
//
// Rules of the Ukrainian variant.
//
// A dictionary entry is a candidate when its word has at most 5 letters and
// starts with one of the grid letters. Each round targets one grammatical
// category: a player word is correct only if the dictionary lists it with
// that category; candidates of the category the player never typed are missed.

package game

import (
	"cmp"
	"slices"
	"unicode/utf8"

	"github.com/robalobadob/target/internal/grid"
	"github.com/robalobadob/target/internal/words"
)

// NewUkrainianRules derives the rules for g.
func NewUkrainianRules(g grid.Grid) UkrainianRules {
	return UkrainianRules{
		MaxLen:   ukrainianMaxLen,
		Initials: g.Letters(),
	}
}

// Admits reports whether w is short enough and starts with a grid letter.
func (r UkrainianRules) Admits(w string) bool {
	if w == "" || utf8.RuneCountInString(w) > r.MaxLen {
		return false
	}
	first, _ := utf8.DecodeRuneInString(w)
	return slices.Contains(r.Initials, first)
}

// Candidates returns the deduplicated entries r admits, sorted by word and
// then by category.
func (r UkrainianRules) Candidates(entries []words.Entry) []words.Entry {
	seen := make(map[words.Entry]struct{})
	out := []words.Entry{}
	for _, e := range entries {
		if _, dup := seen[e]; dup || !r.Admits(e.Word) {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b words.Entry) int {
		return cmp.Or(cmp.Compare(a.Word, b.Word), cmp.Compare(a.Category, b.Category))
	})
	return out
}

// Evaluate checks user words against entries for category c.
// Correct words keep input order; missed words are sorted.
func (r UkrainianRules) Evaluate(user []string, entries []words.Entry, c words.Category) Outcome {
	target := make(map[string]struct{})
	for _, e := range entries {
		if e.Category == c && r.Admits(e.Word) {
			target[e.Word] = struct{}{}
		}
	}

	out := Outcome{Category: c, Correct: []string{}, Missed: []string{}}
	typed := make(map[string]struct{}, len(user))
	for _, w := range user {
		if _, dup := typed[w]; dup {
			continue
		}
		typed[w] = struct{}{}
		if _, ok := target[w]; ok {
			out.Correct = append(out.Correct, w)
		}
	}
	for w := range target {
		if _, ok := typed[w]; !ok {
			out.Missed = append(out.Missed, w)
		}
	}
	slices.Sort(out.Missed)
	return out
}

// PickCategory chooses the round's target category uniformly.
func PickCategory(r grid.Rand) words.Category {
	return words.Categories[r.IntN(len(words.Categories))]
}

// WordsOf returns the distinct words of entries in their existing order.
func WordsOf(entries []words.Entry) []string {
	seen := make(map[string]struct{}, len(entries))
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.Word]; dup {
			continue
		}
		seen[e.Word] = struct{}{}
		out = append(out, e.Word)
	}
	return out
}
