// internal/game/types.go
//
// Core type definitions for round validation.
// Defines:
//   - EnglishRules: the 3x3 grid rules (length, central letter, letter supply).
//   - UkrainianRules: the 5-letter grid rules (length, initial letter).
//   - Outcome: correct vs. missed words against a target category.

package game

import "github.com/robalobadob/target/internal/words"

const (
	englishMinLen   = 4
	ukrainianMaxLen = 5
)

// EnglishRules holds the constraints a word must meet on an English grid.
type EnglishRules struct {
	MinLen  int       // Minimum word length in letters (4).
	Central rune      // Letter every word must contain.
	Supply  words.Bag // Letters available on the grid, with multiplicity.
}

// UkrainianRules holds the constraints a word must meet on a Ukrainian grid.
type UkrainianRules struct {
	MaxLen   int    // Maximum word length in letters (5).
	Initials []rune // Grid letters a word may start with.
}

// Outcome is the result of checking player words against one category.
type Outcome struct {
	Category words.Category // Active target category of the round.
	Correct  []string       // Player words found in the dictionary with Category.
	Missed   []string       // Dictionary words of Category the player did not type.
}
