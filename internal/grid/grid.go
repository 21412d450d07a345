// internal/grid/grid.go
//
// Letter grids for a round.
//
// Two shapes exist:
//   - English: 3x3 uppercase letters A-Z, repetition allowed.
//   - Ukrainian: one row of 5 distinct lowercase letters from an alphabet.
//
// Randomness is injected through Rand so rounds are reproducible in tests
// and for daily seeds. A Grid never changes after construction.

package grid

import (
	"errors"
	"math/rand/v2"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

const (
	englishSize   = 3
	ukrainianSize = 5
)

// UkrainianAlphabet is the default alphabet of the Ukrainian variant.
const UkrainianAlphabet = "абвгґдеєжзиіїйклмнопрстуфхцчшщьюя"

// Rand is the randomness source a grid is drawn from.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG-backed source seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Grid is an immutable block of letters.
type Grid struct {
	rows [][]rune
}

// FromRows builds a Grid from explicit rows, e.g. {"IGE", "PIS", "WMG"}.
func FromRows(rows ...string) Grid {
	g := Grid{rows: make([][]rune, 0, len(rows))}
	for _, r := range rows {
		g.rows = append(g.rows, []rune(r))
	}
	return g
}

// NewEnglish draws a 3x3 grid of uppercase letters with repetition.
func NewEnglish(r Rand) Grid {
	g := Grid{rows: make([][]rune, englishSize)}
	for i := range g.rows {
		row := make([]rune, englishSize)
		for j := range row {
			row[j] = rune('A' + r.IntN(26))
		}
		g.rows[i] = row
	}
	return g
}

// NewUkrainian samples 5 distinct letters from alphabet without repetition.
// Returns an error if alphabet holds fewer than 5 distinct letters.
func NewUkrainian(r Rand, alphabet string) (Grid, error) {
	pool := distinct(strings.ToLower(alphabet))
	if len(pool) < ukrainianSize {
		return Grid{}, errors.New("grid: alphabet has fewer than 5 distinct letters")
	}
	// Partial Fisher-Yates: the first ukrainianSize slots end up sampled.
	for i := 0; i < ukrainianSize; i++ {
		j := i + r.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	row := make([]rune, ukrainianSize)
	copy(row, pool[:ukrainianSize])
	return Grid{rows: [][]rune{row}}, nil
}

// Letters flattens the grid in row order, lowercased.
func (g Grid) Letters() []rune {
	var out []rune
	for _, row := range g.rows {
		for _, r := range row {
			out = append(out, unicode.ToLower(r))
		}
	}
	return out
}

// Central returns the middle letter in sequence order, lowercased.
func (g Grid) Central() rune {
	l := g.Letters()
	if len(l) == 0 {
		return 0
	}
	return l[len(l)/2]
}

// Rows returns a copy of the grid rows as strings.
func (g Grid) Rows() []string {
	out := make([]string, len(g.rows))
	for i, row := range g.rows {
		out[i] = string(row)
	}
	return out
}

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	Padding(0, 1)

// Render draws the grid in a box, letters separated by spaces.
func (g Grid) Render() string {
	lines := make([]string, len(g.rows))
	for i, row := range g.rows {
		cells := make([]string, len(row))
		for j, r := range row {
			cells[j] = string(r)
		}
		lines[i] = strings.Join(cells, " ")
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

// distinct returns the unique letters of s in first-seen order.
func distinct(s string) []rune {
	seen := make(map[rune]struct{})
	var out []rune
	for _, r := range s {
		if _, ok := seen[r]; ok || unicode.IsSpace(r) {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
