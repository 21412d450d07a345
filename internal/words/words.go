// internal/words/words.go
//
// Dictionary loading for both game variants.
//
// Responsibilities:
//   - Read a plain word list (one word per line) for the English variant.
//   - Read a tagged word list ("<word> <tag>/...") for the Ukrainian variant
//     and map each tag to a grammatical Category.
//   - Normalize text the same way for dictionary lines and player input.
//
// File formats:
//   plain:  cats\ndogs\n...
//   tagged: собака noun:anim:f/...\n
//
// Constraints:
//   • A missing or unreadable file is an error; callers treat it as fatal.
//   • Tagged lines without a tag field, or with an unknown tag, are skipped.
//   • Words are trimmed, NFC-normalized and lowercased.

package words

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Category is the grammatical category of a tagged dictionary entry.
type Category string

const (
	Noun      Category = "noun"
	Verb      Category = "verb"
	Adjective Category = "adjective"
	Adverb    Category = "adverb"
)

// Categories lists every Category in tag-matching order.
var Categories = []Category{Noun, Verb, Adjective, Adverb}

// abbreviations maps tag prefixes to categories.
// Order matters: the first prefix that matches wins.
var abbreviations = []struct {
	prefix   string
	category Category
}{
	{"n", Noun},
	{"v", Verb},
	{"adj", Adjective},
	{"adv", Adverb},
}

// ParseTag maps a tag field such as "noun:anim/..." to its Category.
// Surrounding slashes are ignored. ok is false for unknown tags.
func ParseTag(tag string) (c Category, ok bool) {
	tag = strings.Trim(tag, "/")
	for _, a := range abbreviations {
		if strings.HasPrefix(tag, a.prefix) {
			return a.category, true
		}
	}
	return "", false
}

// Entry is one line of a tagged dictionary.
type Entry struct {
	Word     string
	Category Category
}

// Normalizer folds text to the canonical form used for comparisons.
// It is not safe for concurrent use.
type Normalizer struct {
	lower cases.Caser
}

// NewNormalizer returns a Normalizer lowercasing with the rules of tag.
func NewNormalizer(tag language.Tag) *Normalizer {
	return &Normalizer{lower: cases.Lower(tag)}
}

// Normalize trims s, composes it to NFC and lowercases it.
func (n *Normalizer) Normalize(s string) string {
	return n.lower.String(norm.NFC.String(strings.TrimSpace(s)))
}

// ReadWordFile loads one word per line from a file.
// Blank lines are dropped; duplicates are kept.
func ReadWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	n := NewNormalizer(language.Und)
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w := n.Normalize(sc.Text()); w != "" {
			out = append(out, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("entries", len(out)).Msg("word list loaded")
	return out, nil
}

// ReadTaggedFile loads "<word> <tag>" lines from a file.
// Lines that cannot be parsed are skipped and counted.
func ReadTaggedFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	n := NewNormalizer(language.Ukrainian)
	var (
		out     []Entry
		skipped int
	)
	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		e, ok := parseTaggedLine(sc.Text(), n)
		if !ok {
			if strings.TrimSpace(sc.Text()) != "" {
				skipped++
				log.Debug().Str("path", path).Int("line", line).Msg("skipping malformed entry")
			}
			continue
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	if skipped > 0 {
		log.Warn().Str("path", path).Int("skipped", skipped).Msg("malformed dictionary lines skipped")
	}
	log.Debug().Str("path", path).Int("entries", len(out)).Msg("tagged list loaded")
	return out, nil
}

// parseTaggedLine splits a line into word and tag fields.
func parseTaggedLine(line string, n *Normalizer) (Entry, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Entry{}, false
	}
	c, ok := ParseTag(fields[1])
	if !ok {
		return Entry{}, false
	}
	return Entry{Word: n.Normalize(fields[0]), Category: c}, true
}

// ToSet converts a list of strings into a lookup set.
func ToSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}
