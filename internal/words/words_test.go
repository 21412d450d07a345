package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dict")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadWordFile(t *testing.T) {
	path := writeFile(t, "Cats\n  dogs \n\ncat\r\ncats\n")

	got, err := ReadWordFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"cats", "dogs", "cat", "cats"}, got)
}

func TestReadWordFile_Missing(t *testing.T) {
	_, err := ReadWordFile(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "words: open")
}

func TestReadTaggedFile(t *testing.T) {
	path := writeFile(t, "собака noun:anim:f/v_naz\n"+
		"бігти verb:imperf\n"+
		"гарний adj:m:v_naz\n"+
		"швидко adv\n"+
		"сам\n"+ // no tag field
		"ой intj\n"+ // unknown tag
		"\n"+
		"Дім /noun:inanim/\n")

	got, err := ReadTaggedFile(path)
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Word: "собака", Category: Noun},
		{Word: "бігти", Category: Verb},
		{Word: "гарний", Category: Adjective},
		{Word: "швидко", Category: Adverb},
		{Word: "дім", Category: Noun},
	}, got)
}

func TestReadTaggedFile_Missing(t *testing.T) {
	_, err := ReadTaggedFile(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag  string
		want Category
		ok   bool
	}{
		{"noun", Noun, true},
		{"/n/", Noun, true},
		{"verb:perf", Verb, true},
		{"adj", Adjective, true},
		{"adv", Adverb, true},
		{"advp", Adverb, true},
		{"intj", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, ok := ParseTag(tt.tag)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizer(t *testing.T) {
	n := NewNormalizer(language.Ukrainian)
	// "Ї" written as І plus a combining diaeresis composes to a single rune.
	assert.Equal(t, "їжак", n.Normalize("  \u0406\u0308жак \t"))
	assert.Equal(t, "wigs", NewNormalizer(language.English).Normalize("WIGS"))
}

func TestBag(t *testing.T) {
	b := NewBag([]rune("igepiswmg"))
	assert.Equal(t, 2, b.Count('i'))
	assert.Equal(t, 2, b.Count('g'))
	assert.Equal(t, 0, b.Count('z'))

	assert.True(t, b.Covers("wigs"))
	assert.True(t, b.Covers("pigs"))
	assert.False(t, b.Covers("giggle"), "three g's and letters off the grid")
	assert.False(t, b.Covers("mississippi"))
	assert.True(t, b.Covers(""))
}
