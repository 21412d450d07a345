package input

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestCollect(t *testing.T) {
	c := NewCollector(language.English)

	got, err := c.Collect(strings.NewReader("Cats\n\n  DOGS \r\nwigs"))
	require.NoError(t, err)
	assert.Equal(t, []string{"cats", "dogs", "wigs"}, got)
}

func TestCollect_Empty(t *testing.T) {
	got, err := NewCollector(language.English).Collect(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCollect_Cyrillic(t *testing.T) {
	got, err := NewCollector(language.Ukrainian).Collect(strings.NewReader("Собака\nКІТ\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"собака", "кіт"}, got)
}

func TestCollect_ReadError(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(strings.NewReader("cats\n"), iotest.ErrReader(boom))

	got, err := NewCollector(language.English).Collect(r)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"cats"}, got)
}

func TestLines_StopEarly(t *testing.T) {
	c := NewCollector(language.English)
	var got []string
	for w, err := range c.Lines(strings.NewReader("a\nb\nc\n")) {
		require.NoError(t, err)
		got = append(got, w)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)
}
