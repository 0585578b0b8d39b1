package wordle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// five letter words without repeated letters, so the single occurrence
// constraint model is exact for them
var distinctWords = []string{
	"crane", "slate", "tower", "cigar", "rebut", "blush", "focal", "dwarf", "model", "stink",
	"grade", "quiet", "bench", "feign", "crisp", "crumb", "crust", "cramp", "crowd", "plumb",
	"pride", "trace", "react", "caret", "cater", "brick", "flint", "ghost", "jumpy", "vocal",
	"local", "octal", "clank", "cloak", "north", "shirt", "world", "mount", "point", "fight",
	"light", "night", "right", "sight", "might",
}

func WW(s string) Word {
	return MustParseWord(s)
}

func mustWords(t testing.TB, strings []string) []Word {
	words, err := ParseWords(strings)
	require.NoError(t, err)
	return words
}

func mustHistory(t testing.TB, pairs ...string) *History {
	h := NewHistory()
	for i := 0; i < len(pairs); i += 2 {
		require.NoError(t, h.Add(WW(pairs[i]), MustParseFeedback(pairs[i+1])))
	}
	return h
}

func TestParseWord(t *testing.T) {
	assert := assert.New(t)
	w, err := ParseWord("CRane")
	assert.NoError(err)
	assert.Equal("crane", w.String())
	assert.Equal("CRANE", w.Upper())

	_, err = ParseWord("cran")
	assert.True(errors.Is(err, ErrWordLen))
	_, err = ParseWord("cranes")
	assert.True(errors.Is(err, ErrWordLen))
	_, err = ParseWord("cr4ne")
	assert.True(errors.Is(err, ErrWordChar))
}

func TestParseWords(t *testing.T) {
	words, err := ParseWords([]string{"crane", "SLATE"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate"}, WordsToStrings(words))

	_, err = ParseWords([]string{"crane", "bad"})
	assert.ErrorIs(t, err, ErrWordLen)
}

func TestDistinct(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(5, WW("crane").Distinct())
	assert.Equal(4, WW("hello").Distinct())
	assert.Equal(1, WW("aaaaa").Distinct())
	assert.True(WW("hello").Contains('l'))
	assert.False(WW("hello").Contains('z'))
}

func TestParseFeedback(t *testing.T) {
	for _, valid := range []string{"ggggg", "nnnnn", "ygnny"} {
		f, err := ParseFeedback(valid)
		assert.NoError(t, err, valid)
		assert.Equal(t, valid, f.String())
	}
	for _, invalid := range []string{"", "gggg", "gggggg", "rrggy", "GGGGG", "nogood"} {
		_, err := ParseFeedback(invalid)
		assert.ErrorIs(t, err, ErrInvalidFeedback, invalid)
	}
	assert.True(t, MustParseFeedback("ggggg").IsSolved())
	assert.False(t, MustParseFeedback("ggggy").IsSolved())
}

func TestJudge(t *testing.T) {
	cases := []struct {
		solution, guess, feedback string
	}{
		{"crane", "crane", "ggggg"},
		{"crane", "react", "yygyn"},
		{"crane", "bloke", "nnnng"},
		{"abbey", "kebab", "nygyy"}, // only one b left after the hit
		{"crane", "eerie", "nnyng"},
		{"crane", "ghost", "nnnnn"},
	}
	for _, c := range cases {
		got := Judge(WW(c.solution), WW(c.guess))
		assert.Equal(t, c.feedback, got.String(), "%s against %s", c.guess, c.solution)
	}
}

func TestHistory(t *testing.T) {
	assert := assert.New(t)
	h := NewHistory()
	assert.Equal(0, h.Len())
	assert.False(h.Solved())

	assert.NoError(h.Add(WW("crane"), MustParseFeedback("ggnnn")))
	assert.NoError(h.Add(WW("crust"), MustParseFeedback("ggggg")))
	err := h.Add(WW("crane"), MustParseFeedback("nnnnn"))
	assert.ErrorIs(err, ErrDuplicateGuess)

	assert.Equal(2, h.Len())
	assert.True(h.Played(WW("crane")))
	assert.False(h.Played(WW("slate")))
	assert.True(h.Solved())
	turns := h.Turns()
	assert.Equal("crane", turns[0].Guess.String())
	assert.Equal("crust", turns[1].Guess.String())
}

func TestHistoryFromTurns(t *testing.T) {
	_, err := HistoryFromTurns(
		Turn{WW("crane"), MustParseFeedback("nnnnn")},
		Turn{WW("crane"), MustParseFeedback("nnnnn")},
	)
	assert.ErrorIs(t, err, ErrDuplicateGuess)

	var nilHistory *History
	assert.Equal(t, 0, nilHistory.Len())
	assert.False(t, nilHistory.Played(WW("crane")))
}
