package session

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/powellquiring/wordlebot/wordle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpret(t *testing.T) {
	f, err := Interpret("ggnny")
	require.NoError(t, err)
	assert.Equal(t, "ggnny", f.String())

	_, err = Interpret(NotAWord)
	assert.ErrorIs(t, err, wordle.ErrUnrecognizedGuess)
	_, err = Interpret("gg")
	assert.ErrorIs(t, err, wordle.ErrInvalidFeedback)
}

func TestPrompter(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("  ggnny \nnogood\nyyyyy"), &out)
	ctx := context.Background()
	crane := wordle.MustParseWord("crane")

	for _, expected := range []string{"ggnny", NotAWord, "yyyyy"} {
		response, err := p.Feedback(ctx, crane)
		require.NoError(t, err)
		assert.Equal(t, expected, response)
	}
	_, err := p.Feedback(ctx, crane)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 4, strings.Count(out.String(), "What was the game's response?"))
}

func TestOracle(t *testing.T) {
	ctx := context.Background()
	dictionary, err := wordle.ParseWords([]string{"crane", "react"})
	require.NoError(t, err)
	o := NewOracle(wordle.MustParseWord("crane"), dictionary)

	response, err := o.Feedback(ctx, wordle.MustParseWord("react"))
	require.NoError(t, err)
	assert.Equal(t, "yygyn", response)
	response, err = o.Feedback(ctx, wordle.MustParseWord("ghost"))
	require.NoError(t, err)
	assert.Equal(t, NotAWord, response)

	open := NewOracle(wordle.MustParseWord("crane"), nil)
	response, err = open.Feedback(ctx, wordle.MustParseWord("ghost"))
	require.NoError(t, err)
	assert.Equal(t, "nnnnn", response)
}

func TestRender(t *testing.T) {
	crane := wordle.MustParseWord("crane")
	assert.Contains(t, RenderGuess(crane), "CRANE")

	tiles := RenderTiles(crane, wordle.MustParseFeedback("gynnn"))
	for _, letter := range []string{"C", "R", "A", "N", "E"} {
		assert.Contains(t, tiles, letter)
	}
	h := wordle.NewHistory()
	require.NoError(t, h.Add(crane, wordle.MustParseFeedback("gynnn")))
	require.NoError(t, h.Add(wordle.MustParseWord("ghost"), wordle.MustParseFeedback("nnnnn")))
	assert.Equal(t, 2, strings.Count(RenderBoard(h), "\n")+1)
}
