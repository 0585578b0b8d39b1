package wordle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateHitsAndMisses(t *testing.T) {
	assert := assert.New(t)
	c := Aggregate(mustHistory(t, "crane", "ggnnn"))
	assert.Equal(map[int]byte{0: 'c', 1: 'r'}, c.Fixed)
	assert.Empty(c.Required)
	assert.Equal([]byte("aen"), c.ForbiddenLetters())
	assert.Equal("cr...", c.Pattern())
	assert.Equal(2, c.Known())
}

func TestAggregatePresent(t *testing.T) {
	assert := assert.New(t)
	c := Aggregate(mustHistory(t,
		"crane", "nynny",
		"tower", "nnnyy",
	))
	assert.Empty(c.Fixed)
	assert.Equal(map[byte][]int{'r': {1, 4}, 'e': {4, 3}}, c.Required)
	assert.Equal([]byte("acnotw"), c.ForbiddenLetters())
	assert.Equal(2, c.Known())
}

func TestAggregateKeepsFoundLettersOutOfForbidden(t *testing.T) {
	// second e of lever is a miss, the first is present and the third a hit
	c := Aggregate(mustHistory(t, "lever", "nyngn"))
	assert.Equal(t, map[int]byte{3: 'e'}, c.Fixed)
	assert.Equal(t, map[byte][]int{'e': {1}}, c.Required)
	assert.Equal(t, []byte("lrv"), c.ForbiddenLetters())

	// a miss recorded before the hit is also not forbidden
	early := Aggregate(mustHistory(t,
		"sheep", "nnnnn",
		"crane", "nnnng",
	))
	late := Aggregate(mustHistory(t,
		"crane", "nnnng",
		"sheep", "nnnnn",
	))
	assert.Equal(t, []byte("achnprs"), early.ForbiddenLetters())
	assert.Equal(t, early.ForbiddenLetters(), late.ForbiddenLetters())
}

func TestAggregateIdempotent(t *testing.T) {
	h := mustHistory(t,
		"crane", "nynny",
		"tower", "nnnyy",
		"rebut", "ygnnn",
	)
	first := Aggregate(h)
	second := Aggregate(h)
	assert.Equal(t, first.Fixed, second.Fixed)
	assert.Equal(t, first.Required, second.Required)
	assert.Equal(t, first.ForbiddenLetters(), second.ForbiddenLetters())
	assert.True(t, first.Forbidden.Equal(second.Forbidden))

	// fresh structures every call
	first.Fixed[4] = 'z'
	assert.NotContains(t, second.Fixed, 4)
}

func TestAggregateEmpty(t *testing.T) {
	c := Aggregate(NewHistory())
	assert.Empty(t, c.Fixed)
	assert.Empty(t, c.Required)
	assert.Empty(t, c.ForbiddenLetters())
	assert.Equal(t, 0, c.Known())
}
