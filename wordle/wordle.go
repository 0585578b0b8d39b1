package wordle

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set"
)

// WordLen is the number of letters in every guess and solution.
const WordLen = 5

// MaxTurns is the number of recorded guesses a game allows.
const MaxTurns = 6

// Word is a five letter word, stored lowercase.
type Word [WordLen]byte

// ParseWord accepts upper or lower case letters a-z.
func ParseWord(s string) (Word, error) {
	var w Word
	if len(s) != WordLen {
		return w, fmt.Errorf("%w: %q", ErrWordLen, s)
	}
	for i := 0; i < WordLen; i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c < 'a' || c > 'z' {
			return w, fmt.Errorf("%w: %q", ErrWordChar, s)
		}
		w[i] = c
	}
	return w, nil
}

// MustParseWord is ParseWord for literals known to be valid.
func MustParseWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

// ParseWords parses every string or returns the first error.
func ParseWords(strings []string) ([]Word, error) {
	ret := make([]Word, 0, len(strings))
	for _, s := range strings {
		w, err := ParseWord(s)
		if err != nil {
			return nil, err
		}
		ret = append(ret, w)
	}
	return ret, nil
}

func (w Word) String() string {
	return string(w[:])
}

// Upper is the form shown to the player.
func (w Word) Upper() string {
	return strings.ToUpper(w.String())
}

// Contains reports whether letter occurs anywhere in w.
func (w Word) Contains(letter byte) bool {
	for _, c := range w {
		if c == letter {
			return true
		}
	}
	return false
}

// Letters is the set of distinct letters in w.
func (w Word) Letters() mapset.Set {
	ret := mapset.NewThreadUnsafeSet()
	for _, c := range w {
		ret.Add(c)
	}
	return ret
}

// Distinct is the number of unique letters, 1..5.
func (w Word) Distinct() int {
	return w.Letters().Cardinality()
}

func WordsToStrings(words []Word) []string {
	ret := make([]string, 0, len(words))
	for _, w := range words {
		ret = append(ret, w.String())
	}
	return ret
}
