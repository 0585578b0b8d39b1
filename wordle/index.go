package wordle

import (
	"github.com/bits-and-blooms/bitset"
)

/*
Index answers Filter for a fixed vocabulary with set operations.

letters[0]['a'-'a'] is the set of words whose first letter is an a,
contains['a'-'a'] the set of words with one or more a.
A word is represented by its position in words.
*/
type Index struct {
	words    []Word
	letters  [WordLen][26]*bitset.BitSet
	contains [26]*bitset.BitSet
	position map[Word][]uint
}

func NewIndex(vocabulary []Word) *Index {
	n := uint(len(vocabulary))
	ret := &Index{
		words:    vocabulary,
		position: make(map[Word][]uint, n),
	}
	for l := range 26 {
		ret.contains[l] = bitset.New(n)
		for i := range WordLen {
			ret.letters[i][l] = bitset.New(n)
		}
	}
	for w, word := range vocabulary {
		for i, letter := range word {
			if letter < 'a' || letter > 'z' {
				panic("not a parsed word: " + word.String())
			}
			ret.letters[i][letter-'a'].Set(uint(w))
			ret.contains[letter-'a'].Set(uint(w))
		}
		ret.position[word] = append(ret.position[word], uint(w))
	}
	return ret
}

func (ix *Index) Len() int {
	return len(ix.words)
}

func (ix *Index) Words() []Word {
	return ix.words
}

// Candidates returns the same words as Filter(ix.Words(), c, h), in order.
func (ix *Index) Candidates(c Constraints, h *History) []Word {
	set := bitset.New(uint(len(ix.words))).Complement()
	for i, letter := range c.Fixed {
		set.InPlaceIntersection(ix.letters[i][letter-'a'])
	}
	for _, letter := range c.ForbiddenLetters() {
		set.InPlaceDifference(ix.contains[letter-'a'])
	}
	// present letters must be in the word, but not where they were guessed
	for letter, badPositions := range c.Required {
		set.InPlaceIntersection(ix.contains[letter-'a'])
		for _, i := range badPositions {
			set.InPlaceDifference(ix.letters[i][letter-'a'])
		}
	}
	for _, turn := range h.Range {
		for _, w := range ix.position[turn.Guess] {
			set.Clear(w)
		}
	}
	ret := make([]Word, 0, set.Count())
	for w, ok := set.NextSet(0); ok; w, ok = set.NextSet(w + 1) {
		ret = append(ret, ix.words[w])
	}
	return ret
}
