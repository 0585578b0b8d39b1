package wordle

import (
	"sort"

	mapset "github.com/deckarep/golang-set"
)

// Constraints is everything a history says about the solution.
//
// A letter that was a hit or present somewhere is never forbidden, even if
// another copy of it was a miss. Repeated letters are not modelled beyond that.
type Constraints struct {
	Fixed     map[int]byte   // position -> letter, from hits
	Required  map[byte][]int // letter -> positions it can not be at, from present
	Forbidden mapset.Set     // letters (byte) from misses
}

// Aggregate folds the whole history into a fresh Constraints.
func Aggregate(h *History) Constraints {
	ret := Constraints{
		Fixed:     make(map[int]byte, WordLen),
		Required:  make(map[byte][]int),
		Forbidden: mapset.NewThreadUnsafeSet(),
	}
	misses := []byte{}
	for _, turn := range h.Range {
		for i, mark := range turn.Feedback {
			letter := turn.Guess[i]
			switch mark {
			case Hit:
				ret.Fixed[i] = letter
			case Present:
				ret.Required[letter] = append(ret.Required[letter], i)
			case Miss:
				misses = append(misses, letter)
			}
		}
	}
	// misses are applied last so the exception does not depend on turn order
	for _, letter := range misses {
		if ret.fixedLetter(letter) {
			continue
		}
		if _, ok := ret.Required[letter]; ok {
			continue
		}
		ret.Forbidden.Add(letter)
	}
	return ret
}

func (c Constraints) fixedLetter(letter byte) bool {
	for _, l := range c.Fixed {
		if l == letter {
			return true
		}
	}
	return false
}

// Known is the count of fixed positions plus distinct required letters.
func (c Constraints) Known() int {
	return len(c.Fixed) + len(c.Required)
}

// Pattern renders the fixed positions as a mask like "cr...".
func (c Constraints) Pattern() string {
	ret := []byte(".....")
	for i, l := range c.Fixed {
		ret[i] = l
	}
	return string(ret)
}

// ForbiddenLetters is the forbidden set in alphabetical order.
func (c Constraints) ForbiddenLetters() []byte {
	ret := []byte{}
	if c.Forbidden == nil {
		return ret
	}
	c.Forbidden.Each(func(i interface{}) bool {
		ret = append(ret, i.(byte))
		return false
	})
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}

func (c Constraints) forbids(letter byte) bool {
	return c.Forbidden != nil && c.Forbidden.Contains(letter)
}
