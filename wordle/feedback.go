package wordle

import (
	"fmt"
	"strconv"
)

// Mark is the judge's verdict for one letter of a guess.
type Mark uint8

const (
	Miss Mark = iota
	Present
	Hit
)

// Feedback is positionally aligned with the guess it judges.
type Feedback [WordLen]Mark

// Solved is the feedback for a correct guess.
var Solved = Feedback{Hit, Hit, Hit, Hit, Hit}

// ParseFeedback reads the n (miss), y (present), g (hit) form.
func ParseFeedback(colors string) (Feedback, error) {
	var ret Feedback
	if len(colors) != WordLen {
		return ret, fmt.Errorf("%w: %q", ErrInvalidFeedback, colors)
	}
	for i := 0; i < WordLen; i++ {
		switch colors[i] {
		case 'n':
			ret[i] = Miss
		case 'y':
			ret[i] = Present
		case 'g':
			ret[i] = Hit
		default:
			return ret, fmt.Errorf("%w: %q", ErrInvalidFeedback, colors)
		}
	}
	return ret, nil
}

func MustParseFeedback(colors string) Feedback {
	f, err := ParseFeedback(colors)
	if err != nil {
		panic(err)
	}
	return f
}

func (m Mark) String() string {
	switch m {
	case Miss:
		return "n"
	case Present:
		return "y"
	case Hit:
		return "g"
	}
	panic("Can not format Mark: " + strconv.Itoa(int(m)))
}

func (f Feedback) String() string {
	ret := make([]byte, 0, WordLen)
	for _, m := range f {
		ret = append(ret, m.String()[0])
	}
	return string(ret)
}

func (f Feedback) IsSolved() bool {
	return f == Solved
}

// Judge returns the feedback the game gives for guess when the answer is
// solution. A repeated guess letter is marked present only as many times as
// it occurs in the solution outside of hits.
func Judge(solution, guess Word) Feedback {
	var ret Feedback
	solutionNotHit := [26]int{}
	for i, letter := range solution {
		if guess[i] == letter {
			ret[i] = Hit
		} else {
			solutionNotHit[letter-'a']++
		}
	}
	// turn the misses to present if in the word but not a hit
	for i, letter := range guess {
		if ret[i] == Miss && solutionNotHit[letter-'a'] > 0 {
			ret[i] = Present
			solutionNotHit[letter-'a']--
		}
	}
	return ret
}
