package wordle

import "fmt"

// Turn is one recorded guess and the judge's answer.
type Turn struct {
	Guess    Word
	Feedback Feedback
}

// History is the ordered record of a game. A guess is played at most once.
type History struct {
	turns  []Turn
	played map[Word]int
}

func NewHistory() *History {
	return &History{played: make(map[Word]int)}
}

// HistoryFromTurns builds a history, failing on a repeated guess.
func HistoryFromTurns(turns ...Turn) (*History, error) {
	h := NewHistory()
	for _, t := range turns {
		if err := h.Add(t.Guess, t.Feedback); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (h *History) Add(guess Word, feedback Feedback) error {
	if h.played == nil {
		h.played = make(map[Word]int)
	}
	if _, ok := h.played[guess]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateGuess, guess)
	}
	h.played[guess] = len(h.turns)
	h.turns = append(h.turns, Turn{Guess: guess, Feedback: feedback})
	return nil
}

// Played reports whether guess is already a key of the history.
func (h *History) Played(guess Word) bool {
	if h == nil {
		return false
	}
	_, ok := h.played[guess]
	return ok
}

func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return len(h.turns)
}

// Turns returns a copy, oldest first.
func (h *History) Turns() []Turn {
	if h == nil {
		return nil
	}
	ret := make([]Turn, len(h.turns))
	copy(ret, h.turns)
	return ret
}

func (h *History) Range(yield func(i int, t Turn) bool) {
	if h == nil {
		return
	}
	for i, t := range h.turns {
		if !yield(i, t) {
			return
		}
	}
}

// Solved reports whether the last recorded turn was all hits.
func (h *History) Solved() bool {
	n := h.Len()
	return n > 0 && h.turns[n-1].Feedback.IsSolved()
}
