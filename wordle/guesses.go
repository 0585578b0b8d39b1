package wordle

import "fmt"

// Game is the outcome of one simulated game.
type Game struct {
	Solution Word
	Guesses  []Word
	Won      bool
}

// Simulate plays one game against solution, opening with the given guesses
// and letting the solver choose the rest. The solver only ever sees the
// judge's feedback.
func Simulate(s *Solver, ix *Index, solution Word, opening []Word) (Game, error) {
	game := Game{Solution: solution}
	h := NewHistory()
	for guessCount := range MaxTurns {
		var nextGuess Word
		if guessCount < len(opening) {
			nextGuess = opening[guessCount]
		} else {
			plan, err := s.PlanIndexed(h, ix)
			if err != nil {
				return game, fmt.Errorf("solution %s after %d guesses: %w", solution, guessCount, err)
			}
			nextGuess = plan.Guess
		}
		game.Guesses = append(game.Guesses, nextGuess)
		feedback := Judge(solution, nextGuess)
		if err := h.Add(nextGuess, feedback); err != nil {
			return game, err
		}
		if feedback.IsSolved() {
			game.Won = true
			return game, nil
		}
	}
	return game, nil
}
