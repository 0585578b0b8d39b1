package wordle

import "fmt"

// Solver proposes the next guess. It holds no game state.
type Solver struct {
	ranker *Ranker
}

func NewSolver(ranker *Ranker) *Solver {
	return &Solver{ranker: ranker}
}

func (s *Solver) Ranker() *Ranker {
	return s.ranker
}

// Plan is everything the solver worked out for one turn.
type Plan struct {
	Constraints Constraints
	Candidates  []Word
	Strategy    Strategy
	Guess       Word
}

// NextGuess aggregates history, filters vocabulary and picks the best word.
// It fails with ErrExhaustedCandidates when nothing in vocabulary fits.
func (s *Solver) NextGuess(h *History, vocabulary []Word) (Word, error) {
	plan, err := s.Plan(h, vocabulary)
	return plan.Guess, err
}

func (s *Solver) Plan(h *History, vocabulary []Word) (Plan, error) {
	c := Aggregate(h)
	return s.plan(c, Filter(vocabulary, c, h))
}

// PlanIndexed is Plan over a prebuilt index of the vocabulary.
func (s *Solver) PlanIndexed(h *History, ix *Index) (Plan, error) {
	c := Aggregate(h)
	return s.plan(c, ix.Candidates(c, h))
}

func (s *Solver) plan(c Constraints, candidates []Word) (Plan, error) {
	plan := Plan{
		Constraints: c,
		Candidates:  candidates,
		Strategy:    s.ranker.Strategy(c.Known()),
	}
	guess, err := s.ranker.Best(candidates, plan.Strategy)
	if err != nil {
		return plan, fmt.Errorf("pattern %s forbidden %q: %w", c.Pattern(), c.ForbiddenLetters(), err)
	}
	plan.Guess = guess
	return plan, nil
}

// NextGuess is the one shot form of Solver.NextGuess.
func NextGuess(h *History, vocabulary []Word, letters LetterScores, frequencies WordFrequencies, missingWordScore float64) (Word, error) {
	return NewSolver(NewRanker(letters, frequencies, missingWordScore)).NextGuess(h, vocabulary)
}
