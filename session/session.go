// Package session runs a game turn by turn against a feedback source.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/powellquiring/wordlebot/wordle"
)

// Vocabulary is the word list the solver draws from. Remove drops a word
// the game rejected and persists the change.
type Vocabulary interface {
	Words() []wordle.Word
	Remove(word wordle.Word) error
}

// Result is how a game ended.
type Result struct {
	Won     bool
	History *wordle.History
}

func (r Result) Turns() int {
	return r.History.Len()
}

type Session struct {
	solver   *wordle.Solver
	vocab    Vocabulary
	source   FeedbackSource
	out      io.Writer
	logger   *slog.Logger
	maxTurns int
}

func New(solver *wordle.Solver, vocab Vocabulary, source FeedbackSource, out io.Writer, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		solver:   solver,
		vocab:    vocab,
		source:   source,
		out:      out,
		logger:   logger,
		maxTurns: wordle.MaxTurns,
	}
}

// WithMaxTurns changes the number of recorded turns before the game is lost.
func (s *Session) WithMaxTurns(n int) *Session {
	s.maxTurns = n
	return s
}

// Play proposes guesses until the source answers all hits or the turns run
// out. Invalid responses re-ask the same guess and rejected words are removed
// from the vocabulary; neither uses up a turn. Running out of candidates ends
// the game with an error wrapping wordle.ErrExhaustedCandidates.
func (s *Session) Play(ctx context.Context) (Result, error) {
	result := Result{History: wordle.NewHistory()}
	h := result.History
	for h.Len() < s.maxTurns {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		plan, err := s.solver.Plan(h, s.vocab.Words())
		if err != nil {
			s.logger.Error("no guess left", "turn", h.Len()+1, "error", err)
			fmt.Fprintln(s.out, styles.Error.Render("No word in the list fits these answers."))
			return result, fmt.Errorf("turn %d: %w", h.Len()+1, err)
		}
		guess := plan.Guess
		s.logger.Debug("guess",
			"turn", h.Len()+1,
			"guess", guess.String(),
			"candidates", len(plan.Candidates),
			"strategy", plan.Strategy.String(),
			"pattern", plan.Constraints.Pattern())
		fmt.Fprintf(s.out, "Here's ya guess, kid:\n %s\n\n", RenderGuess(guess))

		response, err := s.source.Feedback(ctx, guess)
		if err != nil {
			return result, fmt.Errorf("read feedback: %w", err)
		}
		feedback, err := Interpret(response)
		switch {
		case errors.Is(err, wordle.ErrUnrecognizedGuess):
			s.logger.Info("removing word", "guess", guess.String(), "error", err)
			if err := s.vocab.Remove(guess); err != nil {
				return result, fmt.Errorf("remove %s: %w", guess, err)
			}
			continue
		case err != nil:
			s.logger.Warn("invalid feedback", "guess", guess.String(), "response", response)
			fmt.Fprintln(s.out, styles.Error.Render("Response seems invalid? Trying again."))
			continue
		}
		if err := h.Add(guess, feedback); err != nil {
			return result, err
		}
		fmt.Fprintln(s.out, RenderBoard(h))
		if feedback.IsSolved() {
			result.Won = true
			s.logger.Info("solved", "turns", h.Len(), "word", guess.String())
			fmt.Fprintln(s.out, "Winner winner chicken dinner. The singularity is nigh!")
			return result, nil
		}
	}
	s.logger.Info("out of turns", "turns", h.Len())
	fmt.Fprintln(s.out, "We have failed you and our creator. We shall weep robot tears.")
	return result, nil
}
