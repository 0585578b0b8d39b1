package wordle

import "errors"

var (
	ErrWordLen         = errors.New("word is not 5 letters")
	ErrWordChar        = errors.New("word has a character outside a-z")
	ErrInvalidFeedback = errors.New("feedback must be 5 characters of n, y or g")
	ErrDuplicateGuess  = errors.New("guess already played")

	// ErrExhaustedCandidates means no vocabulary word satisfies the history.
	// The game can not continue.
	ErrExhaustedCandidates = errors.New("no viable candidates left")

	// ErrUnrecognizedGuess is reported by a judge that does not accept the word.
	ErrUnrecognizedGuess = errors.New("guess not in the judge's word list")
)
