package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/powellquiring/wordlebot/wordle"
)

// NotAWord is the response for a guess the game does not accept.
const NotAWord = "nogood"

// FeedbackSource answers each proposed guess with the game's response:
// five characters of n, y, g or NotAWord.
type FeedbackSource interface {
	Feedback(ctx context.Context, guess wordle.Word) (string, error)
}

// Interpret turns a raw response into feedback. It fails with
// wordle.ErrUnrecognizedGuess for NotAWord and wordle.ErrInvalidFeedback for
// anything that is not five of n, y, g.
func Interpret(response string) (wordle.Feedback, error) {
	if response == NotAWord {
		return wordle.Feedback{}, wordle.ErrUnrecognizedGuess
	}
	return wordle.ParseFeedback(response)
}

const prompt = "What was the game's response? Type n for a miss, g for green and y for yellow.\n" +
	"If not in word list, type '" + NotAWord + "'.\n" +
	"_____\n"

// Prompter asks a person at a terminal.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

func (p *Prompter) Feedback(ctx context.Context, guess wordle.Word) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.w, prompt)
	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Oracle plays the game's side with a known solution.
type Oracle struct {
	solution wordle.Word
	accepted map[wordle.Word]bool
}

// NewOracle judges against solution. Guesses outside dictionary get
// NotAWord; a nil dictionary accepts every word.
func NewOracle(solution wordle.Word, dictionary []wordle.Word) *Oracle {
	o := &Oracle{solution: solution}
	if dictionary != nil {
		o.accepted = make(map[wordle.Word]bool, len(dictionary))
		for _, w := range dictionary {
			o.accepted[w] = true
		}
	}
	return o
}

func (o *Oracle) Feedback(ctx context.Context, guess wordle.Word) (string, error) {
	if o.accepted != nil && !o.accepted[guess] {
		return NotAWord, nil
	}
	return wordle.Judge(o.solution, guess).String(), nil
}
