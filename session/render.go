package session

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/powellquiring/wordlebot/wordle"
)

var (
	colorHit     = lipgloss.Color("#538D4E")
	colorPresent = lipgloss.Color("#B59F3B")
	colorMiss    = lipgloss.Color("#3A3A3C")
	colorText    = lipgloss.Color("#FFFFFF")
	colorError   = lipgloss.Color("#E74C3C")
)

var styles = struct {
	Guess   lipgloss.Style
	Hit     lipgloss.Style
	Present lipgloss.Style
	Miss    lipgloss.Style
	Error   lipgloss.Style
}{
	Guess:   lipgloss.NewStyle().Bold(true),
	Hit:     lipgloss.NewStyle().Bold(true).Foreground(colorText).Background(colorHit).Padding(0, 1),
	Present: lipgloss.NewStyle().Bold(true).Foreground(colorText).Background(colorPresent).Padding(0, 1),
	Miss:    lipgloss.NewStyle().Bold(true).Foreground(colorText).Background(colorMiss).Padding(0, 1),
	Error:   lipgloss.NewStyle().Foreground(colorError),
}

// RenderGuess is the uppercased guess shown to the player.
func RenderGuess(guess wordle.Word) string {
	return styles.Guess.Render(guess.Upper())
}

// RenderTiles draws one coloured tile per letter.
func RenderTiles(guess wordle.Word, feedback wordle.Feedback) string {
	tiles := make([]string, 0, wordle.WordLen)
	for i, mark := range feedback {
		letter := strings.ToUpper(string(guess[i]))
		switch mark {
		case wordle.Hit:
			tiles = append(tiles, styles.Hit.Render(letter))
		case wordle.Present:
			tiles = append(tiles, styles.Present.Render(letter))
		default:
			tiles = append(tiles, styles.Miss.Render(letter))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// RenderBoard draws every turn of h, oldest first.
func RenderBoard(h *wordle.History) string {
	rows := []string{}
	for _, turn := range h.Range {
		rows = append(rows, RenderTiles(turn.Guess, turn.Feedback))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
