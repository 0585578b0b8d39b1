package wordle

import (
	"fmt"
	"strings"
)

// LetterScores weights each letter a-z. Index 0 is 'a'.
type LetterScores [26]float64

// Score is the weight of one lowercase letter.
func (ls *LetterScores) Score(letter byte) float64 {
	return ls[letter-'a']
}

// Sum adds the weight of every letter of w, repeats included.
func (ls *LetterScores) Sum(w Word) float64 {
	sum := 0.0
	for _, letter := range w {
		sum += ls.Score(letter)
	}
	return sum
}

// LetterScoresFromMap accepts single letter keys in either case.
// Letters missing from m weigh zero.
func LetterScoresFromMap(m map[string]float64) (LetterScores, error) {
	var ret LetterScores
	for key, score := range m {
		k := strings.ToLower(key)
		if len(k) != 1 || k[0] < 'a' || k[0] > 'z' {
			return ret, fmt.Errorf("letter score key %q is not a letter", key)
		}
		if score < 0 {
			return ret, fmt.Errorf("letter score for %q is negative", key)
		}
		ret[k[0]-'a'] = score
	}
	return ret, nil
}

// UniformLetterScores gives every letter the same weight.
func UniformLetterScores(score float64) LetterScores {
	var ret LetterScores
	for i := range ret {
		ret[i] = score
	}
	return ret
}

// Wikipedia "Letter frequency", share of dictionary words containing the letter.
var DictionaryFrequency = LetterScores{
	7.8, 2.0, 4.0, 5.8, 11.0, 1.4, 3.0, 2.3, 8.2, 0.74, 2.7, 5.6, 6.8,
	7.2, 6.1, 2.8, 0.24, 7.3, 8.7, 6.7, 3.3, 1.0, 0.91, 0.27, 1.6, 0.44,
}

// Wikipedia "Letter frequency", share of letters in running English text.
var TextFrequency = LetterScores{
	8.2, 1.5, 2.7, 4.7, 13.0, 2.2, 2.0, 6.2, 6.9, 0.16, 0.81, 4.0, 2.7,
	6.7, 7.8, 1.9, 0.11, 5.9, 6.2, 9.6, 2.7, 0.97, 2.4, 0.15, 2.0, 0.078,
}

// LetterTable looks up a built in table by name.
func LetterTable(name string) (LetterScores, bool) {
	switch name {
	case "dictionary", "":
		return DictionaryFrequency, true
	case "text":
		return TextFrequency, true
	}
	return LetterScores{}, false
}
