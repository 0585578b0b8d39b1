package wordle

// Viable reports whether word is still a legal hard mode guess that could
// be the solution.
func Viable(word Word, c Constraints, h *History) bool {
	for i, letter := range c.Fixed {
		if word[i] != letter {
			return false
		}
	}
	for _, letter := range word {
		if c.forbids(letter) {
			return false
		}
	}
	for letter, badPositions := range c.Required {
		if !word.Contains(letter) {
			return false
		}
		for _, i := range badPositions {
			if word[i] == letter {
				return false
			}
		}
	}
	return !h.Played(word)
}

// Filter keeps the viable words in vocabulary order.
func Filter(vocabulary []Word, c Constraints, h *History) []Word {
	ret := []Word{}
	for _, word := range vocabulary {
		if Viable(word, c, h) {
			ret = append(ret, word)
		}
	}
	return ret
}
