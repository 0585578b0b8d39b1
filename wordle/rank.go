package wordle

import (
	"sort"
)

// KnownLetterThreshold is the default known letter count at which ranking
// switches from exploring to answering.
const KnownLetterThreshold = 3

// DefaultMissingWordFactor scales the median frequency into the score of
// words absent from the frequency table.
const DefaultMissingWordFactor = 0.5

// WordFrequencies is how often each known word occurs in running text.
type WordFrequencies map[Word]int

// MissingWordScore is factor times the median count of the table, 0 when
// the table is empty. An even sized table uses the mean of the middle two.
func (wf WordFrequencies) MissingWordScore(factor float64) float64 {
	if len(wf) == 0 {
		return 0
	}
	counts := make([]int, 0, len(wf))
	for _, count := range wf {
		counts = append(counts, count)
	}
	sort.Ints(counts)
	mid := len(counts) / 2
	median := float64(counts[mid])
	if len(counts)%2 == 0 {
		median = float64(counts[mid-1]+counts[mid]) / 2
	}
	return factor * median
}

// Score is the ranking tuple for one candidate.
type Score struct {
	Distinct   int
	LetterFreq float64
	WordFreq   float64
}

// Strategy orders two Scores.
type Strategy int

const (
	// Explore prefers letter diversity: (distinct, letter freq, word freq).
	Explore Strategy = iota
	// Answer prefers likely words: (word freq, distinct, letter freq).
	Answer
)

// StrategyFor picks the strategy for the number of known letters.
func StrategyFor(known, threshold int) Strategy {
	if known < threshold {
		return Explore
	}
	return Answer
}

func (s Strategy) String() string {
	if s == Answer {
		return "answer"
	}
	return "explore"
}

// Less reports whether a ranks strictly below b.
func (s Strategy) Less(a, b Score) bool {
	switch s {
	case Answer:
		if a.WordFreq != b.WordFreq {
			return a.WordFreq < b.WordFreq
		}
		if a.Distinct != b.Distinct {
			return a.Distinct < b.Distinct
		}
		return a.LetterFreq < b.LetterFreq
	default:
		if a.Distinct != b.Distinct {
			return a.Distinct < b.Distinct
		}
		if a.LetterFreq != b.LetterFreq {
			return a.LetterFreq < b.LetterFreq
		}
		return a.WordFreq < b.WordFreq
	}
}

// Ranker scores candidates. Its tables are never modified.
type Ranker struct {
	letters     LetterScores
	frequencies WordFrequencies
	missing     float64
	threshold   int
}

// NewRanker takes the tables and the score for words missing from frequencies.
func NewRanker(letters LetterScores, frequencies WordFrequencies, missing float64) *Ranker {
	return &Ranker{
		letters:     letters,
		frequencies: frequencies,
		missing:     missing,
		threshold:   KnownLetterThreshold,
	}
}

// WithThreshold returns a copy switching to Answer at known >= threshold.
func (r *Ranker) WithThreshold(threshold int) *Ranker {
	ret := *r
	ret.threshold = threshold
	return &ret
}

func (r *Ranker) Threshold() int {
	return r.threshold
}

func (r *Ranker) Score(w Word) Score {
	freq, ok := r.frequencies[w]
	wordFreq := r.missing
	if ok {
		wordFreq = float64(freq)
	}
	return Score{
		Distinct:   w.Distinct(),
		LetterFreq: r.letters.Sum(w),
		WordFreq:   wordFreq,
	}
}

// Strategy is the ordering used when known letters are known.
func (r *Ranker) Strategy(known int) Strategy {
	return StrategyFor(known, r.threshold)
}

// Best returns the highest ranked candidate, the earliest one on ties.
func (r *Ranker) Best(candidates []Word, s Strategy) (Word, error) {
	if len(candidates) == 0 {
		return Word{}, ErrExhaustedCandidates
	}
	best := candidates[0]
	bestScore := r.Score(best)
	for _, w := range candidates[1:] {
		score := r.Score(w)
		if s.Less(bestScore, score) {
			best, bestScore = w, score
		}
	}
	return best, nil
}

type WordScore struct {
	Value Word
	Score Score
}

// Rank returns every candidate best first; ties keep candidate order.
func (r *Ranker) Rank(candidates []Word, s Strategy) []WordScore {
	ret := make([]WordScore, 0, len(candidates))
	for _, w := range candidates {
		ret = append(ret, WordScore{Value: w, Score: r.Score(w)})
	}
	sort.SliceStable(ret, func(i, j int) bool {
		return s.Less(ret[j].Score, ret[i].Score)
	})
	return ret
}
