package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/powellquiring/wordlebot/wordle"
)

// ReadFrequencies reads "word count" pairs, one per line. Words that are not
// five letters a-z are skipped so a general frequency list can be used as is.
// A repeated word adds to its count.
func ReadFrequencies(r io.Reader) (wordle.WordFrequencies, error) {
	freq := make(wordle.WordFrequencies, 4096)
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want word and count, got %q", line, scanner.Text())
		}
		w, err := wordle.ParseWord(fields[0])
		if err != nil {
			continue
		}
		count, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: failed to parse frequency: %w", line, err)
		}
		if count < 0 {
			return nil, fmt.Errorf("line %d: negative frequency %d", line, count)
		}
		freq[w] += count
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return freq, nil
}

// LoadFrequencies reads a frequency file. An empty path is an empty table.
func LoadFrequencies(path string) (wordle.WordFrequencies, error) {
	if path == "" {
		return wordle.WordFrequencies{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	freq, err := ReadFrequencies(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return freq, nil
}
