// Package store reads and persists the flat word files the solver works from.
package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/powellquiring/wordlebot/wordle"
)

// ReadWords reads one word per line. Blank lines are skipped, anything else
// that is not a five letter word is an error naming the line.
func ReadWords(r io.Reader) ([]wordle.Word, error) {
	scanner := bufio.NewScanner(r)
	words := []wordle.Word{}
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		w, err := wordle.ParseWord(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// WriteWords writes one lowercase word per line.
func WriteWords(w io.Writer, words []wordle.Word) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := bw.WriteString(word.String() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Vocabulary is a word file loaded into memory. Remove rewrites the file.
type Vocabulary struct {
	path  string
	words []wordle.Word
}

func LoadVocabulary(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	words, err := ReadWords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Vocabulary{path: path, words: words}, nil
}

// NewVocabulary wraps words that are persisted to path on Remove.
// An empty path keeps the vocabulary in memory only.
func NewVocabulary(path string, words []wordle.Word) *Vocabulary {
	return &Vocabulary{path: path, words: words}
}

func (v *Vocabulary) Path() string {
	return v.path
}

// Words is the current list. The caller must not modify it.
func (v *Vocabulary) Words() []wordle.Word {
	return v.words
}

func (v *Vocabulary) Len() int {
	return len(v.words)
}

// Remove drops every copy of word and saves the result. Removing a word
// that is not present is not an error and does not touch the file.
func (v *Vocabulary) Remove(word wordle.Word) error {
	kept := make([]wordle.Word, 0, len(v.words))
	for _, w := range v.words {
		if w != word {
			kept = append(kept, w)
		}
	}
	if len(kept) == len(v.words) {
		return nil
	}
	v.words = kept
	return v.Save()
}

// Save replaces the file through a temporary file in the same directory.
func (v *Vocabulary) Save() error {
	if v.path == "" {
		return nil
	}
	dir := filepath.Dir(v.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(v.path)+".*")
	if err != nil {
		return fmt.Errorf("save vocabulary: %w", err)
	}
	defer os.Remove(tmp.Name())
	if err := WriteWords(tmp, v.words); err != nil {
		tmp.Close()
		return fmt.Errorf("save vocabulary: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save vocabulary: %w", err)
	}
	mode := os.FileMode(0o644)
	if info, err := os.Stat(v.path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return fmt.Errorf("save vocabulary: %w", err)
	}
	if err := os.Rename(tmp.Name(), v.path); err != nil {
		return fmt.Errorf("save vocabulary: %w", err)
	}
	return nil
}
