package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/powellquiring/wordlebot/wordle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadWords(t *testing.T) {
	words, err := ReadWords(strings.NewReader("crane\nSLATE\n\n  tower \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate", "tower"}, wordle.WordsToStrings(words))

	_, err = ReadWords(strings.NewReader("crane\ncranes\n"))
	assert.ErrorIs(t, err, wordle.ErrWordLen)
	assert.Contains(t, err.Error(), "line 2")
}

func TestVocabularyRemovePersists(t *testing.T) {
	path := writeFile(t, "five_letter_words.txt", "crane\nslate\ntower\nslate\n")
	v, err := LoadVocabulary(path)
	require.NoError(t, err)
	assert.Equal(t, 4, v.Len())

	require.NoError(t, v.Remove(wordle.MustParseWord("slate")))
	assert.Equal(t, []string{"crane", "tower"}, wordle.WordsToStrings(v.Words()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "crane\ntower\n", string(data))

	reloaded, err := LoadVocabulary(path)
	require.NoError(t, err)
	assert.Equal(t, v.Words(), reloaded.Words())

	// no temporary files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestVocabularyRemoveMissing(t *testing.T) {
	path := writeFile(t, "words.txt", "crane\n")
	v, err := LoadVocabulary(path)
	require.NoError(t, err)
	require.NoError(t, os.Remove(path))
	// nothing to remove, so the file is not written again
	require.NoError(t, v.Remove(wordle.MustParseWord("ghost")))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestVocabularyInMemory(t *testing.T) {
	words, err := wordle.ParseWords([]string{"crane", "slate"})
	require.NoError(t, err)
	v := NewVocabulary("", words)
	require.NoError(t, v.Remove(wordle.MustParseWord("crane")))
	assert.Equal(t, []string{"slate"}, wordle.WordsToStrings(v.Words()))
}

func TestLoadVocabularyErrors(t *testing.T) {
	_, err := LoadVocabulary(filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, os.IsNotExist(err))

	path := writeFile(t, "bad.txt", "crane\ncr4ne\n")
	_, err = LoadVocabulary(path)
	assert.ErrorIs(t, err, wordle.ErrWordChar)
}

func TestReadFrequencies(t *testing.T) {
	freq, err := ReadFrequencies(strings.NewReader("the 5000\ncrane 40\nSlate 10\n\ncrane 2\nit's 7\n"))
	require.NoError(t, err)
	assert.Equal(t, wordle.WordFrequencies{
		wordle.MustParseWord("crane"): 42,
		wordle.MustParseWord("slate"): 10,
	}, freq)

	_, err = ReadFrequencies(strings.NewReader("crane forty\n"))
	assert.Error(t, err)
	_, err = ReadFrequencies(strings.NewReader("crane 4 0\n"))
	assert.Error(t, err)
	_, err = ReadFrequencies(strings.NewReader("crane -4\n"))
	assert.Error(t, err)
}

func TestLoadFrequencies(t *testing.T) {
	freq, err := LoadFrequencies("")
	require.NoError(t, err)
	assert.Empty(t, freq)

	path := writeFile(t, "freq.txt", "crane 40\n")
	freq, err = LoadFrequencies(path)
	require.NoError(t, err)
	assert.Equal(t, 40, freq[wordle.MustParseWord("crane")])
}
