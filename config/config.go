// Package config loads solver settings: defaults, then an optional YAML
// file, then WORDLEBOT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/powellquiring/wordlebot/wordle"
	"gopkg.in/yaml.v3"
)

type Config struct {
	WordsPath       string `yaml:"words_path"`
	FrequenciesPath string `yaml:"frequencies_path"`

	// LetterTable names a built in table, "dictionary" or "text".
	LetterTable string `yaml:"letter_table"`
	// LetterScores overrides single letters of the table.
	LetterScores map[string]float64 `yaml:"letter_scores"`

	KnownLetterThreshold int     `yaml:"known_letter_threshold"`
	MissingWordFactor    float64 `yaml:"missing_word_factor"`
	MaxTurns             int     `yaml:"max_turns"`
}

func Default() Config {
	return Config{
		WordsPath:            "five_letter_words.txt",
		FrequenciesPath:      "",
		LetterTable:          "dictionary",
		KnownLetterThreshold: wordle.KnownLetterThreshold,
		MissingWordFactor:    wordle.DefaultMissingWordFactor,
		MaxTurns:             wordle.MaxTurns,
	}
}

// Load merges path (may be empty or missing) and the environment over the
// defaults and validates the result.
func Load(path string) (Config, error) {
	config := Default()
	if path != "" {
		if err := loadFile(path, &config); err != nil {
			return config, fmt.Errorf("load config file: %w", err)
		}
	}
	if err := loadEnv(&config); err != nil {
		return config, err
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func loadFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // use defaults
		}
		return err
	}
	return yaml.Unmarshal(data, config)
}

func loadEnv(config *Config) error {
	if v := os.Getenv("WORDLEBOT_WORDS"); v != "" {
		config.WordsPath = v
	}
	if v := os.Getenv("WORDLEBOT_FREQUENCIES"); v != "" {
		config.FrequenciesPath = v
	}
	if v := os.Getenv("WORDLEBOT_LETTER_TABLE"); v != "" {
		config.LetterTable = v
	}
	if v := os.Getenv("WORDLEBOT_KNOWN_LETTER_THRESHOLD"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("WORDLEBOT_KNOWN_LETTER_THRESHOLD: %w", err)
		}
		config.KnownLetterThreshold = i
	}
	if v := os.Getenv("WORDLEBOT_MISSING_WORD_FACTOR"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("WORDLEBOT_MISSING_WORD_FACTOR: %w", err)
		}
		config.MissingWordFactor = f
	}
	if v := os.Getenv("WORDLEBOT_MAX_TURNS"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("WORDLEBOT_MAX_TURNS: %w", err)
		}
		config.MaxTurns = i
	}
	return nil
}

func (c Config) Validate() error {
	var errs []error
	if c.WordsPath == "" {
		errs = append(errs, errors.New("words_path is required"))
	}
	if _, ok := wordle.LetterTable(c.LetterTable); !ok {
		errs = append(errs, fmt.Errorf("letter_table %q is not dictionary or text", c.LetterTable))
	}
	if _, err := wordle.LetterScoresFromMap(c.LetterScores); err != nil {
		errs = append(errs, err)
	}
	if c.KnownLetterThreshold < 0 || c.KnownLetterThreshold > 2*wordle.WordLen {
		errs = append(errs, fmt.Errorf("known_letter_threshold %d out of range", c.KnownLetterThreshold))
	}
	if c.MissingWordFactor < 0 {
		errs = append(errs, fmt.Errorf("missing_word_factor %v is negative", c.MissingWordFactor))
	}
	if c.MaxTurns < 1 {
		errs = append(errs, fmt.Errorf("max_turns %d must be at least 1", c.MaxTurns))
	}
	return errors.Join(errs...)
}

// Letters is the named table with the per letter overrides applied.
func (c Config) Letters() (wordle.LetterScores, error) {
	table, ok := wordle.LetterTable(c.LetterTable)
	if !ok {
		return table, fmt.Errorf("unknown letter table %q", c.LetterTable)
	}
	overrides, err := wordle.LetterScoresFromMap(c.LetterScores)
	if err != nil {
		return table, err
	}
	for key := range c.LetterScores {
		i := letterIndex(key)
		table[i] = overrides[i]
	}
	return table, nil
}

func letterIndex(key string) int {
	c := key[0]
	if 'A' <= c && c <= 'Z' {
		c += 'a' - 'A'
	}
	return int(c - 'a')
}

// Ranker builds the ranker from the letter table and word frequencies.
func (c Config) Ranker(frequencies wordle.WordFrequencies) (*wordle.Ranker, error) {
	letters, err := c.Letters()
	if err != nil {
		return nil, err
	}
	missing := frequencies.MissingWordScore(c.MissingWordFactor)
	return wordle.NewRanker(letters, frequencies, missing).WithThreshold(c.KnownLetterThreshold), nil
}
