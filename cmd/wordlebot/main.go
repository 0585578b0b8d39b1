package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime/pprof"
	"sort"

	"github.com/powellquiring/wordlebot/config"
	"github.com/powellquiring/wordlebot/session"
	"github.com/powellquiring/wordlebot/store"
	"github.com/powellquiring/wordlebot/wordle"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3" // imports as package "cli"
)

type GlobalConfiguration struct {
	config     config.Config
	vocabulary *store.Vocabulary
	solver     *wordle.Solver
	logger     *slog.Logger
	progress   bool
}

// flags shared by every command
type globalFlags struct {
	configPath  string
	wordsPath   string
	freqPath    string
	letterTable string
	threshold   int
	count       int
	progress    bool
	profile     bool
	verbose     bool
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func globalConfiguration(flags globalFlags) (GlobalConfiguration, error) {
	logger := newLogger(flags.verbose)
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return GlobalConfiguration{}, err
	}
	if flags.wordsPath != "" {
		cfg.WordsPath = flags.wordsPath
	}
	if flags.freqPath != "" {
		cfg.FrequenciesPath = flags.freqPath
	}
	if flags.letterTable != "" {
		cfg.LetterTable = flags.letterTable
	}
	if flags.threshold > 0 {
		cfg.KnownLetterThreshold = flags.threshold
	}
	if err := cfg.Validate(); err != nil {
		return GlobalConfiguration{}, err
	}

	vocabulary, err := store.LoadVocabulary(cfg.WordsPath)
	if err != nil {
		return GlobalConfiguration{}, fmt.Errorf("load words: %w", err)
	}
	if flags.count > 0 && flags.count < vocabulary.Len() {
		// a cut down list is for experiments and is never written back
		vocabulary = store.NewVocabulary("", vocabulary.Words()[:flags.count])
	}
	frequencies, err := store.LoadFrequencies(cfg.FrequenciesPath)
	if err != nil {
		return GlobalConfiguration{}, fmt.Errorf("load frequencies: %w", err)
	}
	ranker, err := cfg.Ranker(frequencies)
	if err != nil {
		return GlobalConfiguration{}, err
	}
	logger.Debug("configuration",
		"words", cfg.WordsPath,
		"vocabulary", vocabulary.Len(),
		"frequencies", len(frequencies),
		"letter_table", cfg.LetterTable,
		"threshold", ranker.Threshold())
	return GlobalConfiguration{
		config:     cfg,
		vocabulary: vocabulary,
		solver:     wordle.NewSolver(ranker),
		logger:     logger,
		progress:   flags.progress,
	}, nil
}

// play an interactive game, asking for the game's response on stdin
func playWordle(ctx context.Context, globalConfig GlobalConfiguration) error {
	s := session.New(
		globalConfig.solver,
		globalConfig.vocabulary,
		session.NewPrompter(os.Stdin, os.Stdout),
		os.Stdout,
		globalConfig.logger,
	).WithMaxTurns(globalConfig.config.MaxTurns)
	_, err := s.Play(ctx)
	return err
}

// suggest the next guess given guess/answer pairs
func suggest(globalConfig GlobalConfiguration, pairs []string) error {
	h := wordle.NewHistory()
	for i := 0; i < len(pairs); i += 2 {
		guess, err := wordle.ParseWord(pairs[i])
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		feedback, err := wordle.ParseFeedback(pairs[i+1])
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		if err := h.Add(guess, feedback); err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}
	plan, err := globalConfig.solver.Plan(h, globalConfig.vocabulary.Words())
	if err != nil {
		return err
	}
	fmt.Print(plan.Guess.Upper(), " (", plan.Strategy, "):")
	for _, word := range plan.Candidates {
		fmt.Print(" ", word.String())
	}
	fmt.Println()
	return nil
}

func simulate(globalConfig GlobalConfiguration, firstWordsStrings []string, solutionStrings []string) error {
	words := globalConfig.vocabulary.Words()
	solutions := words
	if len(solutionStrings) != 0 {
		var err error
		solutions, err = wordle.ParseWords(solutionStrings)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}
	opening, err := wordle.ParseWords(firstWordsStrings)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	var bar *progressbar.ProgressBar
	if globalConfig.progress {
		bar = progressbar.Default(int64(len(solutions)))
	} else {
		bar = progressbar.DefaultSilent(int64(len(solutions)))
	}

	ix := wordle.NewIndex(words)
	sortedGames := make(map[int][]wordle.Game)
	lost := []wordle.Game{}
	for _, solution := range solutions {
		game, err := wordle.Simulate(globalConfig.solver, ix, solution, opening)
		bar.Add(1)
		if err != nil {
			globalConfig.logger.Warn("simulation failed", "solution", solution.String(), "error", err)
			lost = append(lost, game)
			continue
		}
		if !game.Won {
			lost = append(lost, game)
			continue
		}
		sortedGames[len(game.Guesses)] = append(sortedGames[len(game.Guesses)], game)
	}
	fmt.Println("---------------------")

	// create slice of number of guesses
	keys := make([]int, 0, len(sortedGames))
	for k := range sortedGames {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	for _, numGuesses := range keys {
		games := sortedGames[numGuesses]
		fmt.Println(numGuesses, len(games), " ---------------------")
		for _, game := range games {
			printGame(game)
		}
	}
	fmt.Println("lost", len(lost), " ---------------------")
	for _, game := range lost {
		printGame(game)
	}
	return nil
}

func printGame(game wordle.Game) {
	fmt.Print(game.Solution.String(), ":")
	for _, guess := range game.Guesses {
		fmt.Print(" ", guess.String())
	}
	fmt.Println()
}

// rank the opening guesses
func first(globalConfig GlobalConfiguration, limit int) {
	ranker := globalConfig.solver.Ranker()
	ranked := ranker.Rank(globalConfig.vocabulary.Words(), ranker.Strategy(0))
	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	for _, item := range ranked {
		fmt.Println(item.Value.String(), item.Score.Distinct, item.Score.LetterFreq, item.Score.WordFreq)
	}
}

func cpuProfile() func() {
	f, err := os.Create("cpu.prof")
	if err != nil {
		panic(err)
	}
	pprof.StartCPUProfile(f)
	return pprof.StopCPUProfile
}

func main() {
	flags := globalFlags{}
	limit := 0
	cmd := &cli.Command{
		Name:  "wordlebot",
		Usage: "suggest hard mode wordle guesses",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "YAML configuration file",
				Sources:     cli.EnvVars("WORDLEBOT_CONFIG"),
				Destination: &flags.configPath,
			},
			&cli.StringFlag{
				Name:        "words",
				Aliases:     []string{"w"},
				Usage:       "word list, one five letter word per line",
				Destination: &flags.wordsPath,
			},
			&cli.StringFlag{
				Name:        "freq",
				Usage:       "word frequency list, one 'word count' pair per line",
				Destination: &flags.freqPath,
			},
			&cli.StringFlag{
				Name:        "letters",
				Usage:       "letter frequency table, dictionary or text",
				Destination: &flags.letterTable,
			},
			&cli.IntFlag{
				Name:        "threshold",
				Usage:       "known letters before guesses favour common words, 0 uses the config",
				Destination: &flags.threshold,
			},
			&cli.IntFlag{
				Name:        "count",
				Value:       0,
				Aliases:     []string{"c"},
				Usage:       "number of words, 0 is all words",
				Destination: &flags.count,
			},
			&cli.BoolFlag{
				Name:        "progress",
				Value:       false,
				Aliases:     []string{"p"},
				Usage:       "show progress bar",
				Destination: &flags.progress,
			},
			&cli.BoolFlag{
				Name:        "profile",
				Value:       false,
				Usage:       "store profile data to analyze",
				Destination: &flags.profile,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "debug logging on stderr",
				Destination: &flags.verbose,
			},
		},
		Commands: []*cli.Command{
			{
				Name: "play",
				Usage: `play a game of wordle, typing the game's response after each guess
				https://www.nytimes.com/games/wordle/index.html
				`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if flags.profile {
						def := cpuProfile()
						defer def()
					}
					globalConfig, err := globalConfiguration(flags)
					if err != nil {
						return err
					}
					return playWordle(ctx, globalConfig)
				},
			},
			{
				Name: "suggest",
				Usage: `suggest [guess answer]...
				Print the next guess and the remaining candidates for the guess/answer pairs so far.
				Answers use n for a miss, y for yellow and g for green, like crane nnygn.
				`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg()%2 != 0 {
						return cli.Exit("must have pairs of guess answer", 1)
					}
					globalConfig, err := globalConfiguration(flags)
					if err != nil {
						return err
					}
					return suggest(globalConfig, cmd.Args().Slice())
				},
			},
			{
				Name: "sim",
				Usage: `sim --first [firstword] [solution] ...
				Simulate a game for each solution. The first words, if any, are always played first
				in order. If no solutions are provided simulate solutions for all words.
				All words can be cut back by using the -count global flag for testing.
				`,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Usage:   "--first first1 --first first2 ...",
						Name:    "first",
						Aliases: []string{"f"},
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if flags.profile {
						def := cpuProfile()
						defer def()
					}
					globalConfig, err := globalConfiguration(flags)
					if err != nil {
						return err
					}
					return simulate(globalConfig, cmd.StringSlice("first"), cmd.Args().Slice())
				},
			},
			{
				Name: "first",
				Usage: `first
				Sort first words by score
				`,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "limit",
						Aliases:     []string{"n"},
						Usage:       "number of words to print, 0 is all",
						Value:       20,
						Destination: &limit,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					globalConfig, err := globalConfiguration(flags)
					if err != nil {
						return err
					}
					first(globalConfig, limit)
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
