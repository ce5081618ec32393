package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/aayushbajaj/lbsolver/internal/letterbox"
	"github.com/aayushbajaj/lbsolver/internal/solver"
	"github.com/aayushbajaj/lbsolver/internal/storage"
	"github.com/aayushbajaj/lbsolver/internal/tui"
	"github.com/aayushbajaj/lbsolver/internal/wordlist"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	wordsPath string
	foldCase  bool
	record    bool
	dbPath    string
	themeName string
	logLevel  string

	// Flags for history command
	historyLimit int
)

var rootCmd = &cobra.Command{
	Use:   "lbsolver <group1> <group2> <group3> <group4> [ignore_word...]",
	Short: "Letter Boxed solver - find the shortest word chains for a box",
	Long: `Solve a Letter Boxed puzzle. Give the four sides of the box as three letter
groups; any further words are left out of the search.

Examples:
  lbsolver abc def ghi jkl              # Solve a box
  lbsolver abc def ghi jkl bead         # Solve without the word "bead"
  lbsolver -f words.txt abc def ghi jkl # Use another word list
  lbsolver --record abc def ghi jkl     # Keep the run in history`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !tui.SetTheme(themeName) {
			return fmt.Errorf("unknown theme %q (available: %s)", themeName, strings.Join(tui.ThemeNames, ", "))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < letterbox.GroupCount {
			printUsage(cmd.OutOrStdout())
			return nil
		}
		return runSolve(cmd, args[:letterbox.GroupCount], args[letterbox.GroupCount:])
	},
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Solve boxes interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show recorded runs",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showHistory(cmd, args)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&wordsPath, "words", "f", wordlist.DefaultPath, "Path to the word list, one word per line")
	flags.BoolVar(&foldCase, "fold-case", false, "Lowercase groups, ignore words and the word list")
	flags.StringVar(&dbPath, "db", "", "History database path (default ~/.local/share/lbsolver/history.db)")
	flags.StringVar(&themeName, "theme", "default", "Output theme: "+strings.Join(tui.ThemeNames, ", "))
	flags.StringVar(&logLevel, "log-level", "warn", "debug|info|warn|error")

	rootCmd.Flags().BoolVar(&record, "record", false, "Record the run in the history database")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of runs to list")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: lbsolver <group1> <group2> <group3> <group4> <ignore_word (opt)> <ignore_word (opt)> ...")
	fmt.Fprintln(w, "Each group must be 3 letters long")
	fmt.Fprintln(w, "Any words after the 4 groups of 3 letters will be filtered out in the searching")
}

func newLogger(w io.Writer) *slog.Logger {
	lvl := slog.LevelWarn
	switch strings.ToLower(logLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func foldAll(words []string) []string {
	if !foldCase {
		return words
	}
	return wordlist.Fold(words)
}

func loadWords() ([]string, error) {
	lines, err := wordlist.Load(wordsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load words: %w", err)
	}
	return foldAll(lines), nil
}

func openStore() (*storage.Store, error) {
	var (
		store *storage.Store
		err   error
	)
	if dbPath != "" {
		store, err = storage.Open(dbPath)
	} else {
		store, err = storage.New()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	return store, nil
}

func runSolve(cmd *cobra.Command, groups, ignore []string) error {
	logger := newLogger(cmd.ErrOrStderr())
	groups = foldAll(append([]string(nil), groups...))
	ignore = foldAll(append([]string(nil), ignore...))

	box, err := letterbox.NewBox(groups...)
	if err != nil {
		return fmt.Errorf("invalid letter box: %w", err)
	}

	lines, err := loadWords()
	if err != nil {
		return err
	}

	dict := letterbox.Build(box, lines)
	logger.Debug("dictionary built",
		"lines", len(lines),
		"words", dict.Len(),
		"rejected", fmt.Sprint(dict.Rejected()),
	)
	for _, w := range ignore {
		if _, ok := dict.Lookup(w); !ok {
			logger.Warn("ignore word is not in the dictionary",
				"word", w,
				"suggestions", dict.Suggest(w, 3),
			)
		}
	}

	res := solver.New(dict, solver.WithLogger(logger)).Solve(ignore)
	fmt.Fprint(cmd.OutOrStdout(), tui.RenderResult(groups, ignore, res))

	if !record {
		return nil
	}
	return recordRun(logger, groups, ignore, res)
}

func recordRun(logger *slog.Logger, groups, ignore []string, res solver.Result) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	run := &storage.Run{
		Groups:       groups,
		Ignore:       ignore,
		Depth:        res.Depth,
		StatesPopped: int64(res.Stats.Popped),
		Duration:     res.Stats.Duration,
	}
	for _, c := range res.Solutions {
		run.Solutions = append(run.Solutions, c)
	}

	id, err := store.RecordRun(run)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	logger.Info("run recorded", "id", id)
	return nil
}

func runPlay(cmd *cobra.Command) error {
	lines, err := loadWords()
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		tui.New(tui.Options{
			Words:    lines,
			FoldCase: foldCase,
			Logger:   newLogger(io.Discard),
		}),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}

func showHistory(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if len(args) == 1 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run id %q: %w", args[0], err)
		}
		run, err := store.GetRun(id)
		if err != nil {
			return fmt.Errorf("failed to get run: %w", err)
		}
		fmt.Fprint(out, tui.RenderRun(run))
		return nil
	}

	runs, err := store.RecentRuns(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	fmt.Fprint(out, tui.RenderHistory(runs))
	return nil
}
