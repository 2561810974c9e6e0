package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"crosswarped.com/fillin"
	"crosswarped.com/fillin/internal/wordsource"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "fillincli",
		Short:         "Solve fill-in crossword puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if viper.GetBool("verbose") {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	root.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	_ = viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))
	viper.SetEnvPrefix("fillin")
	viper.AutomaticEnv()

	root.AddCommand(newSolveCommand())
	root.AddCommand(newInspectCommand())
	return root
}

func newSolveCommand() *cobra.Command {
	var (
		wordsFile  string
		wordSet    string
		timeout    time.Duration
		doProfile  bool
		profileDir string
	)

	cmd := &cobra.Command{
		Use:   "solve <puzzle-file>",
		Short: "Solve a puzzle file (grid rows, blank line, one word per line)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, words, err := loadPuzzle(args[0])
			if err != nil {
				return err
			}

			if wordsFile != "" {
				extra, err := loadWords(wordsFile)
				if err != nil {
					return err
				}
				words = append(words, extra...)
			}
			if wordSet != "" {
				fetched, err := wordsource.Fetch(cmd.Context(), wordsource.FetchParams{
					Project: viper.GetString("project"),
					Table:   viper.GetString("wordset_table"),
					Set:     wordSet,
				})
				if err != nil {
					return fmt.Errorf("fetching word set %q: %w", wordSet, err)
				}
				words = append(words, fetched...)
			}

			logrus.WithFields(logrus.Fields{
				"rows":  grid.Height(),
				"cols":  grid.Width(),
				"words": len(words),
			}).Debug("puzzle loaded")

			if doProfile {
				defer profile.Start(profile.CPUProfile, profile.ProfilePath(profileDir)).Stop()
			}

			ctx, cancel := timeoutContext(cmd, timeout)
			defer cancel()

			solved, stats, err := fillin.Solve(ctx, grid, words)
			if err != nil {
				if errors.Is(err, fillin.ErrNoSolution) {
					logrus.WithFields(logrus.Fields{
						"nodes": stats.Nodes,
						"dur":   stats.Duration.Round(time.Millisecond),
					}).Warn("search exhausted")
				}
				return err
			}

			fmt.Println(solved.Repr())
			logrus.WithFields(logrus.Fields{
				"nodes": stats.Nodes,
				"dur":   stats.Duration.Round(time.Millisecond),
			}).Info("solved")
			return nil
		},
	}

	cmd.Flags().StringVar(&wordsFile, "words", "", "Extra word-list file to append to the puzzle's words")
	cmd.Flags().StringVar(&wordSet, "word-set", "", "Named word set to fetch from BigQuery")
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "Abort the search after this long")
	cmd.Flags().BoolVar(&doProfile, "profile", false, "Write a CPU profile")
	cmd.Flags().StringVar(&profileDir, "profile-dir", ".", "Directory for profile output")
	return cmd
}

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <puzzle-file>",
		Short: "Print the holes a puzzle's grid contains",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, words, err := loadPuzzle(args[0])
			if err != nil {
				return err
			}
			holes := fillin.ExtractHoles(grid)
			for _, h := range holes {
				start := h.Start()
				fmt.Printf("%-10s (%d,%d) len=%d %s\n", h.Dir, start.Row, start.Col, h.Len(), grid.Read(h))
			}
			fmt.Printf("%d holes, %d words\n", len(holes), len(words))
			return nil
		},
	}
}

func timeoutContext(cmd *cobra.Command, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(cmd.Context())
	}
	return context.WithTimeout(cmd.Context(), timeout)
}

func loadPuzzle(path string) (*fillin.Grid, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return fillin.ParsePuzzle(f)
}

func loadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return fillin.ParseWordList(f)
}
