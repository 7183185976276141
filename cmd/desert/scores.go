package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/desert-dash/internal/platform/tui"
	"github.com/vovakirdan/desert-dash/internal/storage"
)

var (
	flagRecent      bool
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run log",
	Long: `Display the best (or most recent) recorded runs.

Runs are only recorded when playing with --db. Without --db this command
reads ` + defaultDBPath + `.

Examples:
  desert scores
  desert scores --recent --limit 5
  desert scores -i`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent runs instead of the best")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the log in a full-screen table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

func runScores(cmd *cobra.Command, args []string) error {
	path := flagDBPath
	if path == "" {
		path = defaultDBPath
	}

	store, err := storage.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open run log: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run log cleared.")
		return nil
	}

	if flagInteractive && term.IsTerminal(int(os.Stdout.Fd())) {
		w, h := tui.TerminalSize()
		return tui.RunScoreboard(store, w, h)
	}

	var runs []storage.Run
	if flagRecent {
		runs, err = store.RecentRuns(flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		return err
	}

	best, err := store.BestScore()
	if err != nil {
		return err
	}

	printRuns(os.Stdout, runs, flagRecent, best)
	return nil
}

// printRuns writes the run log as a plain table.
func printRuns(w io.Writer, runs []storage.Run, recent bool, best int) {
	if recent {
		fmt.Fprintln(w, "Recent Runs - Desert Dash")
	} else {
		fmt.Fprintln(w, "High Scores - Desert Dash")
	}
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play with '--db "+defaultDBPath+"' to start a run log!")
		return
	}

	fmt.Fprintf(w, "  %-4s  %-6s  %-8s  %-6s  %-8s  %s\n", "Rank", "Score", "Time", "End", "Frontend", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-8s  %-6s  %-8s  %s\n", "----", "-----", "----", "---", "--------", "----")

	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-6d  %-8s  %-6s  %-8s  %s\n",
			i+1, r.Score, fmt.Sprintf("%.1fs", r.Duration.Seconds()), r.EndReason, r.Frontend,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", best)
}
