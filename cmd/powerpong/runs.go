package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/powerpong/internal/platform/tui"
	"github.com/vovakirdan/powerpong/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsTUI   bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show the run journal",
	Long: `List recorded games, newest first. Games are recorded when they end
in the terminal or over SSH, and by 'powerpong sim --record'.

Examples:
  powerpong runs
  powerpong runs --limit 50
  powerpong runs --tui
  powerpong runs show 12
  powerpong runs clear`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

var runsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the final frame of a run",
	Args:  cobra.ExactArgs(1),
	Run:   runRunsShow,
}

var runsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every recorded run",
	Args:  cobra.NoArgs,
	Run:   runRunsClear,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to list")
	runsCmd.Flags().BoolVar(&flagRunsTUI, "tui", false, "Browse the journal interactively")

	runsCmd.AddCommand(runsShowCmd)
	runsCmd.AddCommand(runsClearCmd)
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runRuns(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	if flagRunsTUI {
		cfg, err := loadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunRunboard(store, cfg, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println("Power Pong runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'powerpong play' or 'powerpong sim --record' to add one.")
		return
	}

	fmt.Printf("  %-5s  %-16s  %-6s  %-5s  %-6s  %-8s  %s\n", "ID", "Date", "Source", "Best", "Hits", "Frames", "End")
	fmt.Printf("  %-5s  %-16s  %-6s  %-5s  %-6s  %-8s  %s\n", "--", "----", "------", "----", "----", "------", "---")

	for _, r := range runs {
		fmt.Printf("  %-5d  %-16s  %-6s  %-5d  %-6d  %-8d  %s\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Source, r.BestScore, r.Hits, r.Frames, r.EndReason)
	}

	if totals, err := store.Totals(); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Avg best: %.1f\n", totals.Runs, totals.BestScore, totals.AvgBest)
	}
}

func runRunsShow(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid run id %q\n", args[0])
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()

	run, err := store.RunByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	if run == nil {
		fmt.Fprintf(os.Stderr, "Error: no run with id %d\n", id)
		return
	}

	snap, err := run.DecodeSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	fmt.Printf("Run %d (%s, seed %d): %s after %d frames\n", run.ID, run.Source, run.Seed, run.EndReason, run.Frames)
	fmt.Printf("Hits %d  Misses %d  Best %d  Rewards %d/%d/%d  Power-ups collected %d\n",
		run.Hits, run.Misses, run.BestScore, run.ExtraBalls, run.PowerUpDrops, run.Bonuses, run.Collected)
	fmt.Println()
	fmt.Println(tui.RenderSnapshot(cfg, snap, 80, 24).String())
}

func runRunsClear(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	if err := store.ClearRuns(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Println("Run journal cleared.")
}
