package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <level>",
	Short: "Show the best runs for a level",
	Long: `Display the best runs recorded for the specified level.

Runs marked with * were abandoned before the clock ran out.

Examples:
  platformer scores city
  platformer scores training --limit 25
  platformer scores city --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all runs for the level")
}

func runScores(_ *cobra.Command, args []string) error {
	levelID := args[0]

	title := levelID
	for _, info := range registry.List() {
		if info.ID == levelID {
			title = info.Title
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(levelID); err != nil {
			return err
		}
		logger.Info("runs cleared", "level", levelID)
		fmt.Printf("Cleared all runs for %s.\n", title)
		return nil
	}

	runs, err := store.TopRuns(levelID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'platformer play %s' to set the first high score!\n", levelID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-7s  %-7s  %s\n", "Rank", "Score", "Coins", "Defeats", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-7s  %-7s  %s\n", "----", "-----", "-----", "-------", "----", "----")

	for i, r := range runs {
		elapsed := fmt.Sprintf("%.0fs", r.Duration)
		if !r.TimeUp {
			elapsed += "*"
		}
		fmt.Printf("  %-4d  %-8d  %-5d  %-7d  %-7s  %s\n",
			i+1, r.Score, r.Coins, r.Defeats, elapsed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetLevelStats(levelID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  |  Runs: %d  |  Average: %.0f  |  Coins: %d\n",
			stats.HighScore, stats.Runs, stats.AvgScore, stats.TotalCoins)
	}
	return nil
}
