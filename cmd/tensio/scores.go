package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tensio/internal/storage"
)

var flagReset bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the stored high score",
	Long: `Display the high score kept in the database.

Examples:
  tensio scores
  tensio scores --db ./tensio.db
  tensio scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the stored high score")
}

func runScores(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if cfg.Storage.Path == "" {
		fmt.Println("Storage is in-memory; no high score is kept between runs.")
		return
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.Delete(storage.HighScoreKey); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting high score: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Println("High score reset.")
		return
	}

	high := storage.NewHighScores(store, newLogger(cfg, os.Stderr, "tensio")).LoadHighScore()
	fmt.Println("High Score - Tensio")
	fmt.Println()
	if high == 0 {
		fmt.Println("No score recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tensio play' to set the first high score!")
		return
	}
	fmt.Printf("  %d\n", high)
}
