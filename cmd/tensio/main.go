// tensio is an endless side-scrolling runner for the terminal.
//
// Usage:
//
//	tensio play              - Play locally
//	tensio serve             - Start SSH server for remote play
//	tensio scores            - Show the stored high score
//
// Global flags:
//
//	--config <path> - Config file (default search: ~/.tensio/config.yaml, ./configs/tensio.yaml)
//	--fps <rate>    - Override display.fps
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Override storage.path ("" keeps scores in memory)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tensio",
	Short: "Tensio - an endless runner in your terminal",
	Long: `Tensio is a one-button endless runner. Jump over the hardware,
land on top of it, grab the floating bonuses and chase the high score.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - Show the stored high score

Examples:
  tensio play
  tensio play --seed 42
  tensio serve
  tensio scores --db ./tensio.db`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to high score database (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
