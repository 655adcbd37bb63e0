// snake is a terminal snake game.
//
// Usage:
//
//	snake                   - Play with the effective configuration
//	snake play              - Same as above
//	snake config            - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal or hard
//	--width, --height     - Grid size in cells
//	--tick-rate <hz>      - Simulation ticks per second
//	--fps <rate>          - Render frames per second
//	--seed <value>        - RNG seed for reproducible food placement
//	--log-file <path>     - Write logs to a file (default: discard)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagWidth      int
	flagHeight     int
	flagTickRate   int
	flagFPS        int
	flagSeed       int64
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake moves on a wrapping grid, grows when it eats and dies when it
runs into itself. The simulation ticks independently of the frame rate.

Available commands:
  play     - Play a game (default)
  config   - Print the effective configuration

Examples:
  snake
  snake play --difficulty hard
  snake --width 20 --height 20 --seed 42
  snake config --config ./my-snake.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.IntVar(&flagWidth, "width", 0, "Grid width in cells (overrides config)")
	pf.IntVar(&flagHeight, "height", 0, "Grid height in cells (overrides config)")
	pf.IntVar(&flagTickRate, "tick-rate", 0, "Simulation ticks per second (overrides config)")
	pf.IntVar(&flagFPS, "fps", 0, "Render frames per second (overrides config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
