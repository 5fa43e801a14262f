// snake is the arcade Snake game for the terminal.
//
// Usage:
//
//	snake                 - Play in this terminal
//	snake play            - Same as above
//	snake serve           - Start SSH server for remote play
//	snake frame           - Replay a seeded run headlessly and save a PNG frame
//	snake speeds          - Show the score-to-speed table
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Custom config YAML
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs to a file while playing
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	// Commands return their errors so deferred cleanup runs before exit.
	if err := rootCmd.Execute(); err != nil {
		newLogger(os.Stderr).Error("snake failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the arcade classic in your terminal",
	Long: `Snake is the arcade classic: steer the snake, eat the food, grow,
and avoid the walls and your own tail. The game speeds up as the score rises.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  frame    - Replay a seeded run and save the final frame as PNG
  speeds   - Show the score-to-speed table

Examples:
  snake
  snake --seed 42
  snake serve --ssh :2222
  snake frame --seed 7 --moves RRDDL --out frame.png`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (play logs are discarded if empty)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(frameCmd)
	rootCmd.AddCommand(speedsCmd)
}

// newLogger builds the process logger on w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadOptions reads the configuration and converts it into game options.
func loadOptions() (snake.Options, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return snake.Options{}, fmt.Errorf("invalid configuration: %w", err)
	}
	opts, err := cfg.ToOptions()
	if err != nil {
		return snake.Options{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return opts, nil
}
