// powerpong is a single-paddle Pong with multiple balls and power-ups,
// played in the terminal or simulated headless.
//
// Usage:
//
//	powerpong play           - Play in the terminal
//	powerpong sim            - Run headless games with the computer paddle
//	powerpong runs           - Show the run journal
//	powerpong serve          - Start SSH server for remote play
//	powerpong config         - Print the configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set journal path (default: ~/.powerpong/runs.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/powerpong/internal/config"
	"github.com/vovakirdan/powerpong/internal/games/powerpong"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "powerpong",
	Short: "Power Pong - one paddle, many balls",
	Long: `Power Pong is a single-paddle Pong for the terminal. Every few hits
a reward adds a ball, drops a power-up or awards bonus points.

Available commands:
  play     - Play in the terminal
  sim      - Run headless games with the computer paddle
  runs     - Show the run journal
  serve    - Start SSH server for remote play
  config   - Print the configuration

Examples:
  powerpong play
  powerpong play --difficulty hard
  powerpong sim --runs 10 --record
  powerpong runs --tui
  powerpong serve --ssh :2222`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		powerpong.SetConfigPath(flagConfig)
		powerpong.SetDifficultyPreset(flagDifficulty)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.HomeDirName+"/runs.db", "Path to run journal database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a stderr logger honouring --verbose.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig resolves the game configuration from the global flags.
func loadConfig() (config.PowerPongConfig, error) {
	cfg, err := config.LoadPowerPong(flagConfig)
	if err != nil {
		return config.PowerPongConfig{}, err
	}
	if preset := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplyPreset(&cfg, preset)
	} else if flagDifficulty != "" {
		return config.PowerPongConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}
	return cfg, nil
}
