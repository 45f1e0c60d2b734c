// magequest is a mage quest of reflex trials, played in the terminal or in
// a desktop window.
//
// Usage:
//
//	magequest                     - Play the full quest in the terminal
//	magequest play                - Same as above
//	magequest window              - Play the full quest in a desktop window
//	magequest practice <game>     - Replay one trial or the boss on its own
//	magequest list                - List available games
//	magequest config              - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a custom quest.yaml
//	--watch              - Reload the config file when it changes
//	--log-file <path>    - Write logs to a file (default: no logging)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/magequest/internal/games/practice"
	_ "github.com/vovakirdan/magequest/internal/games/quest"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagWatch    bool
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "magequest",
	Short: "Mage Quest - Prove your magic in three trials and face the Dark Lord",
	Long: `Mage Quest is an arcade adventure. Earn score and magic in three
reflex trials, then spend your magic to challenge the Dark Lord.

Available commands:
  play      - Play the full quest in the terminal (default)
  window    - Play the full quest in a desktop window
  practice  - Replay a single trial or the boss
  list      - Show all available games
  config    - Print the effective configuration

Examples:
  magequest
  magequest window --seed 42
  magequest practice catch
  magequest play --config ./quest.yaml --watch --log-file quest.log`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom quest config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
