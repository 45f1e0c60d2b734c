package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/magequest/internal/registry"
)

const questID = "quest"

var flagPracticeWindow bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the full quest in the terminal",
	Long: `Start the quest in the terminal.

Controls:
  Space/Enter   - Begin, continue, play again
  Arrows/WASD   - Move
  Space         - Fire (boss fight)
  Mouse         - Click targets (reaction trial)
  1-4           - Pick a trial or the boss in the hub
  Q/Esc/Ctrl+C  - Quit

Examples:
  magequest play
  magequest play --seed 7
  magequest play --config ./quest.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play the full quest in a desktop window",
	Long: `Start the quest in a desktop window. Same controls as play; Esc quits.
A gamepad's left stick moves and its bottom face button fires and confirms.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return playGame(questID, true)
	},
}

var practiceCmd = &cobra.Command{
	Use:   "practice <game>",
	Short: "Replay a single trial or the boss",
	Long: `Run one trial on its own. It restarts on Space/Enter after it ends,
and nothing is carried over to the quest.

Games: shoot, dodge, catch, boss

Examples:
  magequest practice dodge
  magequest practice boss --window`,
	Args: cobra.ExactArgs(1),
	RunE: runPractice,
}

func init() {
	practiceCmd.Flags().BoolVar(&flagPracticeWindow, "window", false, "Use a desktop window instead of the terminal")
}

func runPlay(cmd *cobra.Command, args []string) error {
	return playGame(questID, false)
}

func runPractice(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	// Check if game exists
	if gameID == questID || !registry.Exists(gameID) {
		return fmt.Errorf("unknown practice game %q, run 'magequest list' to see available games", gameID)
	}
	return playGame(gameID, flagPracticeWindow)
}
