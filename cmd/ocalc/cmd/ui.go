package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/opencalc/internal/ui"
)

var darkMode bool

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the graphical calculator",
	Long: `Launch the Gio calculator window: keypad, expression display and a
history panel with the most recent evaluations.

The keyboard works too: digits, '.', + - * /, Enter or = to evaluate,
Backspace to delete and Escape to clear.

Examples:
  # Launch the UI
  ocalc ui

  # Dark palette, longer history
  ocalc ui --dark --history 20`,
	RunE: runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)

	addPolicyFlags(uiCmd)
	uiCmd.Flags().IntVar(&historyDepth, "history", 10, "number of history entries to keep")
	uiCmd.Flags().BoolVar(&darkMode, "dark", false, "use the dark palette")
}

func runUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyPolicyFlags(cmd, cfg)
	if cmd.Flags().Changed("dark") {
		cfg.DarkMode = darkMode
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if verbose {
		fmt.Println("Launching OpenCalc UI...")
	}

	state := ui.NewState()
	state.SetAppVersion(rootCmd.Version)
	state.Configure(cfg.EvalOptions(), cfg.HistoryDepth)
	state.SetDarkMode(cfg.DarkMode)
	state.AppendLog("UI starting...")
	state.SetStatus(fmt.Sprintf("Ready, keeping %d entries", cfg.HistoryDepth))

	return ui.Run(state)
}
