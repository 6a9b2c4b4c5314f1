package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/opencalc/internal/tui"
	"github.com/OpenTraceLab/opencalc/pkg/eval"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the terminal calculator",
	Long: `Launch the calculator in the terminal. Type digits and operators
(x works as ×), Enter or = to evaluate, Backspace to delete, Esc or c to
clear and q to quit.

Examples:
  ocalc tui
  ocalc tui --strict --history 5`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	addPolicyFlags(tuiCmd)
	tuiCmd.Flags().IntVar(&historyDepth, "history", 10, "number of history entries to keep")
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyPolicyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	model := tui.New(eval.New(cfg.EvalOptions()), cfg.HistoryDepth)
	if err := tui.Run(model); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}
