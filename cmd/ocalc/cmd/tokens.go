package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/opencalc/pkg/eval"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <expression>",
	Short: "Show how an expression is sanitized and tokenized",
	Long: `Display the sanitized form of an expression and the token stream the
evaluator reduces.

The Result line uses the same config file and --strict/--allow-inf flags
as eval. Expressions may start with an operator, including '-':
ocalc rewrites such arguments so they are not read as flags, and an
explicit "--" separator also works.

Examples:
  ocalc tokens "5 + 3×2"
  ocalc tokens --strict "2..5+1"
  ocalc tokens -- -1`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	addPolicyFlags(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyPolicyFlags(cmd, cfg)
	ev := eval.New(cfg.EvalOptions())

	raw := args[0]
	clean := eval.Sanitize(raw)

	tokens, err := eval.Tokenize(clean)
	if err != nil {
		return fmt.Errorf("failed to tokenize: %w", err)
	}

	fmt.Printf("Input:     %s\n", raw)
	fmt.Printf("Sanitized: %s\n", clean)
	if dropped := len([]rune(raw)) - len([]rune(clean)); dropped > 0 {
		fmt.Printf("Dropped:   %d character(s)\n", dropped)
	}
	fmt.Println()

	fmt.Printf("Tokens: %d total\n", len(tokens))
	for _, tok := range tokens {
		fmt.Printf("  %3d: %-8s %s\n", tok.Offset, tok.Kind, tok.Text)
	}
	fmt.Println()

	fmt.Printf("Result: %s\n", ev.EvaluateString(raw))
	return nil
}
