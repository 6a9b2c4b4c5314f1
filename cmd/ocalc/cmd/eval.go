package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/opencalc/pkg/eval"
)

var (
	showExpr    bool
	failOnError bool
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression>...",
	Short: "Evaluate one or more expressions",
	Long: `Evaluate each argument as a flat arithmetic expression and print the
result, one per line. Characters other than digits, '.', + - * / (and the
glyphs × ÷) are ignored. Failed evaluations print "Error".

Expressions may start with an operator, including '-': ocalc rewrites
such arguments so they are not read as flags, and an explicit "--"
separator also works.

Examples:
  ocalc eval "5+3*2"
  ocalc eval "-5+2"
  ocalc eval --show-expr -- -1/4 "2-3"
  ocalc eval --show-expr "10/2-3" "1/4"
  ocalc eval --strict --fail-on-error "2..5+1"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	addPolicyFlags(evalCmd)
	evalCmd.Flags().BoolVarP(&showExpr, "show-expr", "e", false,
		"print each expression next to its result")
	evalCmd.Flags().BoolVar(&failOnError, "fail-on-error", false,
		"exit with an error if any expression fails")
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyPolicyFlags(cmd, cfg)

	ev := eval.New(cfg.EvalOptions())
	failed := 0
	for _, expr := range args {
		v, err := ev.Evaluate(expr)
		result := eval.ErrorText
		if err != nil {
			failed++
			if verbose {
				fmt.Printf("Evaluation of %q failed: %v\n", expr, err)
			}
		} else {
			result = eval.FormatResult(v)
		}

		if showExpr {
			fmt.Printf("%s = %s\n", expr, result)
		} else {
			fmt.Println(result)
		}
	}

	if failOnError && failed > 0 {
		return fmt.Errorf("%d of %d expression(s) failed: %w", failed, len(args), eval.ErrMalformed)
	}
	return nil
}
