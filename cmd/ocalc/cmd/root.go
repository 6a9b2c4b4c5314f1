package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/OpenTraceLab/opencalc/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Evaluator policy flags, shared by eval, ui and tui
	strictNumbers  bool
	allowNonFinite bool
	historyDepth   int
)

var rootCmd = &cobra.Command{
	Use:   "ocalc",
	Short: "OpenCalc - a keypad calculator and arithmetic evaluator",
	Long: `OpenCalc evaluates flat arithmetic expressions (+ - * /, no parentheses)
the way a pocket calculator keypad does, and ships graphical and terminal
keypad frontends.

Examples:
  ocalc eval "5+3*2"                # Prints 11
  ocalc eval --strict "2..5+1"      # Rejects malformed numbers
  ocalc tokens "10÷2-3"             # Show the token stream
  ocalc ui                          # Launch the graphical calculator
  ocalc tui                         # Launch the terminal calculator`,
	Version: "0.9.0",
}

// Execute runs the root command
func Execute() {
	rootCmd.SetArgs(expressionArgs(rootCmd, os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default ~/.config/opencalc/config.json)")
}

// loadConfig reads the config file named by --config, or the default one.
func loadConfig() (*config.AppConfig, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("failed to locate config: %w", err)
		}
		path = p
	}
	if verbose {
		fmt.Printf("Using config: %s\n", path)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func addPolicyFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&strictNumbers, "strict", false,
		"treat malformed numbers such as 2..5 as errors instead of 0")
	cmd.Flags().BoolVar(&allowNonFinite, "allow-inf", false,
		"print Infinity/NaN instead of Error for non-finite results")
}

// applyPolicyFlags lets explicitly set command flags win over the config file.
func applyPolicyFlags(cmd *cobra.Command, cfg *config.AppConfig) {
	flags := cmd.Flags()
	if flags.Changed("strict") {
		cfg.StrictNumbers = strictNumbers
	}
	if flags.Changed("allow-inf") {
		cfg.AllowNonFinite = allowNonFinite
	}
	if flags.Changed("history") {
		cfg.HistoryDepth = historyDepth
	}
}

// expressionArgs moves arguments that are expressions starting with an
// operator, such as "-5+2", behind a "--" terminator so pflag does not
// parse them as shorthand flags. Flags, their values and the subcommand
// name stay in front; the relative order of positional arguments is kept.
func expressionArgs(root *cobra.Command, args []string) []string {
	cmd, _, err := root.Find(args)
	if err != nil {
		cmd = root
	}

	var front, positional []string
	rewrite := false
	seenCmd := cmd == root
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case isOperatorExpression(arg):
			positional = append(positional, arg)
			rewrite = true
		case len(arg) > 1 && arg[0] == '-':
			front = append(front, arg)
			if flagTakesValue(cmd, arg) && i+1 < len(args) {
				i++
				front = append(front, args[i])
			}
		case !seenCmd && arg == cmd.Name():
			front = append(front, arg)
			seenCmd = true
		default:
			positional = append(positional, arg)
		}
	}

	if !rewrite {
		return args
	}
	out := append(front, "--")
	return append(out, positional...)
}

// isOperatorExpression reports whether arg starts with '-' but reads as an
// arithmetic expression rather than a flag.
func isOperatorExpression(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	return strings.ContainsRune("0123456789.+*/×÷", []rune(arg[1:])[0])
}

// flagTakesValue reports whether the flag named by arg consumes the next
// argument as its value.
func flagTakesValue(cmd *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	var lookup func(*pflag.FlagSet) *pflag.Flag
	switch name := strings.TrimLeft(arg, "-"); {
	case strings.HasPrefix(arg, "--"):
		lookup = func(fs *pflag.FlagSet) *pflag.Flag { return fs.Lookup(name) }
	case len(name) == 1:
		lookup = func(fs *pflag.FlagSet) *pflag.Flag { return fs.ShorthandLookup(name) }
	default:
		return false
	}
	for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags(), cmd.InheritedFlags()} {
		if f := lookup(fs); f != nil {
			return f.NoOptDefVal == ""
		}
	}
	return false
}
