package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type e2eCase struct {
	name        string
	args        []string
	wantErr     bool
	wantContain []string
	wantLines   []string
}

// resetFlags restores every flag to its default and clears Changed so one
// test's flags do not leak into the next.
func resetFlags(cmds ...*cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	for _, c := range cmds {
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
	}
}

func runE2E(t *testing.T, tests []e2eCase) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Capture stdout
			old := os.Stdout
			r, w, _ := os.Pipe()
			os.Stdout = w

			// Read in background to prevent pipe buffer from blocking on Windows
			var buf bytes.Buffer
			done := make(chan struct{})
			go func() {
				buf.ReadFrom(r)
				close(done)
			}()

			// Reset flags to prevent accumulation between tests
			resetFlags(rootCmd, evalCmd, tokensCmd)
			args := append([]string{"--config", filepath.Join(t.TempDir(), "missing.json")}, tt.args...)
			rootCmd.SetArgs(expressionArgs(rootCmd, args))

			err := rootCmd.Execute()

			// Restore stdout and wait for reader
			w.Close()
			os.Stdout = old
			<-done

			output := buf.String()

			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error but got none\nOutput: %s", output)
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v\nOutput: %s", err, output)
				return
			}

			for _, want := range tt.wantContain {
				if !strings.Contains(output, want) {
					t.Errorf("Output missing expected string: %q\nGot:\n%s", want, output)
				}
			}

			if tt.wantLines != nil {
				got := strings.Split(strings.TrimRight(output, "\n"), "\n")
				if strings.Join(got, "|") != strings.Join(tt.wantLines, "|") {
					t.Errorf("Output lines = %q, want %q", got, tt.wantLines)
				}
			}
		})
	}
}

// TestEvalE2E tests the eval command end-to-end
func TestEvalE2E(t *testing.T) {
	runE2E(t, []e2eCase{
		{
			name:      "precedence",
			args:      []string{"eval", "5+3*2"},
			wantLines: []string{"11"},
		},
		{
			name:      "several expressions",
			args:      []string{"eval", "10/2-3", "1/4", "", "abc"},
			wantLines: []string{"2", "0.25", "0", "0"},
		},
		{
			name:      "show expression",
			args:      []string{"eval", "--show-expr", "6×3÷9"},
			wantLines: []string{"6×3÷9 = 2"},
		},
		{
			name:      "errors print sentinel",
			args:      []string{"eval", "*5", "1/0"},
			wantLines: []string{"Error", "Error"},
		},
		{
			name:      "lenient numbers",
			args:      []string{"eval", "2..5+1"},
			wantLines: []string{"1"},
		},
		{
			name:      "strict numbers",
			args:      []string{"eval", "--strict", "2..5+1"},
			wantLines: []string{"Error"},
		},
		{
			name:      "allow infinity",
			args:      []string{"eval", "--allow-inf", "1/0"},
			wantLines: []string{"Infinity"},
		},
		{
			name:      "leading minus",
			args:      []string{"eval", "-5+2"},
			wantLines: []string{"-3"},
		},
		{
			name:      "leading minus between flags and other expressions",
			args:      []string{"eval", "-e", "1+1", "-1/4", "--strict", "2..5"},
			wantLines: []string{"1+1 = 2", "-1/4 = -0.25", "2..5 = Error"},
		},
		{
			name:      "explicit separator",
			args:      []string{"eval", "--", "-5+2", "-0"},
			wantLines: []string{"-3", "0"},
		},
		{
			name:      "leading operator other than minus",
			args:      []string{"eval", "+4", "-*3"},
			wantLines: []string{"4", "Error"},
		},
		{
			name:    "fail on error",
			args:    []string{"eval", "--fail-on-error", "1+1", "*5"},
			wantErr: true,
		},
		{
			name:    "missing argument",
			args:    []string{"eval"},
			wantErr: true,
		},
	})
}

// TestEvalConfigE2E checks that config file settings apply and flags override them
func TestEvalConfigE2E(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"strict_numbers": true, "allow_non_finite": true}`), 0644); err != nil {
		t.Fatal(err)
	}

	runE2E(t, []e2eCase{
		{
			name:      "config enables strict and infinity",
			args:      []string{"eval", "--config", path, "2..5+1", "1/0"},
			wantLines: []string{"Error", "Infinity"},
		},
		{
			name:      "flag overrides config",
			args:      []string{"eval", "--config", path, "--strict=false", "2..5+1"},
			wantLines: []string{"1"},
		},
	})

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte(`{"history_depth": 0}`), 0644); err != nil {
		t.Fatal(err)
	}
	runE2E(t, []e2eCase{
		{
			name:    "invalid config",
			args:    []string{"eval", "--config", bad, "1+1"},
			wantErr: true,
		},
	})
}

// TestTokensE2E tests the tokens command end-to-end
func TestTokensE2E(t *testing.T) {
	runE2E(t, []e2eCase{
		{
			name: "glyphs and spaces",
			args: []string{"tokens", "5 + 3×2"},
			wantContain: []string{
				"Sanitized: 5+3*2",
				"Dropped:   2 character(s)",
				"Tokens: 5 total",
				"Number",
				"Operator",
				"Result: 11",
			},
		},
		{
			name: "malformed number",
			args: []string{"tokens", "2..5+1"},
			wantContain: []string{
				"2..5",
				"Tokens: 3 total",
				"Result: 1",
			},
		},
		{
			name: "leading minus",
			args: []string{"tokens", "-1"},
			wantContain: []string{
				"Sanitized: -1",
				"Tokens: 2 total",
				"Result: -1",
			},
		},
		{
			name: "policy flags apply to result",
			args: []string{"tokens", "--strict", "2..5+1"},
			wantContain: []string{
				"Tokens: 3 total",
				"Result: Error",
			},
		},
		{
			name:    "missing argument",
			args:    []string{"tokens"},
			wantErr: true,
		},
	})
}

func TestExpressionArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "no expressions starting with minus",
			args: []string{"eval", "-e", "1+1"},
			want: []string{"eval", "-e", "1+1"},
		},
		{
			name: "flag values stay with their flags",
			args: []string{"--config", "c.json", "eval", "-5", "--strict", "3"},
			want: []string{"--config", "c.json", "eval", "--strict", "--", "-5", "3"},
		},
		{
			name: "existing separator",
			args: []string{"eval", "-.5", "--", "-e"},
			want: []string{"eval", "--", "-.5", "-e"},
		},
		{
			name: "numeric flag value is not moved",
			args: []string{"tui", "--history", "-5", "-2"},
			want: []string{"tui", "--history", "-5", "--", "-2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expressionArgs(rootCmd, tt.args)
			if strings.Join(got, " ") != strings.Join(tt.want, " ") {
				t.Errorf("expressionArgs(%q) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
