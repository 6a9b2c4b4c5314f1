package calculator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/OpenTraceLab/opencalc/pkg/eval"
)

// DefaultHistoryDepth is how many evaluations a session keeps.
const DefaultHistoryDepth = 10

// Evaluator computes the value of an expression. *eval.Evaluator satisfies it.
type Evaluator interface {
	Evaluate(raw string) (float64, error)
}

// Entry is one evaluated expression in the history.
type Entry struct {
	Expression string
	Result     string
	Failed     bool
}

// String renders the entry the way the history panel shows it.
func (e Entry) String() string {
	return fmt.Sprintf("%s = %s", DisplayText(e.Expression), e.Result)
}

// State is a calculator session. Handlers return a new State and leave the
// receiver untouched, so a State can be shared freely once built.
type State struct {
	Expression string
	Result     string
	History    []Entry

	// HistoryDepth caps History. Zero means DefaultHistoryDepth.
	HistoryDepth int
}

// NewState returns an empty session keeping depth history entries.
func NewState(depth int) State {
	return State{HistoryDepth: depth}
}

func (s State) depth() int {
	if s.HistoryDepth <= 0 {
		return DefaultHistoryDepth
	}
	return s.HistoryDepth
}

// OnDigit appends a digit or decimal point. Other runes are ignored.
func (s State) OnDigit(r rune) State {
	if (r < '0' || r > '9') && r != '.' {
		return s
	}
	s.Expression += string(r)
	return s
}

// OnOperator appends one of + - * /. The display glyphs × and ÷ are
// accepted and stored as * and /.
func (s State) OnOperator(op rune) State {
	switch op {
	case '×':
		op = '*'
	case '÷':
		op = '/'
	}
	switch op {
	case '+', '-', '*', '/':
		s.Expression += string(op)
	}
	return s
}

// OnDelete removes the last character of the expression.
func (s State) OnDelete() State {
	if s.Expression == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s.Expression)
	s.Expression = s.Expression[:len(s.Expression)-size]
	return s
}

// OnClear resets the expression and result. History is kept.
func (s State) OnClear() State {
	s.Expression = ""
	s.Result = ""
	return s
}

// OnEquals evaluates the expression and records it in the history. On
// failure Result is eval.ErrorText and the expression is left as typed.
func (s State) OnEquals(ev Evaluator) State {
	entry := Entry{Expression: s.Expression}
	v, err := ev.Evaluate(s.Expression)
	if err != nil {
		entry.Result = eval.ErrorText
		entry.Failed = true
		s.Result = eval.ErrorText
	} else {
		entry.Result = eval.FormatResult(v)
		s.Result = "= " + entry.Result
	}
	s.History = appendCapped(s.History, entry, s.depth())
	return s
}

// Press dispatches a keypad label, a digit, an operator symbol or glyph,
// or one of "DEL", "⌫", "C" and "=". Unknown labels are ignored.
func (s State) Press(label string, ev Evaluator) State {
	switch label {
	case LabelDelete, "⌫":
		return s.OnDelete()
	case LabelClear:
		return s.OnClear()
	case LabelEquals:
		return s.OnEquals(ev)
	}
	r, size := utf8.DecodeRuneInString(label)
	if size == 0 || size != len(label) {
		return s
	}
	switch r {
	case '+', '-', '*', '/', '×', '÷':
		return s.OnOperator(r)
	default:
		return s.OnDigit(r)
	}
}

// Recent returns the history most-recent-first.
func (s State) Recent() []Entry {
	out := make([]Entry, len(s.History))
	for i, e := range s.History {
		out[len(out)-1-i] = e
	}
	return out
}

// DisplayExpression renders the expression with × and ÷.
func (s State) DisplayExpression() string {
	return DisplayText(s.Expression)
}

// appendCapped returns a fresh slice so earlier States never share a
// backing array with later ones.
func appendCapped(history []Entry, e Entry, depth int) []Entry {
	start := 0
	if n := len(history) + 1; n > depth {
		start = n - depth
	}
	out := make([]Entry, 0, len(history)-start+1)
	out = append(out, history[start:]...)
	return append(out, e)
}

var displayReplacer = strings.NewReplacer("*", "×", "/", "÷")

// DisplayText swaps * and / for the × and ÷ glyphs.
func DisplayText(s string) string {
	return displayReplacer.Replace(s)
}
