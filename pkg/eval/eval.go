package eval

import (
	"errors"
	"math"
	"strconv"
)

// ErrorText is what EvaluateString returns for any failed evaluation.
const ErrorText = "Error"

// Options tighten the evaluator's default leniency.
type Options struct {
	// StrictNumbers makes unparseable numeric text such as "2..5" an
	// ErrInvalidNumber instead of evaluating it as 0.
	StrictNumbers bool
	// AllowNonFinite lets ±Inf and NaN through as results instead of
	// reporting ErrNonFinite.
	AllowNonFinite bool
}

// Evaluator reduces flat arithmetic expressions to a float64.
type Evaluator struct {
	opts Options
}

// New returns an Evaluator with the given options.
func New(opts Options) *Evaluator {
	return &Evaluator{opts: opts}
}

// Options returns the evaluator's configuration.
func (e *Evaluator) Options() Options {
	return e.opts
}

var defaultEvaluator = New(Options{})

// Evaluate evaluates raw with the default, lenient options.
func Evaluate(raw string) (float64, error) {
	return defaultEvaluator.Evaluate(raw)
}

// EvaluateString evaluates raw with the default options and formats the
// result, or returns ErrorText.
func EvaluateString(raw string) string {
	return defaultEvaluator.EvaluateString(raw)
}

// Evaluate sanitizes, tokenizes and reduces raw.
func (e *Evaluator) Evaluate(raw string) (float64, error) {
	clean := Sanitize(raw)
	tokens, err := Tokenize(clean)
	if err != nil {
		return 0, err
	}
	return e.Reduce(tokens)
}

// EvaluateString is Evaluate with errors collapsed to ErrorText.
func (e *Evaluator) EvaluateString(raw string) string {
	v, err := e.Evaluate(raw)
	if err != nil {
		return ErrorText
	}
	return FormatResult(v)
}

// Reduce folds a token stream into a single value.
func (e *Evaluator) Reduce(tokens []Token) (float64, error) {
	var acc accumulator
	op := "+"

	for _, tok := range tokens {
		if tok.Kind == Operator {
			op = tok.Text
			continue
		}

		num, err := e.parseNumber(tok)
		if err != nil {
			return 0, err
		}

		switch op {
		case "+":
			acc.push(num)
		case "-":
			acc.push(-num)
		case "*":
			if !acc.fold(func(last float64) float64 { return last * num }) {
				return 0, &EvalError{Offset: tok.Offset, Token: tok.Text, Err: ErrMissingOperand}
			}
		case "/":
			if !acc.fold(func(last float64) float64 { return last / num }) {
				return 0, &EvalError{Offset: tok.Offset, Token: tok.Text, Err: ErrMissingOperand}
			}
		}
	}

	sum := acc.sum()
	if !e.opts.AllowNonFinite && (math.IsInf(sum, 0) || math.IsNaN(sum)) {
		return 0, ErrNonFinite
	}
	return sum, nil
}

func (e *Evaluator) parseNumber(tok Token) (float64, error) {
	num, err := strconv.ParseFloat(tok.Text, 64)
	if err == nil {
		return num, nil
	}
	// Overflow still carries ±Inf, which is what the user typed.
	if errors.Is(err, strconv.ErrRange) {
		return num, nil
	}
	if e.opts.StrictNumbers {
		return 0, &EvalError{Offset: tok.Offset, Token: tok.Text, Err: ErrInvalidNumber}
	}
	return 0, nil
}

// FormatResult renders v as the shortest decimal that parses back to v.
// Exponent notation is never used, so "<result>+0" evaluates to v again.
func FormatResult(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
