package eval

import (
	"errors"
	"fmt"
)

// ErrMalformed is matched by every error the evaluator returns.
var ErrMalformed = errors.New("malformed expression")

var (
	// ErrMissingOperand reports a * or / with nothing to fold into, as in "*5".
	ErrMissingOperand = fmt.Errorf("%w: operator has no left operand", ErrMalformed)
	// ErrInvalidNumber reports unparseable numeric text. Only returned when
	// Options.StrictNumbers is set.
	ErrInvalidNumber = fmt.Errorf("%w: invalid number", ErrMalformed)
	// ErrNonFinite reports an infinite or NaN result, e.g. from dividing by zero.
	ErrNonFinite = fmt.Errorf("%w: result is not finite", ErrMalformed)
	// ErrUnexpectedInput reports text the tokenizer cannot classify. Sanitized
	// input never produces it.
	ErrUnexpectedInput = fmt.Errorf("%w: unexpected input", ErrMalformed)
)

// EvalError locates a failure inside the sanitized expression.
type EvalError struct {
	Offset int    // byte offset into the sanitized expression
	Token  string // offending token text, if any
	Err    error
}

func (e *EvalError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("offset %d (%q): %v", e.Offset, e.Token, e.Err)
}

func (e *EvalError) Unwrap() error { return e.Err }
