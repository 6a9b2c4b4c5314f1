package eval

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// TokenKind classifies a token.
type TokenKind int

const (
	// Number is a run of digits and dots.
	Number TokenKind = iota
	// Operator is one of + - * /.
	Operator
)

func (k TokenKind) String() string {
	switch k {
	case Number:
		return "Number"
	case Operator:
		return "Operator"
	default:
		return "Unknown"
	}
}

// Token is a numeric literal or a single operator character.
type Token struct {
	Kind   TokenKind
	Text   string
	Offset int // byte offset into the sanitized expression
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%s)@%d", t.Kind, t.Text, t.Offset)
}

// Sanitize maps × and ÷ to * and / and drops every rune that is not a digit,
// a dot or one of the four operators. Order is preserved.
func Sanitize(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '+', r == '-', r == '*', r == '/':
			sb.WriteRune(r)
		case r == '×':
			sb.WriteByte('*')
		case r == '÷':
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// Tokenize splits a sanitized expression into Number and Operator tokens.
// Concatenating the token texts gives back the input.
func Tokenize(clean string) ([]Token, error) {
	lex, err := ExprLexer.LexString("", clean)
	if err != nil {
		return nil, fmt.Errorf("failed to create lexer: %w", err)
	}

	var tokens []Token
	for {
		tok, err := lex.Next()
		if err != nil {
			offset := 0
			var lerr *lexer.Error
			if errors.As(err, &lerr) {
				offset = lerr.Pos.Offset
			}
			return nil, &EvalError{Offset: offset, Err: ErrUnexpectedInput}
		}
		if tok.EOF() {
			return tokens, nil
		}

		switch tok.Type {
		case numberType:
			tokens = append(tokens, Token{Kind: Number, Text: tok.Value, Offset: tok.Pos.Offset})
		case operatorType:
			tokens = append(tokens, Token{Kind: Operator, Text: tok.Value, Offset: tok.Pos.Offset})
		default:
			return nil, &EvalError{Offset: tok.Pos.Offset, Token: tok.Value, Err: ErrUnexpectedInput}
		}
	}
}
