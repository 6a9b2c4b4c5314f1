package eval

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ExprLexer defines the lexical structure of a sanitized expression.
// Number runs are maximal, so "2..5" is one (malformed) Number token and the
// reducer decides what it is worth.
var ExprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[0-9.]+`},
	{Name: "Operator", Pattern: `[-+*/]`},
})

var (
	numberType   = ExprLexer.Symbols()["Number"]
	operatorType = ExprLexer.Symbols()["Operator"]
)
