// Package eval implements the calculator's arithmetic expression evaluator.
//
// An expression is a flat run of decimal numbers joined by the four basic
// operators. There is no grouping and no function syntax. Evaluation happens
// in a single left-to-right pass:
//
//	raw text --Sanitize--> clean text --Tokenize--> tokens --reduce--> float64
//
// # Sanitizing
//
// Every rune outside 0-9 . + - * / is dropped before tokenizing. The display
// glyphs × and ÷ are accepted and mapped to * and /.
//
// # Reduction
//
// The reducer keeps a current operator (initially +) and a list of signed
// operands. + and - push a new operand, * and / fold into the most recent one,
// so products and quotients bind tighter than sums:
//
//	5+3*2   -> [5, 6]      -> 11
//	10/2-3  -> [5, -3]     -> 2
//
// The final result is the sum of the operand list. An empty list sums to 0.
//
// # Leniency
//
// Malformed numeric text such as "2..5" evaluates as 0 and unknown characters
// are ignored. Both behaviors can be tightened through Options. The only
// failures in the default configuration are a * or / with no operand before
// it and a non-finite result; all failures match ErrMalformed.
//
// Evaluator values are immutable and safe for concurrent use.
package eval
