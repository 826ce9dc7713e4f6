// Package literal implements the numeric, character and string literal
// grammar of spec.md §4.1 (C1 Literal Parser): recognition, evaluation and
// bit-width computation, each as a small pure function over a token string.
package literal

import (
	"regexp"
	"strconv"
)

// Kind identifies which literal grammar a token matched.
type Kind int

const (
	KindInvalid Kind = iota
	KindDecimal
	KindHex
	KindBinary
	KindOctal
	KindChar
	KindString
)

var (
	decRegex = regexp.MustCompile(`^[1-9][0-9]*$`)
	hexRegex = regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`)
	binRegex = regexp.MustCompile(`^0[bB][01]+$`)
	octRegex = regexp.MustCompile(`^0[oO][0-7]+$`)
	chrRegex = regexp.MustCompile(`^(?:'.'|".")$`)
	strRegex = regexp.MustCompile(`^(?:'.{2,}'|".{2,}")$`)
)

// ClassifyKind classifies a token, or returns KindInvalid if none of the literal
// grammars match.
func ClassifyKind(s string) Kind {
	switch {
	case s == "0":
		return KindDecimal
	case decRegex.MatchString(s):
		return KindDecimal
	case hexRegex.MatchString(s):
		return KindHex
	case binRegex.MatchString(s):
		return KindBinary
	case octRegex.MatchString(s):
		return KindOctal
	case chrRegex.MatchString(s):
		return KindChar
	case strRegex.MatchString(s):
		return KindString
	default:
		return KindInvalid
	}
}

// IsValid reports whether s is recognized by any literal grammar.
func IsValid(s string) bool {
	return ClassifyKind(s) != KindInvalid
}

// Value is the result of evaluating a literal: either a non-negative
// integer (numeric and character literals) or an ordered sequence of code
// points (string literals).
type Value struct {
	Integer  uint64
	CodePoints []rune
	IsString bool
}

// Eval evaluates s, returning an error if it is not a recognized literal.
func Eval(s string) (Value, error) {
	switch ClassifyKind(s) {
	case KindDecimal:
		if s == "0" {
			return Value{Integer: 0}, nil
		}
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return Value{}, err
		}
		return Value{Integer: n}, nil
	case KindHex:
		n, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return Value{}, err
		}
		return Value{Integer: n}, nil
	case KindBinary:
		n, err := strconv.ParseUint(s[2:], 2, 64)
		if err != nil {
			return Value{}, err
		}
		return Value{Integer: n}, nil
	case KindOctal:
		n, err := strconv.ParseUint(s[2:], 8, 64)
		if err != nil {
			return Value{}, err
		}
		return Value{Integer: n}, nil
	case KindChar:
		r := []rune(s[1 : len(s)-1])
		return Value{Integer: uint64(r[0])}, nil
	case KindString:
		r := []rune(s[1 : len(s)-1])
		return Value{CodePoints: r, IsString: true}, nil
	default:
		return Value{}, errInvalidLiteral(s)
	}
}

type errInvalidLiteral string

func (e errInvalidLiteral) Error() string {
	return "invalid literal: " + string(e)
}

// bitsFor rounds n's minimum bit length up to the next multiple of 8; a
// zero value always yields 8, per spec.md §4.1 ("0-bit for value 0 is
// disallowed: literal `0` has bit_size = 8").
func bitsFor(n uint64) int {
	bits := 0
	for t := n; t != 0; t >>= 1 {
		bits++
	}
	if bits == 0 {
		bits = 1
	}
	return ((bits + 7) / 8) * 8
}

// BitSize returns the minimum multiple of 8 bits that holds s's value; for
// strings, the maximum over its characters.
func BitSize(s string) (int, error) {
	v, err := Eval(s)
	if err != nil {
		return 0, err
	}
	return BitSizeOf(v), nil
}

// BitSizeOf is BitSize's value-level counterpart, for callers that already
// hold an evaluated Value (e.g. the encoder, after operand classification).
func BitSizeOf(v Value) int {
	if v.IsString {
		max := 8
		for _, r := range v.CodePoints {
			if b := bitsFor(uint64(r)); b > max {
				max = b
			}
		}
		return max
	}
	return bitsFor(v.Integer)
}
