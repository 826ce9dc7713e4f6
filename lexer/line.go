// Package lexer implements the line lexer (C2) of spec.md §4.2: it
// tokenizes one source line into an optional directive, an optional
// label, an optional mnemonic, and an ordered operand list.
package lexer

import (
	"strings"

	"github.com/wrzlbrmft/cpu/toolerr"
)

// Line is the result of lexing one source line.
type Line struct {
	Directive string // without the leading '.'; "" if absent
	HasDirective bool
	Label     string // without the trailing ':'; "" if absent
	HasLabel  bool
	Mnemonic  string
	HasMnemonic bool
	Operands  []string
}

// Blank reports whether the line produced no tokens at all (blank line or
// comment-only line).
func (l Line) Blank() bool {
	return !l.HasDirective && !l.HasLabel && !l.HasMnemonic
}

func hasRune(s string, r rune) bool {
	return strings.ContainsRune(s, r)
}

// Lex tokenizes line and classifies its tokens per spec.md §4.2. pos is
// used only to tag any UNEXPECTED error.
func Lex(pos toolerr.Position, line string) (Line, error) {
	raw := rawTokenize(line)
	var out Line

	i := 0

	// A leading or trailing comma (no operand on one side) is malformed at
	// any position; checked again once we know where operands start.
	if len(raw) > 0 && raw[0] == "," {
		return Line{}, toolerr.New(pos, toolerr.KindUnexpected, "unexpected ','")
	}

	// Directive: first token, begins with '.', not quoted, has no ':' or
	// '@' in it.
	if i < len(raw) && !isQuoted(raw[i]) && strings.HasPrefix(raw[i], ".") {
		tok := raw[i]
		if hasRune(tok[1:], ':') || hasRune(tok[1:], '@') {
			return Line{}, toolerr.New(pos, toolerr.KindUnexpected, "unexpected character in '"+tok+"'")
		}
		out.Directive = tok[1:]
		out.HasDirective = true
		i++
	}

	// Label: next token, ends with ':', not quoted, has no '.' in it and
	// no '@' beyond position 0.
	if i < len(raw) && !isQuoted(raw[i]) && strings.HasSuffix(raw[i], ":") && len(raw[i]) > 1 {
		tok := raw[i]
		body := tok[:len(tok)-1]
		if hasRune(body, '.') {
			return Line{}, toolerr.New(pos, toolerr.KindUnexpected, "unexpected character in '"+tok+"'")
		}
		if idx := strings.IndexRune(body, '@'); idx > 0 {
			return Line{}, toolerr.New(pos, toolerr.KindUnexpected, "unexpected character in '"+tok+"'")
		}
		if out.HasDirective {
			return Line{}, toolerr.New(pos, toolerr.KindUnexpected, "unexpected label after directive")
		}
		out.Label = body
		out.HasLabel = true
		i++
	}

	// A further '.' or ':'-suffixed token past this point is malformed: a
	// second directive or label.
	if i < len(raw) && !isQuoted(raw[i]) {
		tok := raw[i]
		if strings.HasPrefix(tok, ".") {
			return Line{}, toolerr.New(pos, toolerr.KindUnexpected, "unexpected directive after "+afterWhat(out))
		}
		if strings.HasSuffix(tok, ":") && len(tok) > 1 {
			return Line{}, toolerr.New(pos, toolerr.KindUnexpected, "unexpected label after "+afterWhat(out))
		}
	}

	// Mnemonic: the first remaining token.
	if i < len(raw) {
		out.Mnemonic = raw[i]
		out.HasMnemonic = true
		i++
	}

	// Operands: remaining tokens, comma-separated, multi-word operands
	// rejoined with single spaces.
	var operands []string
	var cur []string
	expectOperand := true
	for ; i < len(raw); i++ {
		tok := raw[i]
		if tok == "," {
			if expectOperand {
				return Line{}, toolerr.New(pos, toolerr.KindUnexpected, "unexpected ','")
			}
			operands = append(operands, strings.Join(cur, " "))
			cur = nil
			expectOperand = true
			continue
		}
		cur = append(cur, tok)
		expectOperand = false
	}
	if expectOperand && len(operands) > 0 {
		return Line{}, toolerr.New(pos, toolerr.KindUnexpected, "unexpected ',' at end of line")
	}
	if len(cur) > 0 {
		operands = append(operands, strings.Join(cur, " "))
	}
	out.Operands = operands

	return out, nil
}

func afterWhat(l Line) string {
	if l.HasLabel {
		return "label"
	}
	if l.HasDirective {
		return "directive"
	}
	return "start of line"
}
