package encoder

import "strings"

// splitMultiplier recognizes the "<lit> ( <mult> )" operand form (spec.md
// §4.5): the line lexer rejoins its four raw tokens (value, "(", multiplier,
// ")") with single spaces into one operand string, so this just splits them
// back apart.
func splitMultiplier(operand string) (value string, mult string, hasMult bool) {
	fields := strings.Fields(operand)
	if len(fields) == 4 && fields[1] == "(" && fields[3] == ")" {
		return fields[0], fields[2], true
	}
	return operand, "", false
}

func multiplierCount(mnemonic, value, multTok string) (int, *Error) {
	mc := classify(multTok)
	if mc.kind != opLiteral || mc.lit.IsString {
		return 0, errInvalidMultiplier(mnemonic, multTok)
	}
	if mc.lit.Integer < 1 {
		return 0, errInvalidMultiplier(mnemonic, multTok)
	}
	if bitSize(mc) > 16 {
		return 0, errUnsupportedMultiplierSize(mnemonic, multTok)
	}
	return int(mc.lit.Integer), nil
}

func encodeDB(mnemonic string, operands []string) (*Result, *Error) {
	if len(operands) == 0 {
		return nil, errNoData(mnemonic)
	}
	var bytes []byte
	for _, operand := range operands {
		value, multTok, hasMult := splitMultiplier(operand)
		c := classify(value)
		var seq []byte
		switch c.kind {
		case opLiteral:
			if c.lit.IsString {
				for _, r := range c.lit.CodePoints {
					if r > 0xFF {
						return nil, errIncompatibleDataSize(mnemonic, operand)
					}
					seq = append(seq, byte(r))
				}
			} else {
				if bitSize(c) > 8 {
					return nil, errIncompatibleDataSize(mnemonic, operand)
				}
				seq = []byte{byte(c.lit.Integer)}
			}
		default:
			if hasMult {
				return nil, errUnsupportedMultiplier(mnemonic, operand)
			}
			return nil, errInvalidOperand(mnemonic, value)
		}
		if hasMult {
			n, err := multiplierCount(mnemonic, value, multTok)
			if err != nil {
				return nil, err
			}
			for i := 0; i < n; i++ {
				bytes = append(bytes, seq...)
			}
		} else {
			bytes = append(bytes, seq...)
		}
	}
	return &Result{Bytes: bytes}, nil
}

func encodeDW(mnemonic string, operands []string) (*Result, *Error) {
	if len(operands) == 0 {
		return nil, errNoData(mnemonic)
	}
	var bytes []byte
	var refs []SymbolRef

	appendWords := func(words [][2]byte, ref *string, n int) {
		for i := 0; i < n; i++ {
			for _, w := range words {
				if ref != nil {
					refs = append(refs, SymbolRef{Offset: len(bytes), Name: *ref})
				}
				bytes = append(bytes, w[0], w[1])
			}
		}
	}

	for _, operand := range operands {
		value, multTok, hasMult := splitMultiplier(operand)
		c := classify(value)

		var words [][2]byte
		var symRef *string
		switch c.kind {
		case opSymbol:
			if hasMult {
				return nil, errUnsupportedMultiplier(mnemonic, operand)
			}
			name := c.name
			symRef = &name
			words = [][2]byte{{0, 0}}
		case opLiteral:
			if c.lit.IsString {
				for _, r := range c.lit.CodePoints {
					words = append(words, le16(uint16(r)))
				}
			} else {
				if bitSize(c) > 16 {
					return nil, errIncompatibleDataSize(mnemonic, operand)
				}
				words = [][2]byte{le16(uint16(c.lit.Integer))}
			}
		default:
			if hasMult {
				return nil, errUnsupportedMultiplier(mnemonic, operand)
			}
			return nil, errInvalidOperand(mnemonic, value)
		}

		n := 1
		if hasMult {
			var err *Error
			n, err = multiplierCount(mnemonic, value, multTok)
			if err != nil {
				return nil, err
			}
		}
		appendWords(words, symRef, n)
	}
	return &Result{Bytes: bytes, Refs: refs}, nil
}
