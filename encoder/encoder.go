// Package encoder implements the instruction encoder (C5) of spec.md
// §4.5: a pure function from a mnemonic and its operand strings to a byte
// sequence plus deferred symbol relocations, with no knowledge of any
// symbol table — relocations name the referenced symbol and are resolved
// by the caller (package assembler).
package encoder

import "github.com/wrzlbrmft/cpu/isa"

// Encode dispatches mnemonic (already lower-cased by the caller) and its
// operands to the matching instruction family. operands must already have
// any "@"-local symbol name expanded (symtab.ExpandLocal) by the caller.
func Encode(mnemonic string, operands []string) (*Result, *Error) {
	if _, ok := isa.ZeroOperandOpcodes[mnemonic]; ok {
		return encodeZeroOperand(mnemonic, operands)
	}

	switch mnemonic {
	case "mov":
		return encodeMov(mnemonic, operands)
	case "loda":
		return encodeLoda(mnemonic, operands)
	case "stoa":
		return encodeStoa(mnemonic, operands)
	case "push":
		return encodePushPop(mnemonic, operands, isa.PushBase)
	case "pop":
		return encodePushPop(mnemonic, operands, isa.PopBase)
	case "int":
		return encodeInt(mnemonic, operands)
	case "db":
		return encodeDB(mnemonic, operands)
	case "dw":
		return encodeDW(mnemonic, operands)
	}

	if isa.IsALUMnemonic(mnemonic) {
		return encodeALU(mnemonic, operands)
	}
	if isa.IsUnaryMnemonic(mnemonic) {
		return encodeUnary(mnemonic, operands)
	}
	if prefix, cond, ok := jumpCallOpcode(mnemonic); ok {
		return encodeJumpCall(mnemonic, operands, prefix, cond)
	}

	return nil, errInvalidMnemonic(mnemonic)
}
