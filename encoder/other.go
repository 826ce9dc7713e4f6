package encoder

import "github.com/wrzlbrmft/cpu/isa"

func encodeInt(mnemonic string, operands []string) (*Result, *Error) {
	if len(operands) < 1 {
		return nil, errInsufficientOperands(mnemonic, 1, len(operands))
	}
	if len(operands) > 1 {
		return nil, errTooManyOperands(mnemonic, 1, len(operands))
	}
	c := classify(operands[0])
	if c.kind != opLiteral || c.lit.IsString {
		return nil, errInvalidInt(operands[0])
	}
	if bitSize(c) > 8 || c.lit.Integer > 63 {
		return nil, errInvalidInt(operands[0])
	}
	return &Result{Bytes: []byte{isa.IntBase, byte(c.lit.Integer)}}, nil
}

func encodeUnary(mnemonic string, operands []string) (*Result, *Error) {
	if len(operands) < 1 {
		return nil, errInsufficientOperands(mnemonic, 1, len(operands))
	}
	if len(operands) > 1 {
		return nil, errTooManyOperands(mnemonic, 1, len(operands))
	}
	c := classify(operands[0])
	switch c.kind {
	case opMem:
		op, _ := isa.UnaryOpcode(mnemonic, isa.MSubCode(mnemonic))
		return &Result{Bytes: []byte{op}}, nil
	case opReg8:
		op, _ := isa.UnaryOpcode(mnemonic, c.reg.Code)
		return &Result{Bytes: []byte{op}}, nil
	case opReg16:
		return nil, errIncompatibleRegisterSize(mnemonic)
	default:
		return nil, errInvalidOperand(mnemonic, operands[0])
	}
}
