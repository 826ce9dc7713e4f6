package encoder

import (
	"github.com/wrzlbrmft/cpu/isa"
)

func encodeALU(mnemonic string, operands []string) (*Result, *Error) {
	if len(operands) < 1 {
		return nil, errInsufficientOperands(mnemonic, 1, len(operands))
	}
	if len(operands) > 1 {
		return nil, errTooManyOperands(mnemonic, 1, len(operands))
	}
	c := classify(operands[0])
	switch c.kind {
	case opMem:
		op, _ := isa.ALUOpcode(mnemonic, isa.MCodeALU)
		return &Result{Bytes: []byte{op}}, nil
	case opReg8:
		op, _ := isa.ALUOpcode(mnemonic, c.reg.Code)
		return &Result{Bytes: []byte{op}}, nil
	case opReg16:
		return nil, errIncompatibleRegisterSize(mnemonic)
	case opLiteral:
		if c.lit.IsString {
			return nil, errIncompatibleDataType(mnemonic, operands[0])
		}
		bits := bitSize(c)
		if bits > 8 {
			return nil, errIncompatibleDataSize(mnemonic, operands[0])
		}
		op, _ := isa.ALUOpcode(mnemonic, isa.ImmCode)
		return &Result{Bytes: []byte{op, byte(c.lit.Integer)}}, nil
	default:
		return nil, errInvalidOperand(mnemonic, operands[0])
	}
}
