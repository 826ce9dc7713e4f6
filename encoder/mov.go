package encoder

import (
	"github.com/wrzlbrmft/cpu/isa"
	"github.com/wrzlbrmft/cpu/literal"
)

func encodeMov(mnemonic string, operands []string) (*Result, *Error) {
	if len(operands) < 2 {
		return nil, errInsufficientOperands(mnemonic, 2, len(operands))
	}
	if len(operands) > 2 {
		return nil, errTooManyOperands(mnemonic, 2, len(operands))
	}
	dst := classify(operands[0])
	src := classify(operands[1])

	switch dst.kind {
	case opMem:
		if src.kind != opReg8 {
			return nil, errUnsupportedOperand(mnemonic, operands[1])
		}
		op := isa.MovBase8 | (isa.MCode8Mov << 4) | (src.reg.Code << 1)
		return &Result{Bytes: []byte{op}}, nil

	case opReg8:
		switch src.kind {
		case opMem:
			op := isa.MovBase8 | (dst.reg.Code << 4) | (isa.MCode8Mov << 1)
			return &Result{Bytes: []byte{op}}, nil
		case opReg8:
			op := isa.MovBase8 | (dst.reg.Code << 4) | (src.reg.Code << 1)
			return &Result{Bytes: []byte{op}}, nil
		case opReg16:
			return nil, errIncompatibleRegisterSize(mnemonic)
		case opLiteral:
			if src.lit.IsString {
				return nil, errIncompatibleDataType(mnemonic, operands[1])
			}
			bits := literal.BitSizeOf(src.lit)
			if bits > 8 {
				return nil, errIncompatibleDataSize(mnemonic, operands[1])
			}
			op := isa.MovBase8 | (dst.reg.Code << 4) | (isa.ImmCode << 1)
			return &Result{Bytes: []byte{op, byte(src.lit.Integer)}}, nil
		case opSymbol:
			return nil, errUnsupportedOperand(mnemonic, operands[1])
		default:
			return nil, errInvalidOperand(mnemonic, operands[1])
		}

	case opReg16:
		switch src.kind {
		case opReg16:
			op := isa.MovBase16 | (dst.reg.Code << 4) | (src.reg.Code << 1)
			return &Result{Bytes: []byte{op}}, nil
		case opReg8:
			return nil, errIncompatibleRegisterSize(mnemonic)
		case opSymbol:
			op := isa.MovBase16 | (dst.reg.Code << 4) | (isa.ImmCode << 1)
			return &Result{
				Bytes: []byte{op, 0, 0},
				Refs:  []SymbolRef{{Offset: 1, Name: src.name}},
			}, nil
		case opLiteral:
			if src.lit.IsString {
				return nil, errIncompatibleDataType(mnemonic, operands[1])
			}
			if src.lit.Integer > 0xFFFF {
				return nil, errIncompatibleDataSize(mnemonic, operands[1])
			}
			b := le16(uint16(src.lit.Integer))
			op := isa.MovBase16 | (dst.reg.Code << 4) | (isa.ImmCode << 1)
			return &Result{Bytes: []byte{op, b[0], b[1]}}, nil
		default:
			return nil, errUnsupportedOperand(mnemonic, operands[1])
		}

	default:
		return nil, errInvalidOperand(mnemonic, operands[0])
	}
}
