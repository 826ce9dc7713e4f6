package encoder

import (
	"github.com/wrzlbrmft/cpu/isa"
	"github.com/wrzlbrmft/cpu/literal"
)

// addrOperand encodes the two address bytes shared by loda/stoa/jmp/call:
// a literal numeric address (little-endian, must fit 16 bits) or a symbol
// name (zero bytes plus a relocation at the given offset).
func addrOperand(mnemonic, operand string, offset int) ([2]byte, *SymbolRef, *Error) {
	c := classify(operand)
	switch c.kind {
	case opSymbol:
		return [2]byte{0, 0}, &SymbolRef{Offset: offset, Name: c.name}, nil
	case opLiteral:
		if c.lit.IsString {
			return [2]byte{}, nil, errIncompatibleDataType(mnemonic, operand)
		}
		if literal.BitSizeOf(c.lit) > 16 {
			return [2]byte{}, nil, errIncompatibleAddrSize(mnemonic, operand)
		}
		return le16(uint16(c.lit.Integer)), nil, nil
	default:
		return [2]byte{}, nil, errInvalidOperand(mnemonic, operand)
	}
}

func encodeLoda(mnemonic string, operands []string) (*Result, *Error) {
	if len(operands) < 2 {
		return nil, errInsufficientOperands(mnemonic, 2, len(operands))
	}
	if len(operands) > 2 {
		return nil, errTooManyOperands(mnemonic, 2, len(operands))
	}
	dst := classify(operands[0])
	if dst.kind != opReg8 {
		return nil, errInvalidOperand(mnemonic, operands[0])
	}
	addr, ref, err := addrOperand(mnemonic, operands[1], 1)
	if err != nil {
		return nil, err
	}
	op := isa.LodaBase | (dst.reg.Code << 4)
	res := &Result{Bytes: []byte{op, addr[0], addr[1]}}
	if ref != nil {
		res.Refs = []SymbolRef{*ref}
	}
	return res, nil
}

func encodeStoa(mnemonic string, operands []string) (*Result, *Error) {
	if len(operands) < 2 {
		return nil, errInsufficientOperands(mnemonic, 2, len(operands))
	}
	if len(operands) > 2 {
		return nil, errTooManyOperands(mnemonic, 2, len(operands))
	}
	src := classify(operands[1])
	if src.kind != opReg8 {
		return nil, errInvalidOperand(mnemonic, operands[1])
	}
	addr, ref, err := addrOperand(mnemonic, operands[0], 1)
	if err != nil {
		return nil, err
	}
	op := isa.StoaBase | (src.reg.Code << 1)
	res := &Result{Bytes: []byte{op, addr[0], addr[1]}}
	if ref != nil {
		res.Refs = []SymbolRef{*ref}
	}
	return res, nil
}

func encodePushPop(mnemonic string, operands []string, base uint8) (*Result, *Error) {
	if len(operands) < 1 {
		return nil, errInsufficientOperands(mnemonic, 1, len(operands))
	}
	if len(operands) > 1 {
		return nil, errTooManyOperands(mnemonic, 1, len(operands))
	}
	c := classify(operands[0])
	if c.kind != opReg8 {
		return nil, errInvalidOperand(mnemonic, operands[0])
	}
	op := base | (c.reg.Code << 4) | (c.reg.Code << 1)
	return &Result{Bytes: []byte{op}}, nil
}
