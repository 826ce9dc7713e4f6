package encoder

import "github.com/wrzlbrmft/cpu/isa"

// encodeJumpCall handles both the jmp* and call* families: a prefix byte
// names the family, a condition byte selects the variant and operand form
// (bit 0: 0 for "m", no address bytes; 1 for an address/symbol, two
// address bytes or zeros+relocation).
func encodeJumpCall(mnemonic string, operands []string, prefix, cond uint8) (*Result, *Error) {
	if len(operands) < 1 {
		return nil, errInsufficientOperands(mnemonic, 1, len(operands))
	}
	if len(operands) > 1 {
		return nil, errTooManyOperands(mnemonic, 1, len(operands))
	}
	c := classify(operands[0])
	if c.kind == opMem {
		return &Result{Bytes: []byte{prefix, cond}}, nil
	}
	addr, ref, err := addrOperand(mnemonic, operands[0], 2)
	if err != nil {
		return nil, err
	}
	res := &Result{Bytes: []byte{prefix, cond | 1, addr[0], addr[1]}}
	if ref != nil {
		res.Refs = []SymbolRef{*ref}
	}
	return res, nil
}

func jumpCallOpcode(mnemonic string) (prefix, cond uint8, ok bool) {
	if prefix, cond, ok := isa.JumpOpcode(mnemonic); ok {
		return prefix, cond, true
	}
	if prefix, cond, ok := isa.CallOpcode(mnemonic); ok {
		return prefix, cond, true
	}
	return 0, 0, false
}
