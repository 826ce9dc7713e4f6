package encoder

import "github.com/wrzlbrmft/cpu/isa"

func encodeZeroOperand(mnemonic string, operands []string) (*Result, *Error) {
	if len(operands) > 0 {
		return nil, errTooManyOperands(mnemonic, 0, len(operands))
	}
	op, ok := isa.ZeroOperandOpcodes[mnemonic]
	if !ok {
		return nil, errInvalidMnemonic(mnemonic)
	}
	return &Result{Bytes: []byte{op}}, nil
}
