package encoder

import (
	"strings"

	"github.com/wrzlbrmft/cpu/isa"
	"github.com/wrzlbrmft/cpu/literal"
	"github.com/wrzlbrmft/cpu/symtab"
)

// operandKind classifies one already-@-expanded operand string.
type operandKind int

const (
	opInvalid operandKind = iota
	opMem
	opReg8
	opReg16
	opLiteral
	opSymbol
)

type classified struct {
	kind operandKind
	reg  isa.RegisterInfo
	lit  literal.Value
	name string
}

func classify(operand string) classified {
	trimmed := strings.TrimSpace(operand)
	if trimmed == isa.MemOperand {
		return classified{kind: opMem}
	}
	if reg, ok := isa.Registers[trimmed]; ok {
		if reg.Bits == 8 {
			return classified{kind: opReg8, reg: reg}
		}
		return classified{kind: opReg16, reg: reg}
	}
	if literal.IsValid(trimmed) {
		v, err := literal.Eval(trimmed)
		if err != nil {
			return classified{kind: opInvalid}
		}
		return classified{kind: opLiteral, lit: v}
	}
	if symtab.IsValidName(trimmed) {
		return classified{kind: opSymbol, name: trimmed}
	}
	return classified{kind: opInvalid}
}

// SymbolRef is a not-yet-resolved relocation produced by the encoder:
// Offset is relative to the start of this instruction's own byte sequence;
// the driver (C6) adjusts it by the symbol's prior code length and
// resolves Name to a table index.
type SymbolRef struct {
	Offset int
	Name   string
}

// Result is the encoder's successful output: the instruction's bytes and
// any symbol references within them that still need resolving.
type Result struct {
	Bytes []byte
	Refs  []SymbolRef
}

func bitSize(c classified) int {
	return literal.BitSizeOf(c.lit)
}

func le16(v uint16) [2]byte {
	return [2]byte{byte(v), byte(v >> 8)}
}
