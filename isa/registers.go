// Package isa holds the fixed opcode and register tables for the 8/16-bit
// target machine. It is pure data plus lookup helpers; it has no parsing or
// I/O concerns of its own and is shared by the instruction encoder and the
// symbol-name check in package symtab.
package isa

// RegisterInfo describes one machine register.
type RegisterInfo struct {
	Name string
	Bits int // 8 or 16
	Code uint8
}

// Registers is the full set of addressable machine registers, keyed by
// their assembly-source name. "m" is the memory pseudo-operand and has no
// register code of its own.
var Registers = map[string]RegisterInfo{
	"a":  {Name: "a", Bits: 8, Code: 0b000},
	"b":  {Name: "b", Bits: 8, Code: 0b001},
	"c":  {Name: "c", Bits: 8, Code: 0b010},
	"d":  {Name: "d", Bits: 8, Code: 0b011},
	"h":  {Name: "h", Bits: 8, Code: 0b100},
	"l":  {Name: "l", Bits: 8, Code: 0b101},
	"hl": {Name: "hl", Bits: 16, Code: 0b000},
	"ip": {Name: "ip", Bits: 16, Code: 0b001},
	"sp": {Name: "sp", Bits: 16, Code: 0b010},
}

// MemOperand is the reserved memory pseudo-operand.
const MemOperand = "m"

// ReservedWords are operand words that can never be used as symbol names,
// per spec.md §6.
var ReservedWords = map[string]bool{
	"a": true, "b": true, "c": true, "d": true, "h": true, "l": true,
	"hl": true, "ip": true, "sp": true, "m": true,
}

// IsRegister reports whether name is a valid register operand (not "m").
func IsRegister(name string) (RegisterInfo, bool) {
	r, ok := Registers[name]
	return r, ok
}

// IsReserved reports whether name can never be used as a symbol name.
func IsReserved(name string) bool {
	return ReservedWords[name]
}

// The mCode* constants are the sub-opcode fields used when an operand is
// the memory pseudo-operand "m", per spec.md §4.5; immCode is the field
// value for an immediate or symbol operand.
const (
	mCode8Mov  uint8 = 0b110 // m as src/dst of an 8-bit mov
	mCodeALU   uint8 = 0b110 // m as the unary operand of add/sub/cmp/...
	mCodeIncDec uint8 = 0b110 // m's sub-code for inc/dec
	mCodeNotShift uint8 = 0b111 // m's sub-code for not/shl/shr
	immCode    uint8 = 0b111 // an immediate or symbol operand in a mov/ALU field
)
