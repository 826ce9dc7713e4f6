package isa

// Condition is one of the six flag-test conditions shared by the
// conditional return, conditional jump and conditional call mnemonics.
type Condition int

const (
	CondC  Condition = iota // c / b / nae (carry set)
	CondNC                  // nc / nb / ae (carry clear)
	CondZ                   // z / e (zero set)
	CondNZ                  // nz / ne (zero clear)
	CondA                   // a / nbe (above: carry clear and zero clear)
	CondNA                  // na / be (not above: carry set or zero set)
)

// conditionAliases maps every mnemonic suffix spelling to its Condition.
var conditionAliases = map[string]Condition{
	"c": CondC, "b": CondC, "nae": CondC,
	"nc": CondNC, "nb": CondNC, "ae": CondNC,
	"z": CondZ, "e": CondZ,
	"nz": CondNZ, "ne": CondNZ,
	"a": CondA, "nbe": CondA,
	"na": CondNA, "be": CondNA,
}

// ZeroOperandOpcodes are the fixed single-byte encodings of every
// zero-operand mnemonic, taken verbatim from spec.md §4.5.
var ZeroOperandOpcodes = map[string]uint8{
	"nop":    0x00,
	"hlt":    0xFF,
	"rst":    0xF7,
	"inchl":  0x97,
	"dechl":  0xA7,
	"pushhl": 0x91,
	"pophl":  0x95,
	"pushf":  0x87,
	"popf":   0xD9,
	"ret":    0x05,
	"iret":   0xB5,

	"rc": 0x11, "rb": 0x11, "rnae": 0x11,
	"rnc": 0x15, "rnb": 0x15, "rae": 0x15,
	"rz": 0x21, "re": 0x21,
	"rnz": 0x23, "rne": 0x23,
	"ra": 0x83, "rnbe": 0x83,
	"rna": 0x85, "rbe": 0x85,
}

// jumpPrefix and callPrefix introduce the jump/call instruction families.
// spec.md §9's Open Question asks for "one consistent table"; a single
// base|(idx<<1)|flip opcode byte (the original choice here) cannot avoid
// colliding with something else in the table — the zero-operand, ALU,
// unary and mov/loda/stoa/push/pop opcodes between them claim every byte a
// 16-aligned base could reach (mov's dst/src fields alone span the whole
// even half of 0x80-0xFE; no 16-aligned run of 14 consecutive free bytes
// exists anywhere in 0x00-0xFF). Jump/call instead spend a dedicated
// prefix byte on the family and a second "condition" byte on which of the
// 7 members (unconditional + 6 conditions) and which operand form (bit 0:
// 0 for "m", indirect with no address bytes; 1 for an address/symbol,
// two address bytes literal or relocated) applies. The condition byte is
// never compared against the rest of the opcode table, so it cannot
// collide with anything.
const (
	jumpPrefix uint8 = 0x06
	callPrefix uint8 = 0x07
)

// jumpCallIndex orders the 7 jump/call variants within their condition byte.
var jumpCallIndex = map[Condition]uint8{
	CondC: 1, CondNC: 2, CondZ: 3, CondNZ: 4, CondA: 5, CondNA: 6,
}

const unconditionalIndex uint8 = 0

// jumpCallSuffixCondition resolves a jump/call mnemonic suffix (without
// the family's leading letter) to its Condition; ok is false if the suffix
// is not a known condition spelling.
func jumpCallSuffixCondition(suffix string) (Condition, bool) {
	cond, ok := conditionAliases[suffix]
	return cond, ok
}

// JumpOpcode returns the prefix byte and condition byte (operand-form bit
// not yet applied) for a jump mnemonic: "jmp" for unconditional, or one of
// the condition suffixes (c, nc, z, nz, a, na, b, nb, nae, ae, e, ne, nbe,
// be).
func JumpOpcode(mnemonic string) (prefix, cond uint8, ok bool) {
	return familyOpcode(mnemonic, "j", jumpPrefix)
}

// CallOpcode returns the prefix byte and condition byte (operand-form bit
// not yet applied) for a call mnemonic: "call" for unconditional, or one
// of the condition suffixes prefixed with 'c' (cc, cnc, cz, cnz, ca, cna,
// ...).
func CallOpcode(mnemonic string) (prefix, cond uint8, ok bool) {
	return familyOpcode(mnemonic, "c", callPrefix)
}

func familyOpcode(mnemonic, prefix string, prefixByte uint8) (uint8, uint8, bool) {
	unconditional := prefix + "mp"
	if prefix == "c" {
		unconditional = "call"
	}
	if mnemonic == unconditional {
		return prefixByte, unconditionalIndex << 1, true
	}
	if len(mnemonic) <= len(prefix) || mnemonic[:len(prefix)] != prefix {
		return 0, 0, false
	}
	suffix := mnemonic[len(prefix):]
	cond, ok := jumpCallSuffixCondition(suffix)
	if !ok {
		return 0, 0, false
	}
	idx := jumpCallIndex[cond]
	return prefixByte, idx << 1, true
}

// IsJumpMnemonic reports whether mnemonic names a member of the jmp family.
func IsJumpMnemonic(mnemonic string) bool {
	_, _, ok := JumpOpcode(mnemonic)
	return ok
}

// IsCallMnemonic reports whether mnemonic names a member of the call family.
func IsCallMnemonic(mnemonic string) bool {
	_, _, ok := CallOpcode(mnemonic)
	return ok
}

// ALU unary-operand family base opcodes, per spec.md §4.5. The shift
// applied to the operand sub-code differs per mnemonic; that asymmetry is
// reproduced exactly as specified rather than normalized away.
const (
	aluAddBase uint8 = 0b01100000
	aluSubBase uint8 = 0b01100001
	aluCmpBase uint8 = 0b01110000
	aluAdcBase uint8 = 0b01010000
	aluSbbBase uint8 = 0b01011000
	aluAndBase uint8 = 0b00110000
	aluOrBase  uint8 = 0b00111000
	aluXorBase uint8 = 0b01000000
)

// ALUOpcode returns the opcode byte for one ALU unary-operand mnemonic
// given the 3-bit operand sub-code (a register code, 0b110 for "m", or
// 0b111 for an immediate).
func ALUOpcode(mnemonic string, code uint8) (uint8, bool) {
	switch mnemonic {
	case "add":
		return aluAddBase | (code << 1), true
	case "sub":
		return aluSubBase | (code << 1), true
	case "cmp":
		return aluCmpBase | (code << 1), true
	case "adc":
		return aluAdcBase | code, true
	case "sbb":
		return aluSbbBase | code, true
	case "and":
		return aluAndBase | code, true
	case "or":
		return aluOrBase | code, true
	case "xor":
		return aluXorBase | code, true
	default:
		return 0, false
	}
}

// IsALUMnemonic reports whether mnemonic is one of the ALU unary family.
func IsALUMnemonic(mnemonic string) bool {
	switch mnemonic {
	case "add", "sub", "cmp", "adc", "sbb", "and", "or", "xor":
		return true
	default:
		return false
	}
}

// inc/dec/not/shl/shr family base opcodes, per spec.md §4.5.
const (
	incBase uint8 = 0xF0
	decBase uint8 = 0xF8
	notBase uint8 = 0x08
	shlBase uint8 = 0x18
	shrBase uint8 = 0x28
)

// UnaryOpcode returns the opcode byte for inc/dec/not/shl/shr given the
// 3-bit operand sub-code (a register code, or the family-specific "m"
// sub-code already resolved by the caller).
func UnaryOpcode(mnemonic string, code uint8) (uint8, bool) {
	switch mnemonic {
	case "inc":
		return incBase | code, true
	case "dec":
		return decBase | code, true
	case "not":
		return notBase | code, true
	case "shl":
		return shlBase | code, true
	case "shr":
		return shrBase | code, true
	default:
		return 0, false
	}
}

// IsUnaryMnemonic reports whether mnemonic is one of inc/dec/not/shl/shr.
func IsUnaryMnemonic(mnemonic string) bool {
	switch mnemonic {
	case "inc", "dec", "not", "shl", "shr":
		return true
	default:
		return false
	}
}

// MSubCode returns the sub-code used for the "m" operand of inc/dec versus
// not/shl/shr, which differ per spec.md §4.5.
func MSubCode(mnemonic string) uint8 {
	switch mnemonic {
	case "inc", "dec":
		return mCodeIncDec
	default:
		return mCodeNotShift
	}
}

// Fixed single-byte-base opcodes for the remaining families.
const (
	LodaBase uint8 = 0b10001101 // | (r8_code << 4)
	StoaBase uint8 = 0b11100001 // | (r8_code << 1)
	PushBase uint8 = 0b10000000 // | (code << 4) | (code << 1)
	PopBase  uint8 = 0b10000001 // | (code << 4) | (code << 1)
	IntBase  uint8 = 0xDF
	MovBase8 uint8 = 0b10000000 // 8-bit mov family, high bit set
	MovBase16 uint8 = 0b00000000 // 16-bit mov family, high bit clear
)

// ImmCode and the two "m" sub-codes are exported for the encoder.
const (
	ImmCode    = immCode
	MCode8Mov  = mCode8Mov
	MCodeALU   = mCodeALU
)
