package isa

import "testing"

func TestIsRegister(t *testing.T) {
	if r, ok := IsRegister("a"); !ok || r.Bits != 8 {
		t.Errorf("IsRegister(a) = %+v, %v, want 8-bit register", r, ok)
	}
	if r, ok := IsRegister("hl"); !ok || r.Bits != 16 {
		t.Errorf("IsRegister(hl) = %+v, %v, want 16-bit register", r, ok)
	}
	if _, ok := IsRegister("m"); ok {
		t.Error("IsRegister(m) should be false: m is the memory pseudo-operand, not a register")
	}
	if _, ok := IsRegister("zz"); ok {
		t.Error("IsRegister(zz) should be false")
	}
}

func TestIsReserved(t *testing.T) {
	for _, name := range []string{"a", "hl", "m", "sp"} {
		if !IsReserved(name) {
			t.Errorf("IsReserved(%q) = false, want true", name)
		}
	}
	if IsReserved("foo") {
		t.Error("IsReserved(foo) = true, want false")
	}
}

func TestJumpOpcodeUnconditionalAndConditional(t *testing.T) {
	prefix, cond, ok := JumpOpcode("jmp")
	if !ok {
		t.Fatal("JumpOpcode(jmp) ok = false")
	}
	if prefix != jumpPrefix {
		t.Errorf("JumpOpcode(jmp) prefix = 0x%02X, want 0x%02X", prefix, jumpPrefix)
	}

	jzPrefix, jzCond, ok := JumpOpcode("jz")
	if !ok {
		t.Fatal("JumpOpcode(jz) ok = false")
	}
	if jzPrefix != prefix {
		t.Error("JumpOpcode(jz) uses a different prefix byte than JumpOpcode(jmp)")
	}
	if jzCond == cond {
		t.Error("JumpOpcode(jz) collides with JumpOpcode(jmp)'s condition byte")
	}

	// Aliased conditions must resolve to the same condition byte.
	_, jb, _ := JumpOpcode("jb")
	_, jc, _ := JumpOpcode("jc")
	if jb != jc {
		t.Errorf("JumpOpcode(jb) = 0x%02X, JumpOpcode(jc) = 0x%02X, want equal (aliases)", jb, jc)
	}
}

func TestCallOpcodeDistinctFromJump(t *testing.T) {
	jmpPrefix, _, _ := JumpOpcode("jmp")
	callPrefixGot, _, _ := CallOpcode("call")
	if jmpPrefix == callPrefixGot {
		t.Error("call and jmp families share the same prefix byte")
	}
}

func TestIsJumpMnemonicRejectsUnknown(t *testing.T) {
	if IsJumpMnemonic("jfoo") {
		t.Error("IsJumpMnemonic(jfoo) = true, want false")
	}
}

func TestALUOpcodeDistinctPerMnemonic(t *testing.T) {
	seen := map[uint8]string{}
	for _, m := range []string{"add", "sub", "cmp", "adc", "sbb", "and", "or", "xor"} {
		op, ok := ALUOpcode(m, 0)
		if !ok {
			t.Fatalf("ALUOpcode(%q, 0) ok = false", m)
		}
		if other, dup := seen[op]; dup {
			t.Errorf("ALUOpcode(%q, 0) = 0x%02X collides with %q", m, op, other)
		}
		seen[op] = m
	}
}

func TestUnaryOpcodeFamily(t *testing.T) {
	for _, m := range []string{"inc", "dec", "not", "shl", "shr"} {
		if !IsUnaryMnemonic(m) {
			t.Errorf("IsUnaryMnemonic(%q) = false", m)
		}
		if _, ok := UnaryOpcode(m, 0); !ok {
			t.Errorf("UnaryOpcode(%q, 0) ok = false", m)
		}
	}
}

func TestMSubCodeDiffersByFamily(t *testing.T) {
	if MSubCode("inc") == MSubCode("not") {
		t.Error("MSubCode should differ between inc/dec and not/shl/shr per spec.md §4.5")
	}
}

func TestZeroOperandOpcodesAreUnique(t *testing.T) {
	aliasGroups := [][]string{
		{"rc", "rb", "rnae"},
		{"rnc", "rnb", "rae"},
		{"rz", "re"},
		{"rnz", "rne"},
		{"ra", "rnbe"},
		{"rna", "rbe"},
	}
	groupOf := map[string]int{}
	for i, g := range aliasGroups {
		for _, name := range g {
			groupOf[name] = i
		}
	}

	seen := map[uint8][]string{}
	for name, op := range ZeroOperandOpcodes {
		seen[op] = append(seen[op], name)
	}
	for op, names := range seen {
		if len(names) < 2 {
			continue
		}
		g, ok := groupOf[names[0]]
		if !ok {
			t.Errorf("opcode 0x%02X shared by non-alias mnemonics %v", op, names)
			continue
		}
		for _, name := range names[1:] {
			if groupOf[name] != g {
				t.Errorf("opcode 0x%02X shared by non-alias mnemonics %v", op, names)
			}
		}
	}
}
