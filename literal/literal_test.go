package literal

import "testing"

func TestClassifyKind(t *testing.T) {
	cases := []struct {
		tok  string
		want Kind
	}{
		{"0", KindDecimal},
		{"42", KindDecimal},
		{"0x2A", KindHex},
		{"0b101010", KindBinary},
		{"0o52", KindOctal},
		{"'a'", KindChar},
		{`"hi"`, KindString},
		{"", KindInvalid},
		{"0x", KindInvalid},
		{"042", KindInvalid}, // leading zero not a valid decimal
	}
	for _, c := range cases {
		if got := ClassifyKind(c.tok); got != c.want {
			t.Errorf("ClassifyKind(%q) = %v, want %v", c.tok, got, c.want)
		}
	}
}

func TestEvalIntegers(t *testing.T) {
	cases := []struct {
		tok  string
		want uint64
	}{
		{"0", 0},
		{"42", 42},
		{"0x2A", 42},
		{"0b101010", 42},
		{"0o52", 42},
		{"'a'", 97},
	}
	for _, c := range cases {
		v, err := Eval(c.tok)
		if err != nil {
			t.Fatalf("Eval(%q) returned error: %v", c.tok, err)
		}
		if v.Integer != c.want || v.IsString {
			t.Errorf("Eval(%q) = %+v, want Integer=%d", c.tok, v, c.want)
		}
	}
}

func TestEvalString(t *testing.T) {
	v, err := Eval(`"hi"`)
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if !v.IsString || string(v.CodePoints) != "hi" {
		t.Errorf("Eval(\"hi\") = %+v", v)
	}
}

func TestEvalInvalid(t *testing.T) {
	if _, err := Eval("not a literal"); err == nil {
		t.Fatal("expected an error for an unrecognized token")
	}
}

func TestBitSizeZeroIsEight(t *testing.T) {
	bits, err := BitSize("0")
	if err != nil {
		t.Fatalf("BitSize(\"0\") returned error: %v", err)
	}
	if bits != 8 {
		t.Errorf("BitSize(\"0\") = %d, want 8", bits)
	}
}

func TestBitSizeRoundsUpToByte(t *testing.T) {
	cases := []struct {
		tok  string
		bits int
	}{
		{"1", 8},
		{"255", 8},
		{"256", 16},
		{"0xFFFF", 16},
	}
	for _, c := range cases {
		bits, err := BitSize(c.tok)
		if err != nil {
			t.Fatalf("BitSize(%q) returned error: %v", c.tok, err)
		}
		if bits != c.bits {
			t.Errorf("BitSize(%q) = %d, want %d", c.tok, bits, c.bits)
		}
	}
}

func TestBitSizeOfStringTakesMax(t *testing.T) {
	v, err := Eval(`"ab"`)
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if got := BitSizeOf(v); got != 8 {
		t.Errorf("BitSizeOf(\"ab\") = %d, want 8", got)
	}
}
