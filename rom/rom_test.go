package rom

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

func TestParseAddrConfig(t *testing.T) {
	cfg, err := ParseAddrConfig("0:4,1:4")
	if err != nil {
		t.Fatalf("ParseAddrConfig returned error: %v", err)
	}
	if cfg.TotalBits() != 8 {
		t.Errorf("TotalBits() = %d, want 8", cfg.TotalBits())
	}
}

func TestParseAddrConfigRequiresBits(t *testing.T) {
	if _, err := ParseAddrConfig("0"); err == nil {
		t.Fatal("expected an error: address columns must specify bit width")
	}
}

func TestParseDataConfigPlain(t *testing.T) {
	cfg, err := ParseDataConfig("2")
	if err != nil {
		t.Fatalf("ParseDataConfig returned error: %v", err)
	}
	if cfg.Column != 2 || cfg.Bits != defaultDataBits || cfg.IsFlags {
		t.Errorf("ParseDataConfig(\"2\") = %+v", cfg)
	}
}

func TestParseDataConfigExplicitBits(t *testing.T) {
	cfg, err := ParseDataConfig("2:4")
	if err != nil {
		t.Fatalf("ParseDataConfig returned error: %v", err)
	}
	if cfg.Column != 2 || cfg.Bits != 4 {
		t.Errorf("ParseDataConfig(\"2:4\") = %+v", cfg)
	}
}

func TestParseDataConfigFlagsMode(t *testing.T) {
	cfg, err := ParseDataConfig("2:flags.txt")
	if err != nil {
		t.Fatalf("ParseDataConfig returned error: %v", err)
	}
	if !cfg.IsFlags || cfg.FlagsFile != "flags.txt" {
		t.Errorf("ParseDataConfig(\"2:flags.txt\") = %+v", cfg)
	}
}

func TestLoadFlagsFileSequentialBits(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flags.txt")
	if err := os.WriteFile(path, []byte("carry\nzero\n# comment\n\nneg;0x10\n"), 0600); err != nil {
		t.Fatal(err)
	}
	flags, err := LoadFlagsFile(path)
	if err != nil {
		t.Fatalf("LoadFlagsFile returned error: %v", err)
	}
	if flags.Values["carry"] != 1 || flags.Values["zero"] != 2 {
		t.Errorf("flags = %+v, want carry=1 zero=2", flags.Values)
	}
	if flags.Values["neg"] != 0x10 {
		t.Errorf("neg = 0x%x, want 0x10", flags.Values["neg"])
	}
}

func TestIsWildcard(t *testing.T) {
	cases := []struct {
		cell string
		want bool
	}{
		{"0b1x0", true},
		{"0b101", false},
		{"0b", false},
		{"5", false},
		{"0bxyz", false},
	}
	for _, c := range cases {
		if got := isWildcard(c.cell); got != c.want {
			t.Errorf("isWildcard(%q) = %v, want %v", c.cell, got, c.want)
		}
	}
}

func TestExpandWildcardEnumeratesAllCombinations(t *testing.T) {
	got := expandWildcard("0b1x0x")
	want := []string{"0b1000", "0b1001", "0b1100", "0b1101"}
	sort.Strings(got)
	sort.Strings(want)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expandWildcard(0b1x0x) = %v, want %v", got, want)
	}
}

func TestBuildMapWithWildcardExpansion(t *testing.T) {
	addrCfg, _ := ParseAddrConfig("0:2")
	dataCfg, _ := ParseDataConfig("1")
	rows := [][]string{{"0bxx", "7"}}

	data, err := BuildMap(rows, addrCfg, dataCfg, Flags{})
	if err != nil {
		t.Fatalf("BuildMap returned error: %v", err)
	}
	if len(data) != 4 {
		t.Fatalf("BuildMap produced %d entries, want 4 (every 2-bit address)", len(data))
	}
	for addr := uint64(0); addr < 4; addr++ {
		if data[addr] != 7 {
			t.Errorf("data[%d] = %d, want 7", addr, data[addr])
		}
	}
}

func TestBuildMapFlagsColumn(t *testing.T) {
	addrCfg, _ := ParseAddrConfig("0:4")
	dataCfg := DataConfig{Column: 1, IsFlags: true}
	flags := Flags{Values: map[string]uint64{"carry": 1, "zero": 2}, Bits: 2}
	rows := [][]string{{"3", "carry,zero"}}

	data, err := BuildMap(rows, addrCfg, dataCfg, flags)
	if err != nil {
		t.Fatalf("BuildMap returned error: %v", err)
	}
	if data[3] != 3 {
		t.Errorf("data[3] = %d, want 3 (carry|zero)", data[3])
	}
}

func TestExtractBits(t *testing.T) {
	if got := ExtractBits(0b11010110, 1, 4); got != 0b1011 {
		t.Errorf("ExtractBits(0b11010110, 1, 4) = %04b, want 1011", got)
	}
}
