package dumpview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wrzlbrmft/cpu/symtab"
)

func TestCodeLinesWrapsAtBytesPerLine(t *testing.T) {
	code := []byte{1, 2, 3, 4, 5}
	lines := codeLines(code, Options{BytesPerLine: 2})
	if len(lines) != 3 {
		t.Fatalf("codeLines = %v, want 3 lines", lines)
	}
	if lines[2] != "05" {
		t.Errorf("last line = %q, want %q", lines[2], "05")
	}
}

func TestCodeLinesDefaultsWhenUnset(t *testing.T) {
	code := make([]byte, 20)
	lines := codeLines(code, Options{})
	if len(lines) != 2 {
		t.Fatalf("codeLines with zero-value Options = %d lines, want 2 (default %d bytes/line)", len(lines), defaultBytesPerLine)
	}
}

func TestWritePlainListsSymbolsAndRelocations(t *testing.T) {
	table := symtab.NewTable()
	store := symtab.NewStore()
	table.Index("main")
	table.Index("loop")
	sym := store.Add("main", "", table)
	sym.MachineCode = []byte{0x06, 0x02, 0x00, 0x00}
	sym.RelocationTable = []symtab.Relocation{
		{MachineCodeOffset: 2, SymbolIndex: uint16(table.Index("loop"))},
	}

	var buf bytes.Buffer
	writePlain(&buf, "t.asm", table, store, nil, Options{BytesPerLine: 2})
	out := buf.String()

	if !strings.Contains(out, "main") || !strings.Contains(out, "loop") {
		t.Errorf("output missing symbol names: %s", out)
	}
	if !strings.Contains(out, "reloc @2 -> loop") {
		t.Errorf("output missing relocation line: %s", out)
	}
	if strings.Count(out, "code:") != 2 {
		t.Errorf("expected machine code wrapped across 2 lines at BytesPerLine=2, got: %s", out)
	}
}
