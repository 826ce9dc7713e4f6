package rom

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteRawBasic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.raw")
	data := map[uint64]uint64{0: 1, 2: 2}

	if err := WriteRaw(path, data, 0); err != nil {
		t.Fatalf("WriteRaw returned error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "v2.0 raw\n1\n0\n2\n"
	if string(got) != want {
		t.Errorf("WriteRaw output = %q, want %q", string(got), want)
	}
}

func TestWriteRawSkipsTrailingZeros(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.raw")
	// address 3 is zero-valued and nothing non-zero follows it, so the
	// original tool's algorithm never writes it.
	data := map[uint64]uint64{0: 1, 3: 0}

	if err := WriteRaw(path, data, 0); err != nil {
		t.Fatalf("WriteRaw returned error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "v2.0 raw\n1\n"
	if string(got) != want {
		t.Errorf("WriteRaw output = %q, want %q", string(got), want)
	}
}

func TestWriteBinIndexesByAddress(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")
	data := map[uint64]uint64{0: 0xAB, 2: 0xCD}

	if err := WriteBin(path, data); err != nil {
		t.Fatalf("WriteBin returned error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xAB, 0x00, 0xCD}
	if string(got) != string(want) {
		t.Errorf("WriteBin output = % x, want % x", got, want)
	}
}
