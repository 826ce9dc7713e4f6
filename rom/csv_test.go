package rom

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadCSVSemicolonSeparated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.csv")
	if err := os.WriteFile(path, []byte("0;1\n1;2\n"), 0600); err != nil {
		t.Fatal(err)
	}
	rows, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV returned error: %v", err)
	}
	want := [][]string{{"0", "1"}, {"1", "2"}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("ReadCSV = %v, want %v", rows, want)
	}
}
