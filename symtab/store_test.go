package symtab

import "testing"

func TestStoreAddIsIdempotent(t *testing.T) {
	tab := NewTable()
	store := NewStore()
	first := store.Add("foo", "", tab)
	second := store.Add("foo", "", tab)
	if first != second {
		t.Error("Add did not return the same record on a second call")
	}
}

func TestStoreAddSetsProcIndex(t *testing.T) {
	tab := NewTable()
	store := NewStore()
	sym := store.Add("foo_bar", "foo", tab)
	want := uint16(tab.Index("foo"))
	if sym.ProcIndex != want {
		t.Errorf("ProcIndex = %d, want %d", sym.ProcIndex, want)
	}
}

func TestStorePutOverwrites(t *testing.T) {
	store := NewStore()
	store.Add("foo", "", NewTable())
	base := uint16(0x10)
	store.Put("foo", &Symbol{MachineCode: []byte{1, 2, 3}, MachineCodeBase: &base})
	got := store.Get("foo")
	if len(got.MachineCode) != 3 || got.MachineCodeBase == nil || *got.MachineCodeBase != base {
		t.Errorf("Put did not overwrite the record: %+v", got)
	}
}

func TestStoreDelete(t *testing.T) {
	store := NewStore()
	store.Add("foo", "", NewTable())
	store.Delete("foo")
	if store.Has("foo") {
		t.Fatal("Delete did not remove the record")
	}
}

func TestStoreNames(t *testing.T) {
	store := NewStore()
	tab := NewTable()
	store.Add("foo", "", tab)
	store.Add("bar", "", tab)
	names := store.Names()
	if len(names) != 2 {
		t.Fatalf("Names() returned %d entries, want 2", len(names))
	}
}
