package symtab

import "testing"

func TestNewTableReservesSentinel(t *testing.T) {
	tab := NewTable()
	if tab.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tab.Len())
	}
	name, ok := tab.NameOf(0)
	if !ok || name != "" {
		t.Fatalf("NameOf(0) = %q, %v, want \"\", true", name, ok)
	}
}

func TestIndexInsertsOnce(t *testing.T) {
	tab := NewTable()
	a := tab.Index("foo")
	b := tab.Index("foo")
	if a != b {
		t.Errorf("Index(\"foo\") not stable: %d != %d", a, b)
	}
	c := tab.Index("bar")
	if c == a {
		t.Errorf("distinct names collided at index %d", a)
	}
}

func TestHas(t *testing.T) {
	tab := NewTable()
	if tab.Has("foo") {
		t.Fatal("empty table reports having \"foo\"")
	}
	tab.Index("foo")
	if !tab.Has("foo") {
		t.Fatal("table does not report having \"foo\" after Index")
	}
}

func TestRemoveReflowsLaterIndices(t *testing.T) {
	tab := NewTable()
	a := tab.Index("a")
	b := tab.Index("b")
	c := tab.Index("c")
	if a != 1 || b != 2 || c != 3 {
		t.Fatalf("unexpected initial indices a=%d b=%d c=%d", a, b, c)
	}

	tab.Remove("b")
	if tab.Has("b") {
		t.Fatal("Remove did not delete \"b\"")
	}
	if got := tab.Index("c"); got != 2 {
		t.Errorf("after removing \"b\", Index(\"c\") = %d, want 2", got)
	}
	if got := tab.Index("a"); got != 1 {
		t.Errorf("Index(\"a\") moved unexpectedly: %d", got)
	}
}

func TestNameOfOutOfRange(t *testing.T) {
	tab := NewTable()
	if _, ok := tab.NameOf(5); ok {
		t.Fatal("NameOf should report false for an out-of-range index")
	}
}

func TestReindex(t *testing.T) {
	tab := NewTable()
	tab.Index("a")
	tab.Index("b")
	tab.Reindex([]string{"", "b", "a"})
	if got := tab.Index("b"); got != 1 {
		t.Errorf("after Reindex, Index(\"b\") = %d, want 1", got)
	}
	if got := tab.Index("a"); got != 2 {
		t.Errorf("after Reindex, Index(\"a\") = %d, want 2", got)
	}
}
