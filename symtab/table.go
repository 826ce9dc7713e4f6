// Package symtab implements the ordered symbol table (C3) and the symbol
// store (C4) of spec.md §3–§4.4.
package symtab

// Table is the ordered, index<->name symbol table of spec.md §3/§4.3.
// Index 0 always holds the empty-string "global-procedure sentinel";
// NewTable reserves it. This keeps the invariant uniform across the
// assembler's per-artifact table, the object codec's in-memory form, and
// the linker's fresh global table, rather than letting it vary by
// context — see DESIGN.md for why this reading of spec.md §4.3 was
// chosen over the alternative (only the on-disk/per-artifact form
// reserves it).
type Table struct {
	names []string
	index map[string]int
}

// NewTable creates a table with the null sentinel already at index 0.
func NewTable() *Table {
	t := &Table{
		names: make([]string, 0, 8),
		index: make(map[string]int, 8),
	}
	t.names = append(t.names, "")
	t.index[""] = 0
	return t
}

// Has reports whether name already has an entry.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Index returns name's zero-based position, inserting it at the end if it
// is not already present.
func (t *Table) Index(name string) int {
	if i, ok := t.index[name]; ok {
		return i
	}
	i := len(t.names)
	t.names = append(t.names, name)
	t.index[name] = i
	return i
}

// NameOf returns the name at position i, or "" and false if out of range.
func (t *Table) NameOf(i int) (string, bool) {
	if i < 0 || i >= len(t.names) {
		return "", false
	}
	return t.names[i], true
}

// Remove deletes name's entry and reflows every later entry down by one
// position. Used by the assembler driver (§4.6) to move a
// forward-referenced symbol to its definition point in table order; the
// caller is responsible for re-indexing any relocation or proc_index
// field that referred to a position at or after the removed one.
func (t *Table) Remove(name string) {
	i, ok := t.index[name]
	if !ok {
		return
	}
	t.names = append(t.names[:i], t.names[i+1:]...)
	delete(t.index, name)
	for n, idx := range t.index {
		if idx > i {
			t.index[n] = idx - 1
		}
	}
}

// Len returns the number of entries, including the sentinel at index 0.
func (t *Table) Len() int {
	return len(t.names)
}

// Names returns the table's entries in index order (including the
// sentinel at index 0).
func (t *Table) Names() []string {
	return t.names
}

// Reindex rebuilds the table from a fresh slice, e.g. after re-ordering a
// forward reference. Index 0 must still be "".
func (t *Table) Reindex(names []string) {
	t.names = append([]string(nil), names...)
	t.index = make(map[string]int, len(names))
	for i, n := range t.names {
		t.index[n] = i
	}
}
