package symtab

// ReindexByName remaps every ProcIndex and relocation SymbolIndex in store
// from its stale position in oldNames to that name's current position in
// table. Used by the assembler driver (§4.6) after a Table.Remove +
// re-Index moves a forward-referenced symbol to its definition point: a
// pure position-based shift (decrement everything past the removed slot)
// is not enough, since the moved symbol's own index also changes and any
// relocation that targeted it must follow it to its new position, not
// just slide down like everything else.
func ReindexByName(store *Store, table *Table, oldNames []string) {
	newIndex := func(oldIdx int) int {
		if oldIdx < 0 || oldIdx >= len(oldNames) {
			return oldIdx
		}
		return table.Index(oldNames[oldIdx])
	}
	for _, name := range store.Names() {
		sym := store.Get(name)
		sym.ProcIndex = uint16(newIndex(int(sym.ProcIndex)))
		for i := range sym.RelocationTable {
			sym.RelocationTable[i].SymbolIndex = uint16(newIndex(int(sym.RelocationTable[i].SymbolIndex)))
		}
	}
}
