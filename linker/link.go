package linker

import (
	"github.com/wrzlbrmft/cpu/objfile"
	"github.com/wrzlbrmft/cpu/symtab"
	"github.com/wrzlbrmft/cpu/toolerr"
)

// Load parses one input artifact's bytes and registers it under filename,
// in CLI input order. Duplicate filenames are rejected.
func (c *Context) Load(filename string, data []byte) {
	for _, s := range c.sources {
		if s.filename == filename {
			c.Errors.Add(toolerr.New(toolerr.Position{File: filename}, toolerr.KindDuplicateObjFile,
				"duplicate input file "+filename))
			return
		}
	}
	art, err := objfile.Decode(filename, data)
	if err != nil {
		c.Errors.Add(err)
		return
	}
	c.sources = append(c.sources, source{filename: filename, art: art})
}

// Link runs entry-point detection, computes link order, and resolves every
// symbol named by any loaded artifact's table.
func (c *Context) Link() *Result {
	if c.Errors.HasErrors() {
		return nil
	}

	var mains []int
	for i, s := range c.sources {
		if s.art.Store.Has(entrySymbol) {
			mains = append(mains, i)
		}
	}
	switch {
	case len(mains) == 0:
		c.Mode = ModeLibrary
	case len(mains) == 1:
		c.Mode = ModeImage
		c.entryIndex = mains[0]
	default:
		c.Errors.Add(toolerr.New(toolerr.Position{}, toolerr.KindDuplicateSymbol,
			"multiple artifacts define entry point \"main\""))
		return nil
	}

	order := c.linkOrder()
	for _, name := range order {
		c.linkSymbol(name)
	}

	if c.Errors.HasErrors() {
		return nil
	}

	result := &Result{
		Table:       c.globalTable,
		Store:       c.globalStore,
		LinkBase:    c.linkBase,
		LinkedOrder: c.linkedOrder,
		Mode:        c.Mode,
	}
	if c.Mode == ModeImage {
		result.EntryFile = c.sources[c.entryIndex].filename
	}
	return result
}

// linkOrder computes the sequence of symbol names to resolve, per spec.md
// §4.8 step 4.
func (c *Context) linkOrder() []string {
	var order []string
	appendTableNames := func(idx int, skip string) {
		names := c.sources[idx].art.Table.Names()
		for i := 1; i < len(names); i++ { // skip the index-0 sentinel
			if names[i] == skip {
				continue
			}
			order = append(order, names[i])
		}
	}

	if c.Mode == ModeImage {
		order = append(order, entrySymbol)
		appendTableNames(c.entryIndex, entrySymbol)
		for i := range c.sources {
			if i == c.entryIndex {
				continue
			}
			appendTableNames(i, "")
		}
		return order
	}

	for i := range c.sources {
		appendTableNames(i, "")
	}
	return order
}

// linkSymbol resolves one symbol name: locates its unique defining
// artifact, reconciles the link base, moves its record into the global
// store with re-indexed relocations, and assigns its machine_code_base.
func (c *Context) linkSymbol(name string) {
	if c.processed[name] {
		return
	}
	c.processed[name] = true

	var owner *source
	ownerCount := 0
	for i := range c.sources {
		if c.sources[i].art.Store.Has(name) {
			owner = &c.sources[i]
			ownerCount++
		}
	}
	switch ownerCount {
	case 0:
		c.Errors.Add(toolerr.New(toolerr.Position{}, toolerr.KindUnknownSymbol,
			"unknown symbol "+name))
		return
	case 1:
		// fall through
	default:
		c.Errors.Add(toolerr.New(toolerr.Position{}, toolerr.KindAmbiguousSymbol,
			"symbol "+name+" is defined in more than one artifact"))
		return
	}

	if err := c.reconcileLinkBase(owner); err != nil {
		c.Errors.Add(err)
		return
	}

	rec := owner.art.Store.Get(name)
	relocs := make([]symtab.Relocation, len(rec.RelocationTable))
	for i, r := range rec.RelocationTable {
		targetName, _ := owner.art.Table.NameOf(int(r.SymbolIndex))
		newIdx := c.globalTable.Index(targetName)
		relocs[i] = symtab.Relocation{MachineCodeOffset: r.MachineCodeOffset, SymbolIndex: uint16(newIdx)}
	}

	c.globalTable.Index(name)
	base := uint16(c.linkOffset)
	code := append([]byte(nil), rec.MachineCode...)
	c.globalStore.Put(name, &symtab.Symbol{
		MachineCode:     code,
		RelocationTable: relocs,
		MachineCodeBase: &base,
	})
	c.linkedOrder = append(c.linkedOrder, name)
	c.linkOffset += len(code)
}

func (c *Context) reconcileLinkBase(s *source) *toolerr.Error {
	if s.art.LinkBase == nil {
		return nil
	}
	if c.linkBase == nil {
		v := *s.art.LinkBase
		c.linkBase = &v
		return nil
	}
	if *c.linkBase != *s.art.LinkBase {
		return toolerr.New(toolerr.Position{File: s.filename}, toolerr.KindAmbiguousLinkBase,
			"conflicting link base in "+s.filename)
	}
	return nil
}
