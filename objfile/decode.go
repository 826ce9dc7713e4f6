package objfile

import (
	"encoding/binary"

	"github.com/wrzlbrmft/cpu/symtab"
	"github.com/wrzlbrmft/cpu/toolerr"
)

type reader struct {
	data []byte
	pos  int
}

func (r *reader) remaining() int { return len(r.data) - r.pos }

func (r *reader) byte() (byte, bool) {
	if r.remaining() < 1 {
		return 0, false
	}
	b := r.data[r.pos]
	r.pos++
	return b, true
}

func (r *reader) u16() (uint16, bool) {
	if r.remaining() < 2 {
		return 0, false
	}
	v := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, true
}

func (r *reader) bytes(n int) ([]byte, bool) {
	if r.remaining() < n {
		return nil, false
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, true
}

// Decode parses data as an "MPO" artifact (spec.md §6). file is used only
// to tag any reported error with a position.
func Decode(file string, data []byte) (*Artifact, *toolerr.Error) {
	r := &reader{data: data}
	pos := toolerr.Position{File: file, Line: 0}

	sig, ok := r.bytes(3)
	if !ok || string(sig) != signature {
		return nil, toolerr.New(pos, toolerr.KindNotObjFile, "not an object file (bad signature)")
	}

	ver, ok := r.byte()
	if !ok {
		return nil, toolerr.New(pos, toolerr.KindUnexpectedEOF, "truncated object file header")
	}
	if ver > maxVersion {
		return nil, toolerr.New(pos, toolerr.KindIncompatibleObjFileVersion, "unsupported object file version")
	}

	lb, ok := r.u16()
	if !ok {
		return nil, toolerr.New(pos, toolerr.KindUnexpectedEOF, "truncated object file header")
	}
	var linkBase *uint16
	if lb != absentLinkBase {
		v := lb
		linkBase = &v
	}

	count, ok := r.u16()
	if !ok {
		return nil, toolerr.New(pos, toolerr.KindUnexpectedEOF, "truncated symbol table")
	}

	table := symtab.NewTable() // reserves the index-0 sentinel
	names := make([]string, 0, count)
	for i := 0; i < int(count); i++ {
		length, ok := r.byte()
		if !ok {
			return nil, toolerr.New(pos, toolerr.KindUnexpectedEOF, "truncated symbol name")
		}
		nameBytes, ok := r.bytes(int(length))
		if !ok {
			return nil, toolerr.New(pos, toolerr.KindUnexpectedEOF, "truncated symbol name")
		}
		name := string(nameBytes)
		table.Index(name)
		names = append(names, name)
	}

	store := symtab.NewStore()
	for _, name := range names {
		mcSize, ok := r.u16()
		if !ok {
			return nil, toolerr.New(pos, toolerr.KindUnexpectedEOF, "truncated symbol record")
		}
		if mcSize == 0 {
			// External reference: present in the table, absent from the store.
			continue
		}
		mc, ok := r.bytes(int(mcSize))
		if !ok {
			return nil, toolerr.New(pos, toolerr.KindUnexpectedEOF, "truncated machine code")
		}
		relocCount, ok := r.u16()
		if !ok {
			return nil, toolerr.New(pos, toolerr.KindUnexpectedEOF, "truncated relocation count")
		}
		relocs := make([]symtab.Relocation, 0, relocCount)
		for j := 0; j < int(relocCount); j++ {
			offset, ok := r.u16()
			if !ok {
				return nil, toolerr.New(pos, toolerr.KindUnexpectedEOF, "truncated relocation")
			}
			symIndex, ok := r.u16()
			if !ok {
				return nil, toolerr.New(pos, toolerr.KindUnexpectedEOF, "truncated relocation")
			}
			relocs = append(relocs, symtab.Relocation{MachineCodeOffset: offset, SymbolIndex: symIndex})
		}

		sym := store.Add(name, "", table)
		sym.MachineCode = append([]byte(nil), mc...)
		sym.RelocationTable = relocs
		// proc_index is assembler-internal bookkeeping, not part of the
		// on-disk format (§6); it is meaningless once an artifact reaches
		// the linker, so it is left at its zero value on decode.
	}

	return &Artifact{LinkBase: linkBase, Table: table, Store: store}, nil
}
