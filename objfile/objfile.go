// Package objfile implements the object artifact codec (C7) of spec.md
// §4.7/§6: binary encode/decode of the "MPO" artifact format produced by
// the assembler and consumed by the linker.
package objfile

import (
	"github.com/wrzlbrmft/cpu/symtab"
)

const (
	signature = "MPO"
	version   = byte(1)
	maxVersion = byte(1)

	absentLinkBase uint16 = 0xFFFF
)

// Artifact is the in-memory form of one object file: its symbol table
// (including the index-0 sentinel) and symbol store, plus the optional
// link base.
type Artifact struct {
	LinkBase *uint16
	Table    *symtab.Table
	Store    *symtab.Store
}
