// Package linker implements the linker (C8) of spec.md §4.8: it loads one
// or more object artifacts, resolves cross-artifact symbol references,
// assigns a flat layout, patches relocations, and emits either a loadable
// image or a new combined library artifact.
package linker

import (
	"github.com/wrzlbrmft/cpu/objfile"
	"github.com/wrzlbrmft/cpu/symtab"
	"github.com/wrzlbrmft/cpu/toolerr"
)

// Mode is the linker's operating mode, determined by how many input
// artifacts define the reserved entry-point symbol "main".
type Mode int

const (
	ModeLibrary Mode = iota
	ModeImage
)

const entrySymbol = "main"

// source is one loaded input artifact together with the filename it came
// from, used for DUPLICATE_OBJ_FILE detection and CLI-order link order.
type source struct {
	filename string
	art      *objfile.Artifact
}

// Context is the single threaded state of one linker run (spec.md §9).
type Context struct {
	sources []source

	Mode        Mode
	entryIndex  int // index into sources, valid only when Mode == ModeImage

	globalTable *symtab.Table
	globalStore *symtab.Store
	linkBase    *uint16
	linkOffset  int
	linkedOrder []string // names in the order they were assigned a base

	processed map[string]bool

	Errors *toolerr.List
}

// NewContext creates an empty linker context.
func NewContext() *Context {
	return &Context{
		globalTable: symtab.NewTable(),
		globalStore: symtab.NewStore(),
		processed:   make(map[string]bool),
		Errors:      &toolerr.List{},
	}
}

// Result is the global table/store/link-base built by Link, plus the order
// in which symbols were assigned a base (emission order for image mode).
type Result struct {
	Table       *symtab.Table
	Store       *symtab.Store
	LinkBase    *uint16
	LinkedOrder []string
	Mode        Mode
	EntryFile   string // the artifact defining "main"; set only in ModeImage
}
