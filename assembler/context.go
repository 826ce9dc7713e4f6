// Package assembler implements the assembler driver (C6) of spec.md §4.6:
// it drives the line lexer and instruction encoder across a source file,
// enforcing label/procedure discipline and building one artifact's symbol
// table and symbol store.
package assembler

import (
	"github.com/wrzlbrmft/cpu/symtab"
	"github.com/wrzlbrmft/cpu/toolerr"
)

// Artifact is one assembled file's in-memory object: the symbol table and
// store plus the optional link base set by a ".base" directive.
type Artifact struct {
	LinkBase *uint16
	Table    *symtab.Table
	Store    *symtab.Store
}

// Context is the single threaded state of one assembler run (spec.md §9:
// no global mutable state, no implicit defaults — every operation takes an
// explicit context).
type Context struct {
	File string

	table *symtab.Table
	store *symtab.Store

	linkBase   *uint16
	baseIsSet  bool
	hasProc    bool
	procName   string
	curSymbol  string

	Errors *toolerr.List
}

// NewContext starts a fresh assembler context for one source file.
func NewContext(file string) *Context {
	return &Context{
		File:   file,
		table:  symtab.NewTable(),
		store:  symtab.NewStore(),
		Errors: &toolerr.List{},
	}
}

// Artifact snapshots the context's table, store and link base.
func (c *Context) Artifact() *Artifact {
	return &Artifact{LinkBase: c.linkBase, Table: c.table, Store: c.store}
}

func (c *Context) pos(line int) toolerr.Position {
	return toolerr.Position{File: c.File, Line: line}
}

func (c *Context) report(line int, text string, kind toolerr.Kind, message string) {
	c.Errors.Add(toolerr.NewWithContext(c.pos(line), kind, message, text))
}

// activeProc returns the procedure name used for "@" expansion: the
// current procedure, or "" at top level.
func (c *Context) activeProc() string {
	if c.hasProc {
		return c.procName
	}
	return ""
}
