package assembler

import (
	"strings"

	"github.com/wrzlbrmft/cpu/encoder"
	"github.com/wrzlbrmft/cpu/lexer"
	"github.com/wrzlbrmft/cpu/literal"
	"github.com/wrzlbrmft/cpu/symtab"
	"github.com/wrzlbrmft/cpu/toolerr"
)

// AssembleLines drives C2–C5 over src (one source line per slice element,
// 1-indexed for reporting) and returns the resulting artifact. Processing
// of the file stops early at ".end" or at end of input; a per-line error
// does not abort the file — the driver moves on to the next line.
func AssembleLines(file string, src []string) (*Artifact, *toolerr.List) {
	ctx := NewContext(file)

	for i, text := range src {
		lineNo := i + 1
		stop := ctx.processLine(lineNo, text)
		if stop {
			break
		}
	}

	return ctx.Artifact(), ctx.Errors
}

// processLine handles one source line; it returns true if the file should
// stop processing further lines (".end" reached).
func (c *Context) processLine(lineNo int, text string) bool {
	line, err := lexer.Lex(c.pos(lineNo), text)
	if err != nil {
		c.reportErr(lineNo, text, err)
		return false
	}
	if line.Blank() {
		return false
	}

	if line.HasDirective {
		return c.processDirective(lineNo, text, line)
	}

	if line.HasLabel {
		if err := c.defineLabel(lineNo, text, line.Label); err != nil {
			return false
		}
	}

	if line.HasMnemonic {
		c.processInstruction(lineNo, text, line)
	}

	return false
}

// directiveArgs reconstructs a directive's raw argument tokens: the line
// lexer has no concept of directive arity, so whatever it classified as
// "mnemonic"/"operands" on a directive line are really the directive's
// positional arguments.
func directiveArgs(line lexer.Line) []string {
	var args []string
	if line.HasMnemonic {
		args = append(args, line.Mnemonic)
	}
	args = append(args, line.Operands...)
	return args
}

func (c *Context) processDirective(lineNo int, text string, line lexer.Line) bool {
	args := directiveArgs(line)

	switch line.Directive {
	case "proc":
		if c.hasProc {
			c.report(lineNo, text, toolerr.KindUnexpectedProc, "nested .proc")
			return false
		}
		if len(args) < 1 {
			c.report(lineNo, text, toolerr.KindInvalidProcName, ".proc needs a name")
			return false
		}
		name := args[0]
		if len(name) > 0 && name[0] == '@' {
			c.report(lineNo, text, toolerr.KindInvalidProcName, "procedure name may not begin with '@'")
			return false
		}
		if !symtab.IsValidName(name) {
			c.report(lineNo, text, toolerr.KindInvalidProcName, "invalid procedure name "+name)
			return false
		}
		c.hasProc = true
		c.procName = name
		if err := c.defineLabel(lineNo, text, name); err != nil {
			return false
		}
		return false

	case "endproc":
		if !c.hasProc {
			c.report(lineNo, text, toolerr.KindUnexpectedEndproc, "unexpected .endproc")
			return false
		}
		c.hasProc = false
		c.procName = ""
		c.curSymbol = ""
		return false

	case "base":
		if c.baseIsSet {
			c.report(lineNo, text, toolerr.KindDuplicateDirective, "duplicate .base")
			return false
		}
		if len(args) < 1 {
			c.report(lineNo, text, toolerr.KindInvalidDirective, ".base needs an address")
			return false
		}
		if !literal.IsValid(args[0]) {
			c.report(lineNo, text, toolerr.KindInvalidDirective, "invalid .base address "+args[0])
			return false
		}
		v, _ := literal.Eval(args[0])
		if v.IsString || literal.BitSizeOf(v) > 16 {
			c.report(lineNo, text, toolerr.KindInvalidDirective, ".base address must be a 16-bit value")
			return false
		}
		base := uint16(v.Integer)
		c.linkBase = &base
		c.baseIsSet = true
		return false

	case "end":
		return true

	default:
		c.report(lineNo, text, toolerr.KindInvalidDirective, "unknown directive ."+line.Directive)
		return false
	}
}

// defineLabel handles both a bare label line and ".proc NAME"'s implicit
// label promotion: it expands the "@"-local name, validates it, performs
// the forward-reference reorder if needed (§4.6), creates the symbol
// record, and sets it as the current symbol.
func (c *Context) defineLabel(lineNo int, text, rawName string) error {
	name := symtab.ExpandLocal(rawName, c.activeProc())
	if !symtab.IsValidName(name) {
		c.report(lineNo, text, toolerr.KindInvalidSymbolName, "invalid symbol name "+name)
		return errReported
	}
	if c.table.Has(name) && c.store.Has(name) {
		c.report(lineNo, text, toolerr.KindDuplicateSymbol, "duplicate symbol "+name)
		return errReported
	}
	if c.table.Has(name) {
		// Forward-referenced: move it to its definition point (§4.6).
		// Reindex by name, not position: the moved symbol's own index
		// changes too, and any relocation that targeted it must follow it
		// to its new slot rather than just sliding down like every other
		// entry past the removed one.
		oldNames := append([]string(nil), c.table.Names()...)
		c.table.Remove(name)
		c.table.Index(name)
		symtab.ReindexByName(c.store, c.table, oldNames)
	} else {
		c.table.Index(name)
	}
	c.store.Add(name, c.activeProc(), c.table)
	c.curSymbol = name
	return nil
}

var errReported = reportedError{}

type reportedError struct{}

func (reportedError) Error() string { return "reported" }

func (c *Context) processInstruction(lineNo int, text string, line lexer.Line) {
	if c.curSymbol == "" {
		c.report(lineNo, text, toolerr.KindInstructionWithoutSymbol, "instruction without an active symbol")
		return
	}

	mnemonic := strings.ToLower(line.Mnemonic)
	operands := make([]string, len(line.Operands))
	for i, op := range line.Operands {
		operands[i] = symtab.ExpandLocal(op, c.activeProc())
	}

	result, encErr := encoder.Encode(mnemonic, operands)
	if encErr != nil {
		c.report(lineNo, text, encErr.Kind, encErr.Message)
		return
	}

	sym := c.store.Get(c.curSymbol)
	base := len(sym.MachineCode)
	sym.MachineCode = append(sym.MachineCode, result.Bytes...)
	for _, ref := range result.Refs {
		idx := c.table.Index(ref.Name)
		sym.RelocationTable = append(sym.RelocationTable, symtab.Relocation{
			MachineCodeOffset: uint16(base + ref.Offset),
			SymbolIndex:       uint16(idx),
		})
	}
}

func (c *Context) reportErr(lineNo int, text string, err error) {
	if te, ok := err.(*toolerr.Error); ok {
		c.Errors.Add(te)
		return
	}
	c.report(lineNo, text, toolerr.KindUnexpected, err.Error())
}
