// Package dumpview is the ambient interactive dump viewer shared by
// asm -d/--dump and link --dump, grounded in the teacher's
// debugger/tui.go screen/App bootstrap. It presents a symbol table in
// one scrollable panel and the selected symbol's machine code and
// relocations in another; when stdout is not a terminal it falls back
// to a plain-text rendering instead of opening a screen.
package dumpview

import (
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"golang.org/x/term"

	"github.com/wrzlbrmft/cpu/symtab"
)

// Options controls rendering details that the caller's config.Display
// section governs: whether the TUI uses color, and how many machine-code
// bytes are shown per line in both the TUI detail pane and the plain-text
// fallback.
type Options struct {
	ColorOutput  bool
	BytesPerLine int
}

const defaultBytesPerLine = 16

func (o Options) bytesPerLine() int {
	if o.BytesPerLine > 0 {
		return o.BytesPerLine
	}
	return defaultBytesPerLine
}

// ShowArtifact renders table/store (and, if known, linkBase) under the
// given label. label is typically the source or input filename and is
// shown in the window title / plain-text header.
func ShowArtifact(label string, table *symtab.Table, store *symtab.Store, linkBase *uint16, opts Options) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		writePlain(os.Stdout, label, table, store, linkBase, opts)
		return
	}
	runTUI(label, table, store, linkBase, opts)
}

// codeLines splits code into opts.bytesPerLine()-wide chunks formatted as
// "% x" hex, one per output line.
func codeLines(code []byte, opts Options) []string {
	n := opts.bytesPerLine()
	if len(code) == 0 {
		return []string{""}
	}
	var lines []string
	for i := 0; i < len(code); i += n {
		end := i + n
		if end > len(code) {
			end = len(code)
		}
		lines = append(lines, fmt.Sprintf("% x", code[i:end]))
	}
	return lines
}

// writePlain renders the same information as the TUI as plain text, for
// non-terminal stdout (pipes, redirected output, CI logs).
func writePlain(w io.Writer, label string, table *symtab.Table, store *symtab.Store, linkBase *uint16, opts Options) {
	fmt.Fprintf(w, "=== %s ===\n", label)
	if linkBase != nil {
		fmt.Fprintf(w, "link_base: 0x%04X\n", *linkBase)
	} else {
		fmt.Fprintln(w, "link_base: (absent)")
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-6s %-24s %-10s %s\n", "INDEX", "NAME", "BASE", "SIZE")
	for i, name := range table.Names() {
		if i == 0 {
			continue
		}
		sym := store.Get(name)
		base, size := "-", "-"
		if sym != nil {
			if sym.MachineCodeBase != nil {
				base = fmt.Sprintf("0x%04X", *sym.MachineCodeBase)
			}
			size = fmt.Sprintf("%d", len(sym.MachineCode))
		}
		fmt.Fprintf(w, "%-6d %-24s %-10s %s\n", i, name, base, size)
	}
	fmt.Fprintln(w)
	for i, name := range table.Names() {
		if i == 0 {
			continue
		}
		sym := store.Get(name)
		if sym == nil {
			continue
		}
		fmt.Fprintf(w, "%s:\n", name)
		for _, line := range codeLines(sym.MachineCode, opts) {
			fmt.Fprintf(w, "  code: %s\n", line)
		}
		for _, r := range sym.RelocationTable {
			target, _ := table.NameOf(int(r.SymbolIndex))
			fmt.Fprintf(w, "  reloc @%d -> %s (index %d)\n", r.MachineCodeOffset, target, r.SymbolIndex)
		}
	}
}

// runTUI opens an interactive tview.Application: a Table listing every
// symbol-table entry (defined or use-only), and a TextView showing the selected symbol's machine
// code and relocation table. Press q or Esc to quit.
func runTUI(label string, table *symtab.Table, store *symtab.Store, linkBase *uint16, opts Options) {
	app := tview.NewApplication()

	headerColor := tcell.ColorYellow
	if !opts.ColorOutput {
		headerColor = tcell.ColorWhite
	}

	symTable := tview.NewTable().SetFixed(1, 0).SetSelectable(true, false)
	symTable.SetBorder(true).SetTitle(fmt.Sprintf(" %s: symbols ", label))

	detail := tview.NewTextView().SetDynamicColors(opts.ColorOutput).SetScrollable(true).SetWrap(false)
	detail.SetBorder(true).SetTitle(" machine code / relocations ")

	headers := []string{"index", "name", "base", "size"}
	for col, h := range headers {
		symTable.SetCell(0, col, tview.NewTableCell(h).
			SetTextColor(headerColor).
			SetSelectable(false))
	}

	names := table.Names()
	row := 1
	rowNames := make([]string, 0, len(names))
	for i, name := range names {
		if i == 0 {
			continue
		}
		sym := store.Get(name)
		base, size := "-", "-"
		if sym != nil {
			if sym.MachineCodeBase != nil {
				base = fmt.Sprintf("0x%04X", *sym.MachineCodeBase)
			}
			size = fmt.Sprintf("%d", len(sym.MachineCode))
		}
		symTable.SetCell(row, 0, tview.NewTableCell(fmt.Sprintf("%d", i)))
		symTable.SetCell(row, 1, tview.NewTableCell(name))
		symTable.SetCell(row, 2, tview.NewTableCell(base))
		symTable.SetCell(row, 3, tview.NewTableCell(size))
		rowNames = append(rowNames, name)
		row++
	}

	nameHeading := "%s\n"
	if opts.ColorOutput {
		nameHeading = "[yellow]%s[-]\n"
	}
	showDetail := func(name string) {
		detail.Clear()
		sym := store.Get(name)
		if sym == nil {
			fmt.Fprintf(detail, "%s: (use only, no definition in this artifact)\n", name)
			return
		}
		fmt.Fprintf(detail, nameHeading, name)
		for _, line := range codeLines(sym.MachineCode, opts) {
			fmt.Fprintf(detail, "code: %s\n", line)
		}
		fmt.Fprintln(detail)
		if len(sym.RelocationTable) == 0 {
			fmt.Fprintln(detail, "no relocations")
			return
		}
		fmt.Fprintln(detail, "relocations:")
		for _, r := range sym.RelocationTable {
			target, _ := table.NameOf(int(r.SymbolIndex))
			fmt.Fprintf(detail, "  @%d -> %s (index %d)\n", r.MachineCodeOffset, target, r.SymbolIndex)
		}
	}
	if len(rowNames) > 0 {
		showDetail(rowNames[0])
		symTable.Select(1, 0)
	}
	symTable.SetSelectionChangedFunc(func(r, _ int) {
		if r >= 1 && r-1 < len(rowNames) {
			showDetail(rowNames[r-1])
		}
	})

	header := tview.NewTextView().SetDynamicColors(opts.ColorOutput)
	bold := func(s string) string { return s }
	if opts.ColorOutput {
		bold = func(s string) string { return "[::b]" + s + "[::-]" }
	}
	if linkBase != nil {
		fmt.Fprintf(header, "%s  link_base=0x%04X  (q/Esc to quit)", bold(label), *linkBase)
	} else {
		fmt.Fprintf(header, "%s  link_base=(absent)  (q/Esc to quit)", bold(label))
	}

	body := tview.NewFlex().
		AddItem(symTable, 0, 1, true).
		AddItem(detail, 0, 2, false)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(body, 0, 1, true)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape:
			app.Stop()
			return nil
		case event.Key() == tcell.KeyRune && (event.Rune() == 'q' || event.Rune() == 'Q'):
			app.Stop()
			return nil
		}
		return event
	})

	if err := app.SetRoot(layout, true).SetFocus(symTable).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "dumpview:", err)
	}
}
