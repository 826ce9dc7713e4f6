package linker

import (
	"testing"

	"github.com/wrzlbrmft/cpu/assembler"
	"github.com/wrzlbrmft/cpu/objfile"
)

func mustAssemble(t *testing.T, file string, lines []string) []byte {
	t.Helper()
	art, errs := assembler.AssembleLines(file, lines)
	if errs.HasErrors() {
		t.Fatalf("assembling %s: %v", file, errs.Error())
	}
	return objfile.Encode(&objfile.Artifact{LinkBase: art.LinkBase, Table: art.Table, Store: art.Store})
}

func TestLinkImageModeResolvesCrossFileJump(t *testing.T) {
	mainObj := mustAssemble(t, "main.asm", []string{"main: jmp loop", ".end"})
	loopObj := mustAssemble(t, "loop.asm", []string{"loop: nop", ".end"})

	ctx := NewContext()
	ctx.Load("main.obj", mainObj)
	ctx.Load("loop.obj", loopObj)

	result := ctx.Link()
	if ctx.Errors.HasErrors() {
		t.Fatalf("unexpected link errors: %v", ctx.Errors.Error())
	}
	if result.Mode != ModeImage {
		t.Fatalf("Mode = %v, want ModeImage", result.Mode)
	}
	if result.EntryFile != "main.obj" {
		t.Errorf("EntryFile = %q, want main.obj", result.EntryFile)
	}

	image, err := EmitImage(result)
	if err != nil {
		t.Fatalf("EmitImage returned error: %v", err)
	}
	// main's jmp is 4 bytes: prefix + condition byte + 2-byte little-endian
	// target address (isa.JumpOpcode's prefix/condition-byte encoding).
	if len(image) != 5 {
		t.Fatalf("image = % x, want 5 bytes (4-byte jmp + 1-byte nop)", image)
	}
	loopBase := int(image[2]) | int(image[3])<<8
	if loopBase != 4 {
		t.Errorf("patched jump target = %d, want 4 (loop immediately after main's 4 bytes)", loopBase)
	}
}

func TestLinkLibraryModeWhenNoEntryPoint(t *testing.T) {
	aObj := mustAssemble(t, "a.asm", []string{"foo: nop", ".end"})
	bObj := mustAssemble(t, "b.asm", []string{"bar: nop", ".end"})

	ctx := NewContext()
	ctx.Load("a.obj", aObj)
	ctx.Load("b.obj", bObj)

	result := ctx.Link()
	if ctx.Errors.HasErrors() {
		t.Fatalf("unexpected link errors: %v", ctx.Errors.Error())
	}
	if result.Mode != ModeLibrary {
		t.Fatalf("Mode = %v, want ModeLibrary", result.Mode)
	}

	lib := EmitLibrary(result)
	art, err := objfile.Decode("output.obj", lib)
	if err != nil {
		t.Fatalf("Decode(EmitLibrary(...)) returned error: %v", err)
	}
	if !art.Table.Has("foo") || !art.Table.Has("bar") {
		t.Errorf("library table = %v, want both foo and bar", art.Table.Names())
	}
}

func TestLinkDuplicateEntryPointIsError(t *testing.T) {
	aObj := mustAssemble(t, "a.asm", []string{"main: nop", ".end"})
	bObj := mustAssemble(t, "b.asm", []string{"main: nop", ".end"})

	ctx := NewContext()
	ctx.Load("a.obj", aObj)
	ctx.Load("b.obj", bObj)
	ctx.Link()

	if !ctx.Errors.HasErrors() {
		t.Fatal("expected an error for two artifacts defining \"main\"")
	}
}

func TestLinkUnknownSymbolIsError(t *testing.T) {
	mainObj := mustAssemble(t, "main.asm", []string{"main: jmp missing", ".end"})

	ctx := NewContext()
	ctx.Load("main.obj", mainObj)
	ctx.Link()

	if !ctx.Errors.HasErrors() {
		t.Fatal("expected an unknown-symbol error")
	}
}

func TestLinkDuplicateObjFileIsError(t *testing.T) {
	obj := mustAssemble(t, "main.asm", []string{"main: nop", ".end"})

	ctx := NewContext()
	ctx.Load("main.obj", obj)
	ctx.Load("main.obj", obj)

	if !ctx.Errors.HasErrors() {
		t.Fatal("expected a duplicate-object-file error")
	}
}

func TestLinkAmbiguousLinkBaseIsError(t *testing.T) {
	aObj := mustAssemble(t, "a.asm", []string{".base 0x1000", "main: jmp loop", ".end"})
	bObj := mustAssemble(t, "b.asm", []string{".base 0x2000", "loop: nop", ".end"})

	ctx := NewContext()
	ctx.Load("a.obj", aObj)
	ctx.Load("b.obj", bObj)
	ctx.Link()

	if !ctx.Errors.HasErrors() {
		t.Fatal("expected an ambiguous-link-base error")
	}
}
