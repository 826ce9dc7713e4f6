package linker

import (
	"github.com/wrzlbrmft/cpu/objfile"
	"github.com/wrzlbrmft/cpu/toolerr"
)

// EmitImage concatenates every linked symbol's machine code in link order
// and patches each relocation with link_base + target.machine_code_base
// (spec.md §4.8 step 6, image mode; P5).
func EmitImage(result *Result) ([]byte, *toolerr.Error) {
	var image []byte
	offsets := make(map[string]int, len(result.LinkedOrder))

	for _, name := range result.LinkedOrder {
		sym := result.Store.Get(name)
		offsets[name] = len(image)
		image = append(image, sym.MachineCode...)
	}

	var base uint16
	if result.LinkBase != nil {
		base = *result.LinkBase
	}

	for _, name := range result.LinkedOrder {
		sym := result.Store.Get(name)
		symOffset := offsets[name]
		for _, r := range sym.RelocationTable {
			targetName, ok := result.Table.NameOf(int(r.SymbolIndex))
			if !ok {
				return nil, toolerr.New(toolerr.Position{}, toolerr.KindUnknownSymbol, "relocation targets an unknown symbol index")
			}
			target := result.Store.Get(targetName)
			if target == nil || target.MachineCodeBase == nil {
				return nil, toolerr.New(toolerr.Position{}, toolerr.KindUnknownSymbol, "unresolved symbol "+targetName)
			}
			addr := base + *target.MachineCodeBase
			pos := symOffset + int(r.MachineCodeOffset)
			if pos+2 > len(image) {
				return nil, toolerr.New(toolerr.Position{}, toolerr.KindCorruptObjFile, "relocation offset out of range in "+name)
			}
			image[pos] = byte(addr)
			image[pos+1] = byte(addr >> 8)
		}
	}

	return image, nil
}

// EmitLibrary re-serializes the global table/store as a new combined
// artifact, preserving the current link base (spec.md §4.8 step 6, library
// mode).
func EmitLibrary(result *Result) []byte {
	art := &objfile.Artifact{LinkBase: result.LinkBase, Table: result.Table, Store: result.Store}
	return objfile.Encode(art)
}
