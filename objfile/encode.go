package objfile

import (
	"bytes"
	"encoding/binary"
)

// Encode serializes art into the "MPO" on-disk format of spec.md §6.
// art.Table must have the index-0 sentinel already present; it is omitted
// from the emitted symbol count, per §4.7.
func Encode(art *Artifact) []byte {
	var buf bytes.Buffer

	buf.WriteString(signature)
	buf.WriteByte(version)

	lb := absentLinkBase
	if art.LinkBase != nil {
		lb = *art.LinkBase
	}
	writeU16(&buf, lb)

	names := art.Table.Names()
	count := len(names) - 1 // exclude index-0 sentinel
	writeU16(&buf, uint16(count))

	for i := 1; i < len(names); i++ {
		name := names[i]
		buf.WriteByte(byte(len(name)))
		buf.WriteString(name)
	}

	for i := 1; i < len(names); i++ {
		sym := art.Store.Get(names[i])
		if sym == nil {
			// External reference: no record in this artifact.
			writeU16(&buf, 0)
			continue
		}
		writeU16(&buf, uint16(len(sym.MachineCode)))
		buf.Write(sym.MachineCode)
		writeU16(&buf, uint16(len(sym.RelocationTable)))
		for _, r := range sym.RelocationTable {
			writeU16(&buf, r.MachineCodeOffset)
			writeU16(&buf, r.SymbolIndex)
		}
	}

	return buf.Bytes()
}

func writeU16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}
