package rom

import (
	"fmt"
	"strings"

	"github.com/wrzlbrmft/cpu/literal"
)

func mask(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(bits)) - 1
}

func parseCellInt(cell string) (uint64, error) {
	cell = strings.TrimSpace(cell)
	if !literal.IsValid(cell) {
		return 0, fmt.Errorf("not a valid literal: %q", cell)
	}
	v, err := literal.Eval(cell)
	if err != nil {
		return 0, err
	}
	if v.IsString {
		return 0, fmt.Errorf("string literal not valid here: %q", cell)
	}
	return v.Integer, nil
}

func buildAddress(row []string, cfg AddrConfig) (uint64, error) {
	var addr uint64
	for _, col := range cfg.Columns {
		if col.Column >= len(row) {
			return 0, fmt.Errorf("address column %d out of range", col.Column)
		}
		v, err := parseCellInt(row[col.Column])
		if err != nil {
			return 0, err
		}
		addr = (addr << uint(col.Bits)) | (v & mask(col.Bits))
	}
	return addr, nil
}

func buildData(row []string, cfg DataConfig, flags Flags) (uint64, error) {
	if cfg.Column >= len(row) {
		return 0, fmt.Errorf("data column %d out of range", cfg.Column)
	}
	cell := strings.TrimSpace(row[cfg.Column])

	if cfg.IsFlags {
		var v uint64
		if cell != "" {
			for _, name := range strings.Split(cell, ",") {
				name = strings.TrimSpace(name)
				if name == "" {
					continue
				}
				bit, ok := flags.Values[name]
				if !ok {
					return 0, fmt.Errorf("unknown flag %q", name)
				}
				v |= bit
			}
		}
		bits := cfg.Bits
		if bits == 0 {
			bits = flags.Bits
		}
		return v & mask(bits), nil
	}

	v, err := parseCellInt(cell)
	if err != nil {
		return 0, err
	}
	return v & mask(cfg.Bits), nil
}

// wildcardColumns returns the column indices that may carry a "0b…x…"
// wildcard cell: every address column plus the data column.
func wildcardColumns(addr AddrConfig, data DataConfig) []int {
	cols := make([]int, 0, len(addr.Columns)+1)
	for _, c := range addr.Columns {
		cols = append(cols, c.Column)
	}
	cols = append(cols, data.Column)
	return cols
}

// BuildMap turns CSV rows into an address→data map, expanding any
// wildcard cells (spec.md §4.9) into multiple concrete entries.
func BuildMap(rows [][]string, addr AddrConfig, data DataConfig, flags Flags) (map[uint64]uint64, error) {
	out := make(map[uint64]uint64)
	cols := wildcardColumns(addr, data)

	for _, row := range rows {
		for _, concrete := range expandRow(row, cols) {
			addrVal, err := buildAddress(concrete, addr)
			if err != nil {
				return nil, err
			}
			dataVal, err := buildData(concrete, data, flags)
			if err != nil {
				return nil, err
			}
			out[addrVal] = dataVal
		}
	}
	return out, nil
}

// ExtractBits slices the inclusive bit range [from, to] (0 = least
// significant bit) out of value, right-justifying the result.
func ExtractBits(value uint64, from, to int) uint64 {
	return (value >> uint(from)) & mask(to-from+1)
}
