package rom

import (
	"bufio"
	"fmt"
	"os"
	"sort"
)

// WriteRaw emits data as a Logisim-style "v2.0 raw" text file, one hex
// value per address per line, gaps filled with zero lines. zeroFill
// prepends that many extra "0" lines before the first address, matching
// the original tool's raw_file writer. A zero-valued entry contributes
// nothing of its own — like the original, it is only ever covered by a
// later non-zero entry's gap-fill, so trailing zero entries with nothing
// non-zero after them are not written at all.
func WriteRaw(path string, data map[uint64]uint64, zeroFill int) error {
	f, err := os.Create(path) // #nosec G304 -- CLI-supplied output path
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString("v2.0 raw\n"); err != nil {
		return err
	}
	for i := 0; i < zeroFill; i++ {
		if _, err := w.WriteString("0\n"); err != nil {
			return err
		}
	}

	addrs := make([]uint64, 0, len(data))
	for a := range data {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })

	prev := int64(-1)
	for _, addr := range addrs {
		value := data[addr]
		if value == 0 {
			continue
		}
		for gap := prev; gap < int64(addr)-1; gap++ {
			if _, err := w.WriteString("0\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%x\n", value); err != nil {
			return err
		}
		prev = int64(addr)
	}

	return w.Flush()
}

// WriteBin emits data as a raw byte stream: one byte per address from 0 to
// the highest populated address, little gaps zero-filled, each value
// truncated to its low 8 bits.
func WriteBin(path string, data map[uint64]uint64) error {
	f, err := os.Create(path) // #nosec G304 -- CLI-supplied output path
	if err != nil {
		return err
	}
	defer f.Close()

	var maxAddr uint64
	for a := range data {
		if a > maxAddr {
			maxAddr = a
		}
	}

	buf := make([]byte, maxAddr+1)
	for a, v := range data {
		buf[a] = byte(v)
	}

	_, err = f.Write(buf)
	return err
}
