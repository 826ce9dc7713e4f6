package rom

import "strings"

// isWildcard reports whether cell is a "0b…" literal containing at least
// one 'x' wildcard bit.
func isWildcard(cell string) bool {
	if !strings.HasPrefix(cell, "0b") && !strings.HasPrefix(cell, "0B") {
		return false
	}
	body := cell[2:]
	if body == "" {
		return false
	}
	hasX := false
	for _, r := range body {
		switch r {
		case '0', '1':
		case 'x', 'X':
			hasX = true
		default:
			return false
		}
	}
	return hasX
}

// expandWildcard enumerates every concrete "0b…" substitution of cell's 'x'
// bits, one for each combination. The leftmost 'x' varies fastest, so the
// results are not in ascending numeric order ("0b1x0x" gives 0b1000,
// 0b1100, 0b1001, 0b1101).
func expandWildcard(cell string) []string {
	body := []rune(cell[2:])
	var positions []int
	for i, r := range body {
		if r == 'x' || r == 'X' {
			positions = append(positions, i)
		}
	}
	n := len(positions)
	out := make([]string, 0, 1<<uint(n))
	for combo := 0; combo < (1 << uint(n)); combo++ {
		concrete := append([]rune(nil), body...)
		for bit, pos := range positions {
			if combo&(1<<uint(bit)) != 0 {
				concrete[pos] = '1'
			} else {
				concrete[pos] = '0'
			}
		}
		out = append(out, "0b"+string(concrete))
	}
	return out
}

// expandRow returns every concrete row produced by resolving the wildcard
// cells at the given column indices, as the cartesian product of their
// expansions. Rows with no wildcard columns return a single-element slice
// containing a copy of row.
func expandRow(row []string, cols []int) [][]string {
	results := [][]string{append([]string(nil), row...)}
	for _, col := range cols {
		if col < 0 || col >= len(row) || !isWildcard(row[col]) {
			continue
		}
		choices := expandWildcard(row[col])
		var next [][]string
		for _, r := range results {
			for _, choice := range choices {
				rCopy := append([]string(nil), r...)
				rCopy[col] = choice
				next = append(next, rCopy)
			}
		}
		results = next
	}
	return results
}
