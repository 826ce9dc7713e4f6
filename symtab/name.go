package symtab

import (
	"regexp"

	"github.com/wrzlbrmft/cpu/isa"
)

var nameRegex = regexp.MustCompile(`^[@_A-Za-z][_A-Za-z0-9]{0,254}$`)

// IsValidName reports whether name matches the symbol-name grammar of
// spec.md §3 and is not a reserved operand word.
func IsValidName(name string) bool {
	if isa.IsReserved(name) {
		return false
	}
	return nameRegex.MatchString(name)
}

// ExpandLocal expands an "@"-prefixed local-to-procedure name, per
// spec.md §3: inside an active procedure it becomes "<proc>_<rest>";
// outside one it becomes "_<rest>". Names without a leading "@" pass
// through unchanged. proc is the empty string when there is no active
// procedure.
func ExpandLocal(name, proc string) string {
	if len(name) == 0 || name[0] != '@' {
		return name
	}
	rest := name[1:]
	if proc == "" {
		return "_" + rest
	}
	return proc + "_" + rest
}
