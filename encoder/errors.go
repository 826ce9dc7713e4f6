package encoder

import (
	"fmt"

	"github.com/wrzlbrmft/cpu/toolerr"
)

// Error is a pure-value encoding error: the family constructs one with the
// kind spec.md §4.5/§7 names for that mismatch, and the driver (C6) wraps
// it with a source Position before reporting it.
type Error struct {
	Kind    toolerr.Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func errf(kind toolerr.Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func errInsufficientOperands(mnemonic string, want, got int) *Error {
	return errf(toolerr.KindInsufficientOperands, "%s needs at least %d operand(s), got %d", mnemonic, want, got)
}

func errTooManyOperands(mnemonic string, want, got int) *Error {
	return errf(toolerr.KindTooManyOperands, "%s takes at most %d operand(s), got %d", mnemonic, want, got)
}

func errInvalidOperand(mnemonic, operand string) *Error {
	return errf(toolerr.KindInvalidOperand, "%s: invalid operand %q", mnemonic, operand)
}

func errUnsupportedOperand(mnemonic, operand string) *Error {
	return errf(toolerr.KindUnsupportedOperand, "%s: unsupported operand %q", mnemonic, operand)
}

func errIncompatibleRegisterSize(mnemonic string) *Error {
	return errf(toolerr.KindIncompatibleRegisterSize, "%s: incompatible register sizes", mnemonic)
}

func errIncompatibleDataSize(mnemonic, operand string) *Error {
	return errf(toolerr.KindIncompatibleDataSize, "%s: %q does not fit the required width", mnemonic, operand)
}

func errIncompatibleAddrSize(mnemonic, operand string) *Error {
	return errf(toolerr.KindIncompatibleAddrSize, "%s: %q is not a valid 16-bit address", mnemonic, operand)
}

func errIncompatibleDataType(mnemonic, operand string) *Error {
	return errf(toolerr.KindIncompatibleDataType, "%s: %q has the wrong literal type", mnemonic, operand)
}

func errInvalidMnemonic(mnemonic string) *Error {
	return errf(toolerr.KindInvalidMnemonic, "unknown mnemonic %q", mnemonic)
}

func errInvalidInt(operand string) *Error {
	return errf(toolerr.KindInvalidInt, "int: %q is not a valid interrupt number (0-63)", operand)
}

func errNoData(mnemonic string) *Error {
	return errf(toolerr.KindNoData, "%s needs at least one operand", mnemonic)
}

func errUnsupportedMultiplier(mnemonic, operand string) *Error {
	return errf(toolerr.KindUnsupportedMultiplier, "%s: %q does not support a multiplier", mnemonic, operand)
}

func errInvalidMultiplier(mnemonic, operand string) *Error {
	return errf(toolerr.KindInvalidMultiplier, "%s: %q has an invalid multiplier", mnemonic, operand)
}

func errUnsupportedMultiplierSize(mnemonic, operand string) *Error {
	return errf(toolerr.KindUnsupportedMultiplierSize, "%s: %q multiplier out of range", mnemonic, operand)
}
