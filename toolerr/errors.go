// Package toolerr implements the closed error-kind sum and position-tagged
// error reporting shared by the assembler, linker and ROM generator
// (spec.md §7 Error Handling Design), grounded on the teacher's
// parser.Position / parser.Error / parser.ErrorList pattern.
package toolerr

import (
	"fmt"
	"strings"
)

// Position locates one line of one input file.
type Position struct {
	File string
	Line int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// Kind is the closed set of error kinds named in spec.md §7.
type Kind int

const (
	// Lexical
	KindUnexpected Kind = iota

	// Naming
	KindInvalidSymbolName
	KindDuplicateSymbol
	KindInvalidProcName

	// Structural
	KindInstructionWithoutSymbol
	KindUnexpectedProc
	KindUnexpectedEndproc
	KindDuplicateDirective
	KindInvalidDirective
	KindInvalidMnemonic

	// Operand
	KindInsufficientOperands
	KindTooManyOperands
	KindInvalidOperand
	KindUnsupportedOperand
	KindIncompatibleRegisterSize
	KindIncompatibleDataSize
	KindIncompatibleAddrSize
	KindIncompatibleDataType
	KindInvalidInt
	KindNoData
	KindUnsupportedMultiplier
	KindInvalidMultiplier
	KindUnsupportedMultiplierSize

	// I/O
	KindFileNotFound
	KindUnexpectedEOF
	KindCorruptObjFile
	KindNotObjFile
	KindIncompatibleObjFileVersion

	// Link
	KindDuplicateObjFile
	KindUnknownSymbol
	KindAmbiguousSymbol
	KindAmbiguousLinkBase
)

var kindNames = map[Kind]string{
	KindUnexpected:                  "UNEXPECTED",
	KindInvalidSymbolName:           "INVALID_SYMBOL_NAME",
	KindDuplicateSymbol:             "DUPLICATE_SYMBOL",
	KindInvalidProcName:             "INVALID_PROC_NAME",
	KindInstructionWithoutSymbol:    "INSTRUCTION_WITHOUT_SYMBOL",
	KindUnexpectedProc:              "UNEXPECTED_PROC",
	KindUnexpectedEndproc:           "UNEXPECTED_ENDPROC",
	KindDuplicateDirective:          "DUPLICATE_DIRECTIVE",
	KindInvalidDirective:            "INVALID_DIRECTIVE",
	KindInvalidMnemonic:             "INVALID_MNEMONIC",
	KindInsufficientOperands:        "INSUFFICIENT_OPERANDS",
	KindTooManyOperands:             "TOO_MANY_OPERANDS",
	KindInvalidOperand:              "INVALID_OPERAND",
	KindUnsupportedOperand:          "UNSUPPORTED_OPERAND",
	KindIncompatibleRegisterSize:    "INCOMPATIBLE_REGISTER_SIZE",
	KindIncompatibleDataSize:        "INCOMPATIBLE_DATA_SIZE",
	KindIncompatibleAddrSize:        "INCOMPATIBLE_ADDR_SIZE",
	KindIncompatibleDataType:        "INCOMPATIBLE_DATA_TYPE",
	KindInvalidInt:                  "INVALID_INT",
	KindNoData:                      "NO_DATA",
	KindUnsupportedMultiplier:       "UNSUPPORTED_MULTIPLIER",
	KindInvalidMultiplier:           "INVALID_MULTIPLIER",
	KindUnsupportedMultiplierSize:   "UNSUPPORTED_MULTIPLIER_SIZE",
	KindFileNotFound:                "FILE_NOT_FOUND",
	KindUnexpectedEOF:               "UNEXPECTED_EOF",
	KindCorruptObjFile:              "CORRUPT_OBJ_FILE",
	KindNotObjFile:                  "NOT_OBJ_FILE",
	KindIncompatibleObjFileVersion:  "INCOMPATIBLE_OBJ_FILE_VERSION",
	KindDuplicateObjFile:            "DUPLICATE_OBJ_FILE",
	KindUnknownSymbol:               "UNKNOWN_SYMBOL",
	KindAmbiguousSymbol:             "AMBIGUOUS_SYMBOL",
	KindAmbiguousLinkBase:           "AMBIGUOUS_LINK_BASE",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN_ERROR_KIND"
}

// Error is one reported error: a kind, a human message, the position it
// occurred at, and (for source errors) the offending line text.
type Error struct {
	Kind    Kind
	Pos     Position
	Message string
	Context string
}

func New(pos Position, kind Kind, message string) *Error {
	return &Error{Kind: kind, Pos: pos, Message: message}
}

func NewWithContext(pos Position, kind Kind, message, context string) *Error {
	return &Error{Kind: kind, Pos: pos, Message: message, Context: context}
}

func (e *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: error: %s\n", e.Pos, e.Message)
	if e.Context != "" {
		fmt.Fprintf(&sb, "    %s\n", e.Context)
	}
	return sb.String()
}

// List collects every error reported during one assemble/link/rom run. Exit
// status is non-zero iff the list is non-empty (spec.md §7).
type List struct {
	Errors []*Error
}

func (l *List) Add(err *Error) {
	l.Errors = append(l.Errors, err)
}

func (l *List) HasErrors() bool {
	return len(l.Errors) > 0
}

func (l *List) Error() string {
	var sb strings.Builder
	for _, e := range l.Errors {
		sb.WriteString(e.Error())
	}
	return sb.String()
}
