package periodictable

import "strconv"

// SyntaxError is an error indicating input that does not match the formula
// grammar, including trailing characters after a valid formula. It implements
// InputError.
type SyntaxError struct {
	// Col is the position of the offending token.
	Col int
	// Token is the text of the offending token. It is empty if the error
	// occurred at the end of the input.
	Token string
	// Want describes what the parser expected instead, if anything.
	Want string
}

func (err *SyntaxError) Error() string {
	if err.Token == "" {
		if err.Want == "" {
			return errpos(err.Col, "unexpected end of formula")
		}
		return errpos(err.Col, "unexpected end of formula, want "+err.Want)
	}
	if err.Want == "" {
		return errpos(err.Col, "unexpected "+strconv.Quote(err.Token))
	}
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Token)+", want "+err.Want)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// ResolutionError is an error indicating a symbol that is not in the element
// table, or an isotope number that does not exist for the resolved element.
// When the error arises during parsing it implements InputError; a resolution
// performed directly against a table reports a Col of 0.
type ResolutionError struct {
	// Col is the position of the symbol in the formula, or 0.
	Col int
	// Symbol is the symbol that failed to resolve.
	Symbol string
	// MassNumber is the requested isotope mass number, or 0 when the symbol
	// itself was unknown.
	MassNumber int
}

func (err *ResolutionError) Error() string {
	msg := "no element " + err.Symbol
	if err.MassNumber != 0 {
		msg = strconv.Itoa(err.MassNumber) + " is not an isotope of " + err.Symbol
	}
	if err.Col == 0 {
		return msg
	}
	return errpos(err.Col, msg)
}

func (err *ResolutionError) Pos() int {
	return err.Col
}

// StructureError is an error indicating a hand-built formula tree that fails
// validation.
type StructureError struct {
	// Reason describes the invalid node.
	Reason string
}

func (err *StructureError) Error() string {
	return "invalid formula structure: " + err.Reason
}

// PreconditionError is an error indicating a call whose arguments violate
// its preconditions, e.g. mixing by volume without a density on every
// component or naming an unknown crystal lattice.
type PreconditionError struct {
	// Reason describes the violated precondition.
	Reason string
}

func (err *PreconditionError) Error() string {
	return err.Reason
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid formula text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*ResolutionError)(nil)
)
