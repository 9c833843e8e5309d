package dfa

import (
	"errors"
	"fmt"
)

var (
	// ErrAlphabetMismatch is returned when two automata that must share a symbol set do not.
	ErrAlphabetMismatch = errors.New("automata have different alphabets")

	ErrDuplicateLabel    = errors.New("duplicate state label")
	ErrUnknownLabel      = errors.New("unknown state label")
	ErrMissingTransition = errors.New("missing transition")
)

// FormatError reports a malformed or incomplete automaton description.
type FormatError struct {
	File string
	Line int
	Msg  string
	Err  error
}

func (e *FormatError) Error() string {
	file := e.File
	if file == "" {
		file = "input"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", file, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", file, e.Msg)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// UndefinedTransitionError is returned when δ is queried outside its domain. Given a
// well-formed Automaton this never happens for in-range states and alphabet symbols.
type UndefinedTransitionError struct {
	State  int
	Symbol rune
}

func (e *UndefinedTransitionError) Error() string {
	return fmt.Sprintf("undefined transition from state %d on symbol %q", e.State, e.Symbol)
}

// InvalidSymbolError is returned by Run when the input contains a symbol outside the alphabet.
type InvalidSymbolError struct {
	Symbol rune
	Pos    int
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("symbol %q at position %d is not in the alphabet", e.Symbol, e.Pos)
}
