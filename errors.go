package zakat

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the only failure kind of the calculation engine.
// It is raised when a gold purity outside the closed purity table is used.
var ErrInvalidArgument = errors.New("zakat: invalid argument")

// InvalidArgumentError describes an argument the engine cannot work with.
//
// Arg names the offending argument (for example "purity" or
// "gold[2].purity"), Value is its textual form and Reason a short
// explanation. InvalidArgumentError matches ErrInvalidArgument with
// errors.Is.
type InvalidArgumentError struct {
	// Arg is the name of the argument.
	Arg string

	// Value is the rejected value as text.
	Value string

	// Reason is a short, human-readable explanation.
	Reason string
}

// Error implements the error interface.
//
// The message format is:
//
//	zakat: invalid argument {Arg} "{Value}": {Reason}
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("zakat: invalid argument %s %q: %s", e.Arg, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// ParseError is returned when textual input cannot be parsed into one of the
// package's enumerations (GoldPurity, Metal, Currency).
//
// Type identifies the enumeration and Value holds the exact input. A
// ParseError for a GoldPurity also matches ErrInvalidArgument, since an
// unknown purity grade is the engine's one invalid argument.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example "GoldPurity").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface.
//
// The message format is:
//
//	zakat: invalid {Type} value: "{Value}"
func (e *ParseError) Error() string {
	return fmt.Sprintf("zakat: invalid %s value: %q", e.Type, e.Value)
}

// Is reports whether target is ErrInvalidArgument for purity parse failures.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidArgument && e.Type == goldPurityTypeName
}
