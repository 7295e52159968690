// This file defines the structured error types reported by the public
// operation surface. All failures are synchronous and typed: callers
// distinguish error classes with errors.As, and no operation ever returns
// a partial result alongside an error.

package bigint

import (
	"errors"
	"fmt"

	"github.com/agbru/bigint/internal/nat"
)

// DivisionByZeroError reports a division with a zero divisor.
type DivisionByZeroError struct {
	// Op is the operation that was attempted, e.g. "Quo" or "Rem".
	Op string
}

// Error returns a formatted message describing the division by zero.
func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("bigint: division by zero in %s", e.Op)
}

// InvalidModulusError reports a modular operation with a zero modulus.
type InvalidModulusError struct{}

// Error returns the error message for an InvalidModulusError.
func (e *InvalidModulusError) Error() string {
	return "bigint: modulus is zero"
}

// NegativeExponentError reports a modular exponentiation with a negative
// exponent. Modular inverses are outside this engine's contract.
type NegativeExponentError struct{}

// Error returns the error message for a NegativeExponentError.
func (e *NegativeExponentError) Error() string {
	return "bigint: negative exponent in modular exponentiation"
}

// InvalidDigitError reports a character that is not a valid digit for the
// requested base while parsing.
type InvalidDigitError struct {
	// Digit is the offending byte.
	Digit byte
	// Base is the parse radix in effect.
	Base int
	// Pos is the byte index of the offending character in the input,
	// counting any sign character.
	Pos int
}

// Error returns a formatted message describing the invalid digit.
func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("bigint: invalid digit %q at index %d for base %d", e.Digit, e.Pos, e.Base)
}

// EmptyInputError reports a parse of a string with no digits, after any
// sign character has been consumed.
type EmptyInputError struct{}

// Error returns the error message for an EmptyInputError.
func (e *EmptyInputError) Error() string {
	return "bigint: no digits in input"
}

// InvalidBaseError reports a conversion radix outside the supported
// [2, 36] range.
type InvalidBaseError struct {
	// Base is the rejected radix.
	Base int
}

// Error returns a formatted message describing the invalid base.
func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("bigint: base %d out of range [2, %d]", e.Base, MaxBase)
}

// OverflowError reports a value that does not fit the requested
// fixed-width output type.
type OverflowError struct {
	// Type is the name of the requested output type, e.g. "int64".
	Type string
}

// Error returns a formatted message describing the overflow.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("bigint: value does not fit in %s", e.Type)
}

// NotFiniteError reports a float-to-integer conversion of a NaN or
// infinity.
type NotFiniteError struct {
	// Value is the rejected floating-point input.
	Value float64
}

// Error returns a formatted message describing the non-finite input.
func (e *NotFiniteError) Error() string {
	return fmt.Sprintf("bigint: cannot convert non-finite value %v", e.Value)
}

// translateScanError maps the magnitude layer's scan failures onto the
// public error types, offsetting digit positions by the number of bytes
// (sign characters) consumed before the digits.
func translateScanError(err error, offset int) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, nat.ErrEmptyDigits) {
		return &EmptyInputError{}
	}
	var de *nat.InvalidDigitError
	if errors.As(err, &de) {
		return &InvalidDigitError{Digit: de.Char, Base: de.Base, Pos: de.Pos + offset}
	}
	return err
}
