package units

import (
	"errors"
	"fmt"
)

// Error types for classifying tag-parse and arithmetic failures. All are
// deterministic input-validation errors; none warrant a retry.

// ParseError reports malformed tag syntax, such as unbalanced separators or
// an empty numerator token.
type ParseError struct {
	Tag     string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s", e.Tag, e.Message)
}

// TooManyExponentMarkersError reports a single-dimension token containing
// more than one '^'.
type TooManyExponentMarkersError struct {
	Token string
}

func (e *TooManyExponentMarkersError) Error() string {
	return fmt.Sprintf("token %q: more than one exponent marker", e.Token)
}

// AmbiguousPrefixError reports a token that is exactly an SI prefix letter
// with no base glyph behind it.
type AmbiguousPrefixError struct {
	Token string
}

func (e *AmbiguousPrefixError) Error() string {
	return fmt.Sprintf("token %q: symbol cannot be only an SI prefix", e.Token)
}

// IrrationalExponentError reports a real exponent that cannot be
// approximated by a rational within the fixed tolerance.
type IrrationalExponentError struct {
	Exponent float64
}

func (e *IrrationalExponentError) Error() string {
	return fmt.Sprintf("exponent %v: no rational approximation within tolerance", e.Exponent)
}

// TypeMismatchError reports an arithmetic operation attempted between a Unit
// and an incompatible operand, such as a bare numeric scalar.
type TypeMismatchError struct {
	Operand string
	Want    string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("operand %q: want %s (units track dimensions, not magnitudes)", e.Operand, e.Want)
}

// IsParseError returns true if the error is a tag syntax error.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsTooManyExponentMarkers returns true if the error is a
// TooManyExponentMarkersError.
func IsTooManyExponentMarkers(err error) bool {
	var te *TooManyExponentMarkersError
	return errors.As(err, &te)
}

// IsAmbiguousPrefix returns true if the error is an AmbiguousPrefixError.
func IsAmbiguousPrefix(err error) bool {
	var ae *AmbiguousPrefixError
	return errors.As(err, &ae)
}

// IsIrrationalExponent returns true if the error is an IrrationalExponentError.
func IsIrrationalExponent(err error) bool {
	var ie *IrrationalExponentError
	return errors.As(err, &ie)
}

// IsTypeMismatch returns true if the error is a TypeMismatchError.
func IsTypeMismatch(err error) bool {
	var te *TypeMismatchError
	return errors.As(err, &te)
}
