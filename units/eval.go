package units

import (
	"strconv"
	"strings"
)

// Eval evaluates a whitespace-separated infix expression over unit tags:
//
//	kHz/Hz^1/2 * s
//	m/s ^ 2
//	V / V
//
// Operands and the operators *, / and ^ must be separated by spaces; within
// an operand the usual tag grammar applies, so "m/s^2" is one tag while
// "m/s ^ 2" squares it. Evaluation is left-associative.
//
// Units carry no magnitude: a numeric operand where a unit is required, or
// a unit where an exponent is required, fails with TypeMismatchError.
func Eval(expr string) (Unit, error) {
	fields := strings.Fields(expr)
	if len(fields) == 0 {
		return Dimensionless(), nil
	}

	result, err := parseOperand(fields[0])
	if err != nil {
		return Unit{}, err
	}

	rest := fields[1:]
	for len(rest) > 0 {
		if len(rest) < 2 {
			return Unit{}, &ParseError{Tag: expr, Message: "trailing operator " + strconv.Quote(rest[0])}
		}
		op, operand := rest[0], rest[1]
		rest = rest[2:]

		switch op {
		case "*", "/":
			v, err := parseOperand(operand)
			if err != nil {
				return Unit{}, err
			}
			if op == "*" {
				result = result.Mul(v)
			} else {
				result = result.Div(v)
			}
		case "^":
			result, err = applyExponent(result, operand)
			if err != nil {
				return Unit{}, err
			}
		default:
			return Unit{}, &ParseError{Tag: expr, Message: "unknown operator " + strconv.Quote(op)}
		}
	}
	return result, nil
}

// parseOperand parses one expression operand as a unit tag. Numbers are
// rejected: the algebra has no scalar multiplication.
func parseOperand(token string) (Unit, error) {
	if isNumeric(token) {
		return Unit{}, &TypeMismatchError{Operand: token, Want: "a unit tag"}
	}
	return Parse(token)
}

// applyExponent raises u to an exponent token: an integer, an int/int
// fraction, or a real number (approximated by a rational).
func applyExponent(u Unit, token string) (Unit, error) {
	if isRealLiteral(token) {
		x, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return Unit{}, &ParseError{Tag: token, Message: "bad exponent"}
		}
		return u.PowFloat(x)
	}
	n, err := ParseRational(token)
	if err != nil {
		return Unit{}, &TypeMismatchError{Operand: token, Want: "a rational or real exponent"}
	}
	return u.Pow(n), nil
}

// isNumeric reports whether the token reads as a number rather than a tag.
func isNumeric(token string) bool {
	if _, err := ParseRational(token); err == nil {
		return true
	}
	_, err := strconv.ParseFloat(token, 64)
	return err == nil
}

// isRealLiteral reports whether the exponent token uses decimal-point or
// scientific notation, which selects the rational-approximation path.
func isRealLiteral(token string) bool {
	return strings.ContainsAny(token, ".eE")
}
