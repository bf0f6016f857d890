package units

import (
	"math/big"
	"strconv"
	"strings"
)

// mult is the literal multiplication separator in tags.
const mult = "*"

// numeratorDenominator splits a tag into single-dimension numerator and
// denominator tokens.
//
// The tag is first split on '*'. Each multiplied segment is then split on
// '/' characters that are not immediately followed by a digit: a '/' right
// before a digit is the fraction separator inside an exponent (s^3/4) and
// must not split the segment. Within one segment the first piece is a
// numerator token and every following piece is a denominator token.
//
// A glyph may appear in both lists; the canonical-form builder sums the
// contributions.
func numeratorDenominator(tag string) (numerator, denominator []string, err error) {
	if tag == "" {
		return nil, nil, nil
	}
	for _, segment := range strings.Split(tag, mult) {
		pieces := splitDivision(segment)
		if pieces[0] == "" {
			return nil, nil, &ParseError{Tag: tag, Message: "empty numerator token"}
		}
		for _, piece := range pieces[1:] {
			if piece == "" {
				return nil, nil, &ParseError{Tag: tag, Message: "empty denominator token"}
			}
		}
		numerator = append(numerator, pieces[0])
		denominator = append(denominator, pieces[1:]...)
	}
	return numerator, denominator, nil
}

// splitDivision splits a segment on every '/' not immediately followed by a
// digit. A trailing '/' splits and leaves an empty last piece.
func splitDivision(segment string) []string {
	var pieces []string
	start := 0
	for i := 0; i < len(segment); i++ {
		if segment[i] != '/' {
			continue
		}
		if i+1 < len(segment) && segment[i+1] >= '0' && segment[i+1] <= '9' {
			continue // fraction separator inside an exponent
		}
		pieces = append(pieces, segment[start:i])
		start = i + 1
	}
	return append(pieces, segment[start:])
}

// parseOneDimension parses one single-dimension token such as "kHz^3/4" or
// "m" into its power-of-ten prefactor, base glyph and rational power.
//
// The prefactor scales with the exponent applied to the whole prefixed
// symbol: kHz^3/4 contributes 10^(3*3/4).
func parseOneDimension(token string) (powerOfTen *big.Rat, glyph string, power *big.Rat, err error) {
	parts := strings.Split(token, "^")
	if len(parts) > 2 {
		return nil, "", nil, &TooManyExponentMarkersError{Token: token}
	}

	power = big.NewRat(1, 1)
	if len(parts) == 2 {
		power, err = ParseRational(parts[1])
		if err != nil {
			return nil, "", nil, &ParseError{Tag: token, Message: "bad exponent " + strconv.Quote(parts[1])}
		}
	}

	prefix, glyph, err := splitPrefix(parts[0])
	if err != nil {
		return nil, "", nil, err
	}
	if !isGlyph(glyph) {
		return nil, "", nil, &ParseError{Tag: token, Message: "invalid glyph " + strconv.Quote(glyph)}
	}

	powerOfTen = new(big.Rat)
	if prefix != "" {
		powerOfTen.Mul(big.NewRat(prefixPowers[prefix], 1), power)
	}
	return powerOfTen, glyph, power, nil
}

// splitPrefix strips a leading SI prefix letter from a prefixed glyph.
//
// The bare glyph "m" is always the meter, never milli of nothing. A token
// that is exactly a prefix letter has no base glyph and is rejected.
// Prefixes are scanned in the fixed prefixScanOrder; the supported letters
// are chosen so no letter is a prefix of another.
func splitPrefix(prefixed string) (prefix, glyph string, err error) {
	if prefixed == "m" {
		return "", "m", nil
	}
	for _, letter := range prefixScanOrder {
		rest, ok := strings.CutPrefix(prefixed, letter)
		if !ok {
			continue
		}
		if rest == "" {
			return "", "", &AmbiguousPrefixError{Token: prefixed}
		}
		return letter, rest, nil
	}
	return "", prefixed, nil
}

// isGlyph reports whether s is a well-formed base unit symbol: one or more
// ASCII letters.
func isGlyph(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// ParseRational parses an exponent written as an integer or an int/int
// fraction, such as "2", "-1" or "3/4". The denominator must be a positive
// integer.
func ParseRational(s string) (*big.Rat, error) {
	numText, denText, hasDen := strings.Cut(s, "/")
	num, err := strconv.ParseInt(numText, 10, 64)
	if err != nil {
		return nil, &ParseError{Tag: s, Message: "not an integer or int/int fraction"}
	}
	if !hasDen {
		return big.NewRat(num, 1), nil
	}
	den, err := strconv.ParseInt(denText, 10, 64)
	if err != nil || den <= 0 {
		return nil, &ParseError{Tag: s, Message: "denominator must be a positive integer"}
	}
	return big.NewRat(num, den), nil
}
