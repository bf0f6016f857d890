package units

import "sort"

// prefixScanOrder lists the supported SI prefix letters in the fixed order
// prefix stripping scans them (descending power of ten). No letter in this
// set is a prefix of another, so first match wins.
var prefixScanOrder = []string{"G", "M", "k", "c", "m", "u", "n", "p", "a"}

// prefixPowers maps an SI prefix letter to its power-of-ten exponent.
var prefixPowers = map[string]int64{
	"G": 9,
	"M": 6,
	"k": 3,
	"c": -2,
	"m": -3,
	"u": -6,
	"n": -9,
	"p": -12,
	"a": -18,
}

// powerPrefixes is the reverse mapping, exponent to letter, used when
// rendering a per-glyph power of ten back into a prefix.
var powerPrefixes = map[int64]string{}

// derivedTags maps a derived glyph to an equivalent primitive-unit tag.
// Keys must survive prefix stripping unchanged: stripping is case-sensitive,
// so Pa is safe (P is not a prefix letter), but a key starting with one of
// the scan-order letters would lose its head before lookup.
var derivedTags = map[string]string{
	"Hz": "s^-1",
	"N":  "kg*m/s^2",
	"Pa": "kg/m/s^2",
	"J":  "kg*m^2/s^2",
	"W":  "kg*m^2/s^3",
	"V":  "kg*m^2/s^3/A",
	"C":  "A*s",
	"T":  "kg/s^2/A",
}

// derivedUnits holds the parsed form of derivedTags, built once at init and
// never mutated.
var derivedUnits = map[string]Unit{}

func init() {
	for letter, power := range prefixPowers {
		powerPrefixes[power] = letter
	}
	for glyph, tag := range derivedTags {
		u, err := Parse(tag)
		if err != nil {
			panic("units: bad derived-unit table entry " + glyph + ": " + err.Error())
		}
		derivedUnits[glyph] = u
	}
}

// PrefixPower returns the power-of-ten exponent for an SI prefix letter.
func PrefixPower(letter string) (int64, bool) {
	power, ok := prefixPowers[letter]
	return power, ok
}

// PrefixLetters returns the supported SI prefix letters in scan order.
func PrefixLetters() []string {
	letters := make([]string, len(prefixScanOrder))
	copy(letters, prefixScanOrder)
	return letters
}

// DerivedGlyphs returns the glyphs with a known primitive equivalent,
// sorted alphabetically.
func DerivedGlyphs() []string {
	glyphs := make([]string, 0, len(derivedUnits))
	for glyph := range derivedUnits {
		glyphs = append(glyphs, glyph)
	}
	sort.Strings(glyphs)
	return glyphs
}

// DerivedEquivalent returns the primitive-unit equivalent of a derived
// glyph, or false if the glyph has no known equivalence.
func DerivedEquivalent(glyph string) (Unit, bool) {
	u, ok := derivedUnits[glyph]
	return u, ok
}
