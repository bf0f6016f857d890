package units

import (
	"encoding/json"
	"math/big"
	"strings"
)

var ratOne = big.NewRat(1, 1)

// String renders the canonical unit back into a tag.
//
// Each term's power of ten is expressed as an SI prefix when
// powerOfTen/power is an integer matching a known prefix exponent;
// otherwise it folds into a leftover accumulator together with the residual
// power of ten, and the glyph renders unprefixed. A nonzero leftover
// prepends a "10^n " factor. The dimensionless unit with zero residual
// renders as the empty string.
//
// For tags whose per-glyph powers of ten are all prefix-representable,
// re-parsing the rendered string yields an equal Unit.
func (u Unit) String() string {
	leftover := new(big.Rat).Set(u.residualRat())

	terms := make([]string, 0, len(u.terms))
	for _, glyph := range u.Glyphs() {
		d := u.terms[glyph]
		prefix, ok := prefixFor(d.PowerOfTen, d.Power)
		if !ok {
			leftover.Add(leftover, d.PowerOfTen)
		}

		var b strings.Builder
		b.WriteString(prefix)
		b.WriteString(glyph)
		if d.Power.Cmp(ratOne) != 0 {
			b.WriteString("^")
			b.WriteString(d.Power.RatString())
		}
		terms = append(terms, b.String())
	}

	joined := strings.Join(terms, mult)
	if leftover.Sign() == 0 {
		return joined
	}
	if joined == "" {
		return "10^" + leftover.RatString()
	}
	return "10^" + leftover.RatString() + " " + joined
}

// prefixFor resolves a term's power of ten to an SI prefix letter. That is
// possible only when powerOfTen/power is an integer exactly matching a
// known prefix exponent. A zero power of ten needs no prefix.
func prefixFor(powerOfTen, power *big.Rat) (string, bool) {
	if powerOfTen.Sign() == 0 {
		return "", true
	}
	ratio := new(big.Rat).Quo(powerOfTen, power)
	if !ratio.IsInt() || !ratio.Num().IsInt64() {
		return "", false
	}
	letter, ok := powerPrefixes[ratio.Num().Int64()]
	return letter, ok
}

type dimensionJSON struct {
	PowerOfTen string `json:"power_of_ten"`
	Power      string `json:"power"`
}

type unitJSON struct {
	Terms              map[string]dimensionJSON `json:"terms"`
	ResidualPowerOfTen string                   `json:"residual_power_of_ten"`
}

// MarshalJSON projects the canonical form with exact "a/b" exponent
// strings, so no precision is lost crossing the JSON boundary.
func (u Unit) MarshalJSON() ([]byte, error) {
	out := unitJSON{
		Terms:              make(map[string]dimensionJSON, len(u.terms)),
		ResidualPowerOfTen: u.residualRat().RatString(),
	}
	for glyph, d := range u.terms {
		out.Terms[glyph] = dimensionJSON{
			PowerOfTen: d.PowerOfTen.RatString(),
			Power:      d.Power.RatString(),
		}
	}
	return json.Marshal(out)
}
