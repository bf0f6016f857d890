package units

import (
	"math"
	"math/big"
	"sort"
)

// Dimension is one base unit raised to a power, with an associated
// power-of-ten prefactor: its value is 10^PowerOfTen * Glyph^Power.
// A live Dimension never has a zero Power; fully-cancelled glyphs fold
// their prefactor into the owning Unit's residual power of ten.
type Dimension struct {
	Glyph      string
	PowerOfTen *big.Rat
	Power      *big.Rat
}

// clone returns an independent copy of the dimension.
func (d Dimension) clone() Dimension {
	return Dimension{
		Glyph:      d.Glyph,
		PowerOfTen: new(big.Rat).Set(d.PowerOfTen),
		Power:      new(big.Rat).Set(d.Power),
	}
}

// Unit is the canonical form of a parsed tag: a mapping from base glyph to
// its Dimension, plus one residual power of ten that has no attached glyph.
//
// Units are immutable once constructed; every arithmetic operation returns
// a fresh Unit, so concurrent use needs no locking.
type Unit struct {
	terms    map[string]Dimension
	residual *big.Rat
}

// Dimensionless returns the empty unit: no terms, residual power of ten
// zero. It is the identity for multiplication.
func Dimensionless() Unit {
	return Unit{terms: map[string]Dimension{}, residual: new(big.Rat)}
}

// residualRat tolerates the zero Unit, whose residual pointer is nil.
func (u Unit) residualRat() *big.Rat {
	if u.residual == nil {
		return new(big.Rat)
	}
	return u.residual
}

// Parse parses a tag such as "m/s", "V/Hz^1/2" or "s*kg/ns" into its
// canonical Unit. The empty tag parses to the dimensionless unit.
func Parse(tag string) (Unit, error) {
	numerator, denominator, err := numeratorDenominator(tag)
	if err != nil {
		return Unit{}, err
	}

	b := newBuilder()
	for _, group := range []struct {
		tokens []string
		sign   int64
	}{
		{numerator, 1},
		{denominator, -1},
	} {
		for _, token := range group.tokens {
			powerOfTen, glyph, power, err := parseOneDimension(token)
			if err != nil {
				return Unit{}, err
			}
			if group.sign < 0 {
				powerOfTen.Neg(powerOfTen)
				power.Neg(power)
			}
			b.add(glyph, powerOfTen, power)
		}
	}
	return b.unit(), nil
}

// MustParse is Parse for static tags; it panics on error.
func MustParse(tag string) Unit {
	u, err := Parse(tag)
	if err != nil {
		panic("units: " + err.Error())
	}
	return u
}

// Mul returns the product of two units.
func (u Unit) Mul(v Unit) Unit {
	return u.combine(v, 1)
}

// Div returns the quotient of two units: multiplication with every exponent
// contribution from the divisor negated.
func (u Unit) Div(v Unit) Unit {
	return u.combine(v, -1)
}

// combine merges v into u with v's contributions scaled by sign.
func (u Unit) combine(v Unit, sign int64) Unit {
	factor := big.NewRat(sign, 1)
	b := newBuilder()
	for _, d := range u.terms {
		b.add(d.Glyph, d.PowerOfTen, d.Power)
	}
	b.addResidual(u.residualRat())
	for _, d := range v.terms {
		b.add(d.Glyph, new(big.Rat).Mul(d.PowerOfTen, factor), new(big.Rat).Mul(d.Power, factor))
	}
	b.addResidual(new(big.Rat).Mul(v.residualRat(), factor))
	return b.unit()
}

// Pow raises the unit to an exact rational power: every term's power and
// power of ten scale by n, as does the residual power of ten. Raising to
// the zero power yields the dimensionless unit.
func (u Unit) Pow(n *big.Rat) Unit {
	b := newBuilder()
	for _, d := range u.terms {
		b.add(d.Glyph, new(big.Rat).Mul(d.PowerOfTen, n), new(big.Rat).Mul(d.Power, n))
	}
	b.addResidual(new(big.Rat).Mul(u.residualRat(), n))
	return b.unit()
}

// powTolerance is the absolute tolerance for approximating a real exponent
// by a rational.
const powTolerance = 1e-10

// PowFloat raises the unit to a real power by approximating the exponent
// with a rational: the integer part plus one rounded reciprocal of the
// fractional remainder. An exponent the approximation misses by
// powTolerance or more fails with IrrationalExponentError.
func (u Unit) PowFloat(x float64) (Unit, error) {
	integerPart := math.Floor(x)
	fractionalPart := x - integerPart

	n := new(big.Rat).SetInt64(int64(integerPart))
	if fractionalPart >= powTolerance {
		denominator := math.Round(1 / fractionalPart)
		approximation := integerPart + 1/denominator
		if math.Abs(approximation-x) >= powTolerance {
			return Unit{}, &IrrationalExponentError{Exponent: x}
		}
		n.Add(n, big.NewRat(1, int64(denominator)))
	}
	return u.Pow(n), nil
}

// Equal reports structural canonical equality: identical term mappings and
// identical residual powers of ten. Units spelled through different but
// physically equivalent glyphs (Hz against s^-1) compare unequal unless
// both sides are normalized first.
func (u Unit) Equal(v Unit) bool {
	if len(u.terms) != len(v.terms) {
		return false
	}
	for glyph, d := range u.terms {
		vd, ok := v.terms[glyph]
		if !ok {
			return false
		}
		if d.Power.Cmp(vd.Power) != 0 || d.PowerOfTen.Cmp(vd.PowerOfTen) != 0 {
			return false
		}
	}
	return u.residualRat().Cmp(v.residualRat()) == 0
}

// IsDimensionless reports whether the unit has no surviving glyph terms.
// A dimensionless unit may still carry a nonzero residual power of ten
// (kB/MB leaves 10^-3).
func (u Unit) IsDimensionless() bool {
	return len(u.terms) == 0
}

// Term returns the dimension for a glyph, if present.
func (u Unit) Term(glyph string) (Dimension, bool) {
	d, ok := u.terms[glyph]
	if !ok {
		return Dimension{}, false
	}
	return d.clone(), true
}

// Glyphs returns the unit's glyphs sorted alphabetically.
func (u Unit) Glyphs() []string {
	glyphs := make([]string, 0, len(u.terms))
	for glyph := range u.terms {
		glyphs = append(glyphs, glyph)
	}
	sort.Strings(glyphs)
	return glyphs
}

// Residual returns the residual power of ten.
func (u Unit) Residual() *big.Rat {
	return new(big.Rat).Set(u.residualRat())
}

// builder accumulates per-glyph power and power-of-ten sums and finalizes
// them into a canonical Unit.
type builder struct {
	powerOfTen map[string]*big.Rat
	power      map[string]*big.Rat
	glyphs     []string // insertion order, for deterministic folding
	residual   *big.Rat
}

func newBuilder() *builder {
	return &builder{
		powerOfTen: map[string]*big.Rat{},
		power:      map[string]*big.Rat{},
		residual:   new(big.Rat),
	}
}

// add sums a contribution for a glyph. Inputs are not retained.
func (b *builder) add(glyph string, powerOfTen, power *big.Rat) {
	if _, ok := b.power[glyph]; !ok {
		b.powerOfTen[glyph] = new(big.Rat)
		b.power[glyph] = new(big.Rat)
		b.glyphs = append(b.glyphs, glyph)
	}
	b.powerOfTen[glyph].Add(b.powerOfTen[glyph], powerOfTen)
	b.power[glyph].Add(b.power[glyph], power)
}

// addResidual sums a glyphless power-of-ten contribution.
func (b *builder) addResidual(r *big.Rat) {
	b.residual.Add(b.residual, r)
}

// unit finalizes the accumulated sums. A glyph whose power summed to zero
// is dropped; if its power of ten did not also cancel, the leftover folds
// into the residual.
func (b *builder) unit() Unit {
	u := Unit{terms: make(map[string]Dimension, len(b.glyphs)), residual: b.residual}
	for _, glyph := range b.glyphs {
		power := b.power[glyph]
		powerOfTen := b.powerOfTen[glyph]
		if power.Sign() == 0 {
			if powerOfTen.Sign() != 0 {
				u.residual.Add(u.residual, powerOfTen)
			}
			continue
		}
		u.terms[glyph] = Dimension{Glyph: glyph, PowerOfTen: powerOfTen, Power: power}
	}
	return u
}
