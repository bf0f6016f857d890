package units

// Normalize returns the unit with every derived glyph substituted by its
// primitive-unit equivalent raised to the term's power: Hz^p becomes s^-p,
// N^p becomes (kg*m/s^2)^p. The substituted term's power-of-ten prefactor
// has no glyph left to attach to and folds into the residual.
//
// Substitution is never applied by arithmetic or by Equal. Hz and s^-1
// compare unequal until both sides are normalized, which keeps mixed tags
// like Hz/s printing naturally.
func (u Unit) Normalize() Unit {
	b := newBuilder()
	b.addResidual(u.residualRat())
	for _, glyph := range u.Glyphs() {
		d := u.terms[glyph]
		primitive, ok := derivedUnits[glyph]
		if !ok {
			b.add(d.Glyph, d.PowerOfTen, d.Power)
			continue
		}
		expanded := primitive.Pow(d.Power)
		for _, ed := range expanded.terms {
			b.add(ed.Glyph, ed.PowerOfTen, ed.Power)
		}
		b.addResidual(expanded.residualRat())
		b.addResidual(d.PowerOfTen)
	}
	return b.unit()
}
