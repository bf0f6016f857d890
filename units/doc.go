// Package units parses textual physical-unit expressions into a canonical
// algebraic representation, supports exact arithmetic on that representation
// (multiplication, division, rational and real exponentiation), and renders
// results back to a human-readable tag, choosing SI prefixes automatically.
//
// A tag is an expression like "m/s", "V/Hz^1/2" or "s*kg/ns". Parsing keeps
// rational powers and powers of ten exact: there is no floating point in
// canonical state, so two Units can be compared structurally without
// tolerance. Units track symbolic unit identity and exact exponents only;
// they carry no numeric magnitude and cannot be multiplied by scalars.
//
// Derived glyphs such as Hz or N are never substituted automatically.
// Normalize is the explicit substitution point for callers that want to
// compare units spelled through different but equivalent glyphs.
package units
