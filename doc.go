// Package periodictable parses chemical formula strings and provides
// algebra over the resulting formulas: atom tallies, Hill notation, molar
// mass, density, molecular volume, and mixture synthesis by weight or
// volume.
//
// A formula is a sequence of groups, optionally separated by "+". A group
// is either a run of elements with an optional leading count, or a
// parenthesized formula with an optional trailing count. Each element is a
// symbol with an optional isotope number in square brackets and an optional
// count, so "CaCO3+6H2O", "CaCO3 6H2O", and "Ca(CO3)(H2O)6" all describe
// the same material. Counts and isotope brackets bind only when they
// directly follow their token with no whitespace; counts may be fractional.
//
// Formulas preserve the structure they were written with, so equality is
// structural: Parse("H2O") and Parse("OH2") differ until normalized with
// Hill. This is deliberate; call sites may rely on structural comparison.
package periodictable
