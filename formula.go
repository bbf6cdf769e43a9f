package periodictable

import (
	"math"
	"strconv"
	"strings"
)

// Formula is a chemical formula: a tree of counted atoms and groups along
// with optional density and name metadata. The tree is never mutated;
// Extend, the one in-place operation, replaces the whole tree reference.
//
// Equality between formulas is structural. Two trees describing the same
// multiset of atoms with different grouping or ordering are not equal until
// normalized with Hill.
type Formula struct {
	structure  []Node
	density    float64
	hasDensity bool
	name       string
}

// Option configures a formula at construction, or a mixture synthesis.
type Option interface {
	option(*settings)
}

type settings struct {
	density        float64
	hasDensity     bool
	naturalDensity float64
	hasNatural     bool
	name           string
	table          Resolver
}

type (
	densityOpt        float64
	naturalDensityOpt float64
	nameOpt           string
	tableOpt          struct{ table Resolver }
)

// Density sets the material density in g/cm³.
func Density(v float64) Option { return densityOpt(v) }

// NaturalDensity sets the density the material would have with naturally
// occurring isotope abundances and no change in cell volume.
func NaturalDensity(v float64) Option { return naturalDensityOpt(v) }

// Name sets a common name for the material.
func Name(name string) Option { return nameOpt(name) }

// WithTable sets the element table used to resolve symbols. The default is
// the built-in table.
func WithTable(table Resolver) Option { return tableOpt{table} }

func (o densityOpt) option(s *settings) { s.density, s.hasDensity = float64(o), true }

func (o naturalDensityOpt) option(s *settings) {
	s.naturalDensity, s.hasNatural = float64(o), true
}

func (o nameOpt) option(s *settings)  { s.name = string(o) }
func (o tableOpt) option(s *settings) { s.table = o.table }

func applySettings(opts []Option) *settings {
	s := &settings{}
	for _, o := range opts {
		o.option(s)
	}
	return s
}

func (s *settings) parser() *Parser {
	if s.table == nil {
		return defaultParser
	}
	return NewParser(s.table)
}

// newFormula finishes construction: metadata options apply in order, and a
// formula of exactly one distinct atom defaults to that atom's intrinsic
// density when none was given.
func newFormula(structure []Node, s *settings) *Formula {
	f := &Formula{structure: structure}
	if s.hasNatural {
		f.SetNaturalDensity(s.naturalDensity)
	}
	if s.hasDensity {
		f.SetDensity(s.density)
	}
	f.name = s.name
	if !f.hasDensity {
		if tally := f.Atoms(); len(tally) == 1 {
			for a := range tally {
				if d, ok := a.Density(); ok {
					f.SetDensity(d)
				}
			}
		}
	}
	return f
}

// New creates an empty formula.
func New(opts ...Option) *Formula {
	return newFormula(nil, applySettings(opts))
}

// Parse parses a formula string, e.g. "CaCO3+6H2O" or "Fe[56]2O3".
func Parse(formula string, opts ...Option) (*Formula, error) {
	s := applySettings(opts)
	nodes, err := s.parser().ParseTree(formula)
	if err != nil {
		return nil, err
	}
	return newFormula(nodes, s), nil
}

// FromAtom wraps a single atom as a formula.
func FromAtom(a Atom, opts ...Option) *Formula {
	return newFormula([]Node{leaf(1, a)}, applySettings(opts))
}

// FromTally builds a formula from a tally, in Hill notation.
func FromTally(tally AtomTally, opts ...Option) *Formula {
	return newFormula(hillNodes(tally), applySettings(opts))
}

// FromTree builds a formula from a hand-built tree. The tree is validated
// recursively and copied; a node that is neither a leaf atom nor a nested
// group, or whose multiplier is not a positive number, is a *StructureError.
func FromTree(nodes []Node, opts ...Option) (*Formula, error) {
	if err := validateNodes(nodes); err != nil {
		return nil, err
	}
	return newFormula(copyNodes(nodes), applySettings(opts)), nil
}

// Clone returns a shallow copy sharing the (immutable) tree.
func (f *Formula) Clone() *Formula {
	g := *f
	return &g
}

// Structure returns the formula tree. The tree is shared and must not be
// modified.
func (f *Formula) Structure() []Node { return f.structure }

// Name returns the formula's common name, if any.
func (f *Formula) Name() string { return f.name }

// SetName sets the formula's common name.
func (f *Formula) SetName(name string) { f.name = name }

// Atoms flattens the formula into the total count of each distinct atom.
// The tally is computed on demand and owned by the caller.
func (f *Formula) Atoms() AtomTally {
	return countAtoms(f.structure)
}

// Mass returns the formula mass in u.
func (f *Formula) Mass() float64 {
	m := 0.0
	for a, count := range f.Atoms() {
		m += a.Mass() * count
	}
	return m
}

// Hill returns a new formula with the same atoms in Hill notation: carbon
// first, hydrogen second, then the remaining symbols alphabetically. Use it
// for order-independent comparison.
func (f *Formula) Hill() *Formula {
	return FromTally(f.Atoms())
}

// NaturalMassRatio returns the ratio of the formula's mass with natural
// abundances to its mass with the isotopes actually used. If cell volume is
// preserved under isotope substitution, this is also the density ratio. The
// ratio of an empty formula is 1.
func (f *Formula) NaturalMassRatio() float64 {
	natural, isotope := 0.0, 0.0
	for a, count := range f.Atoms() {
		natural += count * a.NaturalMass()
		isotope += count * a.Mass()
	}
	if isotope == 0 {
		return 1
	}
	return natural / isotope
}

// Density returns the material density in g/cm³, if known.
func (f *Formula) Density() (float64, bool) {
	return f.density, f.hasDensity
}

// SetDensity sets the material density in g/cm³. Not safe for concurrent use
// with other methods on the same formula.
func (f *Formula) SetDensity(v float64) {
	f.density, f.hasDensity = v, true
}

// NaturalDensity returns the density the material would have with naturally
// occurring isotope abundances at the same cell volume.
func (f *Formula) NaturalDensity() (float64, bool) {
	if !f.hasDensity {
		return 0, false
	}
	return f.density / f.NaturalMassRatio(), true
}

// SetNaturalDensity sets the density via its natural-abundance view:
// density = v * NaturalMassRatio().
func (f *Formula) SetNaturalDensity(v float64) {
	f.SetDensity(v * f.NaturalMassRatio())
}

// PackingFactors maps crystal lattice names to atomic packing factors.
//
//	cubic    simple cubic            0.52360
//	bcc      body-centered cubic     0.68017
//	hcp      hexagonal close-packed  0.74048
//	fcc      face-centered cubic     0.74048
//	diamond  diamond cubic           0.34009
var PackingFactors = map[string]float64{
	"cubic":   math.Pi / 6,
	"bcc":     math.Pi * math.Sqrt(3) / 8,
	"hcp":     math.Pi / math.Sqrt(18),
	"fcc":     math.Pi / math.Sqrt(18),
	"diamond": math.Pi * math.Sqrt(3) / 16,
}

// Volume estimates the molecular volume in Å³ from the covalent radii of
// the atoms and an atomic packing factor.
func (f *Formula) Volume(packingFactor float64) float64 {
	v := 0.0
	for a, count := range f.Atoms() {
		r := a.CovalentRadius()
		v += count * r * r * r
	}
	return v * 4 * math.Pi / 3 / packingFactor
}

// VolumeByLattice estimates the molecular volume in Å³ using the packing
// factor of a named crystal lattice from PackingFactors. The name is
// case-insensitive; an unknown lattice is a *PreconditionError.
func (f *Formula) VolumeByLattice(lattice string) (float64, error) {
	pf, ok := PackingFactors[strings.ToLower(lattice)]
	if !ok {
		return 0, &PreconditionError{Reason: "unknown crystal lattice " + strconv.Quote(lattice)}
	}
	return f.Volume(pf), nil
}

// Add joins two formulas into a new one, f's terms followed by g's. The
// result carries no density or name. This models a sum formula such as a
// hydrate.
func (f *Formula) Add(g *Formula) *Formula {
	st := make([]Node, 0, len(f.structure)+len(g.structure))
	st = append(st, f.structure...)
	st = append(st, g.structure...)
	return &Formula{structure: st}
}

// Extend appends g's terms to f in place, keeping f's metadata. This is the
// only mutation of a formula's tree and is not safe for concurrent use.
func (f *Formula) Extend(g *Formula) {
	st := make([]Node, 0, len(f.structure)+len(g.structure))
	st = append(st, f.structure...)
	st = append(st, g.structure...)
	f.structure = st
}

// Mul returns a copy of f scaled by n. A tree with a single top-level node
// has its multiplier scaled directly; any other tree is wrapped in a single
// new node. Mul by 1 returns a plain copy. Mul panics if n is not a
// positive number, which would build a tree no constructor accepts.
func (f *Formula) Mul(n float64) *Formula {
	if math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		panic("periodictable: multiplier " + formatCount(n) + " is not a positive number")
	}
	r := f.Clone()
	if n == 1 || len(f.structure) == 0 {
		return r
	}
	if len(f.structure) == 1 {
		top := f.structure[0]
		top.Count *= n
		r.structure = []Node{top}
		return r
	}
	r.structure = []Node{group(n, f.structure)}
	return r
}

// Equal reports whether two formulas have structurally equal trees. Name
// and density are not compared.
func (f *Formula) Equal(g *Formula) bool {
	if g == nil {
		return false
	}
	return equalNodes(f.structure, g.structure)
}

// Render reconstructs the formula notation for the tree, ignoring the name.
func (f *Formula) Render() string {
	var b strings.Builder
	renderNodes(&b, f.structure)
	return b.String()
}

// String returns the formula's name if set, else its rendered notation.
func (f *Formula) String() string {
	if f.name != "" {
		return f.name
	}
	return f.Render()
}

// MarshalText renders the formula tree. Density and name metadata travel
// separately.
func (f *Formula) MarshalText() ([]byte, error) {
	return []byte(f.Render()), nil
}

// UnmarshalText re-parses a rendered tree with the default table, keeping
// any metadata already on f.
func (f *Formula) UnmarshalText(text []byte) error {
	nodes, err := defaultParser.ParseTree(string(text))
	if err != nil {
		return err
	}
	f.structure = nodes
	return nil
}
