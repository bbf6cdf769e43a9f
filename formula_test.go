package periodictable

import (
	"encoding"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string, opts ...Option) *Formula {
	t.Helper()
	f, err := Parse(src, opts...)
	require.NoError(t, err, "parsing %q", src)
	return f
}

func TestAtoms(t *testing.T) {
	f := mustParse(t, "CaCO3+6H2O")
	want := AtomTally{
		atomOf(t, "Ca"): 1,
		atomOf(t, "C"):  1,
		atomOf(t, "O"):  9,
		atomOf(t, "H"):  12,
	}
	assert.Equal(t, want, f.Atoms())
}

func TestAtomsIsotopes(t *testing.T) {
	f := mustParse(t, "D2O[18]")
	want := AtomTally{
		isoOf(t, "H", 2):  2,
		isoOf(t, "O", 18): 1,
	}
	assert.Equal(t, want, f.Atoms())
}

func TestMass(t *testing.T) {
	water := mustParse(t, "H2O")
	H := atomOf(t, "H")
	O := atomOf(t, "O")
	assert.InDelta(t, 2*H.Mass()+O.Mass(), water.Mass(), 1e-12)

	heavy := mustParse(t, "D2O")
	D := isoOf(t, "H", 2)
	assert.InDelta(t, 2*D.Mass()+O.Mass(), heavy.Mass(), 1e-12)

	assert.Zero(t, New().Mass())
}

func TestMassAdditivity(t *testing.T) {
	a := mustParse(t, "CaCO3")
	b := mustParse(t, "(H2O)6")
	sum := a.Add(b)
	assert.InDelta(t, a.Mass()+b.Mass(), sum.Mass(), 1e-9)
	assert.Equal(t, "CaCO3(H2O)6", sum.Render())
	// Add carries no metadata.
	_, ok := sum.Density()
	assert.False(t, ok)
}

func TestScalarDistributivity(t *testing.T) {
	f := mustParse(t, "Fe2O3")
	assert.InDelta(t, 3.5*f.Mass(), f.Mul(3.5).Mass(), 1e-9)
}

func TestMul(t *testing.T) {
	// A multi-node tree is wrapped in one group.
	f := mustParse(t, "H2O")
	assert.Equal(t, "(H2O)2", f.Mul(2).Render())
	// A single top node has its multiplier scaled in place.
	g := mustParse(t, "6H2O")
	assert.Equal(t, "(H2O)12", g.Mul(2).Render())
	o := FromAtom(atomOf(t, "O"))
	assert.Equal(t, "O3", o.Mul(3).Render())
	// Mul(1) is a copy.
	w := mustParse(t, "H2O", Density(1.0), Name("water"))
	c := w.Mul(1)
	assert.True(t, w.Equal(c))
	d, ok := c.Density()
	require.True(t, ok)
	assert.Equal(t, 1.0, d)
	assert.Equal(t, "water", c.Name())
	// The receiver is untouched.
	f.Mul(5)
	assert.Equal(t, "H2O", f.Render())
	// Multipliers are positive, here as everywhere in a tree.
	assert.Panics(t, func() { f.Mul(0) })
	assert.Panics(t, func() { f.Mul(-2) })
	assert.Panics(t, func() { f.Mul(math.NaN()) })
	assert.Panics(t, func() { f.Mul(math.Inf(1)) })
}

func TestExtend(t *testing.T) {
	f := mustParse(t, "CaCO3", Name("calcite"))
	f.Extend(mustParse(t, "6H2O"))
	assert.Equal(t, "CaCO3(H2O)6", f.Render())
	assert.Equal(t, "calcite", f.Name())
	assert.InDelta(t, mustParse(t, "CaCO3+6H2O").Mass(), f.Mass(), 1e-9)
}

func TestHill(t *testing.T) {
	cases := []struct {
		src, hill string
	}{
		{"OH2", "H2O"},
		{"H2O", "H2O"},
		{"(H2O)2", "H4O2"},
		{"O3Si2C6H6", "C6H6O3Si2"},
		{"Fe2O3", "Fe2O3"},
		{"NaClO", "ClNaO"},
	}
	for _, c := range cases {
		got := mustParse(t, c.src).Hill()
		assert.Equal(t, c.hill, got.Render(), "hill of %q", c.src)
	}

	// Order-independent comparison goes through Hill.
	a := mustParse(t, "OH2")
	b := mustParse(t, "H2O")
	assert.False(t, a.Equal(b))
	assert.True(t, a.Hill().Equal(b.Hill()))
}

func TestHillIsotopes(t *testing.T) {
	// Natural element first, then isotopes by ascending mass number.
	f := mustParse(t, "O[18]O[16]O")
	assert.Equal(t, "OO[16]O[18]", f.Hill().Render())
}

func TestEqualIgnoresMetadata(t *testing.T) {
	a := mustParse(t, "H2O")
	b := mustParse(t, "H2O", Density(1.0), Name("water"))
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(nil))
	assert.False(t, a.Equal(mustParse(t, "D2O")))
	assert.True(t, New().Equal(New()))
}

func TestSingleAtomDensityDefault(t *testing.T) {
	fe := mustParse(t, "Fe")
	d, ok := fe.Density()
	require.True(t, ok)
	feEl, _ := Default().Element("Fe")
	dd, _ := feEl.Density()
	assert.Equal(t, dd, d)

	// One distinct atom, even with a count.
	o2 := mustParse(t, "O2")
	_, ok = o2.Density()
	assert.True(t, ok)

	// More than one distinct atom has no default.
	_, ok = mustParse(t, "H2O").Density()
	assert.False(t, ok)

	// An explicit option wins over the default.
	cold := mustParse(t, "Fe", Density(7.6))
	d, _ = cold.Density()
	assert.Equal(t, 7.6, d)
}

func TestIsotopeDensity(t *testing.T) {
	O := atomOf(t, "O")
	O18 := isoOf(t, "O", 18)
	dn, ok := O.Density()
	require.True(t, ok)
	di, ok := O18.Density()
	require.True(t, ok)
	assert.InDelta(t, dn*O18.Mass()/O.Mass(), di, 1e-12)
}

func TestNaturalMassRatio(t *testing.T) {
	assert.Equal(t, 1.0, New().NaturalMassRatio())
	assert.Equal(t, 1.0, mustParse(t, "H2O").NaturalMassRatio())

	heavy := mustParse(t, "D2O")
	D := isoOf(t, "H", 2)
	O := atomOf(t, "O")
	want := (2*D.NaturalMass() + O.Mass()) / (2*D.Mass() + O.Mass())
	assert.InDelta(t, want, heavy.NaturalMassRatio(), 1e-12)
	assert.Less(t, heavy.NaturalMassRatio(), 1.0)
}

func TestNaturalDensity(t *testing.T) {
	heavy := mustParse(t, "D2O", Density(1.1056))
	nd, ok := heavy.NaturalDensity()
	require.True(t, ok)
	assert.InDelta(t, 1.1056/heavy.NaturalMassRatio(), nd, 1e-12)

	// Setting the natural density recovers the same material density.
	again := mustParse(t, "D2O", NaturalDensity(nd))
	d, ok := again.Density()
	require.True(t, ok)
	assert.InDelta(t, 1.1056, d, 1e-9)

	again = mustParse(t, "D2O")
	again.SetNaturalDensity(nd)
	d, _ = again.Density()
	assert.InDelta(t, 1.1056, d, 1e-9)

	// With no isotopes the two views coincide.
	water := mustParse(t, "H2O", Density(1.0))
	nd, ok = water.NaturalDensity()
	require.True(t, ok)
	assert.Equal(t, 1.0, nd)

	_, ok = mustParse(t, "H2O").NaturalDensity()
	assert.False(t, ok)
}

func TestVolume(t *testing.T) {
	c := mustParse(t, "C")
	r := atomOf(t, "C").CovalentRadius()
	sphere := 4 * math.Pi / 3 * r * r * r
	assert.InDelta(t, sphere, c.Volume(1), 1e-12)

	v, err := c.VolumeByLattice("diamond")
	require.NoError(t, err)
	assert.InDelta(t, sphere/PackingFactors["diamond"], v, 1e-12)

	// Lattice names are case-insensitive.
	u, err := c.VolumeByLattice("Diamond")
	require.NoError(t, err)
	assert.Equal(t, v, u)

	_, err = c.VolumeByLattice("quasicrystal")
	var pe *PreconditionError
	assert.ErrorAs(t, err, &pe)

	// hcp and fcc share a packing factor.
	assert.Equal(t, PackingFactors["hcp"], PackingFactors["fcc"])
}

func TestFromTree(t *testing.T) {
	H := atomOf(t, "H")
	O := atomOf(t, "O")
	f, err := FromTree([]Node{leaf(2, H), leaf(1, O)})
	require.NoError(t, err)
	assert.True(t, f.Equal(mustParse(t, "H2O")))

	var se *StructureError
	_, err = FromTree([]Node{{Count: 1}})
	assert.ErrorAs(t, err, &se)
	_, err = FromTree([]Node{{Count: 1, Atom: H, Group: []Node{leaf(1, O)}}})
	assert.ErrorAs(t, err, &se)
	_, err = FromTree([]Node{leaf(0, H)})
	assert.ErrorAs(t, err, &se)
	_, err = FromTree([]Node{leaf(math.NaN(), H)})
	assert.ErrorAs(t, err, &se)
	_, err = FromTree([]Node{group(2, []Node{leaf(-1, O)})})
	assert.ErrorAs(t, err, &se)

	// The tree is copied, so later edits to the input do not leak in.
	nodes := []Node{leaf(2, H), leaf(1, O)}
	f, err = FromTree(nodes)
	require.NoError(t, err)
	nodes[0].Count = 5
	assert.Equal(t, "H2O", f.Render())
}

func TestString(t *testing.T) {
	f := mustParse(t, "CaCO3+6H2O")
	assert.Equal(t, "CaCO3(H2O)6", f.String())
	f.SetName("ikaite")
	assert.Equal(t, "ikaite", f.String())
	assert.Equal(t, "CaCO3(H2O)6", f.Render())
	assert.Equal(t, "", New().String())
}

func TestTextRoundTrip(t *testing.T) {
	var _ encoding.TextMarshaler = (*Formula)(nil)
	var _ encoding.TextUnmarshaler = (*Formula)(nil)

	f := mustParse(t, "CaCO3(H2O)6", Density(1.8), Name("ikaite"))
	text, err := f.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "CaCO3(H2O)6", string(text))

	g := New(Density(1.8))
	require.NoError(t, g.UnmarshalText(text))
	assert.True(t, f.Equal(g))
	d, ok := g.Density()
	require.True(t, ok)
	assert.Equal(t, 1.8, d)

	assert.Error(t, g.UnmarshalText([]byte("not a formula")))
}

func TestClone(t *testing.T) {
	f := mustParse(t, "H2O", Density(1.0))
	g := f.Clone()
	g.SetDensity(2.0)
	g.SetName("other")
	d, _ := f.Density()
	assert.Equal(t, 1.0, d)
	assert.Equal(t, "", f.Name())
	assert.True(t, f.Equal(g))
}
