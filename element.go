package periodictable

import "strconv"

// Atom is an atomic unit as resolved from a symbol: either a natural element
// or a specific isotope of one. Implementations must be immutable; the
// default table hands out one canonical value per atom, so atoms from the
// same table compare equal exactly when they are the same element and mass
// number.
type Atom interface {
	// Symbol is the chemical symbol. Isotopes with a symbol of their own,
	// such as D and T, report that symbol rather than the element's.
	Symbol() string
	// MassNumber is the isotope mass number, or 0 for a natural element.
	MassNumber() int
	// Mass is the atomic mass in u.
	Mass() float64
	// NaturalMass is the element-level mass in u assuming natural abundance.
	// It equals Mass for a natural element.
	NaturalMass() float64
	// CovalentRadius is the covalent radius in Å.
	CovalentRadius() float64
	// Density is the intrinsic mass density in g/cm³, if known.
	Density() (float64, bool)
	// String is the formula notation for the atom, e.g. "O", "O[18]", "D".
	String() string
}

// Resolver maps symbols and isotope numbers to atoms. Resolution failures
// are reported as *ResolutionError. A Resolver must be safe for concurrent
// use; the parser calls it re-entrantly.
type Resolver interface {
	// Resolve resolves a bare symbol to a natural element, or to an isotope
	// for symbols such as D and T that name one directly.
	Resolve(symbol string) (Atom, error)
	// ResolveIsotope resolves a symbol and mass number to an isotope. A mass
	// number of 0 is the natural element.
	ResolveIsotope(symbol string, massNumber int) (Atom, error)
}

// Element is a natural element in a periodic table.
type Element struct {
	symbol   string
	number   int
	mass     float64
	radius   float64
	density  float64
	isotopes map[int]*Isotope
}

// Symbol returns the chemical symbol.
func (e *Element) Symbol() string { return e.symbol }

// Number returns the atomic number.
func (e *Element) Number() int { return e.number }

// MassNumber returns 0: an Element is the natural mixture of isotopes.
func (e *Element) MassNumber() int { return 0 }

// Mass returns the standard atomic weight in u.
func (e *Element) Mass() float64 { return e.mass }

// NaturalMass returns the standard atomic weight in u.
func (e *Element) NaturalMass() float64 { return e.mass }

// CovalentRadius returns the covalent radius in Å.
func (e *Element) CovalentRadius() float64 { return e.radius }

// Density returns the bulk density in g/cm³, if known.
func (e *Element) Density() (float64, bool) {
	return e.density, e.density > 0
}

func (e *Element) String() string { return e.symbol }

// Isotope is a specific isotope of an element.
type Isotope struct {
	element *Element
	// own is a dedicated symbol such as "D"; empty for ordinary isotopes.
	own     string
	massNum int
	mass    float64
}

// Symbol returns the element's symbol, or the isotope's own symbol for
// isotopes such as D and T that have one.
func (i *Isotope) Symbol() string {
	if i.own != "" {
		return i.own
	}
	return i.element.symbol
}

// Element returns the element this is an isotope of.
func (i *Isotope) Element() *Element { return i.element }

// MassNumber returns the mass number.
func (i *Isotope) MassNumber() int { return i.massNum }

// Mass returns the isotope mass in u.
func (i *Isotope) Mass() float64 { return i.mass }

// NaturalMass returns the element's standard atomic weight in u.
func (i *Isotope) NaturalMass() float64 { return i.element.mass }

// CovalentRadius returns the element's covalent radius in Å.
func (i *Isotope) CovalentRadius() float64 { return i.element.radius }

// Density returns the element's bulk density scaled by the isotope to
// natural mass ratio, assuming isotope substitution preserves cell volume.
func (i *Isotope) Density() (float64, bool) {
	d, ok := i.element.Density()
	if !ok {
		return 0, false
	}
	return d * i.mass / i.element.mass, true
}

func (i *Isotope) String() string {
	if i.own != "" {
		return i.own
	}
	return i.element.symbol + "[" + strconv.Itoa(i.massNum) + "]"
}

// PeriodicTable resolves chemical symbols against a fixed set of elements
// and isotopes. It is immutable once built and safe for concurrent use.
type PeriodicTable struct {
	elements map[string]*Element
	special  map[string]*Isotope
}

// NewTable builds the built-in periodic table. Most callers want the shared
// table from Default instead.
func NewTable() *PeriodicTable {
	t := &PeriodicTable{
		elements: make(map[string]*Element, len(elementData)),
		special:  make(map[string]*Isotope, len(specialIsotopes)),
	}
	for _, d := range elementData {
		el := &Element{
			symbol:  d.symbol,
			number:  d.number,
			mass:    d.mass,
			radius:  d.radius,
			density: d.density,
		}
		if masses := isotopeMasses[d.symbol]; masses != nil {
			el.isotopes = make(map[int]*Isotope, len(masses))
			for n, m := range masses {
				el.isotopes[n] = &Isotope{element: el, massNum: n, mass: m}
			}
		}
		t.elements[d.symbol] = el
	}
	for sym, s := range specialIsotopes {
		el := t.elements[s.element]
		iso := el.isotopes[s.massNum]
		iso.own = sym
		t.special[sym] = iso
	}
	return t
}

var defaultTable = NewTable()

// Default returns the shared built-in periodic table.
func Default() *PeriodicTable { return defaultTable }

// Resolve resolves a bare symbol to its natural element. Symbols such as D
// and T resolve to the isotope they name.
func (t *PeriodicTable) Resolve(symbol string) (Atom, error) {
	if el, ok := t.elements[symbol]; ok {
		return el, nil
	}
	if iso, ok := t.special[symbol]; ok {
		return iso, nil
	}
	return nil, &ResolutionError{Symbol: symbol}
}

// ResolveIsotope resolves a symbol and mass number to an isotope. A mass
// number of 0 resolves the natural element.
func (t *PeriodicTable) ResolveIsotope(symbol string, massNumber int) (Atom, error) {
	if massNumber == 0 {
		return t.Resolve(symbol)
	}
	el, ok := t.elements[symbol]
	if !ok {
		if _, special := t.special[symbol]; special {
			// Symbols like D already name an isotope; they take no
			// isotope number of their own.
			return nil, &ResolutionError{Symbol: symbol, MassNumber: massNumber}
		}
		return nil, &ResolutionError{Symbol: symbol}
	}
	iso, ok := el.isotopes[massNumber]
	if !ok {
		return nil, &ResolutionError{Symbol: symbol, MassNumber: massNumber}
	}
	return iso, nil
}

// Element returns the element with the given symbol, if present.
func (t *PeriodicTable) Element(symbol string) (*Element, bool) {
	el, ok := t.elements[symbol]
	return el, ok
}

var (
	_ Atom     = (*Element)(nil)
	_ Atom     = (*Isotope)(nil)
	_ Resolver = (*PeriodicTable)(nil)
)
