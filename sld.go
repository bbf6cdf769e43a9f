package periodictable

// SLD is a scattering length density in 10⁻⁶/Å². The incoherent part is
// meaningful for neutrons only.
type SLD struct {
	Real       float64
	Imag       float64
	Incoherent float64
}

// NeutronCalculator computes neutron scattering length density from a flat
// atom tally and a mass density. Implementations live outside this package;
// only the tally and density cross this boundary, never tree structure.
type NeutronCalculator interface {
	NeutronSLD(atoms AtomTally, density, wavelength float64) (SLD, error)
}

// XRayCalculator computes x-ray scattering length density from a flat atom
// tally and a mass density. One of energy (keV) or wavelength (Å) is used,
// at the implementation's discretion.
type XRayCalculator interface {
	XRaySLD(atoms AtomTally, density, energy, wavelength float64) (SLD, error)
}

// NeutronSLD computes the neutron scattering length density of the formula
// with the given calculator. The second result is false when the formula's
// density is unknown, in which case the calculator is not consulted.
func (f *Formula) NeutronSLD(calc NeutronCalculator, wavelength float64) (SLD, bool, error) {
	d, ok := f.Density()
	if !ok {
		return SLD{}, false, nil
	}
	sld, err := calc.NeutronSLD(f.Atoms(), d, wavelength)
	return sld, true, err
}

// XRaySLD computes the x-ray scattering length density of the formula with
// the given calculator. The second result is false when the formula's
// density is unknown, in which case the calculator is not consulted.
func (f *Formula) XRaySLD(calc XRayCalculator, energy, wavelength float64) (SLD, bool, error) {
	d, ok := f.Density()
	if !ok {
		return SLD{}, false, nil
	}
	sld, err := calc.XRaySLD(f.Atoms(), d, energy, wavelength)
	return sld, true, err
}
