package periodictable

import "fmt"

// mixPair is one component of a mixture after argument conversion.
type mixPair struct {
	f *Formula
	q float64
}

// MixByWeight synthesizes a mixture apportioning each component by weight.
// parts alternates components (a formula string, *Formula, or Atom) and
// relative quantities (float64 or int). Components with a quantity of zero
// or less are dropped. If no Density override is given and every component
// has a known density, the mixture density is derived assuming the
// components occupy the same volume mixed as apart.
//
// An odd number of parts, a part that is not a formula, or a quantity that
// is not a number is a *PreconditionError.
func MixByWeight(parts []any, opts ...Option) (*Formula, error) {
	s := applySettings(opts)
	pairs, err := mixPairs(parts, s)
	if err != nil {
		return nil, err
	}
	pairs = dropEmpty(pairs)

	result := &Formula{}
	scale := 1.0
	if len(pairs) > 0 {
		// One cell of a component has mass f.Mass, so q/f.Mass cells reach
		// the target weight. Scale so the smallest component gets one cell.
		scale = pairs[0].q / pairs[0].f.Mass()
		for _, p := range pairs[1:] {
			if n := p.q / p.f.Mass(); n < scale {
				scale = n
			}
		}
		for _, p := range pairs {
			result.Extend(p.f.Mul(p.q / p.f.Mass() / scale))
		}
	}
	applyOverrides(result, s)

	if !result.hasDensity && len(pairs) > 0 && allDensities(pairs) {
		volume := 0.0
		for _, p := range pairs {
			d, _ := p.f.Density()
			volume += p.q / d
		}
		volume /= scale
		result.SetDensity(result.Mass() / volume)
	}
	return result, nil
}

// MixByVolume synthesizes a mixture apportioning each component by volume.
// Every component must have a known density; a missing density is a
// *PreconditionError. Argument handling is as for MixByWeight.
func MixByVolume(parts []any, opts ...Option) (*Formula, error) {
	s := applySettings(opts)
	pairs, err := mixPairs(parts, s)
	if err != nil {
		return nil, err
	}
	pairs = dropEmpty(pairs)
	if !allDensities(pairs) {
		return nil, &PreconditionError{Reason: "mixing by volume needs a density for each formula"}
	}

	result := &Formula{}
	scale := 1.0
	if len(pairs) > 0 {
		// One cell of a component occupies f.Mass/density, so q*density/f.Mass
		// cells reach the target volume.
		cells := func(p mixPair) float64 {
			d, _ := p.f.Density()
			return p.q * d / p.f.Mass()
		}
		scale = cells(pairs[0])
		for _, p := range pairs[1:] {
			if n := cells(p); n < scale {
				scale = n
			}
		}
		for _, p := range pairs {
			result.Extend(p.f.Mul(cells(p) / scale))
		}
	}
	applyOverrides(result, s)

	if !result.hasDensity && len(pairs) > 0 {
		volume := 0.0
		for _, p := range pairs {
			volume += p.q
		}
		volume /= scale
		result.SetDensity(result.Mass() / volume)
	}
	return result, nil
}

// mixPairs converts the alternating formula, quantity argument list.
func mixPairs(parts []any, s *settings) ([]mixPair, error) {
	if len(parts)%2 != 0 {
		return nil, &PreconditionError{Reason: "need a quantity for each formula"}
	}
	pairs := make([]mixPair, 0, len(parts)/2)
	for i := 0; i < len(parts); i += 2 {
		f, err := asFormula(parts[i], s)
		if err != nil {
			return nil, err
		}
		q, err := asQuantity(parts[i+1])
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, mixPair{f: f, q: q})
	}
	return pairs, nil
}

func asFormula(v any, s *settings) (*Formula, error) {
	switch v := v.(type) {
	case *Formula:
		return v, nil
	case string:
		nodes, err := s.parser().ParseTree(v)
		if err != nil {
			return nil, err
		}
		return newFormula(nodes, &settings{}), nil
	case Atom:
		return FromAtom(v), nil
	default:
		return nil, &PreconditionError{Reason: fmt.Sprintf("not a formula: %v (%T)", v, v)}
	}
}

func asQuantity(v any) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return 0, &PreconditionError{Reason: fmt.Sprintf("not a quantity: %v (%T)", v, v)}
	}
}

// dropEmpty removes pairs with nonpositive quantities before computation.
func dropEmpty(pairs []mixPair) []mixPair {
	kept := pairs[:0]
	for _, p := range pairs {
		if p.q > 0 {
			kept = append(kept, p)
		}
	}
	return kept
}

func allDensities(pairs []mixPair) bool {
	for _, p := range pairs {
		if _, ok := p.f.Density(); !ok {
			return false
		}
	}
	return true
}

// applyOverrides applies mixture metadata overrides after accumulation.
func applyOverrides(result *Formula, s *settings) {
	if s.hasNatural {
		result.SetNaturalDensity(s.naturalDensity)
	}
	if s.hasDensity {
		result.SetDensity(s.density)
	}
	if s.name != "" {
		result.name = s.name
	}
}
