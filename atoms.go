package periodictable

import "slices"

// AtomTally is the total count of each distinct atom across a formula tree.
// It is derived by Formula.Atoms, never hand-constructed, except as input to
// FromTally.
type AtomTally map[Atom]float64

// countAtoms flattens a tree into a tally. It is a pure function of the
// tree and safe to call concurrently on the same nodes.
func countAtoms(nodes []Node) AtomTally {
	total := make(AtomTally)
	addAtoms(total, nodes, 1)
	return total
}

// addAtoms accumulates the atoms of a subtree into total, with every count
// scaled by the product of the enclosing multipliers.
func addAtoms(total AtomTally, nodes []Node, scale float64) {
	for _, n := range nodes {
		if n.Atom != nil {
			total[n.Atom] += scale * n.Count
			continue
		}
		addAtoms(total, n.Group, scale*n.Count)
	}
}

// hillNodes converts a tally into the canonical flat tree in Hill notation:
// carbon first, hydrogen second, all other symbols alphabetically. Within a
// symbol the natural element sorts before its isotopes, and isotopes sort by
// ascending mass number.
func hillNodes(tally AtomTally) []Node {
	atoms := make([]Atom, 0, len(tally))
	for a := range tally {
		atoms = append(atoms, a)
	}
	slices.SortFunc(atoms, hillCompare)
	nodes := make([]Node, len(atoms))
	for i, a := range atoms {
		nodes[i] = leaf(tally[a], a)
	}
	return nodes
}

func hillCompare(a, b Atom) int {
	if ra, rb := hillRank(a.Symbol()), hillRank(b.Symbol()); ra != rb {
		return ra - rb
	}
	if as, bs := a.Symbol(), b.Symbol(); as != bs {
		if as < bs {
			return -1
		}
		return 1
	}
	return a.MassNumber() - b.MassNumber()
}

func hillRank(symbol string) int {
	switch symbol {
	case "C":
		return 0
	case "H":
		return 1
	default:
		return 2
	}
}
