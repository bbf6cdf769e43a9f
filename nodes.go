package periodictable

import (
	"math"
	"strconv"
	"strings"
)

// Node is one term of a formula tree: a multiplier applied to either a
// single atom or a nested group of further terms. Exactly one of Atom and
// Group is set. Trees are built once and never mutated; every operation
// that changes a formula builds a new tree.
type Node struct {
	// Count is the multiplier. It is a positive real number, integer-valued
	// unless fractional counts were supplied.
	Count float64
	// Atom is the leaf atom, or nil for a group node.
	Atom Atom
	// Group is the ordered child sequence of a group node.
	Group []Node
}

// leaf and group are shortcuts for building nodes.
func leaf(count float64, a Atom) Node {
	return Node{Count: count, Atom: a}
}

func group(count float64, children []Node) Node {
	return Node{Count: count, Group: children}
}

// validateNodes checks that a hand-built tree has the required shape: every
// multiplier positive and finite, every node either a leaf atom or a
// non-empty nested sequence of the same shape.
func validateNodes(nodes []Node) error {
	for _, n := range nodes {
		if math.IsNaN(n.Count) || math.IsInf(n.Count, 0) || n.Count <= 0 {
			return &StructureError{Reason: "multiplier " + formatCount(n.Count) + " is not a positive number"}
		}
		switch {
		case n.Atom != nil && n.Group != nil:
			return &StructureError{Reason: "node has both an atom and a group"}
		case n.Atom == nil && len(n.Group) == 0:
			return &StructureError{Reason: "node has neither an atom nor a group"}
		case n.Group != nil:
			if err := validateNodes(n.Group); err != nil {
				return err
			}
		}
	}
	return nil
}

// copyNodes deep-copies a tree so that the result shares no slices with its
// source.
func copyNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = n
		if n.Group != nil {
			out[i].Group = copyNodes(n.Group)
		}
	}
	return out
}

// sameAtom reports whether two atoms denote the same atomic unit. Atoms from
// the same table are canonical values, but atoms from different resolvers
// are compared by symbol and mass number.
func sameAtom(a, b Atom) bool {
	if a == b {
		return true
	}
	return a.Symbol() == b.Symbol() && a.MassNumber() == b.MassNumber()
}

// equalNodes reports structural equality of two trees: same shape, same
// multipliers, same atoms, in the same order.
func equalNodes(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Count != b[i].Count {
			return false
		}
		switch {
		case a[i].Atom != nil:
			if b[i].Atom == nil || !sameAtom(a[i].Atom, b[i].Atom) {
				return false
			}
		default:
			if b[i].Atom != nil || !equalNodes(a[i].Group, b[i].Group) {
				return false
			}
		}
	}
	return true
}

// renderNodes reconstructs formula notation for a tree. A leaf renders as
// its atom followed by its count when the count is not 1; a group with a
// count of 1 renders its children inline, otherwise parenthesized and
// suffixed with the count.
func renderNodes(b *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		if n.Atom != nil {
			b.WriteString(n.Atom.String())
			if n.Count != 1 {
				b.WriteString(formatCount(n.Count))
			}
			continue
		}
		if n.Count == 1 {
			renderNodes(b, n.Group)
			continue
		}
		b.WriteByte('(')
		renderNodes(b, n.Group)
		b.WriteByte(')')
		b.WriteString(formatCount(n.Count))
	}
}

// formatCount renders a count in compact form: no trailing ".0" on
// integer-valued counts, and no exponent, so that rendered notation
// always parses back.
func formatCount(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}
