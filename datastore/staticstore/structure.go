package staticstore

import "github.com/chemgine/chemgine"

// NamedStructure is a minimal chemgine.MolecularStructure stand-in for
// tests and the demo command: identity is a plain string, and
// MatchWith succeeds exactly when two structures share that name. The
// real structure/parser library is an external collaborator out of
// the core's scope (spec.md §1); this is only a test double letting
// the demo and test suites construct Molecules and reaction patterns
// without one.
type NamedStructure struct {
	Name       string
	VirtualH   bool
	FreedomDOF int
}

func (s NamedStructure) IsVirtualHydrogen() bool { return s.VirtualH }

func (s NamedStructure) MatchWith(concrete chemgine.MolecularStructure) (map[int]int, bool) {
	return map[int]int{}, s.Name == concrete.String()
}

func (s NamedStructure) DegreesOfFreedom() int { return s.FreedomDOF }

func (s NamedStructure) String() string { return s.Name }
