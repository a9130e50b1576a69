package chemgine

import "github.com/chemgine/chemgine/quantity"

// ReactionID is assigned by the DataStore, same treatment as MoleculeID.
type ReactionID uint32

// StructureRef is a structural pattern a reaction rule matches
// reactants, products, or catalysts against (spec §3.8). Patterns may
// themselves contain radical atoms for component_map resolution.
type StructureRef struct {
	Pattern MolecularStructure
}

// CatalystRef pairs a catalyst pattern with its ideal concentration
// ratio (spec §3.8; the ideal ratio is not yet used by the
// concentration-aware refinement §4.6.1.b defers to a future extension).
type CatalystRef struct {
	Pattern    MolecularStructure
	IdealRatio quantity.Quantity[quantity.MoleRatio]
}

// ComponentMapping resolves a radical atom of a product structure to
// the atom of a concrete reactant it is grafted from (spec §4.5.3).
type ComponentMapping struct {
	ReactantIndex int
	ReactantAtom  int
	ProductIndex  int
	ProductAtom   int
}

// ReactionData is an immutable reaction rule, spec §3.8.
type ReactionData struct {
	ID               ReactionID
	Name             string
	IsCut            bool
	Reactants        []StructureRef
	Products         []StructureRef
	Catalysts        []CatalystRef
	ReactionEnergy   quantity.Quantity[quantity.JoulePerMole]
	ActivationEnergy quantity.Quantity[quantity.JoulePerMole]
	SpeedT           Estimator1[quantity.Celsius, quantity.MolePerSecond]
	SpeedC           Estimator1[quantity.MoleRatio, quantity.None]
	ComponentMap     []ComponentMapping
}

// Speed implements spec §4.5.4: speed(T, c) = speed_t(T) * speed_c(c).
func (d *ReactionData) Speed(t quantity.Quantity[quantity.Celsius], c quantity.Quantity[quantity.MoleRatio]) float64 {
	return d.SpeedT(t).Value() * d.SpeedC(c).Value()
}

// bipartiteMatch reports whether every element of as can be paired
// with a distinct element of bs under matches, backtracking over the
// (small) rule arity. Grounded on
// original_source/core/src/reactions/ReactionData.cpp's
// isSpecializationOf, which performs the same distinct-pairing search.
func bipartiteMatch(as, bs []MolecularStructure, matches func(a, b MolecularStructure) bool) bool {
	used := make([]bool, len(bs))
	var try func(i int) bool
	try = func(i int) bool {
		if i == len(as) {
			return true
		}
		for j, b := range bs {
			if used[j] || !matches(as[i], b) {
				continue
			}
			used[j] = true
			if try(i + 1) {
				return true
			}
			used[j] = false
		}
		return false
	}
	return try(0)
}

func structurePatterns(refs []StructureRef) []MolecularStructure {
	out := make([]MolecularStructure, len(refs))
	for i, r := range refs {
		out[i] = r.Pattern
	}
	return out
}

func catalystPatterns(refs []CatalystRef) []MolecularStructure {
	out := make([]MolecularStructure, len(refs))
	for i, r := range refs {
		out[i] = r.Pattern
	}
	return out
}

// IsSpecializationOf implements spec §4.5.1: every reactant (and
// product) pattern of d matches a distinct pattern of other in the
// same direction (other, the generalisation, matches d, the specific
// pattern); every catalyst of other is matched by a distinct catalyst
// of d, direction reversed.
func (d *ReactionData) IsSpecializationOf(other *ReactionData) bool {
	matchesAsPattern := func(specific, general MolecularStructure) bool {
		_, ok := general.MatchWith(specific)
		return ok
	}
	if !bipartiteMatch(structurePatterns(d.Reactants), structurePatterns(other.Reactants), matchesAsPattern) {
		return false
	}
	if !bipartiteMatch(structurePatterns(d.Products), structurePatterns(other.Products), matchesAsPattern) {
		return false
	}
	// Direction reversed: d's catalysts act as the patterns, and each
	// must match a distinct catalyst of other.
	if !bipartiteMatch(catalystPatterns(other.Catalysts), catalystPatterns(d.Catalysts), matchesAsPattern) {
		return false
	}
	return true
}

// IsEquivalentTo implements spec §4.5.1: mutual specialization with
// matching counts.
func (d *ReactionData) IsEquivalentTo(other *ReactionData) bool {
	if len(d.Reactants) != len(other.Reactants) ||
		len(d.Products) != len(other.Products) ||
		len(d.Catalysts) != len(other.Catalysts) {
		return false
	}
	return d.IsSpecializationOf(other) && other.IsSpecializationOf(d)
}
