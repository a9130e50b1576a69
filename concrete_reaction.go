package chemgine

import (
	"sort"
	"strconv"
	"strings"
)

// ProductResolver builds or looks up the concrete Molecule a reaction
// rule's productIndex'th pattern resolves to, given the concrete
// reactants it is firing against. Grafting a product skeleton from
// component_map radical atoms is a MolecularStructure capability
// outside the opaque contract of §6.3 (the core never constructs
// structures); hosts supply this the same way they supply Molecule
// estimators — an injected collaborator, not a core responsibility.
type ProductResolver func(rule *ReactionData, productIndex int, reactants []*Reactant) (*Molecule, bool)

// ConcreteReaction is a reaction rule with every reactant pattern
// resolved to a specific Reactant of a mixture, per spec §3.8's
// "concrete reaction" glossary entry.
type ConcreteReaction struct {
	Rule      *ReactionData
	Reactants []*Reactant
}

// ConcreteReactionKey is the comparable hash/equality surrogate for a
// ConcreteReaction (which itself holds a slice and so is not
// `comparable`), grounded on
// original_source/Chemgine/ConcreteReaction.*'s operator==/hash. It is
// the element type stored in a Reactor's cached-reaction set.
type ConcreteReactionKey struct {
	RuleID    ReactionID
	Reactants string
}

func newConcreteReactionKey(rule *ReactionData, reactants []*Reactant) ConcreteReactionKey {
	ids := make([]string, len(reactants))
	for i, r := range reactants {
		ids[i] = strconv.Itoa(int(r.Molecule.ID)) + ":" + strconv.Itoa(int(r.Layer))
	}
	sort.Strings(ids)
	return ConcreteReactionKey{RuleID: rule.ID, Reactants: strings.Join(ids, "|")}
}

func (c ConcreteReaction) Key() ConcreteReactionKey {
	return newConcreteReactionKey(c.Rule, c.Reactants)
}
