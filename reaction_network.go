package chemgine

import "strings"

// reactionNode is one vertex of the specialization DAG of spec §3.8:
// edges run from generalisations to specialisations.
type reactionNode struct {
	rule     *ReactionData
	children []*reactionNode
}

// ReactionNetwork is the DAG of reaction rules ordered by
// specialization, grounded on
// original_source/core/src/reactions/ReactionNetwork.cpp.
type ReactionNetwork struct {
	topLayer []*reactionNode
	byID     map[ReactionID]*reactionNode
}

func NewReactionNetwork() *ReactionNetwork {
	return &ReactionNetwork{byID: make(map[ReactionID]*reactionNode)}
}

// Insert implements spec §4.5.2: descend from every top-layer root
// looking for the most specific existing generalisation of rule;
// attach rule below it and re-parent any node that is itself a
// specialisation of rule. A rule equivalent to an existing one is
// rejected with a warning.
func (n *ReactionNetwork) Insert(rule *ReactionData) error {
	parent := n.findMostSpecificGeneralization(rule)
	node := &reactionNode{rule: rule}

	if parent == nil {
		for _, root := range n.topLayer {
			if root.rule.IsEquivalentTo(rule) {
				log().WithField("reaction", rule.Name).Warn("duplicate reaction rule rejected")
				return ErrDuplicateReaction
			}
		}
		n.reparentAndAttach(&n.topLayer, node)
	} else {
		if parent.rule.IsEquivalentTo(rule) {
			log().WithField("reaction", rule.Name).Warn("duplicate reaction rule rejected")
			return ErrDuplicateReaction
		}
		n.reparentAndAttach(&parent.children, node)
	}
	n.byID[rule.ID] = node
	return nil
}

// findMostSpecificGeneralization walks every branch whose rule rule is
// a specialization of, returning the deepest (most specific) match.
func (n *ReactionNetwork) findMostSpecificGeneralization(rule *ReactionData) *reactionNode {
	var best *reactionNode
	bestDepth := -1
	var walk func(node *reactionNode, depth int)
	walk = func(node *reactionNode, depth int) {
		if !rule.IsSpecializationOf(node.rule) {
			return
		}
		if depth > bestDepth {
			best = node
			bestDepth = depth
		}
		for _, c := range node.children {
			walk(c, depth+1)
		}
	}
	for _, root := range n.topLayer {
		walk(root, 0)
	}
	return best
}

// reparentAndAttach moves every existing sibling that is a
// specialization of node's rule underneath node, then appends node to
// siblings — "remove now-redundant direct edges" from spec §4.5.2.
func (n *ReactionNetwork) reparentAndAttach(siblings *[]*reactionNode, node *reactionNode) {
	var remaining []*reactionNode
	for _, sib := range *siblings {
		if sib.rule.IsSpecializationOf(node.rule) {
			node.children = append(node.children, sib)
		} else {
			remaining = append(remaining, sib)
		}
	}
	*siblings = append(remaining, node)
}

func matchesReactants(rule *ReactionData, candidate []*Reactant) bool {
	if len(rule.Reactants) != len(candidate) {
		return false
	}
	for i, ref := range rule.Reactants {
		if ref.Pattern.IsVirtualHydrogen() {
			continue
		}
		if _, ok := ref.Pattern.MatchWith(candidate[i].Molecule.Structure); !ok {
			return false
		}
	}
	return true
}

// getOccurringReactions implements spec §4.5.3's top-down walk:
// prefer the most specialised matching node, falling back to a
// shallower node only when none of its children also match.
func (n *ReactionNetwork) getOccurringReactions(candidate []*Reactant) []ConcreteReaction {
	var out []ConcreteReaction
	var walk func(node *reactionNode) bool
	walk = func(node *reactionNode) bool {
		if !matchesReactants(node.rule, candidate) {
			return false
		}
		childMatched := false
		for _, c := range node.children {
			if walk(c) {
				childMatched = true
			}
		}
		if !childMatched {
			out = append(out, ConcreteReaction{Rule: node.rule, Reactants: append([]*Reactant(nil), candidate...)})
		}
		return true
	}
	for _, root := range n.topLayer {
		walk(root)
	}
	return out
}

// maxReactantCount is the largest reactant-pattern arity of any rule
// in the network, bounding the arrangement enumeration in
// Reactor.findNewReactions (spec §4.6.1.a).
func (n *ReactionNetwork) maxReactantCount() int {
	max := 1
	var walk func(node *reactionNode)
	walk = func(node *reactionNode) {
		if len(node.rule.Reactants) > max {
			max = len(node.rule.Reactants)
		}
		for _, c := range node.children {
			walk(c)
		}
	}
	for _, root := range n.topLayer {
		walk(root)
	}
	return max
}

// GetRetrosynthReactions returns, for every rule whose product set
// matches target, a reverse rule application: given target, the
// reactant patterns that would produce it. This mirrors
// ReactionNetwork::getRetrosynthReactions from
// original_source/core/src/reactions/kinds/RetrosynthReaction.cpp —
// tooling support, never called from Reactor.Tick.
func (n *ReactionNetwork) GetRetrosynthReactions(target MolecularStructure) []RetrosynthReaction {
	var out []RetrosynthReaction
	var walk func(node *reactionNode)
	walk = func(node *reactionNode) {
		for _, p := range node.rule.Products {
			if _, ok := p.Pattern.MatchWith(target); ok {
				out = append(out, RetrosynthReaction{Rule: node.rule, Target: target})
				break
			}
		}
		for _, c := range node.children {
			walk(c)
		}
	}
	for _, root := range n.topLayer {
		walk(root)
	}
	return out
}

// String renders the specialization DAG as an indented ASCII tree,
// adapted from ReactionNetwork::print.
func (n *ReactionNetwork) String() string {
	var b strings.Builder
	var walk func(node *reactionNode, depth int)
	walk = func(node *reactionNode, depth int) {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(node.rule.Name)
		b.WriteString("\n")
		for _, c := range node.children {
			walk(c, depth+1)
		}
	}
	for _, root := range n.topLayer {
		walk(root, 0)
	}
	return b.String()
}

// RetrosynthReaction is a reverse rule application: given a target
// product structure, identify the rule (and, by extension, the
// reactant patterns) that would produce it. Used by tooling, not the
// forward tick engine (spec GLOSSARY).
type RetrosynthReaction struct {
	Rule   *ReactionData
	Target MolecularStructure
}
