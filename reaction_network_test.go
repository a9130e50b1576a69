package chemgine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemgine/chemgine/quantity"
)

func ruleWithPattern(id ReactionID, name string, reactant, product MolecularStructure) *ReactionData {
	speedT, speedC := constantSpeed(1)
	return &ReactionData{
		ID:        id,
		Name:      name,
		Reactants: []StructureRef{{Pattern: reactant}},
		Products:  []StructureRef{{Pattern: product}},
		SpeedT:    speedT, SpeedC: speedC,
	}
}

func TestReactionNetworkInsertAttachesSpecializationBelowGeneralization(t *testing.T) {
	n := NewReactionNetwork()
	general := ruleWithPattern(1, "any-acid neutralization", nameStructure{wildcard: true}, nameStructure{wildcard: true})
	specific := ruleWithPattern(2, "acetic acid neutralization", nameStructure{name: "acetic acid"}, nameStructure{name: "sodium acetate"})

	require.NoError(t, n.Insert(general))
	require.NoError(t, n.Insert(specific))

	require.Len(t, n.topLayer, 1)
	assert.Equal(t, general, n.topLayer[0].rule)
	require.Len(t, n.topLayer[0].children, 1)
	assert.Equal(t, specific, n.topLayer[0].children[0].rule)
}

func TestReactionNetworkInsertReparentsExistingSiblingUnderNewGeneralization(t *testing.T) {
	n := NewReactionNetwork()
	specific := ruleWithPattern(1, "acetic acid neutralization", nameStructure{name: "acetic acid"}, nameStructure{name: "sodium acetate"})
	general := ruleWithPattern(2, "any-acid neutralization", nameStructure{wildcard: true}, nameStructure{wildcard: true})

	// Insert the specific rule first, as a (temporary) top-layer root...
	require.NoError(t, n.Insert(specific))
	require.Len(t, n.topLayer, 1)

	// ...then a later, more general rule should adopt it as a child
	// rather than sitting beside it.
	require.NoError(t, n.Insert(general))

	require.Len(t, n.topLayer, 1)
	assert.Equal(t, general, n.topLayer[0].rule)
	require.Len(t, n.topLayer[0].children, 1)
	assert.Equal(t, specific, n.topLayer[0].children[0].rule)
}

func TestReactionNetworkInsertRejectsEquivalentRule(t *testing.T) {
	n := NewReactionNetwork()
	a := ruleWithPattern(1, "a", nameStructure{name: "water"}, nameStructure{name: "steam"})
	b := ruleWithPattern(2, "b", nameStructure{name: "water"}, nameStructure{name: "steam"})

	require.NoError(t, n.Insert(a))
	assert.ErrorIs(t, n.Insert(b), ErrDuplicateReaction)
	assert.Len(t, n.topLayer, 1)
}

func TestReactionNetworkGetOccurringReactionsPrefersMostSpecialized(t *testing.T) {
	n := NewReactionNetwork()
	general := ruleWithPattern(1, "any-acid neutralization", nameStructure{wildcard: true}, nameStructure{wildcard: true})
	specific := ruleWithPattern(2, "acetic acid neutralization", nameStructure{name: "acetic acid"}, nameStructure{name: "sodium acetate"})
	require.NoError(t, n.Insert(general))
	require.NoError(t, n.Insert(specific))

	aceticAcid := &Reactant{Molecule: testMolecule(1, "acetic acid")}
	occurring := n.getOccurringReactions([]*Reactant{aceticAcid})

	require.Len(t, occurring, 1, "only the specific rule should be reported, not its generalization")
	assert.Equal(t, specific, occurring[0].Rule)
}

func TestReactionNetworkGetOccurringReactionsFallsBackWhenNoChildMatches(t *testing.T) {
	n := NewReactionNetwork()
	general := ruleWithPattern(1, "any-acid neutralization", nameStructure{wildcard: true}, nameStructure{wildcard: true})
	specific := ruleWithPattern(2, "acetic acid neutralization", nameStructure{name: "acetic acid"}, nameStructure{name: "sodium acetate"})
	require.NoError(t, n.Insert(general))
	require.NoError(t, n.Insert(specific))

	formicAcid := &Reactant{Molecule: testMolecule(3, "formic acid")}
	occurring := n.getOccurringReactions([]*Reactant{formicAcid})

	require.Len(t, occurring, 1)
	assert.Equal(t, general, occurring[0].Rule, "the generalization still matches when no child pattern does")
}

func TestReactionNetworkMaxReactantCount(t *testing.T) {
	n := NewReactionNetwork()
	one := ruleWithPattern(1, "one-reactant", nameStructure{name: "water"}, nameStructure{name: "steam"})
	speedT, speedC := constantSpeed(1)
	two := &ReactionData{
		ID:   2,
		Name: "two-reactant",
		Reactants: []StructureRef{
			{Pattern: nameStructure{name: "acetic acid"}},
			{Pattern: nameStructure{name: "ethanol"}},
		},
		Products: []StructureRef{{Pattern: nameStructure{name: "ethyl acetate"}}},
		SpeedT:   speedT, SpeedC: speedC,
	}
	require.NoError(t, n.Insert(one))
	require.NoError(t, n.Insert(two))

	assert.Equal(t, 2, n.maxReactantCount())
}

func TestReactionNetworkGetRetrosynthReactions(t *testing.T) {
	n := NewReactionNetwork()
	rule := ruleWithPattern(1, "acetic acid neutralization", nameStructure{name: "acetic acid"}, nameStructure{name: "sodium acetate"})
	require.NoError(t, n.Insert(rule))

	found := n.GetRetrosynthReactions(nameStructure{name: "sodium acetate"})
	require.Len(t, found, 1)
	assert.Equal(t, rule, found[0].Rule)

	notFound := n.GetRetrosynthReactions(nameStructure{name: "water"})
	assert.Empty(t, notFound)
}

func TestReactionNetworkStringRendersTree(t *testing.T) {
	n := NewReactionNetwork()
	general := ruleWithPattern(1, "any-acid neutralization", nameStructure{wildcard: true}, nameStructure{wildcard: true})
	specific := ruleWithPattern(2, "acetic acid neutralization", nameStructure{name: "acetic acid"}, nameStructure{name: "sodium acetate"})
	require.NoError(t, n.Insert(general))
	require.NoError(t, n.Insert(specific))

	tree := n.String()
	lines := strings.Split(strings.TrimRight(tree, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "any-acid neutralization", lines[0])
	assert.Equal(t, "  acetic acid neutralization", lines[1])
}
