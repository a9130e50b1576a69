package chemgine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chemgine/chemgine/quantity"
)

// TestForwardingContainerRoutesByPredicate is spec §8 scenario 5: a
// rule matching water routes it to reactorG; everything else falls
// through to the default (dump) target.
func TestForwardingContainerRoutesByPredicate(t *testing.T) {
	dump := NewDumpContainer()
	reactorG := NewMultiLayerMixture(quantity.Infinity[quantity.Liter](), nil, quantity.New[quantity.Celsius](20), newTestAmbientPressure())
	fwd := NewForwardingContainer(dump)
	fwd.Rules = append(fwd.Rules, ForwardingRule{
		Predicate: nameStructure{name: "water"},
		Target:    reactorG,
	})

	water := testMolecule(1, "water")
	oxygen := testMolecule(2, "oxygen")
	fwd.AddReactant(Reactant{Molecule: water, Layer: Polar, Amount: quantity.New[quantity.Mole](1)})
	fwd.AddReactant(Reactant{Molecule: oxygen, Layer: Gaseous, Amount: quantity.New[quantity.Mole](1)})

	assert.InDelta(t, 1, reactorG.TotalMoles().Value(), 1e-9)
	assert.Greater(t, dump.TotalMass().Value(), 0.0)
}

func TestForwardingContainerFanOutToMultipleRules(t *testing.T) {
	dump := NewDumpContainer()
	a := NewMultiLayerMixture(quantity.Infinity[quantity.Liter](), nil, quantity.New[quantity.Celsius](20), newTestAmbientPressure())
	b := NewMultiLayerMixture(quantity.Infinity[quantity.Liter](), nil, quantity.New[quantity.Celsius](20), newTestAmbientPressure())
	fwd := NewForwardingContainer(dump)
	fwd.Rules = append(fwd.Rules,
		ForwardingRule{Predicate: nameStructure{name: "water", wildcard: true}, Target: a},
		ForwardingRule{Predicate: nameStructure{name: "water", wildcard: true}, Target: b},
	)

	water := testMolecule(1, "water")
	fwd.AddReactant(Reactant{Molecule: water, Layer: Polar, Amount: quantity.New[quantity.Mole](1)})

	assert.InDelta(t, 1, a.TotalMoles().Value(), 1e-9, "a matching reactant is forwarded whole to every matching rule")
	assert.InDelta(t, 1, b.TotalMoles().Value(), 1e-9)
}

func TestForwardingContainerDividesEnergyAcrossRules(t *testing.T) {
	a := NewMultiLayerMixture(quantity.Infinity[quantity.Liter](), nil, quantity.New[quantity.Celsius](20), newTestAmbientPressure())
	b := NewMultiLayerMixture(quantity.Infinity[quantity.Liter](), nil, quantity.New[quantity.Celsius](20), newTestAmbientPressure())
	water := testMolecule(1, "water")
	a.AddReactant(Reactant{Molecule: water, Layer: Polar, Amount: quantity.New[quantity.Mole](1)})
	b.AddReactant(Reactant{Molecule: water, Layer: Polar, Amount: quantity.New[quantity.Mole](1)})

	fwd := NewForwardingContainer(nil)
	fwd.Rules = append(fwd.Rules,
		ForwardingRule{Predicate: nameStructure{wildcard: true}, Target: a},
		ForwardingRule{Predicate: nameStructure{wildcard: true}, Target: b},
	)
	fwd.AddEnergy(quantity.New[quantity.Joule](100))

	la, _ := a.Layer(Polar)
	lb, _ := b.Layer(Polar)
	assert.InDelta(t, 50, la.PotentialEnergy.Value(), 1e-9)
	assert.InDelta(t, 50, lb.PotentialEnergy.Value(), 1e-9)
}
