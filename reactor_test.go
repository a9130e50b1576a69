package chemgine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemgine/chemgine/quantity"
)

func newTestReactor(maxVolume quantity.Quantity[quantity.Liter], overflow Container) *Reactor {
	return NewReactor(nil, nil, maxVolume, overflow, quantity.New[quantity.Celsius](20), newTestAmbientPressure())
}

// TestReactorTickWaterHeatingMatchesExpectedSequence is spec §8
// scenario 1: heating-only energy injections into a 3 mol water
// mixture never lower the polar layer's temperature (it climbs to the
// 100 degC boiling plateau and part of it vaporizes), and the final
// cooling injection leaves the polar layer at its 0 degC freezing floor.
func TestReactorTickWaterHeatingMatchesExpectedSequence(t *testing.T) {
	r := newTestReactor(quantity.New[quantity.Liter](1), NewDumpContainer())
	r.SetTickMode(TickAll &^ TickConduction)
	water := testMolecule(1, "water")
	r.AddReactant(Reactant{Molecule: water, Layer: Polar, Amount: quantity.New[quantity.Mole](3)})

	// The final injection is a large cooling step (spec §8 scenario 1's
	// documented sequence), driving the polar layer back down to its
	// freezing floor; every injection before it is heating-only and
	// must never decrease the temperature.
	injections := []float64{0, 7.5, 30.19, 264.19, 754.84, 6408.59, -7465.31}
	var lastTemp float64
	for i, perMole := range injections {
		r.AddEnergyToLayer(Polar, quantity.New[quantity.Joule](perMole*3))
		r.Tick(quantity.New[quantity.Second](1))

		l, ok := r.Layer(Polar)
		if !ok {
			continue
		}
		if i > 0 && i < len(injections)-1 {
			assert.GreaterOrEqual(t, l.Temperature.Value(), lastTemp-1e-6, "temperature should never drop under heating-only injections")
		}
		lastTemp = l.Temperature.Value()
	}

	l, ok := r.Layer(Polar)
	require.True(t, ok)
	assert.InDelta(t, 0, l.Temperature.Value(), 1e-6, "the final cooling injection should drive the polar layer back down to its freezing floor")
}

// TestReactorTickOverflowConservesVolumeAcrossTransfer is spec §8
// scenario 2 and property P2: volume moved out of the reactor appears
// in the overflow target.
func TestReactorTickOverflowConservesVolumeAcrossTransfer(t *testing.T) {
	atmosphere := NewMultiLayerMixture(quantity.Infinity[quantity.Liter](), nil, quantity.New[quantity.Celsius](20), newTestAmbientPressure())
	r := newTestReactor(quantity.New[quantity.Liter](20), atmosphere)
	water := testMolecule(1, "water")
	// 1200 mol * 18 g/mol at 1 g/mL is 21.6 L, above the 20 L cap, so
	// the tick has to move the excess into the overflow target.
	r.AddReactant(Reactant{Molecule: water, Layer: Polar, Amount: quantity.New[quantity.Mole](1200)})

	beforeReactor := r.TotalVolume().Value()
	beforeAtm := atmosphere.TotalVolume().Value()

	r.Tick(quantity.New[quantity.Second](1))

	afterReactor := r.TotalVolume().Value()
	afterAtm := atmosphere.TotalVolume().Value()

	assert.LessOrEqual(t, afterReactor, r.MaxVolume().Value()+1e-6)
	deltaReactor := afterReactor - beforeReactor
	deltaAtm := afterAtm - beforeAtm
	assert.InDelta(t, 0, deltaReactor+deltaAtm, 1e-3, "volume lost by the reactor should equal volume gained by the overflow target")
}

// TestReactorTickAggregationChangeReachesGasLayer is spec §8 scenario
// 3: enough repeated heating eventually moves all mass into the gas
// layer (or drives the layer to the Infinity temperature sentinel once
// it runs dry).
func TestReactorTickAggregationChangeReachesGasLayer(t *testing.T) {
	r := newTestReactor(quantity.New[quantity.Liter](0.1), nil)
	r.SetTickMode(TickAll &^ TickConduction)
	water := testMolecule(1, "water")
	r.AddReactant(Reactant{Molecule: water, Layer: Polar, Amount: quantity.New[quantity.Mole](5.4)})

	for i := 0; i < 25; i++ {
		r.AddEnergyToLayer(Polar, quantity.New[quantity.Joule](6000*5.4))
		r.Tick(quantity.New[quantity.Second](1))
		if l, ok := r.Layer(Polar); !ok || l.Temperature.IsInfinity() {
			break
		}
	}

	gas, ok := r.Layer(Gaseous)
	require.True(t, ok, "sustained heating should eventually populate the gas layer")
	assert.Greater(t, gas.Moles.Value(), 0.0)
}

// TestReactorTickReactantAmountsNeverGoNegative is property P3.
func TestReactorTickReactantAmountsNeverGoNegative(t *testing.T) {
	r := newTestReactor(quantity.Infinity[quantity.Liter](), nil)
	water := testMolecule(1, "water")
	r.AddReactant(Reactant{Molecule: water, Layer: Polar, Amount: quantity.New[quantity.Mole](1)})

	for i := 0; i < 10; i++ {
		r.AddEnergyToLayer(Polar, quantity.New[quantity.Joule](-1e9))
		r.Tick(quantity.New[quantity.Second](1))
	}

	r.reactants.Each(func(rt *Reactant) {
		assert.GreaterOrEqual(t, rt.Amount.Value(), 0.0)
	})
}

// TestReactorTickIsIdempotentOnInertSystem is property P5: ticking a
// mixture with no reaction network registered never mutates reactant
// amounts on its own (no spontaneous reactions).
func TestReactorTickIsIdempotentOnInertSystem(t *testing.T) {
	r := newTestReactor(quantity.Infinity[quantity.Liter](), nil)
	water := testMolecule(1, "water")
	r.AddReactant(Reactant{Molecule: water, Layer: Polar, Amount: quantity.New[quantity.Mole](3)})

	before := r.TotalMoles().Value()
	r.Tick(quantity.New[quantity.Second](1))
	r.Tick(quantity.New[quantity.Second](1))
	after := r.TotalMoles().Value()

	assert.InDelta(t, before, after, 1e-9)
}

// TestReactorTickIsDeterministic is property P6: two reactors built
// identically and ticked identically end up in the same state.
func TestReactorTickIsDeterministic(t *testing.T) {
	build := func() *Reactor {
		r := newTestReactor(quantity.New[quantity.Liter](5), NewDumpContainer())
		r.SetTickMode(TickAll &^ TickConduction)
		water := testMolecule(1, "water")
		r.AddReactant(Reactant{Molecule: water, Layer: Polar, Amount: quantity.New[quantity.Mole](2)})
		r.AddEnergyToLayer(Polar, quantity.New[quantity.Joule](500))
		return r
	}
	a, b := build(), build()
	for i := 0; i < 5; i++ {
		a.Tick(quantity.New[quantity.Second](1))
		b.Tick(quantity.New[quantity.Second](1))
	}

	assert.True(t, a.IsSame(b, 1e-6))
}

// TestReactorMakeCopyIsIndependent exercises spec §4.6.3: mutating the
// copy must not affect the original.
func TestReactorMakeCopyIsIndependent(t *testing.T) {
	r := newTestReactor(quantity.New[quantity.Liter](5), nil)
	water := testMolecule(1, "water")
	r.AddReactant(Reactant{Molecule: water, Layer: Polar, Amount: quantity.New[quantity.Mole](2)})

	cp := r.MakeCopy()
	cp.AddReactant(Reactant{Molecule: water, Layer: Polar, Amount: quantity.New[quantity.Mole](1)})

	assert.InDelta(t, 2, r.TotalMoles().Value(), 1e-9)
	assert.InDelta(t, 3, cp.TotalMoles().Value(), 1e-9)
}

// TestReactorTickReactiveMixtureConservesMass is spec §8 scenario 6:
// mass is conserved across ticks of a mixture with a reaction network
// that converts acetic acid + ethanol into ethyl acetate + water.
func TestReactorTickReactiveMixtureConservesMass(t *testing.T) {
	aceticAcid := testMolecule(1, "acetic acid")
	ethanol := testMolecule(2, "ethanol")
	ethylAcetate := testMolecule(3, "ethyl acetate")
	water := testMolecule(4, "water")
	molecules := map[string]*Molecule{
		"acetic acid":   aceticAcid,
		"ethanol":       ethanol,
		"ethyl acetate": ethylAcetate,
		"water":         water,
	}

	network := NewReactionNetwork()
	speedT, speedC := constantSpeed(0.01)
	esterification := &ReactionData{
		ID:   1,
		Name: "esterification",
		Reactants: []StructureRef{
			{Pattern: nameStructure{name: "acetic acid"}},
			{Pattern: nameStructure{name: "ethanol"}},
		},
		Products: []StructureRef{
			{Pattern: nameStructure{name: "ethyl acetate"}},
			{Pattern: nameStructure{name: "water"}},
		},
		SpeedT: speedT, SpeedC: speedC,
	}
	require.NoError(t, network.Insert(esterification))

	resolver := func(rule *ReactionData, idx int, reactants []*Reactant) (*Molecule, bool) {
		name := rule.Products[idx].Pattern.String()
		return molecules[name], true
	}

	r := NewReactor(network, resolver, quantity.Infinity[quantity.Liter](), nil, quantity.New[quantity.Celsius](20), newTestAmbientPressure())
	r.AddReactant(Reactant{Molecule: aceticAcid, Layer: Polar, Amount: quantity.New[quantity.Mole](2)})
	r.AddReactant(Reactant{Molecule: ethanol, Layer: Polar, Amount: quantity.New[quantity.Mole](3)})

	before := r.TotalMass().Value()
	for i := 0; i < 32; i++ {
		r.Tick(quantity.New[quantity.Second](1))
	}
	after := r.TotalMass().Value()

	assert.InDelta(t, before, after, 1e-5)
}
