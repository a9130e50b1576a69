package main

import (
	"fmt"

	"github.com/chemgine/chemgine"
	"github.com/chemgine/chemgine/datastore/staticstore"
	"github.com/chemgine/chemgine/quantity"
)

// printLayer reports one layer's bulk state, the per-tick observation
// every scenario below is built around.
func printLayer(label string, l *chemgine.Layer) {
	if l == nil {
		fmt.Printf("  %-10s (empty)\n", label)
		return
	}
	fmt.Printf("  %-10s T=%8.3f degC  moles=%8.4f  mass=%10.3f g  vol=%8.4f L  Ep=%10.2f J\n",
		label, l.Temperature.Value(), l.Moles.Value(), l.Mass.Value(), l.Volume.Value(), l.PotentialEnergy.Value())
}

// runWaterHeating is spec §8 scenario 1: a water-only polar layer
// heated one energy injection at a time with conduction disabled, so
// the polar layer's temperature climbs in isolation from the
// atmosphere above it.
func runWaterHeating() {
	fmt.Println("=== water-heating ===")
	store := staticstore.New()
	mols := buildDemoMolecules(store)

	atm := chemgine.CreateDefaultAtmosphere(mols.Nitrogen, mols.Oxygen)
	reactor := chemgine.NewReactor(
		chemgine.NewReactionNetwork(), nil,
		quantity.New[quantity.Liter](1.0), atm,
		quantity.New[quantity.Celsius](1), standardPressure(),
	)
	reactor.SetTickMode(chemgine.TickAll &^ chemgine.TickConduction)
	reactor.AddReactant(chemgine.Reactant{Molecule: mols.Water, Layer: chemgine.Polar, Amount: quantity.New[quantity.Mole](3.0)})

	energiesPerMol := []float64{0, 7.5, 30.19, 264.19, 754.84, 6408.59, -7465.31}
	for i, ePerMol := range energiesPerMol {
		reactor.AddEnergyToLayer(chemgine.Polar, quantity.New[quantity.Joule](ePerMol*3.0))
		reactor.Tick(quantity.New[quantity.Second](1))
		l, _ := reactor.Layer(chemgine.Polar)
		fmt.Printf("tick %d (+%.2f J/mol):\n", i, ePerMol)
		printLayer("polar", l)
	}
}

// runOverflow is spec §8 scenario 2 on a bounded Reactor whose
// overflow target is the surrounding Atmosphere. The 700 mol of demo
// water fill about 12.6 L, under the 20 L cap, so nothing overflows
// and the printed atmosphere change is 0. Volume above the cap would
// go to the Atmosphere, which drops polar matter since it has no
// incompatibility target.
func runOverflow() {
	fmt.Println("=== overflow ===")
	store := staticstore.New()
	mols := buildDemoMolecules(store)

	atm := chemgine.CreateDefaultAtmosphere(mols.Nitrogen, mols.Oxygen)
	beforeAtmVol := atm.TotalVolume().Value()

	reactor := chemgine.NewReactor(
		chemgine.NewReactionNetwork(), nil,
		quantity.New[quantity.Liter](20), atm,
		quantity.New[quantity.Celsius](1), standardPressure(),
	)
	reactor.AddReactant(chemgine.Reactant{Molecule: mols.Water, Layer: chemgine.Polar, Amount: quantity.New[quantity.Mole](700)})
	reactor.Tick(quantity.New[quantity.Second](1))

	fmt.Printf("reactor total volume after tick: %.4f L (cap 20 L)\n", reactor.TotalVolume().Value())
	fmt.Printf("atmosphere volume change: %.8f L\n", atm.TotalVolume().Value()-beforeAtmVol)
}

// runAggregationChange is spec §8 scenario 3: repeatedly injecting
// energy into a small polar layer with conduction disabled drives it
// to its boiling point, then boils its nucleator reactant up into the
// gas layer above, with temperature eventually reporting the Infinity
// sentinel once the polar layer empties out.
func runAggregationChange() {
	fmt.Println("=== aggregation-change ===")
	store := staticstore.New()
	mols := buildDemoMolecules(store)

	atm := chemgine.CreateDefaultAtmosphere(mols.Nitrogen, mols.Oxygen)
	reactor := chemgine.NewReactor(
		chemgine.NewReactionNetwork(), nil,
		quantity.New[quantity.Liter](0.1), atm,
		quantity.New[quantity.Celsius](1), standardPressure(),
	)
	reactor.SetTickMode(chemgine.TickAll &^ chemgine.TickConduction)
	reactor.AddReactant(chemgine.Reactant{Molecule: mols.Water, Layer: chemgine.Polar, Amount: quantity.New[quantity.Mole](5.4)})

	const steps = 25
	for i := 0; i < steps; i++ {
		reactor.AddEnergyToLayer(chemgine.Polar, quantity.New[quantity.Joule](6000*5.4))
		reactor.Tick(quantity.New[quantity.Second](1))
		polar, _ := reactor.Layer(chemgine.Polar)
		gas, _ := reactor.Layer(chemgine.Gaseous)
		fmt.Printf("tick %d:\n", i)
		printLayer("polar", polar)
		printLayer("gas", gas)
		if polar != nil && polar.Temperature.IsInfinity() {
			fmt.Println("polar layer emptied; remaining energy forwarded to the gas layer")
			break
		}
	}
}

// runForwarding is spec §8 scenarios 4 and 5: a SingleLayerMixture
// routes foreign-layer reactants to its registered incompatibility
// target instead of dropping them, and a ForwardingContainer fans
// matter out to distinct targets by structural predicate.
func runForwarding() {
	fmt.Println("=== forwarding ===")
	store := staticstore.New()
	mols := buildDemoMolecules(store)

	fmt.Println("-- incompatibility target --")
	reactorSink := chemgine.NewMultiLayerMixture(
		quantity.Infinity[quantity.Liter](), nil,
		quantity.New[quantity.Celsius](20), standardPressure(),
	)
	gas := chemgine.CreateSubatmosphere(quantity.New[quantity.Liter](1000))
	gas.SetIncompatibilityTarget(chemgine.Polar, reactorSink)

	gas.AddReactant(chemgine.Reactant{Molecule: mols.Water, Layer: chemgine.Polar, Amount: quantity.New[quantity.Mole](1)})
	gas.AddReactant(chemgine.Reactant{Molecule: mols.Oxygen, Layer: chemgine.Gaseous, Amount: quantity.New[quantity.Mole](1)})
	fmt.Printf("gas mixture total moles: %.4f (expect 1, the O2)\n", gas.TotalMoles().Value())
	if l, ok := reactorSink.Layer(chemgine.Polar); ok {
		fmt.Printf("forwarded reactor sink polar moles: %.4f (expect 1, the water)\n", l.Moles.Value())
	}

	fmt.Println("-- ForwardingContainer fan-out --")
	dump := chemgine.NewDumpContainer()
	reactorG := chemgine.NewMultiLayerMixture(
		quantity.Infinity[quantity.Liter](), nil,
		quantity.New[quantity.Celsius](20), standardPressure(),
	)
	fwd := chemgine.NewForwardingContainer(dump)
	fwd.Rules = append(fwd.Rules, chemgine.ForwardingRule{
		Predicate: staticstore.NamedStructure{Name: "H2O"},
		Target:    reactorG,
	})

	fwd.AddReactant(chemgine.Reactant{Molecule: mols.Water, Layer: chemgine.Polar, Amount: quantity.New[quantity.Mole](1)})
	fwd.AddReactant(chemgine.Reactant{Molecule: mols.Oxygen, Layer: chemgine.Gaseous, Amount: quantity.New[quantity.Mole](1)})
	fmt.Printf("reactor_G total moles: %.4f (expect 1, the water)\n", reactorG.TotalMoles().Value())
	fmt.Printf("dump total mass: %.4f g (expect ~32, the O2)\n", dump.TotalMass().Value())
}
