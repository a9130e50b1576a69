package main

import (
	"github.com/chemgine/chemgine"
	"github.com/chemgine/chemgine/datastore/staticstore"
	"github.com/chemgine/chemgine/quantity"
)

// demoMolecules builds the handful of species every scenario draws
// from, as Go literals rather than anything loaded from a file (spec
// §11): water, nitrogen, oxygen, acetic acid and ethanol, each wired
// to constant estimators where the scenarios never exercise a real
// temperature/pressure dependence.
type demoMolecules struct {
	Water       *chemgine.Molecule
	Nitrogen    *chemgine.Molecule
	Oxygen      *chemgine.Molecule
	AceticAcid  *chemgine.Molecule
	Ethanol     *chemgine.Molecule
}

func buildDemoMolecules(store *staticstore.Store) *demoMolecules {
	next := chemgine.MoleculeID(1)
	newID := func() chemgine.MoleculeID {
		id := next
		next++
		return id
	}

	water := &chemgine.Molecule{
		ID:        newID(),
		Name:      "water",
		Structure: staticstore.NamedStructure{Name: "H2O"},
		MolarMass: quantity.New[quantity.GramPerMole](18.015),
		Polarity:  1.0,
		MeltingPointAt:     chemgine.ConstantEstimator1[quantity.Pascal, quantity.Celsius](quantity.New[quantity.Celsius](0)),
		BoilingPointAt:     chemgine.ConstantEstimator1[quantity.Pascal, quantity.Celsius](quantity.New[quantity.Celsius](100)),
		DensityAt:          chemgine.ConstantEstimator2[quantity.Celsius, quantity.Pascal, quantity.GramPerMilliliter](quantity.New[quantity.GramPerMilliliter](1.0)),
		HeatCapacityAt:     chemgine.ConstantEstimator2[quantity.Celsius, quantity.Pascal, quantity.JoulePerMoleCelsius](quantity.New[quantity.JoulePerMoleCelsius](75.3)),
		FusionHeatAt:       chemgine.ConstantEstimator1[quantity.Pascal, quantity.JoulePerMole](quantity.New[quantity.JoulePerMole](6010)),
		VaporizationHeatAt: chemgine.ConstantEstimator1[quantity.Pascal, quantity.JoulePerMole](quantity.New[quantity.JoulePerMole](40660)),
		RelativeSolubility: chemgine.ConstantEstimator1[quantity.Celsius, quantity.MoleRatio](quantity.New[quantity.MoleRatio](1.0)),
	}

	nitrogen := &chemgine.Molecule{
		ID:        newID(),
		Name:      "nitrogen",
		Structure: staticstore.NamedStructure{Name: "N2"},
		MolarMass: quantity.New[quantity.GramPerMole](28.014),
		Polarity:  0.0,
		MeltingPointAt:     chemgine.ConstantEstimator1[quantity.Pascal, quantity.Celsius](quantity.New[quantity.Celsius](-210)),
		BoilingPointAt:     chemgine.ConstantEstimator1[quantity.Pascal, quantity.Celsius](quantity.New[quantity.Celsius](-196)),
		DensityAt:          chemgine.ConstantEstimator2[quantity.Celsius, quantity.Pascal, quantity.GramPerMilliliter](quantity.New[quantity.GramPerMilliliter](0.00125)),
		HeatCapacityAt:     chemgine.ConstantEstimator2[quantity.Celsius, quantity.Pascal, quantity.JoulePerMoleCelsius](quantity.New[quantity.JoulePerMoleCelsius](29.1)),
		FusionHeatAt:       chemgine.ConstantEstimator1[quantity.Pascal, quantity.JoulePerMole](quantity.New[quantity.JoulePerMole](720)),
		VaporizationHeatAt: chemgine.ConstantEstimator1[quantity.Pascal, quantity.JoulePerMole](quantity.New[quantity.JoulePerMole](5570)),
		RelativeSolubility: chemgine.ConstantEstimator1[quantity.Celsius, quantity.MoleRatio](quantity.New[quantity.MoleRatio](0.0)),
	}

	oxygen := &chemgine.Molecule{
		ID:        newID(),
		Name:      "oxygen",
		Structure: staticstore.NamedStructure{Name: "O2"},
		MolarMass: quantity.New[quantity.GramPerMole](31.998),
		Polarity:  0.0,
		MeltingPointAt:     chemgine.ConstantEstimator1[quantity.Pascal, quantity.Celsius](quantity.New[quantity.Celsius](-218)),
		BoilingPointAt:     chemgine.ConstantEstimator1[quantity.Pascal, quantity.Celsius](quantity.New[quantity.Celsius](-183)),
		DensityAt:          chemgine.ConstantEstimator2[quantity.Celsius, quantity.Pascal, quantity.GramPerMilliliter](quantity.New[quantity.GramPerMilliliter](0.00143)),
		HeatCapacityAt:     chemgine.ConstantEstimator2[quantity.Celsius, quantity.Pascal, quantity.JoulePerMoleCelsius](quantity.New[quantity.JoulePerMoleCelsius](29.4)),
		FusionHeatAt:       chemgine.ConstantEstimator1[quantity.Pascal, quantity.JoulePerMole](quantity.New[quantity.JoulePerMole](444)),
		VaporizationHeatAt: chemgine.ConstantEstimator1[quantity.Pascal, quantity.JoulePerMole](quantity.New[quantity.JoulePerMole](6820)),
		RelativeSolubility: chemgine.ConstantEstimator1[quantity.Celsius, quantity.MoleRatio](quantity.New[quantity.MoleRatio](0.0)),
	}

	aceticAcid := &chemgine.Molecule{
		ID:        newID(),
		Name:      "acetic acid",
		Structure: staticstore.NamedStructure{Name: "CH3COOH"},
		MolarMass: quantity.New[quantity.GramPerMole](60.052),
		Polarity:  0.9,
		MeltingPointAt:     chemgine.ConstantEstimator1[quantity.Pascal, quantity.Celsius](quantity.New[quantity.Celsius](16.6)),
		BoilingPointAt:     chemgine.ConstantEstimator1[quantity.Pascal, quantity.Celsius](quantity.New[quantity.Celsius](118)),
		DensityAt:          chemgine.ConstantEstimator2[quantity.Celsius, quantity.Pascal, quantity.GramPerMilliliter](quantity.New[quantity.GramPerMilliliter](1.049)),
		HeatCapacityAt:     chemgine.ConstantEstimator2[quantity.Celsius, quantity.Pascal, quantity.JoulePerMoleCelsius](quantity.New[quantity.JoulePerMoleCelsius](123.1)),
		FusionHeatAt:       chemgine.ConstantEstimator1[quantity.Pascal, quantity.JoulePerMole](quantity.New[quantity.JoulePerMole](11530)),
		VaporizationHeatAt: chemgine.ConstantEstimator1[quantity.Pascal, quantity.JoulePerMole](quantity.New[quantity.JoulePerMole](23700)),
		RelativeSolubility: chemgine.ConstantEstimator1[quantity.Celsius, quantity.MoleRatio](quantity.New[quantity.MoleRatio](1.0)),
	}

	ethanol := &chemgine.Molecule{
		ID:        newID(),
		Name:      "ethanol",
		Structure: staticstore.NamedStructure{Name: "C2H5OH"},
		MolarMass: quantity.New[quantity.GramPerMole](46.068),
		Polarity:  0.65,
		MeltingPointAt:     chemgine.ConstantEstimator1[quantity.Pascal, quantity.Celsius](quantity.New[quantity.Celsius](-114)),
		BoilingPointAt:     chemgine.ConstantEstimator1[quantity.Pascal, quantity.Celsius](quantity.New[quantity.Celsius](78.4)),
		DensityAt:          chemgine.ConstantEstimator2[quantity.Celsius, quantity.Pascal, quantity.GramPerMilliliter](quantity.New[quantity.GramPerMilliliter](0.789)),
		HeatCapacityAt:     chemgine.ConstantEstimator2[quantity.Celsius, quantity.Pascal, quantity.JoulePerMoleCelsius](quantity.New[quantity.JoulePerMoleCelsius](112.3)),
		FusionHeatAt:       chemgine.ConstantEstimator1[quantity.Pascal, quantity.JoulePerMole](quantity.New[quantity.JoulePerMole](4930)),
		VaporizationHeatAt: chemgine.ConstantEstimator1[quantity.Pascal, quantity.JoulePerMole](quantity.New[quantity.JoulePerMole](38560)),
		RelativeSolubility: chemgine.ConstantEstimator1[quantity.Celsius, quantity.MoleRatio](quantity.New[quantity.MoleRatio](1.0)),
	}

	for _, m := range []*chemgine.Molecule{water, nitrogen, oxygen, aceticAcid, ethanol} {
		store.AddMolecule(m)
	}

	return &demoMolecules{
		Water:      water,
		Nitrogen:   nitrogen,
		Oxygen:     oxygen,
		AceticAcid: aceticAcid,
		Ethanol:    ethanol,
	}
}
