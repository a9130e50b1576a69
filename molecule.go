package chemgine

import "github.com/chemgine/chemgine/quantity"

// MoleculeID is an opaque identifier assigned by the DataStore; the
// core never constructs one on its own (spec §7: unknown molecule ids
// are a fatal, missing-collaborator error).
type MoleculeID uint32

// MolecularStructure is the opaque external collaborator described in
// spec §6.3. The core only ever calls these methods; it never parses
// SMILES/MolBin itself and never reaches into a structure's internals.
type MolecularStructure interface {
	IsVirtualHydrogen() bool
	// MatchWith attempts a structural sub-match of this structure as a
	// pattern against concrete. On success it returns the mapping from
	// this structure's atom indices to concrete's atom indices.
	MatchWith(concrete MolecularStructure) (atomMap map[int]int, ok bool)
	DegreesOfFreedom() int
	String() string
}

// Molecule is an immutable handle to a molecular structure plus the
// thermophysical estimators the core needs (spec §2.2/§6.3). None of
// the estimator fields are ever nil for a Molecule obtained through a
// DataStore — a host that cannot supply a given property should wire
// in ConstantEstimator1/2 rather than leave the field nil.
type Molecule struct {
	ID        MoleculeID
	Name      string
	Structure MolecularStructure
	MolarMass quantity.Quantity[quantity.GramPerMole]
	Polarity  float64

	MeltingPointAt      Estimator1[quantity.Pascal, quantity.Celsius]
	BoilingPointAt      Estimator1[quantity.Pascal, quantity.Celsius]
	DensityAt           Estimator2[quantity.Celsius, quantity.Pascal, quantity.GramPerMilliliter]
	HeatCapacityAt      Estimator2[quantity.Celsius, quantity.Pascal, quantity.JoulePerMoleCelsius]
	FusionHeatAt        Estimator1[quantity.Pascal, quantity.JoulePerMole]
	VaporizationHeatAt  Estimator1[quantity.Pascal, quantity.JoulePerMole]
	RelativeSolubility  Estimator1[quantity.Celsius, quantity.MoleRatio]
}

// LiquefactionHeat, CondensationHeat, SublimationHeat and
// DepositionHeat are the signed counterparts of fusion/vaporization
// heat, derived rather than separately stored, matching
// original_source/Chemgine/Reactant.cpp's getters.
func (m *Molecule) LiquefactionHeatAt(p quantity.Quantity[quantity.Pascal]) quantity.Quantity[quantity.JoulePerMole] {
	return m.FusionHeatAt(p).Neg()
}

func (m *Molecule) CondensationHeatAt(p quantity.Quantity[quantity.Pascal]) quantity.Quantity[quantity.JoulePerMole] {
	return m.VaporizationHeatAt(p).Neg()
}

func (m *Molecule) SublimationHeatAt(p quantity.Quantity[quantity.Pascal]) quantity.Quantity[quantity.JoulePerMole] {
	return m.FusionHeatAt(p).Add(m.VaporizationHeatAt(p))
}

func (m *Molecule) DepositionHeatAt(p quantity.Quantity[quantity.Pascal]) quantity.Quantity[quantity.JoulePerMole] {
	return m.SublimationHeatAt(p).Neg()
}
