package chemgine

import (
	"github.com/chemgine/chemgine/quantity"
	"github.com/google/uuid"
)

// ContainerHandle identifies an owning container without the owned
// object holding a pointer back to it, breaking the Reactant<->Mixture
// cycle per spec §9 ("indexed handles ... or weak references resolved
// through a context"). It is opaque outside this package.
type ContainerHandle uuid.UUID

var NilContainerHandle ContainerHandle

// ReactantId is the hash key for a ReactantSet: identity is
// (moleculeId, layer), per spec §3.3.
type ReactantId struct {
	MoleculeID MoleculeID
	Layer      LayerType
}

// TransitionKind distinguishes which phase boundary a StateNucleator
// tracks. Modeled as an enum + direction flag rather than the
// original's member-function pointers, per spec §9.
type TransitionKind int

const (
	Melting TransitionKind = iota
	Boiling
)

// Reactant is the 4-tuple of spec §3.3: a molecule, the layer it
// currently occupies, a mutable mole amount, and an opaque handle to
// its owning container. isNew marks reactants not yet considered by
// reaction discovery (spec §4.6.1.a).
type Reactant struct {
	Molecule  *Molecule
	Layer     LayerType
	Amount    quantity.Quantity[quantity.Mole]
	Container ContainerHandle
	IsNew     bool
}

func (r *Reactant) Id() ReactantId {
	return ReactantId{MoleculeID: r.Molecule.ID, Layer: r.Layer}
}

func (r *Reactant) Mass() quantity.Quantity[quantity.Gram] {
	return quantity.MolesToGrams(r.Amount, r.Molecule.MolarMass)
}

func (r *Reactant) Volume(temp quantity.Quantity[quantity.Celsius], pressure quantity.Quantity[quantity.Pascal]) quantity.Quantity[quantity.Liter] {
	density := r.Density(temp, pressure)
	return quantity.GramsToLiters(r.Mass(), density)
}

func (r *Reactant) Density(temp quantity.Quantity[quantity.Celsius], pressure quantity.Quantity[quantity.Pascal]) quantity.Quantity[quantity.GramPerMilliliter] {
	if r.Layer.isGasLayer() {
		kelvin := quantity.CelsiusToKelvin(temp)
		return quantity.IdealGasDensity(r.Molecule.MolarMass, kelvin, pressure)
	}
	return r.Molecule.DensityAt(temp, pressure)
}

func (r *Reactant) MeltingPoint(pressure quantity.Quantity[quantity.Pascal]) quantity.Quantity[quantity.Celsius] {
	return r.Molecule.MeltingPointAt(pressure)
}

func (r *Reactant) BoilingPoint(pressure quantity.Quantity[quantity.Pascal]) quantity.Quantity[quantity.Celsius] {
	return r.Molecule.BoilingPointAt(pressure)
}

func (r *Reactant) HeatCapacity(temp quantity.Quantity[quantity.Celsius], pressure quantity.Quantity[quantity.Pascal]) quantity.Quantity[quantity.JoulePerMoleCelsius] {
	return r.Molecule.HeatCapacityAt(temp, pressure)
}

// TransitionPoint returns the melting or boiling point relevant to
// kind, at the given pressure.
func (r *Reactant) TransitionPoint(kind TransitionKind, pressure quantity.Quantity[quantity.Pascal]) quantity.Quantity[quantity.Celsius] {
	switch kind {
	case Melting:
		return r.MeltingPoint(pressure)
	default:
		return r.BoilingPoint(pressure)
	}
}

// TransitionHeat always returns the positive-magnitude latent heat
// associated with kind (fusion or vaporization); callers decide the
// sign from the direction they are converting, matching the
// transitionHeat usage in spec §4.3.2's consumption algorithm.
func (r *Reactant) TransitionHeat(kind TransitionKind, pressure quantity.Quantity[quantity.Pascal]) quantity.Quantity[quantity.JoulePerMole] {
	switch kind {
	case Melting:
		return r.Molecule.FusionHeatAt(pressure)
	default:
		return r.Molecule.VaporizationHeatAt(pressure)
	}
}

// mutate adjusts the stored amount by delta in place. Negative-amount
// guarding is ReactantSet's responsibility (spec §4.2); this is the
// raw primitive it and the Reactor use internally.
func (r *Reactant) mutate(delta quantity.Quantity[quantity.Mole]) {
	r.Amount = r.Amount.Add(delta)
}
