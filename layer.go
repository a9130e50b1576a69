package chemgine

import "github.com/chemgine/chemgine/quantity"

// StateNucleator tracks the reactant whose phase-transition point
// bounds a layer's permissible temperature in one direction (spec
// §3.5/§4.3.1/§9). pickLargest selects whether Offer keeps the
// candidate with the smallest or largest transition point, matching
// the fixed low/high direction original_source/Chemgine/Layer.cpp's
// setIfNucleator freezes: lowNucleator.setIfLower (smallest),
// highNucleator.setIfHigher (largest).
type StateNucleator struct {
	kind        TransitionKind
	pickLargest bool
	reactant    *Reactant
}

// newLowNucleator tracks the smallest transition point present: the
// melting point that bounds a liquid layer from below, or the boiling
// point that bounds a gas layer from below.
func newLowNucleator(lt LayerType) *StateNucleator {
	switch {
	case lt.isLiquidLayer():
		return &StateNucleator{kind: Melting, pickLargest: false}
	case lt.isGasLayer():
		return &StateNucleator{kind: Boiling, pickLargest: false}
	default:
		return nil
	}
}

// newHighNucleator tracks the largest transition point present: the
// boiling point that bounds a liquid layer from above, or the melting
// point that bounds a solid layer from above.
func newHighNucleator(lt LayerType) *StateNucleator {
	switch {
	case lt.isLiquidLayer():
		return &StateNucleator{kind: Boiling, pickLargest: true}
	case lt.isSolidLayer():
		return &StateNucleator{kind: Melting, pickLargest: true}
	default:
		return nil
	}
}

func (n *StateNucleator) Empty() bool { return n == nil || n.reactant == nil }

func (n *StateNucleator) Reactant() *Reactant {
	if n == nil {
		return nil
	}
	return n.reactant
}

func (n *StateNucleator) TransitionPoint(pressure quantity.Quantity[quantity.Pascal]) quantity.Quantity[quantity.Celsius] {
	if n.Empty() {
		return quantity.Unknown[quantity.Celsius]()
	}
	return n.reactant.TransitionPoint(n.kind, pressure)
}

func (n *StateNucleator) TransitionHeat(pressure quantity.Quantity[quantity.Pascal]) quantity.Quantity[quantity.JoulePerMole] {
	if n.Empty() {
		return quantity.Unknown[quantity.JoulePerMole]()
	}
	return n.reactant.TransitionHeat(n.kind, pressure)
}

// Offer considers r as a new candidate nucleator, per spec §4.3.1.
func (n *StateNucleator) Offer(r *Reactant, pressure quantity.Quantity[quantity.Pascal]) {
	if n == nil {
		return
	}
	if n.reactant == nil {
		n.reactant = r
		return
	}
	candidate := r.TransitionPoint(n.kind, pressure).Value()
	current := n.reactant.TransitionPoint(n.kind, pressure).Value()
	if n.pickLargest && candidate > current {
		n.reactant = r
	} else if !n.pickLargest && candidate < current {
		n.reactant = r
	}
}

// Invalidate clears the nucleator if it currently points at removed,
// returning whether it did (the caller must then rescan).
func (n *StateNucleator) Invalidate(removed *Reactant) bool {
	if n == nil || n.reactant != removed {
		return false
	}
	n.reactant = nil
	return true
}

// Layer is the per-phase physical aggregate of spec §3.5. Behaviour
// that needs cross-layer movement (consuming potential energy, the
// temporary-state conversion, heat capacity over a mixture's shared
// reactant set) lives on MultiLayerMixture, which owns the Layer and
// its ReactantSet together — mirroring how Reactor "extends
// MultiLayerMixture" in spec §4.6.
type Layer struct {
	Type            LayerType
	Temperature     quantity.Quantity[quantity.Celsius]
	Moles           quantity.Quantity[quantity.Mole]
	Mass            quantity.Quantity[quantity.Gram]
	Volume          quantity.Quantity[quantity.Liter]
	PotentialEnergy quantity.Quantity[quantity.Joule]
	Polarity        float64

	Low  *StateNucleator
	High *StateNucleator
}

func newLayer(lt LayerType, temperature quantity.Quantity[quantity.Celsius]) *Layer {
	return &Layer{
		Type:        lt,
		Temperature: temperature,
		Moles:       quantity.New[quantity.Mole](0),
		Mass:        quantity.New[quantity.Gram](0),
		Volume:      quantity.New[quantity.Liter](0),
		Low:         newLowNucleator(lt),
		High:        newHighNucleator(lt),
	}
}

func (l *Layer) IsEmpty() bool {
	return l.Moles.Value() <= MolarExistenceThreshold
}
