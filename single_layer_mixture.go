package chemgine

import "github.com/chemgine/chemgine/quantity"

// SingleLayerMixture is the spec §3.6 variant fixed to exactly one
// LayerType for its entire lifetime (the original's SingleLayerMixture<L>
// non-type template parameter). A Go generic parameter would need one
// phantom marker type per LayerType value for no behavioural gain over
// a plain immutable field, since LayerType is a runtime enum rather
// than a family of distinct static types — so layerType here is just a
// field set once at construction and never reassigned.
//
// Reactants whose layer does not match layerType are not stored: they
// are forwarded to whatever container is registered for that layer in
// incompatibilityTargets (spec §3.7). A layer with no registered
// target is dropped with a warning, since nothing in this variant can
// hold a second phase.
type SingleLayerMixture struct {
	handle                  ContainerHandle
	layerType               LayerType
	layer                   *Layer
	reactants               *ReactantSet
	maxVolume               quantity.Quantity[quantity.Liter]
	overflowTarget          Container
	incompatibilityTargets  map[LayerType]Container
	ambientPressure         quantity.Quantity[quantity.Pascal]
}

func NewSingleLayerMixture(
	layerType LayerType,
	temperature quantity.Quantity[quantity.Celsius],
	maxVolume quantity.Quantity[quantity.Liter],
	overflowTarget Container,
	ambientPressure quantity.Quantity[quantity.Pascal],
) *SingleLayerMixture {
	return &SingleLayerMixture{
		handle:                 newHandle(),
		layerType:              layerType,
		layer:                  newLayer(layerType, temperature),
		reactants:              NewReactantSet(),
		maxVolume:              maxVolume,
		overflowTarget:         overflowTarget,
		incompatibilityTargets: make(map[LayerType]Container),
		ambientPressure:        ambientPressure,
	}
}

func (m *SingleLayerMixture) Handle() ContainerHandle        { return m.handle }
func (m *SingleLayerMixture) LayerType() LayerType            { return m.layerType }
func (m *SingleLayerMixture) MaxVolume() quantity.Quantity[quantity.Liter] { return m.maxVolume }
func (m *SingleLayerMixture) OverflowTarget() Container       { return m.overflowTarget }
func (m *SingleLayerMixture) Pressure() quantity.Quantity[quantity.Pascal] { return m.ambientPressure }

// SetIncompatibilityTarget registers the container that receives
// reactants added with a layer other than m.layerType (spec §3.7).
func (m *SingleLayerMixture) SetIncompatibilityTarget(lt LayerType, target Container) {
	m.incompatibilityTargets[lt] = target
}

func (m *SingleLayerMixture) TotalMass() quantity.Quantity[quantity.Gram]     { return m.layer.Mass }
func (m *SingleLayerMixture) TotalVolume() quantity.Quantity[quantity.Liter]  { return m.layer.Volume }
func (m *SingleLayerMixture) TotalMoles() quantity.Quantity[quantity.Mole]    { return m.layer.Moles }
func (m *SingleLayerMixture) Temperature() quantity.Quantity[quantity.Celsius] {
	return m.layer.Temperature
}

// AddReactant implements spec §3.6/§3.7: store matching-layer
// reactants directly, forward everything else.
func (m *SingleLayerMixture) AddReactant(r Reactant) {
	if r.Layer != m.layerType && r.Layer != None {
		if target, ok := m.incompatibilityTargets[r.Layer]; ok {
			target.AddReactant(r)
			return
		}
		log().WithField("layer", r.Layer.String()).Warn("no incompatibility target for foreign-layer reactant; dropped")
		return
	}
	r.Layer = m.layerType
	r.Container = m.handle

	pressure := m.Pressure()
	mass := quantity.MolesToGrams(r.Amount, r.Molecule.MolarMass)
	vol := r.Volume(m.layer.Temperature, pressure)

	m.reactants.Add(r)
	m.layer.Moles = m.layer.Moles.Add(r.Amount)
	m.layer.Mass = m.layer.Mass.Add(mass)
	m.layer.Volume = m.layer.Volume.Add(vol)

	if stored, ok := m.reactants.Get(r.Id()); ok {
		m.layer.Low.Offer(stored, pressure)
		m.layer.High.Offer(stored, pressure)
	}
}

func (m *SingleLayerMixture) AddEnergy(e quantity.Quantity[quantity.Joule]) {
	m.layer.PotentialEnergy = m.layer.PotentialEnergy.Add(e)
}

// checkOverflow mirrors MultiLayerMixture's, specialized to the single
// owned layer: move volume proportionally to the overflow target once
// total volume exceeds the cap.
func (m *SingleLayerMixture) checkOverflow() {
	if m.maxVolume.IsInfinity() {
		return
	}
	if m.layer.Volume.Value() <= m.maxVolume.Value() {
		return
	}
	if m.overflowTarget == nil {
		log().Warn("overflow occurred with no overflow target configured; excess volume retained")
		return
	}
	excess := m.layer.Volume.Value() - m.maxVolume.Value()
	fraction := excess / m.layer.Volume.Value()
	pressure := m.Pressure()
	for _, r := range m.reactants.InLayer(m.layerType) {
		moved := quantity.New[quantity.Mole](r.Amount.Value() * fraction)
		m.overflowTarget.AddReactant(Reactant{Molecule: r.Molecule, Layer: m.layerType, Amount: moved})
		mass := quantity.MolesToGrams(moved, r.Molecule.MolarMass)
		vol := r.Volume(m.layer.Temperature, pressure).Scale(fraction)
		m.reactants.Add(Reactant{Molecule: r.Molecule, Layer: m.layerType, Amount: moved.Neg()})
		m.layer.Moles = m.layer.Moles.Sub(moved)
		m.layer.Mass = m.layer.Mass.Sub(mass)
		m.layer.Volume = m.layer.Volume.Sub(vol)
	}
}
