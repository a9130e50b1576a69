package chemgine

import (
	"math"
	"sort"

	"github.com/chemgine/chemgine/quantity"
)

// MultiLayerMixture is the spec §3.6 variant that owns a map
// LayerType -> Layer, creating layers lazily on first matching add.
// Reactor "extends" it per spec §4.6; the tick-phase algorithms below
// (consume potential energy, temporary-state conversion, overflow,
// heat capacity) are grounded line-for-line on
// original_source/Chemgine/Layer.cpp and
// original_source/Chemgine/MultiLayerMixture.cpp, with findLayerFor
// authored fresh per spec §4.4 step 1 (the original snapshot's
// findLayerFor is a stub that always returns POLAR).
type MultiLayerMixture struct {
	handle             ContainerHandle
	layers             map[LayerType]*Layer
	reactants          *ReactantSet
	maxVolume          quantity.Quantity[quantity.Liter]
	overflowTarget     Container
	defaultTemperature quantity.Quantity[quantity.Celsius]
	ambientPressure    quantity.Quantity[quantity.Pascal]
}

func NewMultiLayerMixture(
	maxVolume quantity.Quantity[quantity.Liter],
	overflowTarget Container,
	defaultTemperature quantity.Quantity[quantity.Celsius],
	ambientPressure quantity.Quantity[quantity.Pascal],
) *MultiLayerMixture {
	return &MultiLayerMixture{
		handle:             newHandle(),
		layers:             make(map[LayerType]*Layer),
		reactants:          NewReactantSet(),
		maxVolume:          maxVolume,
		overflowTarget:     overflowTarget,
		defaultTemperature: defaultTemperature,
		ambientPressure:    ambientPressure,
	}
}

func (m *MultiLayerMixture) Handle() ContainerHandle { return m.handle }

func (m *MultiLayerMixture) MaxVolume() quantity.Quantity[quantity.Liter] { return m.maxVolume }
func (m *MultiLayerMixture) OverflowTarget() Container                   { return m.overflowTarget }

// Layer returns the layer of type lt, if it currently exists.
func (m *MultiLayerMixture) Layer(lt LayerType) (*Layer, bool) {
	l, ok := m.layers[lt]
	return l, ok
}

func (m *MultiLayerMixture) TotalMass() quantity.Quantity[quantity.Gram] {
	total := 0.0
	for _, l := range m.layers {
		total += l.Mass.Value()
	}
	return quantity.New[quantity.Gram](total)
}

func (m *MultiLayerMixture) TotalMoles() quantity.Quantity[quantity.Mole] {
	total := 0.0
	for _, l := range m.layers {
		total += l.Moles.Value()
	}
	return quantity.New[quantity.Mole](total)
}

func (m *MultiLayerMixture) TotalVolume() quantity.Quantity[quantity.Liter] {
	total := 0.0
	for _, l := range m.layers {
		total += l.Volume.Value()
	}
	return quantity.New[quantity.Liter](total)
}

// Pressure computes the mixture's total pressure from its gas layer
// via the ideal gas law (P = nRT/V); absent a non-empty gas layer it
// falls back to the mixture's configured ambient pressure.
func (m *MultiLayerMixture) Pressure() quantity.Quantity[quantity.Pascal] {
	gas, ok := m.layers[Gaseous]
	if !ok || gas.IsEmpty() {
		return m.ambientPressure
	}
	volM3 := quantity.LitersToCubicMeters(gas.Volume)
	if volM3.Value() <= 0 {
		return m.ambientPressure
	}
	kelvin := quantity.CelsiusToKelvin(gas.Temperature)
	p := gas.Moles.Value() * quantity.IdealGasConstant * kelvin.Value() / volM3.Value()
	return quantity.New[quantity.Pascal](p)
}

func (m *MultiLayerMixture) referenceTemperature() quantity.Quantity[quantity.Celsius] {
	var sum float64
	var n int
	for _, l := range m.layers {
		if l.IsEmpty() {
			continue
		}
		sum += l.Temperature.Value()
		n++
	}
	if n == 0 {
		return m.defaultTemperature
	}
	return quantity.New[quantity.Celsius](sum / float64(n))
}

// getOrCreateLayer lazily creates layer lt, inheriting the temperature
// of the closest (by enum distance) existing layer, per spec §4.4
// step 2.
func (m *MultiLayerMixture) getOrCreateLayer(lt LayerType) *Layer {
	if l, ok := m.layers[lt]; ok {
		return l
	}
	var existing []LayerType
	for k := range m.layers {
		existing = append(existing, k)
	}
	temp := m.defaultTemperature
	if closest, ok := closestExistingLayer(lt, existing); ok {
		temp = m.layers[closest].Temperature
	}
	l := newLayer(lt, temp)
	m.layers[lt] = l
	return l
}

// findLayerFor picks an aggregation layer for a reactant with no
// layer preference, from its phase at the mixture's reference
// temperature and pressure, plus a polarity check for the liquid
// range (spec §4.4 step 1).
func (m *MultiLayerMixture) findLayerFor(r *Reactant) LayerType {
	pressure := m.Pressure()
	refTemp := m.referenceTemperature()
	melting := r.MeltingPoint(pressure).Value()
	boiling := r.BoilingPoint(pressure).Value()

	switch {
	case refTemp.Value() >= boiling:
		return Gaseous
	case refTemp.Value() < melting:
		return Solid
	default:
		if r.Molecule.Polarity >= 0.5 {
			return Polar
		}
		density := r.Density(refTemp, pressure).Value()
		if density >= 1.0 {
			return DenseNonpolar
		}
		return Nonpolar
	}
}

// AddReactant implements spec §4.4's add(reactant): choose a layer if
// none was specified, lazily create it, insert into the shared
// reactant set, update layer aggregates, and offer the reactant to
// the layer's nucleator slots.
func (m *MultiLayerMixture) AddReactant(r Reactant) {
	lt := r.Layer
	if lt == None {
		lt = m.findLayerFor(&r)
	}
	r.Layer = lt
	r.Container = m.handle
	r.IsNew = true

	layer := m.getOrCreateLayer(lt)
	pressure := m.Pressure()
	mass := quantity.MolesToGrams(r.Amount, r.Molecule.MolarMass)
	vol := r.Volume(layer.Temperature, pressure)

	m.reactants.Add(r)
	layer.Moles = layer.Moles.Add(r.Amount)
	layer.Mass = layer.Mass.Add(mass)
	layer.Volume = layer.Volume.Add(vol)

	if stored, ok := m.reactants.Get(ReactantId{MoleculeID: r.Molecule.ID, Layer: lt}); ok {
		layer.Low.Offer(stored, pressure)
		layer.High.Offer(stored, pressure)
	}
}

// recomputeLayerAggregates resums a layer's moles/mass/volume from the
// shared reactant set. Used after bulk reactant mutations (reaction
// consumption) where incremental per-reactant bookkeeping would need
// to track a proportional volume share anyway; resumming the small
// per-layer reactant list is simpler and exactly as correct.
func (m *MultiLayerMixture) recomputeLayerAggregates(lt LayerType) {
	l, ok := m.layers[lt]
	if !ok {
		return
	}
	pressure := m.Pressure()
	var moles, mass, vol float64
	for _, r := range m.reactants.InLayer(lt) {
		moles += r.Amount.Value()
		mass += r.Mass().Value()
		vol += r.Volume(l.Temperature, pressure).Value()
	}
	l.Moles = quantity.New[quantity.Mole](moles)
	l.Mass = quantity.New[quantity.Gram](mass)
	l.Volume = quantity.New[quantity.Liter](vol)
}

// AddEnergyToLayer implements spec §4.4's add(energy, layer): no
// temperature change happens here, only buffering into the layer's
// potential energy.
func (m *MultiLayerMixture) AddEnergyToLayer(lt LayerType, e quantity.Quantity[quantity.Joule]) {
	l := m.getOrCreateLayer(lt)
	l.PotentialEnergy = l.PotentialEnergy.Add(e)
}

// AddEnergy satisfies the Container interface for callers with no
// layer to name; it targets the topmost non-empty layer.
func (m *MultiLayerMixture) AddEnergy(e quantity.Quantity[quantity.Joule]) {
	top := m.topmostNonEmptyLayer()
	if top == nil {
		log().Warn("AddEnergy called on a mixture with no layers; energy discarded")
		return
	}
	top.PotentialEnergy = top.PotentialEnergy.Add(e)
}

func (m *MultiLayerMixture) topmostNonEmptyLayer() *Layer {
	var best *Layer
	for _, l := range m.layers {
		if l.IsEmpty() {
			continue
		}
		if best == nil || l.Type < best.Type {
			best = l
		}
	}
	return best
}

// rescanNucleators rebuilds both nucleator slots of l from scratch,
// used after a removal invalidates the tracked reactant (spec
// §4.3.1's "scans remaining reactants ... to find a replacement").
func (m *MultiLayerMixture) rescanNucleators(l *Layer) {
	pressure := m.Pressure()
	l.Low = newLowNucleator(l.Type)
	l.High = newHighNucleator(l.Type)
	for _, r := range m.reactants.InLayer(l.Type) {
		if r.Amount.Value() <= MolarExistenceThreshold {
			continue
		}
		l.Low.Offer(r, pressure)
		l.High.Offer(r, pressure)
	}
}

// removeNegligibles implements spec §4.4: drop every reactant whose
// amount is strictly below MolarExistenceThreshold.
func (m *MultiLayerMixture) removeNegligibles() {
	pressure := m.Pressure()
	for _, l := range m.layers {
		for _, r := range m.reactants.InLayer(l.Type) {
			if r.Amount.Value() >= MolarExistenceThreshold {
				continue
			}
			l.Moles = l.Moles.Sub(r.Amount)
			l.Mass = l.Mass.Sub(r.Mass())
			l.Volume = l.Volume.Sub(r.Volume(l.Temperature, pressure))
		}
	}
	m.reactants.EraseIf(func(r *Reactant) bool { return r.Amount.Value() < MolarExistenceThreshold })
	for _, l := range m.layers {
		m.rescanNucleators(l)
	}
}

// checkOverflow implements spec §4.4: while total volume exceeds the
// cap, move volume from the topmost non-empty layer into the overflow
// target, proportionally across its reactants.
func (m *MultiLayerMixture) checkOverflow() {
	if m.maxVolume.IsInfinity() {
		return
	}
	for m.TotalVolume().Value() > m.maxVolume.Value() {
		excess := m.TotalVolume().Value() - m.maxVolume.Value()
		top := m.topmostNonEmptyLayer()
		if top == nil {
			break
		}
		moveVol := math.Min(excess, top.Volume.Value())
		if moveVol <= 0 {
			break
		}
		if m.overflowTarget == nil {
			log().Warn("overflow occurred with no overflow target configured; excess volume retained")
			break
		}
		m.moveContentTo(m.overflowTarget, quantity.New[quantity.Liter](moveVol), top.Type)
	}
}

// moveContentTo transfers volume liters out of sourceLayer into dest,
// proportionally by mole fraction, subtracting from this mixture.
// copyContentTo is the same without the subtraction (spec §4.4).
func (m *MultiLayerMixture) moveContentTo(dest Container, volume quantity.Quantity[quantity.Liter], sourceLayer LayerType) {
	m.transferContentTo(dest, volume, sourceLayer, true)
}

func (m *MultiLayerMixture) copyContentTo(dest Container, volume quantity.Quantity[quantity.Liter], sourceLayer LayerType) {
	m.transferContentTo(dest, volume, sourceLayer, false)
}

func (m *MultiLayerMixture) transferContentTo(dest Container, volume quantity.Quantity[quantity.Liter], sourceLayer LayerType, subtract bool) {
	l, ok := m.layers[sourceLayer]
	if !ok || l.Volume.Value() <= 0 {
		return
	}
	fraction := volume.Value() / l.Volume.Value()
	if fraction > 1 {
		fraction = 1
	}
	pressure := m.Pressure()
	for _, r := range m.reactants.InLayer(sourceLayer) {
		moved := quantity.New[quantity.Mole](r.Amount.Value() * fraction)
		dest.AddReactant(Reactant{Molecule: r.Molecule, Layer: sourceLayer, Amount: moved})
		if !subtract {
			continue
		}
		mass := quantity.MolesToGrams(moved, r.Molecule.MolarMass)
		vol := r.Volume(l.Temperature, pressure).Scale(fraction)
		m.reactants.Add(Reactant{Molecule: r.Molecule, Layer: sourceLayer, Amount: moved.Neg()})
		l.Moles = l.Moles.Sub(moved)
		l.Mass = l.Mass.Sub(mass)
		l.Volume = l.Volume.Sub(vol)
	}
	if subtract {
		m.rescanNucleators(l)
	}
}

// moveMolesToLayer moves amount moles of mol from one layer to an
// adjacent one, updating both layers' aggregates and nucleators. Used
// by the potential-energy consumption loop (spec §4.3.2) and
// temporary-state conversion.
func (m *MultiLayerMixture) moveMolesToLayer(mol *Molecule, amount quantity.Quantity[quantity.Mole], from, to LayerType) {
	if amount.Value() <= 0 || to == None {
		return
	}
	pressure := m.Pressure()
	fromLayer, ok := m.layers[from]
	if !ok {
		return
	}
	toLayer := m.getOrCreateLayer(to)

	massDelta := quantity.MolesToGrams(amount, mol.MolarMass)
	fromVol := (&Reactant{Molecule: mol, Layer: from, Amount: amount}).Volume(fromLayer.Temperature, pressure)
	toVol := (&Reactant{Molecule: mol, Layer: to, Amount: amount}).Volume(toLayer.Temperature, pressure)

	m.reactants.Add(Reactant{Molecule: mol, Layer: from, Amount: amount.Neg()})
	fromLayer.Moles = fromLayer.Moles.Sub(amount)
	fromLayer.Mass = fromLayer.Mass.Sub(massDelta)
	fromLayer.Volume = fromLayer.Volume.Sub(fromVol)

	m.reactants.Add(Reactant{Molecule: mol, Layer: to, Amount: amount})
	toLayer.Moles = toLayer.Moles.Add(amount)
	toLayer.Mass = toLayer.Mass.Add(massDelta)
	toLayer.Volume = toLayer.Volume.Add(toVol)

	m.rescanNucleators(fromLayer)
	m.rescanNucleators(toLayer)
}

// temporaryStateTarget reports whether r is in a temporary state
// within layer l (its own melting/boiling point is on the wrong side
// of l's temperature for l's phase, spec §4.3.2) and, if so, which
// adjacent layer it belongs in instead.
func (m *MultiLayerMixture) temporaryStateTarget(r *Reactant, l *Layer, pressure quantity.Quantity[quantity.Pascal]) (LayerType, bool) {
	switch {
	case l.Type.isLiquidLayer():
		if r.MeltingPoint(pressure).Value() > l.Temperature.Value() {
			return lowerAggregationLayer(l.Type), true
		}
		if r.BoilingPoint(pressure).Value() < l.Temperature.Value() {
			return higherAggregationLayer(l.Type), true
		}
	case l.Type.isGasLayer():
		if r.BoilingPoint(pressure).Value() > l.Temperature.Value() {
			return lowerAggregationLayer(l.Type), true
		}
	case l.Type.isSolidLayer():
		if r.MeltingPoint(pressure).Value() < l.Temperature.Value() {
			return higherAggregationLayer(l.Type), true
		}
	}
	return None, false
}

func temporaryStateWeight(r *Reactant, l *Layer, pressure quantity.Quantity[quantity.Pascal]) float64 {
	diff := math.Abs(r.MeltingPoint(pressure).Value() - l.Temperature.Value())
	diff2 := math.Abs(r.BoilingPoint(pressure).Value() - l.Temperature.Value())
	d := diff
	if diff2 < d {
		d = diff2
	}
	return d * r.Mass().Value()
}

// convertTemporaryStateReactants resolves every reactant in a
// temporary state before energy consumption runs. The source's TODO
// at Layer::convertTemporaryStateReactants leaves the exact
// multi-reactant tie-break unspecified (spec §9); this orders
// candidates by descending |transition-temperature difference| * mass
// and moves each wholesale. The move preserves mass exactly; no latent
// heat is charged or credited for it, so the layers' energy is not
// conserved across these moves.
func (m *MultiLayerMixture) convertTemporaryStateReactants(l *Layer) {
	pressure := m.Pressure()
	type candidate struct {
		r      *Reactant
		target LayerType
		weight float64
	}
	var candidates []candidate
	for _, r := range m.reactants.InLayer(l.Type) {
		if r.Amount.Value() <= MolarExistenceThreshold {
			continue
		}
		target, ok := m.temporaryStateTarget(r, l, pressure)
		if !ok {
			continue
		}
		candidates = append(candidates, candidate{r, target, temporaryStateWeight(r, l, pressure)})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].weight > candidates[j].weight })
	for _, c := range candidates {
		m.moveMolesToLayer(c.r.Molecule, c.r.Amount, l.Type, c.target)
	}
}

func (m *MultiLayerMixture) hasTemporaryState(r *Reactant, l *Layer) bool {
	_, ok := m.temporaryStateTarget(r, l, m.Pressure())
	return ok
}

// heatCapacity implements spec §4.3.3: mass-weighted average of
// per-reactant molar heat capacity, excluding temporary-state
// reactants.
func (m *MultiLayerMixture) heatCapacity(l *Layer) quantity.Quantity[quantity.JoulePerMoleCelsius] {
	pressure := m.Pressure()
	var massSum, weighted float64
	for _, r := range m.reactants.InLayer(l.Type) {
		if _, ok := m.temporaryStateTarget(r, l, pressure); ok {
			continue
		}
		mass := r.Mass().Value()
		cp := r.HeatCapacity(l.Temperature, pressure).Value()
		massSum += mass
		weighted += cp * mass
	}
	if massSum == 0 {
		return quantity.New[quantity.JoulePerMoleCelsius](0)
	}
	return quantity.New[quantity.JoulePerMoleCelsius](weighted / massSum)
}

// totalHeatCapacity scales heatCapacity by the layer's non-temporary
// moles, per spec §4.3.3.
func (m *MultiLayerMixture) totalHeatCapacity(l *Layer) quantity.Quantity[quantity.JoulePerCelsius] {
	pressure := m.Pressure()
	var moles float64
	for _, r := range m.reactants.InLayer(l.Type) {
		if _, ok := m.temporaryStateTarget(r, l, pressure); ok {
			continue
		}
		moles += r.Amount.Value()
	}
	hc := m.heatCapacity(l)
	return quantity.JoulePerMoleCelsiusToJoulePerCelsius(hc, quantity.New[quantity.Mole](moles))
}

func (m *MultiLayerMixture) kineticEnergy(l *Layer) quantity.Quantity[quantity.Joule] {
	return quantity.JoulePerCelsiusToJoule(m.totalHeatCapacity(l), l.Temperature)
}

// consumePotentialEnergy implements spec §4.3.2: drains a layer's
// potential-energy buffer into temperature or phase-change work.
func (m *MultiLayerMixture) consumePotentialEnergy(l *Layer) {
	switch {
	case l.PotentialEnergy.Value() > 0:
		m.consumePositiveEnergy(l)
	case l.PotentialEnergy.Value() < 0:
		m.consumeNegativeEnergy(l)
	}
}

func (m *MultiLayerMixture) consumePositiveEnergy(l *Layer) {
	pressure := m.Pressure()
	for {
		if l.IsEmpty() {
			if l.PotentialEnergy.Value() != 0 {
				if higher := higherAggregationLayer(l.Type); higher != None {
					hl := m.getOrCreateLayer(higher)
					hl.PotentialEnergy = hl.PotentialEnergy.Add(l.PotentialEnergy)
				}
			}
			l.PotentialEnergy = quantity.New[quantity.Joule](0)
			l.Temperature = quantity.Infinity[quantity.Celsius]()
			return
		}
		hC := m.totalHeatCapacity(l)
		if l.High.Empty() {
			dT := l.PotentialEnergy.Value() / hC.Value()
			l.Temperature = l.Temperature.Add(quantity.New[quantity.Celsius](dT))
			l.PotentialEnergy = quantity.New[quantity.Joule](0)
			return
		}
		tMax := l.High.TransitionPoint(pressure)
		required := hC.Value() * (tMax.Value() - l.Temperature.Value())
		e := l.PotentialEnergy.Value()
		if e <= required {
			dT := e / hC.Value()
			l.Temperature = l.Temperature.Add(quantity.New[quantity.Celsius](dT))
			l.PotentialEnergy = quantity.New[quantity.Joule](0)
			return
		}
		l.Temperature = tMax
		e -= required
		nucleatorReactant := l.High.Reactant()
		transitionHeat := l.High.TransitionHeat(pressure).Value()
		maxMoles := m.reactants.GetAmountOf(nucleatorReactant.Id()).Value()
		convMoles := e / transitionHeat
		higher := higherAggregationLayer(l.Type)
		if higher == None {
			l.PotentialEnergy = quantity.New[quantity.Joule](e)
			return
		}
		if maxMoles >= convMoles {
			m.moveMolesToLayer(nucleatorReactant.Molecule, quantity.New[quantity.Mole](convMoles), l.Type, higher)
			l.PotentialEnergy = quantity.New[quantity.Joule](0)
			return
		}
		m.moveMolesToLayer(nucleatorReactant.Molecule, quantity.New[quantity.Mole](maxMoles), l.Type, higher)
		e -= transitionHeat * maxMoles
		l.PotentialEnergy = quantity.New[quantity.Joule](e)
	}
}

func (m *MultiLayerMixture) consumeNegativeEnergy(l *Layer) {
	pressure := m.Pressure()
	for {
		if l.IsEmpty() {
			if l.PotentialEnergy.Value() != 0 {
				if lower := lowerAggregationLayer(l.Type); lower != None {
					ll := m.getOrCreateLayer(lower)
					ll.PotentialEnergy = ll.PotentialEnergy.Add(l.PotentialEnergy)
				}
			}
			l.PotentialEnergy = quantity.New[quantity.Joule](0)
			l.Temperature = quantity.Infinity[quantity.Celsius]()
			return
		}
		hC := m.totalHeatCapacity(l)
		if l.Low.Empty() {
			dT := l.PotentialEnergy.Value() / hC.Value()
			l.Temperature = l.Temperature.Add(quantity.New[quantity.Celsius](dT))
			l.PotentialEnergy = quantity.New[quantity.Joule](0)
			return
		}
		tMin := l.Low.TransitionPoint(pressure)
		required := hC.Value() * (tMin.Value() - l.Temperature.Value())
		e := l.PotentialEnergy.Value()
		if e >= required {
			dT := e / hC.Value()
			l.Temperature = l.Temperature.Add(quantity.New[quantity.Celsius](dT))
			l.PotentialEnergy = quantity.New[quantity.Joule](0)
			return
		}
		l.Temperature = tMin
		e -= required
		nucleatorReactant := l.Low.Reactant()
		transitionHeat := l.Low.TransitionHeat(pressure).Value()
		maxMoles := m.reactants.GetAmountOf(nucleatorReactant.Id()).Value()
		convMoles := (-e) / transitionHeat
		lower := lowerAggregationLayer(l.Type)
		if lower == None {
			l.PotentialEnergy = quantity.New[quantity.Joule](e)
			return
		}
		if maxMoles >= convMoles {
			m.moveMolesToLayer(nucleatorReactant.Molecule, quantity.New[quantity.Mole](convMoles), l.Type, lower)
			l.PotentialEnergy = quantity.New[quantity.Joule](0)
			return
		}
		m.moveMolesToLayer(nucleatorReactant.Molecule, quantity.New[quantity.Mole](maxMoles), l.Type, lower)
		e += transitionHeat * maxMoles
		l.PotentialEnergy = quantity.New[quantity.Joule](e)
	}
}

// MakeCopy deep-copies the mixture's layers and reactant set.
// Reactant container back-references are rewritten to the new handle.
func (m *MultiLayerMixture) MakeCopy() *MultiLayerMixture {
	out := &MultiLayerMixture{
		handle:             newHandle(),
		layers:             make(map[LayerType]*Layer, len(m.layers)),
		reactants:          NewReactantSet(),
		maxVolume:          m.maxVolume,
		overflowTarget:     m.overflowTarget,
		defaultTemperature: m.defaultTemperature,
		ambientPressure:    m.ambientPressure,
	}
	for lt, l := range m.layers {
		cp := *l
		if l.Low != nil {
			low := *l.Low
			cp.Low = &low
		}
		if l.High != nil {
			high := *l.High
			cp.High = &high
		}
		out.layers[lt] = &cp
	}
	m.reactants.Each(func(r *Reactant) {
		cp := *r
		cp.Container = out.handle
		out.reactants.Add(cp)
	})
	for lt, l := range out.layers {
		for _, r := range out.reactants.InLayer(lt) {
			if l.Low != nil && l.Low.reactant != nil && l.Low.reactant.Molecule.ID == r.Molecule.ID {
				l.Low.reactant = r
			}
			if l.High != nil && l.High.reactant != nil && l.High.reactant.Molecule.ID == r.Molecule.ID {
				l.High.reactant = r
			}
		}
	}
	return out
}
