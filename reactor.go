package chemgine

import (
	"math"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/chemgine/chemgine/quantity"
)

// TickMode is the bit-flag field of spec §4.6's FlagField<{OVERFLOW,
// NEGLIGIBLES, REACTIONS, CONDUCTION, ENERGY}>, mirroring the
// teacher's functional-closure-over-state idiom
// (inmap.CellManipulator/inmap.DomainManipulator in framework.go)
// applied here to which tick phases run rather than which grid cells
// a closure visits.
type TickMode uint8

const (
	TickOverflow TickMode = 1 << iota
	TickNegligibles
	TickReactions
	TickConduction
	TickEnergy

	TickAll = TickOverflow | TickNegligibles | TickReactions | TickConduction | TickEnergy
)

// Favourable/unfavourable conduction constants, spec §4.6.1 step 4.
const (
	favourableConductivity   = 5e-6 // W
	unfavourableConductivity = 3e-6 // W
)

// Reactor extends MultiLayerMixture with the tick engine of spec
// §4.6, grounded line-for-line on
// original_source/core/src/mixtures/kinds/Reactor.cpp.
type Reactor struct {
	*MultiLayerMixture

	network         *ReactionNetwork
	productResolver ProductResolver
	tickMode        TickMode

	cachedKeys      mapset.Set[ConcreteReactionKey]
	cachedReactions map[ConcreteReactionKey]ConcreteReaction
}

func NewReactor(
	network *ReactionNetwork,
	resolver ProductResolver,
	maxVolume quantity.Quantity[quantity.Liter],
	overflowTarget Container,
	defaultTemperature quantity.Quantity[quantity.Celsius],
	ambientPressure quantity.Quantity[quantity.Pascal],
) *Reactor {
	return &Reactor{
		MultiLayerMixture: NewMultiLayerMixture(maxVolume, overflowTarget, defaultTemperature, ambientPressure),
		network:           network,
		productResolver:    resolver,
		tickMode:           TickAll,
		cachedKeys:         mapset.NewSet[ConcreteReactionKey](),
		cachedReactions:    make(map[ConcreteReactionKey]ConcreteReaction),
	}
}

func (r *Reactor) SetTickMode(mode TickMode) { r.tickMode = mode }
func (r *Reactor) GetTickMode() TickMode     { return r.tickMode }

// Tick advances the reactor one timestep, running the five phases in
// strict order, each guarded by its flag (spec §4.6.1/§5).
func (r *Reactor) Tick(dt quantity.Quantity[quantity.Second]) {
	if r.tickMode&TickOverflow != 0 {
		r.checkOverflow()
	}
	if r.tickMode&TickNegligibles != 0 {
		r.removeNegligibles()
	}
	if r.tickMode&TickReactions != 0 {
		r.findNewReactions()
		r.runReactions(dt)
	}
	if r.tickMode&TickConduction != 0 {
		r.runLayerEnergyConduction(dt)
	}
	if r.tickMode&TickEnergy != 0 {
		for _, l := range r.layers {
			r.convertTemporaryStateReactants(l)
			r.consumePotentialEnergy(l)
		}
	}
}

func enumerateArrangements(items []*Reactant, k int, visit func([]*Reactant)) {
	if k == 0 || len(items) == 0 {
		return
	}
	tuple := make([]*Reactant, k)
	var rec func(i int)
	rec = func(i int) {
		if i == k {
			visit(append([]*Reactant(nil), tuple...))
			return
		}
		for _, it := range items {
			tuple[i] = it
			rec(i + 1)
		}
	}
	rec(0)
}

// findNewReactions implements spec §4.6.1.a: enumerate
// arrangements-with-repetition of the mixture's reactants up to the
// network's max reactant arity, query every arrangement containing at
// least one new reactant, and merge matches into cachedReactions.
func (r *Reactor) findNewReactions() {
	if r.network == nil {
		return
	}
	var all []*Reactant
	r.reactants.Each(func(rt *Reactant) {
		if rt.Amount.Value() > MolarExistenceThreshold {
			all = append(all, rt)
		}
	})
	maxCount := r.network.maxReactantCount()
	for k := 1; k <= maxCount; k++ {
		enumerateArrangements(all, k, func(tuple []*Reactant) {
			hasNew := false
			for _, t := range tuple {
				if t.IsNew {
					hasNew = true
					break
				}
			}
			if !hasNew {
				return
			}
			for _, cr := range r.network.getOccurringReactions(tuple) {
				key := cr.Key()
				if r.cachedKeys.Contains(key) {
					continue
				}
				r.cachedKeys.Add(key)
				r.cachedReactions[key] = cr
			}
		})
	}
	for _, rt := range all {
		rt.IsNew = false
	}
}

// pairCoefficient is the symmetric inter-layer reactivity table of
// spec §4.6.1.b.
func pairCoefficient(a, b LayerType) float64 {
	if a == b {
		if a.isSolidLayer() {
			return 1e-4
		}
		return 1.0
	}
	if !areAdjacentLayers(a, b) {
		return 0.0
	}
	switch {
	case a.isSolidLayer() != b.isSolidLayer() && (a.isLiquidLayer() || b.isLiquidLayer()):
		return 0.5
	case a.isSolidLayer() != b.isSolidLayer() && (a.isGasLayer() || b.isGasLayer()):
		return 0.01
	case a.isLiquidLayer() != b.isLiquidLayer() && (a.isGasLayer() || b.isGasLayer()):
		return 0.1
	default:
		return 1.0
	}
}

func (r *Reactor) interLayerReactivityCoefficient(reactants []*Reactant) float64 {
	coef := 1.0
	for i := 0; i < len(reactants); i++ {
		for j := i + 1; j < len(reactants); j++ {
			coef = math.Min(coef, pairCoefficient(reactants[i].Layer, reactants[j].Layer))
		}
	}
	return coef
}

func (r *Reactor) catalyticReactivityCoefficient(cr ConcreteReaction) float64 {
	for _, cat := range cr.Rule.Catalysts {
		if r.reactants.GetAmountOfMatching(cat.Pattern).Value() <= 0 {
			return 0
		}
	}
	return 1
}

// runReactions implements spec §4.6.1.b.
func (r *Reactor) runReactions(dt quantity.Quantity[quantity.Second]) {
	for _, cr := range r.cachedReactions {
		layer, ok := r.layers[cr.Reactants[0].Layer]
		temp := r.defaultTemperature
		if ok {
			temp = layer.Temperature
		}

		amountPresent := 0.0
		for _, rt := range cr.Reactants {
			amountPresent += r.reactants.GetAmountOf(rt.Id()).Value()
		}
		totalMoles := r.TotalMoles().Value()
		c := 0.0
		if totalMoles > 0 {
			c = amountPresent / totalMoles
		}

		speed := cr.Rule.Speed(temp, quantity.New[quantity.MoleRatio](c))
		x := speed * dt.Value() * r.TotalVolume().Value() *
			r.interLayerReactivityCoefficient(cr.Reactants) * r.catalyticReactivityCoefficient(cr)
		if x <= 0 {
			continue
		}
		for _, rt := range cr.Reactants {
			if avail := r.reactants.GetAmountOf(rt.Id()).Value(); avail < x {
				x = avail
			}
		}
		if x <= 0 {
			continue
		}

		touched := make(map[LayerType]bool)
		for _, rt := range cr.Reactants {
			r.reactants.Add(Reactant{Molecule: rt.Molecule, Layer: rt.Layer, Amount: quantity.New[quantity.Mole](-x)})
			touched[rt.Layer] = true
		}
		for lt := range touched {
			r.recomputeLayerAggregates(lt)
			if l, ok := r.layers[lt]; ok {
				r.rescanNucleators(l)
			}
		}

		if r.productResolver != nil {
			for i := range cr.Rule.Products {
				mol, ok := r.productResolver(cr.Rule, i, cr.Reactants)
				if !ok {
					continue
				}
				lt := r.findLayerFor(&Reactant{Molecule: mol, Amount: quantity.New[quantity.Mole](x)})
				r.AddReactant(Reactant{Molecule: mol, Layer: lt, Amount: quantity.New[quantity.Mole](x)})
			}
		}

		if ok {
			energy := quantity.JoulePerMoleToJoule(cr.Rule.ReactionEnergy, quantity.New[quantity.Mole](x))
			layer.PotentialEnergy = layer.PotentialEnergy.Add(energy)
		}
	}
}

// runLayerEnergyConduction implements spec §4.6.1 step 4: for every
// pair of existing adjacent layers, move energy from the warmer to
// the cooler side at a rate set by whether the direction is
// favourable (warmer layer above the cooler one) or not.
func (r *Reactor) runLayerEnergyConduction(dt quantity.Quantity[quantity.Second]) {
	type pair struct{ a, b LayerType }
	seen := make(map[pair]bool)
	for lt, l := range r.layers {
		for _, nt := range []LayerType{higherAggregationLayer(lt), lowerAggregationLayer(lt)} {
			if nt == None {
				continue
			}
			n, ok := r.layers[nt]
			if !ok {
				continue
			}
			if seen[pair{lt, nt}] || seen[pair{nt, lt}] {
				continue
			}
			seen[pair{lt, nt}] = true
			r.conductBetween(l, n, dt)
		}
	}
}

func (r *Reactor) conductBetween(l, n *Layer, dt quantity.Quantity[quantity.Second]) {
	deltaT := l.Temperature.Value() - n.Temperature.Value()
	if deltaT == 0 {
		return
	}
	warmer, cooler := l, n
	if deltaT < 0 {
		warmer, cooler = n, l
	}
	coef := unfavourableConductivity
	if warmer.Type < cooler.Type {
		coef = favourableConductivity
	}
	source := l
	if n.Moles.Value() < l.Moles.Value() {
		source = n
	}
	hC := r.totalHeatCapacity(source)
	energy := hC.Value() * source.Moles.Value() * math.Abs(deltaT) * coef * dt.Value()
	delta := quantity.New[quantity.Joule](energy)
	cooler.PotentialEnergy = cooler.PotentialEnergy.Add(delta)
	warmer.PotentialEnergy = warmer.PotentialEnergy.Sub(delta)
}

// HasSameContent implements spec §6.2's has_same_content.
func (r *Reactor) HasSameContent(other *Reactor, epsilon float64) bool {
	return r.reactants.Equal(other.reactants, epsilon)
}

// HasSameLayers implements has_same_layers: every layer's temperature
// and potential energy agree within epsilon.
func (r *Reactor) HasSameLayers(other *Reactor, epsilon float64) bool {
	if len(r.layers) != len(other.layers) {
		return false
	}
	for lt, l := range r.layers {
		ol, ok := other.layers[lt]
		if !ok {
			return false
		}
		if !quantity.Equal(l.Temperature, ol.Temperature, epsilon) {
			return false
		}
		if !quantity.Equal(l.PotentialEnergy, ol.PotentialEnergy, epsilon) {
			return false
		}
	}
	return true
}

func (r *Reactor) HasSameState(other *Reactor, epsilon float64) bool {
	return r.HasSameContent(other, epsilon) && r.HasSameLayers(other, epsilon)
}

func (r *Reactor) IsSame(other *Reactor, epsilon float64) bool {
	return r.HasSameState(other, epsilon) && r.tickMode == other.tickMode
}

// MakeCopy implements spec §4.6.3: clone layers and the cached
// reaction set; reactant container back-references are rewritten to
// the new Reactor by MultiLayerMixture.MakeCopy.
func (r *Reactor) MakeCopy() *Reactor {
	out := &Reactor{
		MultiLayerMixture: r.MultiLayerMixture.MakeCopy(),
		network:           r.network,
		productResolver:   r.productResolver,
		tickMode:          r.tickMode,
		cachedKeys:        r.cachedKeys.Clone(),
		cachedReactions:   make(map[ConcreteReactionKey]ConcreteReaction, len(r.cachedReactions)),
	}
	for k, v := range r.cachedReactions {
		out.cachedReactions[k] = v
	}
	return out
}
