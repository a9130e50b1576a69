package chemgine

import "github.com/chemgine/chemgine/quantity"

// MolarExistenceThreshold is Constants::MOLAR_EXISTANCE_THRESHOLD from
// spec §4.3.1/§6.4. removeNegligibles drops amounts strictly below it;
// emptiness checks and nucleator rescans treat amounts at or below it
// as absent.
const MolarExistenceThreshold = 1e-7

// ReactantSet is the mapping (molecule, layer) -> Reactant of spec
// §3.4, preserving "at most one entry per key, amounts >= 0".
// Iteration follows Go map order: it is unspecified and can differ
// between two iterations, even within one tick.
type ReactantSet struct {
	reactants map[ReactantId]*Reactant
}

func NewReactantSet() *ReactantSet {
	return &ReactantSet{reactants: make(map[ReactantId]*Reactant)}
}

// Add implements spec §4.2's add(r): increment an existing entry or
// insert a new one, never storing a negative amount. A negative delta
// against a non-existent key, or one that would drive an existing
// entry negative, is a precondition violation: logged and ignored
// (spec §7), amount left unchanged.
func (s *ReactantSet) Add(r Reactant) {
	id := r.Id()
	existing, ok := s.reactants[id]
	if !ok {
		if r.Amount.Value() < 0 {
			log().WithField("molecule", r.Molecule.ID).Warn("rejected negative amount for new reactant")
			return
		}
		copyOf := r
		s.reactants[id] = &copyOf
		return
	}
	newAmount := existing.Amount.Add(r.Amount)
	if newAmount.Value() < 0 {
		log().WithField("molecule", r.Molecule.ID).Warn("rejected add that would drive amount negative")
		return
	}
	existing.Amount = newAmount
}

// Get returns the reactant stored for id, if any.
func (s *ReactantSet) Get(id ReactantId) (*Reactant, bool) {
	r, ok := s.reactants[id]
	return r, ok
}

// GetAmountOf sums the amount stored for a single key.
func (s *ReactantSet) GetAmountOf(id ReactantId) quantity.Quantity[quantity.Mole] {
	if r, ok := s.reactants[id]; ok {
		return r.Amount
	}
	return quantity.New[quantity.Mole](0)
}

// GetAmountOfSet sums amounts over keys present in both sets.
func (s *ReactantSet) GetAmountOfSet(other *ReactantSet) quantity.Quantity[quantity.Mole] {
	total := 0.0
	for id, r := range other.reactants {
		if mine, ok := s.reactants[id]; ok {
			_ = r
			total += mine.Amount.Value()
		}
	}
	return quantity.New[quantity.Mole](total)
}

// GetAmountOfMatching sums amounts over every reactant whose structure
// matches pattern, per spec §4.2's getAmountOf(Catalyst).
func (s *ReactantSet) GetAmountOfMatching(pattern MolecularStructure) quantity.Quantity[quantity.Mole] {
	total := 0.0
	for _, r := range s.reactants {
		if _, ok := pattern.MatchWith(r.Molecule.Structure); ok {
			total += r.Amount.Value()
		}
	}
	return quantity.New[quantity.Mole](total)
}

// EraseIf removes every entry for which predicate returns true.
func (s *ReactantSet) EraseIf(predicate func(*Reactant) bool) {
	for id, r := range s.reactants {
		if predicate(r) {
			delete(s.reactants, id)
		}
	}
}

// InLayer returns every reactant currently occupying layer lt. The
// returned slice is a fresh snapshot safe to range over while mutating
// the set.
func (s *ReactantSet) InLayer(lt LayerType) []*Reactant {
	var out []*Reactant
	for id, r := range s.reactants {
		if id.Layer == lt {
			out = append(out, r)
		}
	}
	return out
}

// Each visits every reactant in the set. Order is unspecified.
func (s *ReactantSet) Each(fn func(*Reactant)) {
	for _, r := range s.reactants {
		fn(r)
	}
}

func (s *ReactantSet) Len() int { return len(s.reactants) }

// Equal reports epsilon-equality per spec §4.2: for every key present
// in either set, the two amounts must agree within epsilon. A key
// missing from one side is compared against a zero amount.
func (s *ReactantSet) Equal(other *ReactantSet, epsilon float64) bool {
	seen := make(map[ReactantId]bool, len(s.reactants))
	for id, r := range s.reactants {
		seen[id] = true
		o := other.GetAmountOf(id)
		if !quantity.Equal(r.Amount, o, epsilon) {
			return false
		}
	}
	for id, r := range other.reactants {
		if seen[id] {
			continue
		}
		if !quantity.Equal(r.Amount, s.GetAmountOf(id), epsilon) {
			return false
		}
	}
	return true
}

// MakeCopy returns a deep copy of the set with independent *Reactant
// instances.
func (s *ReactantSet) MakeCopy() *ReactantSet {
	out := NewReactantSet()
	for id, r := range s.reactants {
		copyOf := *r
		out.reactants[id] = &copyOf
	}
	return out
}
