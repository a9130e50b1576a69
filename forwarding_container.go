package chemgine

import "github.com/chemgine/chemgine/quantity"

// ForwardingRule pairs a structural predicate with the container that
// should receive matching reactants, per spec §4.7.
type ForwardingRule struct {
	Predicate MolecularStructure
	Target    Container
}

// ForwardingContainer is spec §4.7's rule-routed pass-through: every
// added reactant is tested against each rule in order, and forwarded
// in full to every target whose predicate matches (this is fan-out,
// not a splitter: a reactant matching two rules is forwarded whole to
// both, not split between them). Anything matching no rule goes to
// Default. AddEnergy has no structural predicate to route on, so it is
// divided equally across every rule's target.
type ForwardingContainer struct {
	handle  ContainerHandle
	Rules   []ForwardingRule
	Default Container
}

func NewForwardingContainer(defaultTarget Container) *ForwardingContainer {
	return &ForwardingContainer{handle: newHandle(), Default: defaultTarget}
}

func (f *ForwardingContainer) Handle() ContainerHandle { return f.handle }

func (f *ForwardingContainer) AddReactant(r Reactant) {
	matched := false
	for _, rule := range f.Rules {
		if _, ok := rule.Predicate.MatchWith(r.Molecule.Structure); ok {
			rule.Target.AddReactant(r)
			matched = true
		}
	}
	if !matched {
		if f.Default == nil {
			log().Warn("forwarding container has no default target; unmatched reactant dropped")
			return
		}
		f.Default.AddReactant(r)
	}
}

func (f *ForwardingContainer) AddEnergy(e quantity.Quantity[quantity.Joule]) {
	n := len(f.Rules)
	if n == 0 {
		if f.Default != nil {
			f.Default.AddEnergy(e)
		}
		return
	}
	share := e.Div(float64(n))
	for _, rule := range f.Rules {
		rule.Target.AddEnergy(share)
	}
}

// TotalMass and TotalVolume sum across every distinct target a
// forwarding container routes to (rule targets plus default), since it
// holds nothing itself.
func (f *ForwardingContainer) TotalMass() quantity.Quantity[quantity.Gram] {
	total := quantity.New[quantity.Gram](0)
	seen := make(map[ContainerHandle]bool)
	add := func(c Container) {
		if c == nil || seen[c.Handle()] {
			return
		}
		seen[c.Handle()] = true
		total = total.Add(c.TotalMass())
	}
	for _, rule := range f.Rules {
		add(rule.Target)
	}
	add(f.Default)
	return total
}

func (f *ForwardingContainer) TotalVolume() quantity.Quantity[quantity.Liter] {
	total := quantity.New[quantity.Liter](0)
	seen := make(map[ContainerHandle]bool)
	add := func(c Container) {
		if c == nil || seen[c.Handle()] {
			return
		}
		seen[c.Handle()] = true
		total = total.Add(c.TotalVolume())
	}
	for _, rule := range f.Rules {
		add(rule.Target)
	}
	add(f.Default)
	return total
}
