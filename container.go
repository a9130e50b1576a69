package chemgine

import "github.com/chemgine/chemgine/quantity"

// Container is the shared trait of spec §9's "deep class hierarchy of
// mixtures" redesign: Atmosphere | Reactor | SingleLayerMixture |
// MultiLayerMixture | DumpContainer | ForwardingContainer all
// implement it.
type Container interface {
	Handle() ContainerHandle
	AddReactant(r Reactant)
	AddEnergy(e quantity.Quantity[quantity.Joule])
	TotalMass() quantity.Quantity[quantity.Gram]
	TotalVolume() quantity.Quantity[quantity.Liter]
}

// BoundedContainer is a Container with a volume cap and an overflow
// target, per spec §3.7.
type BoundedContainer interface {
	Container
	MaxVolume() quantity.Quantity[quantity.Liter]
	OverflowTarget() Container
}

func newHandle() ContainerHandle { return ContainerHandle(newUUID()) }
