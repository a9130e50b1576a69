package chemgine

import (
	"math"

	"github.com/chemgine/chemgine/quantity"
)

// DumpContainer is spec §4.7's /dev/null sink: it accumulates total
// mass and total energy only, discarding everything about composition
// and layering. It exists so overflow and forwarding rules always have
// somewhere safe to send matter they don't want to keep.
//
// original_source/Chemgine/DumpContainer.cpp resets totalMass when its
// energy accumulator overflows to infinity, which is a copy-paste bug:
// the accumulator that actually overflowed is totalEnergy, so that is
// the one this implementation resets (spec §9 open question).
type DumpContainer struct {
	handle      ContainerHandle
	totalMass   quantity.Quantity[quantity.Gram]
	totalEnergy quantity.Quantity[quantity.Joule]
}

func NewDumpContainer() *DumpContainer {
	return &DumpContainer{
		handle:      newHandle(),
		totalMass:   quantity.New[quantity.Gram](0),
		totalEnergy: quantity.New[quantity.Joule](0),
	}
}

func (d *DumpContainer) Handle() ContainerHandle { return d.handle }

func (d *DumpContainer) AddReactant(r Reactant) {
	d.totalMass = d.totalMass.Add(r.Mass())
	if math.IsInf(d.totalMass.Value(), 0) {
		log().Warn("dump container mass accumulator overflowed; resetting")
		d.totalMass = quantity.New[quantity.Gram](0)
	}
}

func (d *DumpContainer) AddEnergy(e quantity.Quantity[quantity.Joule]) {
	d.totalEnergy = d.totalEnergy.Add(e)
	if math.IsInf(d.totalEnergy.Value(), 0) {
		log().Warn("dump container energy accumulator overflowed; resetting")
		d.totalEnergy = quantity.New[quantity.Joule](0)
	}
}

func (d *DumpContainer) TotalMass() quantity.Quantity[quantity.Gram]    { return d.totalMass }
func (d *DumpContainer) TotalEnergy() quantity.Quantity[quantity.Joule] { return d.totalEnergy }

// TotalVolume is always zero: a dump container never reports a volume
// a caller could treat as overflow-relievable capacity.
func (d *DumpContainer) TotalVolume() quantity.Quantity[quantity.Liter] {
	return quantity.New[quantity.Liter](0)
}
