package chemgine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chemgine/chemgine/quantity"
)

func TestDumpContainerAccumulates(t *testing.T) {
	d := NewDumpContainer()
	water := testMolecule(1, "water")

	d.AddReactant(Reactant{Molecule: water, Amount: quantity.New[quantity.Mole](2)})
	d.AddEnergy(quantity.New[quantity.Joule](100))

	assert.InDelta(t, 36, d.TotalMass().Value(), 1e-6)
	assert.InDelta(t, 100, d.TotalEnergy().Value(), 1e-9)
	assert.InDelta(t, 0, d.TotalVolume().Value(), 1e-9)
}

// TestDumpContainerResetsOnOverflow is the §9 open question resolved:
// the accumulator that actually overflows is the one that gets reset,
// not always total_mass.
func TestDumpContainerResetsOnOverflow(t *testing.T) {
	d := NewDumpContainer()
	d.totalEnergy = quantity.New[quantity.Joule](math.MaxFloat64)

	d.AddEnergy(quantity.New[quantity.Joule](math.MaxFloat64))

	assert.InDelta(t, 0, d.TotalEnergy().Value(), 1e-9)
}

func TestDumpContainerMassOverflowResetsMassOnly(t *testing.T) {
	d := NewDumpContainer()
	d.totalMass = quantity.New[quantity.Gram](math.MaxFloat64)
	d.totalEnergy = quantity.New[quantity.Joule](500)

	huge := testMolecule(1, "huge")
	huge.MolarMass = quantity.New[quantity.GramPerMole](math.MaxFloat64)
	d.AddReactant(Reactant{Molecule: huge, Amount: quantity.New[quantity.Mole](2)})

	assert.InDelta(t, 0, d.TotalMass().Value(), 1e-9)
	assert.InDelta(t, 500, d.TotalEnergy().Value(), 1e-9)
}
