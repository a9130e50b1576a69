package chemgine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chemgine/chemgine/quantity"
)

func constantSpeed(rate float64) (Estimator1[quantity.Celsius, quantity.MolePerSecond], Estimator1[quantity.MoleRatio, quantity.None]) {
	return ConstantEstimator1[quantity.Celsius, quantity.MolePerSecond](quantity.New[quantity.MolePerSecond](rate)),
		ConstantEstimator1[quantity.MoleRatio, quantity.None](quantity.New[quantity.None](1))
}

func TestReactionDataSpeedMultipliesBothEstimators(t *testing.T) {
	speedT, speedC := constantSpeed(2)
	rule := &ReactionData{SpeedT: speedT, SpeedC: speedC}

	got := rule.Speed(quantity.New[quantity.Celsius](20), quantity.New[quantity.MoleRatio](1))
	assert.InDelta(t, 2, got, 1e-9)
}

func TestReactionDataIsSpecializationOfWildcard(t *testing.T) {
	speedT, speedC := constantSpeed(1)
	general := &ReactionData{
		ID:        1,
		Name:      "any-acid neutralization",
		Reactants: []StructureRef{{Pattern: nameStructure{wildcard: true}}},
		Products:  []StructureRef{{Pattern: nameStructure{wildcard: true}}},
		SpeedT:    speedT, SpeedC: speedC,
	}
	specific := &ReactionData{
		ID:        2,
		Name:      "acetic acid neutralization",
		Reactants: []StructureRef{{Pattern: nameStructure{name: "acetic acid"}}},
		Products:  []StructureRef{{Pattern: nameStructure{name: "sodium acetate"}}},
		SpeedT:    speedT, SpeedC: speedC,
	}

	assert.True(t, specific.IsSpecializationOf(general))
	assert.False(t, general.IsSpecializationOf(specific))
}

func TestReactionDataIsEquivalentTo(t *testing.T) {
	speedT, speedC := constantSpeed(1)
	a := &ReactionData{
		ID:        1,
		Reactants: []StructureRef{{Pattern: nameStructure{name: "water"}}},
		Products:  []StructureRef{{Pattern: nameStructure{name: "steam"}}},
		SpeedT:    speedT, SpeedC: speedC,
	}
	b := &ReactionData{
		ID:        2,
		Reactants: []StructureRef{{Pattern: nameStructure{name: "water"}}},
		Products:  []StructureRef{{Pattern: nameStructure{name: "steam"}}},
		SpeedT:    speedT, SpeedC: speedC,
	}

	assert.True(t, a.IsEquivalentTo(b))
}

func TestReactionDataCatalystsAreCheckedInReverseDirection(t *testing.T) {
	speedT, speedC := constantSpeed(1)
	// Reactants/products specialize via the wildcard on general's side;
	// the catalyst is the identical pattern on both rules, so the
	// reversed-direction catalyst check still passes regardless of which
	// way it is evaluated — this exercises that code path rather than a
	// genuine catalyst-hierarchy case, which nameStructure can't express.
	general := &ReactionData{
		ID:        1,
		Reactants: []StructureRef{{Pattern: nameStructure{wildcard: true}}},
		Products:  []StructureRef{{Pattern: nameStructure{wildcard: true}}},
		Catalysts: []CatalystRef{{Pattern: nameStructure{name: "sulfuric acid"}}},
		SpeedT:    speedT, SpeedC: speedC,
	}
	specific := &ReactionData{
		ID:        2,
		Reactants: []StructureRef{{Pattern: nameStructure{name: "ester"}}},
		Products:  []StructureRef{{Pattern: nameStructure{name: "acid"}}},
		Catalysts: []CatalystRef{{Pattern: nameStructure{name: "sulfuric acid"}}},
		SpeedT:    speedT, SpeedC: speedC,
	}

	assert.True(t, specific.IsSpecializationOf(general))
}
