package chemgine

import "github.com/chemgine/chemgine/quantity"

// standardPressure is 760 torr expressed in pascal, the reference
// pressure original_source/Chemgine/Atmosphere.cpp builds its default
// atmosphere at.
var standardPressure = quantity.TorrToPascal(quantity.New[quantity.Torr](760))

// Atmosphere is the SingleLayerMixture fixed to the GASEOUS layer, per
// spec §6.2. It stores only gaseous matter: reactants of any other
// layer go to its registered incompatibility target, or are dropped
// when none is set.
type Atmosphere struct {
	*SingleLayerMixture
}

// CreateDefaultAtmosphere builds the reference atmosphere: 1 degC,
// 760 torr, a 10000L reservoir of nitrogen and oxygen in roughly their
// real atmospheric molar ratio, matching spec §6.2's default-atmosphere
// constants.
func CreateDefaultAtmosphere(nitrogen, oxygen *Molecule) *Atmosphere {
	a := &Atmosphere{
		SingleLayerMixture: NewSingleLayerMixture(
			Gaseous,
			quantity.New[quantity.Celsius](1),
			quantity.New[quantity.Liter](10000),
			nil,
			standardPressure,
		),
	}
	a.AddReactant(Reactant{Molecule: nitrogen, Layer: Gaseous, Amount: quantity.New[quantity.Mole](78.084)})
	a.AddReactant(Reactant{Molecule: oxygen, Layer: Gaseous, Amount: quantity.New[quantity.Mole](20.946)})
	return a
}

// CreateSubatmosphere builds an empty gaseous reservoir bounded by
// maxVolume with no default composition, for hosts that want their own
// starting gas mixture (spec §6.2).
func CreateSubatmosphere(maxVolume quantity.Quantity[quantity.Liter]) *Atmosphere {
	return &Atmosphere{
		SingleLayerMixture: NewSingleLayerMixture(
			Gaseous,
			quantity.New[quantity.Celsius](1),
			maxVolume,
			nil,
			standardPressure,
		),
	}
}
