package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	a := New[Mole](2.0)
	b := New[Mole](3.0)
	assert.Equal(t, 5.0, a.Add(b).Value())
	assert.Equal(t, -1.0, a.Sub(b).Value())
	assert.Equal(t, -2.0, a.Neg().Value())
	assert.Equal(t, 4.0, a.Scale(2).Value())
	assert.Equal(t, 1.0, a.Div(2).Value())
}

func TestConversions(t *testing.T) {
	moles := New[Mole](2.0)
	molarMass := New[GramPerMole](18.015)
	grams := MolesToGrams(moles, molarMass)
	assert.InDelta(t, 36.03, grams.Value(), 1e-9)
	back := GramsToMoles(grams, molarMass)
	assert.True(t, EqualDefault(moles, back))
}

func TestTemperatureConversions(t *testing.T) {
	c := New[Celsius](25.0)
	k := CelsiusToKelvin(c)
	assert.InDelta(t, 298.15, k.Value(), 1e-9)
	assert.InDelta(t, 25.0, KelvinToCelsius(k).Value(), 1e-9)
	f := CelsiusToFahrenheit(New[Celsius](0))
	assert.InDelta(t, 32.0, f.Value(), 1e-9)
}

func TestTorrPascal(t *testing.T) {
	p := TorrToPascal(New[Torr](760))
	assert.InDelta(t, 101325.0, p.Value(), 0.5)
	torr := PascalToTorr(p)
	assert.InDelta(t, 760.0, torr.Value(), 1e-6)
}

func TestLiterCubicMeter(t *testing.T) {
	m3 := LitersToCubicMeters(New[Liter](1000))
	assert.Equal(t, 1.0, m3.Value())
	assert.Equal(t, 1000.0, CubicMetersToLiters(m3).Value())
}

func TestUnknownAndInfinity(t *testing.T) {
	u := Unknown[Celsius]()
	assert.True(t, u.IsUnknown())
	assert.False(t, EqualDefault(u, u))

	inf := Infinity[Joule]()
	assert.True(t, inf.IsInfinity())
}

func TestEqualEpsilon(t *testing.T) {
	a := New[Celsius](100.0)
	b := New[Celsius](100.0 + 1e-10)
	assert.True(t, Equal(a, b, 1e-6))
	assert.False(t, Equal(a, New[Celsius](101.0), 1e-6))
}
