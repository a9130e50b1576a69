package quantity

// Every unit tag named in spec §3.1. Each is a zero-sized struct that
// only exists to parametrize Quantity[U] and to print a symbol.

type UnitType struct{}

func (UnitType) unitSymbol() string { return "" }

type Gram struct{}

func (Gram) unitSymbol() string { return "g" }

type Liter struct{}

func (Liter) unitSymbol() string { return "L" }

type Mole struct{}

func (Mole) unitSymbol() string { return "mol" }

type Second struct{}

func (Second) unitSymbol() string { return "s" }

type CubicMeter struct{}

func (CubicMeter) unitSymbol() string { return "m3" }

type Celsius struct{}

func (Celsius) unitSymbol() string { return "degC" }

type Kelvin struct{}

func (Kelvin) unitSymbol() string { return "K" }

type Fahrenheit struct{}

func (Fahrenheit) unitSymbol() string { return "degF" }

type Torr struct{}

func (Torr) unitSymbol() string { return "torr" }

type Pascal struct{}

func (Pascal) unitSymbol() string { return "Pa" }

type Joule struct{}

func (Joule) unitSymbol() string { return "J" }

type Watt struct{}

func (Watt) unitSymbol() string { return "W" }

type MolePerSecond struct{}

func (MolePerSecond) unitSymbol() string { return "mol/s" }

type GramPerMole struct{}

func (GramPerMole) unitSymbol() string { return "g/mol" }

type GramPerMilliliter struct{}

func (GramPerMilliliter) unitSymbol() string { return "g/mL" }

type JoulePerMole struct{}

func (JoulePerMole) unitSymbol() string { return "J/mol" }

type JoulePerMoleCelsius struct{}

func (JoulePerMoleCelsius) unitSymbol() string { return "J/(mol*degC)" }

type JoulePerCelsius struct{}

func (JoulePerCelsius) unitSymbol() string { return "J/degC" }

type MoleRatio struct{}

func (MoleRatio) unitSymbol() string { return "mol/mol" }

type Degree struct{}

func (Degree) unitSymbol() string { return "deg" }

type Radian struct{}

func (Radian) unitSymbol() string { return "rad" }

type None struct{}

func (None) unitSymbol() string { return "" }
