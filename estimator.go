package chemgine

import "github.com/chemgine/chemgine/quantity"

// Estimator1 models EstimatorData's get(x) contract (spec §6.1): a
// temperature- or pressure-dependent thermophysical property. The core
// never parses the file format estimators are loaded from (out of
// scope, §1) — it only ever calls the function a DataStore handed it.
type Estimator1[X, Y quantity.Unit] func(quantity.Quantity[X]) quantity.Quantity[Y]

// Estimator2 models EstimatorData's get(x, y) contract: a property
// dependent on two inputs, e.g. density(temperature, pressure).
type Estimator2[X1, X2, Y quantity.Unit] func(quantity.Quantity[X1], quantity.Quantity[X2]) quantity.Quantity[Y]

// ConstantEstimator1 returns an Estimator1 that ignores its input and
// always yields v — useful for molecules whose property does not
// vary appreciably over the simulated range, and for tests.
func ConstantEstimator1[X, Y quantity.Unit](v quantity.Quantity[Y]) Estimator1[X, Y] {
	return func(quantity.Quantity[X]) quantity.Quantity[Y] { return v }
}

// ConstantEstimator2 is the two-argument analogue of ConstantEstimator1.
func ConstantEstimator2[X1, X2, Y quantity.Unit](v quantity.Quantity[Y]) Estimator2[X1, X2, Y] {
	return func(quantity.Quantity[X1], quantity.Quantity[X2]) quantity.Quantity[Y] { return v }
}
