package chemgine

// LayerType is the closed enum of physical aggregation layers a
// multi-layer mixture may hold, ordered top-to-bottom by density per
// spec §3.2: GASEOUS is the topmost (lightest) layer, SOLID the
// bottommost. NONE is the sentinel used to mean "no layer" / "choose
// for me" depending on context.
type LayerType int

const (
	Gaseous LayerType = iota
	InorgLiquefiedGas
	Nonpolar
	Polar
	DenseNonpolar
	InorgMoltenSolid
	Solid
	None
)

func (lt LayerType) String() string {
	switch lt {
	case Gaseous:
		return "GASEOUS"
	case InorgLiquefiedGas:
		return "INORG_LIQUEFIED_GAS"
	case Nonpolar:
		return "NONPOLAR"
	case Polar:
		return "POLAR"
	case DenseNonpolar:
		return "DENSE_NONPOLAR"
	case InorgMoltenSolid:
		return "INORG_MOLTEN_SOLID"
	case Solid:
		return "SOLID"
	default:
		return "NONE"
	}
}

// firstLayer and lastLayer bound the real (non-NONE) layer range, used
// when walking adjacency by enum distance.
const (
	firstLayer = Gaseous
	lastLayer  = Solid
)

func (lt LayerType) isGasLayer() bool { return lt == Gaseous }

func (lt LayerType) isLiquidLayer() bool {
	switch lt {
	case InorgLiquefiedGas, Nonpolar, Polar, DenseNonpolar:
		return true
	default:
		return false
	}
}

func (lt LayerType) isSolidLayer() bool {
	return lt == InorgMoltenSolid || lt == Solid
}

func (lt LayerType) isRealLayer() bool { return lt >= firstLayer && lt <= lastLayer }

// layerDistance is the enum-index distance used throughout the spec
// for adjacency ("non-adjacent" reactivity coefficient, "closest
// existing layer" temperature inheritance).
func layerDistance(a, b LayerType) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func areAdjacentLayers(a, b LayerType) bool {
	return a.isRealLayer() && b.isRealLayer() && layerDistance(a, b) == 1
}

// higherAggregationLayer walks one step toward GASEOUS (lower density
// index); lowerAggregationLayer walks one step toward SOLID. Both
// return None at the boundary.
func higherAggregationLayer(lt LayerType) LayerType {
	if lt <= firstLayer || !lt.isRealLayer() {
		return None
	}
	return lt - 1
}

func lowerAggregationLayer(lt LayerType) LayerType {
	if lt >= lastLayer || !lt.isRealLayer() {
		return None
	}
	return lt + 1
}

// closestExistingLayer returns, among candidates, the one with the
// smallest enum distance to target. Used when a multi-layer mixture
// lazily creates a layer and must inherit a starting temperature from
// its nearest existing neighbour.
func closestExistingLayer(target LayerType, candidates []LayerType) (LayerType, bool) {
	best := None
	bestDist := -1
	for _, c := range candidates {
		d := layerDistance(target, c)
		if bestDist == -1 || d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best, bestDist != -1
}
