package builder

// Method tags used as error context.
const (
	MethodCycle         = "Cycle"
	MethodPath          = "Path"
	MethodStar          = "Star"
	MethodWheel         = "Wheel"
	MethodGrid          = "Grid"
	MethodPolygon       = "Polygon"
	MethodPlatonicSolid = "PlatonicSolid"
	MethodRandomTree    = "RandomTree"
)

// Minimum sizes.
const (
	MinCycleNodes   = 3
	MinPathNodes    = 2
	MinStarNodes    = 2
	MinWheelNodes   = 4
	MinGridDim      = 2
	MinPolygonNodes = 3
	MinTreeNodes    = 2
)

// Layout defaults.
const (
	DefaultRadius  = 10.0
	DefaultSpacing = 1.0

	// snapUnit is the lattice every computed coordinate is rounded to.
	snapUnit = 1e-9

	// treeAttemptsPerNode bounds the random draws RandomTree may spend.
	treeAttemptsPerNode = 200
)
