package planar

// BoundaryNodeRule decides, from the number of linestring endpoints
// coinciding at a point, whether that point counts as boundary for
// relate/isSimple purposes. Pluggable; overlay always
// uses ModTwoBoundaryNodeRule.
type BoundaryNodeRule interface {
	IsInBoundary(degree int) bool
}

type modTwoRule struct{}

// IsInBoundary implements the default OGC rule: a point is boundary iff
// an odd number of linestring endpoints coincide there.
func (modTwoRule) IsInBoundary(degree int) bool { return degree%2 == 1 }

type endpointRule struct{}

// IsInBoundary treats every endpoint as boundary, regardless of degree.
func (endpointRule) IsInBoundary(degree int) bool { return degree > 0 }

type multivalentEndpointRule struct{}

// IsInBoundary treats a point as boundary only if 2 or more lines end
// there (a point used only as an isolated line's single endpoint pair
// does not count).
func (multivalentEndpointRule) IsInBoundary(degree int) bool { return degree > 1 }

type monovalentEndpointRule struct{}

// IsInBoundary treats a point as boundary only if exactly one line ends
// there.
func (monovalentEndpointRule) IsInBoundary(degree int) bool { return degree == 1 }

// ModTwoBoundaryNodeRule, EndpointBoundaryNodeRule,
// MultivalentEndpointBoundaryNodeRule, and MonovalentEndpointBoundaryNodeRule
// are the four standard rule variants.
var (
	ModTwoBoundaryNodeRule              = modTwoRule{}
	EndpointBoundaryNodeRule            = endpointRule{}
	MultivalentEndpointBoundaryNodeRule = multivalentEndpointRule{}
	MonovalentEndpointBoundaryNodeRule  = monovalentEndpointRule{}
)
