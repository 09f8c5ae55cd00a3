package overlay

import "github.com/gogeos/geos/kernel"

// inResult applies the op's boolean-set formula to a side's pair of
// per-operand locations.
func inResult(op Op, locA, locB kernel.Location) bool {
	a := locA == kernel.Interior
	b := locB == kernel.Interior
	switch op {
	case Intersection:
		return a && b
	case Union:
		return a || b
	case Difference:
		return a && !b
	case SymDifference:
		return a != b
	default:
		return false
	}
}
