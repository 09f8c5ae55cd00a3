package noding

import "github.com/gogeos/geos/gerr"

// IteratedNoder repeatedly renodes its input with an MCIndexNoder until a
// pass introduces no further interior intersections, so that noding
// artefacts introduced by one round (e.g. two new collinear segments
// crossing a third edge) are themselves resolved. Grounded on
// original_source/source/noding/IteratedNoder.cpp's do/while convergence
// loop, including its divergence guard.
type IteratedNoder struct {
	// MaxIterations bounds the convergence loop; 0 uses a sane default.
	MaxIterations int

	noded []*SegmentString
}

const defaultMaxIterations = 8

// ComputeNodes implements Noder.
func (it *IteratedNoder) ComputeNodes(segStrings []*SegmentString) error {
	maxIter := it.MaxIterations
	if maxIter <= 0 {
		maxIter = defaultMaxIterations
	}

	current := segStrings
	lastCount := -1
	lastCreated := -1
	for i := 0; i < maxIter; i++ {
		sub := &MCIndexNoder{}
		if err := sub.ComputeNodes(current); err != nil {
			return err
		}
		noded := sub.GetNodedSubstrings()
		if len(noded) == lastCount {
			it.noded = noded
			return nil
		}
		created := len(noded) - len(current)
		if lastCreated > 0 && created > lastCreated {
			return gerr.NewTopologyError("iterated noding failed to converge")
		}
		lastCreated = created
		lastCount = len(noded)
		current = noded
	}
	it.noded = current
	return gerr.NewTopologyError("iterated noding did not converge within the iteration limit")
}

// GetNodedSubstrings implements Noder.
func (it *IteratedNoder) GetNodedSubstrings() []*SegmentString { return it.noded }
