package noding

// Noder computes a consistent node set for a collection of input
// segment strings and returns the split result.
type Noder interface {
	ComputeNodes(segStrings []*SegmentString) error
	GetNodedSubstrings() []*SegmentString
}

// intersectionAdder is the callback shape for recording an intersection
// between segment segA of a and segment segB of b, grounded on
// original_source/source/noding/SimpleNoder.cpp's processIntersections
// callback shape. No noder in this package takes one: SimpleNoder calls
// addIntersections directly and MCIndexNoder records intersections
// inline in its overlap action.
type intersectionAdder func(a, b *NodableString, segA, segB int)
