package noding

import (
	"math"

	"github.com/gogeos/geos/geom"
)

// ScaledNoder wraps another Noder and transforms its input into the
// integer domain before noding, then rescales the result back -- for use
// with noders (snap-rounding in particular) that only behave correctly
// on integer coordinates. Grounded on
// include/geos/noding/ScaledNoder.h.
type ScaledNoder struct {
	Inner       Noder
	ScaleFactor float64
	OffsetX     float64
	OffsetY     float64

	noded []*SegmentString
}

// IsIntegerPrecision reports whether scaling is a no-op.
func (s *ScaledNoder) IsIntegerPrecision() bool { return s.ScaleFactor == 1.0 }

// ComputeNodes implements Noder.
func (s *ScaledNoder) ComputeNodes(segStrings []*SegmentString) error {
	scaled := make([]*SegmentString, len(segStrings))
	for i, ss := range segStrings {
		scaled[i] = NewSegmentString(s.scaleSequence(ss.Coordinates()), ss.Context())
	}
	if err := s.Inner.ComputeNodes(scaled); err != nil {
		return err
	}
	out := s.Inner.GetNodedSubstrings()
	s.noded = make([]*SegmentString, len(out))
	for i, ss := range out {
		s.noded[i] = NewSegmentString(s.rescaleSequence(ss.Coordinates()), ss.Context())
	}
	return nil
}

// GetNodedSubstrings implements Noder.
func (s *ScaledNoder) GetNodedSubstrings() []*SegmentString { return s.noded }

func (s *ScaledNoder) scaleSequence(seq *geom.Sequence) *geom.Sequence {
	if s.ScaleFactor == 1.0 {
		return seq
	}
	coords := make([]geom.Coordinate, 0, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		c := seq.Get(i)
		scaled := geom.NewXY(
			math.Round((c.X-s.OffsetX)*s.ScaleFactor),
			math.Round((c.Y-s.OffsetY)*s.ScaleFactor),
		)
		// Skip points that round-collapse onto the previous output point
		// (scaling can make consecutive inputs coincide).
		if len(coords) > 0 && coords[len(coords)-1].Equals2D(scaled) {
			continue
		}
		coords = append(coords, scaled)
	}
	if len(coords) == 1 {
		coords = append(coords, coords[0])
	}
	out, _ := geom.NewSequence(coords)
	return out
}

func (s *ScaledNoder) rescaleSequence(seq *geom.Sequence) *geom.Sequence {
	if s.ScaleFactor == 1.0 {
		return seq
	}
	coords := make([]geom.Coordinate, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		c := seq.Get(i)
		coords[i] = geom.NewXY(c.X/s.ScaleFactor+s.OffsetX, c.Y/s.ScaleFactor+s.OffsetY)
	}
	out, _ := geom.NewSequence(coords)
	return out
}
