package geom

import "github.com/gogeos/geos/gerr"

// Sequence is an ordered, random-access container of coordinates sharing one
// Shape. It is the backing store of every Geometry variant that owns
// coordinates directly (Point, LineString, LinearRing).
type Sequence struct {
	shape  Shape
	coords []Coordinate
}

// NewSequence builds a Sequence from coordinates, promoting every element to
// the common shape of the set (use NewSequenceShape to force a shape).
// It returns an error if any coordinate has a non-finite X or Y.
func NewSequence(coords []Coordinate) (*Sequence, error) {
	shape := XY
	for i, c := range coords {
		if !c.IsValid() {
			return nil, gerr.NewInvalidArgument("coordinate %d has non-finite X or Y", i)
		}
		if i == 0 {
			shape = c.Shape()
		} else {
			shape = CommonShape(shape, c.Shape())
		}
	}
	out := make([]Coordinate, len(coords))
	for i, c := range coords {
		out[i] = c.WithShape(shape)
	}
	return &Sequence{shape: shape, coords: out}, nil
}

// NewSequenceShape builds a Sequence forcing every coordinate to shape s.
func NewSequenceShape(coords []Coordinate, s Shape) (*Sequence, error) {
	out := make([]Coordinate, len(coords))
	for i, c := range coords {
		if !c.IsValid() {
			return nil, gerr.NewInvalidArgument("coordinate %d has non-finite X or Y", i)
		}
		out[i] = c.WithShape(s)
	}
	return &Sequence{shape: s, coords: out}, nil
}

// EmptySequence returns a zero-length sequence of the given shape.
func EmptySequence(s Shape) *Sequence {
	return &Sequence{shape: s, coords: nil}
}

// Len returns the number of coordinates in the sequence.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.coords)
}

// Shape reports the sequence's common coordinate shape.
func (s *Sequence) Shape() Shape { return s.shape }

// Get returns the i'th coordinate.
func (s *Sequence) Get(i int) Coordinate { return s.coords[i] }

// GetX returns the X ordinate of the i'th coordinate.
func (s *Sequence) GetX(i int) float64 { return s.coords[i].X }

// GetY returns the Y ordinate of the i'th coordinate.
func (s *Sequence) GetY(i int) float64 { return s.coords[i].Y }

// Set overwrites the i'th coordinate in place, reshaping it to the
// sequence's shape.
func (s *Sequence) Set(i int, c Coordinate) { s.coords[i] = c.WithShape(s.shape) }

// Append returns a new Sequence with c appended, reshaping c to match.
func (s *Sequence) Append(c Coordinate) *Sequence {
	out := make([]Coordinate, len(s.coords)+1)
	copy(out, s.coords)
	out[len(s.coords)] = c.WithShape(s.shape)
	return &Sequence{shape: s.shape, coords: out}
}

// Clone returns a deep copy of the sequence.
func (s *Sequence) Clone() *Sequence {
	out := make([]Coordinate, len(s.coords))
	copy(out, s.coords)
	return &Sequence{shape: s.shape, coords: out}
}

// Reversed returns a new Sequence with coordinate order reversed.
func (s *Sequence) Reversed() *Sequence {
	n := len(s.coords)
	out := make([]Coordinate, n)
	for i, c := range s.coords {
		out[n-1-i] = c
	}
	return &Sequence{shape: s.shape, coords: out}
}

// Coordinates returns the backing slice directly; callers must not mutate
// it (use Clone first if a private copy is required).
func (s *Sequence) Coordinates() []Coordinate {
	if s == nil {
		return nil
	}
	return s.coords
}

// IsClosed reports whether the first and last coordinates are 2D-equal.
// A sequence of fewer than 2 points is never closed.
func (s *Sequence) IsClosed() bool {
	n := len(s.coords)
	if n < 2 {
		return false
	}
	return s.coords[0].Equals2D(s.coords[n-1])
}

// FilterApply calls f on every coordinate in order, replacing it with f's
// return value.
func (s *Sequence) FilterApply(f func(Coordinate) Coordinate) {
	for i, c := range s.coords {
		s.coords[i] = f(c).WithShape(s.shape)
	}
}

// Equals reports exact, ordinate-wise equality.
func (s *Sequence) Equals(o *Sequence) bool {
	if s.Len() != o.Len() {
		return false
	}
	for i := range s.coords {
		if !s.coords[i].Equals(o.coords[i]) {
			return false
		}
	}
	return true
}
