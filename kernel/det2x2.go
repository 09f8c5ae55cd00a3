package kernel

import "math"

// SignOfDet2x2 returns the exact sign of the 2x2 determinant
//
//	| x1 y1 |
//	| x2 y2 |
//
// for finite double inputs: -1 if negative, +1 if positive, 0 if exactly
// zero. It never relies on floating-point subtraction cancellation --
// instead it reduces the problem via a Euclidean-style continued-fraction
// algorithm, exactly as GEOS's RobustDeterminant::signOfDet2x2
// (original_source/source/algorithm/RobustDeterminant.cpp), translated to
// Go rather than re-derived, since it is the source of the
// "exactOrientation" fallback's exactness guarantee.
func SignOfDet2x2(x1, y1, x2, y2 float64) int {
	sign := 1

	if x1 == 0.0 || y2 == 0.0 {
		if y1 == 0.0 || x2 == 0.0 {
			return 0
		} else if y1 > 0 {
			if x2 > 0 {
				return -sign
			}
			return sign
		} else {
			if x2 > 0 {
				return sign
			}
			return -sign
		}
	}
	if y1 == 0.0 || x2 == 0.0 {
		if y2 > 0 {
			if x1 > 0 {
				return sign
			}
			return -sign
		} else {
			if x1 > 0 {
				return -sign
			}
			return sign
		}
	}

	// Make y coordinates positive and permute the entries so that y2 is
	// the larger one.
	if 0.0 < y1 {
		if 0.0 < y2 {
			if y1 <= y2 {
				// no-op
			} else {
				sign = -sign
				x1, x2 = x2, x1
				y1, y2 = y2, y1
			}
		} else {
			if y1 <= -y2 {
				sign = -sign
				x2 = -x2
				y2 = -y2
			} else {
				x1, x2 = -x2, x1
				y1, y2 = -y2, y1
			}
		}
	} else {
		if 0.0 < y2 {
			if -y1 <= y2 {
				sign = -sign
				x1 = -x1
				y1 = -y1
			} else {
				x1, x2 = x2, -x1
				y1, y2 = y2, -y1
			}
		} else {
			if y1 >= y2 {
				x1, y1 = -x1, -y1
				x2, y2 = -x2, -y2
			} else {
				sign = -sign
				x1, x2 = -x2, -x1
				y1, y2 = -y2, -y1
			}
		}
	}

	// Make x coordinates positive.
	if 0.0 < x1 {
		if 0.0 < x2 {
			if x1 <= x2 {
				// no-op
			} else {
				return sign
			}
		} else {
			return sign
		}
	} else {
		if 0.0 < x2 {
			return -sign
		}
		if x1 >= x2 {
			sign = -sign
			x1 = -x1
			x2 = -x2
		} else {
			return -sign
		}
	}

	// All entries are now strictly positive, x1 <= x2 and y1 <= y2.
	for {
		k := math.Floor(x2 / x1)
		x2 -= k * x1
		y2 -= k * y1

		if y2 < 0.0 {
			return -sign
		}
		if y2 > y1 {
			return sign
		}

		if x1 > x2+x2 {
			if y1 < y2+y2 {
				return sign
			}
		} else {
			if y1 > y2+y2 {
				return -sign
			}
			x2 = x1 - x2
			y2 = y1 - y2
			sign = -sign
		}
		if y2 == 0.0 {
			if x2 == 0.0 {
				return 0
			}
			return -sign
		}
		if x2 == 0.0 {
			return sign
		}

		k = math.Floor(x1 / x2)
		x1 -= k * x2
		y1 -= k * y2

		if y1 < 0.0 {
			return sign
		}
		if y1 > y2 {
			return -sign
		}

		if x2 > x1+x1 {
			if y2 < y1+y1 {
				return -sign
			}
		} else {
			if y2 > y1+y1 {
				return sign
			}
			x1 = x2 - x1
			y1 = y2 - y1
			sign = -sign
		}
		if y1 == 0.0 {
			if x1 == 0.0 {
				return 0
			}
			return sign
		}
		if x1 == 0.0 {
			return -sign
		}
	}
}
