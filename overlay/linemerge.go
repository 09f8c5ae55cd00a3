package overlay

import "github.com/gogeos/geos/geom"

// lineNeighbor identifies one edge incident to a node and which of its
// two ends touches that node.
type lineNeighbor struct {
	edge    int
	atStart bool
}

func coordKey(c geom.Coordinate) [2]float64 { return [2]float64{c.X, c.Y} }

func reverseCoords(coords []geom.Coordinate) []geom.Coordinate {
	out := make([]geom.Coordinate, len(coords))
	for i, c := range coords {
		out[len(coords)-1-i] = c
	}
	return out
}

// mergeLineChains dissolves a set of surviving edges (each a coordinate
// path from one node to another) into maximal LineStrings: a chain only
// continues through a node when exactly two edge-ends meet there, the
// same "no ambiguity" rule a branch or dangling endpoint breaks.
// Applies planar.Graph's node-degree reasoning (see SortEdgesAroundNodes)
// directly to coordinate paths rather than a half-edge graph, since line
// edges carry no left/right face to traverse.
func mergeLineChains(edges [][]geom.Coordinate, factory *geom.Factory) ([]*geom.LineString, error) {
	incidence := map[[2]float64][]lineNeighbor{}
	for i, e := range edges {
		incidence[coordKey(e[0])] = append(incidence[coordKey(e[0])], lineNeighbor{edge: i, atStart: true})
		incidence[coordKey(e[len(e)-1])] = append(incidence[coordKey(e[len(e)-1])], lineNeighbor{edge: i, atStart: false})
	}

	used := make([]bool, len(edges))
	var result []*geom.LineString
	for i := range edges {
		if used[i] {
			continue
		}
		used[i] = true
		chain := append([]geom.Coordinate{}, edges[i]...)

		for {
			nb, ok := soleUnusedNeighbor(incidence[coordKey(chain[len(chain)-1])], used)
			if !ok {
				break
			}
			used[nb.edge] = true
			seg := edges[nb.edge]
			if nb.atStart {
				chain = append(chain, seg[1:]...)
			} else {
				chain = append(chain, reverseCoords(seg)[1:]...)
			}
		}

		for {
			nb, ok := soleUnusedNeighbor(incidence[coordKey(chain[0])], used)
			if !ok {
				break
			}
			used[nb.edge] = true
			seg := edges[nb.edge]
			var prefix []geom.Coordinate
			if nb.atStart {
				prefix = reverseCoords(seg)
			} else {
				prefix = seg
			}
			chain = append(append([]geom.Coordinate{}, prefix[:len(prefix)-1]...), chain...)
		}

		ls, err := factory.CreateLineString(chain)
		if err != nil {
			return nil, err
		}
		result = append(result, ls)
	}
	return result, nil
}

// soleUnusedNeighbor returns the neighbor edge of incident that isn't
// already consumed, but only when exactly two edge-ends meet at the
// node -- a degree other than 2 means a branch point or dangling
// endpoint, where dissolving further would merge ambiguously.
func soleUnusedNeighbor(incident []lineNeighbor, used []bool) (lineNeighbor, bool) {
	if len(incident) != 2 {
		return lineNeighbor{}, false
	}
	for _, nb := range incident {
		if !used[nb.edge] {
			return nb, true
		}
	}
	return lineNeighbor{}, false
}
