package matching

import (
	"sort"

	"github.com/fenceworks/piste/pairgraph"
)

// MinWeight computes a minimum-weight maximum-cardinality matching of g.
//
// Among all matchings that cover the largest possible number of vertices,
// it returns one whose total edge weight is minimal. Each returned Pair
// holds U < V, and pairs are sorted by U ascending. Vertices left out of
// the matching simply do not appear in the result.
//
// An empty or edgeless graph yields an empty matching; a nil graph yields
// ErrNilGraph.
func MinWeight(g *pairgraph.Graph) ([]Pair, error) {
	// 1) Guard the input.
	if g == nil {
		return nil, ErrNilGraph
	}

	vertices := g.Vertices()
	if len(vertices) < 2 || g.EdgeCount() == 0 {
		return []Pair{}, nil
	}

	// 2) Compact vertex ids into 0..n-1 indices. Vertices() is sorted
	//    ascending, which fixes the indexing and keeps runs reproducible.
	index := make(map[int]int, len(vertices))
	for i, id := range vertices {
		index[id] = i
	}

	// 3) Flip weights so the maximizer minimizes: w' = maxW + 1 - w keeps
	//    every edge strictly attractive, and under maximum cardinality the
	//    heaviest transformed matching is exactly the lightest original one.
	var maxW int64
	for _, e := range g.Edges() {
		if e.Weight > maxW {
			maxW = e.Weight
		}
	}
	edges := make([]blossomEdge, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		edges = append(edges, blossomEdge{
			u:      index[e.U],
			v:      index[e.V],
			weight: maxW + 1 - e.Weight,
		})
	}

	// 4) Run the blossom solver in maximum-cardinality mode.
	mate := maxWeightMatching(len(vertices), edges, true)

	// 5) Translate mates back to original ids, once per matched pair.
	pairs := make([]Pair, 0, len(vertices)/2)
	for i, j := range mate {
		if j < 0 || j < i {
			continue
		}
		u, v := vertices[i], vertices[j]
		if u > v {
			u, v = v, u
		}
		pairs = append(pairs, Pair{U: u, V: v})
	}
	sort.Slice(pairs, func(a, b int) bool { return pairs[a].U < pairs[b].U })

	return pairs, nil
}
