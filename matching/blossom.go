package matching

// Edmonds' blossom algorithm for maximum-weight matching on a general graph,
// in Galil's O(V³) formulation with dual variables.
//
// Conventions, shared by every routine below:
//
//   - Vertices are 0..nvertex-1. Edge k has two endpoints numbered 2k and
//     2k+1; endpoint[p] is the vertex at endpoint p, and p^1 is the
//     opposite endpoint of the same edge.
//   - Blossoms are numbered nvertex..2*nvertex-1; a number b < nvertex is a
//     plain vertex. Top-level blossoms have blossomParent[b] == -1.
//   - label[b] is 0 (free), 1 (S: even depth in an alternating tree) or
//     2 (T: odd depth); labelEnd[b] is the endpoint through which b got its
//     label, or -1 for the root of a tree.
//   - mate[v] is the remote endpoint of v's matched edge, or -1.
//   - dualVar holds vertex duals u and blossom duals z in the halved units
//     of Galil's presentation; edge weights are doubled by the caller so
//     that every slack and delta stays integral.
//
// An edge is "allowed" (tight) once its slack reaches zero; only allowed
// edges grow the forest or trigger augmentations.

// blossomEdge is one weighted edge of the matching instance.
type blossomEdge struct {
	u, v   int
	weight int64
}

// blossomContext carries the full mutable state of one matching computation.
type blossomContext struct {
	nvertex        int
	edges          []blossomEdge
	maxCardinality bool

	maxWeight int64
	endpoint  []int   // endpoint[p]: vertex at endpoint p
	neighbEnd [][]int // neighbEnd[v]: remote endpoints of v's edges

	mate     []int
	label    []int
	labelEnd []int

	inBlossom        []int
	blossomParent    []int
	blossomChilds    [][]int
	blossomBase      []int
	blossomEndps     [][]int
	bestEdge         []int
	blossomBestEdges [][]int
	unusedBlossoms   []int

	dualVar   []int64
	allowEdge []bool
	queue     []int
}

// maxWeightMatching computes a maximum-weight matching over n vertices.
// When maxCardinality is true, only matchings of maximum cardinality are
// considered. The result maps each vertex to its mate, or -1 if single.
//
// Weights are doubled internally; callers pass them as-is.
func maxWeightMatching(n int, edges []blossomEdge, maxCardinality bool) []int {
	if n == 0 {
		return nil
	}

	c := &blossomContext{
		nvertex:        n,
		edges:          make([]blossomEdge, len(edges)),
		maxCardinality: maxCardinality,
	}
	// Double all weights so dual arithmetic stays integral throughout.
	for k, e := range edges {
		c.edges[k] = blossomEdge{u: e.u, v: e.v, weight: 2 * e.weight}
		if c.edges[k].weight > c.maxWeight {
			c.maxWeight = c.edges[k].weight
		}
	}

	c.initialize()
	c.run()

	return c.mate
}

// initialize allocates the stage-independent state.
func (c *blossomContext) initialize() {
	n, m := c.nvertex, len(c.edges)

	c.endpoint = make([]int, 2*m)
	c.neighbEnd = make([][]int, n)
	for k, e := range c.edges {
		c.endpoint[2*k] = e.u
		c.endpoint[2*k+1] = e.v
		c.neighbEnd[e.u] = append(c.neighbEnd[e.u], 2*k+1)
		c.neighbEnd[e.v] = append(c.neighbEnd[e.v], 2*k)
	}

	c.mate = make([]int, n)
	c.label = make([]int, 2*n)
	c.labelEnd = make([]int, 2*n)
	c.inBlossom = make([]int, n)
	c.blossomParent = make([]int, 2*n)
	c.blossomChilds = make([][]int, 2*n)
	c.blossomBase = make([]int, 2*n)
	c.blossomEndps = make([][]int, 2*n)
	c.bestEdge = make([]int, 2*n)
	c.blossomBestEdges = make([][]int, 2*n)
	c.dualVar = make([]int64, 2*n)
	c.allowEdge = make([]bool, m)

	for v := 0; v < n; v++ {
		c.mate[v] = -1
		c.inBlossom[v] = v
		c.blossomBase[v] = v
		c.dualVar[v] = c.maxWeight
	}
	for b := 0; b < 2*n; b++ {
		c.labelEnd[b] = -1
		c.blossomParent[b] = -1
		c.bestEdge[b] = -1
	}
	for b := n; b < 2*n; b++ {
		c.blossomBase[b] = -1
		c.unusedBlossoms = append(c.unusedBlossoms, b)
	}
}

// slack returns the reduced cost of edge k. Zero means tight.
func (c *blossomContext) slack(k int) int64 {
	e := c.edges[k]

	return c.dualVar[e.u] + c.dualVar[e.v] - 2*e.weight
}

// appendLeaves collects the plain vertices inside blossom b, depth-first in
// child order.
func (c *blossomContext) appendLeaves(out *[]int, b int) {
	if b < c.nvertex {
		*out = append(*out, b)
		return
	}
	for _, t := range c.blossomChilds[b] {
		c.appendLeaves(out, t)
	}
}

// blossomLeaves returns the plain vertices inside blossom b.
func (c *blossomContext) blossomLeaves(b int) []int {
	var leaves []int
	c.appendLeaves(&leaves, b)

	return leaves
}

// assignLabel gives vertex w's top-level blossom label t, reached through
// endpoint p. An S label queues the blossom's vertices for scanning; a T
// label immediately extends the tree through the base's matched edge.
func (c *blossomContext) assignLabel(w, t, p int) {
	b := c.inBlossom[w]
	c.label[w] = t
	c.label[b] = t
	c.labelEnd[w] = p
	c.labelEnd[b] = p
	c.bestEdge[w] = -1
	c.bestEdge[b] = -1

	switch t {
	case 1:
		c.queue = append(c.queue, c.blossomLeaves(b)...)
	case 2:
		base := c.blossomBase[b]
		c.assignLabel(c.endpoint[c.mate[base]], 1, c.mate[base]^1)
	}
}

// scanBlossom traces back from v and w towards the roots of their trees.
// It returns the base of the new blossom when the paths first meet, or -1
// when they reach different roots (an augmenting path was found).
func (c *blossomContext) scanBlossom(v, w int) int {
	// Bit 4 marks visited blossoms along the two paths.
	var path []int
	base := -1

	for v != -1 || w != -1 {
		b := c.inBlossom[v]
		if c.label[b]&4 != 0 {
			base = c.blossomBase[b]
			break
		}
		path = append(path, b)
		c.label[b] |= 4

		// Step to the parent blossom in the tree, if any.
		if c.labelEnd[b] == -1 {
			// Root of the tree: this side is exhausted.
			v = -1
		} else {
			v = c.endpoint[c.labelEnd[b]]
			b = c.inBlossom[v]
			// b is a T-blossom here; continue through its own entry.
			v = c.endpoint[c.labelEnd[b]]
		}

		// Alternate between the two paths.
		if w != -1 {
			v, w = w, v
		}
	}

	// Clear the visit marks.
	for _, b := range path {
		c.label[b] &^= 4
	}

	return base
}

// addBlossom collapses the odd cycle closed by edge k, whose paths meet at
// base, into a fresh blossom carrying label S.
func (c *blossomContext) addBlossom(base, k int) {
	v, w := c.edges[k].u, c.edges[k].v
	bb := c.inBlossom[base]
	bv := c.inBlossom[v]
	bw := c.inBlossom[w]

	// Claim an unused blossom number.
	b := c.unusedBlossoms[len(c.unusedBlossoms)-1]
	c.unusedBlossoms = c.unusedBlossoms[:len(c.unusedBlossoms)-1]

	c.blossomBase[b] = base
	c.blossomParent[b] = -1
	c.blossomParent[bb] = b

	// Walk both halves of the cycle, collecting sub-blossoms and the
	// endpoints connecting them.
	var path, endps []int
	for bv != bb {
		c.blossomParent[bv] = b
		path = append(path, bv)
		endps = append(endps, c.labelEnd[bv])
		v = c.endpoint[c.labelEnd[bv]]
		bv = c.inBlossom[v]
	}
	path = append(path, bb)
	reverseInts(path)
	reverseInts(endps)
	endps = append(endps, 2*k)

	for bw != bb {
		c.blossomParent[bw] = b
		path = append(path, bw)
		endps = append(endps, c.labelEnd[bw]^1)
		w = c.endpoint[c.labelEnd[bw]]
		bw = c.inBlossom[w]
	}

	c.blossomChilds[b] = path
	c.blossomEndps[b] = endps
	c.label[b] = 1
	c.labelEnd[b] = c.labelEnd[bb]
	c.dualVar[b] = 0

	// Relabel the absorbed vertices; former T-vertices turn S and need
	// scanning.
	for _, leaf := range c.blossomLeaves(b) {
		if c.label[c.inBlossom[leaf]] == 2 {
			c.queue = append(c.queue, leaf)
		}
		c.inBlossom[leaf] = b
	}

	// Recompute the blossom's least-slack edges to every other S-blossom.
	bestEdgeTo := make([]int, 2*c.nvertex)
	for i := range bestEdgeTo {
		bestEdgeTo[i] = -1
	}
	for _, sub := range path {
		var lists [][]int
		if c.blossomBestEdges[sub] == nil {
			for _, leaf := range c.blossomLeaves(sub) {
				list := make([]int, len(c.neighbEnd[leaf]))
				for i, p := range c.neighbEnd[leaf] {
					list[i] = p / 2
				}
				lists = append(lists, list)
			}
		} else {
			lists = [][]int{c.blossomBestEdges[sub]}
		}
		for _, list := range lists {
			for _, edge := range list {
				i, j := c.edges[edge].u, c.edges[edge].v
				if c.inBlossom[j] == b {
					i, j = j, i
				}
				bj := c.inBlossom[j]
				if bj != b && c.label[bj] == 1 &&
					(bestEdgeTo[bj] == -1 || c.slack(edge) < c.slack(bestEdgeTo[bj])) {
					bestEdgeTo[bj] = edge
				}
			}
		}
		c.blossomBestEdges[sub] = nil
		c.bestEdge[sub] = -1
	}

	var best []int
	for _, edge := range bestEdgeTo {
		if edge != -1 {
			best = append(best, edge)
		}
	}
	c.blossomBestEdges[b] = best
	c.bestEdge[b] = -1
	for _, edge := range best {
		if c.bestEdge[b] == -1 || c.slack(edge) < c.slack(c.bestEdge[b]) {
			c.bestEdge[b] = edge
		}
	}
}

// expandBlossom dissolves blossom b into its sub-blossoms. During a stage
// (endStage false) it is called for T-blossoms whose dual hit zero and must
// relabel the exposed sub-blossoms; at the end of a stage (endStage true)
// it unwraps S-blossoms with zero dual recursively.
func (c *blossomContext) expandBlossom(b int, endStage bool) {
	for _, s := range c.blossomChilds[b] {
		c.blossomParent[s] = -1
		switch {
		case s < c.nvertex:
			c.inBlossom[s] = s
		case endStage && c.dualVar[s] == 0:
			c.expandBlossom(s, endStage)
		default:
			for _, leaf := range c.blossomLeaves(s) {
				c.inBlossom[leaf] = s
			}
		}
	}

	if !endStage && c.label[b] == 2 {
		// Relabel along the cycle from the entry sub-blossom to the base.
		childs := c.blossomChilds[b]
		endps := c.blossomEndps[b]
		size := len(childs)

		entryChild := c.inBlossom[c.endpoint[c.labelEnd[b]^1]]
		j := indexOf(childs, entryChild)
		var jstep, endpTrick int
		if j&1 != 0 {
			// Odd entry index: walk forward around the cycle.
			j -= size
			jstep = 1
			endpTrick = 0
		} else {
			// Even entry index: walk backward.
			jstep = -1
			endpTrick = 1
		}

		p := c.labelEnd[b]
		for j != 0 {
			// Relabel the T-sub-blossom reached through p.
			c.label[c.endpoint[p^1]] = 0
			c.label[c.endpoint[at(endps, j-endpTrick)^endpTrick^1]] = 0
			c.assignLabel(c.endpoint[p^1], 2, p)

			// Step across the next two tight cycle edges.
			c.allowEdge[at(endps, j-endpTrick)/2] = true
			j += jstep
			p = at(endps, j-endpTrick) ^ endpTrick
			c.allowEdge[p/2] = true
			j += jstep
		}

		// The base keeps label T without re-walking its matched edge.
		bv := at(childs, j)
		c.label[c.endpoint[p^1]] = 2
		c.label[bv] = 2
		c.labelEnd[c.endpoint[p^1]] = p
		c.labelEnd[bv] = p
		c.bestEdge[bv] = -1

		// The remaining sub-blossoms keep label 0 unless a vertex inside
		// was reached from outside the expanding blossom.
		j += jstep
		for at(childs, j) != entryChild {
			bv = at(childs, j)
			if c.label[bv] == 1 {
				j += jstep
				continue
			}
			labeled := -1
			for _, leaf := range c.blossomLeaves(bv) {
				if c.label[leaf] != 0 {
					labeled = leaf
					break
				}
			}
			if labeled != -1 {
				c.label[labeled] = 0
				c.label[c.endpoint[c.mate[c.blossomBase[bv]]]] = 0
				c.assignLabel(labeled, 2, c.labelEnd[labeled])
			}
			j += jstep
		}
	}

	// Retire the blossom number.
	c.label[b] = -1
	c.labelEnd[b] = -1
	c.blossomChilds[b] = nil
	c.blossomEndps[b] = nil
	c.blossomBase[b] = -1
	c.blossomBestEdges[b] = nil
	c.bestEdge[b] = -1
	c.unusedBlossoms = append(c.unusedBlossoms, b)
}

// augmentBlossom swaps matched and unmatched edges around blossom b so that
// vertex v becomes its new base, recursing into sub-blossoms.
func (c *blossomContext) augmentBlossom(b, v int) {
	// Find the immediate sub-blossom of b containing v.
	t := v
	for c.blossomParent[t] != b {
		t = c.blossomParent[t]
	}
	if t >= c.nvertex {
		c.augmentBlossom(t, v)
	}

	childs := c.blossomChilds[b]
	endps := c.blossomEndps[b]
	size := len(childs)

	i := indexOf(childs, t)
	j := i
	var jstep, endpTrick int
	if i&1 != 0 {
		j -= size
		jstep = 1
		endpTrick = 0
	} else {
		jstep = -1
		endpTrick = 1
	}

	// Walk the cycle towards the base, re-matching pairs of edges.
	for j != 0 {
		j += jstep
		t = at(childs, j)
		p := at(endps, j-endpTrick) ^ endpTrick
		if t >= c.nvertex {
			c.augmentBlossom(t, c.endpoint[p])
		}
		j += jstep
		t = at(childs, j)
		if t >= c.nvertex {
			c.augmentBlossom(t, c.endpoint[p^1])
		}
		c.mate[c.endpoint[p]] = p ^ 1
		c.mate[c.endpoint[p^1]] = p
	}

	// Rotate the child list so the new base comes first.
	c.blossomChilds[b] = append(childs[i:], childs[:i]...)
	c.blossomEndps[b] = append(endps[i:], endps[:i]...)
	c.blossomBase[b] = c.blossomBase[c.blossomChilds[b][0]]
}

// augmentMatching flips matched and unmatched edges along the augmenting
// path through edge k, enlarging the matching by one.
func (c *blossomContext) augmentMatching(k int) {
	starts := [2]struct{ s, p int }{
		{c.edges[k].u, 2*k + 1},
		{c.edges[k].v, 2 * k},
	}
	for _, sp := range starts {
		s, p := sp.s, sp.p
		for {
			bs := c.inBlossom[s]
			if bs >= c.nvertex {
				c.augmentBlossom(bs, s)
			}
			c.mate[s] = p

			if c.labelEnd[bs] == -1 {
				// Reached the root of the tree.
				break
			}

			// Trace back through the T-blossom above.
			t := c.endpoint[c.labelEnd[bs]]
			bt := c.inBlossom[t]
			s = c.endpoint[c.labelEnd[bt]]
			j := c.endpoint[c.labelEnd[bt]^1]
			if bt >= c.nvertex {
				c.augmentBlossom(bt, j)
			}
			c.mate[j] = c.labelEnd[bt]
			p = c.labelEnd[bt] ^ 1
		}
	}
}

// run executes the augmentation stages until no further progress is
// possible, then converts mate entries from endpoints to vertices.
func (c *blossomContext) run() {
	n := c.nvertex

	for stage := 0; stage < n; stage++ {
		// 1) Reset per-stage state and root a tree at every free vertex.
		for b := 0; b < 2*n; b++ {
			c.label[b] = 0
			c.bestEdge[b] = -1
		}
		for b := n; b < 2*n; b++ {
			c.blossomBestEdges[b] = nil
		}
		for k := range c.allowEdge {
			c.allowEdge[k] = false
		}
		c.queue = c.queue[:0]
		for v := 0; v < n; v++ {
			if c.mate[v] == -1 && c.label[c.inBlossom[v]] == 0 {
				c.assignLabel(v, 1, -1)
			}
		}

		augmented := false
		for {
			// 2) Scan S-vertices until the queue drains or we augment.
			for len(c.queue) > 0 && !augmented {
				v := c.queue[len(c.queue)-1]
				c.queue = c.queue[:len(c.queue)-1]

				for _, p := range c.neighbEnd[v] {
					k := p / 2
					w := c.endpoint[p]
					if c.inBlossom[v] == c.inBlossom[w] {
						// Internal blossom edge; ignore.
						continue
					}

					var kslack int64
					if !c.allowEdge[k] {
						kslack = c.slack(k)
						if kslack <= 0 {
							c.allowEdge[k] = true
						}
					}

					switch {
					case c.allowEdge[k]:
						switch {
						case c.label[c.inBlossom[w]] == 0:
							// Free blossom: extend the tree with a T label.
							c.assignLabel(w, 2, p^1)
						case c.label[c.inBlossom[w]] == 1:
							// S-to-S edge: either a new blossom or an
							// augmenting path.
							base := c.scanBlossom(v, w)
							if base >= 0 {
								c.addBlossom(base, k)
							} else {
								c.augmentMatching(k)
								augmented = true
							}
						case c.label[w] == 0:
							// Inside a T-blossom, vertex not yet reached.
							c.label[w] = 2
							c.labelEnd[w] = p ^ 1
						}
					case c.label[c.inBlossom[w]] == 1:
						// Track least-slack edge between S-blossoms.
						b := c.inBlossom[v]
						if c.bestEdge[b] == -1 || kslack < c.slack(c.bestEdge[b]) {
							c.bestEdge[b] = k
						}
					case c.label[w] == 0:
						// Track least-slack edge reaching a free vertex.
						if c.bestEdge[w] == -1 || kslack < c.slack(c.bestEdge[w]) {
							c.bestEdge[w] = k
						}
					}
					if augmented {
						break
					}
				}
			}
			if augmented {
				break
			}

			// 3) No tight edge left: compute the dual adjustment delta.
			deltaType := -1
			var delta int64
			deltaEdge, deltaBlossom := -1, -1

			if !c.maxCardinality {
				deltaType = 1
				delta = minDual(c.dualVar[:n])
			}
			for v := 0; v < n; v++ {
				if c.label[c.inBlossom[v]] == 0 && c.bestEdge[v] != -1 {
					d := c.slack(c.bestEdge[v])
					if deltaType == -1 || d < delta {
						delta = d
						deltaType = 2
						deltaEdge = c.bestEdge[v]
					}
				}
			}
			for b := 0; b < 2*n; b++ {
				if c.blossomParent[b] == -1 && c.label[b] == 1 && c.bestEdge[b] != -1 {
					d := c.slack(c.bestEdge[b]) / 2
					if deltaType == -1 || d < delta {
						delta = d
						deltaType = 3
						deltaEdge = c.bestEdge[b]
					}
				}
			}
			for b := n; b < 2*n; b++ {
				if c.blossomBase[b] >= 0 && c.blossomParent[b] == -1 &&
					c.label[b] == 2 && (deltaType == -1 || c.dualVar[b] < delta) {
					delta = c.dualVar[b]
					deltaType = 4
					deltaBlossom = b
				}
			}
			if deltaType == -1 {
				// No progress possible under maximum-cardinality mode:
				// clamp the duals to zero and stop after this round.
				deltaType = 1
				delta = minDual(c.dualVar[:n])
				if delta < 0 {
					delta = 0
				}
			}

			// 4) Apply delta to vertex and top-level blossom duals.
			for v := 0; v < n; v++ {
				switch c.label[c.inBlossom[v]] {
				case 1:
					c.dualVar[v] -= delta
				case 2:
					c.dualVar[v] += delta
				}
			}
			for b := n; b < 2*n; b++ {
				if c.blossomBase[b] >= 0 && c.blossomParent[b] == -1 {
					switch c.label[b] {
					case 1:
						c.dualVar[b] += delta
					case 2:
						c.dualVar[b] -= delta
					}
				}
			}

			// 5) Act where the minimum was attained.
			switch deltaType {
			case 1:
				// Optimum reached.
			case 2:
				c.allowEdge[deltaEdge] = true
				i := c.edges[deltaEdge].u
				if c.label[c.inBlossom[i]] == 0 {
					i = c.edges[deltaEdge].v
				}
				c.queue = append(c.queue, i)
			case 3:
				c.allowEdge[deltaEdge] = true
				c.queue = append(c.queue, c.edges[deltaEdge].u)
			case 4:
				c.expandBlossom(deltaBlossom, false)
			}
			if deltaType == 1 {
				break
			}
		}

		if !augmented {
			break
		}

		// 6) End of stage: expand S-blossoms whose dual dropped to zero.
		for b := n; b < 2*n; b++ {
			if c.blossomParent[b] == -1 && c.blossomBase[b] >= 0 &&
				c.label[b] == 1 && c.dualVar[b] == 0 {
				c.expandBlossom(b, true)
			}
		}
	}

	// Convert mate from endpoint numbers to vertex ids.
	for v := 0; v < n; v++ {
		if c.mate[v] >= 0 {
			c.mate[v] = c.endpoint[c.mate[v]]
		}
	}
}

// at indexes a cycle list with Python-style wrap-around for negative and
// overflowing positions.
func at(list []int, i int) int {
	n := len(list)
	i %= n
	if i < 0 {
		i += n
	}

	return list[i]
}

// indexOf returns the position of x in list; the caller guarantees presence.
func indexOf(list []int, x int) int {
	for i, v := range list {
		if v == x {
			return i
		}
	}

	return -1
}

// reverseInts reverses the slice in place.
func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// minDual returns the smallest value in s; s is never empty here.
func minDual(s []int64) int64 {
	m := s[0]
	for _, v := range s[1:] {
		if v < m {
			m = v
		}
	}

	return m
}
