// SPDX-License-Identifier: MIT
// File: methods_weights.go
// Role: Weight mutation and weight queries: UpdateEdge, EdgeWeight, DegreeOf,
//       CumulativeEdgeWeights, TotalWeight.
// Notes:
//   - UpdateEdge(updateAll=true) adjusts aggregates by a single delta taken
//     from the first parallel edge. With diverging parallel weights the cached
//     OptimalWeightedDegree then differs from DegreeOf. Kept as is.
//   - EdgeWeight(getAllParallel=true) selects ONE edge; false sums all of them.

package core

// UpdateEdge sets edge weights between u and v.
//
// Implementation:
//   - Stage 1: Validate weight; resolve both names (ErrNodeNotFound + log).
//   - Stage 2: No edge between u and v: insert one, exactly like AddEdge.
//   - Stage 3 (updateAll=false): replace the weight of the edge at parallelIdx;
//     both aggregates move by new-old of that edge.
//   - Stage 3 (updateAll=true): every parallel edge gets weight; both
//     aggregates move once by weight-old, old being the first edge's weight.
//
// Errors:
//   - ErrBadWeight, ErrLoopNotAllowed, ErrNodeNotFound, ErrParallelIndex.
//
// Complexity:
//   - Time O(1) single, O(k) for k parallel edges with updateAll.
func (g *Graph) UpdateEdge(u, v string, weight float64, parallelIdx int, updateAll bool) error {
	const op = "UpdateEdge"
	if err := g.checkEdge(op, u == v, weight); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	hu, hv, err := g.resolvePair(op, u, v)
	if err != nil {
		return err
	}
	list := g.pairs[pairKey{hu, hv}]
	if len(list) == 0 {
		g.insertEdge(hu, hv, weight)

		return nil
	}

	if !updateAll {
		if parallelIdx < 0 || parallelIdx >= len(list) {
			return g.badParallelIndex(op, u, v, parallelIdx, len(list))
		}
		e := &g.edges[list[parallelIdx].slot].edge
		g.addDegree(hu, hv, weight-e.Weight)
		e.Weight = weight

		return nil
	}

	first := g.edges[list[0].slot].edge.Weight
	g.addDegree(hu, hv, weight-first)
	var eh EdgeHandle
	for _, eh = range list {
		g.edges[eh.slot].edge.Weight = weight
	}

	return nil
}

// EdgeWeight reads edge weights between u and v.
//
// getAllParallel=true returns the weight of the single parallel edge at
// parallelIdx; getAllParallel=false sums every parallel edge. The flag name
// does not describe its effect; callers depend on the current meaning.
//
// Returns (0, nil) when the nodes exist but share no edge, and
// (0, ErrNodeNotFound) when either node is missing.
//
// Complexity: O(1) single, O(k) sum.
func (g *Graph) EdgeWeight(u, v string, parallelIdx int, getAllParallel bool) (float64, error) {
	const op = "EdgeWeight"

	g.mu.RLock()
	defer g.mu.RUnlock()

	hu, hv, err := g.resolvePair(op, u, v)
	if err != nil {
		return 0, err
	}
	list := g.pairs[pairKey{hu, hv}]
	if len(list) == 0 {
		return 0, nil
	}
	if getAllParallel {
		if parallelIdx < 0 || parallelIdx >= len(list) {
			return 0, g.badParallelIndex(op, u, v, parallelIdx, len(list))
		}

		return g.edges[list[parallelIdx].slot].edge.Weight, nil
	}

	return g.sumWeights(list), nil
}

func (g *Graph) sumWeights(list []EdgeHandle) float64 {
	var (
		sum float64
		e   EdgeHandle
	)
	for _, e = range list {
		sum += g.edges[e.slot].edge.Weight
	}

	return sum
}

// DegreeOf recomputes the weighted degree of name from its live incident
// edges, ignoring the cached aggregate. A self-loop counts once.
//
// Errors:
//   - ErrNodeNotFound (logged); the value is then 0.
//
// Complexity: O(deg(name)).
func (g *Graph) DegreeOf(name string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	h, ok := g.resolve(name)
	if !ok {
		return 0, g.nodeNotFound("DegreeOf", name)
	}

	return g.degreeOf(h), nil
}

func (g *Graph) degreeOf(h NodeHandle) float64 {
	var (
		deg float64
		nb  NodeHandle
	)
	for _, nb = range g.nodes[h.slot].nbrs {
		deg += g.sumWeights(g.pairs[pairKey{h, nb}])
	}

	return deg
}

// CumulativeEdgeWeights returns the running sum of 2·weight over edges in
// slot order: out[i] = Σ_{j≤i} 2·w_j. It is the cumulative distribution a
// caller needs to sample edges proportionally to their incidence weight.
// Complexity: O(E).
func (g *Graph) CumulativeEdgeWeights() []float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]float64, 0, g.edgeCount)
	var total float64
	for i := range g.edges {
		if !g.edges[i].alive {
			continue
		}
		total += 2 * g.edges[i].edge.Weight
		out = append(out, total)
	}

	return out
}

// TotalWeight returns the sum of all edge weights.
// Complexity: O(E).
func (g *Graph) TotalWeight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.totalWeight()
}

func (g *Graph) totalWeight() float64 {
	var total float64
	for i := range g.edges {
		if g.edges[i].alive {
			total += g.edges[i].edge.Weight
		}
	}

	return total
}
