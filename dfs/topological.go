// SPDX-License-Identifier: MIT

package dfs

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph Digraph
	state map[string]int // 0=White,1=Gray,2=Black
	order []string       // post-order
}

// TopologicalSort computes an ordering of all vertices of g such that for
// every edge u→v, u appears before v.
// If g is nil, returns ErrGraphNil. If a cycle exists, returns ErrCycleDetected.
//
// The order is deterministic for a deterministic Digraph.
func TopologicalSort(g Digraph) ([]string, error) {
	// 1. Validate graph
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Initialize sorter state
	verts := g.Vertices()
	sorter := &topoSorter{
		graph: g,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	// 3. Drive DFS from every unvisited vertex
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// 4. Reverse post-order to produce topological order
	return reverseInPlace(sorter.order), nil
}

// visit performs a DFS from id, marking states and detecting back-edges.
func (t *topoSorter) visit(id string) error {
	switch t.state[id] {
	case Gray:
		return ErrCycleDetected
	case Black:
		return nil
	}
	t.state[id] = Gray

	for _, nbr := range t.graph.Successors(id) {
		if err := t.visit(nbr); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
