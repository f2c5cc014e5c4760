// SPDX-License-Identifier: MIT

package dfs

// FindCycle returns one directed cycle of g as a closed path
// [v0, v1, ..., v0], or nil if g is acyclic (or nil).
//
// A self-loop u→u is reported as [u, u].
func FindCycle(g Digraph) []string {
	// 1) Nil graph is treated as cycle-free
	if g == nil {
		return nil
	}

	// 2) Visitation state and current DFS path
	verts := g.Vertices()
	state := make(map[string]int, len(verts))
	path := make([]string, 0, len(verts))

	// 3) Launch DFS from each unvisited vertex
	for _, v := range verts {
		if state[v] != White {
			continue
		}
		if cycle := visitCycle(g, v, state, &path); cycle != nil {
			return cycle
		}
	}

	return nil
}

// HasCycle reports whether g contains a directed cycle.
func HasCycle(g Digraph) bool {
	return FindCycle(g) != nil
}

// visitCycle descends from id and returns the first cycle met, if any.
func visitCycle(g Digraph, id string, state map[string]int, path *[]string) []string {
	state[id] = Gray
	*path = append(*path, id)

	for _, nbr := range g.Successors(id) {
		switch state[nbr] {
		case White:
			if cycle := visitCycle(g, nbr, state, path); cycle != nil {
				return cycle
			}
		case Gray:
			// Back-edge: the cycle is the path segment from nbr to id, closed.
			idx := IndexOf(*path, nbr)
			cycle := append([]string(nil), (*path)[idx:]...)
			return append(cycle, nbr)
		}
	}

	*path = (*path)[:len(*path)-1]
	state[id] = Black

	return nil
}

// candidate is g with one extra edge from→to.
type candidate struct {
	base     Digraph
	from, to string
}

// WithEdge returns a view of g with the edge from→to added. The view shares
// g's storage and is only valid while g is not mutated.
func WithEdge(g Digraph, from, to string) Digraph {
	return candidate{base: g, from: from, to: to}
}

// Vertices implements Digraph; endpoints missing from base are appended.
func (c candidate) Vertices() []string {
	vs := c.base.Vertices()
	for _, v := range []string{c.from, c.to} {
		if IndexOf(vs, v) < 0 {
			vs = append(vs, v)
		}
	}

	return vs
}

// Successors implements Digraph.
func (c candidate) Successors(id string) []string {
	succ := c.base.Successors(id)
	if id != c.from || IndexOf(succ, c.to) >= 0 {
		return succ
	}
	out := make([]string, len(succ), len(succ)+1)
	copy(out, succ)

	return append(out, c.to)
}
