// SPDX-License-Identifier: MIT

// Package dfs implements depth-first cycle detection and topological sort
// over any directed graph that can enumerate its vertices and successors.
//
// What:
//
//   - FindCycle / HasCycle: three-colour DFS (White, Gray, Black) from every
//     unvisited vertex; an edge into a Gray vertex (one on the recursion
//     stack) closes a cycle, which is reconstructed from the DFS path.
//   - WithEdge: a read-only overlay presenting g plus one candidate edge,
//     so "would this edge create a cycle?" is answered without copying or
//     mutating g.
//   - TopologicalSort: reverse DFS post-order; ErrCycleDetected on cycles.
//
// Why:
//   - A causal graph must stay acyclic before and after every mutation, and
//     the data pipeline needs an order in which causes precede effects.
//
// Complexity:
//
//   - FindCycle:       Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - WithEdge:        O(1) to build; Successors(from) costs O(deg(from)).
//
// Errors:
//
//   - ErrGraphNil        graph is nil
//   - ErrCycleDetected   TopologicalSort met a back-edge
package dfs
